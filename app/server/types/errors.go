package types

import (
	"errors"
	"sort"
	"strings"
)

// 业务错误分类，handler 根据这些错误决定返回的状态码
var (
	ErrValidation       = errors.New("validation failed")
	ErrAuthentication   = errors.New("authentication failed")
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// ValidationError 带有字段级别的错误信息，可以用 errors.Is(err, ErrValidation) 判断
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError(field string, messages ...string) *ValidationError {
	return (&ValidationError{}).Add(field, messages...)
}

func (e *ValidationError) Add(field string, messages ...string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], messages...)
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
