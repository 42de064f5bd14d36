package types

// ErrorMessage 所有错误响应的统一格式
type ErrorMessage struct {
	Message *string             `json:"message,omitempty"`
	Fields  map[string][]string `json:"fields,omitempty"` // 字段级别的校验错误
}
