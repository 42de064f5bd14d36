package utils

import (
	"fmt"
	"strconv"
	"strings"
)

func P[T any](v T) *T {
	return &v
}

// ParseUintList 解析 "1,2,3" 这样的查询参数，空字符串返回 nil
func ParseUintList(s string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", part, err)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
