package storage

import (
	"context"
	"io"
)

// ImageStore 保存菜谱图片的对象存储
type ImageStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	URL(key string) string
}
