package inits

import (
	"context"
	"fmt"
	"recipe-app-api/app/server/config"
	"recipe-app-api/app/server/storage"
)

func Storage(ctx context.Context, cfg *config.Config) (*storage.Minio, error) {
	m, err := storage.NewMinio(ctx, storage.MinioOptions{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
		BaseURL:   cfg.System.MediaBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}

	return m, nil
}
