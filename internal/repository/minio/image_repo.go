package minio

import (
	"context"
	"net/url"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo выдает временные ссылки на изображения каталога, лежащие в MinIO.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// ResolveURL возвращает presigned-ссылку на объект бакета каталога.
func (i *ImageRepo) ResolveURL(ctx context.Context, objectKey string) (string, error) {
	presigned, err := i.mc.PresignedGetObject(ctx, i.cfg.BucketName, objectKey, i.cfg.PresignTTL, url.Values{})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return presigned.String(), nil
}
