package usecase

import "context"

// ImagesInfra резолвит ключи объектов изображений во внешние URL.
type ImagesInfra interface {
	ResolveURL(ctx context.Context, objectKey string) (string, error)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
