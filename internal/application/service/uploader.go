package service

import (
	"context"
	"io"
)

type Uploader interface {
	// Upload stores file under folder/publicID and returns its public URL.
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
