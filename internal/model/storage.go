package model

import (
	"context"
	"io"
)

// Storage receives copies of saved directory documents.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64) error
}
