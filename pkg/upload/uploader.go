package upload

import (
	"context"
	"io"
)

type Uploader interface {
	// Key is a unique identifier for the object within the bucket.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) error
	GetDirectory() string
}
