package storage

import (
	"context"
	"errors"
)

type Provider interface {
	Put(ctx context.Context, file File) (*Object, error)
	Get(ctx context.Context, key string) (*File, error)
}

var ErrNotFound = errors.New("object not found")

type File struct {
	Name string

	Content     []byte
	ContentType string
}

// Object locates a stored document for analyzers that read from the blob
// store directly.
type Object struct {
	Bucket string
	Key    string
}
