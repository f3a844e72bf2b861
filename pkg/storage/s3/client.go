package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/finners68/textract-proxy/pkg/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
)

var _ storage.Provider = (*Client)(nil)

type Client struct {
	*Config
}

func New(bucket string, options ...Option) (*Client, error) {
	if bucket == "" {
		return nil, errors.New("invalid bucket")
	}

	cfg := &Config{
		bucket: bucket,
		prefix: "receipts",
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.client == nil {
		config, err := config.LoadDefaultConfig(context.Background())

		if err != nil {
			return nil, err
		}

		cfg.client = awss3.NewFromConfig(config)
	}

	return &Client{
		Config: cfg,
	}, nil
}

func (c *Client) Put(ctx context.Context, file storage.File) (*storage.Object, error) {
	key := c.key(file)

	input := &awss3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),

		Body: bytes.NewReader(file.Content),
	}

	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}

	if _, err := c.client.PutObject(ctx, input); err != nil {
		return nil, err
	}

	return &storage.Object{
		Bucket: c.bucket,
		Key:    key,
	}, nil
}

func (c *Client) Get(ctx context.Context, key string) (*storage.File, error) {
	resp, err := c.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		var apiError smithy.APIError

		if errors.As(err, &apiError) && apiError.ErrorCode() == "NoSuchKey" {
			return nil, storage.ErrNotFound
		}

		return nil, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &storage.File{
		Name: path.Base(key),

		Content:     data,
		ContentType: aws.ToString(resp.ContentType),
	}, nil
}

// key derives a unique object key, keeping the original extension when one
// is known.
func (c *Client) key(file storage.File) string {
	ext := strings.ToLower(path.Ext(file.Name))

	if ext == "" && file.ContentType != "" {
		if candidates, _ := mime.ExtensionsByType(file.ContentType); len(candidates) > 0 {
			ext = candidates[0]
		}
	}

	if ext == "" {
		ext = ".pdf"
	}

	return path.Join(c.prefix, uuid.NewString()+ext)
}
