package s3

import (
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

type Config struct {
	client *awss3.Client

	bucket string
	prefix string
}

type Option func(*Config)

func WithClient(client *awss3.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

// WithPrefix namespaces generated object keys ("receipts" by default).
func WithPrefix(prefix string) Option {
	return func(c *Config) {
		c.prefix = prefix
	}
}
