package textract

import (
	"time"

	awstextract "github.com/aws/aws-sdk-go-v2/service/textract"
)

type Config struct {
	client *awstextract.Client

	pollInterval time.Duration
	pollAttempts uint
}

type Option func(*Config)

func WithClient(client *awstextract.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

// WithPollInterval sets the delay between job-status checks during
// asynchronous analysis.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Config) {
		c.pollInterval = interval
	}
}

// WithPollAttempts caps the number of job-status checks. Zero removes the
// cap, leaving the surrounding context deadline as the only bound.
func WithPollAttempts(attempts uint) Option {
	return func(c *Config) {
		c.pollAttempts = attempts
	}
}
