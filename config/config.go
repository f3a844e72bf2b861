package config

import (
	"bytes"
	"os"

	"github.com/finners68/textract-proxy/pkg/analyzer"
	"github.com/finners68/textract-proxy/pkg/storage"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	analyzers map[string]analyzer.Provider

	storage storage.Provider
}

// Parse loads a YAML config file. An empty path falls back to an env-only
// setup: a Textract analyzer and an S3 store on the S3_BUCKET bucket, which
// matches how the service ran before it grew a config file.
func Parse(path string) (*Config, error) {
	c := &Config{
		Address: ":8080",
	}

	if path == "" {
		return c, c.registerDefaults()
	}

	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerStorage(file); err != nil {
		return nil, err
	}

	if err := c.registerAnalyzers(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Storage yaml.Node `yaml:"storage"`

	Analyzers yaml.Node `yaml:"analyzers"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (cfg *Config) registerDefaults() error {
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		s, err := createStorage(storageConfig{Type: "s3", Bucket: bucket})

		if err != nil {
			return err
		}

		cfg.storage = s
	}

	a, err := createAnalyzer(analyzerConfig{Type: "textract"})

	if err != nil {
		return err
	}

	cfg.RegisterAnalyzer("textract", a)

	return nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
