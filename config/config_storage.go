package config

import (
	"errors"
	"strings"

	"github.com/finners68/textract-proxy/pkg/storage"
	"github.com/finners68/textract-proxy/pkg/storage/s3"
)

func (cfg *Config) Storage() (storage.Provider, error) {
	if cfg.storage == nil {
		return nil, errors.New("storage not configured")
	}

	return cfg.storage, nil
}

type storageConfig struct {
	Type string `yaml:"type"`

	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
}

func (cfg *Config) registerStorage(f *configFile) error {
	if f.Storage.IsZero() {
		return nil
	}

	var config storageConfig

	if err := f.Storage.Decode(&config); err != nil {
		return err
	}

	s, err := createStorage(config)

	if err != nil {
		return err
	}

	cfg.storage = s

	return nil
}

func createStorage(cfg storageConfig) (storage.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "s3":
		var options []s3.Option

		if cfg.Prefix != "" {
			options = append(options, s3.WithPrefix(cfg.Prefix))
		}

		return s3.New(cfg.Bucket, options...)

	default:
		return nil, errors.New("invalid storage type: " + cfg.Type)
	}
}
