package config

import (
	"errors"
	"strings"
	"time"

	"github.com/finners68/textract-proxy/pkg/analyzer"
	"github.com/finners68/textract-proxy/pkg/analyzer/custom"
	"github.com/finners68/textract-proxy/pkg/analyzer/textract"
	"github.com/finners68/textract-proxy/pkg/limiter"
	"github.com/finners68/textract-proxy/pkg/otel"
)

func (cfg *Config) RegisterAnalyzer(id string, p analyzer.Provider) {
	if cfg.analyzers == nil {
		cfg.analyzers = make(map[string]analyzer.Provider)
	}

	if _, ok := cfg.analyzers[""]; !ok {
		cfg.analyzers[""] = p
	}

	cfg.analyzers[id] = p
}

func (cfg *Config) Analyzer(id string) (analyzer.Provider, error) {
	if cfg.analyzers != nil {
		if a, ok := cfg.analyzers[id]; ok {
			return a, nil
		}
	}

	return nil, errors.New("analyzer not found: " + id)
}

type analyzerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	PollInterval string `yaml:"poll_interval"`
	PollAttempts uint   `yaml:"poll_attempts"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerAnalyzers(f *configFile) error {
	if f.Analyzers.IsZero() {
		a, err := createAnalyzer(analyzerConfig{Type: "textract"})

		if err != nil {
			return err
		}

		cfg.RegisterAnalyzer("textract", a)

		return nil
	}

	var configs map[string]analyzerConfig

	if err := f.Analyzers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Analyzers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		a, err := createAnalyzer(config)

		if err != nil {
			return err
		}

		if _, ok := a.(limiter.Analyzer); !ok {
			a = limiter.NewAnalyzer(createLimiter(config.Limit), a)
		}

		if _, ok := a.(otel.Analyzer); !ok {
			a = otel.NewAnalyzer(id, a)
		}

		cfg.RegisterAnalyzer(id, a)
	}

	return nil
}

func createAnalyzer(cfg analyzerConfig) (analyzer.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "textract":
		return textractAnalyzer(cfg)

	case "custom":
		return customAnalyzer(cfg)

	default:
		return nil, errors.New("invalid analyzer type: " + cfg.Type)
	}
}

func textractAnalyzer(cfg analyzerConfig) (analyzer.Provider, error) {
	var options []textract.Option

	if cfg.PollInterval != "" {
		interval, err := time.ParseDuration(cfg.PollInterval)

		if err != nil {
			return nil, err
		}

		options = append(options, textract.WithPollInterval(interval))
	}

	if cfg.PollAttempts > 0 {
		options = append(options, textract.WithPollAttempts(cfg.PollAttempts))
	}

	return textract.New(options...)
}

func customAnalyzer(cfg analyzerConfig) (analyzer.Provider, error) {
	var options []custom.Option

	if cfg.Token != "" {
		options = append(options, custom.WithToken(cfg.Token))
	}

	return custom.New(cfg.URL, options...)
}
