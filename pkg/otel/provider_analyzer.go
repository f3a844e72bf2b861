package otel

import (
	"context"

	"github.com/finners68/textract-proxy/pkg/analyzer"

	"go.opentelemetry.io/otel"
)

type Analyzer interface {
	Observable
	analyzer.Provider
}

type observableAnalyzer struct {
	name string

	provider analyzer.Provider
}

func NewAnalyzer(name string, p analyzer.Provider) Analyzer {
	return &observableAnalyzer{
		name: name,

		provider: p,
	}
}

func (p *observableAnalyzer) otelSetup() {
}

func (p *observableAnalyzer) Analyze(ctx context.Context, input analyzer.Input, options *analyzer.AnalyzeOptions) (*analyzer.Result, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "analyze "+p.name)
	defer span.End()

	result, err := p.provider.Analyze(ctx, input, options)

	return result, err
}
