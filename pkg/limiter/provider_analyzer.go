package limiter

import (
	"context"

	"github.com/finners68/textract-proxy/pkg/analyzer"

	"golang.org/x/time/rate"
)

type Analyzer interface {
	Limiter
	analyzer.Provider
}

type limitedAnalyzer struct {
	limiter  *rate.Limiter
	provider analyzer.Provider
}

func NewAnalyzer(l *rate.Limiter, p analyzer.Provider) Analyzer {
	return &limitedAnalyzer{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedAnalyzer) limiterSetup() {
}

func (p *limitedAnalyzer) Analyze(ctx context.Context, input analyzer.Input, options *analyzer.AnalyzeOptions) (*analyzer.Result, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.provider.Analyze(ctx, input, options)
}
