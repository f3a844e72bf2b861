package analyzer

import (
	"context"
	"errors"
)

type Provider interface {
	Analyze(ctx context.Context, input Input, options *AnalyzeOptions) (*Result, error)
}

var (
	ErrUnsupported = errors.New("unsupported type")

	// ErrAnalysisFailed marks a terminal failure reported by the analysis
	// engine itself, as opposed to a transport problem.
	ErrAnalysisFailed = errors.New("analysis failed")
)

type Mode string

const (
	// ModeExpense yields pre-flattened expense documents (summary fields
	// and line-item groups).
	ModeExpense Mode = "expense"

	// ModeForms yields the raw block graph with KEY_VALUE_SET pairs.
	ModeForms Mode = "forms"
)

type AnalyzeOptions struct {
	Mode Mode
}

type Input struct {
	// File is the document content, submitted inline.
	File *File

	// Object references a document already placed in the blob store.
	// Implementations require it for asynchronous analysis.
	Object *Object
}

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type Object struct {
	Bucket string
	Key    string
}
