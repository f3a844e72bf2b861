package api

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/finners68/textract-proxy/pkg/analyzer"
	"github.com/finners68/textract-proxy/pkg/storage"
)

// decodeDocument decodes a base64 document body, tolerating a data-URI
// prefix ("data:image/png;base64,....").
func decodeDocument(value string) ([]byte, error) {
	if value == "" {
		return nil, errors.New("missing document")
	}

	if index := strings.LastIndex(value, ","); index >= 0 {
		value = value[index+1:]
	}

	return base64.StdEncoding.DecodeString(value)
}

func readDocument(r *http.Request) ([]byte, error) {
	if file, _, err := r.FormFile("file"); err == nil {
		defer file.Close()

		return io.ReadAll(file)
	}

	data, err := io.ReadAll(r.Body)

	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, errors.New("missing document")
	}

	return data, nil
}

// analyze stores the document when a blob store is configured and submits it
// to the default analyzer. PDFs go through the stored object so that the
// analyzer can use the asynchronous, multi-page API; images are submitted
// inline.
func (h *Handler) analyze(ctx context.Context, data []byte, mode analyzer.Mode) (*analyzer.Result, error) {
	a, err := h.Analyzer("")

	if err != nil {
		return nil, err
	}

	contentType := http.DetectContentType(data)

	input := analyzer.Input{
		File: &analyzer.File{
			Content:     data,
			ContentType: contentType,
		},
	}

	if s, err := h.Storage(); err == nil {
		object, err := s.Put(ctx, storage.File{
			Content:     data,
			ContentType: contentType,
		})

		if err != nil {
			return nil, err
		}

		if contentType == "application/pdf" {
			input = analyzer.Input{
				Object: &analyzer.Object{
					Bucket: object.Bucket,
					Key:    object.Key,
				},
			}
		}
	}

	return a.Analyze(ctx, input, &analyzer.AnalyzeOptions{
		Mode: mode,
	})
}
