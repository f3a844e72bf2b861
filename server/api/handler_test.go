package api_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/finners68/textract-proxy/config"
	"github.com/finners68/textract-proxy/pkg/analyzer"
	"github.com/finners68/textract-proxy/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	result *analyzer.Result
	err    error

	mode analyzer.Mode
}

func (s *stubAnalyzer) Analyze(ctx context.Context, input analyzer.Input, options *analyzer.AnalyzeOptions) (*analyzer.Result, error) {
	if options != nil {
		s.mode = options.Mode
	}

	if s.err != nil {
		return nil, s.err
	}

	return s.result, nil
}

func newTestRouter(t *testing.T, stub *stubAnalyzer) http.Handler {
	cfg := &config.Config{}
	cfg.RegisterAnalyzer("stub", stub)

	handler, err := api.New(cfg)
	require.NoError(t, err)

	router := chi.NewRouter()
	handler.Attach(router)

	return router
}

func receiptBody(content string) string {
	return `{"image_base64": "data:application/pdf;base64,` + base64.StdEncoding.EncodeToString([]byte(content)) + `"}`
}

func TestProcessReceipt(t *testing.T) {
	stub := &stubAnalyzer{
		result: &analyzer.Result{
			ExpenseDocuments: []analyzer.ExpenseDocument{
				{
					SummaryFields: []analyzer.ExpenseField{
						{
							Type:           analyzer.ExpenseDetection{Text: "Vendor Name"},
							ValueDetection: analyzer.ExpenseDetection{Text: "Acme Ltd"},
						},
						{
							Type:           analyzer.ExpenseDetection{Text: "TOTAL"},
							ValueDetection: analyzer.ExpenseDetection{Text: "120.00"},
						},
						{
							Type:           analyzer.ExpenseDetection{Text: "TAX"},
							ValueDetection: analyzer.ExpenseDetection{Text: "20.00"},
						},
					},
				},
			},
		},
	}

	router := newTestRouter(t, stub)

	req := httptest.NewRequest(http.MethodPost, "/process-receipt", strings.NewReader(receiptBody("%PDF-1.4 fake")))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, analyzer.ModeExpense, stub.mode)

	body := resp.Body.String()
	require.Contains(t, body, `"vendor_name":"Acme Ltd"`)
	require.Contains(t, body, `"total_amount":"120.00"`)
	require.Contains(t, body, `"vat_rate_percent":"16.67%"`)
}

func TestProcessReceiptRejectsInvalidBase64(t *testing.T) {
	router := newTestRouter(t, &stubAnalyzer{})

	req := httptest.NewRequest(http.MethodPost, "/process-receipt", strings.NewReader(`{"image_base64": "not-base64!!!"}`))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestProcessReceiptSurfacesAnalysisFailure(t *testing.T) {
	router := newTestRouter(t, &stubAnalyzer{err: analyzer.ErrAnalysisFailed})

	req := httptest.NewRequest(http.MethodPost, "/process-receipt", strings.NewReader(receiptBody("%PDF-1.4 fake")))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestProcessDocument(t *testing.T) {
	stub := &stubAnalyzer{
		result: &analyzer.Result{
			Blocks: []analyzer.Block{
				{
					ID:          "k-1",
					BlockType:   analyzer.BlockTypeKeyValueSet,
					EntityTypes: []analyzer.EntityType{analyzer.EntityTypeKey},
					Relationships: []analyzer.Relationship{
						{Type: analyzer.RelationshipTypeChild, IDs: []string{"w-1", "w-2"}},
						{Type: analyzer.RelationshipTypeValue, IDs: []string{"v-1"}},
					},
				},
				{
					ID:          "v-1",
					BlockType:   analyzer.BlockTypeKeyValueSet,
					EntityTypes: []analyzer.EntityType{analyzer.EntityTypeValue},
					Relationships: []analyzer.Relationship{
						{Type: analyzer.RelationshipTypeChild, IDs: []string{"w-3", "w-4"}},
					},
				},
				{ID: "w-1", BlockType: analyzer.BlockTypeWord, Text: "Vendor"},
				{ID: "w-2", BlockType: analyzer.BlockTypeWord, Text: "Name"},
				{ID: "w-3", BlockType: analyzer.BlockTypeWord, Text: "Acme"},
				{ID: "w-4", BlockType: analyzer.BlockTypeWord, Text: "Ltd"},
			},
		},
	}

	router := newTestRouter(t, stub)

	req := httptest.NewRequest(http.MethodPost, "/process-document", strings.NewReader("%PDF-1.4 fake"))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, analyzer.ModeForms, stub.mode)

	body := resp.Body.String()
	require.Contains(t, body, `"vendor_name":"Acme Ltd"`)
	require.Contains(t, body, `"Vendor Name":"Acme Ltd"`)
}

func TestProcessDocumentRejectsEmptyBody(t *testing.T) {
	router := newTestRouter(t, &stubAnalyzer{})

	req := httptest.NewRequest(http.MethodPost, "/process-document", strings.NewReader(""))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
}
