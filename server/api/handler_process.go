package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finners68/textract-proxy/pkg/analyzer"
	"github.com/finners68/textract-proxy/pkg/extract"
	"github.com/finners68/textract-proxy/pkg/normalizer"
)

type processReceiptRequest struct {
	ImageBase64 string `json:"image_base64"`
}

// handleProcessReceipt accepts a base64-embedded document, stores it, runs
// expense analysis and returns the normalized record.
func (h *Handler) handleProcessReceipt(w http.ResponseWriter, r *http.Request) {
	var request processReceiptRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	data, err := decodeDocument(request.ImageBase64)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.analyze(r.Context(), data, analyzer.ModeExpense)

	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJson(w, convertExpense(result))
}

// handleProcessDocument accepts a raw or multipart upload, runs forms
// analysis and extracts label/value pairs from the block graph.
func (h *Handler) handleProcessDocument(w http.ResponseWriter, r *http.Request) {
	data, err := readDocument(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.analyze(r.Context(), data, analyzer.ModeForms)

	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	fields := extract.Pairs(result.Blocks)

	writeJson(w, normalizer.Normalize(fields, nil))
}

func convertExpense(result *analyzer.Result) *normalizer.Record {
	if len(result.ExpenseDocuments) == 0 {
		return normalizer.Normalize(extract.NewFields(), nil)
	}

	document := result.ExpenseDocuments[0]

	fields := extract.Summary(document)
	items := extract.LineItems(document.LineItemGroups)

	return normalizer.Normalize(fields, items)
}

func statusFor(err error) int {
	if errors.Is(err, analyzer.ErrAnalysisFailed) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
