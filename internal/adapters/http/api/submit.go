// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"io"
	"net/http"
)

// SubmitHandler handles item submission requests.
type SubmitHandler struct {
	deps Dependencies
}

// NewSubmitHandler creates a new submit handler.
func NewSubmitHandler(deps Dependencies) *SubmitHandler {
	return &SubmitHandler{deps: deps}
}

// HandleSubmit handles POST /api/submit requests. The body is ignored and
// the fixed acknowledgement is returned after the simulated delay.
func (h *SubmitHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	_, _ = io.Copy(io.Discard, r.Body)

	receipt, err := h.deps.Submit(r.Context())
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}
