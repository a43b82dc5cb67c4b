// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"io"
	"net/http"
)

// UploadHandler handles document upload requests.
type UploadHandler struct {
	deps Dependencies
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(deps Dependencies) *UploadHandler {
	return &UploadHandler{deps: deps}
}

// HandleUpload handles POST /api/upload requests. The request body is
// accepted and discarded: the engine returns the same canned extraction
// no matter what was uploaded. There is no failure branch.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	// Drain so keep-alive connections can be reused.
	_, _ = io.Copy(io.Discard, r.Body)

	res, err := h.deps.Scan(r.Context())
	if err != nil {
		// Only reachable when the client went away mid-delay; there is
		// nobody left to answer.
		return
	}
	writeJSON(w, http.StatusOK, res)
}
