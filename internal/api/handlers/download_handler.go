package handlers

import (
	"net/http"

	"github.com/megahand-az/megahand-be/internal/export"
	"github.com/rs/zerolog/log"
)

// DownloadHandler streams a zip archive of the project source tree.
type DownloadHandler struct {
	root string
}

// NewDownloadHandler creates a new DownloadHandler rooted at the given path.
func NewDownloadHandler(root string) *DownloadHandler {
	return &DownloadHandler{root: root}
}

// Get streams the archive. Once streaming has begun a failure can only be
// logged; the status line is already on the wire.
func (h *DownloadHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="megahand-source.zip"`)

	if err := export.WriteZip(w, h.root); err != nil {
		log.Error().Err(err).Str("root", h.root).Msg("Failed to stream source archive")
	}
}
