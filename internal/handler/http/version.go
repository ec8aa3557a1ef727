package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := io.WriteString(w, serverVersion); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing server version failed")
	}
}
