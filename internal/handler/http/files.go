// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/utils"
)

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	files, err := h.services.FileService.List(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, files, http.StatusOK)
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	name := chi.URLParam(r, "name")

	file, err := h.services.FileService.Open(r.Context(), userID, name)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("file", name).Msg("opening file failed")
		h.writeError(w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, file); err != nil {
		logger.FromRequest(r).Err(err).Str("file", name).Msg("streaming file failed")
	}
}

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	name := chi.URLParam(r, "name")

	body := http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	defer body.Close()

	n, err := h.services.FileService.Save(r.Context(), userID, name, body)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("file", name).Msg("saving file failed")
		h.writeError(w, err)
		return
	}

	logger.FromRequest(r).Debug().Str("file", name).Int64("size", n).Msg("file saved")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	name := chi.URLParam(r, "name")

	if err := h.services.FileService.Delete(r.Context(), userID, name); err != nil {
		logger.FromRequest(r).Err(err).Str("file", name).Msg("deleting file failed")
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
