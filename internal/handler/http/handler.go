package http

import (
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
)

// defaultMaxUploadSize bounds a single uploaded clipboard file.
const defaultMaxUploadSize = 64 << 20

type Handler struct {
	services *service.Services

	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Int64("max_upload_size", defaultMaxUploadSize).Msg("http handler created")
	return &Handler{
		services:      services,
		maxUploadSize: defaultMaxUploadSize,
		logger:        logger,
	}
}
