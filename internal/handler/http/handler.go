package http

import (
	"github.com/MKhiriev/go-coreapi/internal/logger"
	"github.com/MKhiriev/go-coreapi/internal/service"
	"github.com/MKhiriev/go-coreapi/models"
)

type Handler struct {
	services  *service.Services
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Debug().Msg("http handler created")
	return &Handler{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
