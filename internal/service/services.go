package service

import (
	"github.com/MKhiriev/go-coreapi/internal/adapter"
	"github.com/MKhiriev/go-coreapi/internal/config"
	"github.com/MKhiriev/go-coreapi/internal/logger"
	"github.com/MKhiriev/go-coreapi/internal/store"
)

type Services struct {
	TokenService     TokenService
	SessionService   SessionService
	ClientsService   ClientsService
	AccountsService  AccountsService
	ReportsService   ReportsService
	AdminAuthService AdminAuthService
	TokenKeeperJob   TokenKeeperJob
}

// NewServices wires every service around one connector and one config store.
// The returned TokenService is the single owner of the cached token for the
// lifetime of the process.
func NewServices(cfg *config.Config, connector adapter.Connector, configStore store.ConfigStore, logger *logger.Logger) *Services {
	tokenSvc := NewTokenService(cfg, connector, configStore, logger)
	sessionSvc := NewSessionService(cfg.CoreAPI, connector, logger)

	return &Services{
		TokenService:     tokenSvc,
		SessionService:   sessionSvc,
		ClientsService:   NewClientsService(sessionSvc),
		AccountsService:  NewAccountsService(sessionSvc),
		ReportsService:   NewReportsService(cfg.CoreAPI, tokenSvc, connector),
		AdminAuthService: NewAdminAuthService(cfg, connector, logger),
		TokenKeeperJob:   NewTokenKeeperJob(tokenSvc, logger),
	}
}
