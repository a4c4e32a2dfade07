package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-coreapi/internal/adapter"
	"github.com/MKhiriev/go-coreapi/internal/config"
	"github.com/MKhiriev/go-coreapi/models"
)

type reportsService struct {
	tokens    TokenService
	connector adapter.Connector
	server    string
}

func NewReportsService(coreAPI config.CoreAPI, tokens TokenService, connector adapter.Connector) ReportsService {
	return &reportsService{tokens: tokens, connector: connector, server: coreAPI.Server}
}

func (s *reportsService) QueryXDRs(ctx context.Context, query models.XDRQuery) (models.Records, error) {
	// A token that could not be persisted is still usable for this call.
	token, err := s.tokens.EnsureValidToken(ctx)
	if err != nil && !errors.Is(err, ErrPersistToken) {
		return nil, fmt.Errorf("obtain token: %w", err)
	}

	session, err := s.connector.Connect(s.server, token)
	if err != nil {
		return nil, err
	}

	if len(query.ReturnFields) == 0 {
		query.ReturnFields = models.DefaultXDRReturnFields
	}

	var xdrs models.Records
	if err = session.Call(ctx, adapter.MethodXDRsQuery, query, &xdrs); err != nil {
		return nil, err
	}

	return xdrs, nil
}
