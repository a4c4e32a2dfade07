package service

import (
	"context"

	"github.com/MKhiriev/go-coreapi/internal/adapter"
	"github.com/MKhiriev/go-coreapi/models"
)

// UnlimitedClientsSearchLimit is sent by ClientsService.Search when the
// caller asks for an unlimited search. Accounts searches send no limit at
// all instead; the two behave differently on purpose.
const UnlimitedClientsSearchLimit = 10000

type clientsService struct {
	sessions SessionService
}

func NewClientsService(sessions SessionService) ClientsService {
	return &clientsService{sessions: sessions}
}

func (s *clientsService) Get(ctx context.Context, id int64) (models.Record, error) {
	session, err := s.sessions.AuthenticatedSession(ctx)
	if err != nil {
		return nil, err
	}

	var client models.Record
	if err = session.Call(ctx, adapter.MethodClientsGet, map[string]any{"id": id}, &client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *clientsService) Search(ctx context.Context, limited bool, limit int) (models.Records, error) {
	session, err := s.sessions.AuthenticatedSession(ctx)
	if err != nil {
		return nil, err
	}

	if !limited {
		limit = UnlimitedClientsSearchLimit
	}

	var clients models.Records
	if err = session.Call(ctx, adapter.MethodClientsSearch, map[string]any{"limit": limit}, &clients); err != nil {
		return nil, err
	}

	return clients, nil
}
