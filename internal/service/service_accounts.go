package service

import (
	"context"

	"github.com/MKhiriev/go-coreapi/internal/adapter"
	"github.com/MKhiriev/go-coreapi/models"
)

type accountsService struct {
	sessions SessionService
}

func NewAccountsService(sessions SessionService) AccountsService {
	return &accountsService{sessions: sessions}
}

func (s *accountsService) Get(ctx context.Context, id int64) (models.Records, error) {
	return s.call(ctx, adapter.MethodAccountsGet, map[string]any{"id": id})
}

func (s *accountsService) SearchByClient(ctx context.Context, clientID int64) (models.Records, error) {
	return s.call(ctx, adapter.MethodAccountsSearch, map[string]any{"clients_id": clientID})
}

// SearchList sends no limit when unlimited, unlike clientsService.Search.
func (s *accountsService) SearchList(ctx context.Context, limited bool, limit int) (models.Records, error) {
	var params map[string]any
	if limited {
		params = map[string]any{"limit": limit}
	}

	return s.call(ctx, adapter.MethodAccountsSearch, params)
}

func (s *accountsService) call(ctx context.Context, method string, params map[string]any) (models.Records, error) {
	session, err := s.sessions.AuthenticatedSession(ctx)
	if err != nil {
		return nil, err
	}

	var accounts models.Records
	if params == nil {
		err = session.Call(ctx, method, nil, &accounts)
	} else {
		err = session.Call(ctx, method, params, &accounts)
	}
	if err != nil {
		return nil, err
	}

	return accounts, nil
}
