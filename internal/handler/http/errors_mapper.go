package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-coreapi/internal/adapter"
	"github.com/MKhiriev/go-coreapi/internal/app"
	"github.com/MKhiriev/go-coreapi/internal/service"
)

// errorStatusList is checked in order; the first match wins. ErrAdminLogin
// comes before the adapter errors it usually wraps.
var errorStatusList = []struct {
	target error
	status int
}{
	{service.ErrUserNotFound, http.StatusForbidden},
	{service.ErrAdminLogin, http.StatusBadGateway},
	{service.ErrEmptyToken, http.StatusBadGateway},
	{adapter.ErrTransport, http.StatusBadGateway},
	{adapter.ErrProtocol, http.StatusBadGateway},
	{adapter.ErrEmptyServer, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusList {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func messageFromStatus(status int) string {
	switch status {
	case http.StatusForbidden:
		return app.MsgUserNotFound
	case http.StatusBadGateway:
		return app.MsgCoreAPIUnavailable
	default:
		return app.MsgInternalServerError
	}
}
