package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-coreapi/internal/adapter"
	"github.com/MKhiriev/go-coreapi/internal/config"
	"github.com/MKhiriev/go-coreapi/internal/mock"
	"github.com/MKhiriev/go-coreapi/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testServer   = "http://coreapi.test:3080"
	testLogin    = "servicecontrol"
	testPassword = "secret"
	testTokenKey = "JWT_TOKEN"
)

func testConfig() *config.Config {
	return &config.Config{
		CoreAPI: config.CoreAPI{
			Server:   testServer,
			Username: testLogin,
			Password: testPassword,
		},
		Admin: config.Admin{
			Login:    "admin",
			Password: "admin-secret",
			RoleName: "Supervisor",
		},
		Store: config.Store{
			EnvFilePath: "/tmp/.env",
			TokenKey:    testTokenKey,
		},
	}
}

// mintToken signs a token with the given claims. The key is irrelevant since
// the client never verifies signatures.
func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func tokenExpiringAt(t *testing.T, exp time.Time) string {
	t.Helper()
	return mintToken(t, jwt.MapClaims{"exp": exp.Unix(), "sub": testLogin})
}

// returnResult makes a mocked Session.Call decode v into its result argument
// the way the HTTP session decodes the JSON-RPC "result" member.
func returnResult(v any) func(context.Context, string, any, any) error {
	return func(_ context.Context, _ string, _ any, result any) error {
		if result == nil {
			return nil
		}
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, result)
	}
}

func authParams(login, password string) map[string]any {
	return map[string]any{"login": login, "password": password}
}

// expectLogin expects one unauthenticated session on server answering
// iam.auth.jwt.authenticate with token.
func expectLogin(connector *mock.MockConnector, session *mock.MockSession, server, login, password, token string) {
	connector.EXPECT().Connect(server, "").Return(session, nil)
	session.EXPECT().
		Call(gomock.Any(), adapter.MethodAuthenticate, authParams(login, password), gomock.Any()).
		DoAndReturn(returnResult(models.AuthResult{Token: token}))
}
