package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-coreapi/internal/logger"
	"github.com/MKhiriev/go-coreapi/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

var configEnvVars = []string{
	"CONFIG", "ENV_FILE", "TOKEN_KEY", "JWT_TOKEN",
	"COREAPI_SERVER", "COREAPI_USERNAME", "COREAPI_PASSWORD",
	"VCS_COREAPI", "VCS_ADMIN", "VCS_ADMIN_PASSWORD", "VCS_ADMIN_ROLES_NAME",
	"ADAPTER_REQUEST_TIMEOUT", "COREAPI_AUTHORIZE_PASSWORD",
	"SERVER_HTTP_ADDRESS", "SERVER_SHUTDOWN_TIMEOUT",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
		"sub": "servicecontrol",
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

// fakeCoreAPI answers JSON-RPC calls by method name and records them.
type fakeCoreAPI struct {
	t *testing.T

	mu      sync.Mutex
	methods []string
	params  []map[string]any
	auth    []string

	token    string
	users    map[string]string // login -> password
	roles    map[string]string // login -> roles_name
	clients  []map[string]any
	accounts []map[string]any
}

func newFakeCoreAPI(t *testing.T) (*fakeCoreAPI, *httptest.Server) {
	t.Helper()
	f := &fakeCoreAPI{
		t:     t,
		token: signedToken(t, time.Now().Add(time.Hour)),
		users: map[string]string{
			"servicecontrol": "secret",
			"admin":          "admin-secret",
			"alice":          "alice-pw",
			"bob":            "bob-pw",
		},
		roles: map[string]string{
			"alice": "Supervisor",
			"bob":   "Operator",
		},
		clients: []map[string]any{
			{"id": 1, "name": "Acme"},
			{"id": 2, "name": "Globex"},
		},
		accounts: []map[string]any{
			{"id": 10, "clients_id": 1},
			{"id": 11, "clients_id": 2},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeCoreAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	assert.NoError(f.t, err)

	var req struct {
		Method string          `json:"method"`
		Params map[string]any  `json:"params"`
		ID     json.RawMessage `json:"id"`
	}
	assert.NoError(f.t, json.Unmarshal(body, &req))

	f.mu.Lock()
	f.methods = append(f.methods, req.Method)
	f.params = append(f.params, req.Params)
	f.auth = append(f.auth, r.Header.Get("Authorization"))
	f.mu.Unlock()

	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	switch req.Method {
	case "iam.auth.jwt.authenticate":
		login, _ := req.Params["login"].(string)
		password, _ := req.Params["password"].(string)
		if pw, ok := f.users[login]; ok && pw == password {
			resp["result"] = map[string]any{"token": f.token}
		} else {
			resp["error"] = map[string]any{"code": -32001, "message": "Authentication failed"}
		}
	case "iam.users.search":
		login, _ := req.Params["login"].(string)
		if role, ok := f.roles[login]; ok {
			resp["result"] = []map[string]any{{"login": login, "roles_name": role}}
		} else {
			resp["result"] = []any{}
		}
	case "clients.search":
		resp["result"] = f.clients
	case "clients.get":
		resp["result"] = f.clients[0]
	case "clients.accounts.get":
		resp["result"] = f.accounts[0]
	case "clients.accounts.search":
		resp["result"] = f.accounts
	case "reports.xdrs_list.query":
		resp["result"] = []map[string]any{{"src_party_id_ext": "100", "volume": 42}}
	default:
		resp["error"] = map[string]any{"code": -32601, "message": "Method not found"}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (f *fakeCoreAPI) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.methods...)
}

func (f *fakeCoreAPI) lastParams(method string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.methods) - 1; i >= 0; i-- {
		if f.methods[i] == method {
			return f.params[i]
		}
	}
	return nil
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func serviceEnv(server string) string {
	return "COREAPI_SERVER = " + server + "\n" +
		"COREAPI_USERNAME = servicecontrol\n" +
		"COREAPI_PASSWORD = secret\n" +
		"VCS_ADMIN = admin\n" +
		"VCS_ADMIN_PASSWORD = admin-secret\n" +
		"VCS_ADMIN_ROLES_NAME = Supervisor\n"
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := NewApp(models.NewAppBuildInfo("test", "", ""), &stdout, &stderr, logger.Nop())
	err := app.Run(context.Background(), append([]string{"coreapi"}, args...))
	return stdout.String(), err
}

func TestApp_TokenEnsure_RefreshesAndPersists(t *testing.T) {
	clearConfigEnv(t)
	fake, srv := newFakeCoreAPI(t)
	envFile := writeEnvFile(t, serviceEnv(srv.URL)+"JWT_TOKEN = garbage\n")

	out, err := runApp(t, "--env-file", envFile, "token", "ensure")
	require.NoError(t, err)

	var got tokenOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, fake.token, got.Token)
	assert.True(t, got.Persisted)
	assert.False(t, got.Expired)
	assert.Equal(t, "servicecontrol", got.Subject)

	content, err := os.ReadFile(envFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "JWT_TOKEN = "+fake.token)
	assert.NotContains(t, string(content), "garbage")
	assert.Equal(t, []string{"iam.auth.jwt.authenticate"}, fake.calls())
}

func TestApp_TokenEnsure_KeepsValidToken(t *testing.T) {
	clearConfigEnv(t)
	fake, srv := newFakeCoreAPI(t)
	cached := signedToken(t, time.Now().Add(30*time.Minute))
	envFile := writeEnvFile(t, serviceEnv(srv.URL)+"JWT_TOKEN = "+cached+"\n")

	out, err := runApp(t, "--env-file", envFile, "token", "ensure")
	require.NoError(t, err)

	var got tokenOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, cached, got.Token)
	assert.Empty(t, fake.calls())
}

func TestApp_TokenShow_DoesNotCallCoreAPI(t *testing.T) {
	clearConfigEnv(t)
	fake, srv := newFakeCoreAPI(t)
	expired := signedToken(t, time.Now().Add(-time.Minute))
	envFile := writeEnvFile(t, serviceEnv(srv.URL)+"JWT_TOKEN = "+expired+"\n")

	out, err := runApp(t, "--env-file", envFile, "-o", "yaml", "token", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "token: "+expired)
	assert.Contains(t, out, "expired: true")
	assert.Empty(t, fake.calls())
}

func TestApp_TokenEnsure_MissingCredentials(t *testing.T) {
	clearConfigEnv(t)
	envFile := writeEnvFile(t, "COREAPI_SERVER = http://127.0.0.1:1\n")

	_, err := runApp(t, "--env-file", envFile, "token", "ensure")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "COREAPI_USERNAME")
	assert.Contains(t, err.Error(), "COREAPI_PASSWORD")
}

func TestApp_ClientsSearch(t *testing.T) {
	clearConfigEnv(t)
	fake, srv := newFakeCoreAPI(t)
	envFile := writeEnvFile(t, serviceEnv(srv.URL))

	tests := []struct {
		name      string
		args      []string
		wantLimit float64
	}{
		{name: "unlimited", args: []string{"clients", "search"}, wantLimit: 10000},
		{name: "limited", args: []string{"clients", "search", "--limit", "5"}, wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, append([]string{"--env-file", envFile}, tt.args...)...)
			require.NoError(t, err)

			var got []map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Len(t, got, 2)
			assert.Equal(t, tt.wantLimit, fake.lastParams("clients.search")["limit"])
		})
	}
}

func TestApp_ClientsGet(t *testing.T) {
	clearConfigEnv(t)
	fake, srv := newFakeCoreAPI(t)
	envFile := writeEnvFile(t, serviceEnv(srv.URL))

	out, err := runApp(t, "--env-file", envFile, "clients", "get", "1")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Acme", got["name"])
	assert.Equal(t, []string{"iam.auth.jwt.authenticate", "clients.search", "clients.get"}, fake.calls())
	assert.Equal(t, float64(1), fake.lastParams("clients.get")["id"])
}

func TestApp_ClientsGet_BadID(t *testing.T) {
	clearConfigEnv(t)
	_, srv := newFakeCoreAPI(t)
	envFile := writeEnvFile(t, serviceEnv(srv.URL))

	_, err := runApp(t, "--env-file", envFile, "clients", "get", "abc")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = runApp(t, "--env-file", envFile, "clients", "get")
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestApp_Accounts(t *testing.T) {
	clearConfigEnv(t)
	fake, srv := newFakeCoreAPI(t)
	envFile := writeEnvFile(t, serviceEnv(srv.URL))

	out, err := runApp(t, "--env-file", envFile, "accounts", "get", "10")
	require.NoError(t, err)
	var single []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &single))
	assert.Len(t, single, 1)

	_, err = runApp(t, "--env-file", envFile, "accounts", "search", "1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"clients_id": float64(1)}, fake.lastParams("clients.accounts.search"))

	_, err = runApp(t, "--env-file", envFile, "accounts", "list")
	require.NoError(t, err)
	assert.Nil(t, fake.lastParams("clients.accounts.search"))
}

func TestApp_Authorize(t *testing.T) {
	clearConfigEnv(t)
	_, srv := newFakeCoreAPI(t)
	envFile := writeEnvFile(t, serviceEnv(srv.URL))

	out, err := runApp(t, "--env-file", envFile, "authorize", "--login", "alice", "--password", "alice-pw")
	require.NoError(t, err)
	var got authorizeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, authorizeOutput{Login: "alice", Authorized: true}, got)

	tests := []struct {
		name     string
		login    string
		password string
	}{
		{name: "wrong role", login: "bob", password: "bob-pw"},
		{name: "wrong password", login: "alice", password: "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, "--env-file", envFile, "authorize", "--login", tt.login, "--password", tt.password)

			var exitErr cli.ExitCoder
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, exitNotAuthorized, exitErr.ExitCode())
		})
	}
}

func TestApp_XDRs(t *testing.T) {
	clearConfigEnv(t)
	fake, srv := newFakeCoreAPI(t)
	envFile := writeEnvFile(t, serviceEnv(srv.URL))

	out, err := runApp(t, "--env-file", envFile, "xdrs",
		"--filter", "origin=orig", "--filter", "billed_clients_id=13", "--limit", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "src_party_id_ext")

	params := fake.lastParams("reports.xdrs_list.query")
	require.NotNil(t, params)
	assert.Equal(t, map[string]any{"origin": "orig", "billed_clients_id": float64(13)}, params["filters"])
	assert.Equal(t, float64(3), params["limit"])
	assert.Len(t, params["return_fields"], len(models.DefaultXDRReturnFields))
}

func TestApp_Config(t *testing.T) {
	clearConfigEnv(t)
	envFile := writeEnvFile(t, "COREAPI_SERVER = http://10.0.0.1:3080\nCOREAPI_PASSWORD = secret\n")

	_, err := runApp(t, "--env-file", envFile, "config", "set", "COREAPI_USERNAME", "servicecontrol")
	require.NoError(t, err)

	out, err := runApp(t, "--env-file", envFile, "config", "get", "COREAPI_USERNAME")
	require.NoError(t, err)
	assert.Contains(t, out, `"value": "servicecontrol"`)

	out, err = runApp(t, "--env-file", envFile, "config", "list")
	require.NoError(t, err)
	var entries []configEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, []configEntry{
		{Key: "COREAPI_SERVER", Value: "http://10.0.0.1:3080"},
		{Key: "COREAPI_PASSWORD", Value: secretMask},
		{Key: "COREAPI_USERNAME", Value: "servicecontrol"},
	}, entries)

	out, err = runApp(t, "--env-file", envFile, "config", "list", "--show-secrets")
	require.NoError(t, err)
	assert.Contains(t, out, `"value": "secret"`)

	_, err = runApp(t, "--env-file", envFile, "config", "get", "MISSING")
	var exitErr cli.ExitCoder
	assert.ErrorAs(t, err, &exitErr)
}

func TestApp_UnknownOutputFormat(t *testing.T) {
	clearConfigEnv(t)
	envFile := writeEnvFile(t, "")

	_, err := runApp(t, "--env-file", envFile, "-o", "xml", "config", "list")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestApp_Serve(t *testing.T) {
	clearConfigEnv(t)
	_, srv := newFakeCoreAPI(t)
	envFile := writeEnvFile(t, serviceEnv(srv.URL))
	addr := freeAddress(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		var stdout, stderr bytes.Buffer
		app := NewApp(models.NewAppBuildInfo("test", "", ""), &stdout, &stderr, logger.Nop())
		done <- app.Run(ctx, []string{"coreapi", "--env-file", envFile, "serve", "--listen", addr})
	}()

	base := "http://" + addr
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/api/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 5*time.Second, 20*time.Millisecond)

	resp, err := http.Post(base+"/api/authorize", "application/json",
		strings.NewReader(`{"login":"alice","password":"alice-pw"}`))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"login":"alice","authorized":true}`, string(body))

	resp, err = http.Post(base+"/api/authorize", "application/json",
		strings.NewReader(`{"login":"bob","password":"bob-pw"}`))
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
