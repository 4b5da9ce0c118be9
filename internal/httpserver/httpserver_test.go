package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"legal-office-management/pkg/datemath"
	"legal-office-management/pkg/log"
)

type fakeDB struct{ pingErr error }

func (f fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}
func (f fakeDB) QueryRow(context.Context, string, ...any) pgx.Row { return nil }
func (f fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}
func (f fakeDB) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }
func (f fakeDB) Ping(context.Context) error                                { return f.pingErr }

type fakeCache struct{ pingErr error }

func (f fakeCache) Get(context.Context, string, string) (string, bool, error) { return "", false, nil }
func (f fakeCache) Set(context.Context, string, string, string) error         { return nil }
func (f fakeCache) Delete(context.Context, ...string) error                   { return nil }
func (f fakeCache) Ping(context.Context) error                                { return f.pingErr }

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	dm, err := datemath.NewParser("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Logger = log.NewNop()
	cfg.Port = 8080
	cfg.Mode = gin.TestMode
	cfg.DateMath = dm
	if cfg.Postgres == nil {
		cfg.Postgres = fakeDB{}
	}

	srv, err := New(cfg.Logger, cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("mapHandlers() error: %v", err)
	}
	return srv
}

func do(srv *HTTPServer, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewValidation(t *testing.T) {
	dm, _ := datemath.NewParser("UTC")

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "no mode", cfg: Config{Port: 1, Postgres: fakeDB{}, DateMath: dm}},
		{name: "no port", cfg: Config{Mode: gin.TestMode, Postgres: fakeDB{}, DateMath: dm}},
		{name: "no postgres", cfg: Config{Mode: gin.TestMode, Port: 1, DateMath: dm}},
		{name: "no date math", cfg: Config{Mode: gin.TestMode, Port: 1, Postgres: fakeDB{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if _, err := New(nil, Config{Mode: gin.TestMode, Port: 1, Postgres: fakeDB{}, DateMath: dm}); err == nil {
		t.Error("expected error without logger")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, Config{})

	for _, path := range []string{"/health", "/live", "/ready"} {
		if w := do(srv, http.MethodGet, path); w.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, w.Code)
		}
	}

	if w := do(srv, http.MethodGet, "/health"); w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID on responses")
	}
}

func TestReadyCheckDependencies(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantCode int
	}{
		{name: "postgres down", cfg: Config{Postgres: fakeDB{pingErr: errors.New("refused")}}, wantCode: http.StatusServiceUnavailable},
		{name: "redis down", cfg: Config{Cache: fakeCache{pingErr: errors.New("refused")}}, wantCode: http.StatusServiceUnavailable},
		{name: "all up", cfg: Config{Cache: fakeCache{}}, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.cfg)
			if w := do(srv, http.MethodGet, "/ready"); w.Code != tt.wantCode {
				t.Errorf("GET /ready = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}

func TestDomainRoutesRegistered(t *testing.T) {
	srv := newTestServer(t, Config{WebhookEnabled: true})

	want := map[string]bool{
		"POST /api/v1/intimacoes/parse":                 false,
		"GET /api/v1/processos/:id/andamentos":          false,
		"GET /api/v1/processos/:id/intimacoes/urgentes": false,
		"POST /api/v1/processos/:id/import":             false,
		"GET /api/v1/andamentos/:id":                    false,
		"PATCH /api/v1/andamentos/:id/lida":             false,
		"POST /api/v1/andamentos/:id/prazo":             false,
		"POST /api/v1/prazos":                           false,
		"GET /api/v1/prazos":                            false,
		"DELETE /api/v1/prazos/:id":                     false,
		"POST /webhook/legaldata":                       false,
	}
	for _, r := range srv.gin.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		if !found {
			t.Errorf("route %s not registered", route)
		}
	}
}

func TestWebhookDisabled(t *testing.T) {
	srv := newTestServer(t, Config{})
	if w := do(srv, http.MethodPost, "/webhook/legaldata"); w.Code != http.StatusNotFound {
		t.Errorf("POST /webhook/legaldata = %d, want 404", w.Code)
	}
}
