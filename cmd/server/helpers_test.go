package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/workout-api/internal/config"
	"github.com/phrazzld/workout-api/internal/testdb"
	"github.com/stretchr/testify/require"
)

// testServer is an application backed by a fresh in-memory database.
type testServer struct {
	app    *application
	db     *sqlx.DB
	router http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithDB(t, testdb.Open(t), testdb.Config())
}

// newTestServerWithDB builds the application over db, which must already
// have the schema applied.
func newTestServerWithDB(t *testing.T, db *sqlx.DB, dbCfg config.DatabaseConfig) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:                   0,
			LogLevel:               "error",
			ShutdownTimeoutSeconds: 1,
		},
		Database: dbCfg,
	}

	app, err := newApplication(cfg, testdb.DiscardLogger(), db)
	require.NoError(t, err)

	return &testServer{app: app, db: db, router: app.setupRouter()}
}

// do sends a request straight to the router so 303 responses are observed
// as-is instead of being followed by a client.
func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

// createCategory posts a category and returns its pk_id.
func (s *testServer) createCategory(t *testing.T, name string) int64 {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/v1/categorias/", map[string]any{"nome": name})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodePkID(t, rr)
}

// createTrainingCenter posts a training center and returns its pk_id.
func (s *testServer) createTrainingCenter(t *testing.T, name string) int64 {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/v1/centros_de_treinamento/", map[string]any{
		"nome":         name,
		"endereco":     "Rua X, Q02",
		"proprietario": "Marcos",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodePkID(t, rr)
}

func (s *testServer) count(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.Get(&n, s.db.Rebind(query), args...))
	return n
}

func decodePkID(t *testing.T, rr *httptest.ResponseRecorder) int64 {
	t.Helper()
	var resp struct {
		PkID int64 `json:"pk_id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotZero(t, resp.PkID)
	return resp.PkID
}

func athletePayload(name, cpf string, categoryID, trainingCenterID int64) map[string]any {
	return map[string]any{
		"nome":                     name,
		"cpf":                      cpf,
		"idade":                    25,
		"peso":                     75.5,
		"altura":                   1.70,
		"sexo":                     "M",
		"categoria_id":             categoryID,
		"centro_de_treinamento_id": trainingCenterID,
	}
}
