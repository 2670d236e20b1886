package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/twitter-crud/internal/config"
	"github.com/crucial707/twitter-crud/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAPI_Index checks the bare index route answers 200 with no body.
func TestAPI_Index(t *testing.T) {
	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	srv := httptest.NewServer(newRouter(conn, config.Config{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("index request: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || len(body) != 0 {
		t.Errorf("GET /: got %d %q, want 200 with empty body", resp.StatusCode, body)
	}
}

// TestAPI_Health is a quick smoke test for the health endpoint.
func TestAPI_Health(t *testing.T) {
	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	srv := httptest.NewServer(newRouter(conn, config.Config{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /health status: got %d, want 200", resp.StatusCode)
	}
}

// TestAPI_Ready checks that /ready pings the DB and returns 200 when DB is reachable.
func TestAPI_Ready(t *testing.T) {
	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	srv := httptest.NewServer(newRouter(conn, config.Config{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ready")
	if err != nil {
		t.Fatalf("ready request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /ready status: got %d, want 200", resp.StatusCode)
	}
}

func TestAPI_Metrics(t *testing.T) {
	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	srv := httptest.NewServer(newRouter(conn, config.Config{}))
	defer srv.Close()

	// Generate one recorded request first.
	if resp, err := http.Get(srv.URL + "/health"); err == nil {
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics request: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "http_requests_total") {
		t.Errorf("expected http_requests_total in /metrics output")
	}
}

// TestAPI_ListUsersEmpty goes through the full middleware stack with a sqlmock-backed DB.
func TestAPI_ListUsersEmpty(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery(`SELECT id, username, created_at FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at"}))

	srv := httptest.NewServer(newRouter(conn, config.Config{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/users")
	if err != nil {
		t.Fatalf("users request: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "[]" {
		t.Errorf("GET /users: got %d %q, want 200 []", resp.StatusCode, body)
	}
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAPI_RejectsNonJSONBody(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	srv := httptest.NewServer(newRouter(conn, config.Config{}))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/users", "text/plain", strings.NewReader(`{"username":"x"}`))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnsupportedMediaType {
		t.Errorf("POST /users text/plain: got %d, want 415", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAPI_WriteRateLimit(t *testing.T) {
	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	cfg := config.Config{WriteRatePerMinute: 1, WriteRateBurst: 1}
	srv := httptest.NewServer(newRouter(conn, cfg))
	defer srv.Close()

	// Invalid bodies are rejected before touching the DB, so only the limiter differs.
	body := `{"username":"has space"}`
	first, err := http.Post(srv.URL+"/users", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	first.Body.Close()
	second, err := http.Post(srv.URL+"/users", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("second request: %v", err)
	}
	second.Body.Close()

	if first.StatusCode != http.StatusBadRequest || second.StatusCode != http.StatusTooManyRequests {
		t.Errorf("got %d then %d, want 400 then 429", first.StatusCode, second.StatusCode)
	}
}

func TestAPI_WriteRateDisabledFromEnv(t *testing.T) {
	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	t.Setenv("WRITE_RATE_PER_MINUTE", "0")
	t.Setenv("WRITE_RATE_BURST", "1")
	srv := httptest.NewServer(newRouter(conn, config.Load()))
	defer srv.Close()

	for i := 0; i < 3; i++ {
		resp, err := http.Post(srv.URL+"/users", "application/json", strings.NewReader(`{"username":"has space"}`))
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("request %d: got %d, want 400", i, resp.StatusCode)
		}
	}
}

// newSQLiteServer runs the full router over a migrated SQLite database.
func newSQLiteServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	cfg.DBDriver = config.DriverSQLite
	cfg.DBPath = filepath.Join(t.TempDir(), "api.db")
	cfg.DBMaxOpenConns = 4
	cfg.DBMaxIdleConns = 2
	require.NoError(t, db.Run(cfg.MigrateURL()))

	conn, err := db.Connect(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	srv := httptest.NewServer(newRouter(conn, cfg))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

// TestAPI_SQLiteLifecycle walks users and posts through the legacy status codes end to end.
func TestAPI_SQLiteLifecycle(t *testing.T) {
	srv := newSQLiteServer(t, config.Config{StatusCompat: true})

	resp, body := do(t, "GET", srv.URL+"/users", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(body))

	resp, body = do(t, "POST", srv.URL+"/users", `{"username":"before"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Len(t, created.ID, 36)
	assert.Equal(t, "before", created.Username)

	resp, _ = do(t, "POST", srv.URL+"/users", `{"username":"before"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "duplicate username")

	resp, _ = do(t, "GET", srv.URL+"/users/before", "")
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp, body = do(t, "PATCH", srv.URL+"/users/before", `{"username":"after"}`)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Contains(t, string(body), `"username":"after"`)

	resp, _ = do(t, "PATCH", srv.URL+"/users/after", `{"username":"has space"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = do(t, "GET", srv.URL+"/users/after", "")
	assert.Equal(t, http.StatusFound, resp.StatusCode, "rejected rename must leave the user in place")

	resp, body = do(t, "GET", srv.URL+"/posts", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(body))

	postBody, _ := json.Marshal(map[string]string{"user_id": created.ID, "message": "test message"})
	resp, body = do(t, "POST", srv.URL+"/posts", string(postBody))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var post map[string]string
	require.NoError(t, json.Unmarshal(body, &post))

	resp, fetchedBody := do(t, "GET", srv.URL+"/posts/"+post["id"], "")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	var fetched map[string]string
	require.NoError(t, json.Unmarshal(fetchedBody, &fetched))
	assert.Equal(t, post, fetched)

	resp, body = do(t, "DELETE", srv.URL+"/posts/"+post["id"], "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)
	resp, _ = do(t, "DELETE", srv.URL+"/posts/"+post["id"], "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, "DELETE", srv.URL+"/users", `{"username":"after"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body = do(t, "GET", srv.URL+"/users/after", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, body)
}

func TestAPI_SQLiteUsernameWithSlash(t *testing.T) {
	srv := newSQLiteServer(t, config.Config{})

	resp, _ := do(t, "POST", srv.URL+"/users", `{"username":"a/b"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := do(t, "GET", srv.URL+"/users/a%2Fb", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"username":"a/b"`)

	resp, body = do(t, "PATCH", srv.URL+"/users/a%2Fb", `{"username":"c/d"}`)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Contains(t, string(body), `"username":"c/d"`)

	resp, _ = do(t, "GET", srv.URL+"/users/c%2Fd", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, "GET", srv.URL+"/users/a%2Fb", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_SQLiteMessageLimit(t *testing.T) {
	srv := newSQLiteServer(t, config.Config{})

	ok, _ := json.Marshal(map[string]string{"user_id": "u", "message": strings.Repeat("a", 256)})
	resp, _ := do(t, "POST", srv.URL+"/posts", string(ok))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	tooLong, _ := json.Marshal(map[string]string{"user_id": "u", "message": strings.Repeat("a", 257)})
	resp, _ = do(t, "POST", srv.URL+"/posts", string(tooLong))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := do(t, "GET", srv.URL+"/posts", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []json.RawMessage
	require.NoError(t, json.NewDecoder(bytes.NewReader(body)).Decode(&list))
	assert.Len(t, list, 1)
}
