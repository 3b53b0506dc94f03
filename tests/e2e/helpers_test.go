//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/mealtrack-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/mealtrack-backend/internal/app"
	"github.com/heartmarshall/mealtrack-backend/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL  string
	Pool *pgxpool.Pool
	srv  *httptest.Server
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Session: config.SessionConfig{
			CookieName: "sessionId",
			CookiePath: "/",
			TTL:        168 * time.Hour,
			HTTPOnly:   true,
			SameSite:   "lax",
		},
		Meals: config.MealsConfig{
			RoutePrefix:          "/meals",
			MaxNameLength:        255,
			MaxDescriptionLength: 2000,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "https://app.example",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
	}

	router := app.NewRouter(cfg, logger, pool)
	t.Cleanup(router.Close)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Pool: pool, srv: srv}
}

// newBrowser returns a client with its own cookie jar, standing in for one
// browser and therefore one session.
func (ts *testServer) newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	client := *ts.srv.Client()
	client.Jar = jar
	return &client
}

// do sends a JSON request and decodes the JSON response into a map.
func do(t *testing.T, client *http.Client, method, url string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// createMeal posts a meal and returns its id.
func createMeal(t *testing.T, ts *testServer, client *http.Client, body map[string]any) string {
	t.Helper()

	status, result := do(t, client, http.MethodPost, ts.URL+"/meals", body)
	require.Equal(t, http.StatusOK, status, "create meal: %v", result)

	id, ok := result["id"].(string)
	require.True(t, ok, "expected id in create response: %v", result)
	return id
}

// listMeals returns the "meals" array of GET /meals.
func listMeals(t *testing.T, ts *testServer, client *http.Client) []any {
	t.Helper()

	status, result := do(t, client, http.MethodGet, ts.URL+"/meals", nil)
	require.Equal(t, http.StatusOK, status, "list meals: %v", result)

	meals, ok := result["meals"].([]any)
	require.True(t, ok, "expected meals array: %v", result)
	return meals
}
