//go:build e2e

package e2e_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/devtrack-inbox/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/devtrack-inbox/internal/app"
	authpkg "github.com/heartmarshall/devtrack-inbox/internal/auth"
	"github.com/heartmarshall/devtrack-inbox/internal/config"
	"github.com/heartmarshall/devtrack-inbox/internal/transport/middleware"
	"github.com/heartmarshall/devtrack-inbox/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.Verifier
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{RateLimitPerMinute: 0},
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		Inbox: config.InboxConfig{
			SentNotesLimit:          500,
			MentionScanWindow:       3000,
			SentAnswersLimit:        500,
			ReceivedAnswersLimit:    500,
			MembershipEntitiesLimit: 500,
			MembershipAnswersLimit:  1000,
			DefaultPageSize:         20,
			MaxPageSize:             100,
			BodyPreviewLength:       200,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()

	verifier := authpkg.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	svc := app.NewInboxService(logger, pool, cfg.Inbox)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := app.NewRouter(logger, cfg, app.Handlers{
		Health: rest.NewHealthHandler("test-version", rest.Check{Name: "database", Target: pool}),
		Inbox:  rest.NewInboxHandler(svc, logger),
	}, verifier, limiter)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    verifier,
	}
}

// tokenFor mints an access token for userID.
func (ts *testServer) tokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := ts.jwt.Issue(userID)
	require.NoError(t, err)
	return token
}

// feedItem mirrors one element of the GET /inbox items array.
type feedItem struct {
	Kind         string   `json:"kind"`
	Direction    string   `json:"direction"`
	ItemID       string   `json:"itemId"`
	QuestionID   *string  `json:"questionId"`
	Timestamp    int64    `json:"timestamp"`
	Body         string   `json:"body"`
	AuthorName   string   `json:"authorName"`
	Recipients   []string `json:"recipients"`
	QuestionText *string  `json:"questionText"`
	Entity       struct {
		Kind       string `json:"kind"`
		ID         string `json:"id"`
		Title      string `json:"title"`
		Identifier string `json:"identifier"`
	} `json:"entity"`
}

type feedPage struct {
	Items        []feedItem `json:"items"`
	NextBeforeTs *int64     `json:"nextBeforeTs"`
}

// getInbox calls GET /inbox with params and returns the status code and the
// raw decoded body.
func (ts *testServer) getInbox(t *testing.T, token string, params url.Values) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/inbox?"+params.Encode(), nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// feed calls GET /inbox and decodes a successful page.
func (ts *testServer) feed(t *testing.T, token string, params url.Values) feedPage {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/inbox?"+params.Encode(), nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page feedPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	return page
}
