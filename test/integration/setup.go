package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/pollboard/api/internal/adapters/handler/http"
	repo "github.com/pollboard/api/internal/adapters/repository/postgres"
	"github.com/pollboard/api/internal/core/domain"
	"github.com/pollboard/api/internal/core/services"
)

const testJWTSecret = "test-secret"

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	require.NoError(t, applyMigrations(db))

	userRepo := repo.NewUserRepository(db)
	pollRepo := repo.NewPollRepository(db)
	choiceRepo := repo.NewChoiceRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	modRepo := repo.NewModeratorRepository(db)
	banRepo := repo.NewBanRepository(db)

	authSvc := services.NewAuthService(userRepo, []byte(testJWTSecret), 15*time.Minute)
	userSvc := services.NewUserService(userRepo)
	pollSvc := services.NewPollService(pollRepo)
	choiceSvc := services.NewChoiceService(choiceRepo, pollRepo)
	voteSvc := services.NewVoteService(voteRepo)
	modSvc := services.NewModerationService(modRepo, banRepo, userRepo)

	router := handler.NewRouter(handler.RouterDeps{
		Auth:          handler.NewAuthenticator(authSvc, userRepo),
		AuthHandler:   handler.NewAuthHandler(authSvc, "https://example.com/redirect", "", 900),
		Users:         handler.NewUserHandler(userSvc, authSvc),
		Polls:         handler.NewPollHandler(pollSvc),
		Choices:       handler.NewChoiceHandler(choiceSvc),
		Votes:         handler.NewVoteHandler(voteSvc),
		Moderators:    handler.NewModeratorHandler(modSvc),
		Bans:          handler.NewBanHandler(modSvc),
		AllowedOrigin: []string{"*"},
	})

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// do issues a JSON request against the test server, attaching the token
// as a bearer credential when given.
func (app *TestApp) do(t *testing.T, method, path, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, app.Server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerUser creates an account over the API and returns it.
func (app *TestApp) registerUser(t *testing.T, username string) *domain.User {
	t.Helper()

	resp := app.do(t, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret-" + username,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[*domain.User](t, resp)
}

// login exchanges the registered credentials for an access token.
func (app *TestApp) login(t *testing.T, username string) string {
	t.Helper()

	resp := app.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "secret-" + username,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	require.NotEmpty(t, body["access_token"])
	return body["access_token"]
}
