package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/classvote/urna/internal/adapters/handler/http"
	repo "github.com/classvote/urna/internal/adapters/repository/postgres"
	"github.com/classvote/urna/internal/core/domain"
	"github.com/classvote/urna/internal/core/services"
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func setupTestApp(t *testing.T) *TestApp {
	os.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	voterRepo := repo.NewVoterRepository(db)
	candidateRepo := repo.NewCandidateRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	resultRepo := repo.NewResultRepository(db)

	handlers := handler.Handlers{
		Voter:     handler.NewVoterHandler(services.NewVoterService(voterRepo)),
		Candidate: handler.NewCandidateHandler(services.NewCandidateService(candidateRepo)),
		Ballot:    handler.NewBallotHandler(services.NewBallotService(voterRepo, candidateRepo, voteRepo)),
		Result:    handler.NewResultHandler(services.NewResultService(resultRepo)),
	}
	router := handler.NewHandler(handlers, []string{"*"})

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
	require.NoError(t, app.DB.Close())
	require.NoError(t, app.DBContainer.Terminate(context.Background()))
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase(dbName),
		tcpostgres.WithUsername(user),
		tcpostgres.WithPassword(password),
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
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func (app *TestApp) createUserAndToken(t *testing.T, role domain.Role) string {
	t.Helper()

	userID := uuid.New()
	email := fmt.Sprintf("user-%s@example.com", userID)
	name := fmt.Sprintf("User %s", userID)
	_, err := app.DB.Exec("INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4)", userID, email, name, string(role))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"role":  string(role),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signedToken
}

func (app *TestApp) doJSON(t *testing.T, method, path, token string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, app.Server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (app *TestApp) registerVoter(t *testing.T, token, number, name string) *domain.Voter {
	t.Helper()

	resp := app.doJSON(t, http.MethodPost, "/api/voters", token, map[string]string{
		"registration_number": number,
		"name":                name,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	voter := decodeBody[domain.Voter](t, resp)
	return &voter
}

func (app *TestApp) addCandidate(t *testing.T, token, number, name, position string) *domain.Candidate {
	t.Helper()

	resp := app.doJSON(t, http.MethodPost, "/api/candidates", token, map[string]string{
		"number":   number,
		"name":     name,
		"position": position,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	candidate := decodeBody[domain.Candidate](t, resp)
	return &candidate
}

func (app *TestApp) fetchResults(t *testing.T) map[string]domain.ResultRow {
	t.Helper()

	resp := app.doJSON(t, http.MethodGet, "/api/results", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := decodeBody[[]domain.ResultRow](t, resp)

	byRef := make(map[string]domain.ResultRow, len(rows))
	for _, row := range rows {
		byRef[row.Ref] = row
	}
	return byRef
}
