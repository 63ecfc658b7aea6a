package integration

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	handler "github.com/classvote/urna/internal/adapters/handler/http"
	repo "github.com/classvote/urna/internal/adapters/repository/postgres"
	"github.com/classvote/urna/internal/core/domain"
	"github.com/classvote/urna/internal/core/ports"
	"github.com/classvote/urna/internal/core/services"
)

type fakeGoogleVerifier struct {
	email string
	name  string
}

func (v *fakeGoogleVerifier) Verify(ctx context.Context, token string, clientID string) (*ports.TokenPayload, error) {
	if token != "valid-google-token" {
		return nil, assert.AnError
	}
	return &ports.TokenPayload{Email: v.email, Name: v.name}, nil
}

func setupAuthTestApp(t *testing.T) *TestApp {
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
	userRepo := repo.NewUserRepository(db)
	authRepo := repo.NewAuthRepository(db)

	verifier := &fakeGoogleVerifier{email: "novo.eleitor@escola.example", name: "Novo Eleitor"}
	authSvc := services.NewAuthService(userRepo, authRepo, verifier)

	handlers := handler.Handlers{
		Voter:     handler.NewVoterHandler(services.NewVoterService(voterRepo)),
		Candidate: handler.NewCandidateHandler(services.NewCandidateService(candidateRepo)),
		Ballot:    handler.NewBallotHandler(services.NewBallotService(voterRepo, candidateRepo, voteRepo)),
		Result:    handler.NewResultHandler(services.NewResultService(resultRepo)),
		Auth:      handler.NewAuthHandler(authSvc, "", http.SameSiteLaxMode),
		User:      handler.NewUserHandler(services.NewUserService(userRepo)),
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

func (app *TestApp) createPasswordUser(t *testing.T, email, password string, role domain.Role) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	_, err = app.DB.Exec(
		"INSERT INTO users (email, name, password_hash, role) VALUES ($1, $2, $3, $4)",
		email, "Mesária Ana", string(hash), string(role),
	)
	require.NoError(t, err)
}

func sessionCookies(resp *http.Response) (accessToken, refreshToken string) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "access_token" {
			accessToken = cookie.Value
		}
		if cookie.Name == "refresh_token" {
			refreshToken = cookie.Value
		}
	}
	return accessToken, refreshToken
}

func TestLoginRefreshLogoutFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupAuthTestApp(t)
	defer app.Teardown(t)

	app.createPasswordUser(t, "ana@escola.example", "segredo123", domain.RoleMesario)

	// 1. Login sets both session cookies.
	resp := app.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ana@escola.example",
		"password": "segredo123",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	accessToken, refreshToken := sessionCookies(resp)
	require.NotEmpty(t, accessToken, "access_token cookie should be set")
	require.NotEmpty(t, refreshToken, "refresh_token cookie should be set")

	// 2. The access token authenticates /users/me.
	meResp := app.doJSON(t, http.MethodGet, "/api/users/me", accessToken, nil)
	require.Equal(t, http.StatusOK, meResp.StatusCode)
	me := decodeBody[domain.User](t, meResp)
	assert.Equal(t, "ana@escola.example", me.Email)
	assert.Equal(t, domain.RoleMesario, me.Role)

	// 3. Refresh mints a new access token. The iat claim has second
	// granularity, so wait for the clock to move.
	time.Sleep(1200 * time.Millisecond)

	req, err := http.NewRequest(http.MethodPost, app.Server.URL+"/api/auth/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})

	refreshResp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer refreshResp.Body.Close()
	require.Equal(t, http.StatusOK, refreshResp.StatusCode)

	newAccessToken, _ := sessionCookies(refreshResp)
	require.NotEmpty(t, newAccessToken)
	assert.NotEqual(t, accessToken, newAccessToken, "refresh should mint a new access token")

	// 4. Logout revokes the refresh token.
	req, err = http.NewRequest(http.MethodPost, app.Server.URL+"/api/auth/logout", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})

	logoutResp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer logoutResp.Body.Close()
	require.Equal(t, http.StatusOK, logoutResp.StatusCode)

	req, err = http.NewRequest(http.MethodPost, app.Server.URL+"/api/auth/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})

	revokedResp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer revokedResp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, revokedResp.StatusCode, "revoked refresh token should be rejected")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupAuthTestApp(t)
	defer app.Teardown(t)

	app.createPasswordUser(t, "ana@escola.example", "segredo123", domain.RoleMesario)

	resp := app.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ana@escola.example",
		"password": "senha-errada",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = app.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ninguem@escola.example",
		"password": "segredo123",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Garbage refresh tokens are rejected too.
	req, err := http.NewRequest(http.MethodPost, app.Server.URL+"/api/auth/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "garbage"})

	refreshResp, err := app.Client.Do(req)
	require.NoError(t, err)
	refreshResp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, refreshResp.StatusCode)
}

func TestGoogleLoginProvisionsVoter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupAuthTestApp(t)
	defer app.Teardown(t)

	resp := app.doJSON(t, http.MethodPost, "/api/auth/google", "", map[string]string{
		"credential": "valid-google-token",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	accessToken, refreshToken := sessionCookies(resp)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	// First-time Google users are created with the voter role.
	var role string
	err := app.DB.QueryRow("SELECT role FROM users WHERE email = $1", "novo.eleitor@escola.example").Scan(&role)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoleEleitor), role)

	meResp := app.doJSON(t, http.MethodGet, "/api/users/me", accessToken, nil)
	require.Equal(t, http.StatusOK, meResp.StatusCode)
	me := decodeBody[domain.User](t, meResp)
	assert.Equal(t, "novo.eleitor@escola.example", me.Email)

	badResp := app.doJSON(t, http.MethodPost, "/api/auth/google", "", map[string]string{
		"credential": "forged-token",
	})
	badResp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, badResp.StatusCode)

	missingResp := app.doJSON(t, http.MethodPost, "/api/auth/google", "", map[string]string{})
	missingResp.Body.Close()
	require.Equal(t, http.StatusBadRequest, missingResp.StatusCode)
}

func TestUsersMeRequiresToken(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupAuthTestApp(t)
	defer app.Teardown(t)

	resp := app.doJSON(t, http.MethodGet, "/api/users/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), domain.ErrUnauthorized.Error())

	badResp := app.doJSON(t, http.MethodGet, "/api/users/me", "not-a-jwt", nil)
	badResp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, badResp.StatusCode)
}
