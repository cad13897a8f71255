package http

import (
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resumeapp/config"
	"resumeapp/internal/delivery/http/middleware"
	"resumeapp/internal/delivery/http/router"
	"resumeapp/internal/delivery/http/router/handler"
	deliverymiddleware "resumeapp/internal/delivery/middleware"
	"resumeapp/internal/domain/entity"
	domainerrors "resumeapp/internal/domain/errors"
	"resumeapp/internal/domain/service"
	"resumeapp/internal/errors"
	usecasemocks "resumeapp/internal/mocks/usecase"
	"resumeapp/internal/usecase"
	"resumeapp/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

type testServer struct {
	echo     *echo.Echo
	authUC   *usecasemocks.MockAuthUsecase
	resumeUC *usecasemocks.MockResumeUsecase
	user     *entity.User
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Port:               8080,
			MaxRequestBodySize: "1KB",
			CORS:               config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}},
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authUC := usecasemocks.NewMockAuthUsecase(t)
	resumeUC := usecasemocks.NewMockResumeUsecase(t)

	e := NewEcho(HTTPParams{
		Config:              cfg,
		Logger:              logger,
		Validate:            util.NewValidator(),
		ErrorMiddleware:     middleware.NewErrorMiddleware(logger),
		RequestIDMiddleware: deliverymiddleware.NewRequestIDMiddleware(logger),
		LoggerMiddleware:    deliverymiddleware.NewLoggerMiddleware(logger, cfg),
		RouterParams: router.RouterParams{
			UserHandler:    handler.NewUserHandler(authUC),
			ResumeHandler:  handler.NewResumeHandler(resumeUC),
			AuthMiddleware: middleware.NewAuthMiddleware(authUC),
		},
	})

	return &testServer{
		echo:     e,
		authUC:   authUC,
		resumeUC: resumeUC,
		user: &entity.User{
			ID:        uuid.New(),
			Email:     "alice@example.com",
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}
}

func (s *testServer) expectAuthorized() {
	s.authUC.EXPECT().Authorize(mock.Anything, testToken).Return(s.user, nil)
}

func (s *testServer) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

func TestServer_HelloAndHealth(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, nethttp.MethodGet, "/", "", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec, env = s.do(t, nethttp.MethodGet, "/health/", "", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_Register(t *testing.T) {
	s := newTestServer(t)
	s.authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Email: "alice@example.com", Password: "password123"}).
		Return(&usecase.RegisterOutput{User: &entity.User{
			ID:           s.user.ID,
			Email:        s.user.Email,
			PasswordHash: "$2a$10$secret",
			CreatedAt:    s.user.CreatedAt,
		}}, nil)

	rec, env := s.do(t, nethttp.MethodPost, "/api/user/registration",
		`{"email":"alice@example.com","password":"password123"}`, "")

	assert.Equal(t, nethttp.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"id":"`+s.user.ID.String()+`","email":"alice@example.com","created_at":"2026-01-02T03:04:05Z"}`, string(env.Data))
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestServer_RegisterConflict(t *testing.T) {
	s := newTestServer(t)
	s.authUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrIdentityTaken.WrapMessage("register"))

	rec, env := s.do(t, nethttp.MethodPost, "/api/user/registration",
		`{"email":"alice@example.com","password":"password123"}`, "")

	assert.Equal(t, nethttp.StatusConflict, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "IDENTITY_TAKEN", env.Error.Code)
}

func TestServer_RegisterMalformedBody(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, nethttp.MethodPost, "/api/user/registration", `{"email":`, "")

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_BodyTooLarge(t *testing.T) {
	s := newTestServer(t)

	body := `{"email":"alice@example.com","password":"` + strings.Repeat("a", 2048) + `"}`
	rec, env := s.do(t, nethttp.MethodPost, "/api/user/registration", body, "")

	assert.Equal(t, nethttp.StatusRequestEntityTooLarge, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "REQUEST_ENTITY_TOO_LARGE", env.Error.Code)
}

func TestServer_Login(t *testing.T) {
	s := newTestServer(t)
	expiresAt := time.Date(2026, 1, 2, 3, 34, 5, 0, time.UTC)
	s.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "password123"}).
		Return(&usecase.LoginOutput{
			Token: &service.IssuedToken{AccessToken: "abc.def.ghi", TokenType: service.TokenTypeBearer, ExpiresAt: expiresAt},
			User:  s.user,
		}, nil)

	rec, env := s.do(t, nethttp.MethodPost, "/api/user/login",
		`{"email":"alice@example.com","password":"password123"}`, "")

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"abc.def.ghi","token_type":"bearer","expires_at":"2026-01-02T03:34:05Z"}`, string(env.Data))
}

func TestServer_LoginInvalidCredentials(t *testing.T) {
	s := newTestServer(t)
	s.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec, env := s.do(t, nethttp.MethodPost, "/api/user/login",
		`{"email":"alice@example.com","password":"wrong-password"}`, "")

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestServer_MeRequiresBearer(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, nethttp.MethodGet, "/api/user/me", "", "")

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestServer_MeRejectedToken(t *testing.T) {
	s := newTestServer(t)
	s.authUC.EXPECT().Authorize(mock.Anything, "tampered").
		Return(nil, domainerrors.NewUnauthorizedError(service.ErrTokenBadSignature))

	rec, env := s.do(t, nethttp.MethodGet, "/api/user/me", "", "tampered")

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "signature")
}

func TestServer_Me(t *testing.T) {
	s := newTestServer(t)
	s.expectAuthorized()

	rec, env := s.do(t, nethttp.MethodGet, "/api/user/me", "", testToken)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), s.user.ID.String())
}

func TestServer_ResumeLifecycle(t *testing.T) {
	s := newTestServer(t)
	s.expectAuthorized()

	resume := &entity.Resume{
		ID:        uuid.New(),
		UserID:    s.user.ID,
		Title:     "Backend Engineer",
		Content:   "Go, PostgreSQL",
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	newTitle := "Staff Engineer"

	s.resumeUC.EXPECT().
		Create(mock.Anything, s.user.ID, &usecase.CreateResumeInput{Title: "Backend Engineer", Content: "Go, PostgreSQL"}).
		Return(resume, nil)
	s.resumeUC.EXPECT().List(mock.Anything, s.user.ID).Return([]*entity.Resume{resume}, nil)
	s.resumeUC.EXPECT().Get(mock.Anything, s.user.ID, resume.ID).Return(resume, nil)
	s.resumeUC.EXPECT().
		Update(mock.Anything, s.user.ID, resume.ID, &usecase.UpdateResumeInput{Title: &newTitle}).
		Return(&entity.Resume{ID: resume.ID, UserID: s.user.ID, Title: newTitle, Content: resume.Content}, nil)
	s.resumeUC.EXPECT().Delete(mock.Anything, s.user.ID, resume.ID).Return(resume, nil)

	rec, env := s.do(t, nethttp.MethodPost, "/resume/", `{"title":"Backend Engineer","content":"Go, PostgreSQL"}`, testToken)
	assert.Equal(t, nethttp.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), resume.ID.String())

	rec, env = s.do(t, nethttp.MethodGet, "/resume", "", testToken)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	var listed []handler.ResumeResponse
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, resume.ID, listed[0].ID)

	rec, _ = s.do(t, nethttp.MethodGet, "/resume/"+resume.ID.String(), "", testToken)
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	rec, env = s.do(t, nethttp.MethodPut, "/resume/"+resume.ID.String(), `{"title":"Staff Engineer"}`, testToken)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	var updated handler.ResumeResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, resume.Content, updated.Content)

	rec, _ = s.do(t, nethttp.MethodDelete, "/resume/"+resume.ID.String()+"/", "", testToken)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestServer_ResumeEmptyList(t *testing.T) {
	s := newTestServer(t)
	s.expectAuthorized()
	s.resumeUC.EXPECT().List(mock.Anything, s.user.ID).Return(nil, nil)

	rec, env := s.do(t, nethttp.MethodGet, "/resume", "", testToken)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestServer_ResumeInvalidID(t *testing.T) {
	s := newTestServer(t)
	s.expectAuthorized()

	rec, env := s.do(t, nethttp.MethodGet, "/resume/not-a-uuid", "", testToken)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "id: uuid", env.Error.Details)
}

func TestServer_ResumeNotFound(t *testing.T) {
	s := newTestServer(t)
	s.expectAuthorized()
	otherID := uuid.New()
	s.resumeUC.EXPECT().Get(mock.Anything, s.user.ID, otherID).Return(nil, domainerrors.ErrResumeNotFound)

	rec, env := s.do(t, nethttp.MethodGet, "/resume/"+otherID.String(), "", testToken)

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RESUME_NOT_FOUND", env.Error.Code)
}

func TestServer_ResumeRequiresBearer(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, nethttp.MethodGet, "/resume", "", "")

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestServer_UnhandledErrorHidesDetails(t *testing.T) {
	s := newTestServer(t)
	s.expectAuthorized()
	s.resumeUC.EXPECT().List(mock.Anything, s.user.ID).Return(nil, errors.New("pq: relation does not exist"))

	rec, env := s.do(t, nethttp.MethodGet, "/resume", "", testToken)

	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestServer_RoutingErrors(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, nethttp.MethodGet, "/nope", "", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	rec, env = s.do(t, nethttp.MethodPost, "/health", "", "")
	assert.Equal(t, nethttp.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "METHOD_NOT_ALLOWED", env.Error.Code)
}

func TestServer_CORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(nethttp.MethodOptions, "/api/user/login", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, nethttp.MethodPost)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}
