package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"resumeapp/internal/delivery/http/response"
	domainerrors "resumeapp/internal/domain/errors"
	"resumeapp/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response, *bytes.Buffer) {
	t.Helper()

	logs := &bytes.Buffer{}
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(logs, nil)))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/resume", nil), rec)
	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body, logs
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec, body, _ := handle(t, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("title: required"), "create"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "input validation failed", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "title: required", body.Error.Details)
	assert.Empty(t, rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestHandleHTTPError_UnauthorizedSetsChallenge(t *testing.T) {
	rec, body, _ := handle(t, domainerrors.NewUnauthorizedError(errors.New("token is expired")))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	assert.Empty(t, body.Error.Details)
}

func TestHandleHTTPError_StoreUnavailableIsLogged(t *testing.T) {
	rec, body, logs := handle(t, domainerrors.NewStoreUnavailableError(errors.New("dial tcp: refused"), "failed to list resumes"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "STORE_UNAVAILABLE", body.Error.Code)
	assert.Empty(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "failed to list resumes")
	assert.Contains(t, logs.String(), "failed to list resumes: dial tcp: refused")
}

func TestHandleHTTPError_EchoErrorWithNonStringMessage(t *testing.T) {
	rec, body, _ := handle(t, echo.NewHTTPError(http.StatusBadRequest, map[string]string{"field": "bad"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", body.Error.Code)
	assert.Equal(t, "map[field:bad]", body.Message)
}

func TestHandleHTTPError_UnknownErrorHidesDetails(t *testing.T) {
	rec, body, logs := handle(t, errors.New("secret driver message"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Empty(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "secret driver message")
	assert.Contains(t, logs.String(), "secret driver message")
}

func TestHTTPErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", httpErrorCode(http.StatusNotFound))
	assert.Equal(t, "METHOD_NOT_ALLOWED", httpErrorCode(http.StatusMethodNotAllowed))
	assert.Equal(t, "HTTP_ERROR", httpErrorCode(599))
}
