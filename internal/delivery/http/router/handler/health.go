package handler

import (
	"net/http"

	"resumeapp/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Hello answers the root path.
func Hello(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"hello": "world"}, "Welcome to the resume service")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
