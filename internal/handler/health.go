package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project

	"github.com/plugueplus/plugueplus-api/internal/response"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.  It returns
// a plain text "ok" message with an HTTP 200 status code.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Ping is the API-facing liveness check.  Unlike Health it speaks the
// envelope so mobile clients can probe connectivity through the same
// parser they use everywhere else.
func Ping(c echo.Context) error {
	return response.Success(c, map[string]any{"pong": true}, "API online")
}
