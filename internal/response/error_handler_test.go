package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, debug bool, err error) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(debug)(err, c)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestErrorHandlerKeepsHTTPErrorStatus(t *testing.T) {
	rec, env := handleError(t, false, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Message)
	assert.Equal(t, "Not Found", *env.Message)
}

func TestErrorHandlerHidesInternalDetailInProduction(t *testing.T) {
	rec, env := handleError(t, false, errors.New("dial tcp 10.0.0.3:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Message)
	assert.Equal(t, "Internal server error.", *env.Message)
	assert.Empty(t, env.Errors)
}

func TestErrorHandlerExposesInternalDetailInDebug(t *testing.T) {
	_, env := handleError(t, true, errors.New("dial tcp 10.0.0.3:3306: connection refused"))

	require.Len(t, env.Errors["internal"], 1)
	assert.Contains(t, env.Errors["internal"][0], "connection refused")
}
