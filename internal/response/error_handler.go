package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler returns the top-level boundary that converts uncaught
// errors (storage failures, panics recovered by echo, bad routes) into
// the envelope.  Internal detail is only revealed when debug mode is
// on; production responses carry a generic message.
func ErrorHandler(debug bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error."
		errs := map[string][]string{}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		} else if debug {
			errs["internal"] = []string{err.Error()}
		}

		if status >= http.StatusInternalServerError {
			log.Printf("request failed: %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		}

		if writeErr := Error(c, status, message, errs); writeErr != nil {
			log.Printf("error handler: write failed: %v", writeErr)
		}
	}
}
