package handler // handler defines http handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/plugueplus/plugueplus-api/internal/repository"
)

// dbTimeout bounds every database call issued from a handler.
const dbTimeout = 5 * time.Second

// reqCtx derives a bounded context from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// pageParams reads the common page/per_page query parameters.  Absent
// parameters fall back to the defaults; unparsable or sub-1 values are
// clamped to 1 so offsets can never go negative.
func pageParams(c echo.Context) (page, perPage int) {
	page = intQuery(c, "page", 1)
	perPage = intQuery(c, "per_page", 20)
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	return page, perPage
}

func intQuery(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// idParam parses the :id path parameter.  Garbage parses to 0, which no
// row ever has, so lookups simply come back not-found.
func idParam(c echo.Context) int64 {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return id
}

// payload decodes the JSON request body into a column-keyed map.  An
// empty or malformed body yields an empty map; the validation rules on
// each endpoint then report the missing fields instead of a bare 400.
func payload(c echo.Context) repository.Fields {
	data := repository.Fields{}
	if body := c.Request().Body; body != nil {
		_ = json.NewDecoder(body).Decode(&data)
	}
	return data
}

// int64Of coerces a decoded JSON value (float64, string or int) into an
// int64, returning 0 when it cannot.
func int64Of(v any) int64 {
	switch t := v.(type) {
	case float64:
		return int64(t)
	case int64:
		return t
	case int:
		return int64(t)
	case string:
		n, _ := strconv.ParseInt(t, 10, 64)
		return n
	}
	return 0
}

// stringOf renders a payload value in its string form.
func stringOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// lastPage mirrors the meta math for handlers that window their own
// queries instead of going through Store.Paginate.
func lastPage(total int64, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	pages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		pages++
	}
	return int(pages)
}
