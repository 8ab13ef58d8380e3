package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func queryCtx(rawQuery string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestPageParams(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		page    int
		perPage int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "page=3&per_page=5", 3, 5},
		{"zero clamps to one", "page=0&per_page=0", 1, 1},
		{"negative clamps to one", "page=-2&per_page=-9", 1, 1},
		{"garbage falls back to defaults", "page=abc&per_page=xyz", 1, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, perPage := pageParams(queryCtx(tc.query))
			assert.Equal(t, tc.page, page)
			assert.Equal(t, tc.perPage, perPage)
		})
	}
}

func TestIDParam(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")

	c.SetParamValues("42")
	assert.Equal(t, int64(42), idParam(c))

	// Garbage parses to 0, which never matches a row.
	c.SetParamValues("abc")
	assert.Equal(t, int64(0), idParam(c))
}

func TestPayload(t *testing.T) {
	e := echo.New()

	t.Run("decodes a JSON object", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana","rating":4}`))
		c := e.NewContext(req, httptest.NewRecorder())

		data := payload(c)
		assert.Equal(t, "Ana", data["name"])
		assert.Equal(t, float64(4), data["rating"])
	})

	t.Run("malformed body yields an empty map", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{not json`))
		c := e.NewContext(req, httptest.NewRecorder())

		assert.Empty(t, payload(c))
	})

	t.Run("empty body yields an empty map", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		c := e.NewContext(req, httptest.NewRecorder())

		assert.Empty(t, payload(c))
	})
}

func TestLastPage(t *testing.T) {
	assert.Equal(t, 0, lastPage(0, 20))
	assert.Equal(t, 1, lastPage(1, 20))
	assert.Equal(t, 1, lastPage(20, 20))
	assert.Equal(t, 2, lastPage(21, 20))
	assert.Equal(t, 3, lastPage(12, 5))
}

func TestInt64Of(t *testing.T) {
	assert.Equal(t, int64(7), int64Of(float64(7)))
	assert.Equal(t, int64(7), int64Of(int64(7)))
	assert.Equal(t, int64(7), int64Of(7))
	assert.Equal(t, int64(7), int64Of("7"))
	assert.Equal(t, int64(0), int64Of("abc"))
	assert.Equal(t, int64(0), int64Of(nil))
}

func TestHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	assert.NoError(t, Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
