package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/plugueplus/plugueplus-api/internal/config"
	"github.com/plugueplus/plugueplus-api/internal/middleware"
	"github.com/plugueplus/plugueplus-api/internal/repository"
	"github.com/plugueplus/plugueplus-api/internal/utils"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	sqlxDB, mock := newMockDB(t)
	cfg := config.Config{JWTSecret: "test-secret", JWTTTLSec: 3600, BcryptCost: bcrypt.MinCost}
	return NewAuthHandler(cfg, repository.NewUserStore(sqlxDB)), mock
}

// doJSON dispatches a handler with a JSON body and decodes the envelope.
func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, setup func(c echo.Context)) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	require.NoError(t, h(c))

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func userRows(id int64, name, email, password, userType string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password", "user_type"}).
		AddRow(id, name, email, password, userType)
}

func TestRegister(t *testing.T) {
	t.Run("stores the user and echoes back the canonical row", func(t *testing.T) {
		h, mock := newAuthHandler(t)

		mock.ExpectQuery("SELECT * FROM users WHERE email = ? LIMIT 1").
			WithArgs("ana@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectExec("INSERT INTO users (email, name, password, user_type) VALUES (?, ?, ?, ?)").
			WithArgs("ana@example.com", "Ana", sqlmock.AnyArg(), "owner").
			WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectQuery("SELECT * FROM users WHERE id = ? LIMIT 1").
			WithArgs(int64(7)).
			WillReturnRows(userRows(7, "Ana", "ana@example.com", "$2a$hash", "owner"))

		rec, env := doJSON(t, h.Register, http.MethodPost, "/auth/register",
			`{"name":"Ana","email":"ana@example.com","password":"secret1"}`, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `"User registered successfully."`, string(env["message"]))

		var data map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(env["data"], &data))
		assert.JSONEq(t, `"ana@example.com"`, string(data["email"]))
		assert.NotContains(t, data, "password")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a duplicate email with 409", func(t *testing.T) {
		h, mock := newAuthHandler(t)

		mock.ExpectQuery("SELECT * FROM users WHERE email = ? LIMIT 1").
			WithArgs("ana@example.com").
			WillReturnRows(userRows(7, "Ana", "ana@example.com", "$2a$hash", "owner"))

		rec, env := doJSON(t, h.Register, http.MethodPost, "/auth/register",
			`{"name":"Ana","email":"ana@example.com","password":"secret1"}`, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `"Email already registered."`, string(env["message"]))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects invalid payload before touching storage", func(t *testing.T) {
		h, _ := newAuthHandler(t)

		rec, env := doJSON(t, h.Register, http.MethodPost, "/auth/register",
			`{"name":"","email":"not-an-email","password":"abc"}`, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var errs map[string][]string
		require.NoError(t, json.Unmarshal(env["errors"], &errs))
		assert.Equal(t, []string{"This field is required."}, errs["name"])
		assert.Equal(t, []string{"Invalid email address."}, errs["email"])
		assert.Equal(t, []string{"Must be at least 6 characters."}, errs["password"])
	})
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("returns a signed token with the user", func(t *testing.T) {
		h, mock := newAuthHandler(t)

		mock.ExpectQuery("SELECT * FROM users WHERE email = ? LIMIT 1").
			WithArgs("ana@example.com").
			WillReturnRows(userRows(7, "Ana", "ana@example.com", hash, "owner"))

		rec, env := doJSON(t, h.Login, http.MethodPost, "/auth/login",
			`{"email":"ana@example.com","password":"secret1"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			Token string                     `json:"token"`
			User  map[string]json.RawMessage `json:"user"`
		}
		require.NoError(t, json.Unmarshal(env["data"], &data))
		assert.NotEmpty(t, data.Token)
		assert.JSONEq(t, `"ana@example.com"`, string(data.User["email"]))
		assert.NotContains(t, data.User, "password")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		h, mock := newAuthHandler(t)

		mock.ExpectQuery("SELECT * FROM users WHERE email = ? LIMIT 1").
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		recUnknown, _ := doJSON(t, h.Login, http.MethodPost, "/auth/login",
			`{"email":"ghost@example.com","password":"secret1"}`, nil)

		mock.ExpectQuery("SELECT * FROM users WHERE email = ? LIMIT 1").
			WithArgs("ana@example.com").
			WillReturnRows(userRows(7, "Ana", "ana@example.com", hash, "owner"))
		recWrong, _ := doJSON(t, h.Login, http.MethodPost, "/auth/login",
			`{"email":"ana@example.com","password":"nope99"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
		assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
		assert.Equal(t, recUnknown.Body.String(), recWrong.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMe(t *testing.T) {
	h, _ := newAuthHandler(t)

	t.Run("echoes the decoded claims", func(t *testing.T) {
		rec, env := doJSON(t, h.Me, http.MethodGet, "/auth/me", "", func(c echo.Context) {
			c.Set(middleware.ClaimsKey, jwt.MapClaims{
				"sub": float64(7), "email": "ana@example.com", "user_type": "owner",
			})
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		var data map[string]any
		require.NoError(t, json.Unmarshal(env["data"], &data))
		assert.Equal(t, "ana@example.com", data["email"])
	})

	t.Run("rejects a request that skipped the gate", func(t *testing.T) {
		rec, env := doJSON(t, h.Me, http.MethodGet, "/auth/me", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `"Not authenticated."`, string(env["message"]))
	})
}
