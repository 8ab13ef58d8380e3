package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugueplus/plugueplus-api/internal/repository"
)

func newReviewHandler(t *testing.T) (*ReviewHandler, sqlmock.Sqlmock) {
	sqlxDB, mock := newMockDB(t)
	return NewReviewHandler(repository.NewReviewStore(sqlxDB), sqlxDB), mock
}

func TestReviewIndexFilters(t *testing.T) {
	t.Run("no filters lists everything", func(t *testing.T) {
		h, mock := newReviewHandler(t)

		mock.ExpectQuery("SELECT COUNT(*) FROM reviews").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT * FROM reviews LIMIT ? OFFSET ?").
			WithArgs(20, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "rating"}).AddRow(1, 7, 5))

		rec, _ := doJSON(t, h.Index, http.MethodGet, "/reviews", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("point filter applies to count and data alike", func(t *testing.T) {
		h, mock := newReviewHandler(t)

		mock.ExpectQuery("SELECT COUNT(*) FROM reviews WHERE point_id = ?").
			WithArgs("5").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery("SELECT * FROM reviews WHERE point_id = ? LIMIT ? OFFSET ?").
			WithArgs("5", 20, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "point_id", "rating"}).
				AddRow(1, 7, 5, 5).AddRow(2, 8, 5, 3))

		_, env := doJSON(t, h.Index, http.MethodGet, "/reviews?point_id=5", "", nil)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(env["data"], &rows))
		assert.Len(t, rows, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("both filters are AND-combined", func(t *testing.T) {
		h, mock := newReviewHandler(t)

		mock.ExpectQuery("SELECT COUNT(*) FROM reviews WHERE point_id = ? AND service_id = ?").
			WithArgs("5", "9").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("SELECT * FROM reviews WHERE point_id = ? AND service_id = ? LIMIT ? OFFSET ?").
			WithArgs("5", "9", 20, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, env := doJSON(t, h.Index, http.MethodGet, "/reviews?point_id=5&service_id=9", "", nil)

		assert.JSONEq(t, `[]`, string(env["data"]))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewStore(t *testing.T) {
	t.Run("a zero rating still counts as present", func(t *testing.T) {
		h, mock := newReviewHandler(t)

		mock.ExpectExec("INSERT INTO reviews (point_id, rating, user_id) VALUES (?, ?, ?)").
			WithArgs(float64(5), float64(0), float64(7)).
			WillReturnResult(sqlmock.NewResult(3, 1))
		mock.ExpectQuery("SELECT * FROM reviews WHERE id = ? LIMIT 1").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "point_id", "rating"}).
				AddRow(3, 7, 5, 0))

		rec, env := doJSON(t, h.Store, http.MethodPost, "/reviews",
			`{"user_id":7,"point_id":5,"rating":0}`, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `"Review created."`, string(env["message"]))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a payload without a rating", func(t *testing.T) {
		h, _ := newReviewHandler(t)

		rec, env := doJSON(t, h.Store, http.MethodPost, "/reviews", `{"user_id":7}`, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var errs map[string][]string
		require.NoError(t, json.Unmarshal(env["errors"], &errs))
		assert.Equal(t, []string{"This field is required."}, errs["rating"])
	})
}
