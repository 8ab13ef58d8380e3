package handler

import (
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/plugueplus/plugueplus-api/internal/model"
	"github.com/plugueplus/plugueplus-api/internal/repository"
	"github.com/plugueplus/plugueplus-api/internal/response"
	"github.com/plugueplus/plugueplus-api/internal/validation"
)

// ReviewHandler serves review listing and creation.  Listing bypasses
// the generic paginate because it supports optional point_id/service_id
// filters that must apply to both the count and the data query.
type ReviewHandler struct {
	Reviews *repository.Store[model.Review]
	DB      *sqlx.DB
}

func NewReviewHandler(reviews *repository.Store[model.Review], db *sqlx.DB) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews, DB: db}
}

func (h *ReviewHandler) Index(c echo.Context) error {
	page, perPage := pageParams(c)

	// Zero, one or two filters, AND-combined.  Values are bound, never
	// concatenated into the SQL text.
	conditions := []string{}
	args := []any{}
	if v := c.QueryParam("point_id"); v != "" {
		conditions = append(conditions, "point_id = ?")
		args = append(args, v)
	}
	if v := c.QueryParam("service_id"); v != "" {
		conditions = append(conditions, "service_id = ?")
		args = append(args, v)
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	var total int64
	if err := h.DB.GetContext(ctx, &total, "SELECT COUNT(*) FROM reviews"+where, args...); err != nil {
		return err
	}

	offset := (page - 1) * perPage
	rows := []model.Review{}
	query := "SELECT * FROM reviews" + where + " LIMIT ? OFFSET ?"
	if err := h.DB.Unsafe().SelectContext(ctx, &rows, query, append(args, perPage, offset)...); err != nil {
		return err
	}

	meta := repository.Meta{
		Page:     page,
		PerPage:  perPage,
		Total:    total,
		LastPage: lastPage(total, perPage),
	}
	return response.SuccessMeta(c, rows, "", meta)
}

func (h *ReviewHandler) Store(c echo.Context) error {
	data := payload(c)

	errs := validation.Validate(data, validation.Rules{
		"user_id": {validation.Required()},
		"rating":  {validation.Required()},
	})
	if len(errs) > 0 {
		return response.Error(c, http.StatusUnprocessableEntity, "Invalid data.", errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Reviews.Create(ctx, data)
	if err != nil {
		return err
	}
	review, err := h.Reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return response.Created(c, review, "Review created.")
}
