package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plugueplus/plugueplus-api/internal/model"
	"github.com/plugueplus/plugueplus-api/internal/repository"
	"github.com/plugueplus/plugueplus-api/internal/response"
	"github.com/plugueplus/plugueplus-api/internal/validation"
)

// CategoryHandler serves the flat category lookup table.
type CategoryHandler struct {
	Categories *repository.Store[model.Category]
}

func NewCategoryHandler(categories *repository.Store[model.Category]) *CategoryHandler {
	return &CategoryHandler{Categories: categories}
}

func (h *CategoryHandler) Index(c echo.Context) error {
	page, perPage := pageParams(c)

	ctx, cancel := reqCtx(c)
	defer cancel()

	rows, meta, err := h.Categories.Paginate(ctx, page, perPage)
	if err != nil {
		return err
	}
	return response.SuccessMeta(c, rows, "", meta)
}

func (h *CategoryHandler) Store(c echo.Context) error {
	data := payload(c)

	errs := validation.Validate(data, validation.Rules{
		"name": {validation.Required()},
	})
	if len(errs) > 0 {
		return response.Error(c, http.StatusUnprocessableEntity, "Invalid data.", errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Categories.Create(ctx, data)
	if err != nil {
		return err
	}
	category, err := h.Categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return response.Created(c, category, "Category created.")
}

func (h *CategoryHandler) Update(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := idParam(c)
	existing, err := h.Categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return response.Error(c, http.StatusNotFound, "Category not found.", nil)
	}

	if _, err := h.Categories.Update(ctx, id, payload(c)); err != nil {
		return err
	}
	category, err := h.Categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return response.Success(c, category, "Category updated.")
}

func (h *CategoryHandler) Destroy(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := idParam(c)
	existing, err := h.Categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return response.Error(c, http.StatusNotFound, "Category not found.", nil)
	}

	if _, err := h.Categories.Delete(ctx, id); err != nil {
		return err
	}
	return response.Success(c, nil, "Category removed.")
}
