package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plugueplus/plugueplus-api/internal/model"
	"github.com/plugueplus/plugueplus-api/internal/repository"
	"github.com/plugueplus/plugueplus-api/internal/response"
	"github.com/plugueplus/plugueplus-api/internal/validation"
)

// ServiceHandler serves the business listing endpoints.
type ServiceHandler struct {
	Services *repository.Store[model.Service]
}

func NewServiceHandler(services *repository.Store[model.Service]) *ServiceHandler {
	return &ServiceHandler{Services: services}
}

func (h *ServiceHandler) Index(c echo.Context) error {
	page, perPage := pageParams(c)

	ctx, cancel := reqCtx(c)
	defer cancel()

	rows, meta, err := h.Services.Paginate(ctx, page, perPage)
	if err != nil {
		return err
	}
	return response.SuccessMeta(c, rows, "", meta)
}

func (h *ServiceHandler) Show(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	service, err := h.Services.FindByID(ctx, idParam(c))
	if err != nil {
		return err
	}
	if service == nil {
		return response.Error(c, http.StatusNotFound, "Service not found.", nil)
	}
	return response.Success(c, service, "")
}

func (h *ServiceHandler) Store(c echo.Context) error {
	data := payload(c)

	errs := validation.Validate(data, validation.Rules{
		"user_id":     {validation.Required()},
		"category_id": {validation.Required()},
		"name":        {validation.Required()},
	})
	if len(errs) > 0 {
		return response.Error(c, http.StatusUnprocessableEntity, "Invalid data.", errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Services.Create(ctx, data)
	if err != nil {
		return err
	}
	service, err := h.Services.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return response.Created(c, service, "Service created.")
}

func (h *ServiceHandler) Update(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := idParam(c)
	existing, err := h.Services.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return response.Error(c, http.StatusNotFound, "Service not found.", nil)
	}

	if _, err := h.Services.Update(ctx, id, payload(c)); err != nil {
		return err
	}
	service, err := h.Services.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return response.Success(c, service, "Service updated.")
}

func (h *ServiceHandler) Destroy(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := idParam(c)
	existing, err := h.Services.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return response.Error(c, http.StatusNotFound, "Service not found.", nil)
	}

	if _, err := h.Services.Delete(ctx, id); err != nil {
		return err
	}
	return response.Success(c, nil, "Service removed.")
}
