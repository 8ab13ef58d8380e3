package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plugueplus/plugueplus-api/internal/model"
	"github.com/plugueplus/plugueplus-api/internal/repository"
	"github.com/plugueplus/plugueplus-api/internal/response"
	"github.com/plugueplus/plugueplus-api/internal/validation"
)

// ChargingPointHandler serves the EV charging point endpoints.
type ChargingPointHandler struct {
	Points *repository.Store[model.ChargingPoint]
}

func NewChargingPointHandler(points *repository.Store[model.ChargingPoint]) *ChargingPointHandler {
	return &ChargingPointHandler{Points: points}
}

func (h *ChargingPointHandler) Index(c echo.Context) error {
	page, perPage := pageParams(c)

	ctx, cancel := reqCtx(c)
	defer cancel()

	rows, meta, err := h.Points.Paginate(ctx, page, perPage)
	if err != nil {
		return err
	}
	return response.SuccessMeta(c, rows, "", meta)
}

func (h *ChargingPointHandler) Show(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	point, err := h.Points.FindByID(ctx, idParam(c))
	if err != nil {
		return err
	}
	if point == nil {
		return response.Error(c, http.StatusNotFound, "Charging point not found.", nil)
	}
	return response.Success(c, point, "")
}

func (h *ChargingPointHandler) Store(c echo.Context) error {
	data := payload(c)

	errs := validation.Validate(data, validation.Rules{
		"user_id":   {validation.Required()},
		"name":      {validation.Required()},
		"latitude":  {validation.Required()},
		"longitude": {validation.Required()},
	})
	if len(errs) > 0 {
		return response.Error(c, http.StatusUnprocessableEntity, "Invalid data.", errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Points.Create(ctx, data)
	if err != nil {
		return err
	}
	point, err := h.Points.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return response.Created(c, point, "Charging point created.")
}

func (h *ChargingPointHandler) Update(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := idParam(c)
	existing, err := h.Points.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return response.Error(c, http.StatusNotFound, "Charging point not found.", nil)
	}

	if _, err := h.Points.Update(ctx, id, payload(c)); err != nil {
		return err
	}
	point, err := h.Points.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return response.Success(c, point, "Charging point updated.")
}

func (h *ChargingPointHandler) Destroy(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := idParam(c)
	existing, err := h.Points.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return response.Error(c, http.StatusNotFound, "Charging point not found.", nil)
	}

	if _, err := h.Points.Delete(ctx, id); err != nil {
		return err
	}
	return response.Success(c, nil, "Charging point removed.")
}
