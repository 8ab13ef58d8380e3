package handler

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/plugueplus/plugueplus-api/internal/model"
	"github.com/plugueplus/plugueplus-api/internal/queue"
	"github.com/plugueplus/plugueplus-api/internal/repository"
	"github.com/plugueplus/plugueplus-api/internal/response"
	"github.com/plugueplus/plugueplus-api/internal/validation"
)

// ClassifiedHandler serves classified ads, their images and favorites.
// Showing an ad is the one read that spans two tables: the ad row plus
// all of its images, attached under the images field.
type ClassifiedHandler struct {
	Ads       *repository.Store[model.ClassifiedAd]
	Images    *repository.Store[model.ClassifiedImage]
	Favorites *repository.Store[model.ClassifiedFavorite]
	DB        *sqlx.DB
}

func NewClassifiedHandler(ads *repository.Store[model.ClassifiedAd], images *repository.Store[model.ClassifiedImage], favorites *repository.Store[model.ClassifiedFavorite], db *sqlx.DB) *ClassifiedHandler {
	return &ClassifiedHandler{Ads: ads, Images: images, Favorites: favorites, DB: db}
}

func (h *ClassifiedHandler) Index(c echo.Context) error {
	page, perPage := pageParams(c)

	ctx, cancel := reqCtx(c)
	defer cancel()

	rows, meta, err := h.Ads.Paginate(ctx, page, perPage)
	if err != nil {
		return err
	}
	return response.SuccessMeta(c, rows, "", meta)
}

func (h *ClassifiedHandler) Show(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := idParam(c)
	ad, err := h.Ads.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ad == nil {
		return response.Error(c, http.StatusNotFound, "Classified ad not found.", nil)
	}

	images, err := h.Images.FindAllBy(ctx, "classified_id", id)
	if err != nil {
		return err
	}
	ad.Images = images

	return response.Success(c, ad, "")
}

func (h *ClassifiedHandler) Store(c echo.Context) error {
	data := payload(c)

	errs := validation.Validate(data, validation.Rules{
		"user_id":     {validation.Required()},
		"category_id": {validation.Required()},
		"title":       {validation.Required()},
		"description": {validation.Required()},
		"price":       {validation.Required()},
	})
	if len(errs) > 0 {
		return response.Error(c, http.StatusUnprocessableEntity, "Invalid data.", errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Ads.Create(ctx, data)
	if err != nil {
		return err
	}
	ad, err := h.Ads.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return response.Created(c, ad, "Classified ad created.")
}

func (h *ClassifiedHandler) Update(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := idParam(c)
	existing, err := h.Ads.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return response.Error(c, http.StatusNotFound, "Classified ad not found.", nil)
	}

	if _, err := h.Ads.Update(ctx, id, payload(c)); err != nil {
		return err
	}
	ad, err := h.Ads.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return response.Success(c, ad, "Classified ad updated.")
}

func (h *ClassifiedHandler) Destroy(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	id := idParam(c)
	existing, err := h.Ads.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return response.Error(c, http.StatusNotFound, "Classified ad not found.", nil)
	}

	if _, err := h.Ads.Delete(ctx, id); err != nil {
		return err
	}
	return response.Success(c, nil, "Classified ad removed.")
}

// Favorite inserts the join row; a duplicate pair is rejected by the
// database constraint and surfaced as a 400.
func (h *ClassifiedHandler) Favorite(c echo.Context) error {
	classifiedID := idParam(c)
	data := payload(c)

	userID, ok := data["user_id"]
	if !ok || userID == nil {
		return response.Error(c, http.StatusUnprocessableEntity, "user_id is required.",
			map[string][]string{"user_id": {"Required"}})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Favorites.Create(ctx, repository.Fields{"user_id": userID, "classified_id": classifiedID}); err != nil {
		return response.Error(c, http.StatusBadRequest, "Could not favorite.",
			map[string][]string{"favorite": {err.Error()}})
	}

	publishActivity(queue.ActivityClassifiedFavorited, int64Of(userID), classifiedID)
	return response.Success(c, nil, "Favorite recorded.")
}

// Unfavorite removes the join row by pair; removing an absent favorite
// is still a success.
func (h *ClassifiedHandler) Unfavorite(c echo.Context) error {
	classifiedID := idParam(c)
	data := payload(c)

	userID, ok := data["user_id"]
	if !ok || userID == nil {
		return response.Error(c, http.StatusUnprocessableEntity, "user_id is required.",
			map[string][]string{"user_id": {"Required"}})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.DB.ExecContext(ctx,
		"DELETE FROM classified_favorites WHERE user_id = ? AND classified_id = ?", userID, classifiedID); err != nil {
		return err
	}
	return response.Success(c, nil, "Favorite removed.")
}
