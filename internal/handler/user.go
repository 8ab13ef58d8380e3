package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plugueplus/plugueplus-api/internal/config"
	"github.com/plugueplus/plugueplus-api/internal/repository"
	"github.com/plugueplus/plugueplus-api/internal/response"
	"github.com/plugueplus/plugueplus-api/internal/utils"
	"github.com/plugueplus/plugueplus-api/internal/validation"
)

// UserHandler serves the user profile endpoints.  The password column
// never appears in output; the model strips it during serialization.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserStore
}

func NewUserHandler(cfg config.Config, users *repository.UserStore) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users}
}

func (h *UserHandler) Index(c echo.Context) error {
	page, perPage := pageParams(c)

	ctx, cancel := reqCtx(c)
	defer cancel()

	rows, meta, err := h.Users.Paginate(ctx, page, perPage)
	if err != nil {
		return err
	}
	return response.SuccessMeta(c, rows, "", meta)
}

func (h *UserHandler) Show(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	user, err := h.Users.FindByID(ctx, idParam(c))
	if err != nil {
		return err
	}
	if user == nil {
		return response.Error(c, http.StatusNotFound, "User not found.", nil)
	}
	return response.Success(c, user, "")
}

// Update applies a partial profile update.  A supplied password is
// re-hashed before it reaches the store; everything else passes through
// the fillable whitelist untouched.
func (h *UserHandler) Update(c echo.Context) error {
	data := payload(c)

	errs := validation.Validate(data, validation.Rules{
		"email": {validation.Email()},
	})
	if len(errs) > 0 {
		return response.Error(c, http.StatusUnprocessableEntity, "Invalid data.", errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id := idParam(c)
	user, err := h.Users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return response.Error(c, http.StatusNotFound, "User not found.", nil)
	}

	if plain, ok := data["password"]; ok {
		hash, err := utils.HashPassword(stringOf(plain), h.Cfg.BcryptCost)
		if err != nil {
			return err
		}
		data["password"] = hash
	}

	if _, err := h.Users.Update(ctx, id, data); err != nil {
		return err
	}
	updated, err := h.Users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return response.Success(c, updated, "User updated.")
}
