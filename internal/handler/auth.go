package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plugueplus/plugueplus-api/internal/config"
	"github.com/plugueplus/plugueplus-api/internal/middleware"
	"github.com/plugueplus/plugueplus-api/internal/repository"
	"github.com/plugueplus/plugueplus-api/internal/response"
	"github.com/plugueplus/plugueplus-api/internal/utils"
	"github.com/plugueplus/plugueplus-api/internal/validation"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserStore
}

func NewAuthHandler(cfg config.Config, users *repository.UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// Register: create user and echo back the canonical row.  The database,
// not the input payload, is the source of truth for what got stored.
func (h *AuthHandler) Register(c echo.Context) error {
	data := payload(c)

	errs := validation.Validate(data, validation.Rules{
		"name":     {validation.Required()},
		"email":    {validation.Required(), validation.Email()},
		"password": {validation.Required(), validation.Min(6)},
	})
	if len(errs) > 0 {
		return response.Error(c, http.StatusUnprocessableEntity, "Invalid data.", errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	email, _ := data["email"].(string)
	existing, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return response.Error(c, http.StatusConflict, "Email already registered.",
			map[string][]string{"email": {"Email already exists."}})
	}

	plain, _ := data["password"].(string)
	hash, err := utils.HashPassword(plain, h.Cfg.BcryptCost)
	if err != nil {
		return err
	}
	data["password"] = hash
	if _, ok := data["user_type"]; !ok {
		data["user_type"] = "owner"
	}

	id, err := h.Users.Create(ctx, data)
	if err != nil {
		return err
	}
	user, err := h.Users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	return response.Created(c, user, "User registered successfully.")
}

// Login: verify credentials and hand out a signed access token.  Unknown
// email and wrong password produce the same 401 so the response never
// reveals whether an account exists.
func (h *AuthHandler) Login(c echo.Context) error {
	data := payload(c)

	errs := validation.Validate(data, validation.Rules{
		"email":    {validation.Required(), validation.Email()},
		"password": {validation.Required()},
	})
	if len(errs) > 0 {
		return response.Error(c, http.StatusUnprocessableEntity, "Invalid data.", errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	email, _ := data["email"].(string)
	user, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	plain, _ := data["password"].(string)
	if user == nil || !utils.VerifyPassword(user.Password, plain) {
		return response.Error(c, http.StatusUnauthorized, "Invalid credentials.",
			map[string][]string{"email": {"Incorrect user or password."}})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, *user, h.Cfg.JWTTTLSec)
	if err != nil {
		return err
	}

	return response.Success(c, map[string]any{"token": access.Token, "user": user}, "Login successful.")
}

// Me returns the claims the auth gate decoded for this request.
func (h *AuthHandler) Me(c echo.Context) error {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		return response.Error(c, http.StatusUnauthorized, "Not authenticated.", nil)
	}
	return response.Success(c, claims, "Authenticated user.")
}
