package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/plugueplus/plugueplus-api/internal/config"
	"github.com/plugueplus/plugueplus-api/internal/handler"
	"github.com/plugueplus/plugueplus-api/internal/middleware"
)

// Handlers bundles every controller the router wires up.  The struct
// keeps RegisterRoutes' signature stable as resource families grow.
type Handlers struct {
	Auth        *handler.AuthHandler
	Users       *handler.UserHandler
	Categories  *handler.CategoryHandler
	Services    *handler.ServiceHandler
	Points      *handler.ChargingPointHandler
	Reviews     *handler.ReviewHandler
	Posts       *handler.PostHandler
	Classifieds *handler.ClassifiedHandler
}

// RegisterRoutes registers the whole API surface under the configured
// base path plus /api/v1.  Only /auth/me sits behind the bearer-token
// gate; every other endpoint is open, mirroring the product's current
// trust model where ownership is asserted by user_id in the payload.
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	// Health endpoint for load balancers, outside the versioned API.
	e.GET("/healthz", handler.Health)

	g := e.Group(cfg.BasePath + "/api/v1")

	g.GET("/ping", handler.Ping)

	// Auth
	g.POST("/auth/register", h.Auth.Register)
	g.POST("/auth/login", h.Auth.Login)
	g.GET("/auth/me", h.Auth.Me, middleware.JWTAuth(cfg.JWTSecret))

	// Users
	g.GET("/users", h.Users.Index)
	g.GET("/users/:id", h.Users.Show)
	g.PUT("/users/:id", h.Users.Update)

	// Categories
	g.GET("/categories", h.Categories.Index)
	g.POST("/categories", h.Categories.Store)
	g.PUT("/categories/:id", h.Categories.Update)
	g.DELETE("/categories/:id", h.Categories.Destroy)

	// Services
	g.GET("/services", h.Services.Index)
	g.GET("/services/:id", h.Services.Show)
	g.POST("/services", h.Services.Store)
	g.PUT("/services/:id", h.Services.Update)
	g.DELETE("/services/:id", h.Services.Destroy)

	// Charging points
	g.GET("/charging-points", h.Points.Index)
	g.GET("/charging-points/:id", h.Points.Show)
	g.POST("/charging-points", h.Points.Store)
	g.PUT("/charging-points/:id", h.Points.Update)
	g.DELETE("/charging-points/:id", h.Points.Destroy)

	// Reviews
	g.GET("/reviews", h.Reviews.Index)
	g.POST("/reviews", h.Reviews.Store)

	// Posts (social feed)
	g.GET("/posts", h.Posts.Index)
	g.GET("/posts/:id", h.Posts.Show)
	g.POST("/posts", h.Posts.Store)
	g.DELETE("/posts/:id", h.Posts.Destroy)
	g.POST("/posts/:id/like", h.Posts.Like)
	g.DELETE("/posts/:id/like", h.Posts.Unlike)
	g.POST("/posts/:id/comment", h.Posts.Comment)
	g.GET("/posts/:id/comments", h.Posts.ListComments)

	// Classifieds
	g.GET("/classifieds", h.Classifieds.Index)
	g.GET("/classifieds/:id", h.Classifieds.Show)
	g.POST("/classifieds", h.Classifieds.Store)
	g.PUT("/classifieds/:id", h.Classifieds.Update)
	g.DELETE("/classifieds/:id", h.Classifieds.Destroy)
	g.POST("/classifieds/:id/favorite", h.Classifieds.Favorite)
	g.DELETE("/classifieds/:id/favorite", h.Classifieds.Unfavorite)
}
