package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/plugueplus/plugueplus-api/internal/config"
	"github.com/plugueplus/plugueplus-api/internal/database"
	"github.com/plugueplus/plugueplus-api/internal/handler"
	"github.com/plugueplus/plugueplus-api/internal/middleware"
	"github.com/plugueplus/plugueplus-api/internal/queue"
	"github.com/plugueplus/plugueplus-api/internal/repository"
	"github.com/plugueplus/plugueplus-api/internal/response"
	"github.com/plugueplus/plugueplus-api/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set env vars directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBCharset)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.ErrorHandler(cfg.Debug)

	// Redis-backed response cache and rate limiting; both degrade to
	// pass-through middleware when redis is unreachable.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	users := repository.NewUserStore(db)
	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(cfg, users),
		Users:       handler.NewUserHandler(cfg, users),
		Categories:  handler.NewCategoryHandler(repository.NewCategoryStore(db)),
		Services:    handler.NewServiceHandler(repository.NewServiceStore(db)),
		Points:      handler.NewChargingPointHandler(repository.NewChargingPointStore(db)),
		Reviews:     handler.NewReviewHandler(repository.NewReviewStore(db), db),
		Posts:       handler.NewPostHandler(repository.NewPostStore(db), repository.NewPostLikeStore(db), repository.NewPostCommentStore(db), db),
		Classifieds: handler.NewClassifiedHandler(repository.NewClassifiedAdStore(db), repository.NewClassifiedImageStore(db), repository.NewClassifiedFavoriteStore(db), db),
	}
	router.RegisterRoutes(e, cfg, handlers)

	// Background consumer that turns feed activity events into the
	// activity log.  Runs forever with its own reconnect loop.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, base_path=%q)", addr, cfg.Env, cfg.BasePath)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
