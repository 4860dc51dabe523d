package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"task-service/internal/application/services"
	"task-service/internal/config"
	"task-service/internal/delivery/handler"
	"task-service/internal/infrastructure"
	"task-service/internal/infrastructure/db/postgres"
)

func main() {
	// Missing .env is fine; the environment may be set by the deployment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	db, err := postgres.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret)
	tokenCache := infrastructure.NewTokenCache(cfg)
	defer tokenCache.Close()

	userService := services.NewUserService(userRepo, jwtService, tokenCache)
	taskService := services.NewTaskService(taskRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h := handler.NewHandler(userService, taskService)
	authMiddleware := handler.NewAuthMiddleware(jwtService, userRepo)
	handler.RegisterRoutes(e, h, authMiddleware)

	e.Server.ReadHeaderTimeout = 62 * time.Second
	e.Server.IdleTimeout = 61 * time.Second

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}
