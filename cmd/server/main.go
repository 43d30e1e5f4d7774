package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/danilom/inkbase/internal/auth"
	"github.com/danilom/inkbase/internal/config"
	"github.com/danilom/inkbase/internal/database"
	"github.com/danilom/inkbase/internal/docstore"
	"github.com/danilom/inkbase/internal/logger"
	"github.com/danilom/inkbase/internal/repository/docrepo"
	"github.com/danilom/inkbase/internal/service"
	"github.com/danilom/inkbase/internal/transport/http/handlers"
	"github.com/danilom/inkbase/internal/transport/http/middleware"
	"github.com/danilom/inkbase/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Database
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal("schema setup failed", zap.Error(err))
	}
	log.Info("connected to database", zap.String("db", cfg.DBName))

	store := docstore.NewPostgresStore(pool)

	// Repositories
	userRepo := docrepo.NewUserRepo(store)
	workspaceRepo := docrepo.NewWorkspaceRepo(store)
	pageRepo := docrepo.NewPageRepo(store)
	recordRepo := docrepo.NewRecordRepo(store)

	// Change feed
	hub := ws.NewHub(log)
	go hub.Run()
	notifier := ws.NewHubNotifier(hub, log)

	// Services
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	pageService := service.NewPageService(pageRepo, notifier)
	workspaceService := service.NewWorkspaceService(workspaceRepo, userRepo, pageService)
	authService := service.NewAuthService(userRepo, workspaceService, tokens)
	recordService := service.NewRecordService(recordRepo, pageRepo, notifier)

	// Routes
	router := handlers.NewRouter(handlers.RouterDeps{
		Auth:      handlers.NewAuthHandler(authService, log),
		Workspace: handlers.NewWorkspaceHandler(workspaceService, log),
		Page:      handlers.NewPageHandler(pageService, log),
		Record:    handlers.NewRecordHandler(recordService, log),
		AuthMW:    middleware.Auth(tokens, userRepo),
		WS:        ws.ServeWS(hub, tokens, log),
	})

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info("starting server", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
