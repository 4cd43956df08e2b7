package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/platform/surreal"
	"github.com/yungbote/realista-backend/internal/store"
)

type App struct {
	Log       *logger.Logger
	Router    *gin.Engine
	Cfg       Config
	Repos     Repos
	Services  Services
	Pipelines Pipelines

	surreal *surreal.Client
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	client, err := surreal.NewFromEnv(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init surrealdb: %w", err)
	}
	var st store.Store
	if client != nil {
		st = surreal.NewStore(client, log)
	} else {
		log.Warn("SURREALDB_URL not set, running on the in-memory store")
		st = store.NewMemory()
	}

	reposet := wireRepos(st, log)
	serviceset := wireServices(reposet, log)
	pipelineset := wirePipelines(reposet, log)
	handlerset := wireHandlers(serviceset, pipelineset, log)
	router := wireRouter(handlerset, log)

	return &App{
		Log:       log,
		Router:    router,
		Cfg:       cfg,
		Repos:     reposet,
		Services:  serviceset,
		Pipelines: pipelineset,
		surreal:   client,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Port)
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.surreal != nil {
		if err := a.surreal.Close(context.Background()); err != nil {
			a.Log.Warn("Closing surrealdb connection failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
