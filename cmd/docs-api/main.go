package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/ibdaa-school/docgen-api/api/swagger"
	"github.com/ibdaa-school/docgen-api/internal/compose"
	"github.com/ibdaa-school/docgen-api/internal/handler"
	"github.com/ibdaa-school/docgen-api/internal/middleware"
	"github.com/ibdaa-school/docgen-api/internal/repository"
	"github.com/ibdaa-school/docgen-api/internal/service"
	"github.com/ibdaa-school/docgen-api/pkg/cache"
	"github.com/ibdaa-school/docgen-api/pkg/config"
	"github.com/ibdaa-school/docgen-api/pkg/database"
	"github.com/ibdaa-school/docgen-api/pkg/jobs"
	"github.com/ibdaa-school/docgen-api/pkg/logger"
	corsmiddleware "github.com/ibdaa-school/docgen-api/pkg/middleware/cors"
	reqidmiddleware "github.com/ibdaa-school/docgen-api/pkg/middleware/requestid"
	"github.com/ibdaa-school/docgen-api/pkg/storage"
)

// @title Ibdaa DocGen API
// @version 0.1.0
// @description Local disciplinary document generator for school administration
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewSQLite(cfg.Store)
	if err != nil {
		logr.Sugar().Fatalw("failed to open local store", "path", cfg.Store.Path, "error", err)
	}
	defer db.Close() //nolint:errcheck

	collections := repository.NewCollectionRepository(db, cfg.Store.QuotaBytes)
	settingsRepo := repository.NewSettingsRepository(collections)
	directoryRepo := repository.NewDirectoryRepository(collections)
	archiveRepo := repository.NewArchiveRepository(collections)

	metrics := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Preview.CacheEnabled {
		client, redisErr := cache.NewRedis(cfg.Redis)
		if redisErr != nil {
			logr.Warn("redis unavailable, preview cache disabled", zap.Error(redisErr))
		} else {
			cacheSvc = service.NewCacheService(repository.NewCacheRepository(client, logr), metrics, cfg.Preview.CacheTTL, logr, true)
		}
	}
	if cacheSvc == nil {
		cacheSvc = service.NewCacheService(nil, metrics, cfg.Preview.CacheTTL, logr, false)
	}

	persistQueue := jobs.NewQueue("persist", service.NewPersistHandler(settingsRepo, directoryRepo, archiveRepo, metrics, logr), jobs.QueueConfig{
		Workers:    1,
		BufferSize: cfg.Persist.BufferSize,
		MaxRetries: cfg.Persist.MaxRetries,
		RetryDelay: cfg.Persist.RetryDelay,
		Logger:     logr,
	})
	persistQueue.Start(ctx)
	defer persistQueue.Stop()

	workspace := service.NewWorkspaceService(service.WorkspaceServiceParams{
		Settings:  settingsRepo,
		Directory: directoryRepo,
		Archive:   archiveRepo,
		Usage:     collections,
		Queue:     persistQueue,
		Logger:    logr,
	})

	fileStore, err := storage.NewLocalStorage(cfg.Export.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare export storage", "dir", cfg.Export.StorageDir, "error", err)
	}

	exportSvc := service.NewExportService(service.ExportServiceParams{
		Workspace: workspace,
		Composer:  compose.New(compose.DefaultLetterhead(cfg.School.Directorate, cfg.School.Name)),
		Storage:   fileStore,
		Signer:    storage.NewSignedURLSigner(cfg.Export.SignedURLSecret, cfg.Export.SignedURLTTL),
		Cache:     cacheSvc,
		Metrics:   metrics,
		Logger:    logr,
		Config: service.ExportConfig{
			APIPrefix:  cfg.APIPrefix,
			PreviewTTL: cfg.Preview.CacheTTL,
		},
	})

	relaySvc := service.NewRelayService(workspace, cfg.Relay, "إدارة "+cfg.School.Name, logr)

	go runExportCleanup(ctx, exportSvc, cfg.Export.CleanupInterval, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	metricsHandler := handler.NewMetricsHandler(metrics, workspace.Loaded)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	workspaceHandler := handler.NewWorkspaceHandler(workspace)
	directoryHandler := handler.NewDirectoryHandler(workspace)
	settingsHandler := handler.NewSettingsHandler(workspace)
	archiveHandler := handler.NewArchiveHandler(workspace)
	documentHandler := handler.NewDocumentHandler(exportSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	relayHandler := handler.NewRelayHandler(relaySvc)

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/workspace/load", workspaceHandler.Load)
		api.GET("/workspace", workspaceHandler.State)
		api.PATCH("/workspace/draft", workspaceHandler.UpdateDraft)
		api.PUT("/workspace/variant", workspaceHandler.SetVariant)
		api.POST("/workspace/reset", workspaceHandler.Reset)
		api.POST("/workspace/select-student", workspaceHandler.SelectStudent)
		api.GET("/workspace/preview", documentHandler.PreviewActive)

		api.GET("/directory", directoryHandler.List)
		api.PUT("/directory", directoryHandler.Import)
		api.GET("/directory/suggestions", directoryHandler.Suggestions)

		api.GET("/settings", settingsHandler.Get)
		api.PUT("/settings", settingsHandler.UpdateAsset)
		api.GET("/settings/usage", settingsHandler.Usage)

		api.GET("/archive", archiveHandler.List)
		api.POST("/archive", archiveHandler.Save)
		api.DELETE("/archive/:id", archiveHandler.Delete)
		api.POST("/archive/:id/restore", archiveHandler.Restore)

		api.GET("/documents/:variant/preview", documentHandler.Preview)

		api.POST("/export/pdf", exportHandler.GeneratePDF)
		api.GET("/export/files/:token", exportHandler.Download)
		api.GET("/export/archive.csv", exportHandler.ArchiveCSV)
		api.GET("/export/directory.csv", exportHandler.DirectoryCSV)

		api.POST("/relay/whatsapp", relayHandler.WhatsApp)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logr.Warn("server shutdown incomplete", zap.Error(err))
	}
}

// runExportCleanup periodically prunes rendered files past their TTL.
func runExportCleanup(ctx context.Context, exportSvc *service.ExportService, interval time.Duration, logr *zap.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := exportSvc.Cleanup(0)
			if err != nil {
				logr.Warn("export cleanup failed", zap.Error(err))
				continue
			}
			if len(removed) > 0 {
				logr.Info("export files pruned", zap.Int("count", len(removed)))
			}
		}
	}
}
