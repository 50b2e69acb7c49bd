package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-showcase/adapters/http"
	"github.com/khoahotran/portfolio-showcase/adapters/httpclient"
	"github.com/khoahotran/portfolio-showcase/adapters/media_storage"
	"github.com/khoahotran/portfolio-showcase/adapters/persistence"
	backupUC "github.com/khoahotran/portfolio-showcase/internal/application/usecase/backup"
	exportUC "github.com/khoahotran/portfolio-showcase/internal/application/usecase/export"
	interviewUC "github.com/khoahotran/portfolio-showcase/internal/application/usecase/interview"
	mediaUC "github.com/khoahotran/portfolio-showcase/internal/application/usecase/media"
	profileUC "github.com/khoahotran/portfolio-showcase/internal/application/usecase/profile"
	settingsUC "github.com/khoahotran/portfolio-showcase/internal/application/usecase/settings"
	"github.com/khoahotran/portfolio-showcase/internal/config"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
	"github.com/khoahotran/portfolio-showcase/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start Portfolio Showcase API Server...", zap.String("env", cfg.App.Env))

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Fatal("cannot init tracer", err)
	}
	if tp != nil {
		defer tp.Shutdown(context.Background())
	}

	ctx := context.Background()

	// Storage
	store, err := persistence.NewKVStore(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot open key-value store", err)
	}
	defer store.Close()

	// Outbound adapters
	publisher, err := event.NewReminderPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init reminder publisher", err)
	}
	defer publisher.Close()

	uploader, err := media_storage.NewUploader(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init uploader", err)
	}
	fetcher := httpclient.NewRestyImageFetcher(cfg.HTTPClient.Timeout)

	localImagesDir := ""
	if cfg.Uploader.Provider == config.UploaderNone || cfg.Uploader.Provider == "" {
		localImagesDir = cfg.App.ImagesDir
	}

	// Repositories
	profileRepo := persistence.NewKVProfileRepo(store, cfg.Storage.AtomicProfileWrites, appLogger)
	interviewRepo := persistence.NewKVInterviewRepo(store, appLogger)
	settingsRepo := persistence.NewKVSettingsRepo(store)

	// Use Cases
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, appLogger)
	imageUseCase := mediaUC.NewProfileImageUseCase(profileRepo, uploader, fetcher, cfg.App.ImagesDir, localImagesDir, appLogger)
	exportUseCase := exportUC.NewExportUseCase("http://localhost:"+cfg.App.Port, appLogger)
	interviewUseCase := interviewUC.NewInterviewUseCase(
		interviewRepo,
		publisher,
		interviewUC.ReminderSchedule{Hour: cfg.Reminders.Hour, Minute: cfg.Reminders.Minute},
		appLogger,
	)
	settingsUseCase := settingsUC.NewSettingsUseCase(settingsRepo, appLogger)
	settingsUseCase.Load(ctx)
	backupUseCase := backupUC.NewBackupUseCase(profileRepo, interviewRepo, settingsRepo, uploader, appLogger)

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(httpAdapter.Handlers{
		Profile:   httpAdapter.NewProfileHandler(profileUseCase, imageUseCase, exportUseCase, appLogger),
		Interview: httpAdapter.NewInterviewHandler(interviewUseCase, appLogger),
		Settings:  httpAdapter.NewSettingsHandler(settingsUseCase, appLogger),
		Backup:    httpAdapter.NewBackupHandler(backupUseCase, appLogger),
	}, appLogger)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("cannot run server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
