package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/adapters/event"
	"github.com/khoahotran/portfolio-showcase/adapters/mailer"
	"github.com/khoahotran/portfolio-showcase/internal/application/service"
	reminderUC "github.com/khoahotran/portfolio-showcase/internal/application/usecase/reminder"
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
	appLogger.Info("Starting Portfolio Showcase Worker...", zap.String("transport", cfg.Reminders.Transport))

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-worker")
	if err != nil {
		appLogger.Fatal("cannot init tracer", err)
	}
	if tp != nil {
		defer tp.Shutdown(context.Background())
	}

	// Mailer
	var m service.Mailer
	if cfg.SMTP.Host != "" {
		m, err = mailer.NewSMTPMailer(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init mailer", err)
		}
	} else {
		appLogger.Warn("SMTP host not configured, reminders will only be logged")
		m = mailer.NewLogMailer(appLogger)
	}

	// Consumer
	consumer, err := event.NewReminderConsumer(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init reminder consumer", err)
	}
	defer consumer.Close()

	dispatcher := reminderUC.NewDispatcher(m, cfg.SMTP.To, appLogger)
	defer dispatcher.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Consume(ctx, dispatcher.Schedule); err != nil {
		appLogger.Error("Reminder consumer stopped", err)
	}
	appLogger.Info("Worker shutting down", zap.Int("pending_reminders", dispatcher.Pending()))
}
