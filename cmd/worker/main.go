package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/adapters/event"
	"github.com/khoahotran/portfolio/adapters/media_storage"
	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/internal/application/service"
	backupUC "github.com/khoahotran/portfolio/internal/application/usecase/backup"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/tracing"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio Worker...")

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("Worker needs Kafka brokers", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-worker")
	if err != nil {
		appLogger.Fatal("Failed to initialize tracer", err)
	}
	if tp != nil {
		defer tp.Shutdown(context.Background())
	}

	// Slot storage
	storage, closeStorage, err := persistence.NewStorage(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot open slot storage", err)
	}
	defer closeStorage()

	// Cloudinary Uploader
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Worker Use Case
	backupUseCase := backupUC.NewBackupUseCase(storage, uploader, appLogger)

	// Kafka Consumer
	consumer := event.NewConsumer(cfg, appLogger)
	defer consumer.Close()

	err = consumer.Run(ctx, func(ctx context.Context, evt service.ChangeEvent) error {
		out, err := backupUseCase.Execute(ctx)
		if err != nil {
			return err
		}
		appLogger.Info("Snapshot stored",
			zap.String("event_id", evt.ID),
			zap.String("public_id", out.PublicID),
		)
		return nil
	})
	if err != nil {
		appLogger.Error("Worker stopped", err)
	}
	appLogger.Info("Worker shut down")
}
