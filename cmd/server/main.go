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

	"github.com/khoahotran/portfolio/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio/adapters/http"
	"github.com/khoahotran/portfolio/adapters/media_storage"
	"github.com/khoahotran/portfolio/adapters/persistence"
	authUC "github.com/khoahotran/portfolio/internal/application/usecase/auth"
	feedUC "github.com/khoahotran/portfolio/internal/application/usecase/feed"
	mediaUC "github.com/khoahotran/portfolio/internal/application/usecase/media"
	"github.com/khoahotran/portfolio/internal/application/usecase/page"
	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/auth"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start Portfolio API Server...", zap.String("env", cfg.App.Env))

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Fatal("Failed to initialize tracer", err)
	}
	if tp != nil {
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				appLogger.Error("Failed to shutdown tracer provider", err)
			}
		}()
	}

	// Initialize dependencies
	storage, closeStorage, err := persistence.NewStorage(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot open slot storage", err)
	}
	defer closeStorage()

	publisher, err := event.NewPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer publisher.Close()

	store := portfolioUC.NewStore(storage, publisher, appLogger)
	if err := store.Load(ctx); err != nil {
		appLogger.Fatal("Cannot load portfolio", err)
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	allowList := auth.NewAllowList(cfg.Auth.AdminEmails)
	if allowList.Len() == 0 || cfg.Auth.AdminPasswordHash == "" {
		appLogger.Warn("No admin identity configured, admin login is disabled")
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(allowList, cfg.Auth.AdminPasswordHash, jwtSvc, appLogger)
	rssUseCase := feedUC.NewRSSUseCase(store, cfg.Site.PublicURL, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Auth:     httpAdapter.NewAuthHandler(loginUseCase, appLogger),
		Public:   httpAdapter.NewPublicHandler(store, page.DefaultRegistry(), rssUseCase, appLogger),
		Profile:  httpAdapter.NewProfileHandler(store, appLogger),
		Content:  httpAdapter.NewContentHandler(store, appLogger),
		Skill:    httpAdapter.NewSkillHandler(store, appLogger),
		Section:  httpAdapter.NewSectionHandler(store, appLogger),
		Transfer: httpAdapter.NewTransferHandler(store, appLogger),
	}

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Warn("Media uploads disabled", zap.Error(err))
	} else {
		uploadUseCase := mediaUC.NewUploadMediaUseCase(uploader, appLogger)
		handlers.Media = httpAdapter.NewMediaHandler(uploadUseCase, store, appLogger)
	}

	router := httpAdapter.NewRouter(handlers, httpAdapter.RouterOptions{
		AuthMiddleware:  httpAdapter.AuthMiddleware(jwtSvc, appLogger),
		ErrorMiddleware: httpAdapter.ErrorMiddleware(appLogger),
		Metrics:         cfg.Metrics.Enabled,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
