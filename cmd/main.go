package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/api"
	"github.com/abhay963/Nagar-Sahayata-Portal/internal/clients/imagestore"
	"github.com/abhay963/Nagar-Sahayata-Portal/internal/clients/mailer"
	"github.com/abhay963/Nagar-Sahayata-Portal/internal/repository"
	"github.com/abhay963/Nagar-Sahayata-Portal/internal/service"
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/broker"
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/cache"
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/config"
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/job"
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/logger"
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/postgres"
)

const (
	ReadTimeout       = 20 * time.Second
	WriteTimeout      = 20 * time.Second
	IdleTimeout       = 60 * time.Second
	ReadHeaderTimeout = 2 * time.Second
)

// @title Nagar Sahayata Portal API
// @version 1.0
// @description Civic issue reporting: staff accounts, citizen reports, assignment and notifications.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)

	defer pool.Close()

	err = postgres.UpMigrations(ctx, pool)
	panicOnErr("up migrations", err)

	rdb, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	panicOnErr("connect to redis", err)

	defer rdb.Close()

	producer := broker.NewProducer(l, cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	otpRepo := repository.NewOtpRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	unreadCache := repository.NewUnreadCache(rdb, cfg.Redis.UnreadCacheTTL)

	mailClient := mailer.New(cfg.Mailer)
	images := imagestore.New(cfg.Uploads.Dir, cfg.Uploads.PublicPath, cfg.Uploads.ProfileImageMaxSize)

	s := service.New(cfg, userRepo, otpRepo, reportRepo, notificationRepo, unreadCache, mailClient, producer, images)

	h := api.NewHandler(s, images.MaxSize())
	mw := api.NewMiddleware(s)
	router := api.NewRouter(h, mw, api.RouterConfig{
		CorsOrigins: cfg.CorsOrigins,
		UploadsDir:  images.Dir(),
		UploadsPath: cfg.Uploads.PublicPath,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	jobs := job.NewScheduler().
		Every("delete_stale_otps", cfg.OTP.JobDeleteOtpInterval, s.DeleteStaleOtps)
	jobs.Start(ctx)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		l.Info("http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		l.Debug("http server stopped")
	}()

	waitSignal(l, cancel, server)
	wg.Wait()
	jobs.Wait()
}

func waitSignal(l *slog.Logger, cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	l.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		l.Error("server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
