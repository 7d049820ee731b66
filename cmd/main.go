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

	"github.com/jaessolutions/docdesk/internal/api"
	"github.com/jaessolutions/docdesk/internal/httpclients/s3"
	"github.com/jaessolutions/docdesk/internal/pdfexport"
	"github.com/jaessolutions/docdesk/internal/repository"
	"github.com/jaessolutions/docdesk/internal/service"
	"github.com/jaessolutions/docdesk/pkg/broker"
	"github.com/jaessolutions/docdesk/pkg/config"
	"github.com/jaessolutions/docdesk/pkg/logger"
	"github.com/jaessolutions/docdesk/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_ = logger.New()

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	s3Client, err := s3.NewClient(cfg.S3.Region, cfg.S3.Endpoint)
	panicOnErr("new s3 client", err)

	producer := broker.NewProducer(slog.Default(), cfg.Kafka.Brokers, cfg.Kafka.DocumentSavedTopic)
	defer producer.Close()

	exporter := pdfexport.NewExporter()

	s := service.New(
		repo,
		s3Client,
		exporter,
		producer,
		cfg.S3.QuotesBucket,
		cfg.S3.InvoiceBucket,
		cfg.RecentListLimit,
	)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
