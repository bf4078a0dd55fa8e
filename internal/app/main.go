package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/BotStats/internal/archive"
	kafkabroker "github.com/Egor213/BotStats/internal/broker/kafka"
	"github.com/Egor213/BotStats/internal/config"
	httpv1 "github.com/Egor213/BotStats/internal/controller/http/v1"
	"github.com/Egor213/BotStats/internal/metrics"
	"github.com/Egor213/BotStats/internal/repo"
	"github.com/Egor213/BotStats/internal/service"
	"github.com/Egor213/BotStats/internal/store"
	errorsUtils "github.com/Egor213/BotStats/pkg/errors"
	"github.com/Egor213/BotStats/pkg/httpserver"
	"github.com/Egor213/BotStats/pkg/logger"
	"github.com/Egor213/BotStats/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

// Flags are command line overrides; zero values keep the config file value.
type Flags struct {
	ConfigPath         string
	Port               string
	HTMLPath           string
	RetentionThreshold *int
}

func (f Flags) apply(cfg *config.Config) {
	if f.Port != "" {
		cfg.HTTP.Port = f.Port
	}
	if f.HTMLPath != "" {
		cfg.HTTP.HTMLPath = f.HTMLPath
	}
	if f.RetentionThreshold != nil {
		cfg.Retention.Threshold = *f.RetentionThreshold
	}
}

func Run(flags Flags) {
	ctx := context.Background()

	// Config
	cfg, err := config.New(flags.ConfigPath)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level, cfg.Log.File)
	log.WithFields(log.Fields{
		"app":     cfg.App.Name,
		"version": cfg.App.Version,
	}).Info("Logger has been set up")

	counters := metrics.New()

	// Archive sinks
	var sinks []archive.Sink

	if cfg.Archive.Dir != "" {
		log.WithField("dir", cfg.Archive.Dir).Info("File archive enabled")
		sinks = append(sinks, archive.NewFileSink(cfg.Archive.Dir))
	}

	if cfg.Archive.Postgres.Enabled {
		Migrate(cfg.Archive.Postgres.URL)

		log.Info("Connecting to DB")
		pg, err := postgres.New(ctx, cfg.Archive.Postgres.URL, postgres.MaxPoolSize(cfg.Archive.Postgres.MaxPoolSize))
		if err != nil {
			log.Fatal(errorsUtils.WrapPathErr(err))
		}
		defer pg.Close()
		log.Info("Connected to DB")

		repositories := repo.NewRepositories(pg)
		sinks = append(sinks, archive.NewRepoSink(repositories.Archive))
	}

	if cfg.Archive.Kafka.Enabled {
		log.WithFields(log.Fields{
			"brokers": cfg.Archive.Kafka.Brokers,
			"topic":   cfg.Archive.Kafka.Topic,
		}).Info("Kafka archive enabled")
		producer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers:      cfg.Archive.Kafka.Brokers,
			Topic:        cfg.Archive.Kafka.Topic,
			WriteTimeout: cfg.Archive.Timeout,
		})
		defer func() {
			if err := producer.Close(); err != nil {
				log.Error(errorsUtils.WrapPathErr(err))
			}
		}()
		sinks = append(sinks, archive.NewBrokerSink(producer))
	}

	// Store
	storeOpts := []store.Option{store.WithArchiveTimeout(cfg.Archive.Timeout)}
	if len(sinks) > 0 {
		archiver := archive.New(sinks, archive.WithCounter(counters.Archives))
		log.WithField("sinks", archiver.Len()).Info("Archive on clear enabled")
		storeOpts = append(storeOpts, store.WithArchiver(archiver))
	}
	statsStore := store.New(storeOpts...)

	sweeper := store.NewSweeper(statsStore,
		store.SweepInterval(cfg.Retention.Interval),
		store.SweepThreshold(cfg.Retention.Threshold),
		store.SweepDroppedCounter(counters.SweepDropped),
	)
	sweeper.Start(ctx)

	// Services
	deps := service.ServicesDependencies{
		Store:    statsStore,
		Counters: counters,
	}
	services := service.NewServices(deps)

	// HTTP Server
	log.Infof("Starting HTTP server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	handler := echo.New()
	handler.Use(metrics.HTTPMiddleware())
	httpv1.ConfigureRouter(handler, services, httpv1.RouterOptions{HTMLPath: cfg.HTTP.HTMLPath})
	httpServer := httpserver.New(handler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := sweeper.Close(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	log.Info("Waiting for pending archives")
	statsStore.Wait()
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
}
