package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KodingMaster1/Molant/config"
	"github.com/KodingMaster1/Molant/internal/cache"
	"github.com/KodingMaster1/Molant/internal/metrics"
	"github.com/KodingMaster1/Molant/internal/search"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start the background worker",
	Long:  `Start the background worker that reconciles payment balances and refreshes the dashboard cache`,
	RunE:  runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return err
	}

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Set up signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	db, readOnlyDB, err := initDatabases(cfg)
	if err != nil {
		return err
	}

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Redis cache, continuing without caching")
	}

	elasticClient, err := search.NewElasticClient(cfg.Elastic)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Elasticsearch client, continuing without search functionality")
	}

	metricsCollector := metrics.NewMetrics()

	services := buildServices(db, readOnlyDB, redisCache, elasticClient, metricsCollector)

	g.Go(func() error {
		log.Info().
			Dur("reconcile_interval", cfg.Worker.ReconcileInterval).
			Dur("cache_refresh_interval", cfg.Worker.CacheRefreshInterval).
			Msg("Starting scheduled jobs")

		scheduler, err := gocron.NewScheduler()
		if err != nil {
			return err
		}

		_, err = scheduler.NewJob(
			gocron.DurationJob(cfg.Worker.ReconcileInterval),
			gocron.NewTask(func() {
				corrected, err := services.Payments.ReconcileBalances(ctx)
				if err != nil {
					log.Error().Err(err).Msg("Failed to reconcile payment balances")
					return
				}
				metricsCollector.IncrementCounter("worker.reconcile_runs")
				log.Info().Int("corrected", corrected).Msg("Payment balance reconciliation finished")
			}),
		)
		if err != nil {
			return err
		}

		_, err = scheduler.NewJob(
			gocron.DurationJob(cfg.Worker.CacheRefreshInterval),
			gocron.NewTask(func() {
				if err := services.Dashboard.Refresh(ctx); err != nil {
					log.Error().Err(err).Msg("Failed to refresh dashboard cache")
					return
				}
				metricsCollector.IncrementCounter("worker.cache_refreshes")
			}),
		)
		if err != nil {
			return err
		}

		scheduler.Start()

		<-ctx.Done()

		return scheduler.Shutdown()
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Worker error")
		return err
	}

	log.Info().Msg("Worker shutting down gracefully")
	return nil
}
