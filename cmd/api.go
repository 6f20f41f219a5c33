package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KodingMaster1/Molant/config"
	"github.com/KodingMaster1/Molant/internal/api"
	"github.com/KodingMaster1/Molant/internal/cache"
	"github.com/KodingMaster1/Molant/internal/metrics"
	"github.com/KodingMaster1/Molant/internal/models"
	"github.com/KodingMaster1/Molant/internal/repositories"
	"github.com/KodingMaster1/Molant/internal/search"
	"github.com/KodingMaster1/Molant/internal/service"
	"github.com/KodingMaster1/Molant/internal/tracing"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long:  `Start the HTTP API server for the business management endpoints`,
	RunE:  runAPI,
}

func init() {
	rootCmd.AddCommand(apiCmd)
}

func runAPI(cmd *cobra.Command, args []string) error {
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

	db, readOnlyDB, err := initDatabases(cfg)
	if err != nil {
		return err
	}

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Redis cache, continuing without caching")
	}

	tracer, err := tracing.NewTracer(cfg.Tracing)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
	}

	elasticClient, err := search.NewElasticClient(cfg.Elastic)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Elasticsearch client, continuing without search functionality")
	}

	metricsCollector := metrics.NewMetrics()

	services := buildServices(db, readOnlyDB, redisCache, elasticClient, metricsCollector)

	server := api.NewServer(cfg, services, metricsCollector, tracer)

	go func() {
		if err := server.Start(); err != nil {
			log.Error().Err(err).Msg("Server error")
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	log.Info().Msg("Shutting down API server")
	return nil
}

func buildServices(
	db, readOnlyDB *gorm.DB,
	redisCache *cache.RedisCache,
	elasticClient *search.ElasticClient,
	m *metrics.Metrics,
) *service.Services {
	deps := service.Deps{
		Clients:     repositories.NewClientRepository(db, readOnlyDB),
		Vendors:     repositories.NewVendorRepository(db, readOnlyDB),
		Items:       repositories.NewItemRepository(db, readOnlyDB),
		Services:    repositories.NewServiceRepository(db, readOnlyDB),
		Technicians: repositories.NewTechnicianRepository(db, readOnlyDB),
		Orders:      repositories.NewOrderRepository(db, readOnlyDB),
		Documents:   repositories.NewDocumentRepository(db, readOnlyDB),
		Payments:    repositories.NewPaymentRepository(db, readOnlyDB),
		Summaries:   repositories.NewSummaryRepository(readOnlyDB),
		Metrics:     m,
	}
	if redisCache != nil {
		deps.Cache = redisCache
	}
	if elasticClient != nil {
		deps.Index = elasticClient
	}
	return service.NewServices(deps)
}

func initDatabases(cfg config.Config) (*gorm.DB, *gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN), &gorm.Config{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to write database")
	}

	readOnlyDB, err := gorm.Open(postgres.Open(cfg.DB.ReadOnlyDSN), &gorm.Config{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to read-only database")
	}

	// Auto-migrate only the write database
	if err := models.SetupModels(db); err != nil {
		return nil, nil, errors.Wrap(err, "failed to run migrations")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get underlying write DB connection")
	}
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	readSqlDB, err := readOnlyDB.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get underlying read-only DB connection")
	}

	// Higher limits on the read side; the list endpoints fetch full sets
	readSqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns * 2)
	readSqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns * 2)
	readSqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	return db, readOnlyDB, nil
}
