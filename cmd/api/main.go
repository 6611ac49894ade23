package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/gounamur/travel-backend/internal/config"
	"github.com/gounamur/travel-backend/internal/logging"
	"github.com/gounamur/travel-backend/internal/media"
	"github.com/gounamur/travel-backend/internal/repository/memory"
	storage "github.com/gounamur/travel-backend/internal/repository/minio"
	"github.com/gounamur/travel-backend/internal/repository/ports"
	"github.com/gounamur/travel-backend/internal/repository/postgres"
	"github.com/gounamur/travel-backend/internal/service"
	transport "github.com/gounamur/travel-backend/internal/transport/http"
	"github.com/gounamur/travel-backend/internal/util"
)

type repositories struct {
	destinations ports.DestinationRepository
	packages     ports.PackageRepository
	favorites    ports.FavoriteRepository
	users        ports.UserRepository
	close        func() error
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(logging.Config{
		Level:        cfg.LogLevel,
		Format:       cfg.LogFormat,
		LogstashAddr: cfg.LogstashTCPAddr,
		Service:      "travel-api",
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(cfg, logger.Logger)
	if err != nil {
		return err
	}
	defer repos.close()

	images, err := newImageUploader(ctx, cfg, logger.Logger)
	if err != nil {
		return err
	}

	destinationService := service.NewDestinationService(repos.destinations, images)
	packageService := service.NewPackageService(repos.packages, images)
	favoriteService := service.NewFavoriteService(repos.favorites, repos.destinations)
	catalogService := service.NewCatalogService(repos.destinations, repos.packages)
	authService := service.NewAuthService(repos.users, util.NewJWTManager(cfg.JWTSecret, cfg.AccessTokenTTL), cfg.AdminEmails)

	if cfg.SeedCatalog {
		report, err := service.NewCatalogSeeder(repos.destinations, repos.packages).Seed(ctx)
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		logger.Info().
			Int("destinations", report.Destinations).
			Int("packages", report.Packages).
			Msg("catalog seeded")
	}

	e := transport.NewRouter(cfg.AllowOrigins, logger.Logger)
	transport.RegisterSwagger(e)
	transport.RegisterAuth(e, authService)
	transport.RegisterDestinations(e, destinationService, favoriteService)
	transport.RegisterPackages(e, packageService)
	transport.RegisterCatalog(e, catalogService)
	transport.RegisterFavorites(e, authService, favoriteService)
	transport.RegisterAdmin(e, authService, destinationService, packageService)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openRepositories(cfg config.Config, logger zerolog.Logger) (*repositories, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		store := memory.NewStore()
		logger.Warn().Msg("using in-memory store; data is lost on restart")
		return &repositories{
			destinations: memory.NewDestinationRepo(store),
			packages:     memory.NewPackageRepo(store),
			favorites:    memory.NewFavoriteRepo(store),
			users:        memory.NewUserRepo(store),
			close:        func() error { return nil },
		}, nil
	}

	if cfg.AutoMigrate {
		if err := postgres.Migrate(cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info().Msg("database migrations applied")
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return postgresRepositories(db), nil
}

func postgresRepositories(db *sqlx.DB) *repositories {
	return &repositories{
		destinations: postgres.NewDestinationRepo(db),
		packages:     postgres.NewPackageRepo(db),
		favorites:    postgres.NewFavoriteRepo(db),
		users:        postgres.NewUserRepo(db),
		close:        db.Close,
	}
}

// newImageUploader returns nil when no object store is configured; upload routes then answer 503.
func newImageUploader(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*service.ImageUploader, error) {
	if !cfg.StorageEnabled() {
		logger.Warn().Msg("MINIO_ENDPOINT not set; catalog image uploads are disabled")
		return nil, nil
	}

	client, err := storage.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	objects := storage.NewStorage(client, cfg.MinIOPublicURL)
	if err := objects.EnsureBucket(ctx, cfg.MinIOBucketCatalog); err != nil {
		return nil, fmt.Errorf("ensure bucket %s: %w", cfg.MinIOBucketCatalog, err)
	}

	return service.NewImageUploader(objects, media.NewDecodeProcessor(cfg.ImageMaxBytes), service.ImageUploaderConfig{
		Bucket:       cfg.MinIOBucketCatalog,
		MaxDimension: cfg.ImageMaxDimension,
	}), nil
}
