// Package server initializes and runs the tdfs server: it opens PostgreSQL
// and applies migrations, connects to object storage, derives the key
// encryption key, and serves the gRPC endpoint and Prometheus metrics until
// a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/tdfs/internal/kms"
	"github.com/dmitrijs2005/tdfs/internal/logging"
	"github.com/dmitrijs2005/tdfs/internal/metrics"
	"github.com/dmitrijs2005/tdfs/internal/server/auth"
	"github.com/dmitrijs2005/tdfs/internal/server/config"
	"github.com/dmitrijs2005/tdfs/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tdfs/internal/server/services"
	"github.com/dmitrijs2005/tdfs/internal/server/storage"

	gs "github.com/dmitrijs2005/tdfs/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	metrics     *metrics.Metrics
	fileService *services.FileService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	fs, err := newFileService(ctx, c, db, rm, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{config: c, logger: logger, db: db, metrics: metrics.New(), fileService: fs}, nil
}

// newFileService connects object storage, derives the KEK and builds the
// FileService on top of db.
func newFileService(ctx context.Context, c *config.Config, db *sql.DB, rm repomanager.RepositoryManager,
	logger logging.Logger) (*services.FileService, error) {

	store, err := storage.NewS3Store(ctx, storage.Options{
		Region:        c.S3Region,
		AccessKey:     c.S3RootUser,
		SecretKey:     c.S3RootPassword,
		Bucket:        c.S3Bucket,
		BaseEndpoint:  c.S3BaseEndpoint,
		PresignExpiry: c.PresignExpiry,
	})
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	kek := kms.DeriveKEK([]byte(c.KEKSecret), []byte(c.KEKSalt))

	return services.NewFileService(db, rm, store, auth.NewAuthenticator(c.SecretKey), kek, logger), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.fileService, app.metrics)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.metrics.ListenAndServe(ctx, app.config.MetricsAddr, app.logger.With("module", "metrics")); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startMetricsServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "Stopped")
}
