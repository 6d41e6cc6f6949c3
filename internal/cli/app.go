// Package cli wires the tabdock command-line application.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/tabdock/internal/application/usecase"
	"github.com/bnema/tabdock/internal/cli/styles"
	"github.com/bnema/tabdock/internal/domain/repository"
	"github.com/bnema/tabdock/internal/infrastructure/config"
	"github.com/bnema/tabdock/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabdock/internal/logging"
)

// Options controls how NewApp sets up its dependencies.
type Options struct {
	// ConfigDir overrides the XDG config directory.
	ConfigDir string
	// LogLevel overrides the configured log level when set.
	LogLevel string
	// LogToFile sends logs to the rotated log file instead of stderr.
	// The terminal UI owns the screen, so it sets this.
	LogToFile bool
	// Stderr receives logs when LogToFile is false.
	Stderr io.Writer
}

// App holds CLI dependencies.
type App struct {
	Config  *config.Config
	Manager *config.Manager
	Theme   *styles.Theme
	Logger  zerolog.Logger
	db      *sql.DB
	Layouts repository.LayoutRepository

	// Use cases
	SnapshotLayoutUC *usecase.SnapshotLayoutUseCase
	RestoreLayoutUC  *usecase.RestoreLayoutUseCase
	ListLayoutsUC    *usecase.ListLayoutsUseCase
	DeleteLayoutUC   *usecase.DeleteLayoutUseCase

	ctx       context.Context
	logCloser io.Closer
}

// NewApp loads the configuration, sets up logging and opens the layout store.
func NewApp(opts Options) (*App, error) {
	mgr, err := newManager(opts.ConfigDir)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, closer, err := newLogger(cfg, opts)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)

	dbFile, err := cfg.DatabasePath()
	if err != nil {
		closeQuietly(closer)
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	db, err := sqlite.NewConnection(ctx, dbFile)
	if err != nil {
		closeQuietly(closer)
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", dbFile).Msg("database connected")

	layouts := sqlite.NewLayoutRepository(db)

	return &App{
		Config:           cfg,
		Manager:          mgr,
		Theme:            styles.NewTheme(cfg),
		Logger:           logger,
		db:               db,
		Layouts:          layouts,
		SnapshotLayoutUC: usecase.NewSnapshotLayoutUseCase(layouts),
		RestoreLayoutUC:  usecase.NewRestoreLayoutUseCase(layouts, uuid.NewString),
		ListLayoutsUC:    usecase.NewListLayoutsUseCase(layouts),
		DeleteLayoutUC:   usecase.NewDeleteLayoutUseCase(layouts),
		ctx:              ctx,
		logCloser:        closer,
	}, nil
}

func newManager(dir string) (*config.Manager, error) {
	if dir != "" {
		return config.NewManagerWithDir(dir), nil
	}
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	return mgr, nil
}

func newLogger(cfg *config.Config, opts Options) (zerolog.Logger, io.Closer, error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	if opts.LogLevel != "" {
		logCfg.Level = logging.ParseLevel(opts.LogLevel)
	}
	logCfg.Format = cfg.Logging.Format
	logCfg.TimeFormat = "15:04:05"
	logCfg.Output = opts.Stderr

	if !opts.LogToFile {
		return logging.New(logCfg), nil, nil
	}

	path, err := cfg.LogFile()
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("resolve log file: %w", err)
	}
	rotator, err := logging.NewFileRotator(path, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	logCfg.Output = rotator
	return logging.New(logCfg), rotator, nil
}

// Close releases all resources.
func (a *App) Close() error {
	err := sqlite.Close(a.db)
	a.db = nil
	closeQuietly(a.logCloser)
	a.logCloser = nil
	return err
}

// SchemaVersion returns the applied migration version of the layout store.
func (a *App) SchemaVersion() (int64, error) {
	return sqlite.GetMigrationStatus(a.ctx, a.db)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
