// Package cli wires toolip's use cases for the command line and the terminal panel.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/bnema/toolip/internal/application/usecase"
	"github.com/bnema/toolip/internal/cli/styles"
	"github.com/bnema/toolip/internal/domain/build"
	"github.com/bnema/toolip/internal/domain/entity"
	"github.com/bnema/toolip/internal/domain/repository"
	"github.com/bnema/toolip/internal/infrastructure/config"
	"github.com/bnema/toolip/internal/infrastructure/localstate"
	"github.com/bnema/toolip/internal/infrastructure/messaging"
	"github.com/bnema/toolip/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/toolip/internal/infrastructure/storage"
	"github.com/bnema/toolip/internal/logging"
	"github.com/bnema/toolip/internal/ui/dispatcher"
)

const dataDirPerm = 0o755

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	BuildInfo build.Info
	Fs        afero.Fs

	db *sql.DB
	// Store is the raw settings table; Settings decorates it with change reporting.
	Store    repository.SettingsRepository
	Settings *storage.ObservableSettings
	Registry *usecase.SiteRegistry
	Bus      *messaging.Bus
	State    *localstate.FileStore

	ctx        context.Context
	logger     zerolog.Logger
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg := loadConfig()

	logCfg, fileCfg := cfg.LoggerConfig()
	logCfg.TimeFormat = "15:04:05"
	// quiet unless asked for
	fileCfg.WriteToStderr = os.Getenv("TOOLIP_LOG_LEVEL") != ""
	logger, logCleanup, err := logging.NewWithFile(logCfg, fileCfg)
	if err != nil {
		logger.Warn().Err(err).Msg("file logging disabled")
	}
	ctx := logging.WithContext(context.Background(), logger)

	dbFile := cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(dbFile), dataDirPerm); err != nil {
		logCleanup()
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sqlite.NewConnection(ctx, dbFile)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlite.RunMigrations(ctx, db); err != nil {
		_ = sqlite.Close(db)
		logCleanup()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	logger.Debug().Str("db_path", dbFile).Msg("database connected")

	store := sqlite.NewSettingsRepository(db)
	settings, err := storage.NewObservableSettings(ctx, store, storage.NewChangeHub(entity.StorageAreaSync, nil))
	if err != nil {
		_ = sqlite.Close(db)
		logCleanup()
		return nil, fmt.Errorf("read settings: %w", err)
	}

	registry := usecase.NewSiteRegistry(settings, usecase.SiteRegistryOptions{
		DefaultList: cfg.DefaultListName(),
		IconStyle:   cfg.IconStyle(),
	})

	stateDir, err := config.GetStateDir()
	if err != nil {
		_ = sqlite.Close(db)
		logCleanup()
		return nil, fmt.Errorf("resolve state dir: %w", err)
	}

	fs := afero.NewOsFs()
	return &App{
		Config:     cfg,
		Manager:    mgr,
		Fs:         fs,
		db:         db,
		Store:      store,
		Settings:   settings,
		Registry:   registry,
		Bus:        messaging.NewBus(messaging.NewLoggerAdapter(logger)),
		State:      localstate.NewFileStore(fs, filepath.Join(stateDir, localstate.FileName)),
		ctx:        ctx,
		logger:     logger,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.Bus != nil {
		_ = a.Bus.Close()
	}
	var err error
	if a.db != nil {
		err = sqlite.Close(a.db)
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Theme returns CLI styles matching the stored panel theme.
func (a *App) Theme() *styles.Theme {
	return styles.NewTheme(a.Registry.GetTheme(a.ctx))
}

// Editor returns a settings editor loaded with the stored list.
func (a *App) Editor() *usecase.SiteEditor {
	editor := usecase.NewSiteEditor(a.Registry)
	editor.Load(a.ctx)
	return editor
}

// Dispatcher returns a command dispatcher over editor.
// Theme changes are broadcast on the in-process bus.
func (a *App) Dispatcher(editor *usecase.SiteEditor) *dispatcher.Dispatcher {
	return dispatcher.New(editor, usecase.NewChangeThemeUseCase(a.Registry, nil, a.Bus))
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file is unusable.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, defaultConfig()
	}
	if err := mgr.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "toolip: using default configuration:", err)
		return mgr, defaultConfig()
	}
	return mgr, mgr.Get()
}

func defaultConfig() *config.Config {
	cfg := config.DefaultConfig()
	if dbPath, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = dbPath
	}
	return cfg
}
