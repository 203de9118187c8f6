package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/example/prepdeck/internal/bot"
	"github.com/example/prepdeck/internal/config"
	"github.com/example/prepdeck/internal/database"
	"github.com/example/prepdeck/internal/deck"
	"github.com/example/prepdeck/internal/excel"
	"github.com/example/prepdeck/internal/logger"
	"github.com/example/prepdeck/internal/mastery"
	"github.com/example/prepdeck/internal/scheduler"
	"github.com/example/prepdeck/internal/storage"
	"github.com/example/prepdeck/internal/storage/bolt"
	"github.com/example/prepdeck/pkg/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("application stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, closer, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			zl.Error("failed to close storage", zap.Error(err))
		}
	}()
	zl.Info("storage ready", zap.String("backend", cfg.Storage.Backend))

	store := storage.NewProgressStore(backend, cfg.Storage.Key, zl)
	tracker := mastery.New(store, mastery.WithLogger(zl))

	catalog, err := loadCatalog(cfg, zl)
	if err != nil {
		return err
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return fmt.Errorf("unable to create bot: %w", err)
	}
	zl.Info("authorized on account", zap.String("username", api.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "menu", Description: "Choisir une catégorie"},
		{Command: "study", Description: "Lancer une session (/study carres review)"},
		{Command: "stats", Description: "Voir la progression"},
		{Command: "reset", Description: "Réinitialiser la progression"},
		{Command: "help", Description: "Aide"},
	}
	if _, err := api.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	botConfig := bot.DefaultConfig()
	botConfig.OwnerChatID = cfg.Bot.OwnerChatID
	b := bot.New(api, tracker, catalog, botConfig, zl)

	if cfg.Scheduler.Enabled && cfg.Bot.OwnerChatID != 0 {
		ids := deck.IDs(catalog.All())
		counter := scheduler.DueCounterFunc(func(ctx context.Context) int {
			return countDueStudied(ctx, tracker, ids)
		})
		sched := scheduler.New(counter, b, scheduler.Config{
			Interval:  cfg.Scheduler.Interval,
			StartHour: cfg.Scheduler.StartHour,
			EndHour:   cfg.Scheduler.EndHour,
		}, zl)
		if err := sched.Start(ctx); err != nil {
			return err
		}
		defer sched.Stop()
	} else if cfg.Scheduler.Enabled {
		zl.Warn("reminders disabled: OWNER_CHAT_ID is not set")
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = botConfig.UpdateTimeout
	updates := api.GetUpdatesChan(updateConfig)

	zl.Info("bot started", zap.Int("cards", catalog.Len()))
	b.Run(ctx, updates)

	api.StopReceivingUpdates()
	zl.Info("shutdown signal received")
	return nil
}

// openBackend builds the configured storage backend. The returned closer
// releases database handles.
func openBackend(ctx context.Context, cfg *config.Config) (storage.Backend, io.Closer, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return storage.NewMemoryBackend(), nopCloser{}, nil
	case config.BackendFile:
		fb, err := storage.NewFileBackend(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return fb, nopCloser{}, nil
	case config.BackendBolt:
		if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		bs, err := bolt.Open(cfg.BoltPath())
		if err != nil {
			return nil, nil, err
		}
		return bs, bs, nil
	case config.BackendSQLite, config.BackendPostgres:
		dbConfig := database.Config{
			Driver:       database.DriverSQLite,
			DSN:          cfg.SQLiteDSN(),
			MaxOpenConns: cfg.DB.MaxOpenConns,
		}
		if cfg.Storage.Backend == config.BackendPostgres {
			dbConfig.Driver = database.DriverPostgres
			dbConfig.DSN = cfg.DB.URL
		}
		db, err := database.Connect(ctx, dbConfig)
		if err != nil {
			return nil, nil, err
		}
		return database.NewBlobRepository(db), db, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Storage.Backend)
	}
}

// countDueStudied counts due cards among those answered at least once.
// Unseen cards are always due and would make every reminder fire.
func countDueStudied(ctx context.Context, tracker *mastery.Tracker, ids []string) int {
	progress := tracker.AllProgress(ctx)
	studied := make([]string, 0, len(progress))
	for _, id := range ids {
		if _, ok := progress[id]; ok {
			studied = append(studied, id)
		}
	}
	return len(tracker.DueForReview(ctx, studied))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// loadCatalog merges the built-in deck with the optional spreadsheet import.
func loadCatalog(cfg *config.Config, zl *zap.Logger) (*deck.Catalog, error) {
	sets := [][]models.Flashcard{deck.Builtin()}

	if cfg.Deck.ImportPath != "" {
		importConfig := excel.DefaultImportConfig()
		importConfig.FilePath = cfg.Deck.ImportPath
		importConfig.SheetName = cfg.Deck.Sheet

		cards, result, err := excel.ImportCards(importConfig)
		if err != nil {
			return nil, fmt.Errorf("import deck: %w", err)
		}
		for _, rowErr := range result.Errors {
			zl.Warn("skipped imported card", zap.String("error", rowErr))
		}
		zl.Info("imported cards",
			zap.String("path", cfg.Deck.ImportPath),
			zap.Int("imported", result.Imported),
			zap.Int("skipped", result.Skipped),
		)
		sets = append(sets, cards)
	}

	catalog, err := deck.NewCatalog(sets...)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}
	return catalog, nil
}
