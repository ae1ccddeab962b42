package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/productfinder/productfinder/app"
	"github.com/productfinder/productfinder/infra/catalog"
	"github.com/productfinder/productfinder/infra/config"
	"github.com/productfinder/productfinder/infra/likes"
	"github.com/productfinder/productfinder/infra/logging"
	"github.com/productfinder/productfinder/infra/share"
	"github.com/productfinder/productfinder/infra/store"
	"github.com/productfinder/productfinder/infra/thumbnail"
	"github.com/productfinder/productfinder/tui"
	"github.com/productfinder/productfinder/tui/feed"
	"github.com/productfinder/productfinder/tui/swipe"
)

func runTUI(debugLog bool) error {
	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := logging.Init(cfg.LogFile, debugLog); err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	defer logging.Close()

	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// 2. Build infrastructure.
	kv, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	uiState, err := config.LoadUIState(cfg.UIStatePath)
	if err != nil {
		logging.Warn("ignoring ui state", "path", cfg.UIStatePath, "err", err)
	}

	// 3. Wire root TUI model.
	root := tui.NewApp(tui.Deps{
		Catalog: catalog.NewService(catalog.NewClient(cfg.APIBaseURL)),
		Feed: feed.Deps{
			Likes:        likes.NewRepo(kv),
			Sharer:       share.New(cfg.ShareCommand),
			Opener:       share.NewOpener(),
			Thumbnails:   thumbnail.NewRenderer(),
			ShareBaseURL: cfg.ShareBaseURL,
			Swipe:        tuning.Apply(swipe.DefaultConfig()),
			DoubleTap:    tuning.DoubleTap(),
		},
		UIState: uiState,
	})

	// 4. Run.
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if a, ok := final.(tui.App); ok {
		if err := config.SaveUIState(cfg.UIStatePath, a.UIState()); err != nil {
			logging.Warn("saving ui state failed", "path", cfg.UIStatePath, "err", err)
		}
	}
	return nil
}

// openStore opens the liked-set backend chosen by PRODUCTFINDER_LIKES_BACKEND.
func openStore(cfg config.Config) (app.KeyValueStore, func(), error) {
	switch cfg.LikesBackend {
	case config.LikesBackendSQLite:
		s, err := store.NewSQLiteStore(cfg.LikesPath())
		if err != nil {
			return nil, nil, fmt.Errorf("likes store: %w", err)
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return store.NewFileStore(cfg.LikesPath()), func() {}, nil
	}
}
