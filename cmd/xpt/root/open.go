package root

import (
	"context"
	"fmt"
	"os"

	"github.com/glied2m/xp-tracker/internal/config"
	"github.com/glied2m/xp-tracker/internal/engine"
	"github.com/glied2m/xp-tracker/internal/storage"
	"github.com/glied2m/xp-tracker/internal/ui"
)

// openStore builds the configured storage backend.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	switch cfg.General.Backend {
	case config.BackendSQLite:
		db, err := storage.Open(ctx, cfg.DBPath())
		if err != nil {
			return nil, err
		}
		return storage.NewSQLiteStore(db), nil
	case config.BackendJSON:
		return storage.NewJSONStore(cfg.LedgerPath("json"), cfg.MissionsPath("json")), nil
	case config.BackendCSV:
		return storage.NewCSVStore(cfg.LedgerPath("csv"), cfg.MissionsPath("csv")), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.General.Backend)
	}
}

// openService loads config, catalog and snapshots. Load warnings are
// printed as notices; only real failures (bad config, broken catalog
// file) abort.
func openService(ctx context.Context) (*engine.Service, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, nil, err
	}

	if err := os.MkdirAll(cfg.DataDir(), 0o755); err != nil {
		return nil, cfg, nil, fmt.Errorf("create data dir: %w", err)
	}

	doc, err := storage.LoadCatalogDoc(cfg.CatalogPath())
	if err != nil {
		return nil, cfg, nil, err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, cfg, nil, err
	}
	cleanup := func() {
		_ = store.Close()
	}

	svc := engine.NewService(store, engine.NewCatalog(doc))
	svc.Load(ctx)
	for _, notice := range svc.Notices() {
		fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" "+notice))
	}
	return svc, cfg, cleanup, nil
}

// rewardTable converts the configured reward rows.
func rewardTable(cfg config.Config) []engine.Reward {
	if len(cfg.Rewards) == 0 {
		return engine.DefaultRewards
	}
	table := make([]engine.Reward, len(cfg.Rewards))
	for i, r := range cfg.Rewards {
		table[i] = engine.Reward{Label: r.Label, Cost: r.Cost}
	}
	return table
}
