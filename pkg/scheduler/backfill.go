package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/shopscope/pkg/domain"
)

// Backfiller tags products stored without tags. Products are loaded page by page in id order,
// so ones the tagger can't tag don't hold back the rest. Only the tags column is written,
// other product fields edited meanwhile are left intact.
type Backfiller struct {
	productManager ProductManager
	settingManager SettingManager
	catalog        Catalog

	batchSize  int
	maxWorkers int
	running    atomic.Bool
}

// BackfillerConfig holds configuration for Backfiller
type BackfillerConfig struct {
	ProductManager ProductManager
	SettingManager SettingManager
	Catalog        Catalog
	BatchSize      int
	MaxWorkers     int
}

// NewBackfiller creates a backfiller, zero sizes are replaced by defaults
func NewBackfiller(cfg BackfillerConfig) *Backfiller {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 4
	}
	return &Backfiller{
		productManager: cfg.ProductManager,
		settingManager: cfg.SettingManager,
		catalog:        cfg.Catalog,
		batchSize:      cfg.BatchSize,
		maxWorkers:     cfg.MaxWorkers,
	}
}

// Run fits the tag model if it's not fitted yet, then tags all untagged products and returns
// how many got tags. A run started while another one is active returns immediately with zero.
func (b *Backfiller) Run(ctx context.Context) (int, error) {
	if !b.running.CompareAndSwap(false, true) {
		lgr.Printf("[DEBUG] tag backfill is already running")
		return 0, nil
	}
	defer b.running.Store(false)

	if err := b.catalog.FitCorpus(ctx); err != nil {
		lgr.Printf("[WARN] failed to fit tag model: %v", err)
	}

	var tagged atomic.Int64
	var afterID int64
	for {
		products, err := b.productManager.GetUntaggedProducts(ctx, afterID, b.batchSize)
		if err != nil {
			return int(tagged.Load()), fmt.Errorf("get untagged products: %w", err)
		}
		if len(products) == 0 {
			break
		}
		afterID = products[len(products)-1].ID

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(b.maxWorkers)
		for _, p := range products {
			g.Go(func() error {
				if b.tagProduct(gctx, p) {
					tagged.Add(1)
				}
				return gctx.Err()
			})
		}
		if err := g.Wait(); err != nil {
			return int(tagged.Load()), err
		}
		if len(products) < b.batchSize {
			break
		}
	}

	if err := b.settingManager.SetSetting(ctx, LastBackfillKey, time.Now().UTC().Format(time.RFC3339)); err != nil {
		lgr.Printf("[WARN] failed to save backfill time: %v", err)
	}
	if n := tagged.Load(); n > 0 {
		lgr.Printf("[INFO] tag backfill completed, %d products tagged", n)
	}
	return int(tagged.Load()), nil
}

// LastRun returns completion time of the last backfill, zero if none recorded
func (b *Backfiller) LastRun(ctx context.Context) (time.Time, error) {
	val, err := b.settingManager.GetSetting(ctx, LastBackfillKey)
	if err != nil {
		return time.Time{}, fmt.Errorf("get last backfill: %w", err)
	}
	if val == "" {
		return time.Time{}, nil
	}
	ts, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse last backfill %q: %w", val, err)
	}
	return ts, nil
}

// tagProduct generates tags of the product and stores them, reports whether it got any
func (b *Backfiller) tagProduct(ctx context.Context, p *domain.Product) bool {
	tags := b.catalog.TagProduct(p)
	if len(tags) == 0 {
		lgr.Printf("[DEBUG] no tags found for product %d %q", p.ID, p.Name)
		return false
	}
	if err := b.productManager.UpdateProductTags(ctx, p.ID, tags); err != nil {
		lgr.Printf("[WARN] failed to tag product %d: %v", p.ID, err)
		return false
	}
	lgr.Printf("[DEBUG] product %d tagged with %v", p.ID, tags)
	return true
}
