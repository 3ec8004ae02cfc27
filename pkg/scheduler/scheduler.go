// Package scheduler runs background catalog maintenance. It fits the tag model once the catalog
// has descriptions and periodically tags products saved without tags.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/shopscope/pkg/domain"
)

//go:generate moq -out mocks/product_manager.go -pkg mocks -skip-ensure -fmt goimports . ProductManager
//go:generate moq -out mocks/setting_manager.go -pkg mocks -skip-ensure -fmt goimports . SettingManager
//go:generate moq -out mocks/catalog.go -pkg mocks -skip-ensure -fmt goimports . Catalog

// LastBackfillKey is the setting keeping completion time of the last backfill run
const LastBackfillKey = "last_backfill"

// ProductManager provides products waiting for tags and stores their tags
type ProductManager interface {
	GetUntaggedProducts(ctx context.Context, afterID int64, limit int) ([]*domain.Product, error)
	UpdateProductTags(ctx context.Context, id int64, tags []string) error
}

// SettingManager persists scheduler state
type SettingManager interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Catalog generates product tags and fits the tag model
type Catalog interface {
	TagProduct(p *domain.Product) []string
	FitCorpus(ctx context.Context) error
}

// Scheduler manages periodic tag backfill
type Scheduler struct {
	backfiller *Backfiller
	interval   time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	ProductManager ProductManager
	SettingManager SettingManager
	Catalog        Catalog
	Interval       time.Duration // between backfill runs, 10m
	BatchSize      int           // products loaded per query, 100
	MaxWorkers     int           // concurrent taggers, 4
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cfg Config) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	return &Scheduler{
		backfiller: NewBackfiller(BackfillerConfig{
			ProductManager: cfg.ProductManager,
			SettingManager: cfg.SettingManager,
			Catalog:        cfg.Catalog,
			BatchSize:      cfg.BatchSize,
			MaxWorkers:     cfg.MaxWorkers,
		}),
		interval: cfg.Interval,
	}
}

// Start begins the backfill worker
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.backfillWorker(ctx)

	lgr.Printf("[INFO] scheduler started with backfill interval %v", s.interval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// BackfillNow runs the backfill immediately and returns the number of products tagged
func (s *Scheduler) BackfillNow(ctx context.Context) (int, error) {
	lgr.Printf("[INFO] triggered immediate tag backfill")
	return s.backfiller.Run(ctx)
}

// LastBackfill returns completion time of the last backfill run, zero if it never completed
func (s *Scheduler) LastBackfill(ctx context.Context) (time.Time, error) {
	return s.backfiller.LastRun(ctx)
}

// backfillWorker tags untagged products right away and on every tick
func (s *Scheduler) backfillWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runBackfill(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runBackfill(ctx)
		}
	}
}

func (s *Scheduler) runBackfill(ctx context.Context) {
	if _, err := s.backfiller.Run(ctx); err != nil && ctx.Err() == nil {
		lgr.Printf("[ERROR] tag backfill failed: %v", err)
	}
}
