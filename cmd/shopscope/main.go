package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/shopscope/pkg/catalog"
	"github.com/umputun/shopscope/pkg/config"
	"github.com/umputun/shopscope/pkg/preference"
	"github.com/umputun/shopscope/pkg/repository"
	"github.com/umputun/shopscope/pkg/scheduler"
	"github.com/umputun/shopscope/pkg/service"
	"github.com/umputun/shopscope/pkg/tagging"
	"github.com/umputun/shopscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DB     string `long:"db" env:"DB" description:"database DSN, overrides config"`
	Import string `long:"import" description:"import products from CSV file and exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	log.Printf("[INFO] starting shopscope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and serves until ctx is canceled, or imports a CSV file if requested
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	generator, err := makeGenerator(cfg.Tagging)
	if err != nil {
		return fmt.Errorf("failed to init tagging: %w", err)
	}

	prefs := preference.NewService(preference.ServiceConfig{
		Store: repos.Preference,
		Policy: preference.Policy{
			MaxTags:     cfg.Preferences.MaxTags,
			MinWeight:   cfg.Preferences.MinWeight,
			DecayFactor: cfg.Preferences.DecayFactor,
		},
		Increments: preference.Increments{
			Cart:   cfg.Preferences.CartIncrement,
			Search: cfg.Preferences.SearchIncrement,
			Order:  cfg.Preferences.OrderIncrement,
		},
	})

	catalogSvc := catalog.NewService(catalog.Config{
		Products:    repos.Product,
		Tagger:      generator,
		Preferences: prefs,
		MinTags:     cfg.Tagging.MinTags,
		MaxTags:     cfg.Tagging.MaxTags,
		CorpusSize:  cfg.Tagging.CorpusSize,
		TopN:        cfg.Preferences.TopN,
		ListLimit:   cfg.Server.PageSize,
		SearchLimit: cfg.Server.SearchLimit,
	})

	if opts.Import != "" {
		return importProducts(ctx, catalogSvc, opts.Import)
	}

	schedulerSvc := service.NewSchedulerService(repos.Product, repos.Setting)
	sched := scheduler.NewScheduler(scheduler.Config{
		ProductManager: schedulerSvc,
		SettingManager: schedulerSvc,
		Catalog:        catalogSvc,
		Interval:       cfg.Backfill.Interval,
		BatchSize:      cfg.Backfill.BatchSize,
		MaxWorkers:     cfg.Backfill.MaxWorkers,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Params{
		Config:      cfg,
		Catalog:     catalogSvc,
		Preferences: prefs,
		Scheduler:   sched,
		Version:     revision,
		Debug:       opts.Debug,
	})
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeGenerator builds the tag generator from tagging configuration
func makeGenerator(cfg config.TaggingConfig) (*tagging.Generator, error) {
	var tokenizer tagging.Tokenizer = tagging.NGramTokenizer{MinN: 2, MaxN: 3}
	if cfg.Tokenizer == "gse" {
		seg, err := tagging.NewSegmenter(cfg.DictFiles...)
		if err != nil {
			return nil, fmt.Errorf("load segmenter dictionary: %w", err)
		}
		tokenizer = seg
	}
	log.Printf("[DEBUG] tagging with %s tokenizer, %d categories", cfg.Tokenizer, len(cfg.Categories))

	return tagging.NewGenerator(tagging.Config{
		Dictionary:     tagging.NewDictionary(cfg.Categories, cfg.StopWords),
		Normalizer:     tagging.NewNormalizer(cfg.Synonyms),
		Tokenizer:      tokenizer,
		MaxTags:        cfg.MaxTags,
		ScoreThreshold: cfg.ScoreThreshold,
		MinTermLength:  cfg.MinTermLength,
		MaxFeatures:    cfg.MaxFeatures,
		MaxCorpus:      cfg.CorpusSize,
	}), nil
}

// importProducts imports products from a CSV file. The import fits the tag model on stored
// and imported descriptions before tagging rows.
func importProducts(ctx context.Context, svc *catalog.Service, path string) error {
	fh, err := os.Open(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer fh.Close()

	stats, err := svc.ImportCSV(ctx, fh)
	if err != nil {
		return fmt.Errorf("failed to import %s after %d products: %w", path, stats.Imported, err)
	}
	log.Printf("[INFO] imported %d products from %s, %d skipped", stats.Imported, path, stats.Skipped)
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
