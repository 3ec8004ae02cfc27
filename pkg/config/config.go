package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/umputun/shopscope/pkg/tagging"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database    DatabaseConfig    `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Tagging     TaggingConfig     `yaml:"tagging" json:"tagging" jsonschema:"description=Product tag generation"`
	Preferences PreferencesConfig `yaml:"preferences" json:"preferences" jsonschema:"description=User preference weighting"`
	Backfill    BackfillConfig    `yaml:"backfill" json:"backfill" jsonschema:"description=Background tagging of untagged products"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen      string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	PageSize    int           `yaml:"page_size" json:"page_size" jsonschema:"default=100,minimum=1,description=Maximum products in a listing"`
	SearchLimit int           `yaml:"search_limit" json:"search_limit" jsonschema:"default=100,minimum=1,description=Maximum products in search results"`
}

// DatabaseConfig holds database settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:shopscope.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// TaggingConfig holds tag generator settings
type TaggingConfig struct {
	MaxTags        int                `yaml:"max_tags" json:"max_tags" jsonschema:"default=5,minimum=1,description=Maximum tags per product"`
	MinTags        int                `yaml:"min_tags" json:"min_tags" jsonschema:"default=3,minimum=0,description=Below this number fallback tags are added"`
	ScoreThreshold float64            `yaml:"score_threshold" json:"score_threshold" jsonschema:"default=0.2,minimum=0,maximum=1,description=Minimal TF-IDF score of a statistical tag"`
	MinTermLength  int                `yaml:"min_term_length" json:"min_term_length" jsonschema:"default=2,minimum=1,description=Minimal statistical tag length in characters"`
	MaxFeatures    int                `yaml:"max_features" json:"max_features" jsonschema:"default=500,minimum=1,description=TF-IDF vocabulary size"`
	CorpusSize     int                `yaml:"corpus_size" json:"corpus_size" jsonschema:"default=1000,minimum=1,description=Descriptions used to fit the model"`
	Tokenizer      string             `yaml:"tokenizer" json:"tokenizer" jsonschema:"default=gse,enum=gse,enum=ngram,description=Text tokenizer"`
	DictFiles      []string           `yaml:"dict_files" json:"dict_files,omitempty" jsonschema:"description=Segmentation dictionaries for gse tokenizer, embedded one if empty"`
	Categories     []tagging.Category `yaml:"categories" json:"categories" jsonschema:"description=Product categories with their keywords"`
	StopWords      []string           `yaml:"stop_words" json:"stop_words" jsonschema:"description=Words never used as tags"`
	Synonyms       []tagging.Synonym  `yaml:"synonyms" json:"synonyms" jsonschema:"description=Variant spellings folded into canonical tags"`
}

// PreferencesConfig holds preference weighting settings
type PreferencesConfig struct {
	MaxTags         int     `yaml:"max_tags" json:"max_tags" jsonschema:"default=15,minimum=1,description=Maximum tags kept per user"`
	MinWeight       float64 `yaml:"min_weight" json:"min_weight" jsonschema:"default=0.1,description=Tags decayed below this weight are dropped"`
	DecayFactor     float64 `yaml:"decay_factor" json:"decay_factor" jsonschema:"default=0.9,description=Weight multiplier applied on every update"`
	CartIncrement   float64 `yaml:"cart_increment" json:"cart_increment" jsonschema:"default=0.5,description=Weight added by a cart addition"`
	SearchIncrement float64 `yaml:"search_increment" json:"search_increment" jsonschema:"default=0.3,description=Weight added by a search"`
	OrderIncrement  float64 `yaml:"order_increment" json:"order_increment" jsonschema:"default=1.0,description=Weight added by a paid order"`
	TopN            int     `yaml:"top_n" json:"top_n" jsonschema:"default=5,minimum=1,description=Preferred tags used to rank listings"`
}

// BackfillConfig holds background tagging settings
type BackfillConfig struct {
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=10m,description=Interval between backfill runs"`
	BatchSize  int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=100,minimum=1,description=Products loaded per query"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,minimum=1,description=Maximum concurrent taggers"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse makes configuration from YAML data, with environment variables expanded
func Parse(data []byte) (*Config, error) {
	expanded := []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// unknown keys are likely typos, report but don't fail
	if unknown, err := UnknownKeys(expanded); err != nil {
		lgr.Printf("[WARN] schema verification failed: %v", err)
	} else if len(unknown) > 0 {
		lgr.Printf("[WARN] unknown config keys ignored: %v", unknown)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults set, used when no config file given
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.PageSize == 0 {
		c.Server.PageSize = 100
	}
	if c.Server.SearchLimit == 0 {
		c.Server.SearchLimit = 100
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:shopscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// tagging
	t := &c.Tagging
	if t.MaxTags == 0 {
		t.MaxTags = 5
	}
	if t.MinTags == 0 {
		t.MinTags = 3
	}
	if t.ScoreThreshold == 0 {
		t.ScoreThreshold = 0.2
	}
	if t.MinTermLength == 0 {
		t.MinTermLength = 2
	}
	if t.MaxFeatures == 0 {
		t.MaxFeatures = 500
	}
	if t.CorpusSize == 0 {
		t.CorpusSize = 1000
	}
	if t.Tokenizer == "" {
		t.Tokenizer = "gse"
	}
	if t.Categories == nil {
		t.Categories = tagging.DefaultCategories()
	}
	if t.StopWords == nil {
		t.StopWords = tagging.DefaultStopWords()
	}
	if t.Synonyms == nil {
		t.Synonyms = tagging.DefaultSynonyms()
	}

	// preferences
	p := &c.Preferences
	if p.MaxTags == 0 {
		p.MaxTags = 15
	}
	if p.MinWeight == 0 {
		p.MinWeight = 0.1
	}
	if p.DecayFactor == 0 {
		p.DecayFactor = 0.9
	}
	if p.CartIncrement == 0 {
		p.CartIncrement = 0.5
	}
	if p.SearchIncrement == 0 {
		p.SearchIncrement = 0.3
	}
	if p.OrderIncrement == 0 {
		p.OrderIncrement = 1.0
	}
	if p.TopN == 0 {
		p.TopN = 5
	}

	// backfill
	if c.Backfill.Interval == 0 {
		c.Backfill.Interval = 10 * time.Minute
	}
	if c.Backfill.BatchSize == 0 {
		c.Backfill.BatchSize = 100
	}
	if c.Backfill.MaxWorkers == 0 {
		c.Backfill.MaxWorkers = 4
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Server.PageSize < 1 || cfg.Server.SearchLimit < 1 {
		return fmt.Errorf("server page_size and search_limit must be positive")
	}

	// validate tagging config
	t := cfg.Tagging
	if t.MaxTags < 1 {
		return fmt.Errorf("tagging.max_tags must be positive")
	}
	if t.MinTags < 0 || t.MinTags > t.MaxTags {
		return fmt.Errorf("tagging.min_tags must be between 0 and max_tags")
	}
	if t.ScoreThreshold < 0 || t.ScoreThreshold >= 1 {
		return fmt.Errorf("tagging.score_threshold must be in [0, 1)")
	}
	if t.MinTermLength < 1 || t.MaxFeatures < 1 || t.CorpusSize < 1 {
		return fmt.Errorf("tagging min_term_length, max_features and corpus_size must be positive")
	}
	if t.Tokenizer != "gse" && t.Tokenizer != "ngram" {
		return fmt.Errorf("tagging.tokenizer must be gse or ngram, got %q", t.Tokenizer)
	}
	for i, c := range t.Categories {
		if c.Name == "" {
			return fmt.Errorf("tagging.categories[%d] has no name", i)
		}
	}
	for i, s := range t.Synonyms {
		if s.Canonical == "" {
			return fmt.Errorf("tagging.synonyms[%d] has no canonical tag", i)
		}
	}

	// validate preferences config
	p := cfg.Preferences
	if p.MaxTags < 1 || p.TopN < 1 {
		return fmt.Errorf("preferences max_tags and top_n must be positive")
	}
	if p.MinWeight <= 0 {
		return fmt.Errorf("preferences.min_weight must be positive")
	}
	if p.DecayFactor <= 0 || p.DecayFactor > 1 {
		return fmt.Errorf("preferences.decay_factor must be in (0, 1]")
	}
	if p.CartIncrement < 0 || p.SearchIncrement < 0 || p.OrderIncrement < 0 {
		return fmt.Errorf("preferences increments must be non-negative")
	}

	// validate backfill config
	if cfg.Backfill.Interval < time.Second {
		return fmt.Errorf("backfill interval must be at least 1 second")
	}
	if cfg.Backfill.BatchSize < 1 || cfg.Backfill.MaxWorkers < 1 {
		return fmt.Errorf("backfill batch_size and max_workers must be positive")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
