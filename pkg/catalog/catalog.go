// Package catalog ties products, tagging and preferences together. It saves products with
// auto-generated tags, ranks listings and search results, and turns shopping activity into
// preference updates.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/shopscope/pkg/domain"
	"github.com/umputun/shopscope/pkg/ranking"
)

//go:generate moq -out mocks/product_store.go -pkg mocks -skip-ensure -fmt goimports . ProductStore
//go:generate moq -out mocks/tagger.go -pkg mocks -skip-ensure -fmt goimports . Tagger
//go:generate moq -out mocks/preferences.go -pkg mocks -skip-ensure -fmt goimports . Preferences

// ProductStore persists products
type ProductStore interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetProducts(ctx context.Context, ids []int64) ([]*domain.Product, error)
	ListProductsByTags(ctx context.Context, tags []string, limit int) ([]*domain.Product, error)
	SearchProducts(ctx context.Context, query string, limit int) ([]*domain.Product, error)
	GetDescriptions(ctx context.Context, limit int) ([]string, error)
}

// Tagger generates product tags from descriptions
type Tagger interface {
	Generate(text string) []string
	Fallback(text string) []string
	InitModel(corpus []string) error
	Ready() bool
}

// Preferences records activity events and answers preference queries
type Preferences interface {
	OnCartAdd(ctx context.Context, userID string, productTags []string) error
	OnSearch(ctx context.Context, userID string, keywords []string) error
	OnOrderPaid(ctx context.Context, userID string, orderTags []string) error
	TopPreferences(ctx context.Context, userID string, n int) ([]domain.TagWeight, error)
}

// ErrOutOfStock is returned when a product with no stock is added to a cart
var ErrOutOfStock = errors.New("product is out of stock")

// ErrInvalidProduct is returned for a product failing validation
var ErrInvalidProduct = errors.New("invalid product")

// Config holds catalog configuration
type Config struct {
	Products    ProductStore
	Tagger      Tagger
	Preferences Preferences

	MinTags     int // below this the fallback tagger is merged in, 3
	MaxTags     int // tags per product, 5
	CorpusSize  int // descriptions used to fit the model, 1000
	TopN        int // preferred tags used for ranking, 5
	ListLimit   int // default and max size of a listing, 100
	SearchLimit int // max search results, 100
}

// Service implements catalog operations
type Service struct {
	products    ProductStore
	tagger      Tagger
	preferences Preferences

	minTags, maxTags, corpusSize, topN, listLimit, searchLimit int
}

// NewService makes a catalog service, zero config values are replaced by defaults
func NewService(cfg Config) *Service {
	orDefault := func(v, def int) int {
		if v <= 0 {
			return def
		}
		return v
	}
	return &Service{
		products:    cfg.Products,
		tagger:      cfg.Tagger,
		preferences: cfg.Preferences,
		minTags:     orDefault(cfg.MinTags, 3),
		maxTags:     orDefault(cfg.MaxTags, 5),
		corpusSize:  orDefault(cfg.CorpusSize, 1000),
		topN:        orDefault(cfg.TopN, 5),
		listLimit:   orDefault(cfg.ListLimit, 100),
		searchLimit: orDefault(cfg.SearchLimit, 100),
	}
}

// SaveProduct creates a product if its id is zero, updates it otherwise. An update without tags
// keeps the stored ones. Tags are generated only when the product has a description and still
// no tags; tagging failures are logged and the product is saved with whatever tags it has.
// The tag model is never fitted here, see FitCorpus.
func (s *Service) SaveProduct(ctx context.Context, p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidProduct)
	}
	if p.Stock < 0 || p.PriceCents < 0 {
		return fmt.Errorf("%w: negative stock or price", ErrInvalidProduct)
	}

	if p.ID != 0 && len(p.Tags) == 0 {
		stored, err := s.products.GetProduct(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("get product %d: %w", p.ID, err)
		}
		p.Tags = stored.Tags
	}

	if strings.TrimSpace(p.Description) != "" && len(p.Tags) == 0 {
		p.Tags = s.TagProduct(p)
	}

	if p.ID == 0 {
		if err := s.products.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("create product %q: %w", p.Name, err)
		}
		lgr.Printf("[DEBUG] product %d %q created with tags %v", p.ID, p.Name, p.Tags)
		return nil
	}
	if err := s.products.UpdateProduct(ctx, p); err != nil {
		return fmt.Errorf("update product %d: %w", p.ID, err)
	}
	lgr.Printf("[DEBUG] product %d %q updated", p.ID, p.Name)
	return nil
}

// TagProduct generates tags of a product description, merging in fallback tags when too few.
// It doesn't store anything.
func (s *Service) TagProduct(p *domain.Product) (tags []string) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[WARN] tag generation for %q failed: %v", p.Name, r)
			tags = s.fallbackTags(p, nil)
		}
	}()

	tags = s.tagger.Generate(p.Description)
	if len(tags) >= s.minTags {
		return tags
	}
	lgr.Printf("[DEBUG] only %d tags generated for %q, adding fallback tags", len(tags), p.Name)
	return s.fallbackTags(p, tags)
}

// fallbackTags appends fallback tags missing in tags, up to maxTags
func (s *Service) fallbackTags(p *domain.Product, tags []string) (res []string) {
	res = append([]string{}, tags...)
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[WARN] fallback tagging for %q failed: %v", p.Name, r)
		}
	}()
	for _, tag := range s.tagger.Fallback(p.Description) {
		if len(res) >= s.maxTags {
			break
		}
		dup := false
		for _, t := range res {
			if t == tag {
				dup = true
				break
			}
		}
		if !dup {
			res = append(res, tag)
		}
	}
	return res
}

// FitCorpus fits the tag model on stored product descriptions. No-op for an empty catalog
// and for a model already fitted.
func (s *Service) FitCorpus(ctx context.Context) error {
	return s.fitCorpus(ctx, nil)
}

// fitCorpus fits the tag model on stored descriptions followed by extra ones, up to corpusSize
func (s *Service) fitCorpus(ctx context.Context, extra []string) error {
	if s.tagger.Ready() {
		return nil
	}
	corpus, err := s.products.GetDescriptions(ctx, s.corpusSize)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	for _, d := range extra {
		if len(corpus) >= s.corpusSize {
			break
		}
		if strings.TrimSpace(d) != "" {
			corpus = append(corpus, d)
		}
	}
	if len(corpus) == 0 {
		lgr.Printf("[DEBUG] no product descriptions, tag model is not fitted")
		return nil
	}
	if err := s.tagger.InitModel(corpus); err != nil {
		return fmt.Errorf("fit tag model: %w", err)
	}
	return nil
}

// GetProduct returns a product by id
func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetProduct(ctx, id)
}

// ListProducts returns up to limit products of the whole catalog ranked by the user's preferred tags.
// Anonymous listing and users without preferences get products in newest-first order.
func (s *Service) ListProducts(ctx context.Context, userID string, limit int) ([]domain.RankedProduct, error) {
	if limit <= 0 || limit > s.listLimit {
		limit = s.listLimit
	}

	var topTags []string
	if userID != "" {
		top, err := s.preferences.TopPreferences(ctx, userID, s.topN)
		if err != nil {
			return nil, fmt.Errorf("get preferences: %w", err)
		}
		for _, tw := range top {
			topTags = append(topTags, tw.Tag)
		}
	}

	products, err := s.products.ListProductsByTags(ctx, topTags, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return ranking.ByPreference(products, topTags), nil
}

// Search returns products matching query ordered by relevance and records the search
// as the user's activity. A failed activity update doesn't fail the search.
func (s *Service) Search(ctx context.Context, userID, query string) ([]domain.RankedProduct, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.RankedProduct{}, nil
	}

	products, err := s.products.SearchProducts(ctx, query, s.searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	if userID != "" {
		if err := s.preferences.OnSearch(ctx, userID, []string{query}); err != nil {
			lgr.Printf("[WARN] failed to record search of %s: %v", userID, err)
		}
	}
	return ranking.BySearch(products, query), nil
}

// AddToCart records the product's tags as the user's cart activity
func (s *Service) AddToCart(ctx context.Context, userID string, productID int64) error {
	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if p.Stock <= 0 {
		return fmt.Errorf("product %d: %w", productID, ErrOutOfStock)
	}
	if err := s.preferences.OnCartAdd(ctx, userID, p.Tags); err != nil {
		return fmt.Errorf("record cart activity: %w", err)
	}
	return nil
}

// OrderPaid records tags of all order products as the user's order activity.
// Unknown products are skipped, an order with no known products is ErrNotFound.
func (s *Service) OrderPaid(ctx context.Context, userID string, productIDs []int64) error {
	products, err := s.products.GetProducts(ctx, productIDs)
	if err != nil {
		return fmt.Errorf("get order products: %w", err)
	}
	if len(products) == 0 {
		return fmt.Errorf("order products %v: %w", productIDs, domain.ErrNotFound)
	}

	var tags []string
	for _, p := range products {
		tags = append(tags, p.Tags...)
	}
	if err := s.preferences.OnOrderPaid(ctx, userID, tags); err != nil {
		return fmt.Errorf("record order activity: %w", err)
	}
	lgr.Printf("[DEBUG] paid order of %s with %d products recorded", userID, len(products))
	return nil
}
