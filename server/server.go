package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/shopscope/pkg/catalog"
	"github.com/umputun/shopscope/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/catalog.go -pkg mocks -skip-ensure -fmt goimports . Catalog
//go:generate moq -out mocks/preferences.go -pkg mocks -skip-ensure -fmt goimports . Preferences
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config      ConfigProvider
	catalog     Catalog
	preferences Preferences
	scheduler   Scheduler
	version     string
	debug       bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Catalog interface for product operations
type Catalog interface {
	SaveProduct(ctx context.Context, p *domain.Product) error
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, userID string, limit int) ([]domain.RankedProduct, error)
	Search(ctx context.Context, userID, query string) ([]domain.RankedProduct, error)
	AddToCart(ctx context.Context, userID string, productID int64) error
	OrderPaid(ctx context.Context, userID string, productIDs []int64) error
	ImportCSV(ctx context.Context, r io.Reader) (catalog.ImportStats, error)
}

// Preferences interface for preference queries
type Preferences interface {
	TopPreferences(ctx context.Context, userID string, n int) ([]domain.TagWeight, error)
	RecentPreferences(ctx context.Context, userID string, days, n int) ([]domain.TagWeight, error)
	TagDetails(ctx context.Context, userID, tag string) (*domain.TagDetails, error)
}

// Scheduler interface for on-demand operations
type Scheduler interface {
	BackfillNow(ctx context.Context) (int, error)
	LastBackfill(ctx context.Context) (time.Time, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params holds server dependencies
type Params struct {
	Config      ConfigProvider
	Catalog     Catalog
	Preferences Preferences
	Scheduler   Scheduler
	Version     string
	Debug       bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:      p.Config,
		catalog:     p.Catalog,
		preferences: p.Preferences,
		scheduler:   p.Scheduler,
		version:     p.Version,
		debug:       p.Debug,
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadTimeout:       timeout,
		ReadHeaderTimeout: timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("shopscope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(8 * 1024 * 1024)) // 8MB, fits csv imports
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		// products
		r.HandleFunc("GET /products", s.listProductsHandler)
		r.HandleFunc("POST /products", s.saveProductHandler)
		r.HandleFunc("GET /products/{id}", s.getProductHandler)
		r.HandleFunc("POST /products/import", s.importProductsHandler)
		r.HandleFunc("POST /products/backfill", s.backfillHandler)
		r.HandleFunc("GET /search", s.searchHandler)

		// user activity and preferences
		r.HandleFunc("POST /users/{user}/cart/{product}", s.cartHandler)
		r.HandleFunc("POST /users/{user}/orders", s.orderPaidHandler)
		r.HandleFunc("GET /users/{user}/preferences", s.topPreferencesHandler)
		r.HandleFunc("GET /users/{user}/preferences/recent", s.recentPreferencesHandler)
		r.HandleFunc("GET /users/{user}/preferences/tags/{tag}", s.tagDetailsHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
