package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/shopscope/pkg/catalog"
	"github.com/umputun/shopscope/pkg/domain"
	"github.com/umputun/shopscope/pkg/preference"
)

// productRequest is the body of product creation and update
type productRequest struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Stock       int      `json:"stock"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// orderRequest is the body of a paid order notification
type orderRequest struct {
	ProductIDs []int64 `json:"product_ids"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	last, err := s.scheduler.LastBackfill(r.Context())
	if err != nil {
		log.Printf("[WARN] failed to get last backfill time: %v", err)
	}
	if !last.IsZero() {
		status["last_backfill"] = last
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listProductsHandler lists products, ranked by preferences of the user if given
func (s *Server) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	products, err := s.catalog.ListProducts(r.Context(), r.URL.Query().Get("user"), limit)
	if err != nil {
		log.Printf("[ERROR] failed to list products: %v", err)
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, products)
}

// saveProductHandler creates a product, or updates it if the body has an id
func (s *Server) saveProductHandler(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid product: %w", err), http.StatusBadRequest)
		return
	}

	p := &domain.Product{
		ID:          req.ID,
		Name:        req.Name,
		Stock:       req.Stock,
		PriceCents:  int64(math.Round(req.Price * 100)),
		Description: req.Description,
		Tags:        req.Tags,
	}

	if err := s.catalog.SaveProduct(r.Context(), p); err != nil {
		log.Printf("[WARN] failed to save product %q: %v", req.Name, err)
		renderError(w, r, err, errorCode(err))
		return
	}

	code := http.StatusOK
	if req.ID == 0 {
		code = http.StatusCreated
	}
	renderJSON(w, r, code, p)
}

// getProductHandler returns a single product
func (s *Server) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid product ID"), http.StatusBadRequest)
		return
	}
	p, err := s.catalog.GetProduct(r.Context(), id)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, p)
}

// importProductsHandler imports products from a CSV body
func (s *Server) importProductsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.catalog.ImportCSV(r.Context(), r.Body)
	if err != nil {
		log.Printf("[ERROR] csv import failed after %d products: %v", stats.Imported, err)
		renderJSON(w, r, http.StatusBadRequest, map[string]interface{}{"error": err.Error(), "stats": stats})
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// backfillHandler tags untagged products right away
func (s *Server) backfillHandler(w http.ResponseWriter, r *http.Request) {
	n, err := s.scheduler.BackfillNow(r.Context())
	if err != nil {
		log.Printf("[ERROR] backfill failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int{"tagged": n})
}

// searchHandler returns products matching q ordered by relevance
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		renderError(w, r, fmt.Errorf("query is required"), http.StatusBadRequest)
		return
	}
	products, err := s.catalog.Search(r.Context(), r.URL.Query().Get("user"), query)
	if err != nil {
		log.Printf("[ERROR] search for %q failed: %v", query, err)
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, products)
}

// cartHandler records a product added to the user's cart
func (s *Server) cartHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("product"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid product ID"), http.StatusBadRequest)
		return
	}
	if err := s.catalog.AddToCart(r.Context(), r.PathValue("user"), id); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// orderPaidHandler records products of a paid order
func (s *Server) orderPaidHandler(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid order: %w", err), http.StatusBadRequest)
		return
	}
	if len(req.ProductIDs) == 0 {
		renderError(w, r, fmt.Errorf("order has no products"), http.StatusBadRequest)
		return
	}
	if err := s.catalog.OrderPaid(r.Context(), r.PathValue("user"), req.ProductIDs); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// topPreferencesHandler returns the user's highest-weight tags
func (s *Server) topPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "n", 5)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	tags, err := s.preferences.TopPreferences(r.Context(), r.PathValue("user"), n)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, tags)
}

// recentPreferencesHandler returns the user's highest-weight tags updated within days
func (s *Server) recentPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 30)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	n, err := queryInt(r, "n", 5)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	tags, err := s.preferences.RecentPreferences(r.Context(), r.PathValue("user"), days, n)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, tags)
}

// tagDetailsHandler returns weight and recency of one of the user's tags
func (s *Server) tagDetailsHandler(w http.ResponseWriter, r *http.Request) {
	details, err := s.preferences.TagDetails(r.Context(), r.PathValue("user"), r.PathValue("tag"))
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	if details == nil {
		renderError(w, r, fmt.Errorf("tag %q: %w", r.PathValue("tag"), domain.ErrNotFound), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, details)
}

// queryInt returns a non-negative integer query parameter, def if it's absent
func queryInt(r *http.Request, name string, def int) (int, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", name, val)
	}
	return n, nil
}

// errorCode maps domain errors to HTTP status codes
func errorCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrInvalidProduct), errors.Is(err, preference.ErrNoUser):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrOutOfStock):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
