package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shopscope/pkg/catalog"
	"github.com/umputun/shopscope/pkg/domain"
	"github.com/umputun/shopscope/pkg/preference"
	"github.com/umputun/shopscope/server/mocks"
)

func serve(srv *Server, method, target string, body io.Reader) *httptest.ResponseRecorder {
	if body == nil {
		body = http.NoBody
	}
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(method, target, body))
	return w
}

func TestServer_ListProducts(t *testing.T) {
	cat := &mocks.CatalogMock{
		ListProductsFunc: func(_ context.Context, userID string, limit int) ([]domain.RankedProduct, error) {
			if userID == "bad" {
				return nil, errors.New("db error")
			}
			return []domain.RankedProduct{{Product: &domain.Product{ID: 1, Name: "phone", Tags: []string{"手机"}}, Score: 5}}, nil
		},
	}
	srv := testServer(t, cat, nil, nil)

	w := serve(srv, http.MethodGet, "/api/v1/products?user=u1&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, "phone", res[0]["name"])
	assert.InDelta(t, 5, res[0]["score"], 0)
	require.Len(t, cat.ListProductsCalls(), 1)
	assert.Equal(t, "u1", cat.ListProductsCalls()[0].UserID)
	assert.Equal(t, 10, cat.ListProductsCalls()[0].Limit)

	w = serve(srv, http.MethodGet, "/api/v1/products?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(srv, http.MethodGet, "/api/v1/products?user=bad", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"db error"}`, w.Body.String())
}

func TestServer_SaveProduct(t *testing.T) {
	cat := &mocks.CatalogMock{
		SaveProductFunc: func(_ context.Context, p *domain.Product) error {
			if p.Name == "" {
				return fmt.Errorf("%w: empty name", catalog.ErrInvalidProduct)
			}
			if p.ID == 0 {
				p.ID = 11
			}
			p.Tags = []string{"手机", "5G", "曲面屏"}
			return nil
		},
	}
	srv := testServer(t, cat, nil, nil)

	t.Run("create", func(t *testing.T) {
		body := `{"name":"Phone X","stock":3,"price":1999.99,"description":"5G手机曲面屏"}`
		w := serve(srv, http.MethodPost, "/api/v1/products", strings.NewReader(body))
		require.Equal(t, http.StatusCreated, w.Code)

		var p domain.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, int64(11), p.ID)
		assert.Equal(t, []string{"手机", "5G", "曲面屏"}, p.Tags)

		saved := cat.SaveProductCalls()[0].P
		assert.Equal(t, int64(199999), saved.PriceCents)
		assert.Equal(t, 3, saved.Stock)
	})

	t.Run("update", func(t *testing.T) {
		w := serve(srv, http.MethodPost, "/api/v1/products", strings.NewReader(`{"id":5,"name":"x"}`))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid", func(t *testing.T) {
		w := serve(srv, http.MethodPost, "/api/v1/products", strings.NewReader(`{"name":""}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = serve(srv, http.MethodPost, "/api/v1/products", strings.NewReader(`{bad json`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_GetProduct(t *testing.T) {
	cat := &mocks.CatalogMock{
		GetProductFunc: func(_ context.Context, id int64) (*domain.Product, error) {
			if id == 1 {
				return &domain.Product{ID: 1, Name: "phone"}, nil
			}
			return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
		},
	}
	srv := testServer(t, cat, nil, nil)

	w := serve(srv, http.MethodGet, "/api/v1/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"phone"`)

	w = serve(srv, http.MethodGet, "/api/v1/products/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"product 2: not found"}`, w.Body.String())

	w = serve(srv, http.MethodGet, "/api/v1/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_ImportProducts(t *testing.T) {
	cat := &mocks.CatalogMock{
		ImportCSVFunc: func(_ context.Context, r io.Reader) (catalog.ImportStats, error) {
			data, _ := io.ReadAll(r)
			if strings.HasPrefix(string(data), "bad") {
				return catalog.ImportStats{Imported: 1}, errors.New("csv header misses column \"stock\"")
			}
			return catalog.ImportStats{Imported: 2, Skipped: 1}, nil
		},
	}
	srv := testServer(t, cat, nil, nil)

	w := serve(srv, http.MethodPost, "/api/v1/products/import", strings.NewReader("name,stock,price\n"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"imported":2,"skipped":1}`, w.Body.String())

	w = serve(srv, http.MethodPost, "/api/v1/products/import", strings.NewReader("bad"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"csv header misses column \"stock\"","stats":{"imported":1,"skipped":0}}`, w.Body.String())
}

func TestServer_Backfill(t *testing.T) {
	sched := &mocks.SchedulerMock{
		BackfillNowFunc: func(context.Context) (int, error) { return 4, nil },
	}
	srv := testServer(t, nil, nil, sched)
	w := serve(srv, http.MethodPost, "/api/v1/products/backfill", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tagged":4}`, w.Body.String())

	sched.BackfillNowFunc = func(context.Context) (int, error) { return 0, errors.New("failed") }
	w = serve(srv, http.MethodPost, "/api/v1/products/backfill", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_Search(t *testing.T) {
	cat := &mocks.CatalogMock{
		SearchFunc: func(_ context.Context, userID, query string) ([]domain.RankedProduct, error) {
			return []domain.RankedProduct{{Product: &domain.Product{ID: 2, Name: query}, Score: 3}}, nil
		},
	}
	srv := testServer(t, cat, nil, nil)

	w := serve(srv, http.MethodGet, "/api/v1/search?q=%E6%89%8B%E6%9C%BA&user=u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"手机"`)
	require.Len(t, cat.SearchCalls(), 1)
	assert.Equal(t, "u1", cat.SearchCalls()[0].UserID)
	assert.Equal(t, "手机", cat.SearchCalls()[0].Query)

	w = serve(srv, http.MethodGet, "/api/v1/search?q=+", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, cat.SearchCalls(), 1)
}

func TestServer_Cart(t *testing.T) {
	cat := &mocks.CatalogMock{
		AddToCartFunc: func(_ context.Context, userID string, productID int64) error {
			switch productID {
			case 2:
				return fmt.Errorf("product 2: %w", catalog.ErrOutOfStock)
			case 3:
				return fmt.Errorf("product 3: %w", domain.ErrNotFound)
			}
			return nil
		},
	}
	srv := testServer(t, cat, nil, nil)

	w := serve(srv, http.MethodPost, "/api/v1/users/u1/cart/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", cat.AddToCartCalls()[0].UserID)
	assert.Equal(t, int64(1), cat.AddToCartCalls()[0].ProductID)

	assert.Equal(t, http.StatusConflict, serve(srv, http.MethodPost, "/api/v1/users/u1/cart/2", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(srv, http.MethodPost, "/api/v1/users/u1/cart/3", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(srv, http.MethodPost, "/api/v1/users/u1/cart/x", nil).Code)
}

func TestServer_OrderPaid(t *testing.T) {
	cat := &mocks.CatalogMock{
		OrderPaidFunc: func(context.Context, string, []int64) error { return nil },
	}
	srv := testServer(t, cat, nil, nil)

	w := serve(srv, http.MethodPost, "/api/v1/users/u1/orders", strings.NewReader(`{"product_ids":[1,2]}`))
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, cat.OrderPaidCalls(), 1)
	assert.Equal(t, []int64{1, 2}, cat.OrderPaidCalls()[0].ProductIDs)

	w = serve(srv, http.MethodPost, "/api/v1/users/u1/orders", strings.NewReader(`{"product_ids":[]}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = serve(srv, http.MethodPost, "/api/v1/users/u1/orders", strings.NewReader(`[`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, cat.OrderPaidCalls(), 1)
}

func TestServer_Preferences(t *testing.T) {
	updated := time.Date(2025, 5, 7, 13, 23, 0, 0, time.UTC)
	prefs := &mocks.PreferencesMock{
		TopPreferencesFunc: func(_ context.Context, userID string, n int) ([]domain.TagWeight, error) {
			if userID == "" {
				return nil, preference.ErrNoUser
			}
			return []domain.TagWeight{{Tag: "手机", Weight: 1.35}, {Tag: "5G", Weight: 0.45}}[:min(n, 2)], nil
		},
		RecentPreferencesFunc: func(_ context.Context, _ string, days, n int) ([]domain.TagWeight, error) {
			return []domain.TagWeight{{Tag: "手机", Weight: 1.35}}, nil
		},
		TagDetailsFunc: func(_ context.Context, _, tag string) (*domain.TagDetails, error) {
			if tag != "手机" {
				return nil, nil
			}
			return &domain.TagDetails{Tag: tag, Weight: 1.35, LastUpdated: updated, DaysSinceUpdated: 5}, nil
		},
	}
	srv := testServer(t, nil, prefs, nil)

	t.Run("top", func(t *testing.T) {
		w := serve(srv, http.MethodGet, "/api/v1/users/u1/preferences?n=1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"tag":"手机","weight":1.35}]`, w.Body.String())

		w = serve(srv, http.MethodGet, "/api/v1/users/u1/preferences", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, prefs.TopPreferencesCalls()[1].N)

		w = serve(srv, http.MethodGet, "/api/v1/users/u1/preferences?n=-1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("recent", func(t *testing.T) {
		w := serve(srv, http.MethodGet, "/api/v1/users/u1/preferences/recent?days=7&n=3", nil)
		require.Equal(t, http.StatusOK, w.Code)
		call := prefs.RecentPreferencesCalls()[0]
		assert.Equal(t, 7, call.Days)
		assert.Equal(t, 3, call.N)

		w = serve(srv, http.MethodGet, "/api/v1/users/u1/preferences/recent", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 30, prefs.RecentPreferencesCalls()[1].Days)

		w = serve(srv, http.MethodGet, "/api/v1/users/u1/preferences/recent?days=x", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("tag details", func(t *testing.T) {
		w := serve(srv, http.MethodGet, "/api/v1/users/u1/preferences/tags/%E6%89%8B%E6%9C%BA", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"tag":"手机","weight":1.35,"last_updated":"2025-05-07T13:23:00Z","days_since_updated":5}`,
			w.Body.String())

		w = serve(srv, http.MethodGet, "/api/v1/users/u1/preferences/tags/unknown", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("x: %w", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("x: %w", catalog.ErrInvalidProduct), http.StatusBadRequest},
		{preference.ErrNoUser, http.StatusBadRequest},
		{fmt.Errorf("x: %w", catalog.ErrOutOfStock), http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, errorCode(tt.err), "%v", tt.err)
	}
}
