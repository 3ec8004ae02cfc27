package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shopscope/server/mocks"
)

// testServer creates a server with the given mocks, nil ones replaced with empty mocks
func testServer(t *testing.T, cat *mocks.CatalogMock, prefs *mocks.PreferencesMock, sched *mocks.SchedulerMock) *Server {
	t.Helper()
	if cat == nil {
		cat = &mocks.CatalogMock{}
	}
	if prefs == nil {
		prefs = &mocks.PreferencesMock{}
	}
	if sched == nil {
		sched = &mocks.SchedulerMock{
			LastBackfillFunc: func(context.Context) (time.Time, error) { return time.Time{}, nil },
		}
	}
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":8080", 30 * time.Second },
	}
	return New(Params{Config: cfg, Catalog: cat, Preferences: prefs, Scheduler: sched, Version: "test"})
}

func TestServer_New(t *testing.T) {
	srv := New(Params{Config: &mocks.ConfigProviderMock{}, Version: "1.0.0"})
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}
	sched := &mocks.SchedulerMock{
		LastBackfillFunc: func(context.Context) (time.Time, error) { return time.Time{}, nil },
	}
	srv := New(Params{Config: cfg, Catalog: &mocks.CatalogMock{}, Preferences: &mocks.PreferencesMock{},
		Scheduler: sched, Version: "1.0.0", Debug: true})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/ping", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:gosec // test url
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/status", port)) //nolint:gosec // test url
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "shopscope", resp.Header.Get("App-Name"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server didn't stop")
	}
}

func TestServer_StatusHandler(t *testing.T) {
	last := time.Date(2025, 5, 12, 13, 23, 0, 0, time.UTC)
	sched := &mocks.SchedulerMock{
		LastBackfillFunc: func(context.Context) (time.Time, error) { return last, nil },
	}
	srv := testServer(t, nil, nil, sched)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "test", resp["version"])
	assert.Equal(t, "2025-05-12T13:23:00Z", resp["last_backfill"])

	t.Run("backfill time error ignored", func(t *testing.T) {
		sched := &mocks.SchedulerMock{
			LastBackfillFunc: func(context.Context) (time.Time, error) { return time.Time{}, errors.New("db") },
		}
		srv := testServer(t, nil, nil, sched)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "last_backfill")
	})
}

func TestRenderError(t *testing.T) {
	w := httptest.NewRecorder()
	renderError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), nil, http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"unknown error"}`, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}
