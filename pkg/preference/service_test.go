package preference

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shopscope/pkg/domain"
	"github.com/umputun/shopscope/pkg/preference/mocks"
)

// memStore returns a store mock keeping records in memory. Reads and writes are separate
// critical sections, so lost updates are possible unless callers serialize per user.
func memStore() (*mocks.StoreMock, map[string][]byte) {
	var mu sync.Mutex
	data := map[string][]byte{}
	store := &mocks.StoreMock{
		GetPreferencesFunc: func(ctx context.Context, userID string) (*domain.PreferenceRecord, error) {
			mu.Lock()
			defer mu.Unlock()
			val, ok := data[userID]
			if !ok {
				return nil, nil
			}
			return &domain.PreferenceRecord{UserID: userID, Tags: val}, nil
		},
		UpdatePreferencesFunc: func(ctx context.Context, userID string, fn func([]byte) ([]byte, error)) error {
			mu.Lock()
			current := data[userID]
			mu.Unlock()
			runtime.Gosched()
			res, err := fn(current)
			if err != nil {
				return err
			}
			mu.Lock()
			data[userID] = res
			mu.Unlock()
			return nil
		},
	}
	return store, data
}

func TestService_OnCartAdd_NewUser(t *testing.T) {
	store, data := memStore()
	svc := NewService(ServiceConfig{Store: store, Clock: ClockFunc(func() time.Time { return testNow })})

	require.NoError(t, svc.OnCartAdd(context.Background(), "user1", []string{"手机"}))
	assert.JSONEq(t, `{"手机": {"weight": 0.45, "last_updated": "2025-05-12T13:23:00Z"}}`, string(data["user1"]))

	top, err := svc.TopPreferences(context.Background(), "user1", 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "手机", top[0].Tag)
	assert.InDelta(t, 0.45, top[0].Weight, 1e-9)
}

func TestService_Events(t *testing.T) {
	store, _ := memStore()
	svc := NewService(ServiceConfig{Store: store, Clock: ClockFunc(func() time.Time { return testNow })})
	ctx := context.Background()

	require.NoError(t, svc.OnSearch(ctx, "u", []string{"search"}))
	require.NoError(t, svc.OnOrderPaid(ctx, "u", []string{"order", "order"}))

	top, err := svc.TopPreferences(ctx, "u", 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "order", top[0].Tag)
	assert.InDelta(t, 1.8, top[0].Weight, 1e-9)
	assert.Equal(t, "search", top[1].Tag)
	assert.InDelta(t, 0.3*0.9*0.9, top[1].Weight, 1e-9)
}

func TestService_CustomIncrements(t *testing.T) {
	store, _ := memStore()
	svc := NewService(ServiceConfig{Store: store, Increments: Increments{Cart: 2, Search: 1, Order: 3}})

	require.NoError(t, svc.OnCartAdd(context.Background(), "u", []string{"a"}))
	top, err := svc.TopPreferences(context.Background(), "u", 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.8, top[0].Weight, 1e-9)
}

func TestService_UpdateValidation(t *testing.T) {
	store, _ := memStore()
	svc := NewService(ServiceConfig{Store: store})

	err := svc.Update(context.Background(), "", []string{"a"}, 1)
	require.ErrorIs(t, err, ErrNoUser)

	require.NoError(t, svc.Update(context.Background(), "u", nil, 1))
	_, err = svc.TopPreferences(context.Background(), "u", 5)
	require.NoError(t, err)

	_, err = svc.TopPreferences(context.Background(), "", 5)
	require.ErrorIs(t, err, ErrNoUser)
}

func TestService_UpdateWithoutTags(t *testing.T) {
	store, data := memStore()
	svc := NewService(ServiceConfig{Store: store, Clock: ClockFunc(func() time.Time { return testNow })})
	ctx := context.Background()

	// no record yet, nothing is stored
	require.NoError(t, svc.OnCartAdd(ctx, "new", []string{}))
	_, ok := data["new"]
	assert.False(t, ok)

	// existing record still decays
	data["u"] = []byte(`{"a": {"weight": 1.0, "last_updated": "2025-05-10T00:00:00Z"}, "b": 0.105}`)
	require.NoError(t, svc.OnCartAdd(ctx, "u", nil))
	assert.JSONEq(t, `{"a": {"weight": 0.9, "last_updated": "2025-05-10T00:00:00Z"}}`, string(data["u"]))
}

func TestService_RecentWideWindow(t *testing.T) {
	store, data := memStore()
	data["u"] = []byte(`{"a": {"weight": 1, "last_updated": "2025-05-07T13:23:00Z"}}`)
	svc := NewService(ServiceConfig{Store: store, Clock: ClockFunc(func() time.Time { return testNow })})

	for _, days := range []int{30, 106752, 200000} {
		recent, err := svc.RecentPreferences(context.Background(), "u", days, 5)
		require.NoError(t, err)
		assert.Equal(t, []domain.TagWeight{{Tag: "a", Weight: 1}}, recent, "days=%d", days)
	}
}

func TestService_StoreErrors(t *testing.T) {
	store := &mocks.StoreMock{
		GetPreferencesFunc: func(ctx context.Context, userID string) (*domain.PreferenceRecord, error) {
			return nil, errors.New("db down")
		},
		UpdatePreferencesFunc: func(ctx context.Context, userID string, fn func([]byte) ([]byte, error)) error {
			return errors.New("db down")
		},
	}
	svc := NewService(ServiceConfig{Store: store})

	err := svc.OnCartAdd(context.Background(), "u", []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update preferences of u: db down")

	_, err = svc.TopPreferences(context.Background(), "u", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get preferences of u: db down")
}

func TestService_CorruptedRecord(t *testing.T) {
	store, data := memStore()
	data["u"] = []byte(`"not an object"`)
	svc := NewService(ServiceConfig{Store: store})

	err := svc.OnCartAdd(context.Background(), "u", []string{"a"})
	require.Error(t, err)
	assert.Equal(t, `"not an object"`, string(data["u"]), "record left untouched")

	_, err = svc.TopPreferences(context.Background(), "u", 5)
	require.Error(t, err)
}

func TestService_RecentAndDetails(t *testing.T) {
	store, data := memStore()
	data["u"] = []byte(`{
		"old": {"weight": 4, "last_updated": "2025-04-02T13:23:00Z"},
		"fresh": {"weight": 2, "last_updated": "2025-05-07T13:23:00Z"},
		"legacy": 7
	}`)
	svc := NewService(ServiceConfig{Store: store, Clock: ClockFunc(func() time.Time { return testNow })})
	ctx := context.Background()

	recent, err := svc.RecentPreferences(ctx, "u", 30, 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.TagWeight{{Tag: "fresh", Weight: 2}}, recent)

	top, err := svc.TopPreferences(ctx, "u", 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.TagWeight{{Tag: "legacy", Weight: 7}, {Tag: "old", Weight: 4}, {Tag: "fresh", Weight: 2}}, top)

	details, err := svc.TagDetails(ctx, "u", "fresh")
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, 5, details.DaysSinceUpdated)

	details, err = svc.TagDetails(ctx, "u", "legacy")
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestService_NoRecord(t *testing.T) {
	store, _ := memStore()
	svc := NewService(ServiceConfig{Store: store})

	top, err := svc.TopPreferences(context.Background(), "nobody", 5)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestService_ConcurrentUpdatesSameUser(t *testing.T) {
	store, _ := memStore()
	svc := NewService(ServiceConfig{Store: store})
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.OnOrderPaid(ctx, "u", []string{"a"}))
		}()
	}
	wg.Wait()

	want := 0.0
	for range workers {
		want = (want + 1.0) * 0.9
	}
	top, err := svc.TopPreferences(ctx, "u", 1)
	require.NoError(t, err)
	assert.InDelta(t, want, top[0].Weight, 1e-9, "no update lost")
	assert.Equal(t, 0, svc.locks.size())
}
