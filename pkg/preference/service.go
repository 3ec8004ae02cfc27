package preference

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/shopscope/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store persists serialized preference sets keyed by user id
type Store interface {
	// GetPreferences returns the stored record, nil if the user has none
	GetPreferences(ctx context.Context, userID string) (*domain.PreferenceRecord, error)
	// UpdatePreferences runs fn on the stored data (nil if absent) and saves its result in one transaction
	UpdatePreferences(ctx context.Context, userID string, fn func(current []byte) ([]byte, error)) error
}

// Increments defines weight increments per activity type
type Increments struct {
	Cart   float64
	Search float64
	Order  float64
}

// DefaultIncrements returns cart 0.5, search 0.3 and order 1.0
func DefaultIncrements() Increments {
	return Increments{Cart: CartIncrement, Search: SearchIncrement, Order: OrderIncrement}
}

// ErrNoUser is returned for an empty user id
var ErrNoUser = errors.New("empty user id")

// errNothingToUpdate aborts the store transaction of a tagless update for a user without a record
var errNothingToUpdate = errors.New("nothing to update")

// Service applies activity events to users' preference sets and answers preference queries.
// Updates of the same user are serialized, every update is a single load-modify-save unit.
type Service struct {
	store      Store
	clock      Clock
	policy     Policy
	increments Increments
	locks      *userLocks
}

// ServiceConfig holds configuration for Service
type ServiceConfig struct {
	Store      Store
	Clock      Clock      // defaults to SystemClock
	Policy     Policy     // defaults to DefaultPolicy
	Increments Increments // defaults to DefaultIncrements
}

// NewService creates a preference service, zero config values are replaced by defaults
func NewService(cfg ServiceConfig) *Service {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Policy == (Policy{}) {
		cfg.Policy = DefaultPolicy()
	}
	if cfg.Increments == (Increments{}) {
		cfg.Increments = DefaultIncrements()
	}
	return &Service{
		store:      cfg.Store,
		clock:      cfg.Clock,
		policy:     cfg.Policy,
		increments: cfg.Increments,
		locks:      newUserLocks(),
	}
}

// OnCartAdd records that the user added a product with the given tags to the cart
func (s *Service) OnCartAdd(ctx context.Context, userID string, productTags []string) error {
	return s.Update(ctx, userID, productTags, s.increments.Cart)
}

// OnSearch records the user's search keywords
func (s *Service) OnSearch(ctx context.Context, userID string, keywords []string) error {
	return s.Update(ctx, userID, keywords, s.increments.Search)
}

// OnOrderPaid records tags of all products of an order which became paid
func (s *Service) OnOrderPaid(ctx context.Context, userID string, orderTags []string) error {
	return s.Update(ctx, userID, orderTags, s.increments.Order)
}

// Update applies increment to tags of the user, then decays and limits the set and saves it.
// The set is created on the first update of a user. An update without tags still decays
// an existing set.
func (s *Service) Update(ctx context.Context, userID string, tags []string, increment float64) error {
	if userID == "" {
		return ErrNoUser
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	err := s.store.UpdatePreferences(ctx, userID, func(current []byte) ([]byte, error) {
		if len(tags) == 0 && len(bytes.TrimSpace(current)) == 0 {
			return nil, errNothingToUpdate
		}
		set, err := Decode(current, s.policy)
		if err != nil {
			return nil, err
		}
		set.Update(tags, increment, s.clock.Now())
		return Encode(set)
	})
	if errors.Is(err, errNothingToUpdate) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("update preferences of %s: %w", userID, err)
	}
	lgr.Printf("[DEBUG] preferences of %s updated with %d tags, increment %.2f", userID, len(tags), increment)
	return nil
}

// TopPreferences returns up to n highest-weight tags of the user, empty if the user has no preferences
func (s *Service) TopPreferences(ctx context.Context, userID string, n int) ([]domain.TagWeight, error) {
	set, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return set.Top(n), nil
}

// RecentPreferences returns up to n highest-weight tags updated within the last days
func (s *Service) RecentPreferences(ctx context.Context, userID string, days, n int) ([]domain.TagWeight, error) {
	set, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return set.Recent(s.clock.Now(), days, n), nil
}

// TagDetails returns details of a single tag, nil if the tag is unknown or has no recency data
func (s *Service) TagDetails(ctx context.Context, userID, tag string) (*domain.TagDetails, error) {
	set, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	details, ok := set.Details(tag, s.clock.Now())
	if !ok {
		return nil, nil
	}
	return &details, nil
}

func (s *Service) load(ctx context.Context, userID string) (*Set, error) {
	if userID == "" {
		return nil, ErrNoUser
	}
	rec, err := s.store.GetPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get preferences of %s: %w", userID, err)
	}
	if rec == nil {
		return NewSet(s.policy), nil
	}
	set, err := Decode(rec.Tags, s.policy)
	if err != nil {
		return nil, fmt.Errorf("load preferences of %s: %w", userID, err)
	}
	return set, nil
}
