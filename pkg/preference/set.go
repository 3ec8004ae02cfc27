// Package preference implements per-user tag preferences learned from implicit feedback.
// Each activity event adds a weight increment to the event's tags, then the whole set decays once
// and is trimmed to a fixed capacity, so stale interests fade out as new activity arrives.
package preference

import (
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/umputun/shopscope/pkg/domain"
)

// activity increments
const (
	CartIncrement   = 0.5
	SearchIncrement = 0.3
	OrderIncrement  = 1.0
)

// Policy defines decay and capacity rules of a preference set
type Policy struct {
	MaxTags     int     // maximum number of tags kept per user
	MinWeight   float64 // tags decayed below this weight are evicted
	DecayFactor float64 // multiplier applied once per update
}

// DefaultPolicy returns the standard policy: 15 tags, 0.1 eviction bound, 10% decay per update
func DefaultPolicy() Policy {
	return Policy{MaxTags: 15, MinWeight: 0.1, DecayFactor: 0.9}
}

// Entry is the weight record of a single tag
type Entry struct {
	Weight  float64
	Updated time.Time // zero if the record has no usable timestamp
	Stamp   string    // stored timestamp text, kept as-is when it can't be parsed
	Legacy  bool      // loaded from a bare-number record, not stamped yet

	rawStamp json.RawMessage // stored non-string timestamp, written back unchanged
}

// hasTime reports whether the entry carries usable recency data
func (e *Entry) hasTime() bool {
	return !e.Updated.IsZero()
}

// Set is a user's tag preference set. It is not safe for concurrent use,
// callers serialize access per user (see Service).
type Set struct {
	policy  Policy
	entries map[string]*Entry
}

// NewSet makes an empty preference set with the given policy
func NewSet(policy Policy) *Set {
	return &Set{policy: policy, entries: make(map[string]*Entry)}
}

// Len returns the number of tags in the set
func (s *Set) Len() int {
	return len(s.entries)
}

// Entry returns the record of a tag, nil if absent
func (s *Set) Entry(tag string) *Entry {
	return s.entries[tag]
}

// Weight returns the weight of a tag, zero if absent
func (s *Set) Weight(tag string) float64 {
	if e, ok := s.entries[tag]; ok {
		return e.Weight
	}
	return 0
}

// Update adds increment to every tag (once per occurrence), stamps touched tags with now,
// then applies decay and capacity limit in this order.
func (s *Set) Update(tags []string, increment float64, now time.Time) {
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		e, ok := s.entries[tag]
		if !ok {
			e = &Entry{}
			s.entries[tag] = e
		}
		e.Weight += increment
		e.Updated = now
		e.Stamp = ""
		e.rawStamp = nil
		e.Legacy = false
	}
	s.Decay(now)
	s.Limit()
}

// AddCartActivity records a cart add of a product with the given tags
func (s *Set) AddCartActivity(tags []string, now time.Time) {
	s.Update(tags, CartIncrement, now)
}

// AddSearchActivity records a search with the given keywords
func (s *Set) AddSearchActivity(keywords []string, now time.Time) {
	s.Update(keywords, SearchIncrement, now)
}

// AddOrderActivity records a paid order containing products with the given tags
func (s *Set) AddOrderActivity(tags []string, now time.Time) {
	s.Update(tags, OrderIncrement, now)
}

// Decay multiplies every weight by the decay factor and evicts tags falling below the minimal weight.
// Legacy entries are stamped with now on their first decay.
func (s *Set) Decay(now time.Time) {
	for tag, e := range s.entries {
		e.Weight *= s.policy.DecayFactor
		if e.Weight < s.policy.MinWeight {
			delete(s.entries, tag)
			continue
		}
		if e.Legacy {
			e.Legacy = false
			e.Updated = now
			e.Stamp = ""
		}
	}
}

// Limit drops the lowest-weight tags when the set holds more than MaxTags
func (s *Set) Limit() {
	if s.policy.MaxTags <= 0 || len(s.entries) <= s.policy.MaxTags {
		return
	}
	for _, tw := range s.sorted(nil)[s.policy.MaxTags:] {
		delete(s.entries, tw.Tag)
	}
}

// Top returns up to n tags ordered by weight descending, ties broken by tag
func (s *Set) Top(n int) []domain.TagWeight {
	return head(s.sorted(nil), n)
}

// Recent returns up to n tags updated strictly after now minus days, ordered like Top.
// Tags without usable timestamps are skipped.
func (s *Set) Recent(now time.Time, days, n int) []domain.TagWeight {
	cutoff := now.AddDate(0, 0, -days)
	return head(s.sorted(func(e *Entry) bool { return e.hasTime() && e.Updated.After(cutoff) }), n)
}

// Details returns the full record of a tag, false if the tag is absent or has no usable timestamp
func (s *Set) Details(tag string, now time.Time) (domain.TagDetails, bool) {
	e, ok := s.entries[tag]
	if !ok || !e.hasTime() {
		return domain.TagDetails{}, false
	}
	return domain.TagDetails{
		Tag:              tag,
		Weight:           e.Weight,
		LastUpdated:      e.Updated,
		DaysSinceUpdated: int(math.Floor(now.Sub(e.Updated).Hours() / 24)),
	}, true
}

// sorted returns entries accepted by filter (all if nil), weight descending then tag ascending
func (s *Set) sorted(filter func(e *Entry) bool) []domain.TagWeight {
	res := make([]domain.TagWeight, 0, len(s.entries))
	for tag, e := range s.entries {
		if filter != nil && !filter(e) {
			continue
		}
		res = append(res, domain.TagWeight{Tag: tag, Weight: e.Weight})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Weight != res[j].Weight {
			return res[i].Weight > res[j].Weight
		}
		return res[i].Tag < res[j].Tag
	})
	return res
}

func head(tws []domain.TagWeight, n int) []domain.TagWeight {
	if n < 0 {
		n = 0
	}
	if len(tws) > n {
		tws = tws[:n]
	}
	return tws
}
