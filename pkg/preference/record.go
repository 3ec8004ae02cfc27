package preference

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// record is the stored form of a tag entry
type record struct {
	Weight      float64         `json:"weight"`
	LastUpdated json.RawMessage `json:"last_updated,omitempty"`
}

// rawRecord accepts both the structured and the legacy shapes of a stored entry
type rawRecord struct {
	Weight      json.RawMessage `json:"weight"`
	LastUpdated json.RawMessage `json:"last_updated"`
}

// timestamp layouts accepted on read, first one is used on write
var stampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Decode builds a preference set from its stored JSON form. Empty data makes an empty set.
// Bare-number entries are upgraded to structured entries keeping their weight, unparseable
// timestamps are kept verbatim and treated as missing recency data.
func Decode(data []byte, policy Policy) (*Set, error) {
	s := NewSet(policy)
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return s, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}

	for tag, val := range raw {
		if tag == "" {
			continue
		}
		s.entries[tag] = decodeEntry(val)
	}
	return s, nil
}

// Encode returns the stored JSON form of the set
func Encode(s *Set) ([]byte, error) {
	recs := make(map[string]record, len(s.entries))
	for tag, e := range s.entries {
		rec := record{Weight: e.Weight}
		switch {
		case e.hasTime():
			rec.LastUpdated = quote(e.Updated.Format(stampLayouts[0]))
		case len(e.rawStamp) > 0:
			rec.LastUpdated = e.rawStamp
		case e.Stamp != "":
			rec.LastUpdated = quote(e.Stamp)
		}
		recs[tag] = rec
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}
	return data, nil
}

func quote(s string) json.RawMessage {
	data, _ := json.Marshal(s) //nolint:errchkjson // marshaling a string can't fail
	return data
}

func decodeEntry(val json.RawMessage) *Entry {
	val = bytes.TrimSpace(val)
	if len(val) == 0 || val[0] != '{' {
		return &Entry{Weight: legacyWeight(val), Legacy: true}
	}

	var rr rawRecord
	if err := json.Unmarshal(val, &rr); err != nil {
		return &Entry{Legacy: true}
	}
	e := &Entry{Weight: legacyWeight(rr.Weight)}
	if len(rr.LastUpdated) == 0 {
		return e
	}
	var stamp string
	if err := json.Unmarshal(rr.LastUpdated, &stamp); err != nil {
		// not a string, keep the raw value
		e.Stamp = string(rr.LastUpdated)
		e.rawStamp = append(json.RawMessage{}, rr.LastUpdated...)
		return e
	}
	if ts, ok := parseStamp(stamp); ok {
		e.Updated = ts
		return e
	}
	e.Stamp = stamp
	return e
}

// legacyWeight converts a bare weight value to float. JSON numbers and strings made only of
// digits and dots are accepted, anything else (negative, boolean, text) counts as zero.
func legacyWeight(val json.RawMessage) float64 {
	if len(val) == 0 {
		return 0
	}
	text := string(val)
	if val[0] == '"' {
		if err := json.Unmarshal(val, &text); err != nil {
			return 0
		}
		if text == "" || strings.Trim(text, "0123456789.") != "" {
			return 0
		}
	}
	w, err := strconv.ParseFloat(text, 64)
	if err != nil || w < 0 {
		return 0
	}
	return w
}

func parseStamp(stamp string) (time.Time, bool) {
	stamp = strings.TrimSpace(stamp)
	for _, layout := range stampLayouts {
		if ts, err := time.Parse(layout, stamp); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
