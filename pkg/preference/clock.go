package preference

import "time"

// Clock provides the current time for timestamps and recency filters
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

// Now returns the time reported by the function
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns wall-clock time in UTC
type SystemClock struct{}

// Now returns the current UTC time
func (SystemClock) Now() time.Time { return time.Now().UTC() }
