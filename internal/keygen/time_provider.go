package keygen

import "time"

// TimeProvider abstracts the clock used to stamp build salts.
type TimeProvider interface {
	Now() time.Time
}

// DefaultTimeProvider uses the standard library clock.
type DefaultTimeProvider struct{}

// Now returns the current time.
func (DefaultTimeProvider) Now() time.Time { return time.Now() }

// BuildSalt returns the default Build Salt: the current UTC time in RFC 3339
// form. A nil provider uses the wall clock.
func BuildSalt(tp TimeProvider) string {
	if tp == nil {
		tp = DefaultTimeProvider{}
	}
	return tp.Now().UTC().Format(time.RFC3339)
}
