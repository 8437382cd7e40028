package main

import (
	"time"

	"go.uber.org/zap/zapcore"
)

var _ zapcore.Clock = (*Clock)(nil) // ensure Clock can drive the logger timestamps.

// Clock provides the current time in a fixed timezone.
type Clock struct {
	tz *time.Location
}

// NewClock returns a ready to use Clock with timezone sets
// to UTC in production environment and Local in dev env.
func NewClock(isProd bool) *Clock {
	if isProd {
		return &Clock{time.UTC}
	}
	return &Clock{time.Local}
}

// Now provides current clock time.
func (ck *Clock) Now() time.Time {
	return time.Now().In(ck.tz)
}

// NewTicker completes zapcore.Clock, which zap.WithClock requires.
func (ck *Clock) NewTicker(d time.Duration) *time.Ticker {
	return time.NewTicker(d)
}
