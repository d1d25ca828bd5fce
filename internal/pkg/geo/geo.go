// Package geo captures clock-in locations on a best-effort basis.
package geo

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// DefaultCaptureTimeout bounds how long a status update may wait for a fix.
const DefaultCaptureTimeout = 5 * time.Second

var ErrUnavailable = errors.New("geolocation unavailable")

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinates are within WGS84 bounds.
func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// Locator resolves the current position of the device recording attendance.
type Locator interface {
	Locate(ctx context.Context) (Location, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (Location, error)

func (f LocatorFunc) Locate(ctx context.Context) (Location, error) {
	return f(ctx)
}

// Fixed returns a Locator that always reports loc.
func Fixed(loc Location) Locator {
	return LocatorFunc(func(context.Context) (Location, error) {
		return loc, nil
	})
}

// Unsupported is the Locator used when the caller cannot provide a position.
var Unsupported Locator = LocatorFunc(func(context.Context) (Location, error) {
	return Location{}, ErrUnavailable
})

// Capture asks locator for a position and gives up after timeout. Any
// failure, including denial and timeout, yields nil.
func Capture(ctx context.Context, locator Locator, timeout time.Duration) *Location {
	if locator == nil {
		return nil
	}
	if timeout <= 0 {
		timeout = DefaultCaptureTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		loc Location
		err error
	}
	ch := make(chan result, 1)
	go func() {
		loc, err := locator.Locate(ctx)
		ch <- result{loc, err}
	}()

	select {
	case <-ctx.Done():
		slog.Debug("geolocation capture timed out", "timeout", timeout)
		return nil
	case r := <-ch:
		if r.err != nil {
			slog.Debug("geolocation capture failed", "error", r.err)
			return nil
		}
		if !r.loc.Valid() {
			return nil
		}
		return &r.loc
	}
}
