package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_Fixed(t *testing.T) {
	loc := Capture(context.Background(), Fixed(Location{Lat: 24.7136, Lng: 46.6753}), time.Second)
	require.NotNil(t, loc)
	assert.Equal(t, 24.7136, loc.Lat)
}

func TestCapture_DeniedYieldsNil(t *testing.T) {
	denied := LocatorFunc(func(context.Context) (Location, error) {
		return Location{}, errors.New("permission denied")
	})
	assert.Nil(t, Capture(context.Background(), denied, time.Second))
	assert.Nil(t, Capture(context.Background(), Unsupported, time.Second))
	assert.Nil(t, Capture(context.Background(), nil, time.Second))
}

func TestCapture_TimeoutYieldsNil(t *testing.T) {
	slow := LocatorFunc(func(ctx context.Context) (Location, error) {
		<-ctx.Done()
		return Location{}, ctx.Err()
	})

	start := time.Now()
	loc := Capture(context.Background(), slow, 20*time.Millisecond)
	assert.Nil(t, loc)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCapture_InvalidCoordinatesYieldNil(t *testing.T) {
	assert.Nil(t, Capture(context.Background(), Fixed(Location{Lat: 120, Lng: 0}), time.Second))
}

func TestDistanceMeters(t *testing.T) {
	riyadh := Location{Lat: 24.7136, Lng: 46.6753}
	assert.InDelta(t, 0, DistanceMeters(riyadh, riyadh), 1e-6)

	// one degree of latitude is roughly 111 km
	north := Location{Lat: 25.7136, Lng: 46.6753}
	assert.InDelta(t, 111195, DistanceMeters(riyadh, north), 100)
}
