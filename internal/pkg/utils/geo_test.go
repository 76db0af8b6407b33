package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceInMeters_IdenticalPoints(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, DistanceInMeters(39.5696, 2.6502, 39.5696, 2.6502))
	assert.Equal(t, 0.0, DistanceInMeters(0, 0, 0, 0))
}

func TestDistanceInMeters_OneDegreeLatitude(t *testing.T) {
	t.Parallel()

	// One degree of latitude is roughly 111 km anywhere on the globe.
	d := DistanceInMeters(40.0, 2.0, 41.0, 2.0)
	assert.InDelta(t, 111000, d, 1200)
}

func TestDistanceInMeters_Symmetry(t *testing.T) {
	t.Parallel()

	a := DistanceInMeters(39.5696, 2.6502, 40.4168, -3.7038)
	b := DistanceInMeters(40.4168, -3.7038, 39.5696, 2.6502)
	assert.InDelta(t, a, b, 1e-6)
	assert.Greater(t, a, 0.0)
}

func TestDistanceInMeters_OfficeGeofenceScenario(t *testing.T) {
	t.Parallel()

	// Palma office vs. a clock-in a few kilometers north: well outside a
	// 100 m radius.
	d := DistanceInMeters(39.5696, 2.6502, 39.60, 2.65)
	assert.InDelta(t, 3400, d, 150)
	assert.Greater(t, d, 100.0)
}
