package validator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("admin@gestoria.example"))
	assert.True(t, IsValidEmail("first.last+tag@sub.domain.es"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@nouser.com"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0198c8b2-4f0a-7cc3-9f6e-3b2a1d0e9f88"))
	assert.True(t, IsValidUUID("123E4567-E89B-42D3-A456-426614174000"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("123e4567e89b42d3a456426614174000"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-06-15")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("15/06/2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestCoordinateValidation(t *testing.T) {
	assert.True(t, IsValidLatitude(39.5696))
	assert.True(t, IsValidLatitude(-90))
	assert.False(t, IsValidLatitude(90.1))
	assert.False(t, IsValidLatitude(math.NaN()))

	assert.True(t, IsValidLongitude(2.6502))
	assert.True(t, IsValidLongitude(-180))
	assert.False(t, IsValidLongitude(181))
	assert.False(t, IsValidLongitude(math.Inf(1)))
}

func TestIsValidAmount(t *testing.T) {
	assert.True(t, IsValidAmount(0.01))
	assert.True(t, IsValidAmount(150))
	assert.False(t, IsValidAmount(0))
	assert.False(t, IsValidAmount(-5))
	assert.False(t, IsValidAmount(math.NaN()))
}
