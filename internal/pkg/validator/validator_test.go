package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2025-01-15"))
	assert.True(t, IsValidDate("2024-02-29"))
	assert.False(t, IsValidDate("2025-02-30"))
	assert.False(t, IsValidDate("15-01-2025"))
	assert.False(t, IsValidDate("2025-1-5"))
	assert.False(t, IsValidDate(""))
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-01"))
	assert.True(t, IsValidMonth("2025-12"))
	assert.False(t, IsValidMonth("2025-13"))
	assert.False(t, IsValidMonth("2025-01-15"))
	assert.False(t, IsValidMonth("202501"))
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("detergente-multiuso"))
	assert.True(t, IsValidSlug("sgrassatore_cucina"))
	assert.True(t, IsValidSlug("prodotto123"))
	assert.False(t, IsValidSlug("Detergente"))
	assert.False(t, IsValidSlug("con spazi"))
	assert.False(t, IsValidSlug("../../etc/passwd"))
	assert.False(t, IsValidSlug(""))
}

func TestSanitizeSlug(t *testing.T) {
	assert.Equal(t, "detergente-multiuso", SanitizeSlug("Detergente-Multiuso"))
	assert.Equal(t, "etcpasswd", SanitizeSlug("../../etc/passwd"))
	assert.Equal(t, "prodotto_1", SanitizeSlug("Prodotto _1!"))
	assert.Equal(t, "", SanitizeSlug("%$#@"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "date", Message: "invalid date"},
	}

	assert.Equal(t, "name: name is required; date: invalid date", errs.Error())

	m := errs.ToMap()
	assert.Equal(t, "name is required", m["name"])
	assert.Equal(t, "invalid date", m["date"])
}
