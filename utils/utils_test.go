package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(42, 2, 10)
	assert.Equal(t, 42, p.TotalItems)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 5, p.TotalPages)

	// Defaults kick in for non-positive inputs.
	p = CreatePagination(3, 0, 0)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 1, p.TotalPages)

	p = CreatePagination(0, 1, 10)
	assert.Equal(t, 0, p.TotalPages)
}

func TestCalcularSena(t *testing.T) {
	tests := []struct {
		precio float64
		want   float64
	}{
		{28000, 9800},
		{42000, 14700},
		{85000, 29750},
		{0, 0},
		{101, 35}, // 35.35 rounds down
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalcularSena(tt.precio), "precio %v", tt.precio)
	}
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("ARS"))
	assert.Equal(t, "US$", CurrencySymbol("USD"))
	assert.Equal(t, "MX$", CurrencySymbol("MXN"))
	assert.Equal(t, "COL$", CurrencySymbol("COP"))
	assert.Equal(t, "$", CurrencySymbol("EUR"), "unknown codes fall back to $")
}

func TestValidateAndNormalizeRole(t *testing.T) {
	role, ok := ValidateAndNormalizeRole("  Gerente ")
	assert.True(t, ok)
	assert.Equal(t, "gerente", role)

	_, ok = ValidateAndNormalizeRole("dueño")
	assert.False(t, ok)
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("operador"))
	assert.True(t, IsValidRole("SUPERADMIN"))
	assert.False(t, IsValidRole("admin"))
	assert.False(t, IsValidRole(""))
}

func TestRoleOutranks(t *testing.T) {
	assert.True(t, RoleOutranks("superadmin", "gerente"))
	assert.True(t, RoleOutranks("gerente", "operador"))
	assert.False(t, RoleOutranks("gerente", "gerente"), "equal rank does not outrank")
	assert.False(t, RoleOutranks("operador", "gerente"))
	assert.False(t, RoleOutranks("desconocido", "operador"))
}
