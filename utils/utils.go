package utils

import "math"

// Pagination represents the pagination details.
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

// CreatePagination creates a Pagination object.
func CreatePagination(totalItems, page, pageSize int) *Pagination {
	if pageSize <= 0 {
		pageSize = 10 // Default page size
	}
	if page <= 0 {
		page = 1 // Default page
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))

	return &Pagination{
		TotalItems:  totalItems,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
	}
}

// CalcularSena returns the deposit charged when booking: 35% of the service
// price, rounded to the nearest peso.
func CalcularSena(precio float64) float64 {
	return math.Round(precio * 0.35)
}

// CurrencySymbol maps a currency code to its display symbol.
func CurrencySymbol(code string) string {
	symbols := map[string]string{
		"ARS": "$",
		"USD": "US$",
		"MXN": "MX$",
		"COP": "COL$",
	}
	if s, ok := symbols[code]; ok {
		return s
	}
	return "$"
}
