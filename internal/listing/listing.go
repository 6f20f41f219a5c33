// Package listing implements the in-memory filter pipeline shared by every
// entity list: category filters first, then a case-insensitive substring
// search across the entity's display fields. Statistics are always computed
// over the full loaded set, never the filtered subset.
package listing

import "strings"

// FilterAll is the sentinel meaning a category filter is not active
const FilterAll = "all"

// Predicate is a single category filter over one row
type Predicate[T any] func(T) bool

// Apply narrows rows by the conjunction of the given predicates,
// preserving the original order. Predicates compose by logical AND.
func Apply[T any](rows []T, preds ...Predicate[T]) []T {
	filtered := rows
	for _, pred := range preds {
		next := make([]T, 0, len(filtered))
		for _, row := range filtered {
			if pred(row) {
				next = append(next, row)
			}
		}
		filtered = next
	}
	return filtered
}

// MatchesSearch reports whether any of the display fields contains the
// search term, case-insensitively. A blank term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Search applies the free-text filter to rows, extracting the searchable
// display fields of each row via fields. A blank term returns rows unchanged.
func Search[T any](rows []T, term string, fields func(T) []string) []T {
	if strings.TrimSpace(term) == "" {
		return rows
	}
	return Apply(rows, func(row T) bool {
		return MatchesSearch(term, fields(row)...)
	})
}

// Stock buckets; boundaries are exact at 0 and 10
const (
	StockInStock    = "in_stock"
	StockLowStock   = "low_stock"
	StockOutOfStock = "out_of_stock"
)

// StockStatus buckets a stock quantity
func StockStatus(qty int) string {
	switch {
	case qty == 0:
		return StockOutOfStock
	case qty <= 10:
		return StockLowStock
	default:
		return StockInStock
	}
}

// MatchesStock reports whether a quantity falls in the requested bucket
func MatchesStock(qty int, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	return StockStatus(qty) == filter
}

// Cost bands for the service catalog
const (
	CostBandLow    = "low"    // < 100
	CostBandMedium = "medium" // 100 <= cost < 500
	CostBandHigh   = "high"   // >= 500
)

// CostBand buckets a service cost
func CostBand(cost float64) string {
	switch {
	case cost < 100:
		return CostBandLow
	case cost < 500:
		return CostBandMedium
	default:
		return CostBandHigh
	}
}

// MatchesCostBand reports whether a cost falls in the requested band
func MatchesCostBand(cost float64, band string) bool {
	if band == "" || band == FilterAll {
		return true
	}
	return CostBand(cost) == band
}

// ProfitMargin computes (sell-buy)/buy, defined as 0 when buy is 0
func ProfitMargin(buy, sell float64) float64 {
	if buy == 0 {
		return 0
	}
	return (sell - buy) / buy
}
