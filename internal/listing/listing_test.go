package listing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyComposesByAND(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	even := func(n int) bool { return n%2 == 0 }
	big := func(n int) bool { return n > 4 }

	filtered := Apply(rows, even, big)
	require.Equal(t, []int{6, 8, 10}, filtered)

	// Order of predicates does not change the result
	swapped := Apply(rows, big, even)
	require.Equal(t, filtered, swapped)
}

func TestApplyIsIdempotent(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}
	even := func(n int) bool { return n%2 == 0 }

	once := Apply(rows, even)
	twice := Apply(once, even)
	require.Equal(t, once, twice)
}

func TestApplyPreservesOrder(t *testing.T) {
	rows := []string{"delta", "alpha", "echo", "bravo"}
	filtered := Apply(rows, func(s string) bool { return s != "alpha" })
	require.Equal(t, []string{"delta", "echo", "bravo"}, filtered)
}

func TestApplyWithNoPredicatesReturnsAllRows(t *testing.T) {
	rows := []int{3, 1, 2}
	require.Equal(t, rows, Apply(rows))
}

func TestMatchesSearch(t *testing.T) {
	require.True(t, MatchesSearch("acme", "Acme Supplies", "0712345678"))
	require.True(t, MatchesSearch("ACME", "acme supplies"))
	require.True(t, MatchesSearch("  acme  ", "Acme Supplies"))
	require.False(t, MatchesSearch("acme", "Bolt Traders", "0798765432"))

	// Blank term matches everything
	require.True(t, MatchesSearch("", "anything"))
	require.True(t, MatchesSearch("   ", "anything"))
}

func TestSearchBlankTermReturnsRowsUnchanged(t *testing.T) {
	rows := []string{"one", "two"}
	result := Search(rows, "  ", func(s string) []string { return []string{s} })
	require.Equal(t, rows, result)
}

func TestStockStatusBoundaries(t *testing.T) {
	require.Equal(t, StockOutOfStock, StockStatus(0))
	require.Equal(t, StockLowStock, StockStatus(1))
	require.Equal(t, StockLowStock, StockStatus(10))
	require.Equal(t, StockInStock, StockStatus(11))
}

func TestMatchesStock(t *testing.T) {
	require.True(t, MatchesStock(0, StockOutOfStock))
	require.False(t, MatchesStock(1, StockOutOfStock))
	require.True(t, MatchesStock(5, FilterAll))
	require.True(t, MatchesStock(5, ""))
}

func TestCostBandBoundaries(t *testing.T) {
	require.Equal(t, CostBandLow, CostBand(0))
	require.Equal(t, CostBandLow, CostBand(99.99))
	require.Equal(t, CostBandMedium, CostBand(100))
	require.Equal(t, CostBandMedium, CostBand(499.99))
	require.Equal(t, CostBandHigh, CostBand(500))
	require.Equal(t, CostBandHigh, CostBand(10000))
}

func TestProfitMargin(t *testing.T) {
	require.Equal(t, 0.5, ProfitMargin(100, 150))
	require.Equal(t, -0.25, ProfitMargin(100, 75))

	// Zero buy price is defined as zero margin, not a division error
	require.Equal(t, float64(0), ProfitMargin(0, 150))
}
