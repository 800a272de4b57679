// Package domain defines domain-level errors for the watchlist feature.
package domain

import "errors"

// Domain errors for watchlist operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrEmptySymbol indicates that a stock was submitted without a ticker symbol.
	// This is returned during AddStock and surfaces as a client error.
	ErrEmptySymbol = errors.New("symbol must not be empty")

	// ErrStockNotFound indicates that no stock row exists for the given id.
	// The enrichment worker treats this as "nothing to do" and aborts silently.
	ErrStockNotFound = errors.New("stock not found")

	// ErrIncompleteStatistics indicates that the provider response was missing
	// at least one of the six requested statistic fields. The whole bundle is
	// rejected; the stored row keeps its previous values.
	ErrIncompleteStatistics = errors.New("provider returned an incomplete statistics bundle")
)
