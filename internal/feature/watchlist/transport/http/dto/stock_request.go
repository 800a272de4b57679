// Package dto defines data transfer objects for the watchlist feature's HTTP transport layer.
package dto

// AddStockReq represents the request body for the POST /stock endpoint.
// It uses Gin's binding tags for validation (symbol is required).
type AddStockReq struct {
	Symbol string `json:"symbol" binding:"required"`
}
