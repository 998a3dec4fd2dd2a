package models

import "encoding/json"

// StockLevel represents one ingredient row of the inventory
type StockLevel struct {
	Name    string `json:"name"`
	Grams   int64  `json:"grams"`
	Display string `json:"display,omitempty"`
}

// AddStockRequest represents an incoming add-stock request
// Amount stays a raw JSON number so fractional input is reported as an
// invalid amount rather than a malformed body
type AddStockRequest struct {
	Ingredient string      `json:"ingredient"`
	Amount     json.Number `json:"amount"`
}
