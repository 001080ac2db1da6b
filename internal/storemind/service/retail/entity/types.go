// Package entity holds the retail domain data model.
package entity

import (
	"time"
)

// SalesRecord is one line of sales history.
type SalesRecord struct {
	ID       string    `json:"id"`
	Store    string    `json:"store"`
	Product  string    `json:"product"`
	Quantity int       `json:"quantity"`
	Revenue  float64   `json:"revenue"`
	Date     time.Time `json:"date"`
}

// InventoryItem is the current stock position of one SKU at one store.
type InventoryItem struct {
	SKU          string `json:"sku"`
	Product      string `json:"product"`
	Store        string `json:"store"`
	OnHand       int    `json:"on_hand"`
	ReorderPoint int    `json:"reorder_point"`
}

// LowStock reports whether the item is at or below its reorder point.
func (i InventoryItem) LowStock() bool {
	return i.OnHand <= i.ReorderPoint
}

// ForecastPoint is one predicted demand value.
type ForecastPoint struct {
	Store          string    `json:"store"`
	Product        string    `json:"product"`
	Date           time.Time `json:"date"`
	PredictedUnits float64   `json:"predicted_units"`
}
