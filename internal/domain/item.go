package domain

import (
	"math"
	"time"
)

type Item struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	MaxQty           float64   `json:"max_qty"`
	CurrentQty       float64   `json:"current_qty"`
	ThresholdPercent float64   `json:"threshold_percent"`
	LastUpdated      time.Time `json:"last_updated"`
}

// PercentLeft returns the remaining stock as a percentage of capacity,
// rounded to one decimal place. Zero capacity reads as 0% by convention.
func (i Item) PercentLeft() float64 {
	if i.MaxQty == 0 {
		return 0
	}

	percent := i.CurrentQty / i.MaxQty * 100
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return 0
	}

	return math.Round(percent*10) / 10
}

// IsLow reports whether the item is at or below its low-stock threshold.
// Items with zero or negative capacity are never low; a NaN ratio compares
// false, so numeric faults resolve to "not low" rather than an error.
func (i Item) IsLow() bool {
	if i.MaxQty <= 0 {
		return false
	}

	return i.CurrentQty/i.MaxQty <= i.ThresholdPercent/100
}

// SuggestedQty is the amount needed to top the item back up to capacity,
// never negative.
func (i Item) SuggestedQty() float64 {
	return math.Max(0, i.MaxQty-i.CurrentQty)
}

// NewItem carries the creation payload. Nil fields take the stock defaults
// (category "Other", quantities 0, threshold 20).
type NewItem struct {
	Name             string
	Category         *string
	MaxQty           *float64
	CurrentQty       *float64
	ThresholdPercent *float64
}

// ItemPatch is a partial update. Only non-nil fields are applied; an empty
// patch still refreshes the item's LastUpdated timestamp.
type ItemPatch struct {
	Name             *string
	Category         *string
	MaxQty           *float64
	CurrentQty       *float64
	ThresholdPercent *float64
}
