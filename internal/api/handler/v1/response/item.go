package response

import (
	"time"

	"github.com/pantryops/grocery-api/internal/domain"
)

type Item struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	MaxQty           float64 `json:"max_qty"`
	CurrentQty       float64 `json:"current_qty"`
	ThresholdPercent float64 `json:"threshold_percent"`
	PercentLeft      float64 `json:"percent_left"`
	Low              bool    `json:"low"`
	LastUpdated      string  `json:"last_updated"`
}

func NewItem(item domain.Item) Item {
	return Item{
		ID:               item.ID,
		Name:             item.Name,
		Category:         item.Category,
		MaxQty:           item.MaxQty,
		CurrentQty:       item.CurrentQty,
		ThresholdPercent: item.ThresholdPercent,
		PercentLeft:      item.PercentLeft(),
		Low:              item.IsLow(),
		LastUpdated:      item.LastUpdated.Format(time.RFC3339),
	}
}

func NewItems(items []domain.Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		out = append(out, NewItem(item))
	}

	return out
}

type Created struct {
	ID uint `json:"id"`
}

type OK struct {
	OK bool `json:"ok"`
}
