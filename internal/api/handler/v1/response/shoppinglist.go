package response

import "github.com/pantryops/grocery-api/internal/domain"

// AutoEntry mirrors the original wire shape for the derived half of the
// shopping list: a trimmed item view plus the suggested purchase amount.
type AutoEntry struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	CurrentQty   float64 `json:"current_qty"`
	MaxQty       float64 `json:"max_qty"`
	SuggestedQty float64 `json:"suggested_qty"`
}

type ManualEntry struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Qty     float64 `json:"qty"`
	Regular bool    `json:"regular"`
}

type ShoppingList struct {
	Auto   []AutoEntry   `json:"auto"`
	Manual []ManualEntry `json:"manual"`
}

func NewShoppingList(list domain.ShoppingList) ShoppingList {
	auto := make([]AutoEntry, 0, len(list.Auto))
	for _, item := range list.Auto {
		auto = append(auto, AutoEntry{
			ID:           item.ID,
			Name:         item.Name,
			CurrentQty:   item.CurrentQty,
			MaxQty:       item.MaxQty,
			SuggestedQty: item.SuggestedQty(),
		})
	}

	manual := make([]ManualEntry, 0, len(list.Manual))
	for _, entry := range list.Manual {
		manual = append(manual, ManualEntry{
			ID:      entry.ID,
			Name:    entry.ItemName,
			Qty:     entry.Qty,
			Regular: entry.Regular,
		})
	}

	return ShoppingList{
		Auto:   auto,
		Manual: manual,
	}
}
