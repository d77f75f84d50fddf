package domain

import "time"

// ManualListEntry is a user-added shopping-list line, independent of any
// tracked Item. Entries are soft-completed and never deleted.
type ManualListEntry struct {
	ID        uint      `json:"id"`
	ItemName  string    `json:"item_name"`
	Qty       float64   `json:"qty"`
	Regular   bool      `json:"regular"`
	AddedAt   time.Time `json:"added_at"`
	Completed bool      `json:"completed"`
}

// NewManualEntry carries the manual-add payload. Nil Qty defaults to 1,
// nil Regular to false.
type NewManualEntry struct {
	ItemName string
	Qty      *float64
	Regular  *bool
}

// ShoppingList is the combined view: low-stock items next to active manual
// entries. The two lists are independent sources and are never deduplicated.
type ShoppingList struct {
	Auto   []Item
	Manual []ManualListEntry
}
