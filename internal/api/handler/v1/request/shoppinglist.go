package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ManualAddRequest struct {
	Name    string   `json:"name"`
	Qty     *float64 `json:"qty"`
	Regular *bool    `json:"regular"`
}

func (req *ManualAddRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

// MarkBoughtRequest resolves either a manual entry or a tracked item.
// Exactly one id is expected; the id-presence rule lives in the service so
// it is enforced no matter which boundary calls in.
type MarkBoughtRequest struct {
	ManualID *uint    `json:"manual_id"`
	ItemID   *uint    `json:"item_id"`
	AddQty   *float64 `json:"add_qty"`
}
