package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateItemRequest struct {
	Name             string   `json:"name"`
	Category         *string  `json:"category"`
	MaxQty           *float64 `json:"max_qty"`
	CurrentQty       *float64 `json:"current_qty"`
	ThresholdPercent *float64 `json:"threshold_percent"`
}

func (req *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

// UpdateItemRequest is a partial payload: absent fields stay untouched.
// Threshold values outside 0-100 are accepted as-is.
type UpdateItemRequest struct {
	Name             *string  `json:"name"`
	Category         *string  `json:"category"`
	MaxQty           *float64 `json:"max_qty"`
	CurrentQty       *float64 `json:"current_qty"`
	ThresholdPercent *float64 `json:"threshold_percent"`
}

func (req *UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}
