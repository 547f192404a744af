package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateHonorDefRequest struct {
	Category  string `json:"category"`
	Threshold int    `json:"threshold"`
	Title     string `json:"title"`
}

func (req *CreateHonorDefRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Category, validation.Required, validation.In("hash", "hare", "jedi")),
		validation.Field(&req.Threshold, validation.Required, validation.Min(1)),
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
	)
}

// DeliveryItem is one element of a batch delivery. Item-level id checks
// happen in the service so that one malformed item fails alone instead
// of rejecting the whole batch.
type DeliveryItem struct {
	HonorID  uint `json:"honor_id"`
	HasherID uint `json:"hasher_id"`
}

type RecordDeliveriesRequest struct {
	Deliveries []DeliveryItem `json:"deliveries"`
}

func (req *RecordDeliveriesRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Deliveries, validation.Required),
	)
}
