package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ExchangeTokenRequest struct {
	ProviderKey string `json:"provider_key"`
}

func (req *ExchangeTokenRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ProviderKey, validation.Required, validation.Length(1, 255)),
	)
}
