package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateKennelRequest struct {
	Name string `json:"name"`
}

func (req *CreateKennelRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
	)
}
