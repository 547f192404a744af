package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateHasherRequest struct {
	RealName string `json:"real_name"`
	HashName string `json:"hash_name"`
	FBName   string `json:"fb_name"`
	FBURL    string `json:"fb_url"`
	KennelID uint   `json:"kennel_id"`
	Notes    string `json:"notes"`
}

// A hasher needs at least one usable name; everything else is optional.
func (req *CreateHasherRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.RealName, validation.Length(0, 100)),
		validation.Field(&req.HashName, validation.Length(0, 100)),
		validation.Field(&req.FBURL, is.URL),
		validation.Field(&req.Notes, validation.Length(0, 2000)),
	)
	if err != nil {
		return err
	}

	if req.RealName == "" && req.HashName == "" {
		return errMissingName
	}

	return nil
}

type UpdateHasherRequest struct {
	CreateHasherRequest
}

type SearchRequest struct {
	Search string `json:"search" form:"q"`
}

func (req *SearchRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Search, validation.Required, validation.Length(1, 100)),
	)
}
