package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	errMissingName      = errors.New("either real_name or hash_name is required")
	errMissingRoleFlags = errors.New("hare and jedi flags are required and must be booleans")
)

type CreateEventRequest struct {
	KennelID uint   `json:"kennel_id"`
	Title    string `json:"title"`
	Number   int    `json:"number"`
	EvDate   string `json:"ev_date"` // YYYY-MM-DD
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.KennelID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.EvDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Location, validation.Length(0, 200)),
		validation.Field(&req.Notes, validation.Length(0, 2000)),
	)
}

type UpdateEventRequest struct {
	CreateEventRequest
}

// LinkHasherRequest adds one hasher to an event roster. The role flags
// are pointers so that a request carrying "yes" instead of true fails
// JSON decoding, and a request omitting a flag fails validation;
// nothing gets silently coerced.
type LinkHasherRequest struct {
	HasherID uint  `json:"hasher_id"`
	Hare     *bool `json:"hare"`
	Jedi     *bool `json:"jedi"`
}

func (req *LinkHasherRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.HasherID, validation.Required),
	)
	if err != nil {
		return err
	}

	if req.Hare == nil || req.Jedi == nil {
		return errMissingRoleFlags
	}

	return nil
}

type UnlinkHashersRequest struct {
	HasherIDs []uint `json:"hasher_ids"`
}

func (req *UnlinkHashersRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.HasherIDs, validation.Required),
	)
}
