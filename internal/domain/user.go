package domain

import "time"

const (
	PermissionNone      = "none"
	PermissionPending   = "pending"
	PermissionDataEntry = "data_entry"
	PermissionAdmin     = "admin"
)

type User struct {
	ID          uint      `json:"id"`
	ProviderKey string    `json:"-"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Permissions string    `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u User) CanEnterData() bool {
	return u.Permissions == PermissionDataEntry || u.Permissions == PermissionAdmin
}

func (u User) IsAdmin() bool {
	return u.Permissions == PermissionAdmin
}
