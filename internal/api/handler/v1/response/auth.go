package response

import "github.com/h3tools/hashtrack/internal/domain"

type TokenResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
