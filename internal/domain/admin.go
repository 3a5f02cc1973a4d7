package domain

import "time"

// AdminAccount models a console administrator. The token and token_expires
// columns hold the currently live session; overwriting them revokes the
// previous session.
type AdminAccount struct {
	ID           string
	Username     string
	PasswordHash string
	Token        *string
	TokenExpires *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
