package domain

import "time"

// Store is a physical or virtual sales location.
type Store struct {
	ID        string
	Name      string
	Region    *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
