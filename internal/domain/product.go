package domain

import "time"

// Product is a catalog entry sales can reference.
type Product struct {
	ID         string
	Name       string
	PriceCents int64
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
