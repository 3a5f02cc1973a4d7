package dto

import (
	"time"

	"github.com/salestrack/sales-service/internal/domain"
)

// StoreRequest payload for creating or updating a store.
type StoreRequest struct {
	Name   string  `json:"name"`
	Region *string `json:"region,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// StoreResponse wire shape.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Region    *string   `json:"region,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStoreResponse maps a domain store.
func NewStoreResponse(store *domain.Store) StoreResponse {
	return StoreResponse{
		ID:        store.ID,
		Name:      store.Name,
		Region:    store.Region,
		Active:    store.Active,
		CreatedAt: store.CreatedAt,
	}
}

// StaffRequest payload for creating or updating a staff member.
type StaffRequest struct {
	Name     string   `json:"name"`
	RoleCode int      `json:"role_code"`
	StoreIDs []string `json:"store_ids,omitempty"`
	Active   *bool    `json:"active,omitempty"`
}

// StaffResponse wire shape. TrackingID is only shared with admins; staff
// receive it out of band as their login link.
type StaffResponse struct {
	ID         string    `json:"id"`
	TrackingID string    `json:"tracking_id"`
	Name       string    `json:"name"`
	RoleCode   int       `json:"role_code"`
	Role       string    `json:"role"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewStaffResponse maps a domain staff member.
func NewStaffResponse(staff *domain.StaffMember) StaffResponse {
	return StaffResponse{
		ID:         staff.ID,
		TrackingID: staff.TrackingID,
		Name:       staff.Name,
		RoleCode:   staff.RoleCode,
		Role:       string(domain.RoleFromCode(staff.RoleCode)),
		Active:     staff.Active,
		CreatedAt:  staff.CreatedAt,
	}
}

// ProductRequest payload for creating or updating a product.
type ProductRequest struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Active     *bool  `json:"active,omitempty"`
}

// ProductResponse wire shape.
type ProductResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewProductResponse maps a domain product.
func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		PriceCents: product.PriceCents,
		Active:     product.Active,
		CreatedAt:  product.CreatedAt,
	}
}
