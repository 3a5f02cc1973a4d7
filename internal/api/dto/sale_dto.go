package dto

import (
	"time"

	"github.com/salestrack/sales-service/internal/domain"
)

// SubmitSaleRequest payload for recording a sale.
type SubmitSaleRequest struct {
	StoreID     string     `json:"store_id"`
	ProductID   *string    `json:"product_id,omitempty"`
	AmountCents int64      `json:"amount_cents"`
	SoldAt      *time.Time `json:"sold_at,omitempty"`
}

// SaleResponse is the wire shape of a recorded sale.
type SaleResponse struct {
	ID          string    `json:"id"`
	ReceiptNo   string    `json:"receipt_no"`
	StoreID     string    `json:"store_id"`
	StaffID     string    `json:"staff_id"`
	ProductID   *string   `json:"product_id,omitempty"`
	AmountCents int64     `json:"amount_cents"`
	SoldAt      time.Time `json:"sold_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewSaleResponse maps a domain sale onto the wire shape.
func NewSaleResponse(sale *domain.Sale) SaleResponse {
	return SaleResponse{
		ID:          sale.ID,
		ReceiptNo:   sale.ReceiptNo,
		StoreID:     sale.StoreID,
		StaffID:     sale.StaffID,
		ProductID:   sale.ProductID,
		AmountCents: sale.AmountCent,
		SoldAt:      sale.SoldAt,
		CreatedAt:   sale.CreatedAt,
	}
}

// NewSaleResponses maps a slice of sales.
func NewSaleResponses(sales []domain.Sale) []SaleResponse {
	result := make([]SaleResponse, 0, len(sales))
	for i := range sales {
		result = append(result, NewSaleResponse(&sales[i]))
	}
	return result
}
