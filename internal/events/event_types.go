package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSaleRecorded EventType = "sale_recorded"
	EventStaffChanged EventType = "staff_changed"
	EventStoreChanged EventType = "store_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	StoreID   string      `json:"store_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SaleRecordedPayload payload.
type SaleRecordedPayload struct {
	SaleID     string  `json:"sale_id"`
	ReceiptNo  string  `json:"receipt_no"`
	StaffID    string  `json:"staff_id"`
	ProductID  *string `json:"product_id,omitempty"`
	AmountCent int64   `json:"amount_cents"`
}

// StaffChangedPayload payload.
type StaffChangedPayload struct {
	StaffID string `json:"staff_id"`
}

// StoreChangedPayload payload.
type StoreChangedPayload struct {
	Name string `json:"name"`
}
