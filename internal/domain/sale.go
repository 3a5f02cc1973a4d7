package domain

import "time"

// Sale is a single recorded sale. Amounts are stored in cents.
type Sale struct {
	ID         string
	ReceiptNo  string
	StoreID    string
	StaffID    string
	ProductID  *string
	AmountCent int64
	SoldAt     time.Time
	CreatedAt  time.Time
}

// StoreTotals aggregates sales for one store over a window.
type StoreTotals struct {
	StoreID    string `json:"store_id"`
	AmountCent int64  `json:"amount_cents"`
	SaleCount  int64  `json:"sale_count"`
}

// StaffTotal is one leaderboard row.
type StaffTotal struct {
	StaffID    string `json:"staff_id"`
	StaffName  string `json:"staff_name"`
	AmountCent int64  `json:"amount_cents"`
	SaleCount  int64  `json:"sale_count"`
}

// DailyTotal is one point of the daily series.
type DailyTotal struct {
	Day        string `json:"day"`
	AmountCent int64  `json:"amount_cents"`
	SaleCount  int64  `json:"sale_count"`
}
