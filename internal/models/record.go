package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MillingRecord is the persisted shape of a ledger entry.
//
// The JSON tags are the snake_case wire form the local backend serializes
// into its blob; the PostgreSQL backend maps the same fields onto columns
// of the milling_records table.
type MillingRecord struct {
	RecordID      string          `json:"record_id" db:"record_id"`
	CustomerID    int64           `json:"customer_id" db:"customer_id"`
	CustomerName  string          `json:"customer_name" db:"customer_name"`
	CustomerType  string          `json:"customer_type" db:"customer_type"`
	WheatWeight   decimal.Decimal `json:"wheat_weight" db:"wheat_weight"`
	FlourType     string          `json:"flour_type" db:"flour_type"`
	RatePerKg     decimal.Decimal `json:"rate_per_kg" db:"rate_per_kg"`
	TotalPrice    decimal.Decimal `json:"total_price" db:"total_price"`
	PaymentMethod string          `json:"payment_method" db:"payment_method"`
	PaymentStatus string          `json:"payment_status" db:"payment_status"`
	IsReady       bool            `json:"is_ready" db:"is_ready"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
