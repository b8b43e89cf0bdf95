package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerType classifies how often a customer visits the mill.
type CustomerType string

const (
	Regular   CustomerType = "REGULAR"
	Temporary CustomerType = "TEMPORARY"
)

// FlourType is the milled output requested for a record.
type FlourType string

const (
	Atta       FlourType = "ATTA"
	Maida      FlourType = "MAIDA"
	Besan      FlourType = "BESAN"
	Multigrain FlourType = "MULTIGRAIN"
	Other      FlourType = "OTHER"
)

// FlourTypes lists every accepted flour type, in display order.
var FlourTypes = []FlourType{Atta, Maida, Besan, Multigrain, Other}

// IsValid reports whether the flour type is one of the accepted values.
func (f FlourType) IsValid() bool {
	for _, known := range FlourTypes {
		if f == known {
			return true
		}
	}
	return false
}

// PaymentMethod indicates how a customer settles a record.
type PaymentMethod string

const (
	Cash   PaymentMethod = "CASH"
	Borrow PaymentMethod = "BORROW"
)

// PaymentStatus indicates whether a record has been paid for.
type PaymentStatus string

const (
	Paid    PaymentStatus = "PAID"
	Pending PaymentStatus = "PENDING"
)

// CustomerRecord is one milling transaction in the shop ledger.
//
// Two identifiers are carried on purpose: RecordID identifies this
// transaction and is the target of updates and deletes, while CustomerID
// identifies the customer and is shared by every record whose customer
// name matches case-insensitively.
type CustomerRecord struct {
	RecordID      string          `json:"recordID"`   // Primary key (UUID), assigned at creation
	CustomerID    int64           `json:"customerID"` // Shared across a customer's records
	CustomerName  string          `json:"customerName"`
	CustomerType  CustomerType    `json:"customerType"`
	WheatWeight   decimal.Decimal `json:"wheatWeight"` // Kilograms
	FlourType     FlourType       `json:"flourType"`
	RatePerKg     decimal.Decimal `json:"ratePerKg"`  // Always FixedRatePerKg, never caller-supplied
	TotalPrice    decimal.Decimal `json:"totalPrice"` // Always WheatWeight x RatePerKg
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	IsReady       bool            `json:"isReady"` // Order milled and available for pickup
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// StatusForMethod derives the payment status recorded at creation time.
// Cash settles immediately; a borrow stays pending until marked paid.
func StatusForMethod(method PaymentMethod) PaymentStatus {
	if method == Cash {
		return Paid
	}
	return Pending
}

// NextPaymentStatus resolves the payment status for an update.
//
// A record paid in cash is always PAID, whatever the caller asked for.
// Under BORROW the status is a free toggle: an explicit request wins,
// otherwise the current status is kept.
func NextPaymentStatus(method PaymentMethod, requested *PaymentStatus, current PaymentStatus) PaymentStatus {
	if method == Cash {
		return Paid
	}
	if requested != nil {
		return *requested
	}
	return current
}

// RevenueSummary aggregates total prices across the whole ledger.
type RevenueSummary struct {
	Total        decimal.Decimal `json:"total"`
	PaidTotal    decimal.Decimal `json:"paidTotal"`
	PendingTotal decimal.Decimal `json:"pendingTotal"`
	RecordCount  int64           `json:"recordCount"`
}
