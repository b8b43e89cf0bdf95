package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wheatworks/millbook/internal/core/domain"
)

// CreateRecordRequest defines the data needed to create a ledger record.
//
// The caller never supplies an id, rate, total, or payment status - all of
// those are derived server-side. Weight arrives as the raw form string so
// the forgiving parse-to-zero behaviour lives in one place.
type CreateRecordRequest struct {
	CustomerName  string               `json:"customerName" binding:"required"`
	CustomerType  domain.CustomerType  `json:"customerType" binding:"omitempty,oneof=REGULAR TEMPORARY"`
	WheatWeight   string               `json:"wheatWeight"`
	FlourType     domain.FlourType     `json:"flourType" binding:"required,flourtype"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH BORROW"`
	IsReady       bool                 `json:"isReady"`
}

// UpdateRecordRequest defines the patch allowed on an existing record.
// Pointers distinguish omitted fields from zero values. Rate and total are
// deliberately absent: they are recomputed on every update.
type UpdateRecordRequest struct {
	CustomerName  *string               `json:"customerName"`
	CustomerType  *domain.CustomerType  `json:"customerType" binding:"omitempty,oneof=REGULAR TEMPORARY"`
	WheatWeight   *string               `json:"wheatWeight"`
	FlourType     *domain.FlourType     `json:"flourType" binding:"omitempty,flourtype"`
	PaymentMethod *domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=CASH BORROW"`
	PaymentStatus *domain.PaymentStatus `json:"paymentStatus" binding:"omitempty,oneof=PAID PENDING"`
	IsReady       *bool                 `json:"isReady"`
}

// ListRecordsParams defines query parameters for listing records.
type ListRecordsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// SearchRecordsParams defines query parameters for searching records.
type SearchRecordsParams struct {
	Term string `form:"q" binding:"required"`
}

// RecordResponse is the API shape of a ledger record.
type RecordResponse struct {
	RecordID      string               `json:"recordID"`
	CustomerID    int64                `json:"customerID"`
	CustomerName  string               `json:"customerName"`
	CustomerType  domain.CustomerType  `json:"customerType"`
	WheatWeight   decimal.Decimal      `json:"wheatWeight"`
	FlourType     domain.FlourType     `json:"flourType"`
	RatePerKg     decimal.Decimal      `json:"ratePerKg"`
	TotalPrice    decimal.Decimal      `json:"totalPrice"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	IsReady       bool                 `json:"isReady"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// ListRecordsResponse wraps a page of records.
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
}

// RevenueSummaryResponse reports aggregate revenue across the ledger.
type RevenueSummaryResponse struct {
	Total        decimal.Decimal `json:"total"`
	PaidTotal    decimal.Decimal `json:"paidTotal"`
	PendingTotal decimal.Decimal `json:"pendingTotal"`
	RecordCount  int64           `json:"recordCount"`
}

// ToRecordResponse converts a domain.CustomerRecord to its API shape.
func ToRecordResponse(r *domain.CustomerRecord) RecordResponse {
	return RecordResponse{
		RecordID:      r.RecordID,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		CustomerType:  r.CustomerType,
		WheatWeight:   r.WheatWeight,
		FlourType:     r.FlourType,
		RatePerKg:     r.RatePerKg,
		TotalPrice:    r.TotalPrice,
		PaymentMethod: r.PaymentMethod,
		PaymentStatus: r.PaymentStatus,
		IsReady:       r.IsReady,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ToListRecordsResponse converts a slice of domain records to the list DTO.
func ToListRecordsResponse(records []domain.CustomerRecord) ListRecordsResponse {
	responses := make([]RecordResponse, len(records))
	for i := range records {
		responses[i] = ToRecordResponse(&records[i])
	}
	return ListRecordsResponse{Records: responses}
}

// ToRevenueSummaryResponse converts the domain summary to its API shape.
func ToRevenueSummaryResponse(s domain.RevenueSummary) RevenueSummaryResponse {
	return RevenueSummaryResponse{
		Total:        s.Total,
		PaidTotal:    s.PaidTotal,
		PendingTotal: s.PendingTotal,
		RecordCount:  s.RecordCount,
	}
}
