package mapping

import (
	"github.com/wheatworks/millbook/internal/core/domain"
	"github.com/wheatworks/millbook/internal/models"
)

// ToModelRecord converts a domain.CustomerRecord to its persisted shape.
func ToModelRecord(d domain.CustomerRecord) models.MillingRecord {
	return models.MillingRecord{
		RecordID:      d.RecordID,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		CustomerType:  string(d.CustomerType),
		WheatWeight:   d.WheatWeight,
		FlourType:     string(d.FlourType),
		RatePerKg:     d.RatePerKg,
		TotalPrice:    d.TotalPrice,
		PaymentMethod: string(d.PaymentMethod),
		PaymentStatus: string(d.PaymentStatus),
		IsReady:       d.IsReady,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDomainRecord converts a persisted models.MillingRecord back to the domain shape.
func ToDomainRecord(m models.MillingRecord) domain.CustomerRecord {
	return domain.CustomerRecord{
		RecordID:      m.RecordID,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		CustomerType:  domain.CustomerType(m.CustomerType),
		WheatWeight:   m.WheatWeight,
		FlourType:     domain.FlourType(m.FlourType),
		RatePerKg:     m.RatePerKg,
		TotalPrice:    m.TotalPrice,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		IsReady:       m.IsReady,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToDomainRecordSlice converts a slice of persisted records to domain records.
func ToDomainRecordSlice(ms []models.MillingRecord) []domain.CustomerRecord {
	ds := make([]domain.CustomerRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecord(m)
	}
	return ds
}
