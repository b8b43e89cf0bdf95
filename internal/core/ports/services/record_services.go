package services

import (
	"context"

	"github.com/wheatworks/millbook/internal/core/domain"
	"github.com/wheatworks/millbook/internal/dto"
)

// RecordSvcFacade is the record-management surface consumed by handlers.
type RecordSvcFacade interface {
	CreateRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.CustomerRecord, error)
	GetRecordByID(ctx context.Context, recordID string) (*domain.CustomerRecord, error)
	ListRecords(ctx context.Context, limit, offset int) ([]domain.CustomerRecord, error)
	SearchRecords(ctx context.Context, term string) ([]domain.CustomerRecord, error)
	UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest) (*domain.CustomerRecord, error)
	DeleteRecord(ctx context.Context, recordID string) error
	GetRevenueSummary(ctx context.Context) (domain.RevenueSummary, error)
}
