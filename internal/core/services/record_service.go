package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wheatworks/millbook/internal/apperrors"
	"github.com/wheatworks/millbook/internal/core/domain"
	portsrepo "github.com/wheatworks/millbook/internal/core/ports/repositories"
	portssvc "github.com/wheatworks/millbook/internal/core/ports/services"
	"github.com/wheatworks/millbook/internal/dto"
)

// RecordService implements record management on top of a RecordRepository.
// All derivation rules (identity reuse aside, which lives in the backend)
// are applied here so both backends persist identical shapes.
type RecordService struct {
	recordRepo portsrepo.RecordRepository
}

// NewRecordService creates a new RecordService.
func NewRecordService(recordRepo portsrepo.RecordRepository) *RecordService {
	return &RecordService{recordRepo: recordRepo}
}

// Ensure RecordService implements the service facade.
var _ portssvc.RecordSvcFacade = (*RecordService)(nil)

// CreateRecord derives the full record from the intake form input and
// persists it. The backend assigns the customer id.
func (s *RecordService) CreateRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.CustomerRecord, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("customer name must not be empty: %w", apperrors.ErrValidation)
	}

	customerType := req.CustomerType
	if customerType == "" {
		customerType = domain.Regular
	}

	weight := domain.ParseWeight(req.WheatWeight)
	rate, total := domain.ComputePrice(weight)
	now := time.Now().UTC()

	record := domain.CustomerRecord{
		RecordID:      uuid.NewString(),
		CustomerName:  name,
		CustomerType:  customerType,
		WheatWeight:   weight,
		FlourType:     req.FlourType,
		RatePerKg:     rate,
		TotalPrice:    total,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: domain.StatusForMethod(req.PaymentMethod),
		IsReady:       req.IsReady,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.recordRepo.CreateRecord(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	return created, nil
}

// GetRecordByID returns a single record by its record id.
func (s *RecordService) GetRecordByID(ctx context.Context, recordID string) (*domain.CustomerRecord, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get record %s: %w", recordID, err)
	}
	return record, nil
}

// ListRecords returns a page of records, newest first.
func (s *RecordService) ListRecords(ctx context.Context, limit, offset int) ([]domain.CustomerRecord, error) {
	records, err := s.recordRepo.FindRecords(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// SearchRecords looks records up by customer name or customer id.
func (s *RecordService) SearchRecords(ctx context.Context, term string) ([]domain.CustomerRecord, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("search term must not be empty: %w", apperrors.ErrValidation)
	}

	records, err := s.recordRepo.SearchRecords(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search records: %w", err)
	}
	return records, nil
}

// UpdateRecord applies a patch to an existing record. Whatever the patch
// contains, rate and total are recomputed from the effective weight and the
// payment status is re-derived from the effective method; record identity,
// customer id, and creation time never change.
func (s *RecordService) UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest) (*domain.CustomerRecord, error) {
	current, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load record %s for update: %w", recordID, err)
	}

	updated := *current

	if req.CustomerName != nil {
		name := strings.TrimSpace(*req.CustomerName)
		if name == "" {
			return nil, fmt.Errorf("customer name must not be empty: %w", apperrors.ErrValidation)
		}
		// Renaming does not re-run identity assignment; the record keeps
		// the customer id it was created under.
		updated.CustomerName = name
	}
	if req.CustomerType != nil {
		updated.CustomerType = *req.CustomerType
	}
	if req.FlourType != nil {
		updated.FlourType = *req.FlourType
	}
	if req.WheatWeight != nil {
		updated.WheatWeight = domain.ParseWeight(*req.WheatWeight)
	}
	if req.PaymentMethod != nil {
		updated.PaymentMethod = *req.PaymentMethod
	}
	if req.IsReady != nil {
		updated.IsReady = *req.IsReady
	}

	updated.RatePerKg, updated.TotalPrice = domain.ComputePrice(updated.WheatWeight)
	updated.PaymentStatus = domain.NextPaymentStatus(updated.PaymentMethod, req.PaymentStatus, current.PaymentStatus)
	updated.UpdatedAt = time.Now().UTC()

	if err := s.recordRepo.UpdateRecord(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update record %s: %w", recordID, err)
	}
	return &updated, nil
}

// DeleteRecord removes a record from the ledger.
func (s *RecordService) DeleteRecord(ctx context.Context, recordID string) error {
	if err := s.recordRepo.DeleteRecord(ctx, recordID); err != nil {
		return fmt.Errorf("failed to delete record %s: %w", recordID, err)
	}
	return nil
}

// GetRevenueSummary aggregates revenue across the whole ledger.
func (s *RecordService) GetRevenueSummary(ctx context.Context) (domain.RevenueSummary, error) {
	summary, err := s.recordRepo.SummarizeRevenue(ctx)
	if err != nil {
		return domain.RevenueSummary{}, fmt.Errorf("failed to summarize revenue: %w", err)
	}
	return summary, nil
}
