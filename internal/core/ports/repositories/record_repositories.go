package repositories

import (
	"context"

	"github.com/wheatworks/millbook/internal/core/domain"
)

// RecordRepository is the storage contract shared by both ledger backends
// (PostgreSQL and the local blob store). The semantics below are the
// unified contract; backends must not diverge from them:
//
//   - CreateRecord assigns the customer id inside the backend: the most
//     recent record whose name matches case-insensitively donates its id,
//     otherwise max(existing ids)+1 is taken, starting at 1.
//   - Listing and search results are ordered by creation time descending.
//   - Search matches the customer name by exact case-insensitive equality;
//     a term that parses as an integer additionally matches records whose
//     customer id equals it.
//   - Missing update/delete/find targets surface apperrors.ErrNotFound so
//     callers can tell "not found" apart from a storage failure.
type RecordRepository interface {
	// CreateRecord persists a new record, assigning its CustomerID, and
	// returns the stored record.
	CreateRecord(ctx context.Context, record domain.CustomerRecord) (*domain.CustomerRecord, error)

	// FindRecordByID returns the record with the given RecordID.
	FindRecordByID(ctx context.Context, recordID string) (*domain.CustomerRecord, error)

	// FindRecords returns a page of records, newest first.
	FindRecords(ctx context.Context, limit, offset int) ([]domain.CustomerRecord, error)

	// SearchRecords returns records matching the term by name or customer id.
	SearchRecords(ctx context.Context, term string) ([]domain.CustomerRecord, error)

	// UpdateRecord replaces the stored record identified by record.RecordID.
	UpdateRecord(ctx context.Context, record domain.CustomerRecord) error

	// DeleteRecord removes the record with the given RecordID.
	DeleteRecord(ctx context.Context, recordID string) error

	// SummarizeRevenue aggregates total prices across all records. The
	// reported total always equals the sum of TotalPrice over FindRecords.
	SummarizeRevenue(ctx context.Context) (domain.RevenueSummary, error)
}
