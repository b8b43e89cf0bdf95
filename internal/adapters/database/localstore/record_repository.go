package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/wheatworks/millbook/internal/apperrors"
	"github.com/wheatworks/millbook/internal/core/domain"
	portsrepo "github.com/wheatworks/millbook/internal/core/ports/repositories"
	"github.com/wheatworks/millbook/internal/models"
	"github.com/wheatworks/millbook/internal/utils/mapping"
)

// recordsKey is the single KV key the whole ledger lives under.
const recordsKey = "milling_records"

// RecordRepository is the local ledger store: the full record array is kept
// as one JSON blob in an injected key-value store and rewritten wholesale on
// every mutation. A process-wide mutex serializes those read-modify-write
// cycles; concurrent writers in other processes remain last-write-wins.
type RecordRepository struct {
	kv KV
	mu sync.Mutex
}

// NewRecordRepository creates a record repository over the given KV.
func NewRecordRepository(kv KV) *RecordRepository {
	return &RecordRepository{kv: kv}
}

// Ensure RecordRepository implements the repository port.
var _ portsrepo.RecordRepository = (*RecordRepository)(nil)

func (r *RecordRepository) load(ctx context.Context) ([]models.MillingRecord, error) {
	blob, ok, err := r.kv.Get(ctx, recordsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load records blob: %w", err)
	}
	if !ok || len(blob) == 0 {
		return []models.MillingRecord{}, nil
	}

	var records []models.MillingRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records blob: %w", err)
	}
	return records, nil
}

func (r *RecordRepository) store(ctx context.Context, records []models.MillingRecord) error {
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode records blob: %w", err)
	}
	if err := r.kv.Put(ctx, recordsKey, blob); err != nil {
		return fmt.Errorf("failed to store records blob: %w", err)
	}
	return nil
}

// assignCustomerID reuses the id of the most recent record whose name
// matches case-insensitively, and otherwise takes max(existing)+1,
// starting at 1 on an empty ledger.
func assignCustomerID(records []models.MillingRecord, name string) int64 {
	for i := len(records) - 1; i >= 0; i-- {
		if strings.EqualFold(records[i].CustomerName, name) {
			return records[i].CustomerID
		}
	}

	var maxID int64
	for i := range records {
		if records[i].CustomerID > maxID {
			maxID = records[i].CustomerID
		}
	}
	return maxID + 1
}

// newestFirst returns a copy sorted by creation time descending. The blob
// holds records in insertion order; reversing before the stable sort makes
// the later insertion win timestamp ties.
func newestFirst(records []models.MillingRecord) []models.MillingRecord {
	out := make([]models.MillingRecord, len(records))
	for i := range records {
		out[len(records)-1-i] = records[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// CreateRecord assigns the customer id and appends the record to the blob.
func (r *RecordRepository) CreateRecord(ctx context.Context, record domain.CustomerRecord) (*domain.CustomerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	record.CustomerID = assignCustomerID(records, record.CustomerName)
	records = append(records, mapping.ToModelRecord(record))

	if err := r.store(ctx, records); err != nil {
		return nil, err
	}
	return &record, nil
}

// FindRecordByID returns a single record by its record id.
func (r *RecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.CustomerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].RecordID == recordID {
			record := mapping.ToDomainRecord(records[i])
			return &record, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindRecords returns a page of records, newest first.
func (r *RecordRepository) FindRecords(ctx context.Context, limit, offset int) ([]domain.CustomerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	ordered := newestFirst(records)
	if offset >= len(ordered) {
		return []domain.CustomerRecord{}, nil
	}
	end := offset + limit
	if end > len(ordered) {
		end = len(ordered)
	}
	return mapping.ToDomainRecordSlice(ordered[offset:end]), nil
}

// SearchRecords matches the customer name exactly (case-insensitive); a
// numeric term additionally matches on customer id.
func (r *RecordRepository) SearchRecords(ctx context.Context, term string) ([]domain.CustomerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	id, convErr := strconv.ParseInt(term, 10, 64)
	matchesID := convErr == nil

	matched := []models.MillingRecord{}
	for _, record := range newestFirst(records) {
		if strings.EqualFold(record.CustomerName, term) || (matchesID && record.CustomerID == id) {
			matched = append(matched, record)
		}
	}
	return mapping.ToDomainRecordSlice(matched), nil
}

// UpdateRecord replaces the stored record with the same record id.
func (r *RecordRepository) UpdateRecord(ctx context.Context, record domain.CustomerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].RecordID == record.RecordID {
			records[i] = mapping.ToModelRecord(record)
			return r.store(ctx, records)
		}
	}
	return fmt.Errorf("record %s: %w", record.RecordID, apperrors.ErrNotFound)
}

// DeleteRecord removes the record with the given record id.
func (r *RecordRepository) DeleteRecord(ctx context.Context, recordID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].RecordID == recordID {
			records = append(records[:i], records[i+1:]...)
			return r.store(ctx, records)
		}
	}
	return fmt.Errorf("record %s: %w", recordID, apperrors.ErrNotFound)
}

// SummarizeRevenue aggregates totals over the whole blob.
func (r *RecordRepository) SummarizeRevenue(ctx context.Context) (domain.RevenueSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return domain.RevenueSummary{}, err
	}

	summary := domain.RevenueSummary{
		Total:        decimal.Zero,
		PaidTotal:    decimal.Zero,
		PendingTotal: decimal.Zero,
		RecordCount:  int64(len(records)),
	}
	for i := range records {
		summary.Total = summary.Total.Add(records[i].TotalPrice)
		switch domain.PaymentStatus(records[i].PaymentStatus) {
		case domain.Paid:
			summary.PaidTotal = summary.PaidTotal.Add(records[i].TotalPrice)
		case domain.Pending:
			summary.PendingTotal = summary.PendingTotal.Add(records[i].TotalPrice)
		}
	}
	return summary, nil
}
