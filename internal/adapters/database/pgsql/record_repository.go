package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wheatworks/millbook/internal/apperrors"
	"github.com/wheatworks/millbook/internal/core/domain"
	portsrepo "github.com/wheatworks/millbook/internal/core/ports/repositories"
	"github.com/wheatworks/millbook/internal/models"
	"github.com/wheatworks/millbook/internal/utils/mapping"
)

const recordColumns = `record_id, customer_id, customer_name, customer_type, wheat_weight,
		flour_type, rate_per_kg, total_price, payment_method, payment_status,
		is_ready, created_at, updated_at`

// RecordRepository is the PostgreSQL-backed ledger store.
type RecordRepository struct {
	db *pgxpool.Pool
}

// NewRecordRepository creates a new PostgreSQL record repository.
func NewRecordRepository(db *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{db: db}
}

// Ensure RecordRepository implements the repository port.
var _ portsrepo.RecordRepository = (*RecordRepository)(nil)

func scanRecord(row pgx.Row) (models.MillingRecord, error) {
	var m models.MillingRecord
	err := row.Scan(
		&m.RecordID,
		&m.CustomerID,
		&m.CustomerName,
		&m.CustomerType,
		&m.WheatWeight,
		&m.FlourType,
		&m.RatePerKg,
		&m.TotalPrice,
		&m.PaymentMethod,
		&m.PaymentStatus,
		&m.IsReady,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func collectRecords(rows pgx.Rows) ([]domain.CustomerRecord, error) {
	defer rows.Close()

	modelRecords := []models.MillingRecord{}
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		modelRecords = append(modelRecords, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", rows.Err())
	}

	return mapping.ToDomainRecordSlice(modelRecords), nil
}

// CreateRecord assigns the customer id and inserts the record in one
// transaction. An advisory lock on the lowercased name serializes
// concurrent first-time creates for the same customer, so both end up
// sharing one id instead of racing to the same "next id".
func (r *RecordRepository) CreateRecord(ctx context.Context, record domain.CustomerRecord) (*domain.CustomerRecord, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin create transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext(lower($1)));`, record.CustomerName); err != nil {
		return nil, fmt.Errorf("failed to take customer name lock: %w", err)
	}

	var customerID int64
	err = tx.QueryRow(ctx, `
		SELECT customer_id
		FROM milling_records
		WHERE lower(customer_name) = lower($1)
		ORDER BY created_at DESC, id DESC
		LIMIT 1;
	`, record.CustomerName).Scan(&customerID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = tx.QueryRow(ctx, `SELECT COALESCE(MAX(customer_id), 0) + 1 FROM milling_records;`).Scan(&customerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to assign customer id: %w", err)
	}

	record.CustomerID = customerID
	m := mapping.ToModelRecord(record)

	_, err = tx.Exec(ctx, `
		INSERT INTO milling_records (record_id, customer_id, customer_name, customer_type,
			wheat_weight, flour_type, rate_per_kg, total_price, payment_method,
			payment_status, is_ready, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`,
		m.RecordID,
		m.CustomerID,
		m.CustomerName,
		m.CustomerType,
		m.WheatWeight,
		m.FlourType,
		m.RatePerKg,
		m.TotalPrice,
		m.PaymentMethod,
		m.PaymentStatus,
		m.IsReady,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit create transaction: %w", err)
	}
	return &record, nil
}

// FindRecordByID returns a single record by its record id.
func (r *RecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.CustomerRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM milling_records WHERE record_id = $1;`, recordColumns)

	m, err := scanRecord(r.db.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find record by ID %s: %w", recordID, err)
	}

	record := mapping.ToDomainRecord(m)
	return &record, nil
}

// FindRecords returns a page of records ordered by creation time descending.
func (r *RecordRepository) FindRecords(ctx context.Context, limit, offset int) ([]domain.CustomerRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM milling_records
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2;
	`, recordColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	return collectRecords(rows)
}

// SearchRecords matches the customer name exactly (case-insensitive); a
// numeric term additionally matches on customer id.
func (r *RecordRepository) SearchRecords(ctx context.Context, term string) ([]domain.CustomerRecord, error) {
	term = strings.TrimSpace(term)

	var (
		rows pgx.Rows
		err  error
	)
	if id, convErr := strconv.ParseInt(term, 10, 64); convErr == nil {
		query := fmt.Sprintf(`
			SELECT %s
			FROM milling_records
			WHERE customer_id = $1 OR lower(customer_name) = lower($2)
			ORDER BY created_at DESC, id DESC;
		`, recordColumns)
		rows, err = r.db.Query(ctx, query, id, term)
	} else {
		query := fmt.Sprintf(`
			SELECT %s
			FROM milling_records
			WHERE lower(customer_name) = lower($1)
			ORDER BY created_at DESC, id DESC;
		`, recordColumns)
		rows, err = r.db.Query(ctx, query, term)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search records: %w", err)
	}
	return collectRecords(rows)
}

// UpdateRecord replaces the mutable columns of the record. Creation time
// and customer id are deliberately not part of the SET list.
func (r *RecordRepository) UpdateRecord(ctx context.Context, record domain.CustomerRecord) error {
	m := mapping.ToModelRecord(record)
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE milling_records
		SET customer_name = $1,
			customer_type = $2,
			wheat_weight = $3,
			flour_type = $4,
			rate_per_kg = $5,
			total_price = $6,
			payment_method = $7,
			payment_status = $8,
			is_ready = $9,
			updated_at = $10
		WHERE record_id = $11;
	`,
		m.CustomerName,
		m.CustomerType,
		m.WheatWeight,
		m.FlourType,
		m.RatePerKg,
		m.TotalPrice,
		m.PaymentMethod,
		m.PaymentStatus,
		m.IsReady,
		m.UpdatedAt,
		m.RecordID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update record query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("record %s: %w", record.RecordID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteRecord removes a record from the ledger.
func (r *RecordRepository) DeleteRecord(ctx context.Context, recordID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM milling_records WHERE record_id = $1;`, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("record %s: %w", recordID, apperrors.ErrNotFound)
	}
	return nil
}

// SummarizeRevenue aggregates totals in the database rather than pulling
// every row over the wire.
func (r *RecordRepository) SummarizeRevenue(ctx context.Context) (domain.RevenueSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total_price), 0),
			COALESCE(SUM(CASE WHEN payment_status = 'PAID' THEN total_price ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN payment_status = 'PENDING' THEN total_price ELSE 0 END), 0)
		FROM milling_records;
	`

	var summary domain.RevenueSummary
	err := r.db.QueryRow(ctx, query).Scan(
		&summary.RecordCount,
		&summary.Total,
		&summary.PaidTotal,
		&summary.PendingTotal,
	)
	if err != nil {
		return domain.RevenueSummary{}, fmt.Errorf("failed to summarize revenue: %w", err)
	}
	return summary, nil
}
