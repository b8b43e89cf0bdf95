package localstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/wheatworks/millbook/internal/adapters/database/localstore"
	"github.com/wheatworks/millbook/internal/apperrors"
	"github.com/wheatworks/millbook/internal/core/domain"
)

type LocalRecordRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	kv   *localstore.MemoryKV
	repo *localstore.RecordRepository
}

func (suite *LocalRecordRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.kv = localstore.NewMemoryKV()
	suite.repo = localstore.NewRecordRepository(suite.kv)
}

func newRecord(name string, weight string, method domain.PaymentMethod, createdAt time.Time) domain.CustomerRecord {
	w := domain.ParseWeight(weight)
	rate, total := domain.ComputePrice(w)
	return domain.CustomerRecord{
		RecordID:      uuid.NewString(),
		CustomerName:  name,
		CustomerType:  domain.Regular,
		WheatWeight:   w,
		FlourType:     domain.Atta,
		RatePerKg:     rate,
		TotalPrice:    total,
		PaymentMethod: method,
		PaymentStatus: domain.StatusForMethod(method),
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func (suite *LocalRecordRepositoryTestSuite) mustCreate(record domain.CustomerRecord) *domain.CustomerRecord {
	created, err := suite.repo.CreateRecord(suite.ctx, record)
	suite.Require().NoError(err)
	return created
}

func (suite *LocalRecordRepositoryTestSuite) TestCreateRecord_AssignsIncreasingIDs() {
	now := time.Now().UTC()

	first := suite.mustCreate(newRecord("Ravi", "10", domain.Cash, now))
	second := suite.mustCreate(newRecord("Meena", "5", domain.Borrow, now))
	third := suite.mustCreate(newRecord("Sita", "2", domain.Cash, now))

	suite.Equal(int64(1), first.CustomerID)
	suite.Equal(int64(2), second.CustomerID)
	suite.Equal(int64(3), third.CustomerID)
}

func (suite *LocalRecordRepositoryTestSuite) TestCreateRecord_ReusesIDCaseInsensitively() {
	now := time.Now().UTC()

	first := suite.mustCreate(newRecord("Ravi", "10", domain.Cash, now))
	suite.mustCreate(newRecord("Meena", "5", domain.Cash, now))
	again := suite.mustCreate(newRecord("RAVI", "3", domain.Borrow, now))

	suite.Equal(first.CustomerID, again.CustomerID)
	suite.NotEqual(first.RecordID, again.RecordID, "same customer, distinct transactions")

	// The next new name continues past the highest assigned id.
	fresh := suite.mustCreate(newRecord("Sita", "1", domain.Cash, now))
	suite.Equal(int64(3), fresh.CustomerID)
}

func (suite *LocalRecordRepositoryTestSuite) TestFindRecords_NewestFirst() {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	oldest := suite.mustCreate(newRecord("Ravi", "10", domain.Cash, base))
	middle := suite.mustCreate(newRecord("Meena", "5", domain.Cash, base.Add(time.Hour)))
	newest := suite.mustCreate(newRecord("Sita", "2", domain.Cash, base.Add(2*time.Hour)))

	records, err := suite.repo.FindRecords(suite.ctx, 50, 0)
	suite.Require().NoError(err)
	suite.Require().Len(records, 3)
	suite.Equal(newest.RecordID, records[0].RecordID)
	suite.Equal(middle.RecordID, records[1].RecordID)
	suite.Equal(oldest.RecordID, records[2].RecordID)
}

func (suite *LocalRecordRepositoryTestSuite) TestFindRecords_TimestampTiesFavourLaterInsertion() {
	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	suite.mustCreate(newRecord("Ravi", "10", domain.Cash, at))
	later := suite.mustCreate(newRecord("Meena", "5", domain.Cash, at))

	records, err := suite.repo.FindRecords(suite.ctx, 50, 0)
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal(later.RecordID, records[0].RecordID)
}

func (suite *LocalRecordRepositoryTestSuite) TestFindRecords_Pagination() {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		suite.mustCreate(newRecord("Ravi", "1", domain.Cash, base.Add(time.Duration(i)*time.Minute)))
	}

	page, err := suite.repo.FindRecords(suite.ctx, 2, 2)
	suite.Require().NoError(err)
	suite.Len(page, 2)

	tail, err := suite.repo.FindRecords(suite.ctx, 10, 4)
	suite.Require().NoError(err)
	suite.Len(tail, 1)

	past, err := suite.repo.FindRecords(suite.ctx, 10, 99)
	suite.Require().NoError(err)
	suite.Empty(past)
}

func (suite *LocalRecordRepositoryTestSuite) TestFindRecordByID() {
	now := time.Now().UTC()
	created := suite.mustCreate(newRecord("Ravi", "10", domain.Cash, now))

	found, err := suite.repo.FindRecordByID(suite.ctx, created.RecordID)
	suite.Require().NoError(err)
	suite.Equal(created.CustomerName, found.CustomerName)
	suite.True(created.TotalPrice.Equal(found.TotalPrice))

	_, err = suite.repo.FindRecordByID(suite.ctx, uuid.NewString())
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *LocalRecordRepositoryTestSuite) TestSearchRecords() {
	now := time.Now().UTC()
	ravi := suite.mustCreate(newRecord("Ravi", "10", domain.Cash, now))
	suite.mustCreate(newRecord("Ravindra", "5", domain.Cash, now))
	meena := suite.mustCreate(newRecord("Meena", "2", domain.Borrow, now))

	// Exact case-insensitive name match; no substring matching.
	byName, err := suite.repo.SearchRecords(suite.ctx, "ravi")
	suite.Require().NoError(err)
	suite.Require().Len(byName, 1)
	suite.Equal(ravi.RecordID, byName[0].RecordID)

	// A numeric term matches the customer id.
	byID, err := suite.repo.SearchRecords(suite.ctx, "3")
	suite.Require().NoError(err)
	suite.Require().Len(byID, 1)
	suite.Equal(meena.RecordID, byID[0].RecordID)

	none, err := suite.repo.SearchRecords(suite.ctx, "Rav")
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *LocalRecordRepositoryTestSuite) TestSearchRecords_NumericNameMatchesBothWays() {
	now := time.Now().UTC()
	// A customer literally named "7" must be found by name even when the
	// term also matches another customer's id.
	for i := 0; i < 6; i++ {
		suite.mustCreate(newRecord("Customer"+string(rune('A'+i)), "1", domain.Cash, now))
	}
	seventh := suite.mustCreate(newRecord("7", "1", domain.Cash, now))
	suite.Equal(int64(7), seventh.CustomerID)

	matches, err := suite.repo.SearchRecords(suite.ctx, "7")
	suite.Require().NoError(err)
	suite.Require().Len(matches, 1)
	suite.Equal(seventh.RecordID, matches[0].RecordID)
}

func (suite *LocalRecordRepositoryTestSuite) TestUpdateRecord() {
	now := time.Now().UTC()
	created := suite.mustCreate(newRecord("Ravi", "10", domain.Borrow, now))

	created.PaymentStatus = domain.Paid
	created.IsReady = true
	created.UpdatedAt = now.Add(time.Minute)
	suite.Require().NoError(suite.repo.UpdateRecord(suite.ctx, *created))

	found, err := suite.repo.FindRecordByID(suite.ctx, created.RecordID)
	suite.Require().NoError(err)
	suite.Equal(domain.Paid, found.PaymentStatus)
	suite.True(found.IsReady)
}

func (suite *LocalRecordRepositoryTestSuite) TestUpdateRecord_NotFound() {
	now := time.Now().UTC()
	ghost := newRecord("Nobody", "1", domain.Cash, now)

	err := suite.repo.UpdateRecord(suite.ctx, ghost)
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *LocalRecordRepositoryTestSuite) TestDeleteRecord() {
	now := time.Now().UTC()
	created := suite.mustCreate(newRecord("Ravi", "10", domain.Cash, now))

	suite.Require().NoError(suite.repo.DeleteRecord(suite.ctx, created.RecordID))

	_, err := suite.repo.FindRecordByID(suite.ctx, created.RecordID)
	suite.True(errors.Is(err, apperrors.ErrNotFound))

	err = suite.repo.DeleteRecord(suite.ctx, created.RecordID)
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *LocalRecordRepositoryTestSuite) TestSummarizeRevenue_MatchesListing() {
	now := time.Now().UTC()
	suite.mustCreate(newRecord("Ravi", "10", domain.Cash, now))    // 20.00 paid
	suite.mustCreate(newRecord("Meena", "5", domain.Borrow, now))  // 10.00 pending
	suite.mustCreate(newRecord("Sita", "2.5", domain.Cash, now))   // 5.00 paid
	suite.mustCreate(newRecord("Gopal", "0", domain.Borrow, now))  // 0.00 pending

	summary, err := suite.repo.SummarizeRevenue(suite.ctx)
	suite.Require().NoError(err)

	suite.Equal(int64(4), summary.RecordCount)
	suite.True(summary.Total.Equal(decimal.RequireFromString("35.00")), "total %s", summary.Total)
	suite.True(summary.PaidTotal.Equal(decimal.RequireFromString("25.00")))
	suite.True(summary.PendingTotal.Equal(decimal.RequireFromString("10.00")))
	suite.True(summary.Total.Equal(summary.PaidTotal.Add(summary.PendingTotal)))

	// The aggregate agrees with summing the listing directly.
	records, err := suite.repo.FindRecords(suite.ctx, 50, 0)
	suite.Require().NoError(err)
	listed := decimal.Zero
	for i := range records {
		listed = listed.Add(records[i].TotalPrice)
	}
	suite.True(summary.Total.Equal(listed))
}

func (suite *LocalRecordRepositoryTestSuite) TestLedgerSurvivesReopen() {
	now := time.Now().UTC()
	created := suite.mustCreate(newRecord("Ravi", "10", domain.Cash, now))

	reopened := localstore.NewRecordRepository(suite.kv)
	found, err := reopened.FindRecordByID(suite.ctx, created.RecordID)
	suite.Require().NoError(err)
	suite.Equal(created.CustomerID, found.CustomerID)

	// Identity assignment keeps working off the persisted blob.
	again, err := reopened.CreateRecord(suite.ctx, newRecord("ravi", "1", domain.Cash, now))
	suite.Require().NoError(err)
	suite.Equal(created.CustomerID, again.CustomerID)
}

func TestLocalRecordRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LocalRecordRepositoryTestSuite))
}
