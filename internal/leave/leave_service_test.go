package leave_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/leave"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/request"
	"go-hrms/internal/requesttype"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ledgerFixture struct {
	db     *gorm.DB
	repo   leave.Repository
	ledger leave.Ledger
	types  map[string]requesttype.RequestType
}

func setupLedgerTest(t *testing.T) *ledgerFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&requesttype.RequestType{}, &request.Request{}, &leave.LeaveBalance{}))

	f := &ledgerFixture{db: db, types: map[string]requesttype.RequestType{}}
	for _, code := range []string{"PAID_LEAVE", "PAID_SICK_LEAVE", "UNPAID_SICK_LEAVE", "WORK_FROM_HOME"} {
		category := requesttype.CategoryTimeOff
		if code == "WORK_FROM_HOME" {
			category = requesttype.CategoryOther
		}
		rt := requesttype.RequestType{ID: uuid.New(), Code: code, Name: code, Category: category, RequiresApproval: true, IsActive: true}
		require.NoError(t, db.Create(&rt).Error)
		f.types[code] = rt
	}
	f.repo = leave.NewRepository(db)
	f.ledger = leave.NewLedger(f.repo)
	return f
}

func (f *ledgerFixture) addRequest(t *testing.T, employeeID uuid.UUID, code string, status request.Status, from, to string) {
	t.Helper()
	parse := func(v string) *time.Time {
		d, err := time.Parse("2006-01-02", v)
		require.NoError(t, err)
		return &d
	}
	now := time.Now().UTC()
	require.NoError(t, f.db.Create(&request.Request{
		ID:                  uuid.New(),
		RequestTypeID:       f.types[code].ID,
		RequesterEmployeeID: employeeID,
		Status:              status,
		RequestedAt:         now,
		EffectiveFrom:       parse(from),
		EffectiveTo:         parse(to),
		Reason:              "r",
		CreatedAt:           now,
		UpdatedAt:           now,
	}).Error)
}

func balanceOf(t *testing.T, resp leave.BalancesResponse, bt domain.BalanceType) leave.BalanceResponse {
	t.Helper()
	for _, b := range resp.Balances {
		if b.BalanceType == string(bt) {
			return b
		}
	}
	t.Fatalf("balance %s missing", bt)
	return leave.BalanceResponse{}
}

func TestLedger_GetBalances(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults are materialized once", func(t *testing.T) {
		f := setupLedgerTest(t)
		emp := uuid.New()

		resp, err := f.ledger.GetBalances(ctx, emp, 2025)
		require.NoError(t, err)
		require.Len(t, resp.Balances, 4)
		assert.Equal(t, "Annual Leave", resp.Balances[0].BalanceType)
		assert.True(t, decimal.NewFromInt(15).Equal(balanceOf(t, resp, domain.BalanceAnnual).Total))
		assert.True(t, decimal.NewFromInt(10).Equal(balanceOf(t, resp, domain.BalanceSick).Remaining))
		assert.True(t, decimal.NewFromInt(14).Equal(balanceOf(t, resp, domain.BalanceParental).Total))
		assert.True(t, decimal.NewFromInt(5).Equal(balanceOf(t, resp, domain.BalanceOther).Total))

		_, err = f.ledger.GetBalances(ctx, emp, 2025)
		require.NoError(t, err)

		var count int64
		require.NoError(t, f.db.Model(&leave.LeaveBalance{}).Where("employee_id = ?", emp).Count(&count).Error)
		assert.Equal(t, int64(4), count)
	})

	t.Run("used is derived from approved requests of the year", func(t *testing.T) {
		f := setupLedgerTest(t)
		emp := uuid.New()

		f.addRequest(t, emp, "PAID_LEAVE", request.StatusApproved, "2025-06-02", "2025-06-04")
		f.addRequest(t, emp, "PAID_LEAVE", request.StatusPending, "2025-07-01", "2025-07-10")
		f.addRequest(t, emp, "PAID_LEAVE", request.StatusRejected, "2025-08-01", "2025-08-02")
		f.addRequest(t, emp, "PAID_LEAVE", request.StatusApproved, "2024-12-30", "2025-01-02")
		f.addRequest(t, emp, "PAID_SICK_LEAVE", request.StatusApproved, "2025-03-03", "2025-03-03")
		f.addRequest(t, emp, "UNPAID_SICK_LEAVE", request.StatusApproved, "2025-12-31", "2026-01-01")
		f.addRequest(t, emp, "WORK_FROM_HOME", request.StatusApproved, "2025-06-10", "2025-06-12")
		f.addRequest(t, uuid.New(), "PAID_LEAVE", request.StatusApproved, "2025-06-02", "2025-06-20")

		first, err := f.ledger.GetBalances(ctx, emp, 2025)
		require.NoError(t, err)
		second, err := f.ledger.GetBalances(ctx, emp, 2025)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		annual := balanceOf(t, first, domain.BalanceAnnual)
		assert.True(t, decimal.NewFromInt(3).Equal(annual.Used), annual.Used.String())
		assert.True(t, decimal.NewFromInt(12).Equal(annual.Remaining))

		sick := balanceOf(t, first, domain.BalanceSick)
		assert.True(t, decimal.NewFromInt(3).Equal(sick.Used), sick.Used.String())

		previous, err := f.ledger.GetBalances(ctx, emp, 2024)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(4).Equal(balanceOf(t, previous, domain.BalanceAnnual).Used))
	})

	t.Run("remaining can go negative after the fact", func(t *testing.T) {
		f := setupLedgerTest(t)
		emp := uuid.New()
		f.addRequest(t, emp, "PAID_LEAVE", request.StatusApproved, "2025-06-02", "2025-06-21")

		resp, err := f.ledger.GetBalances(ctx, emp, 2025)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(-5).Equal(balanceOf(t, resp, domain.BalanceAnnual).Remaining))
	})

	t.Run("year out of range", func(t *testing.T) {
		f := setupLedgerTest(t)
		_, err := f.ledger.GetBalances(ctx, uuid.New(), 1999)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidYear)
	})
}

func TestLedger_CheckSufficiency(t *testing.T) {
	ctx := context.Background()
	f := setupLedgerTest(t)
	emp := uuid.New()
	f.addRequest(t, emp, "PAID_LEAVE", request.StatusApproved, "2025-06-02", "2025-06-11")

	ok, err := f.ledger.CheckSufficiency(ctx, emp, domain.BalanceAnnual, 2025, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.ledger.CheckSufficiency(ctx, emp, domain.BalanceAnnual, 2025, decimal.NewFromInt(6))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.ledger.CheckSufficiency(ctx, emp, domain.BalanceAnnual, 2026, decimal.NewFromInt(15))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.ledger.CheckSufficiency(ctx, emp, domain.BalanceType("Sabbatical"), 2025, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidBalanceType)
}

func TestLedger_SetEntitlement(t *testing.T) {
	ctx := context.Background()
	f := setupLedgerTest(t)
	emp := uuid.New()
	f.addRequest(t, emp, "PAID_LEAVE", request.StatusApproved, "2025-06-02", "2025-06-04")

	resp, err := f.ledger.SetEntitlement(ctx, emp, domain.BalanceAnnual, 2025, decimal.RequireFromString("20.5"))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("17.5").Equal(resp.Remaining))

	_, err = f.ledger.SetEntitlement(ctx, emp, domain.BalanceAnnual, 2025, decimal.NewFromInt(18))
	require.NoError(t, err)

	balances, err := f.ledger.GetBalances(ctx, emp, 2025)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(18).Equal(balanceOf(t, balances, domain.BalanceAnnual).Total))
	assert.True(t, decimal.NewFromInt(10).Equal(balanceOf(t, balances, domain.BalanceSick).Total))

	_, err = f.ledger.SetEntitlement(ctx, emp, domain.BalanceAnnual, 2025, decimal.RequireFromString("1.234"))
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidEntitlement)

	_, err = f.ledger.SetEntitlement(ctx, emp, domain.BalanceAnnual, 2025, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidEntitlement)
}

func TestUsedDays(t *testing.T) {
	d := func(v string) time.Time {
		out, _ := time.Parse("2006-01-02", v)
		return out
	}
	used := leave.UsedDays([]leave.ApprovedWindow{
		{Code: "PARENTAL_LEAVE", EffectiveFrom: d("2025-01-01"), EffectiveTo: d("2025-01-14")},
		{Code: "OTHER_LEAVE", EffectiveFrom: d("2025-02-01"), EffectiveTo: d("2025-02-01")},
		{Code: "UNPAID_LEAVE", EffectiveFrom: d("2025-03-01"), EffectiveTo: d("2025-03-02")},
		{Code: "WORK_FROM_HOME", EffectiveFrom: d("2025-03-01"), EffectiveTo: d("2025-03-02")},
	})

	assert.True(t, decimal.NewFromInt(14).Equal(used[domain.BalanceParental]))
	assert.True(t, decimal.NewFromInt(3).Equal(used[domain.BalanceOther]))
	assert.True(t, used[domain.BalanceAnnual].IsZero())
}
