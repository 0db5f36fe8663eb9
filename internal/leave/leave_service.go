package leave

import (
	"context"

	"go-hrms/internal/domain"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/shared/dateutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	minYear = 2000
	maxYear = 2100
)

// Ledger answers balance questions. It satisfies request.BalanceChecker.
//
//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Ledger interface {
	GetBalances(ctx context.Context, employeeID uuid.UUID, year int) (BalancesResponse, error)
	CheckSufficiency(ctx context.Context, employeeID uuid.UUID, balanceType domain.BalanceType, year int, requestedDays decimal.Decimal) (bool, error)
	EnsureYear(ctx context.Context, employeeID uuid.UUID, year int) error
	SetEntitlement(ctx context.Context, employeeID uuid.UUID, balanceType domain.BalanceType, year int, total decimal.Decimal) (BalanceResponse, error)
}

type ledger struct {
	repo   Repository
	logger *zap.Logger
}

func NewLedger(repo Repository, logger ...*zap.Logger) Ledger {
	l := zap.L().Named("leave.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.ledger")
	}
	return &ledger{repo: repo, logger: l}
}

func (l *ledger) GetBalances(ctx context.Context, employeeID uuid.UUID, year int) (BalancesResponse, error) {
	if err := validYear(year); err != nil {
		return BalancesResponse{}, err
	}

	rows, used, err := l.load(ctx, employeeID, year)
	if err != nil {
		return BalancesResponse{}, err
	}

	resp := BalancesResponse{
		EmployeeID: employeeID.String(),
		Year:       year,
		Balances:   make([]BalanceResponse, 0, len(domain.BalanceTypes)),
	}
	for _, bt := range domain.BalanceTypes {
		row, ok := rows[bt]
		if !ok {
			row = LeaveBalance{EmployeeID: employeeID, BalanceType: string(bt), Year: year, Total: domain.DefaultEntitlement(bt)}
		}
		resp.Balances = append(resp.Balances, mapToBalanceResponse(row, used[bt]))
	}
	return resp, nil
}

func (l *ledger) CheckSufficiency(ctx context.Context, employeeID uuid.UUID, balanceType domain.BalanceType, year int, requestedDays decimal.Decimal) (bool, error) {
	if !balanceType.Valid() {
		return false, leaveerrors.ErrInvalidBalanceType
	}

	rows, used, err := l.load(ctx, employeeID, year)
	if err != nil {
		return false, err
	}

	total := domain.DefaultEntitlement(balanceType)
	if row, ok := rows[balanceType]; ok {
		total = row.Total
	}
	remaining := total.Sub(used[balanceType])

	enough := remaining.GreaterThanOrEqual(requestedDays)
	l.logger.Debug("balance sufficiency checked",
		zap.String("employee_id", employeeID.String()),
		zap.String("balance_type", string(balanceType)),
		zap.Int("year", year),
		zap.String("remaining", remaining.String()),
		zap.String("requested", requestedDays.String()),
		zap.Bool("enough", enough),
	)
	return enough, nil
}

func (l *ledger) EnsureYear(ctx context.Context, employeeID uuid.UUID, year int) error {
	if err := validYear(year); err != nil {
		return err
	}
	if err := l.repo.EnsureDefaults(ctx, employeeID, year); err != nil {
		l.logger.Error("ensure leave balances failed",
			zap.String("employee_id", employeeID.String()),
			zap.Int("year", year),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (l *ledger) SetEntitlement(ctx context.Context, employeeID uuid.UUID, balanceType domain.BalanceType, year int, total decimal.Decimal) (BalanceResponse, error) {
	if !balanceType.Valid() {
		return BalanceResponse{}, leaveerrors.ErrInvalidBalanceType
	}
	if err := validYear(year); err != nil {
		return BalanceResponse{}, err
	}
	if total.IsNegative() || !total.Equal(total.Round(2)) {
		return BalanceResponse{}, leaveerrors.ErrInvalidEntitlement
	}

	row := &LeaveBalance{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		BalanceType: string(balanceType),
		Year:        year,
		Total:       total,
	}
	if err := l.repo.SetEntitlement(ctx, row); err != nil {
		l.logger.Error("set entitlement failed", zap.String("employee_id", employeeID.String()), zap.Error(err))
		return BalanceResponse{}, err
	}

	_, used, err := l.load(ctx, employeeID, year)
	if err != nil {
		return BalanceResponse{}, err
	}

	l.logger.Info("set entitlement success",
		zap.String("employee_id", employeeID.String()),
		zap.String("balance_type", string(balanceType)),
		zap.Int("year", year),
		zap.String("total", total.String()),
	)
	return mapToBalanceResponse(*row, used[balanceType]), nil
}

// load materializes missing rows and derives the used days of every bucket.
func (l *ledger) load(ctx context.Context, employeeID uuid.UUID, year int) (map[domain.BalanceType]LeaveBalance, map[domain.BalanceType]decimal.Decimal, error) {
	if err := l.EnsureYear(ctx, employeeID, year); err != nil {
		return nil, nil, err
	}

	list, err := l.repo.FindByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		l.logger.Error("load leave balances failed", zap.String("employee_id", employeeID.String()), zap.Error(err))
		return nil, nil, err
	}
	rows := make(map[domain.BalanceType]LeaveBalance, len(list))
	for _, b := range list {
		rows[domain.BalanceType(b.BalanceType)] = b
	}

	var codes []string
	for _, bt := range domain.BalanceTypes {
		codes = append(codes, domain.CodesFor(bt)...)
	}
	windows, err := l.repo.ApprovedWindows(ctx, employeeID, codes, year)
	if err != nil {
		l.logger.Error("load approved time-off failed", zap.String("employee_id", employeeID.String()), zap.Error(err))
		return nil, nil, err
	}

	return rows, UsedDays(windows), nil
}

// UsedDays sums the inclusive day counts of windows per balance bucket.
func UsedDays(windows []ApprovedWindow) map[domain.BalanceType]decimal.Decimal {
	used := make(map[domain.BalanceType]decimal.Decimal, len(domain.BalanceTypes))
	for _, bt := range domain.BalanceTypes {
		used[bt] = decimal.Zero
	}
	for _, w := range windows {
		bt, ok := domain.BalanceTypeFor(w.Code)
		if !ok {
			continue
		}
		days := dateutil.InclusiveDays(w.EffectiveFrom, w.EffectiveTo)
		used[bt] = used[bt].Add(decimal.NewFromInt(int64(days)))
	}
	return used
}

func validYear(year int) error {
	if year < minYear || year > maxYear {
		return leaveerrors.ErrInvalidYear
	}
	return nil
}
