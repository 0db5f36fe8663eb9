package leave

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/request"
	"go-hrms/internal/shared/dateutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// EnsureDefaults creates the default rows of every bucket missing for (employee, year).
	EnsureDefaults(ctx context.Context, employeeID uuid.UUID, year int) error
	FindByEmployeeYear(ctx context.Context, employeeID uuid.UUID, year int) ([]LeaveBalance, error)
	ApprovedWindows(ctx context.Context, employeeID uuid.UUID, codes []string, year int) ([]ApprovedWindow, error)
	SetEntitlement(ctx context.Context, b *LeaveBalance) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) EnsureDefaults(ctx context.Context, employeeID uuid.UUID, year int) error {
	now := time.Now().UTC()
	rows := make([]LeaveBalance, 0, len(domain.BalanceTypes))
	for _, bt := range domain.BalanceTypes {
		rows = append(rows, LeaveBalance{
			ID:          uuid.New(),
			EmployeeID:  employeeID,
			BalanceType: string(bt),
			Year:        year,
			Total:       domain.DefaultEntitlement(bt),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "balance_type"}, {Name: "year"}},
			DoNothing: true,
		}).
		Create(&rows).Error
}

func (r *repository) FindByEmployeeYear(ctx context.Context, employeeID uuid.UUID, year int) ([]LeaveBalance, error) {
	var rows []LeaveBalance
	err := r.conn(ctx).
		Where("employee_id = ? AND year = ?", employeeID, year).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ApprovedWindows(ctx context.Context, employeeID uuid.UUID, codes []string, year int) ([]ApprovedWindow, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	start, end := dateutil.YearRange(year)

	var rows []ApprovedWindow
	err := r.conn(ctx).
		Table("requests").
		Select("request_types.code AS code, requests.effective_from, requests.effective_to").
		Joins("JOIN request_types ON request_types.id = requests.request_type_id").
		Where("requests.requester_employee_id = ?", employeeID).
		Where("requests.status = ?", request.StatusApproved).
		Where("request_types.code IN ?", codes).
		Where("requests.effective_from >= ? AND requests.effective_from < ?", start, end).
		Where("requests.effective_to IS NOT NULL").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) SetEntitlement(ctx context.Context, b *LeaveBalance) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "balance_type"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"total", "updated_at"}),
		}).
		Create(b).Error
}
