package timesheet

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListActiveTasks(ctx context.Context) ([]Task, error)
	FindTasks(ctx context.Context, ids []uuid.UUID) ([]Task, error)
	WeekTaken(ctx context.Context, employeeID uuid.UUID, weekStart time.Time) (bool, error)
	ClaimWeek(ctx context.Context, week *Week) error
	ReleaseWeek(ctx context.Context, requestID uuid.UUID) error
	CreateEntries(ctx context.Context, entries []Entry) error
	DeleteEntries(ctx context.Context, requestID uuid.UUID) error
	FindEntries(ctx context.Context, requestID uuid.UUID) ([]Entry, error)
	// ApprovedHours returns the hours of approved entries whose week starts in [from, to).
	ApprovedHours(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]decimal.Decimal, error)
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

func (r *repository) ListActiveTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	err := r.conn(ctx).
		Where("is_active = ?", true).
		Order("task_type ASC").
		Order("task_code ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) FindTasks(ctx context.Context, ids []uuid.UUID) ([]Task, error) {
	var tasks []Task
	if len(ids) == 0 {
		return tasks, nil
	}
	err := r.conn(ctx).Where("id IN ?", ids).Find(&tasks).Error
	return tasks, err
}

func (r *repository) WeekTaken(ctx context.Context, employeeID uuid.UUID, weekStart time.Time) (bool, error) {
	var n int64
	err := r.conn(ctx).
		Model(&Week{}).
		Where("employee_id = ? AND week_start_date = ?", employeeID, weekStart).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) ClaimWeek(ctx context.Context, week *Week) error {
	return r.conn(ctx).Create(week).Error
}

func (r *repository) ReleaseWeek(ctx context.Context, requestID uuid.UUID) error {
	return r.conn(ctx).Where("request_id = ?", requestID).Delete(&Week{}).Error
}

func (r *repository) CreateEntries(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.conn(ctx).Omit("Task").Create(&entries).Error
}

func (r *repository) DeleteEntries(ctx context.Context, requestID uuid.UUID) error {
	return r.conn(ctx).Where("request_id = ?", requestID).Delete(&Entry{}).Error
}

func (r *repository) FindEntries(ctx context.Context, requestID uuid.UUID) ([]Entry, error) {
	var entries []Entry
	err := r.conn(ctx).
		Preload("Task").
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) ApprovedHours(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]decimal.Decimal, error) {
	var rows []struct {
		Hours decimal.Decimal `gorm:"column:hours"`
	}
	err := r.conn(ctx).
		Model(&Entry{}).
		Select("timesheet_entries.hours AS hours").
		Joins("JOIN requests ON requests.id = timesheet_entries.request_id").
		Where("timesheet_entries.employee_id = ?", employeeID).
		Where("requests.status = ?", request.StatusApproved).
		Where("timesheet_entries.week_start_date >= ? AND timesheet_entries.week_start_date < ?", from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	hours := make([]decimal.Decimal, 0, len(rows))
	for _, row := range rows {
		hours = append(hours, row.Hours)
	}
	return hours, nil
}
