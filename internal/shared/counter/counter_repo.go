package counter

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

const TimeOffRequestCounter = "time_off_request"

// Counter is the sequence row behind human-readable display ids.
type Counter struct {
	CounterType string `gorm:"column:counter_type;type:varchar(50);primaryKey"`
	LastValue   int64  `gorm:"column:last_value;not null;default:0"`
}

func (Counter) TableName() string {
	return "counters"
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, counterType string) (int64, error)
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

func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var nextValue int64

	// Atomic upsert + increment so concurrent callers never share a value.
	err := r.conn(ctx).Raw(`
		INSERT INTO counters (counter_type, last_value)
		VALUES (?, 1)
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = counters.last_value + 1
		RETURNING last_value
	`, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
