package requesttype

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=requesttype_repo.go -destination=mock/requesttype_repo_mock.go -package=mock
type Repository interface {
	FindActive(ctx context.Context) ([]RequestType, error)
	FindByCode(ctx context.Context, code string) (*RequestType, error)
	FindByID(ctx context.Context, id string) (*RequestType, error)
	SetActive(ctx context.Context, code string, active bool) error
	Upsert(ctx context.Context, rt *RequestType) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActive(ctx context.Context) ([]RequestType, error) {
	var types []RequestType
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category ASC").
		Order("name ASC").
		Find(&types).Error
	return types, err
}

func (r *repository) FindByCode(ctx context.Context, code string) (*RequestType, error) {
	var rt RequestType
	err := r.db.WithContext(ctx).First(&rt, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*RequestType, error) {
	var rt RequestType
	err := r.db.WithContext(ctx).First(&rt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *repository) SetActive(ctx context.Context, code string, active bool) error {
	res := r.db.WithContext(ctx).
		Model(&RequestType{}).
		Where("code = ?", code).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Upsert inserts rt or refreshes name, category and approval flag of an existing code.
// The active flag of an existing row is left alone.
func (r *repository) Upsert(ctx context.Context, rt *RequestType) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "category", "requires_approval", "updated_at"}),
	}).Create(rt).Error
}
