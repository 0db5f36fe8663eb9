package request

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/requesttype"
	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFilter narrows List and the summary counts. Zero fields do not filter.
type ListFilter struct {
	EmployeeID *uuid.UUID
	Status     Status
	TypeCode   string
	Category   requesttype.Category
	// EffectiveFrom keeps requests starting on or after it, EffectiveTo those ending on or before it.
	EffectiveFrom *time.Time
	EffectiveTo   *time.Time
	// CreatedFrom and CreatedTo bound created_at as [from, to).
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	// ManagerID and DepartmentID scope by the requester's reporting line. When both are set a
	// request matches either.
	ManagerID    *uuid.UUID
	DepartmentID *uuid.UUID
}

// StatusChange is what a single state-machine transition writes.
type StatusChange struct {
	To              Status
	ApproverID      *uuid.UUID
	ApprovalComment *string
	RejectionReason *string
	At              time.Time
}

type GroupCount struct {
	Grp string `gorm:"column:grp"`
	Cnt int64  `gorm:"column:cnt"`
}

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)
	// UpdateContent rewrites dates, reason and payload when the row is in one of statuses
	// (PENDING when empty).
	UpdateContent(ctx context.Context, r *Request, statuses []Status) (bool, error)
	// Transition moves a PENDING row to change.To. It reports false when the row
	// was no longer pending.
	Transition(ctx context.Context, id uuid.UUID, change StatusChange) (bool, error)
	// Reopen puts a REJECTED row back to PENDING and clears the previous decision. It
	// reports false when the row was not rejected.
	Reopen(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	List(ctx context.Context, filter ListFilter, page, limit int) ([]Request, int64, error)
	CountByStatus(ctx context.Context, filter ListFilter) ([]GroupCount, error)
	CountByType(ctx context.Context, filter ListFilter) ([]GroupCount, error)
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

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.conn(ctx).Omit("RequestType").Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Request, error) {
	var req Request
	err := r.conn(ctx).
		Preload("RequestType").
		First(&req, "requests.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) UpdateContent(ctx context.Context, req *Request, statuses []Status) (bool, error) {
	if len(statuses) == 0 {
		statuses = []Status{StatusPending}
	}
	res := r.conn(ctx).
		Model(&Request{}).
		Where("id = ? AND status IN ?", req.ID, statuses).
		Updates(map[string]any{
			"effective_from": req.EffectiveFrom,
			"effective_to":   req.EffectiveTo,
			"reason":         req.Reason,
			"payload":        req.Payload,
			"updated_at":     req.UpdatedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) Transition(ctx context.Context, id uuid.UUID, change StatusChange) (bool, error) {
	updates := map[string]any{
		"status":     change.To,
		"updated_at": change.At,
	}
	if change.ApproverID != nil {
		updates["approver_employee_id"] = *change.ApproverID
	}
	if change.ApprovalComment != nil {
		updates["approval_comment"] = *change.ApprovalComment
	}
	if change.RejectionReason != nil {
		updates["rejection_reason"] = *change.RejectionReason
	}

	res := r.conn(ctx).
		Model(&Request{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) Reopen(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res := r.conn(ctx).
		Model(&Request{}).
		Where("id = ? AND status = ?", id, StatusRejected).
		Updates(map[string]any{
			"status":               StatusPending,
			"approver_employee_id": nil,
			"approval_comment":     nil,
			"rejection_reason":     nil,
			"updated_at":           at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter, page, limit int) ([]Request, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []Request
	err := r.filtered(ctx, filter).
		Preload("RequestType").
		Scopes(scope.Paginate(page, limit)).
		Order("requests.created_at DESC").
		Order("requests.id ASC").
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repository) CountByStatus(ctx context.Context, filter ListFilter) ([]GroupCount, error) {
	var rows []GroupCount
	err := r.filtered(ctx, filter).
		Select("requests.status AS grp, COUNT(*) AS cnt").
		Group("requests.status").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CountByType(ctx context.Context, filter ListFilter) ([]GroupCount, error) {
	var rows []GroupCount
	q := r.filtered(ctx, filter)
	if !joinsTypes(filter) {
		q = q.Joins("JOIN request_types ON request_types.id = requests.request_type_id")
	}
	err := q.
		Select("request_types.code AS grp, COUNT(*) AS cnt").
		Group("request_types.code").
		Scan(&rows).Error
	return rows, err
}

func joinsTypes(filter ListFilter) bool {
	return filter.TypeCode != "" || filter.Category != ""
}

func (r *repository) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	q := r.conn(ctx).Model(&Request{})
	if joinsTypes(filter) {
		q = q.Joins("JOIN request_types ON request_types.id = requests.request_type_id")
		if filter.TypeCode != "" {
			q = q.Where("request_types.code = ?", filter.TypeCode)
		}
		if filter.Category != "" {
			q = q.Where("request_types.category = ?", filter.Category)
		}
	}
	if filter.EmployeeID != nil {
		q = q.Scopes(scope.Requester("requests.requester_employee_id", filter.EmployeeID.String()))
	}
	if filter.Status != "" {
		q = q.Where("requests.status = ?", filter.Status)
	}
	if filter.EffectiveFrom != nil {
		q = q.Where("requests.effective_from >= ?", *filter.EffectiveFrom)
	}
	if filter.EffectiveTo != nil {
		q = q.Where("requests.effective_to <= ?", *filter.EffectiveTo)
	}
	if filter.ManagerID != nil || filter.DepartmentID != nil {
		q = q.Joins("JOIN employees ON employees.id = requests.requester_employee_id")
		switch {
		case filter.ManagerID != nil && filter.DepartmentID != nil:
			q = q.Where("(employees.manager_id = ? OR employees.department_id = ?)", *filter.ManagerID, *filter.DepartmentID)
		case filter.ManagerID != nil:
			q = q.Where("employees.manager_id = ?", *filter.ManagerID)
		default:
			q = q.Where("employees.department_id = ?", *filter.DepartmentID)
		}
	}
	if filter.CreatedFrom != nil {
		q = q.Where("requests.created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		q = q.Where("requests.created_at < ?", *filter.CreatedTo)
	}
	return q
}
