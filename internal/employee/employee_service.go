package employee

import (
	"context"
	"strings"

	employeeerrors "go-hrms/internal/employee/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Directory answers reporting-line questions for approval scoping.
//
//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Directory interface {
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetManagerOf(ctx context.Context, employeeID uuid.UUID) (*uuid.UUID, error)
	GetDepartmentOf(ctx context.Context, employeeID uuid.UUID) (*uuid.UUID, error)
	ListDirectReports(ctx context.Context, managerID string) ([]EmployeeResponse, error)
	Upsert(ctx context.Context, req UpsertEmployeeRequest) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewDirectory(repo Repository, logger ...*zap.Logger) Directory {
	l := zap.L().Named("employee.directory")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.directory")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

// GetManagerOf returns nil when the employee has no manager on record.
func (s *service) GetManagerOf(ctx context.Context, employeeID uuid.UUID) (*uuid.UUID, error) {
	e, err := s.repo.FindByID(ctx, employeeID.String())
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return e.ManagerID, nil
}

func (s *service) GetDepartmentOf(ctx context.Context, employeeID uuid.UUID) (*uuid.UUID, error) {
	e, err := s.repo.FindByID(ctx, employeeID.String())
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return e.DepartmentID, nil
}

func (s *service) ListDirectReports(ctx context.Context, managerID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, employeeerrors.ErrInvalidManagerID
	}
	emps, err := s.repo.FindDirectReports(ctx, managerID)
	if err != nil {
		s.logger.Error("list direct reports failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

func (s *service) Upsert(ctx context.Context, req UpsertEmployeeRequest) error {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}
	e := &Employee{ID: id, FullName: strings.TrimSpace(req.FullName)}

	if e.ManagerID, err = parseOptionalUUID(req.ManagerID); err != nil {
		return employeeerrors.ErrInvalidManagerID
	}
	if e.ManagerID != nil && *e.ManagerID == id {
		return employeeerrors.ErrSelfManaged
	}
	if e.DepartmentID, err = parseOptionalUUID(req.DepartmentID); err != nil {
		return employeeerrors.ErrInvalidDepartmentID
	}

	if err := s.repo.Upsert(ctx, e); err != nil {
		s.logger.Error("upsert directory entry failed", zap.String("employee_id", req.ID), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("directory entry upserted", zap.String("employee_id", req.ID))
	return nil
}

func parseOptionalUUID(v *string) (*uuid.UUID, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
