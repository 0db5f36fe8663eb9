package leave

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/domain"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/request"
	"go-hrms/internal/requesttype"
	requesttypeerrors "go-hrms/internal/requesttype/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const maxAttachments = 10

// TimeOffService is the employee-facing leave surface built on the request workflow.
//
//go:generate mockgen -source=leave_timeoff_service.go -destination=mock/leave_timeoff_service_mock.go -package=mock
type TimeOffService interface {
	Submit(ctx context.Context, actor domain.Actor, req SubmitTimeOffRequest, files []storage.File) (request.RequestResponse, error)
	Cancel(ctx context.Context, actor domain.Actor, id string) (request.RequestResponse, error)
	History(ctx context.Context, actor domain.Actor, q HistoryQuery) ([]request.RequestResponse, int64, error)
	Balances(ctx context.Context, actor domain.Actor, q BalancesQuery) (BalancesResponse, error)
	SetEntitlement(ctx context.Context, actor domain.Actor, req SetEntitlementRequest) (BalanceResponse, error)
}

type timeOffService struct {
	requests request.Service
	types    request.TypeResolver
	ledger   Ledger
	files    storage.AttachmentStorage
	now      func() time.Time
	logger   *zap.Logger
}

func NewTimeOffService(
	requests request.Service,
	types request.TypeResolver,
	ledger Ledger,
	files storage.AttachmentStorage,
	logger ...*zap.Logger,
) TimeOffService {
	l := zap.L().Named("leave.timeoff")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.timeoff")
	}
	if files == nil {
		files = storage.Disabled()
	}
	return &timeOffService{
		requests: requests,
		types:    types,
		ledger:   ledger,
		files:    files,
		now:      time.Now,
		logger:   l,
	}
}

func (s *timeOffService) Submit(ctx context.Context, actor domain.Actor, req SubmitTimeOffRequest, files []storage.File) (request.RequestResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	code := strings.ToUpper(strings.TrimSpace(req.TypeCode))
	log.Debug("submit time-off requested",
		zap.String("type_code", code),
		zap.String("employee_id", actor.EmployeeID.String()),
		zap.Int("attachments", len(files)),
	)

	rt, err := s.types.GetByCode(ctx, code)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			err = requesttypeerrors.ErrInvalidRequestType
		}
		log.Warn("submit time-off rejected", zap.String("type_code", code), zap.Error(err))
		return request.RequestResponse{}, err
	}
	if rt.Category != requesttype.CategoryTimeOff {
		return request.RequestResponse{}, leaveerrors.ErrNotTimeOffType
	}
	if len(files) > maxAttachments {
		return request.RequestResponse{}, leaveerrors.ErrTooManyAttachments
	}

	urls, err := s.upload(ctx, actor, files)
	if err != nil {
		return request.RequestResponse{}, err
	}

	var payload json.RawMessage
	if len(urls) > 0 {
		payload, err = json.Marshal(request.TimeOffPayload{AttachmentURLs: urls})
		if err != nil {
			s.discard(ctx, urls)
			return request.RequestResponse{}, err
		}
	}

	from, to := req.EffectiveFrom, req.EffectiveTo
	resp, err := s.requests.Create(ctx, actor, request.CreateRequest{
		TypeCode:      code,
		EffectiveFrom: &from,
		EffectiveTo:   &to,
		Reason:        req.Reason,
		Payload:       payload,
	})
	if err != nil {
		s.discard(ctx, urls)
		return request.RequestResponse{}, err
	}

	log.Info("submit time-off success",
		zap.String("request_id", resp.ID),
		zap.String("type_code", code),
	)
	return resp, nil
}

func (s *timeOffService) upload(ctx context.Context, actor domain.Actor, files []storage.File) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.files.Upload(ctx, actor.EmployeeID.String(), f)
		if err != nil {
			s.discard(ctx, urls)
			if errors.Is(err, storage.ErrStorageDisabled) {
				return nil, leaveerrors.ErrAttachmentsUnavailable
			}
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// discard removes uploads whose request was never stored.
func (s *timeOffService) discard(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.files.Delete(ctx, url); err != nil {
			s.logger.Warn("discard attachment failed", zap.String("url", url), zap.Error(err))
		}
	}
}

func (s *timeOffService) Cancel(ctx context.Context, actor domain.Actor, id string) (request.RequestResponse, error) {
	current, err := s.requests.GetByID(ctx, actor, id)
	if err != nil {
		return request.RequestResponse{}, err
	}
	if current.Category != string(requesttype.CategoryTimeOff) {
		return request.RequestResponse{}, leaveerrors.ErrNotTimeOffRequest
	}
	return s.requests.Cancel(ctx, actor, id)
}

func (s *timeOffService) History(ctx context.Context, actor domain.Actor, q HistoryQuery) ([]request.RequestResponse, int64, error) {
	return s.requests.List(ctx, actor, q.toListQuery())
}

func (s *timeOffService) Balances(ctx context.Context, actor domain.Actor, q BalancesQuery) (BalancesResponse, error) {
	employeeID := actor.EmployeeID
	if requested := strings.TrimSpace(q.EmployeeID); requested != "" && requested != actor.EmployeeID.String() {
		if !actor.IsPrivileged() {
			return BalancesResponse{}, leaveerrors.ErrBalanceScope
		}
		parsed, err := uuid.Parse(requested)
		if err != nil {
			return BalancesResponse{}, leaveerrors.ErrInvalidEmployeeID
		}
		employeeID = parsed
	}

	year := q.Year
	if year == 0 {
		year = s.now().UTC().Year()
	}
	return s.ledger.GetBalances(ctx, employeeID, year)
}

func (s *timeOffService) SetEntitlement(ctx context.Context, actor domain.Actor, req SetEntitlementRequest) (BalanceResponse, error) {
	if !actor.IsAdmin() {
		return BalanceResponse{}, leaveerrors.ErrAdminOnly
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	total, err := decimal.NewFromString(strings.TrimSpace(req.Total))
	if err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidEntitlement
	}
	return s.ledger.SetEntitlement(ctx, employeeID, parseBalanceType(req.BalanceType), req.Year, total)
}

// parseBalanceType accepts the display name in any case.
func parseBalanceType(v string) domain.BalanceType {
	v = strings.TrimSpace(v)
	for _, bt := range domain.BalanceTypes {
		if strings.EqualFold(string(bt), v) {
			return bt
		}
	}
	return domain.BalanceType(v)
}
