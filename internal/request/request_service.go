package request

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/metrics"
	requesterrors "go-hrms/internal/request/errors"
	"go-hrms/internal/requesttype"
	requesttypeerrors "go-hrms/internal/requesttype/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/shared/dateutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BalanceChecker gates time-off submissions against the leave ledger.
type BalanceChecker interface {
	CheckSufficiency(ctx context.Context, employeeID uuid.UUID, balanceType domain.BalanceType, year int, requestedDays decimal.Decimal) (bool, error)
}

// ManagerLookup resolves an employee's direct manager.
type ManagerLookup interface {
	GetManagerOf(ctx context.Context, employeeID uuid.UUID) (*uuid.UUID, error)
}

type TypeResolver interface {
	GetByCode(ctx context.Context, code string) (*requesttype.RequestType, error)
}

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreateRequest) (RequestResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (RequestResponse, error)
	Update(ctx context.Context, actor domain.Actor, id string, req UpdateRequest) (RequestResponse, error)
	Cancel(ctx context.Context, actor domain.Actor, id string) (RequestResponse, error)
	Approve(ctx context.Context, actor domain.Actor, id string, comment *string) (RequestResponse, error)
	Reject(ctx context.Context, actor domain.Actor, id string, reason string) (RequestResponse, error)
	List(ctx context.Context, actor domain.Actor, q ListQuery) ([]RequestResponse, int64, error)
	Summary(ctx context.Context, actor domain.Actor, q SummaryQuery) (SummaryResponse, error)
}

type Option func(*service)

func WithBalanceChecker(b BalanceChecker) Option {
	return func(s *service) { s.balances = b }
}

// WithManagerLookup restricts managers to deciding on their direct reports' requests.
func WithManagerLookup(m ManagerLookup) Option {
	return func(s *service) { s.managers = m }
}

func WithCounter(c counter.Repository) Option {
	return func(s *service) { s.counter = c }
}

func WithOutbox(o kafka.OutboxRepository) Option {
	return func(s *service) { s.outbox = o }
}

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *service) {
		if l != nil {
			s.logger = l.Named("request.service")
		}
	}
}

type service struct {
	db       *sql.DB
	repo     Repository
	types    TypeResolver
	balances BalanceChecker
	managers ManagerLookup
	counter  counter.Repository
	outbox   kafka.OutboxRepository
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, types TypeResolver, opts ...Option) Service {
	s := &service{
		db:     db,
		repo:   repo,
		types:  types,
		now:    time.Now,
		logger: zap.L().Named("request.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FormatDisplayID renders the human-readable id of a time-off request.
func FormatDisplayID(n int64) string {
	return fmt.Sprintf("TOR-%06d", n)
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateRequest) (RequestResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	code := upper(req.TypeCode)
	log.Debug("create request requested",
		zap.String("type_code", code),
		zap.String("employee_id", actor.EmployeeID.String()),
	)

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return RequestResponse{}, requesterrors.ErrReasonRequired
	}

	rt, err := s.resolveType(ctx, code)
	if err != nil {
		log.Warn("create request rejected", zap.String("type_code", code), zap.Error(err))
		return RequestResponse{}, err
	}
	if rt.Category == requesttype.CategoryTimesheet {
		return RequestResponse{}, requesterrors.ErrTimesheetWorkflow
	}

	from, to, err := parseRange(req.EffectiveFrom, req.EffectiveTo)
	if err != nil {
		return RequestResponse{}, err
	}
	if err := s.validateWindow(rt.Category, from, to, true); err != nil {
		return RequestResponse{}, err
	}

	payload, err := DecodePayload(rt.Category, req.Payload)
	if err != nil {
		return RequestResponse{}, requesterrors.InvalidPayload(err)
	}
	if p, ok := payload.(TimeOffPayload); ok {
		p.RequestDisplayID = ""
		payload = p
	}
	if err := payload.Validate(); err != nil {
		return RequestResponse{}, requesterrors.InvalidPayload(err)
	}

	if err := s.checkBalance(ctx, actor.EmployeeID, rt, from, to); err != nil {
		log.Warn("create request rejected", zap.String("type_code", code), zap.Error(err))
		return RequestResponse{}, err
	}

	now := s.now().UTC()
	r := &Request{
		ID:                  uuid.New(),
		RequestTypeID:       rt.ID,
		RequestType:         rt,
		RequesterEmployeeID: actor.EmployeeID,
		Status:              StatusPending,
		RequestedAt:         now,
		EffectiveFrom:       from,
		EffectiveTo:         to,
		Reason:              reason,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if !rt.RequiresApproval {
		approver := actor.EmployeeID
		r.Status = StatusApproved
		r.ApproverEmployeeID = &approver
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	if p, ok := payload.(TimeOffPayload); ok && s.counter != nil {
		n, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.TimeOffRequestCounter)
		if err != nil {
			log.Error("failed to allocate display id", zap.Error(err))
			return RequestResponse{}, err
		}
		p.RequestDisplayID = FormatDisplayID(n)
		payload = p
	}
	if r.Payload, err = EncodePayload(payload); err != nil {
		return RequestResponse{}, err
	}

	if err := s.repo.WithTx(tx).Create(ctx, r); err != nil {
		log.Error("failed to create request", zap.Error(err))
		return RequestResponse{}, mapRepositoryError(err)
	}
	if err := s.enqueue(ctx, tx, r, events.RequestSubmittedType); err != nil {
		log.Error("failed to enqueue request event", zap.Error(err))
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", zap.Error(err))
		return RequestResponse{}, err
	}

	metrics.RecordSubmitted(code, string(r.Status))
	log.Info("create request success",
		zap.String("request_id", r.ID.String()),
		zap.String("type_code", code),
		zap.String("status", string(r.Status)),
	)
	return ToResponse(*r), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (RequestResponse, error) {
	reqID, err := parseRequestID(id)
	if err != nil {
		return RequestResponse{}, err
	}

	r, err := s.repo.FindByID(ctx, reqID)
	if err != nil {
		return RequestResponse{}, mapRepositoryError(err)
	}
	if r.RequesterEmployeeID != actor.EmployeeID && !actor.IsPrivileged() {
		return RequestResponse{}, requesterrors.ErrNotVisible
	}
	return ToResponse(*r), nil
}

func (s *service) Update(ctx context.Context, actor domain.Actor, id string, req UpdateRequest) (RequestResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update request requested", zap.String("request_id", id))

	reqID, err := parseRequestID(id)
	if err != nil {
		return RequestResponse{}, err
	}

	current, err := s.repo.FindByID(ctx, reqID)
	if err != nil {
		return RequestResponse{}, mapRepositoryError(err)
	}
	if err := ownerGuard(actor, current); err != nil {
		log.Warn("update request rejected", zap.String("request_id", id), zap.Error(err))
		return RequestResponse{}, err
	}

	patched := *current
	datesChanged := req.EffectiveFrom != nil || req.EffectiveTo != nil
	if datesChanged {
		from, to := current.EffectiveFrom, current.EffectiveTo
		if req.EffectiveFrom != nil {
			if from, err = parseOptionalDate(req.EffectiveFrom); err != nil {
				return RequestResponse{}, err
			}
		}
		if req.EffectiveTo != nil {
			if to, err = parseOptionalDate(req.EffectiveTo); err != nil {
				return RequestResponse{}, err
			}
		}
		if err := s.validateWindow(current.Category(), from, to, true); err != nil {
			return RequestResponse{}, err
		}
		patched.EffectiveFrom, patched.EffectiveTo = from, to
	}

	if req.Reason != nil {
		reason := strings.TrimSpace(*req.Reason)
		if reason == "" {
			return RequestResponse{}, requesterrors.ErrReasonRequired
		}
		patched.Reason = reason
	}

	if len(req.Payload) > 0 {
		payload, err := DecodePayload(current.Category(), req.Payload)
		if err != nil {
			return RequestResponse{}, requesterrors.InvalidPayload(err)
		}
		if p, ok := payload.(TimeOffPayload); ok {
			p.RequestDisplayID = existingDisplayID(current)
			payload = p
		}
		if err := payload.Validate(); err != nil {
			return RequestResponse{}, requesterrors.InvalidPayload(err)
		}
		if patched.Payload, err = EncodePayload(payload); err != nil {
			return RequestResponse{}, err
		}
	}

	if datesChanged {
		if err := s.checkBalance(ctx, current.RequesterEmployeeID, current.RequestType, patched.EffectiveFrom, patched.EffectiveTo); err != nil {
			log.Warn("update request rejected", zap.String("request_id", id), zap.Error(err))
			return RequestResponse{}, err
		}
	}
	patched.UpdatedAt = s.now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	ok, err := s.repo.WithTx(tx).UpdateContent(ctx, &patched, []Status{StatusPending})
	if err != nil {
		log.Error("failed to update request", zap.Error(err))
		return RequestResponse{}, mapRepositoryError(err)
	}
	if !ok {
		return RequestResponse{}, requesterrors.ErrNotPending
	}
	if err := s.enqueue(ctx, tx, &patched, events.RequestUpdatedType); err != nil {
		log.Error("failed to enqueue request event", zap.Error(err))
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", zap.Error(err))
		return RequestResponse{}, err
	}

	log.Info("update request success", zap.String("request_id", id))
	return ToResponse(patched), nil
}

func (s *service) Cancel(ctx context.Context, actor domain.Actor, id string) (RequestResponse, error) {
	return s.transition(ctx, "cancel", id,
		func(_ context.Context, r *Request) error {
			return ownerGuard(actor, r)
		},
		StatusChange{To: StatusCancelled},
	)
}

func (s *service) Approve(ctx context.Context, actor domain.Actor, id string, comment *string) (RequestResponse, error) {
	if !actor.Role.CanApprove() {
		return RequestResponse{}, requesterrors.ErrApproverRoleRequired
	}
	if comment != nil {
		trimmed := strings.TrimSpace(*comment)
		comment = &trimmed
		if trimmed == "" {
			comment = nil
		}
	}

	approver := actor.EmployeeID
	return s.transition(ctx, "approve", id,
		func(ctx context.Context, r *Request) error {
			return s.decisionGuard(ctx, actor, r)
		},
		StatusChange{To: StatusApproved, ApproverID: &approver, ApprovalComment: comment},
	)
}

func (s *service) Reject(ctx context.Context, actor domain.Actor, id string, reason string) (RequestResponse, error) {
	if !actor.Role.CanApprove() {
		return RequestResponse{}, requesterrors.ErrApproverRoleRequired
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return RequestResponse{}, requesterrors.ErrRejectionReasonRequired
	}

	approver := actor.EmployeeID
	return s.transition(ctx, "reject", id,
		func(ctx context.Context, r *Request) error {
			return s.decisionGuard(ctx, actor, r)
		},
		StatusChange{To: StatusRejected, ApproverID: &approver, RejectionReason: &reason},
	)
}

// transition runs guard and the conditional status update in one transaction.
func (s *service) transition(
	ctx context.Context,
	op string,
	id string,
	guard func(context.Context, *Request) error,
	change StatusChange,
) (RequestResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug(op+" request requested", zap.String("request_id", id))

	reqID, err := parseRequestID(id)
	if err != nil {
		return RequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	current, err := qtx.FindByID(ctx, reqID)
	if err != nil {
		return RequestResponse{}, mapRepositoryError(err)
	}
	if err := guard(ctx, current); err != nil {
		log.Warn(op+" request rejected", zap.String("request_id", id), zap.Error(err))
		return RequestResponse{}, err
	}

	change.At = s.now().UTC()
	updated, err := ApplyTransition(ctx, qtx, current, change)
	if err != nil {
		log.Warn(op+" request failed", zap.String("request_id", id), zap.Error(err))
		return RequestResponse{}, err
	}
	if err := s.enqueue(ctx, tx, updated, eventTypeFor(updated.Status)); err != nil {
		log.Error("failed to enqueue request event", zap.Error(err))
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", zap.Error(err))
		return RequestResponse{}, err
	}

	metrics.RecordTransition(string(updated.Category()), string(updated.Status))
	log.Info(op+" request success",
		zap.String("request_id", id),
		zap.String("status", string(updated.Status)),
	)
	return ToResponse(*updated), nil
}

// ApplyTransition moves current out of PENDING through repo and returns the updated copy.
// It fails with ErrNotPending when another writer got there first.
func ApplyTransition(ctx context.Context, repo Repository, current *Request, change StatusChange) (*Request, error) {
	if current.Status != StatusPending {
		return nil, requesterrors.ErrNotPending
	}

	ok, err := repo.Transition(ctx, current.ID, change)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !ok {
		return nil, requesterrors.ErrNotPending
	}

	next := *current
	next.Status = change.To
	next.UpdatedAt = change.At
	if change.ApproverID != nil {
		next.ApproverEmployeeID = change.ApproverID
	}
	if change.ApprovalComment != nil {
		next.ApprovalComment = change.ApprovalComment
	}
	if change.RejectionReason != nil {
		next.RejectionReason = change.RejectionReason
	}
	return &next, nil
}

func ownerGuard(actor domain.Actor, r *Request) error {
	if r.RequesterEmployeeID != actor.EmployeeID {
		return requesterrors.ErrNotOwner
	}
	if r.Status != StatusPending {
		return requesterrors.ErrNotPending
	}
	if r.Category() == requesttype.CategoryTimesheet {
		return requesterrors.ErrTimesheetWorkflow
	}
	return nil
}

// decisionGuard checks who may approve or reject r. Admins decide on anyone else's request;
// managers only on their direct reports'.
func (s *service) decisionGuard(ctx context.Context, actor domain.Actor, r *Request) error {
	if r.RequesterEmployeeID == actor.EmployeeID {
		return requesterrors.ErrSelfDecision
	}
	if r.Status != StatusPending {
		return requesterrors.ErrNotPending
	}
	return s.checkReportingLine(ctx, actor, r.RequesterEmployeeID)
}

func (s *service) checkReportingLine(ctx context.Context, actor domain.Actor, requester uuid.UUID) error {
	if actor.IsAdmin() || s.managers == nil {
		return nil
	}

	manager, err := s.managers.GetManagerOf(ctx, requester)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return requesterrors.ErrNotDirectManager
		}
		return err
	}
	if manager == nil || *manager != actor.EmployeeID {
		return requesterrors.ErrNotDirectManager
	}
	return nil
}

func (s *service) List(ctx context.Context, actor domain.Actor, q ListQuery) ([]RequestResponse, int64, error) {
	employeeID, err := ResolveEmployeeScope(actor, q.EmployeeID)
	if err != nil {
		return nil, 0, err
	}

	filter := ListFilter{
		EmployeeID: employeeID,
		TypeCode:   upper(q.TypeCode),
	}
	if q.Status != "" {
		status, ok := ParseStatus(q.Status)
		if !ok {
			return nil, 0, requesterrors.ErrInvalidStatus
		}
		filter.Status = status
	}
	if q.Category != "" {
		category := requesttype.Category(strings.ToLower(strings.TrimSpace(q.Category)))
		if !category.Valid() {
			return nil, 0, requesterrors.ErrInvalidCategory
		}
		filter.Category = category
	}
	if filter.EffectiveFrom, err = parseOptionalDate(&q.DateFrom); err != nil {
		return nil, 0, err
	}
	if filter.EffectiveTo, err = parseOptionalDate(&q.DateTo); err != nil {
		return nil, 0, err
	}

	items, total, err := s.repo.List(ctx, filter, q.Page, q.Limit)
	if err != nil {
		s.logger.Error("list requests failed", zap.Error(err))
		return nil, 0, err
	}
	return ToListResponse(items), total, nil
}

func (s *service) Summary(ctx context.Context, actor domain.Actor, q SummaryQuery) (SummaryResponse, error) {
	employeeID, err := ResolveEmployeeScope(actor, q.EmployeeID)
	if err != nil {
		return SummaryResponse{}, err
	}

	filter := ListFilter{
		EmployeeID: employeeID,
		TypeCode:   upper(q.TypeCode),
	}
	if month := strings.TrimSpace(q.Month); month != "" {
		start, end, err := dateutil.MonthRange(month)
		if err != nil {
			return SummaryResponse{}, requesterrors.ErrInvalidMonth
		}
		filter.CreatedFrom, filter.CreatedTo = &start, &end
	}

	byStatus, err := s.repo.CountByStatus(ctx, filter)
	if err != nil {
		s.logger.Error("count requests by status failed", zap.Error(err))
		return SummaryResponse{}, err
	}
	byType, err := s.repo.CountByType(ctx, filter)
	if err != nil {
		s.logger.Error("count requests by type failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	resp := SummaryResponse{ByType: make(map[string]int64, len(byType))}
	for _, row := range byStatus {
		resp.Total += row.Cnt
		switch Status(row.Grp) {
		case StatusPending:
			resp.ByStatus.Pending = row.Cnt
		case StatusApproved:
			resp.ByStatus.Approved = row.Cnt
		case StatusRejected:
			resp.ByStatus.Rejected = row.Cnt
		case StatusCancelled:
			resp.ByStatus.Cancelled = row.Cnt
		}
	}
	for _, row := range byType {
		resp.ByType[row.Grp] = row.Cnt
	}
	return resp, nil
}

// ResolveEmployeeScope decides whose requests a listing covers. Employees always get their
// own; Managers and Admins get the requested employee or, when none is named, everyone.
func ResolveEmployeeScope(actor domain.Actor, requested string) (*uuid.UUID, error) {
	requested = strings.TrimSpace(requested)
	if !actor.IsPrivileged() {
		if requested != "" && requested != actor.EmployeeID.String() {
			return nil, requesterrors.ErrListScope
		}
		id := actor.EmployeeID
		return &id, nil
	}
	if requested == "" {
		return nil, nil
	}
	id, err := uuid.Parse(requested)
	if err != nil {
		return nil, requesterrors.ErrInvalidEmployeeID
	}
	return &id, nil
}

func (s *service) resolveType(ctx context.Context, code string) (*requesttype.RequestType, error) {
	if code == "" {
		return nil, requesttypeerrors.ErrInvalidRequestType
	}
	rt, err := s.types.GetByCode(ctx, code)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return nil, requesttypeerrors.ErrInvalidRequestType
		}
		return nil, err
	}
	if !rt.IsActive {
		return nil, requesttypeerrors.ErrRequestTypeInactive
	}
	return rt, nil
}

// validateWindow checks an inclusive date window. Time-off must be dated and, when
// checkPast is set, may not start before today.
func (s *service) validateWindow(category requesttype.Category, from, to *time.Time, checkPast bool) error {
	if (from == nil) != (to == nil) {
		return requesterrors.ErrIncompleteDateRange
	}
	if from == nil {
		if category == requesttype.CategoryTimeOff {
			return requesterrors.ErrDatesRequired
		}
		return nil
	}
	if from.After(*to) {
		return requesterrors.ErrInvalidDateRange
	}
	if checkPast && category == requesttype.CategoryTimeOff && from.Before(dateutil.Truncate(s.now())) {
		return requesterrors.ErrEffectiveDateInPast
	}
	return nil
}

func (s *service) checkBalance(ctx context.Context, employeeID uuid.UUID, rt *requesttype.RequestType, from, to *time.Time) error {
	if s.balances == nil || rt == nil || rt.Category != requesttype.CategoryTimeOff || from == nil || to == nil {
		return nil
	}
	balanceType, ok := domain.BalanceTypeFor(rt.Code)
	if !ok {
		return nil
	}

	days := decimal.NewFromInt(int64(dateutil.InclusiveDays(*from, *to)))
	enough, err := s.balances.CheckSufficiency(ctx, employeeID, balanceType, from.Year(), days)
	if err != nil {
		return err
	}
	if !enough {
		return requesterrors.ErrInsufficientBalance
	}
	return nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, r *Request, eventType string) error {
	if s.outbox == nil {
		return nil
	}
	return EnqueueLifecycleEvent(ctx, s.outbox.WithTx(tx), r, eventType)
}

func existingDisplayID(r *Request) string {
	var p TimeOffPayload
	if len(r.Payload) == 0 || json.Unmarshal(r.Payload, &p) != nil {
		return ""
	}
	return p.RequestDisplayID
}

func parseRequestID(id string) (uuid.UUID, error) {
	reqID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, requesterrors.ErrInvalidRequestID
	}
	return reqID, nil
}

func parseOptionalDate(v *string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	t, err := dateutil.ParseDate(strings.TrimSpace(*v))
	if err != nil {
		return nil, requesterrors.ErrInvalidDateFormat
	}
	return &t, nil
}

func parseRange(from, to *string) (*time.Time, *time.Time, error) {
	f, err := parseOptionalDate(from)
	if err != nil {
		return nil, nil, err
	}
	t, err := parseOptionalDate(to)
	if err != nil {
		return nil, nil, err
	}
	return f, t, nil
}
