package timesheet

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/metrics"
	"go-hrms/internal/request"
	requesterrors "go-hrms/internal/request/errors"
	"go-hrms/internal/requesttype"
	requesttypeerrors "go-hrms/internal/requesttype/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/dateutil"
	timesheeterrors "go-hrms/internal/timesheet/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultTypeCode = "WEEKLY_TIMESHEET"

var maxWeekHours = decimal.NewFromInt(168)

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	ListTasks(ctx context.Context) ([]TaskResponse, error)
	Submit(ctx context.Context, actor domain.Actor, req SubmitTimesheetRequest) (TimesheetResponse, error)
	Adjust(ctx context.Context, actor domain.Actor, id string, req AdjustTimesheetRequest) (TimesheetResponse, error)
	Resubmit(ctx context.Context, actor domain.Actor, id string) (TimesheetResponse, error)
	Get(ctx context.Context, actor domain.Actor, id string) (TimesheetResponse, error)
	ListMine(ctx context.Context, actor domain.Actor, q ListQuery) ([]TimesheetResponse, int64, error)
	PendingApprovals(ctx context.Context, actor domain.Actor, q PendingQuery) ([]TimesheetResponse, int64, error)
	Approve(ctx context.Context, actor domain.Actor, id string, comment *string) (TimesheetResponse, error)
	Reject(ctx context.Context, actor domain.Actor, id string, reason string) (TimesheetResponse, error)
	Cancel(ctx context.Context, actor domain.Actor, id string) (TimesheetResponse, error)
	MonthlyHours(ctx context.Context, actor domain.Actor, q MonthlyHoursQuery) (MonthlyHoursResponse, error)
}

type Option func(*service)

func WithOutbox(o kafka.OutboxRepository) Option {
	return func(s *service) { s.outbox = o }
}

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithTypeCode sets the request type code timesheets are filed under.
func WithTypeCode(code string) Option {
	return func(s *service) {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			s.typeCode = code
		}
	}
}

// WithAutoApproveRoles lists the roles whose timesheets are created already approved.
func WithAutoApproveRoles(roles []domain.Role) Option {
	return func(s *service) {
		s.autoApprove = make(map[domain.Role]bool, len(roles))
		for _, r := range roles {
			s.autoApprove[r] = true
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *service) {
		if l != nil {
			s.logger = l.Named("timesheet.service")
		}
	}
}

type service struct {
	db          *sql.DB
	repo        Repository
	requests    request.Repository
	decisions   request.Service
	types       request.TypeResolver
	outbox      kafka.OutboxRepository
	typeCode    string
	autoApprove map[domain.Role]bool
	now         func() time.Time
	logger      *zap.Logger
}

// NewService wires the timesheet workflow onto the generic request store. Approve and
// Reject are delegated to decisions so the state machine guards apply unchanged.
func NewService(
	db *sql.DB,
	repo Repository,
	requests request.Repository,
	decisions request.Service,
	types request.TypeResolver,
	opts ...Option,
) Service {
	s := &service{
		db:          db,
		repo:        repo,
		requests:    requests,
		decisions:   decisions,
		types:       types,
		typeCode:    DefaultTypeCode,
		autoApprove: map[domain.Role]bool{domain.RoleAdmin: true},
		now:         time.Now,
		logger:      zap.L().Named("timesheet.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) ListTasks(ctx context.Context) ([]TaskResponse, error) {
	tasks, err := s.repo.ListActiveTasks(ctx)
	if err != nil {
		s.logger.Error("list timesheet tasks failed", zap.Error(err))
		return nil, err
	}
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, mapToTaskResponse(t))
	}
	return out, nil
}

func (s *service) Submit(ctx context.Context, actor domain.Actor, req SubmitTimesheetRequest) (TimesheetResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit timesheet requested",
		zap.String("employee_id", actor.EmployeeID.String()),
		zap.String("week_start_date", req.WeekStartDate),
		zap.Int("entries", len(req.Entries)),
	)

	weekStart, err := dateutil.ParseDate(strings.TrimSpace(req.WeekStartDate))
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidWeekStart
	}
	if !dateutil.IsMonday(weekStart) {
		return TimesheetResponse{}, timesheeterrors.ErrWeekStartNotMonday
	}
	weekEnd := dateutil.WeekEnd(weekStart)

	lines, total, err := s.validateEntries(ctx, req.Entries)
	if err != nil {
		log.Warn("submit timesheet rejected", zap.Error(err))
		return TimesheetResponse{}, err
	}

	rt, err := s.resolveType(ctx)
	if err != nil {
		log.Warn("submit timesheet rejected", zap.String("type_code", s.typeCode), zap.Error(err))
		return TimesheetResponse{}, err
	}

	taken, err := s.repo.WeekTaken(ctx, actor.EmployeeID, weekStart)
	if err != nil {
		log.Error("failed to check timesheet week", zap.Error(err))
		return TimesheetResponse{}, err
	}
	if taken {
		log.Warn("submit timesheet rejected",
			zap.String("week_start_date", dateutil.FormatDate(weekStart)),
			zap.Error(timesheeterrors.ErrWeekAlreadySubmitted),
		)
		return TimesheetResponse{}, timesheeterrors.ErrWeekAlreadySubmitted
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = "Weekly timesheet " + dateutil.FormatDate(weekStart)
	}
	payload, err := request.EncodePayload(timesheetPayload(weekStart, total, len(lines)))
	if err != nil {
		return TimesheetResponse{}, err
	}

	now := s.now().UTC()
	r := &request.Request{
		ID:                  uuid.New(),
		RequestTypeID:       rt.ID,
		RequestType:         rt,
		RequesterEmployeeID: actor.EmployeeID,
		Status:              request.StatusPending,
		RequestedAt:         now,
		EffectiveFrom:       &weekStart,
		EffectiveTo:         &weekEnd,
		Reason:              reason,
		Payload:             payload,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if s.autoApprove[actor.Role] {
		approver := actor.EmployeeID
		r.Status = request.StatusApproved
		r.ApproverEmployeeID = &approver
	} else if !rt.RequiresApproval {
		approver := actor.EmployeeID
		r.Status = request.StatusApproved
		r.ApproverEmployeeID = &approver
	}
	entries := buildEntries(r.ID, actor.EmployeeID, weekStart, weekEnd, lines, now)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	if err := s.requests.WithTx(tx).Create(ctx, r); err != nil {
		log.Error("failed to create timesheet request", zap.Error(err))
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	qtx := s.repo.WithTx(tx)
	if err := qtx.ClaimWeek(ctx, &Week{
		EmployeeID:    actor.EmployeeID,
		WeekStartDate: weekStart,
		RequestID:     r.ID,
		CreatedAt:     now,
	}); err != nil {
		log.Warn("failed to claim timesheet week", zap.Error(err))
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	if err := qtx.CreateEntries(ctx, entries); err != nil {
		log.Error("failed to create timesheet entries", zap.Error(err))
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	if err := s.enqueue(ctx, tx, r, events.RequestSubmittedType); err != nil {
		log.Error("failed to enqueue timesheet event", zap.Error(err))
		return TimesheetResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", zap.Error(err))
		return TimesheetResponse{}, err
	}

	metrics.RecordSubmitted(rt.Code, string(r.Status))
	log.Info("submit timesheet success",
		zap.String("request_id", r.ID.String()),
		zap.String("status", string(r.Status)),
		zap.String("total_hours", total.StringFixed(2)),
	)
	return mapToResponse(*r, entries), nil
}

// Adjust replaces the whole entry set of a pending or rejected timesheet. The status is
// left as it is.
func (s *service) Adjust(ctx context.Context, actor domain.Actor, id string, req AdjustTimesheetRequest) (TimesheetResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("adjust timesheet requested", zap.String("request_id", id), zap.Int("entries", len(req.Entries)))

	current, err := s.load(ctx, s.requests, id)
	if err != nil {
		return TimesheetResponse{}, err
	}
	if current.RequesterEmployeeID != actor.EmployeeID {
		return TimesheetResponse{}, timesheeterrors.ErrNotOwner
	}
	if !adjustable(current.Status) {
		log.Warn("adjust timesheet rejected", zap.String("request_id", id), zap.String("status", string(current.Status)))
		return TimesheetResponse{}, timesheeterrors.ErrNotAdjustable
	}
	if current.EffectiveFrom == nil || current.EffectiveTo == nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidWeekStart
	}
	weekStart, weekEnd := *current.EffectiveFrom, *current.EffectiveTo

	lines, total, err := s.validateEntries(ctx, req.Entries)
	if err != nil {
		log.Warn("adjust timesheet rejected", zap.String("request_id", id), zap.Error(err))
		return TimesheetResponse{}, err
	}

	now := s.now().UTC()
	patched := *current
	patched.UpdatedAt = now
	if req.Reason != nil {
		if reason := strings.TrimSpace(*req.Reason); reason != "" {
			patched.Reason = reason
		}
	}
	if patched.Payload, err = request.EncodePayload(timesheetPayload(weekStart, total, len(lines))); err != nil {
		return TimesheetResponse{}, err
	}
	entries := buildEntries(current.ID, current.RequesterEmployeeID, weekStart, weekEnd, lines, now)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	ok, err := s.requests.WithTx(tx).UpdateContent(ctx, &patched, []request.Status{request.StatusPending, request.StatusRejected})
	if err != nil {
		log.Error("failed to update timesheet request", zap.Error(err))
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	if !ok {
		return TimesheetResponse{}, timesheeterrors.ErrNotAdjustable
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.DeleteEntries(ctx, current.ID); err != nil {
		log.Error("failed to delete timesheet entries", zap.Error(err))
		return TimesheetResponse{}, err
	}
	if err := qtx.CreateEntries(ctx, entries); err != nil {
		log.Error("failed to create timesheet entries", zap.Error(err))
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	if err := s.enqueue(ctx, tx, &patched, events.TimesheetAdjustedType); err != nil {
		log.Error("failed to enqueue timesheet event", zap.Error(err))
		return TimesheetResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", zap.Error(err))
		return TimesheetResponse{}, err
	}

	log.Info("adjust timesheet success",
		zap.String("request_id", id),
		zap.String("total_hours", total.StringFixed(2)),
	)
	return mapToResponse(patched, entries), nil
}

// Resubmit sends a rejected timesheet back for review. The week claim and entries are
// kept, so the owner usually adjusts first.
func (s *service) Resubmit(ctx context.Context, actor domain.Actor, id string) (TimesheetResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("resubmit timesheet requested", zap.String("request_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	requests := s.requests.WithTx(tx)
	current, err := s.load(ctx, requests, id)
	if err != nil {
		return TimesheetResponse{}, err
	}
	if current.RequesterEmployeeID != actor.EmployeeID {
		return TimesheetResponse{}, timesheeterrors.ErrNotOwner
	}
	if current.Status != request.StatusRejected {
		log.Warn("resubmit timesheet rejected", zap.String("request_id", id), zap.String("status", string(current.Status)))
		return TimesheetResponse{}, timesheeterrors.ErrNotResubmittable
	}

	now := s.now().UTC()
	ok, err := requests.Reopen(ctx, current.ID, now)
	if err != nil {
		log.Error("failed to reopen timesheet request", zap.Error(err))
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	if !ok {
		return TimesheetResponse{}, timesheeterrors.ErrNotResubmittable
	}

	reopened := *current
	reopened.Status = request.StatusPending
	reopened.ApproverEmployeeID = nil
	reopened.ApprovalComment = nil
	reopened.RejectionReason = nil
	reopened.UpdatedAt = now
	if err := s.enqueue(ctx, tx, &reopened, events.TimesheetResubmittedType); err != nil {
		log.Error("failed to enqueue timesheet event", zap.Error(err))
		return TimesheetResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", zap.Error(err))
		return TimesheetResponse{}, err
	}

	metrics.RecordTransition(string(requesttype.CategoryTimesheet), string(reopened.Status))
	log.Info("resubmit timesheet success", zap.String("request_id", id))
	return s.withEntries(ctx, &reopened)
}

func (s *service) Get(ctx context.Context, actor domain.Actor, id string) (TimesheetResponse, error) {
	r, err := s.load(ctx, s.requests, id)
	if err != nil {
		return TimesheetResponse{}, err
	}
	if r.RequesterEmployeeID != actor.EmployeeID && !actor.IsPrivileged() {
		return TimesheetResponse{}, requesterrors.ErrNotVisible
	}
	return s.withEntries(ctx, r)
}

func (s *service) ListMine(ctx context.Context, actor domain.Actor, q ListQuery) ([]TimesheetResponse, int64, error) {
	employeeID := actor.EmployeeID
	filter := request.ListFilter{
		EmployeeID: &employeeID,
		Category:   requesttype.CategoryTimesheet,
	}
	if q.Status != "" {
		status, ok := request.ParseStatus(q.Status)
		if !ok {
			return nil, 0, requesterrors.ErrInvalidStatus
		}
		filter.Status = status
	}
	return s.list(ctx, filter, q.Page, q.Limit)
}

// PendingApprovals lists pending timesheets awaiting a decision. Managers see their direct
// reports; admins see everything unless they narrow by approver or department.
func (s *service) PendingApprovals(ctx context.Context, actor domain.Actor, q PendingQuery) ([]TimesheetResponse, int64, error) {
	if !actor.Role.CanApprove() {
		return nil, 0, requesterrors.ErrApproverRoleRequired
	}

	filter := request.ListFilter{
		Category: requesttype.CategoryTimesheet,
		Status:   request.StatusPending,
	}
	if !actor.IsAdmin() {
		manager := actor.EmployeeID
		filter.ManagerID = &manager
		return s.list(ctx, filter, q.Page, q.Limit)
	}

	if v := strings.TrimSpace(q.ApproverID); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, 0, timesheeterrors.ErrInvalidApproverID
		}
		filter.ManagerID = &id
	}
	if v := strings.TrimSpace(q.DepartmentID); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, 0, timesheeterrors.ErrInvalidDepartmentID
		}
		filter.DepartmentID = &id
	}
	return s.list(ctx, filter, q.Page, q.Limit)
}

func (s *service) Approve(ctx context.Context, actor domain.Actor, id string, comment *string) (TimesheetResponse, error) {
	return s.decide(ctx, id, func() error {
		_, err := s.decisions.Approve(ctx, actor, id, comment)
		return err
	})
}

func (s *service) Reject(ctx context.Context, actor domain.Actor, id string, reason string) (TimesheetResponse, error) {
	return s.decide(ctx, id, func() error {
		_, err := s.decisions.Reject(ctx, actor, id, reason)
		return err
	})
}

func (s *service) decide(ctx context.Context, id string, apply func() error) (TimesheetResponse, error) {
	if _, err := s.load(ctx, s.requests, id); err != nil {
		return TimesheetResponse{}, err
	}
	if err := apply(); err != nil {
		return TimesheetResponse{}, err
	}

	r, err := s.load(ctx, s.requests, id)
	if err != nil {
		return TimesheetResponse{}, err
	}
	return s.withEntries(ctx, r)
}

// Cancel withdraws a pending timesheet and frees its week for a new submission.
func (s *service) Cancel(ctx context.Context, actor domain.Actor, id string) (TimesheetResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("cancel timesheet requested", zap.String("request_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	requests := s.requests.WithTx(tx)
	current, err := s.load(ctx, requests, id)
	if err != nil {
		return TimesheetResponse{}, err
	}
	if current.RequesterEmployeeID != actor.EmployeeID {
		return TimesheetResponse{}, timesheeterrors.ErrNotOwner
	}

	updated, err := request.ApplyTransition(ctx, requests, current, request.StatusChange{
		To: request.StatusCancelled,
		At: s.now().UTC(),
	})
	if err != nil {
		log.Warn("cancel timesheet rejected", zap.String("request_id", id), zap.Error(err))
		return TimesheetResponse{}, err
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.DeleteEntries(ctx, current.ID); err != nil {
		log.Error("failed to delete timesheet entries", zap.Error(err))
		return TimesheetResponse{}, err
	}
	if err := qtx.ReleaseWeek(ctx, current.ID); err != nil {
		log.Error("failed to release timesheet week", zap.Error(err))
		return TimesheetResponse{}, err
	}
	if err := s.enqueue(ctx, tx, updated, events.RequestCancelledType); err != nil {
		log.Error("failed to enqueue timesheet event", zap.Error(err))
		return TimesheetResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", zap.Error(err))
		return TimesheetResponse{}, err
	}

	metrics.RecordTransition(string(requesttype.CategoryTimesheet), string(updated.Status))
	log.Info("cancel timesheet success", zap.String("request_id", id))
	return mapToResponse(*updated, nil), nil
}

// MonthlyHours sums approved hours of the weeks starting in the month.
func (s *service) MonthlyHours(ctx context.Context, actor domain.Actor, q MonthlyHoursQuery) (MonthlyHoursResponse, error) {
	scoped, err := request.ResolveEmployeeScope(actor, q.EmployeeID)
	if err != nil {
		return MonthlyHoursResponse{}, err
	}
	employeeID := actor.EmployeeID
	if scoped != nil {
		employeeID = *scoped
	}

	month := strings.TrimSpace(q.Month)
	from, to, err := dateutil.MonthRange(month)
	if err != nil {
		return MonthlyHoursResponse{}, timesheeterrors.ErrInvalidMonth
	}

	hours, err := s.repo.ApprovedHours(ctx, employeeID, from, to)
	if err != nil {
		s.logger.Error("sum approved hours failed", zap.Error(err))
		return MonthlyHoursResponse{}, err
	}
	total := decimal.Zero
	for _, h := range hours {
		total = total.Add(h)
	}

	return MonthlyHoursResponse{
		EmployeeID: employeeID.String(),
		Month:      month,
		TotalHours: total,
	}, nil
}

type line struct {
	task  Task
	hours decimal.Decimal
}

// validateEntries checks the whole batch before anything is written.
func (s *service) validateEntries(ctx context.Context, inputs []EntryInput) ([]line, decimal.Decimal, error) {
	if len(inputs) == 0 {
		return nil, decimal.Zero, timesheeterrors.ErrEntriesRequired
	}

	ids := make([]uuid.UUID, 0, len(inputs))
	hours := make([]decimal.Decimal, 0, len(inputs))
	seen := make(map[uuid.UUID]struct{}, len(inputs))
	for _, in := range inputs {
		id, err := uuid.Parse(strings.TrimSpace(in.TaskID))
		if err != nil {
			return nil, decimal.Zero, timesheeterrors.ErrInvalidTaskID
		}
		if _, dup := seen[id]; dup {
			return nil, decimal.Zero, timesheeterrors.ErrDuplicateTask
		}
		seen[id] = struct{}{}

		h, err := ParseHours(in.Hours)
		if err != nil {
			return nil, decimal.Zero, err
		}
		ids = append(ids, id)
		hours = append(hours, h)
	}

	tasks, err := s.repo.FindTasks(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}
	byID := make(map[uuid.UUID]Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	lines := make([]line, 0, len(ids))
	total := decimal.Zero
	for i, id := range ids {
		t, ok := byID[id]
		if !ok || !t.IsActive {
			return nil, decimal.Zero, timesheeterrors.ErrUnknownTask
		}
		lines = append(lines, line{task: t, hours: hours[i]})
		total = total.Add(hours[i])
	}
	return lines, total, nil
}

// ParseHours accepts a value in [0, 168] with at most two decimals.
func ParseHours(v string) (decimal.Decimal, error) {
	h, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Zero, timesheeterrors.ErrInvalidHours
	}
	if h.IsNegative() || h.GreaterThan(maxWeekHours) || !h.Equal(h.Round(2)) {
		return decimal.Zero, timesheeterrors.ErrInvalidHours
	}
	return h, nil
}

func buildEntries(requestID, employeeID uuid.UUID, weekStart, weekEnd time.Time, lines []line, now time.Time) []Entry {
	entries := make([]Entry, 0, len(lines))
	for _, l := range lines {
		task := l.task
		entries = append(entries, Entry{
			ID:            uuid.New(),
			RequestID:     requestID,
			EmployeeID:    employeeID,
			TaskID:        task.ID,
			Task:          &task,
			EntryType:     task.TaskType,
			WeekStartDate: weekStart,
			WeekEndDate:   weekEnd,
			Hours:         l.hours,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return entries
}

func timesheetPayload(weekStart time.Time, total decimal.Decimal, count int) request.TimesheetPayload {
	return request.TimesheetPayload{
		WeekStartDate: dateutil.FormatDate(weekStart),
		TotalHours:    total.StringFixed(2),
		EntryCount:    count,
	}
}

func adjustable(status request.Status) bool {
	return status == request.StatusPending || status == request.StatusRejected
}

func (s *service) resolveType(ctx context.Context) (*requesttype.RequestType, error) {
	rt, err := s.types.GetByCode(ctx, s.typeCode)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return nil, timesheeterrors.ErrTimesheetTypeUnavailable
		}
		return nil, err
	}
	if rt.Category != requesttype.CategoryTimesheet {
		return nil, timesheeterrors.ErrTimesheetTypeUnavailable
	}
	if !rt.IsActive {
		return nil, requesttypeerrors.ErrRequestTypeInactive
	}
	return rt, nil
}

// load fetches a request through repo and hides anything that is not a timesheet.
func (s *service) load(ctx context.Context, repo request.Repository, id string) (*request.Request, error) {
	reqID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, timesheeterrors.ErrInvalidTimesheetID
	}
	r, err := repo.FindByID(ctx, reqID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if r.Category() != requesttype.CategoryTimesheet {
		return nil, timesheeterrors.ErrTimesheetNotFound
	}
	return r, nil
}

func (s *service) withEntries(ctx context.Context, r *request.Request) (TimesheetResponse, error) {
	entries, err := s.repo.FindEntries(ctx, r.ID)
	if err != nil {
		s.logger.Error("load timesheet entries failed", zap.String("request_id", r.ID.String()), zap.Error(err))
		return TimesheetResponse{}, err
	}
	return mapToResponse(*r, entries), nil
}

func (s *service) list(ctx context.Context, filter request.ListFilter, page, limit int) ([]TimesheetResponse, int64, error) {
	items, total, err := s.requests.List(ctx, filter, page, limit)
	if err != nil {
		s.logger.Error("list timesheets failed", zap.Error(err))
		return nil, 0, err
	}
	out := make([]TimesheetResponse, 0, len(items))
	for _, r := range items {
		out = append(out, mapToResponse(r, nil))
	}
	return out, total, nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, r *request.Request, eventType string) error {
	if s.outbox == nil {
		return nil
	}
	return request.EnqueueLifecycleEvent(ctx, s.outbox.WithTx(tx), r, eventType)
}
