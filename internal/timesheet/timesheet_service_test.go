package timesheet_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/employee"
	"go-hrms/internal/request"
	requesterrors "go-hrms/internal/request/errors"
	"go-hrms/internal/requesttype"
	requesttypeerrors "go-hrms/internal/requesttype/errors"
	"go-hrms/internal/timesheet"
	timesheeterrors "go-hrms/internal/timesheet/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)

type typeMap map[string]*requesttype.RequestType

func (m typeMap) GetByCode(_ context.Context, code string) (*requesttype.RequestType, error) {
	rt, ok := m[code]
	if !ok {
		return nil, requesttypeerrors.ErrRequestTypeNotFound
	}
	return rt, nil
}

type fixture struct {
	db      *gorm.DB
	sqlDB   *sql.DB
	service timesheet.Service
	types   typeMap

	project  timesheet.Task
	vacation timesheet.Task
	retired  timesheet.Task
	other    requesttype.RequestType

	manager  domain.Actor
	admin    domain.Actor
	worker   domain.Actor
	outsider domain.Actor
	dept     uuid.UUID
}

func setupTest(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&requesttype.RequestType{},
		&employee.Employee{},
		&request.Request{},
		&timesheet.Task{},
		&timesheet.Entry{},
		&timesheet.Week{},
	))

	f := &fixture{
		db:       db,
		sqlDB:    sqlDB,
		manager:  domain.Actor{EmployeeID: uuid.New(), Role: domain.RoleManager},
		admin:    domain.Actor{EmployeeID: uuid.New(), Role: domain.RoleAdmin},
		worker:   domain.Actor{EmployeeID: uuid.New(), Role: domain.RoleEmployee},
		outsider: domain.Actor{EmployeeID: uuid.New(), Role: domain.RoleEmployee},
		dept:     uuid.New(),
	}

	weekly := &requesttype.RequestType{
		ID: uuid.New(), Code: timesheet.DefaultTypeCode, Name: "Weekly Timesheet",
		Category: requesttype.CategoryTimesheet, RequiresApproval: true, IsActive: true,
	}
	f.other = requesttype.RequestType{
		ID: uuid.New(), Code: "WORK_FROM_HOME", Name: "Work From Home",
		Category: requesttype.CategoryOther, RequiresApproval: true, IsActive: true,
	}
	require.NoError(t, db.Create(weekly).Error)
	require.NoError(t, db.Create(&f.other).Error)
	f.types = typeMap{weekly.Code: weekly, f.other.Code: &f.other}

	f.project = timesheet.Task{ID: uuid.New(), TaskCode: "PRJ-ALPHA", Name: "Alpha", TaskType: timesheet.TaskTypeProject, IsActive: true}
	f.vacation = timesheet.Task{ID: uuid.New(), TaskCode: "LV-ANNUAL", Name: "Annual leave", TaskType: timesheet.TaskTypeLeave, IsActive: true}
	f.retired = timesheet.Task{ID: uuid.New(), TaskCode: "PRJ-OLD", Name: "Old", TaskType: timesheet.TaskTypeProject}
	require.NoError(t, db.Create(&f.project).Error)
	require.NoError(t, db.Create(&f.vacation).Error)
	require.NoError(t, db.Create(&f.retired).Error)
	require.NoError(t, db.Model(&f.retired).Update("is_active", false).Error)

	managerID := f.manager.EmployeeID
	require.NoError(t, db.Create(&[]employee.Employee{
		{ID: f.worker.EmployeeID, FullName: "Worker", ManagerID: &managerID, DepartmentID: &f.dept},
		{ID: f.outsider.EmployeeID, FullName: "Outsider"},
		{ID: f.manager.EmployeeID, FullName: "Manager"},
	}).Error)

	clock := func() time.Time { return fixedNow }
	requests := request.NewRepository(db)
	decisions := request.NewService(sqlDB, requests, f.types, request.WithClock(clock))
	f.service = timesheet.NewService(sqlDB, timesheet.NewRepository(db), requests, decisions, f.types,
		timesheet.WithClock(clock),
		timesheet.WithAutoApproveRoles([]domain.Role{domain.RoleAdmin}),
	)
	return f
}

func (f *fixture) weekOf(week string, hours ...string) timesheet.SubmitTimesheetRequest {
	tasks := []timesheet.Task{f.project, f.vacation}
	req := timesheet.SubmitTimesheetRequest{WeekStartDate: week}
	for i, h := range hours {
		req.Entries = append(req.Entries, timesheet.EntryInput{TaskID: tasks[i].ID.String(), Hours: h})
	}
	return req
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates one request with its entries", func(t *testing.T) {
		f := setupTest(t)

		resp, err := f.service.Submit(ctx, f.worker, f.weekOf("2025-06-02", "37.5", "8"))

		require.NoError(t, err)
		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, "2025-06-02", resp.WeekStartDate)
		assert.Equal(t, "2025-06-08", resp.WeekEndDate)
		assert.Equal(t, "45.50", resp.TotalHours)
		assert.Equal(t, "timesheet", resp.Category)
		require.Len(t, resp.Entries, 2)
		assert.Equal(t, "PRJ-ALPHA", resp.Entries[0].TaskCode)
		assert.Equal(t, "leave", resp.Entries[1].EntryType)

		assert.Equal(t, int64(1), f.count(t, &request.Request{}))
		assert.Equal(t, int64(2), f.count(t, &timesheet.Entry{}))
		assert.Equal(t, int64(1), f.count(t, &timesheet.Week{}))
	})

	t.Run("second submission for the week conflicts", func(t *testing.T) {
		f := setupTest(t)
		_, err := f.service.Submit(ctx, f.worker, f.weekOf("2025-06-02", "40"))
		require.NoError(t, err)

		other := timesheet.SubmitTimesheetRequest{
			WeekStartDate: "2025-06-02",
			Entries:       []timesheet.EntryInput{{TaskID: f.vacation.ID.String(), Hours: "8"}},
		}
		_, err = f.service.Submit(ctx, f.worker, other)

		assert.ErrorIs(t, err, timesheeterrors.ErrWeekAlreadySubmitted)
		assert.Equal(t, int64(1), f.count(t, &request.Request{}))
		assert.Equal(t, int64(1), f.count(t, &timesheet.Entry{}))
	})

	t.Run("another employee may use the same week", func(t *testing.T) {
		f := setupTest(t)
		_, err := f.service.Submit(ctx, f.worker, f.weekOf("2025-06-02", "40"))
		require.NoError(t, err)

		_, err = f.service.Submit(ctx, f.outsider, f.weekOf("2025-06-02", "40"))
		assert.NoError(t, err)
	})

	t.Run("invalid batch writes nothing", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(f *fixture) timesheet.SubmitTimesheetRequest
			wantErr error
		}{
			{"hours above 168", func(f *fixture) timesheet.SubmitTimesheetRequest {
				return f.weekOf("2025-06-02", "40", "168.01")
			}, timesheeterrors.ErrInvalidHours},
			{"negative hours", func(f *fixture) timesheet.SubmitTimesheetRequest {
				return f.weekOf("2025-06-02", "-1")
			}, timesheeterrors.ErrInvalidHours},
			{"three decimals", func(f *fixture) timesheet.SubmitTimesheetRequest {
				return f.weekOf("2025-06-02", "7.125")
			}, timesheeterrors.ErrInvalidHours},
			{"not a monday", func(f *fixture) timesheet.SubmitTimesheetRequest {
				return f.weekOf("2025-06-03", "40")
			}, timesheeterrors.ErrWeekStartNotMonday},
			{"bad date", func(f *fixture) timesheet.SubmitTimesheetRequest {
				return f.weekOf("02/06/2025", "40")
			}, timesheeterrors.ErrInvalidWeekStart},
			{"no entries", func(f *fixture) timesheet.SubmitTimesheetRequest {
				return f.weekOf("2025-06-02")
			}, timesheeterrors.ErrEntriesRequired},
			{"duplicate task", func(f *fixture) timesheet.SubmitTimesheetRequest {
				req := f.weekOf("2025-06-02", "10")
				req.Entries = append(req.Entries, req.Entries[0])
				return req
			}, timesheeterrors.ErrDuplicateTask},
			{"inactive task", func(f *fixture) timesheet.SubmitTimesheetRequest {
				req := f.weekOf("2025-06-02", "10")
				req.Entries = append(req.Entries, timesheet.EntryInput{TaskID: f.retired.ID.String(), Hours: "2"})
				return req
			}, timesheeterrors.ErrUnknownTask},
			{"unknown task", func(f *fixture) timesheet.SubmitTimesheetRequest {
				req := f.weekOf("2025-06-02", "10")
				req.Entries[0].TaskID = uuid.NewString()
				return req
			}, timesheeterrors.ErrUnknownTask},
			{"malformed task id", func(f *fixture) timesheet.SubmitTimesheetRequest {
				req := f.weekOf("2025-06-02", "10")
				req.Entries[0].TaskID = "nope"
				return req
			}, timesheeterrors.ErrInvalidTaskID},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := setupTest(t)
				_, err := f.service.Submit(ctx, f.worker, tt.mutate(f))

				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, f.count(t, &request.Request{}))
				assert.Zero(t, f.count(t, &timesheet.Entry{}))
				assert.Zero(t, f.count(t, &timesheet.Week{}))
			})
		}
	})

	t.Run("auto-approve role", func(t *testing.T) {
		f := setupTest(t)

		resp, err := f.service.Submit(ctx, f.admin, f.weekOf("2025-06-02", "40"))

		require.NoError(t, err)
		assert.Equal(t, "APPROVED", resp.Status)
		require.NotNil(t, resp.ApproverEmployeeID)
		assert.Equal(t, f.admin.EmployeeID.String(), *resp.ApproverEmployeeID)
	})

	t.Run("type without approval records the submitter as approver", func(t *testing.T) {
		f := setupTest(t)
		f.types[timesheet.DefaultTypeCode].RequiresApproval = false

		resp, err := f.service.Submit(ctx, f.worker, f.weekOf("2025-06-02", "40"))

		require.NoError(t, err)
		assert.Equal(t, "APPROVED", resp.Status)
		require.NotNil(t, resp.ApproverEmployeeID)
		assert.Equal(t, f.worker.EmployeeID.String(), *resp.ApproverEmployeeID)

		var stored request.Request
		require.NoError(t, f.db.First(&stored, "id = ?", resp.ID).Error)
		require.NotNil(t, stored.ApproverEmployeeID)
		assert.Equal(t, f.worker.EmployeeID, *stored.ApproverEmployeeID)
	})

	t.Run("timesheet type missing", func(t *testing.T) {
		f := setupTest(t)
		delete(f.types, timesheet.DefaultTypeCode)

		_, err := f.service.Submit(ctx, f.worker, f.weekOf("2025-06-02", "40"))
		assert.ErrorIs(t, err, timesheeterrors.ErrTimesheetTypeUnavailable)
	})
}

func TestService_RejectAdjustResubmit(t *testing.T) {
	ctx := context.Background()
	f := setupTest(t)

	submitted, err := f.service.Submit(ctx, f.worker, f.weekOf("2025-06-02", "20"))
	require.NoError(t, err)

	rejected, err := f.service.Reject(ctx, f.manager, submitted.ID, "incomplete")
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "incomplete", *rejected.RejectionReason)

	reason := "added the missing days"
	adjusted, err := f.service.Adjust(ctx, f.worker, submitted.ID, timesheet.AdjustTimesheetRequest{
		Reason: &reason,
		Entries: []timesheet.EntryInput{
			{TaskID: f.project.ID.String(), Hours: "32"},
			{TaskID: f.vacation.ID.String(), Hours: "8.25"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", adjusted.Status)
	assert.Equal(t, "40.25", adjusted.TotalHours)
	assert.Equal(t, reason, adjusted.Reason)

	got, err := f.service.Get(ctx, f.worker, submitted.ID)
	require.NoError(t, err)
	assert.Len(t, got.Entries, 2)
	assert.Equal(t, "40.25", got.TotalHours)
	assert.Equal(t, int64(2), f.count(t, &timesheet.Entry{}))

	_, err = f.service.Approve(ctx, f.manager, submitted.ID, nil)
	assert.ErrorIs(t, err, requesterrors.ErrNotPending)

	resubmitted, err := f.service.Resubmit(ctx, f.worker, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", resubmitted.Status)
	assert.Nil(t, resubmitted.RejectionReason)
	assert.Nil(t, resubmitted.ApproverEmployeeID)
	assert.Equal(t, "40.25", resubmitted.TotalHours)
	assert.Len(t, resubmitted.Entries, 2)

	approved, err := f.service.Approve(ctx, f.manager, submitted.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", approved.Status)
	require.NotNil(t, approved.ApproverEmployeeID)
	assert.Equal(t, f.manager.EmployeeID.String(), *approved.ApproverEmployeeID)
	assert.Nil(t, approved.RejectionReason)
	assert.Equal(t, int64(1), f.count(t, &request.Request{}))
	assert.Equal(t, int64(1), f.count(t, &timesheet.Week{}))

	hours, err := f.service.MonthlyHours(ctx, f.worker, timesheet.MonthlyHoursQuery{Month: "2025-06"})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("40.25").Equal(hours.TotalHours))
}

func TestService_ResubmitGuards(t *testing.T) {
	ctx := context.Background()
	f := setupTest(t)

	submitted, err := f.service.Submit(ctx, f.worker, f.weekOf("2025-06-02", "40"))
	require.NoError(t, err)

	_, err = f.service.Resubmit(ctx, f.worker, submitted.ID)
	assert.ErrorIs(t, err, timesheeterrors.ErrNotResubmittable)

	_, err = f.service.Reject(ctx, f.manager, submitted.ID, "wrong project")
	require.NoError(t, err)

	_, err = f.service.Resubmit(ctx, f.outsider, submitted.ID)
	assert.ErrorIs(t, err, timesheeterrors.ErrNotOwner)

	_, err = f.service.Resubmit(ctx, f.worker, "not-a-uuid")
	assert.ErrorIs(t, err, timesheeterrors.ErrInvalidTimesheetID)

	_, err = f.service.Resubmit(ctx, f.worker, submitted.ID)
	require.NoError(t, err)

	_, err = f.service.Resubmit(ctx, f.worker, submitted.ID)
	assert.ErrorIs(t, err, timesheeterrors.ErrNotResubmittable)

	cancelled, err := f.service.Cancel(ctx, f.worker, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", cancelled.Status)
	assert.Zero(t, f.count(t, &timesheet.Week{}))
}

func TestService_AdjustGuards(t *testing.T) {
	ctx := context.Background()
	f := setupTest(t)
	entries := []timesheet.EntryInput{{TaskID: f.project.ID.String(), Hours: "10"}}

	submitted, err := f.service.Submit(ctx, f.worker, f.weekOf("2025-06-02", "40"))
	require.NoError(t, err)

	_, err = f.service.Adjust(ctx, f.outsider, submitted.ID, timesheet.AdjustTimesheetRequest{Entries: entries})
	assert.ErrorIs(t, err, timesheeterrors.ErrNotOwner)

	_, err = f.service.Adjust(ctx, f.worker, submitted.ID, timesheet.AdjustTimesheetRequest{
		Entries: []timesheet.EntryInput{{TaskID: f.project.ID.String(), Hours: "200"}},
	})
	assert.ErrorIs(t, err, timesheeterrors.ErrInvalidHours)

	_, err = f.service.Approve(ctx, f.manager, submitted.ID, nil)
	require.NoError(t, err)

	_, err = f.service.Adjust(ctx, f.worker, submitted.ID, timesheet.AdjustTimesheetRequest{Entries: entries})
	assert.ErrorIs(t, err, timesheeterrors.ErrNotAdjustable)

	_, err = f.service.Adjust(ctx, f.worker, uuid.NewString(), timesheet.AdjustTimesheetRequest{Entries: entries})
	assert.ErrorIs(t, err, timesheeterrors.ErrTimesheetNotFound)
}

func TestService_Decisions(t *testing.T) {
	ctx := context.Background()
	f := setupTest(t)

	submitted, err := f.service.Submit(ctx, f.worker, f.weekOf("2025-06-02", "40"))
	require.NoError(t, err)

	_, err = f.service.Approve(ctx, f.outsider, submitted.ID, nil)
	assert.ErrorIs(t, err, requesterrors.ErrApproverRoleRequired)

	comment := "thanks"
	approved, err := f.service.Approve(ctx, f.manager, submitted.ID, &comment)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", approved.Status)
	assert.Len(t, approved.Entries, 1)

	_, err = f.service.Reject(ctx, f.manager, submitted.ID, "too late now")
	assert.ErrorIs(t, err, requesterrors.ErrNotPending)

	mine, err := f.service.Submit(ctx, f.manager, f.weekOf("2025-06-02", "40"))
	require.NoError(t, err)
	_, err = f.service.Approve(ctx, f.manager, mine.ID, nil)
	assert.ErrorIs(t, err, requesterrors.ErrSelfDecision)
}

func TestService_DecisionsIgnoreOtherCategories(t *testing.T) {
	f := setupTest(t)
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	r := request.Request{
		ID: uuid.New(), RequestTypeID: f.other.ID, RequesterEmployeeID: f.worker.EmployeeID,
		Status: request.StatusPending, RequestedAt: fixedNow, EffectiveFrom: &from, EffectiveTo: &from,
		Reason: "home", CreatedAt: fixedNow, UpdatedAt: fixedNow,
	}
	require.NoError(t, f.db.Create(&r).Error)

	_, err := f.service.Approve(context.Background(), f.manager, r.ID.String(), nil)
	assert.ErrorIs(t, err, timesheeterrors.ErrTimesheetNotFound)

	var stored request.Request
	require.NoError(t, f.db.First(&stored, "id = ?", r.ID).Error)
	assert.Equal(t, request.StatusPending, stored.Status)
}

func TestService_CancelReleasesWeek(t *testing.T) {
	ctx := context.Background()
	f := setupTest(t)

	submitted, err := f.service.Submit(ctx, f.worker, f.weekOf("2025-06-02", "40", "2"))
	require.NoError(t, err)

	_, err = f.service.Cancel(ctx, f.outsider, submitted.ID)
	assert.ErrorIs(t, err, timesheeterrors.ErrNotOwner)

	cancelled, err := f.service.Cancel(ctx, f.worker, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", cancelled.Status)
	assert.Zero(t, f.count(t, &timesheet.Entry{}))
	assert.Zero(t, f.count(t, &timesheet.Week{}))

	_, err = f.service.Cancel(ctx, f.worker, submitted.ID)
	assert.ErrorIs(t, err, requesterrors.ErrNotPending)

	_, err = f.service.Submit(ctx, f.worker, f.weekOf("2025-06-02", "38"))
	assert.NoError(t, err)
}

func TestService_Reads(t *testing.T) {
	ctx := context.Background()
	f := setupTest(t)

	first, err := f.service.Submit(ctx, f.worker, f.weekOf("2025-06-02", "40"))
	require.NoError(t, err)
	_, err = f.service.Submit(ctx, f.worker, f.weekOf("2025-06-09", "36"))
	require.NoError(t, err)
	_, err = f.service.Submit(ctx, f.outsider, f.weekOf("2025-06-02", "40"))
	require.NoError(t, err)

	t.Run("get is limited to owner and approvers", func(t *testing.T) {
		_, err := f.service.Get(ctx, f.outsider, first.ID)
		assert.ErrorIs(t, err, requesterrors.ErrNotVisible)

		got, err := f.service.Get(ctx, f.manager, first.ID)
		assert.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)
	})

	t.Run("list mine", func(t *testing.T) {
		items, total, err := f.service.ListMine(ctx, f.worker, timesheet.ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, items, 2)

		_, _, err = f.service.ListMine(ctx, f.worker, timesheet.ListQuery{Status: "DONE"})
		assert.ErrorIs(t, err, requesterrors.ErrInvalidStatus)
	})

	t.Run("pending approvals follow the reporting line", func(t *testing.T) {
		items, total, err := f.service.PendingApprovals(ctx, f.manager, timesheet.PendingQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, item := range items {
			assert.Equal(t, f.worker.EmployeeID.String(), item.RequesterEmployeeID)
		}

		_, total, err = f.service.PendingApprovals(ctx, f.admin, timesheet.PendingQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)

		_, total, err = f.service.PendingApprovals(ctx, f.admin, timesheet.PendingQuery{DepartmentID: f.dept.String()})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		_, _, err = f.service.PendingApprovals(ctx, f.worker, timesheet.PendingQuery{})
		assert.ErrorIs(t, err, requesterrors.ErrApproverRoleRequired)

		_, _, err = f.service.PendingApprovals(ctx, f.admin, timesheet.PendingQuery{ApproverID: "x"})
		assert.ErrorIs(t, err, timesheeterrors.ErrInvalidApproverID)
	})
}

func TestService_MonthlyHours(t *testing.T) {
	ctx := context.Background()
	f := setupTest(t)

	june, err := f.service.Submit(ctx, f.worker, f.weekOf("2025-06-02", "37.5", "2.25"))
	require.NoError(t, err)
	_, err = f.service.Approve(ctx, f.manager, june.ID, nil)
	require.NoError(t, err)

	// Pending weeks do not count.
	_, err = f.service.Submit(ctx, f.worker, f.weekOf("2025-06-09", "40"))
	require.NoError(t, err)

	// Approved, but the week starts in July.
	july, err := f.service.Submit(ctx, f.worker, f.weekOf("2025-07-07", "40"))
	require.NoError(t, err)
	_, err = f.service.Approve(ctx, f.manager, july.ID, nil)
	require.NoError(t, err)

	resp, err := f.service.MonthlyHours(ctx, f.worker, timesheet.MonthlyHoursQuery{Month: "2025-06"})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("39.75").Equal(resp.TotalHours), resp.TotalHours.String())

	resp, err = f.service.MonthlyHours(ctx, f.manager, timesheet.MonthlyHoursQuery{
		EmployeeID: f.worker.EmployeeID.String(),
		Month:      "2025-06",
	})
	require.NoError(t, err)
	assert.Equal(t, f.worker.EmployeeID.String(), resp.EmployeeID)

	_, err = f.service.MonthlyHours(ctx, f.outsider, timesheet.MonthlyHoursQuery{
		EmployeeID: f.worker.EmployeeID.String(),
		Month:      "2025-06",
	})
	assert.ErrorIs(t, err, requesterrors.ErrListScope)

	_, err = f.service.MonthlyHours(ctx, f.worker, timesheet.MonthlyHoursQuery{Month: "June"})
	assert.ErrorIs(t, err, timesheeterrors.ErrInvalidMonth)
}

func TestParseHours(t *testing.T) {
	for _, v := range []string{"0", "7.5", "8.25", "168", " 40 "} {
		_, err := timesheet.ParseHours(v)
		assert.NoError(t, err, v)
	}
	for _, v := range []string{"", "abc", "-0.5", "168.5", "1.001"} {
		_, err := timesheet.ParseHours(v)
		assert.ErrorIs(t, err, timesheeterrors.ErrInvalidHours, v)
	}
}
