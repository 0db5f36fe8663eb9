package request_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/employee"
	"go-hrms/internal/request"
	"go-hrms/internal/requesttype"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type repoFixture struct {
	db   *gorm.DB
	repo request.Repository
	wfh  requesttype.RequestType
	pto  requesttype.RequestType
}

func setupRepoTest(t *testing.T) *repoFixture {
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

	require.NoError(t, db.AutoMigrate(&requesttype.RequestType{}, &employee.Employee{}, &request.Request{}))

	f := &repoFixture{
		db:   db,
		repo: request.NewRepository(db),
		wfh: requesttype.RequestType{
			ID: uuid.New(), Code: "WORK_FROM_HOME", Name: "Work From Home",
			Category: requesttype.CategoryOther, RequiresApproval: true, IsActive: true,
		},
		pto: requesttype.RequestType{
			ID: uuid.New(), Code: "PAID_LEAVE", Name: "Paid Leave",
			Category: requesttype.CategoryTimeOff, RequiresApproval: true, IsActive: true,
		},
	}
	require.NoError(t, db.Create(&f.wfh).Error)
	require.NoError(t, db.Create(&f.pto).Error)
	return f
}

func date(v string) *time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return &t
}

func (f *repoFixture) insert(t *testing.T, rt requesttype.RequestType, employeeID uuid.UUID, from, to string, createdAt time.Time) *request.Request {
	t.Helper()
	r := &request.Request{
		ID:                  uuid.New(),
		RequestTypeID:       rt.ID,
		RequesterEmployeeID: employeeID,
		Status:              request.StatusPending,
		RequestedAt:         createdAt,
		Reason:              "reason " + from,
		Payload:             []byte(`{}`),
		CreatedAt:           createdAt,
		UpdatedAt:           createdAt,
	}
	if from != "" {
		r.EffectiveFrom, r.EffectiveTo = date(from), date(to)
	}
	require.NoError(t, f.repo.Create(context.Background(), r))
	return r
}

func TestRequestRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	f := setupRepoTest(t)
	emp := uuid.New()
	created := f.insert(t, f.pto, emp, "2025-06-02", "2025-06-04", time.Now().UTC())

	got, err := f.repo.FindByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, emp, got.RequesterEmployeeID)
	assert.Equal(t, "PAID_LEAVE", got.TypeCode())
	assert.Equal(t, requesttype.CategoryTimeOff, got.Category())
	assert.Equal(t, "2025-06-02", got.EffectiveFrom.Format("2006-01-02"))

	_, err = f.repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRequestRepository_TransitionIsConditional(t *testing.T) {
	ctx := context.Background()
	f := setupRepoTest(t)
	created := f.insert(t, f.wfh, uuid.New(), "", "", time.Now().UTC())
	approver := uuid.New()
	comment := "ok"

	ok, err := f.repo.Transition(ctx, created.ID, request.StatusChange{
		To: request.StatusApproved, ApproverID: &approver, ApprovalComment: &comment, At: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.repo.Transition(ctx, created.ID, request.StatusChange{To: request.StatusCancelled, At: time.Now().UTC()})
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := f.repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, got.Status)
	assert.Equal(t, approver, *got.ApproverEmployeeID)
	assert.Equal(t, "ok", *got.ApprovalComment)
	assert.Nil(t, got.RejectionReason)
}

func TestRequestRepository_UpdateContent(t *testing.T) {
	ctx := context.Background()
	f := setupRepoTest(t)
	created := f.insert(t, f.pto, uuid.New(), "2025-06-02", "2025-06-04", time.Now().UTC())

	created.Reason = "new reason"
	created.EffectiveTo = date("2025-06-06")
	ok, err := f.repo.UpdateContent(ctx, created, []request.Status{request.StatusPending})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.repo.Transition(ctx, created.ID, request.StatusChange{To: request.StatusRejected, At: time.Now().UTC()})
	require.NoError(t, err)

	created.Reason = "too late"
	ok, err = f.repo.UpdateContent(ctx, created, []request.Status{request.StatusPending})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.repo.UpdateContent(ctx, created, []request.Status{request.StatusPending, request.StatusRejected})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "too late", got.Reason)
	assert.Equal(t, "2025-06-06", got.EffectiveTo.Format("2006-01-02"))
	assert.Equal(t, request.StatusRejected, got.Status)
}

func TestRequestRepository_ReopenOnlyRejected(t *testing.T) {
	ctx := context.Background()
	f := setupRepoTest(t)
	created := f.insert(t, f.wfh, uuid.New(), "", "", time.Now().UTC())

	ok, err := f.repo.Reopen(ctx, created.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, ok)

	approver := uuid.New()
	reason := "missing days"
	_, err = f.repo.Transition(ctx, created.ID, request.StatusChange{
		To: request.StatusRejected, ApproverID: &approver, RejectionReason: &reason, At: time.Now().UTC(),
	})
	require.NoError(t, err)

	ok, err = f.repo.Reopen(ctx, created.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, got.Status)
	assert.Nil(t, got.ApproverEmployeeID)
	assert.Nil(t, got.RejectionReason)

	ok, err = f.repo.Reopen(ctx, created.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRequestRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	f := setupRepoTest(t)
	alice, bob := uuid.New(), uuid.New()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	first := f.insert(t, f.pto, alice, "2025-06-02", "2025-06-04", base)
	second := f.insert(t, f.pto, alice, "2025-06-20", "2025-07-02", base.Add(time.Hour))
	third := f.insert(t, f.wfh, alice, "2025-06-05", "2025-06-05", base.Add(2*time.Hour))
	f.insert(t, f.wfh, bob, "", "", base.Add(3*time.Hour))

	t.Run("by employee newest first", func(t *testing.T) {
		items, total, err := f.repo.List(ctx, request.ListFilter{EmployeeID: &alice}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, items, 3)
		assert.Equal(t, third.ID, items[0].ID)
		assert.Equal(t, first.ID, items[2].ID)
		assert.Equal(t, "WORK_FROM_HOME", items[0].TypeCode())
	})

	t.Run("window must fit on each given side", func(t *testing.T) {
		items, total, err := f.repo.List(ctx, request.ListFilter{
			EmployeeID:    &alice,
			EffectiveFrom: date("2025-06-02"),
			EffectiveTo:   date("2025-06-30"),
		}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, r := range items {
			assert.NotEqual(t, second.ID, r.ID)
		}

		_, total, err = f.repo.List(ctx, request.ListFilter{EffectiveFrom: date("2025-06-05")}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("by type and category", func(t *testing.T) {
		_, total, err := f.repo.List(ctx, request.ListFilter{TypeCode: "WORK_FROM_HOME"}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		items, total, err := f.repo.List(ctx, request.ListFilter{Category: requesttype.CategoryTimeOff}, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, items, 1)
		assert.Equal(t, second.ID, items[0].ID)
	})

	t.Run("by reporting line", func(t *testing.T) {
		manager, dept := uuid.New(), uuid.New()
		require.NoError(t, f.db.Create(&employee.Employee{ID: alice, FullName: "Alice", ManagerID: &manager}).Error)
		require.NoError(t, f.db.Create(&employee.Employee{ID: bob, FullName: "Bob", DepartmentID: &dept}).Error)

		_, total, err := f.repo.List(ctx, request.ListFilter{ManagerID: &manager}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)

		_, total, err = f.repo.List(ctx, request.ListFilter{DepartmentID: &dept}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		_, total, err = f.repo.List(ctx, request.ListFilter{ManagerID: &manager, DepartmentID: &dept}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
	})
}

func TestRequestRepository_Counts(t *testing.T) {
	ctx := context.Background()
	f := setupRepoTest(t)
	emp := uuid.New()
	june := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	july := time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC)

	a := f.insert(t, f.pto, emp, "2025-06-20", "2025-06-21", june)
	f.insert(t, f.wfh, emp, "", "", june)
	f.insert(t, f.wfh, emp, "", "", july)
	_, err := f.repo.Transition(ctx, a.ID, request.StatusChange{To: request.StatusApproved, At: june})
	require.NoError(t, err)

	start, end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	filter := request.ListFilter{EmployeeID: &emp, CreatedFrom: &start, CreatedTo: &end}

	byStatus, err := f.repo.CountByStatus(ctx, filter)
	require.NoError(t, err)
	assert.ElementsMatch(t, []request.GroupCount{{Grp: "APPROVED", Cnt: 1}, {Grp: "PENDING", Cnt: 1}}, byStatus)

	byType, err := f.repo.CountByType(ctx, filter)
	require.NoError(t, err)
	assert.ElementsMatch(t, []request.GroupCount{{Grp: "PAID_LEAVE", Cnt: 1}, {Grp: "WORK_FROM_HOME", Cnt: 1}}, byType)

	byType, err = f.repo.CountByType(ctx, request.ListFilter{TypeCode: "WORK_FROM_HOME"})
	require.NoError(t, err)
	assert.Equal(t, []request.GroupCount{{Grp: "WORK_FROM_HOME", Cnt: 2}}, byType)
}
