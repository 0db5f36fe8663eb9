package requesttype_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/requesttype"
	requesttypeerrors "go-hrms/internal/requesttype/errors"
	"go-hrms/internal/requesttype/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   requesttype.Service
	repo      *mock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	repo := mock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:   requesttype.NewService(repo, rdb),
		repo:      repo,
		redismock: redisMock,
	}
}

func TestRequestTypeService_ListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the store", func(t *testing.T) {
		deps := setupServiceTest(t)
		cached := []requesttype.RequestTypeResponse{
			{ID: uuid.New().String(), Code: "PAID_LEAVE", Name: "Paid Leave", Category: requesttype.CategoryTimeOff, IsActive: true},
		}
		data, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(requesttype.ActiveCacheKey).SetVal(string(data))
		deps.repo.EXPECT().FindActive(gomock.Any()).Times(0)

		resp, err := deps.service.ListActive(ctx)

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		types := []requesttype.RequestType{
			{ID: uuid.New(), Code: "PROFILE_ID_CHANGE", Name: "ID Change", Category: requesttype.CategoryProfile, RequiresApproval: true, IsActive: true},
			{ID: uuid.New(), Code: "PAID_LEAVE", Name: "Paid Leave", Category: requesttype.CategoryTimeOff, RequiresApproval: true, IsActive: true},
		}
		expected := []requesttype.RequestTypeResponse{
			{ID: types[0].ID.String(), Code: "PROFILE_ID_CHANGE", Name: "ID Change", Category: requesttype.CategoryProfile, RequiresApproval: true, IsActive: true},
			{ID: types[1].ID.String(), Code: "PAID_LEAVE", Name: "Paid Leave", Category: requesttype.CategoryTimeOff, RequiresApproval: true, IsActive: true},
		}
		data, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(requesttype.ActiveCacheKey).RedisNil()
		deps.repo.EXPECT().FindActive(gomock.Any()).Return(types, nil).Times(1)
		deps.redismock.ExpectSet(requesttype.ActiveCacheKey, data, time.Hour).SetVal("OK")

		resp, err := deps.service.ListActive(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("store error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(requesttype.ActiveCacheKey).RedisNil()
		deps.repo.EXPECT().FindActive(gomock.Any()).Return(nil, errors.New("connection lost"))

		resp, err := deps.service.ListActive(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("works without redis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := requesttype.NewService(repo, nil)
		repo.EXPECT().FindActive(gomock.Any()).Return([]requesttype.RequestType{}, nil)

		resp, err := svc.ListActive(ctx)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestRequestTypeService_GetByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes the code", func(t *testing.T) {
		deps := setupServiceTest(t)
		rt := &requesttype.RequestType{ID: uuid.New(), Code: "PAID_LEAVE", IsActive: true}
		deps.repo.EXPECT().FindByCode(gomock.Any(), "PAID_LEAVE").Return(rt, nil)

		got, err := deps.service.GetByCode(ctx, " paid_leave ")

		assert.NoError(t, err)
		assert.Equal(t, rt, got)
	})

	t.Run("miss maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByCode(gomock.Any(), "NOPE").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByCode(ctx, "NOPE")

		assert.ErrorIs(t, err, requesttypeerrors.ErrRequestTypeNotFound)
	})

	t.Run("empty code is invalid", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetByCode(ctx, "  ")

		assert.ErrorIs(t, err, requesttypeerrors.ErrInvalidRequestType)
	})
}

func TestRequestTypeService_SetActive(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().SetActive(gomock.Any(), "WORK_FROM_HOME", false).Return(nil)
		deps.redismock.ExpectDel(requesttype.ActiveCacheKey).SetVal(1)
		deps.repo.EXPECT().FindByCode(gomock.Any(), "WORK_FROM_HOME").
			Return(&requesttype.RequestType{ID: uuid.New(), Code: "WORK_FROM_HOME", IsActive: false}, nil)

		resp, err := deps.service.SetActive(ctx, "work_from_home", false)

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("unknown code", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().SetActive(gomock.Any(), "NOPE", true).Return(gorm.ErrRecordNotFound)

		_, err := deps.service.SetActive(ctx, "NOPE", true)

		assert.ErrorIs(t, err, requesttypeerrors.ErrRequestTypeNotFound)
	})
}
