package requesttype

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	requesttypeerrors "go-hrms/internal/requesttype/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	ActiveCacheKey = "request_types:active"
	activeCacheTTL = time.Hour
)

//go:generate mockgen -source=requesttype_service.go -destination=mock/requesttype_service_mock.go -package=mock
type Service interface {
	ListActive(ctx context.Context) ([]RequestTypeResponse, error)
	GetByCode(ctx context.Context, code string) (*RequestType, error)
	GetByID(ctx context.Context, id string) (*RequestType, error)
	SetActive(ctx context.Context, code string, active bool) (RequestTypeResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService builds the registry. rdb may be nil, in which case every list hits the store.
func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("requesttype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("requesttype.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) ListActive(ctx context.Context) ([]RequestTypeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ActiveCacheKey).Result(); err == nil {
			var resp []RequestTypeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ActiveCacheKey, func() (interface{}, error) {
		types, err := s.repo.FindActive(ctx)
		if err != nil {
			s.logger.Error("list active request types failed", zap.Error(err))
			return nil, err
		}

		resp := mapToListResponse(types)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, ActiveCacheKey, data, activeCacheTTL).Err(); err != nil {
					s.logger.Warn("cache request types failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]RequestTypeResponse), nil
}

func (s *service) GetByCode(ctx context.Context, code string) (*RequestType, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, requesttypeerrors.ErrInvalidRequestType
	}
	rt, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return rt, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*RequestType, error) {
	rt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return rt, nil
}

func (s *service) SetActive(ctx context.Context, code string, active bool) (RequestTypeResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	s.logger.Debug("set request type active requested", zap.String("code", code), zap.Bool("active", active))

	if err := s.repo.SetActive(ctx, code, active); err != nil {
		return RequestTypeResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx)

	rt, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return RequestTypeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("set request type active success", zap.String("code", code), zap.Bool("active", active))
	return mapToResponse(*rt), nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ActiveCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate request type cache",
			zap.String("key", ActiveCacheKey),
			zap.Error(err),
		)
	}
}

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return requesttypeerrors.ErrRequestTypeNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return requesttypeerrors.ErrRequestTypeCodeExists
	default:
		return err
	}
}
