package rbac

import (
	"sort"
	"strings"

	"go-hrms/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsFor(role domain.Role) ([]string, error)
}

type service struct {
	enforcer *casbin.Enforcer
	logger   *zap.Logger
}

// NewService loads the built-in role policies into enforcer. The policy set is
// fixed after construction, so Enforce needs no locking.
func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	enforcer.ClearPolicy()
	for role, perms := range policies {
		for _, p := range perms {
			if _, err := enforcer.AddPolicy(string(role), p.Resource, p.Action); err != nil {
				return nil, err
			}
		}
	}
	for _, link := range inheritance {
		if _, err := enforcer.AddGroupingPolicy(string(link[0]), string(link[1])); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		s.logger.Warn("rbac enforce unknown role", zap.String("role", req.Role))
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(string(role), req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", string(role)),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", string(role)),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// PermissionsFor returns the sorted "resource:action" pairs a role holds, inherited ones included.
func (s *service) PermissionsFor(role domain.Role) ([]string, error) {
	rules, err := s.enforcer.GetImplicitPermissionsForUser(string(role))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rules))
	out := make([]string, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		key := strings.Join(rule[1:3], ":")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out, nil
}
