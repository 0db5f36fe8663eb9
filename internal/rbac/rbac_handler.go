package rbac

import (
	"net/http"
	"strings"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

type CheckRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type PermissionsResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// Check answers whether the caller's role may perform resource:action.
func (h *Handler) Check(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.AbortWithError(c, apperror.ErrUnauthorized)
		return
	}

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AbortWithError(c, apperror.MapValidationError(err))
		return
	}

	allowed, err := h.service.Enforce(domain.EnforceRequest{
		Role:     string(actor.Role),
		Resource: strings.TrimSpace(req.Resource),
		Action:   strings.TrimSpace(req.Action),
	})
	if err != nil {
		h.logger.Error("rbac check failed", zap.Error(err))
		response.AbortWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) MyPermissions(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.AbortWithError(c, apperror.ErrUnauthorized)
		return
	}

	perms, err := h.service.PermissionsFor(actor.Role)
	if err != nil {
		h.logger.Error("list permissions failed", zap.Error(err))
		response.AbortWithError(c, err)
		return
	}

	response.Success(c, http.StatusOK, PermissionsResponse{Role: string(actor.Role), Permissions: perms}, nil)
}
