package requesttype

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
) {
	types := r.Group("/request-types")
	types.Use(auth)
	{
		types.GET("", middleware.RBACAuthorize(rbacService, "request_type", "read"), handler.ListActive)
		types.GET("/:code", middleware.RBACAuthorize(rbacService, "request_type", "read"), handler.GetByCode)
		types.PATCH("/:code", middleware.RBACAuthorize(rbacService, "request_type", "manage"), handler.SetActive)
	}
}
