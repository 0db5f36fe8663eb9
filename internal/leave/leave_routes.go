package leave

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
	guards middleware.WriteGuards,
) {
	leave := r.Group("/leave")
	leave.Use(auth)
	{
		leave.GET("/balances",
			middleware.RBACAuthorize(rbacService, "leave", "read"),
			handler.Balances,
		)
		leave.PUT("/balances", guards.Mutate(
			middleware.RBACAuthorize(rbacService, "leave", "manage"),
			handler.SetEntitlement,
		)...)

		leave.GET("/time-off",
			middleware.RBACAuthorize(rbacService, "leave", "read"),
			handler.History,
		)
		leave.POST("/time-off", guards.Submit(
			middleware.RBACAuthorize(rbacService, "leave", "submit"),
			handler.Submit,
		)...)
		leave.POST("/time-off/:id/cancel", guards.Mutate(
			middleware.RBACAuthorize(rbacService, "leave", "cancel"),
			handler.Cancel,
		)...)
	}
}
