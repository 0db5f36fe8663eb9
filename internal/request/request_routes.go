package request

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
	requests := r.Group("/requests")
	requests.Use(auth)
	{
		requests.POST("", guards.Submit(
			middleware.RBACAuthorize(rbacService, "request", "create"),
			handler.Create,
		)...)

		requests.GET("",
			middleware.RBACAuthorize(rbacService, "request", "read"),
			handler.List,
		)

		requests.GET("/summary",
			middleware.RBACAuthorize(rbacService, "request", "read"),
			handler.Summary,
		)

		requests.GET("/:id",
			middleware.RBACAuthorize(rbacService, "request", "read"),
			handler.GetByID,
		)

		requests.PATCH("/:id", guards.Mutate(
			middleware.RBACAuthorize(rbacService, "request", "update"),
			handler.Update,
		)...)

		requests.POST("/:id/cancel", guards.Mutate(
			middleware.RBACAuthorize(rbacService, "request", "cancel"),
			handler.Cancel,
		)...)

		requests.POST("/:id/approve", guards.Mutate(
			middleware.RBACAuthorize(rbacService, "request", "approve"),
			handler.Approve,
		)...)

		requests.POST("/:id/reject", guards.Mutate(
			middleware.RBACAuthorize(rbacService, "request", "approve"),
			handler.Reject,
		)...)
	}
}
