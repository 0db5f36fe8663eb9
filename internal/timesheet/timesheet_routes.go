package timesheet

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
	timesheets := r.Group("/timesheets")
	timesheets.Use(auth)
	{
		timesheets.GET("/tasks",
			middleware.RBACAuthorize(rbacService, "timesheet", "read"),
			handler.ListTasks,
		)

		timesheets.POST("", guards.Submit(
			middleware.RBACAuthorize(rbacService, "timesheet", "submit"),
			handler.Submit,
		)...)

		timesheets.GET("",
			middleware.RBACAuthorize(rbacService, "timesheet", "read"),
			handler.ListMine,
		)

		timesheets.GET("/pending",
			middleware.RBACAuthorize(rbacService, "timesheet", "approve"),
			handler.Pending,
		)

		timesheets.GET("/hours",
			middleware.RBACAuthorize(rbacService, "timesheet", "read"),
			handler.MonthlyHours,
		)

		timesheets.GET("/:id",
			middleware.RBACAuthorize(rbacService, "timesheet", "read"),
			handler.GetByID,
		)

		timesheets.PUT("/:id/entries", guards.Mutate(
			middleware.RBACAuthorize(rbacService, "timesheet", "adjust"),
			handler.Adjust,
		)...)

		timesheets.POST("/:id/resubmit", guards.Mutate(
			middleware.RBACAuthorize(rbacService, "timesheet", "submit"),
			handler.Resubmit,
		)...)

		timesheets.POST("/:id/cancel", guards.Mutate(
			middleware.RBACAuthorize(rbacService, "timesheet", "cancel"),
			handler.Cancel,
		)...)

		timesheets.POST("/:id/approve", guards.Mutate(
			middleware.RBACAuthorize(rbacService, "timesheet", "approve"),
			handler.Approve,
		)...)

		timesheets.POST("/:id/reject", guards.Mutate(
			middleware.RBACAuthorize(rbacService, "timesheet", "approve"),
			handler.Reject,
		)...)
	}
}
