package employee

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
	employees := r.Group("/employees")
	employees.Use(auth)
	{
		employees.GET("/me/reports",
			middleware.RBACAuthorize(rbacService, "employee", "read_reports"),
			handler.MyReports,
		)

		employees.GET("/:id",
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetByID,
		)
	}
}
