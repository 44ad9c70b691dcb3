package report

import (
	"kampus-absensi/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.RoleMiddleware("ADMIN", "SUPER_ADMIN"))
	{
		reports.GET("/rekap", h.Summary)
		reports.GET("/rekap/bulanan", h.Monthly)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	dashboard.Use(middleware.RoleMiddleware("ADMIN", "SUPER_ADMIN"))
	{
		dashboard.GET("/summary", h.Dashboard)
	}
}
