package device

import (
	"kampus-absensi/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	devices := r.Group("/devices")
	devices.Use(middleware.AuthMiddleware())
	devices.Use(middleware.RoleMiddleware("ADMIN", "SUPER_ADMIN"))
	{
		devices.GET("", h.GetAll)
		devices.POST("", h.Create)
		devices.PATCH("/:id", h.Update)
		devices.DELETE("/:id", h.Deactivate)
	}
}
