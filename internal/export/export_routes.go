package export

import (
	"kampus-absensi/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	exports := r.Group("/export")
	exports.Use(middleware.AuthMiddleware())
	exports.Use(middleware.RoleMiddleware("ADMIN", "SUPER_ADMIN"))
	{
		exports.GET("/:format", h.Export)
	}
}
