package attendance

import (
	"kampus-absensi/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	attendances.Use(middleware.RoleMiddleware("ADMIN", "SUPER_ADMIN"))
	{
		attendances.GET("", h.GetAll)
		attendances.GET("/dosen", h.GetDosen)
		attendances.GET("/karyawan", h.GetKaryawan)
		attendances.GET("/:id/deleted", h.GetDeleted)
		attendances.DELETE("/:id", h.Delete)
	}
}
