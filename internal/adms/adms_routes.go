package adms

import (
	"kampus-absensi/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	group := r.Group("/adms")
	{
		// 10 req/detik per IP: satu mesin mengirim batch kecil saat sinkron
		group.POST("/push", middleware.RateLimitByIP(rate.Limit(10), 20), h.Push)
		group.GET("/health", h.Health)
	}
}
