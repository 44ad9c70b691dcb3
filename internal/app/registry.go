package app

import (
	"net/http"
	"os"

	"kampus-absensi/internal/adms"
	"kampus-absensi/internal/attendance"
	"kampus-absensi/internal/audit"
	"kampus-absensi/internal/auth"
	"kampus-absensi/internal/device"
	"kampus-absensi/internal/export"
	"kampus-absensi/internal/messaging/kafka"
	"kampus-absensi/internal/middleware"
	"kampus-absensi/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()
	sink := audit.NewZapSink(logger)

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	deviceRepo := device.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- ADMS Guard ---
	guard := adms.NewGuard(deviceRepo, adms.GuardConfig{
		AllowedIPs: parseAllowedIPs(),
		DevMode:    os.Getenv("APP_ENV") != "production",
	}, sink, logger)

	// --- Services ---
	admsService := adms.NewService(gormDB, guard, attendanceRepo, outboxRepo, sink, logger)
	attendanceService := attendance.NewService(attendanceRepo, sink)
	authService := auth.NewService(authRepo)
	deviceService := device.NewService(deviceRepo, sink)
	exportService := export.NewService(attendanceRepo, sink)
	reportService := report.NewService(attendanceRepo, sink)

	// --- Handlers ---
	admsHandler := adms.NewHandler(admsService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	deviceHandler := device.NewHandler(deviceService)
	exportHandler := export.NewHandler(exportService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	router.GET("/health", healthHandler(gormDB, rdb))

	// Endpoint mesin fingerprint, di luar /api/v1 agar path-nya stabil
	// untuk firmware yang tidak bisa dikonfigurasi ulang.
	adms.RegisterRoutes(router, admsHandler)

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		device.RegisterRoutes(api, deviceHandler)
		export.RegisterRoutes(api, exportHandler)
		report.RegisterRoutes(api, reportHandler)
	}

	return nil
}

// healthHandler memeriksa dependensi inti. Redis hanya menurunkan status ke
// degraded karena counter dashboard bersifat best effort.
func healthHandler(gormDB *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		checks := gin.H{"database": "ok", "redis": "ok"}

		sqlDB, err := gormDB.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status = "unhealthy"
			checks["database"] = "down"
		}

		if err := rdb.Ping(c.Request.Context()).Err(); err != nil {
			if status == "ok" {
				status = "degraded"
			}
			checks["redis"] = "down"
		}

		code := http.StatusOK
		if status == "unhealthy" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "checks": checks})
	}
}
