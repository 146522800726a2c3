// file: internals/route/base_routes.go
package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	databases "kodingku_backend/internals/databases"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Kodingku API & PostgreSQL connected successfully 🚀")
	})

	app.Get("/panic-test", func(c *fiber.Ctx) error {
		panic("Simulasi panic error!") // testing panic handler
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := databases.DB.DB()
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		// jumlah sesi live yang masih aktif, buat cek cepat dari dashboard
		var activeSessions int64
		if db != nil {
			_ = db.Table("live_sessions").Where("live_session_is_active = ?", true).Count(&activeSessions).Error
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":          serverStatus,
			"database":        dbStatus,
			"active_sessions": activeSessions,
			"server_time":     time.Now().Format(time.RFC3339),
			"uptime_seconds":  int(uptime),
			"environment":     os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
