package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kodingku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan yang benar:
// recovery paling luar, lalu CORS, request logger, rate limiter global,
// dan koneksi DB di Locals (dipakai handler webhook).
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(DBMiddleware(db))
}
