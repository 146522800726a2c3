// file: internals/route/details/live_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	LiveSessionRoute "kodingku_backend/internals/features/live/sessions/route"
)

func LiveUserRoutes(r fiber.Router, db *gorm.DB) {
	LiveSessionRoute.LiveSessionUserRoutes(r, db)
}

func LiveTrainerRoutes(r fiber.Router, db *gorm.DB) {
	LiveSessionRoute.LiveSessionTrainerRoutes(r, db)
}
