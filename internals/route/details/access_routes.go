// file: internals/route/details/access_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AccessRoute "kodingku_backend/internals/features/access/route"
)

func AccessUserRoutes(r fiber.Router, db *gorm.DB) {
	AccessRoute.AccessUserRoutes(r, db)
}
