// file: internals/features/platform/languages/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	languageController "kodingku_backend/internals/features/platform/languages/controller"
)

func CodingLanguagePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := languageController.NewCodingLanguageController(db)
	r.Get("/languages", ctl.GetActiveLanguages)
}
