// file: internals/features/platform/languages/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	languageController "kodingku_backend/internals/features/platform/languages/controller"
)

func CodingLanguageAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := languageController.NewCodingLanguageController(db)
	l := r.Group("/languages")
	{
		l.Post("/", ctl.CreateLanguage)
		l.Patch("/:id", ctl.UpdateLanguage)
	}
}
