// file: internals/route/details/platform_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kodingku_backend/internals/constants"
	LanguageRoute "kodingku_backend/internals/features/platform/languages/route"
	SettingRoute "kodingku_backend/internals/features/platform/settings/route"
	authMiddleware "kodingku_backend/internals/middlewares/auth"
)

func PlatformPublicRoutes(r fiber.Router, db *gorm.DB) {
	LanguageRoute.CodingLanguagePublicRoutes(r, db)
}

// PlatformAdminRoutes: group /api/a sudah manager+, pengaturan platform dan
// registry bahasa dikunci lebih ketat ke admin saja.
func PlatformAdminRoutes(r fiber.Router, db *gorm.DB) {
	adminOnly := r.Group("/",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("pengaturan platform"), constants.AdminOnly),
	)
	SettingRoute.PlatformSettingAdminRoutes(adminOnly, db)
	LanguageRoute.CodingLanguageAdminRoutes(adminOnly, db)
}
