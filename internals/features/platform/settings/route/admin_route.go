// file: internals/features/platform/settings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingController "kodingku_backend/internals/features/platform/settings/controller"
)

func PlatformSettingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := settingController.NewPlatformSettingController(db)
	s := r.Group("/platform-settings")
	{
		s.Get("/", ctl.GetPlatformSettings)
		s.Patch("/", ctl.UpdatePlatformSettings)
	}
}
