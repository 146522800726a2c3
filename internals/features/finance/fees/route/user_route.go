// file: internals/features/finance/fees/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "kodingku_backend/internals/features/finance/fees/controller"
)

func FeeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := feeController.NewUserFeeController(db)
	r.Get("/fees", ctl.GetMyFeeRecords)
}
