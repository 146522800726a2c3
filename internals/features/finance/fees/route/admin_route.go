// file: internals/features/finance/fees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "kodingku_backend/internals/features/finance/fees/controller"
)

func FeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := feeController.NewAdminFeeController(db)
	fees := r.Group("/fee-records")
	{
		fees.Post("/", ctl.CreateFeeRecord)
		fees.Get("/", ctl.ListFeeRecords)
		fees.Patch("/:id", ctl.UpdateFeeRecord)
		fees.Post("/:id/installments/:seq/mark-paid", ctl.MarkInstallmentPaid)
	}
}
