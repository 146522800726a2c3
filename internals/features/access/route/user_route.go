// file: internals/features/access/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accessController "kodingku_backend/internals/features/access/controller"
)

func AccessUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := accessController.NewPaymentStatusController(db)
	r.Get("/payment-status", ctrl.GetMyPaymentStatus)
}
