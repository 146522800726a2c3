// file: internals/features/finance/payments/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "kodingku_backend/internals/features/finance/payments/controller"
	"kodingku_backend/internals/middlewares"
)

func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewUserCheckoutController(db)
	r.Post("/fees/:id/installments/:seq/checkout",
		middlewares.CheckoutRateLimiter(),
		ctl.CheckoutInstallment,
	)
}
