// file: internals/features/finance/payments/route/webhook_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "kodingku_backend/internals/features/finance/payments/controller"
)

// PaymentWebhookRoutes dipasang TANPA auth: dipanggil server Midtrans.
func PaymentWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentWebhookController(db)
	api.Post("/payments/notification", ctl.HandleMidtransNotification)
}
