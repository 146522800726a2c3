// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	FeeRoute "kodingku_backend/internals/features/finance/fees/route"
	PaymentRoute "kodingku_backend/internals/features/finance/payments/route"
)

// WebhookRoutes dipasang langsung di /api TANPA auth (midtrans yang manggil).
func WebhookRoutes(r fiber.Router, db *gorm.DB) {
	PaymentRoute.PaymentWebhookRoutes(r, db)
}

func FinanceUserRoutes(r fiber.Router, db *gorm.DB) {
	FeeRoute.FeeUserRoutes(r, db)
	PaymentRoute.PaymentUserRoutes(r, db)
}

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	FeeRoute.FeeAdminRoutes(r, db)
}
