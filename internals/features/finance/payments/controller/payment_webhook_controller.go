// file: internals/features/finance/payments/controller/payment_webhook_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentService "kodingku_backend/internals/features/finance/payments/service"
	helper "kodingku_backend/internals/helpers"
)

type PaymentWebhookController struct {
	DB *gorm.DB
}

func NewPaymentWebhookController(db *gorm.DB) *PaymentWebhookController {
	return &PaymentWebhookController{DB: db}
}

// ======================================
// POST /api/payments/notification
// ======================================
// Endpoint publik yang dipanggil server Midtrans (di-skip auth middleware).
func (ctrl *PaymentWebhookController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid webhook")
	}

	log.Println("Received webhook:", body)

	db, ok := c.Locals("db").(*gorm.DB)
	if !ok {
		db = ctrl.DB
	}

	if err := paymentService.HandleInstallmentStatusWebhook(db, body); err != nil {
		log.Println("[ERROR] Webhook gagal:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Webhook tidak dapat diproses")
	}

	return helper.JsonOK(c, "Webhook diproses", nil)
}
