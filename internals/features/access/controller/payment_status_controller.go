// file: internals/features/access/controller/payment_status_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accessService "kodingku_backend/internals/features/access/service"
	helper "kodingku_backend/internals/helpers"
)

type PaymentStatusController struct {
	DB    *gorm.DB
	Guard *accessService.PaymentGuardService
}

func NewPaymentStatusController(db *gorm.DB) *PaymentStatusController {
	return &PaymentStatusController{
		DB:    db,
		Guard: accessService.NewPaymentGuardService(db),
	}
}

// GetMyPaymentStatus
// GET /api/u/payment-status
// Dipakai FE untuk menentukan blocked view / advisory. Tidak pernah 500:
// guard selalu fail-open.
func (ctrl *PaymentStatusController) GetMyPaymentStatus(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	status := ctrl.Guard.CheckStudentPaymentStatus(userID)
	return helper.JsonOK(c, "Status akses berhasil diambil", status)
}
