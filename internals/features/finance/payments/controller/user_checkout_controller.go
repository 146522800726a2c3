// file: internals/features/finance/payments/controller/user_checkout_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeService "kodingku_backend/internals/features/finance/fees/service"
	paymentService "kodingku_backend/internals/features/finance/payments/service"
	userService "kodingku_backend/internals/features/users/user/service"
	helper "kodingku_backend/internals/helpers"
)

type UserCheckoutController struct {
	DB    *gorm.DB
	Fees  *feeService.FeeService
	Users *userService.UserService
}

func NewUserCheckoutController(db *gorm.DB) *UserCheckoutController {
	return &UserCheckoutController{
		DB:    db,
		Fees:  feeService.NewFeeService(db),
		Users: userService.NewUserService(db),
	}
}

// ========================================================
// POST /api/u/fees/:id/installments/:seq/checkout
// ========================================================
// Student menerbitkan Snap token untuk satu cicilan yang belum dibayar.
func (ctrl *UserCheckoutController) CheckoutInstallment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	feeID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID fee record tidak valid")
	}
	seq, err := c.ParamsInt("seq")
	if err != nil || seq < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor cicilan tidak valid")
	}

	rec, err := ctrl.Fees.FindByID(feeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee record tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil fee record")
	}
	if rec.FeeRecordStudentID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Fee record ini bukan milikmu")
	}

	items, err := rec.DecodeInstallments()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Data cicilan rusak")
	}
	idx := -1
	for i := range items {
		if items[i].Seq == seq {
			idx = i
			break
		}
	}
	if idx < 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cicilan tidak ditemukan")
	}
	installment := items[idx]
	if installment.IsPaid {
		return helper.JsonError(c, fiber.StatusConflict, "Cicilan sudah dibayar")
	}

	user, err := ctrl.Users.GetByID(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	orderID := paymentService.BuildInstallmentOrderID(rec.FeeRecordID, seq, time.Now())
	itemName := fmt.Sprintf("%s - Cicilan %d", rec.FeeRecordTitle, seq)

	token, redirectURL, err := paymentService.GenerateInstallmentSnapToken(orderID, &installment, itemName, paymentService.CustomerInput{
		Name:  user.DisplayName(),
		Email: user.Email,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi Midtrans")
	}

	if err := ctrl.Fees.AttachOrderID(rec, seq, orderID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan order id")
	}

	return helper.JsonOK(c, "Snap token dibuat", fiber.Map{
		"order_id":     orderID,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}
