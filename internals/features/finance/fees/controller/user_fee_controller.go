// file: internals/features/finance/fees/controller/user_fee_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kodingku_backend/internals/features/finance/fees/dto"
	"kodingku_backend/internals/features/finance/fees/service"
	helper "kodingku_backend/internals/helpers"
)

type UserFeeController struct {
	DB      *gorm.DB
	Service *service.FeeService
}

func NewUserFeeController(db *gorm.DB) *UserFeeController {
	return &UserFeeController{DB: db, Service: service.NewFeeService(db)}
}

// ==========================
// GET /api/u/fees
// ==========================
// Student melihat fee record miliknya sendiri (aktif maupun riwayat).
func (ctrl *UserFeeController) GetMyFeeRecords(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ms, err := ctrl.Service.ListForStudent(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil fee record")
	}

	resps := make([]dto.FeeRecordResponse, 0, len(ms))
	for i := range ms {
		resps = append(resps, *dto.ToFeeRecordResponse(&ms[i], ctrl.Service.NextUnpaidInstallment(&ms[i])))
	}
	return helper.JsonOK(c, "Fee record kamu", resps)
}
