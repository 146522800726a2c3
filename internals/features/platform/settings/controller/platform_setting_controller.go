// file: internals/features/platform/settings/controller/platform_setting_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kodingku_backend/internals/features/platform/settings/dto"
	settingModel "kodingku_backend/internals/features/platform/settings/model"
	"kodingku_backend/internals/features/platform/settings/service"
	helper "kodingku_backend/internals/helpers"
)

var validate = validator.New()

type PlatformSettingController struct {
	DB      *gorm.DB
	Service *service.PlatformSettingService
}

func NewPlatformSettingController(db *gorm.DB) *PlatformSettingController {
	return &PlatformSettingController{
		DB:      db,
		Service: service.NewPlatformSettingService(db),
	}
}

// =============================
// GET /api/a/platform-settings
// =============================
func (ctrl *PlatformSettingController) GetPlatformSettings(c *fiber.Ctx) error {
	m, err := ctrl.Service.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengaturan platform belum dibuat")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan platform")
	}
	return helper.JsonOK(c, "Pengaturan platform", dto.ToPlatformSettingResponse(m))
}

// ===============================
// PATCH /api/a/platform-settings
// ===============================
// Upsert: kalau baris belum ada, PATCH pertama sekaligus membuatnya
// dari default + field yang dikirim.
func (ctrl *PlatformSettingController) UpdatePlatformSettings(c *fiber.Ctx) error {
	var req dto.UpdatePlatformSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Service.Get()
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan platform")
		}
		m = &settingModel.PlatformSettingModel{
			PlatformSettingTrialDays:            7,
			PlatformSettingWarningDaysBeforeDue: 3,
			PlatformSettingGracePeriodDays:      5,
			PlatformSettingBlockUnpaidStudents:  true,
		}
	}

	dto.ApplyPlatformSettingUpdate(m, &req)

	if err := ctrl.Service.Save(m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan platform")
	}
	return helper.JsonUpdated(c, "Pengaturan platform diperbarui", dto.ToPlatformSettingResponse(m))
}
