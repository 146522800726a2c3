// file: internals/features/platform/languages/controller/coding_language_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kodingku_backend/internals/features/platform/languages/dto"
	languageModel "kodingku_backend/internals/features/platform/languages/model"
	"kodingku_backend/internals/features/platform/languages/service"
	helper "kodingku_backend/internals/helpers"
)

var validate = validator.New()

type CodingLanguageController struct {
	DB      *gorm.DB
	Service *service.LanguageService
}

func NewCodingLanguageController(db *gorm.DB) *CodingLanguageController {
	return &CodingLanguageController{
		DB:      db,
		Service: service.NewLanguageService(db),
	}
}

// ==========================
// GET /api/p/languages
// ==========================
func (ctrl *CodingLanguageController) GetActiveLanguages(c *fiber.Ctx) error {
	ms, err := ctrl.Service.ListActive()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar bahasa")
	}
	return helper.JsonOK(c, "Daftar bahasa", dto.ToCodingLanguageResponses(ms))
}

// ==========================
// POST /api/a/languages
// ==========================
func (ctrl *CodingLanguageController) CreateLanguage(c *fiber.Ctx) error {
	var req dto.CreateCodingLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()

	// slug unik
	var count int64
	if err := ctrl.DB.Model(&languageModel.CodingLanguageModel{}).
		Where("coding_language_slug = ?", m.CodingLanguageSlug).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek slug bahasa")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Slug bahasa sudah dipakai")
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat bahasa")
	}
	return helper.JsonCreated(c, "Bahasa dibuat", dto.ToCodingLanguageResponse(m))
}

// ==========================
// PATCH /api/a/languages/:id
// ==========================
func (ctrl *CodingLanguageController) UpdateLanguage(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bahasa tidak valid")
	}

	var req dto.UpdateCodingLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m languageModel.CodingLanguageModel
	if err := ctrl.DB.First(&m, "coding_language_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Bahasa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil bahasa")
	}

	dto.ApplyCodingLanguageUpdate(&m, &req)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "Slug bahasa sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan bahasa")
	}
	return helper.JsonUpdated(c, "Bahasa diperbarui", dto.ToCodingLanguageResponse(&m))
}
