// file: internals/features/finance/fees/controller/admin_fee_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kodingku_backend/internals/features/finance/fees/dto"
	feeModel "kodingku_backend/internals/features/finance/fees/model"
	"kodingku_backend/internals/features/finance/fees/service"
	helper "kodingku_backend/internals/helpers"
)

var validate = validator.New()

type AdminFeeController struct {
	DB      *gorm.DB
	Service *service.FeeService
}

func NewAdminFeeController(db *gorm.DB) *AdminFeeController {
	return &AdminFeeController{DB: db, Service: service.NewFeeService(db)}
}

// whitelist kolom sorting list admin
func buildOrderClause(sortBy, order string) string {
	col := "fee_record_created_at"
	switch sortBy {
	case "updated_at":
		col = "fee_record_updated_at"
	case "title":
		col = "fee_record_title"
	case "total_amount":
		col = "fee_record_total_amount"
	}
	dir := "DESC"
	if strings.EqualFold(order, "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}

// ==========================
// POST /api/a/fee-records
// ==========================
func (ctrl *AdminFeeController) CreateFeeRecord(c *fiber.Ctx) error {
	var req dto.CreateFeeRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cicilan tidak valid")
	}

	// satu record aktif per student: matikan yang lama dalam satu transaksi
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return ctrl.Service.DeactivateOthers(tx, m.FeeRecordStudentID, m.FeeRecordID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat fee record")
	}

	return helper.JsonCreated(c, "Fee record dibuat", dto.ToFeeRecordResponse(m, ctrl.Service.NextUnpaidInstallment(m)))
}

// ==========================
// GET /api/a/fee-records
// ==========================
// Query: ?student_id= &active=true|false &page= &per_page= &sort_by= &order=
func (ctrl *AdminFeeController) ListFeeRecords(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&feeModel.FeeRecordModel{})
	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("fee_record_student_id = ?", id)
	}
	if act := strings.TrimSpace(c.Query("active")); act != "" {
		q = q.Where("fee_record_is_active = ?", strings.EqualFold(act, "true"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung fee record")
	}

	var ms []feeModel.FeeRecordModel
	if err := q.
		Order(buildOrderClause(c.Query("sort_by"), c.Query("order"))).
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil fee record")
	}

	resps := make([]dto.FeeRecordResponse, 0, len(ms))
	for i := range ms {
		resps = append(resps, *dto.ToFeeRecordResponse(&ms[i], ctrl.Service.NextUnpaidInstallment(&ms[i])))
	}
	return helper.JsonList(c, "Daftar fee record", resps, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ==============================
// PATCH /api/a/fee-records/:id
// ==============================
func (ctrl *AdminFeeController) UpdateFeeRecord(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID fee record tidak valid")
	}

	var req dto.UpdateFeeRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Service.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee record tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil fee record")
	}

	dto.ApplyFeeRecordUpdate(m, &req)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		if m.FeeRecordIsActive {
			return ctrl.Service.DeactivateOthers(tx, m.FeeRecordStudentID, m.FeeRecordID)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan fee record")
	}

	return helper.JsonUpdated(c, "Fee record diperbarui", dto.ToFeeRecordResponse(m, ctrl.Service.NextUnpaidInstallment(m)))
}

// ========================================================
// POST /api/a/fee-records/:id/installments/:seq/mark-paid
// ========================================================
// Jalur manual untuk pembayaran di luar Midtrans (transfer, tunai).
func (ctrl *AdminFeeController) MarkInstallmentPaid(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID fee record tidak valid")
	}
	seq, err := c.ParamsInt("seq")
	if err != nil || seq < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor cicilan tidak valid")
	}

	// body opsional (payment_method saja)
	var req dto.MarkInstallmentPaidRequest
	_ = c.BodyParser(&req)
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Service.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee record tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil fee record")
	}

	method := req.PaymentMethod
	if method == nil {
		manual := "manual"
		method = &manual
	}
	if err := ctrl.Service.MarkInstallmentPaid(m, seq, method, time.Now()); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Cicilan ditandai lunas", dto.ToFeeRecordResponse(m, ctrl.Service.NextUnpaidInstallment(m)))
}
