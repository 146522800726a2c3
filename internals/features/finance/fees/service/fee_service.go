// file: internals/features/finance/fees/service/fee_service.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeModel "kodingku_backend/internals/features/finance/fees/model"
)

type FeeService struct {
	DB *gorm.DB
}

func NewFeeService(db *gorm.DB) *FeeService {
	return &FeeService{DB: db}
}

// GetActiveForStudent mengambil fee record aktif milik student.
// Tidak ada record aktif BUKAN error: (nil, nil) berarti tidak ada
// kewajiban pembayaran.
func (s *FeeService) GetActiveForStudent(studentID uuid.UUID) (*feeModel.FeeRecordModel, error) {
	var m feeModel.FeeRecordModel
	err := s.DB.
		Where("fee_record_student_id = ? AND fee_record_is_active = TRUE", studentID).
		Order("fee_record_created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// NextUnpaidInstallment memilih cicilan belum dibayar dengan due date paling
// awal (seri terkecil kalau tanggalnya sama). nil kalau semua lunas.
func (s *FeeService) NextUnpaidInstallment(rec *feeModel.FeeRecordModel) *feeModel.InstallmentPayload {
	if rec == nil {
		return nil
	}
	items, err := rec.DecodeInstallments()
	if err != nil {
		log.Printf("[WARN] decode installments fee %s gagal: %v", rec.FeeRecordID, err)
		return nil
	}
	var next *feeModel.InstallmentPayload
	for i := range items {
		it := &items[i]
		if it.IsPaid {
			continue
		}
		if next == nil ||
			it.DueDate.Before(next.DueDate) ||
			(it.DueDate.Equal(next.DueDate) && it.Seq < next.Seq) {
			next = it
		}
	}
	if next == nil {
		return nil
	}
	cp := *next
	return &cp
}

// MarkInstallmentPaid menandai satu cicilan lunas. Idempotent: cicilan yang
// sudah paid dibiarkan apa adanya (webhook Midtrans bisa datang dua kali).
func (s *FeeService) MarkInstallmentPaid(rec *feeModel.FeeRecordModel, seq int, method *string, paidAt time.Time) error {
	return s.mutateInstallment(rec, seq, func(it *feeModel.InstallmentPayload) {
		if it.IsPaid {
			return
		}
		it.IsPaid = true
		it.PaymentMethod = method
		t := paidAt.UTC()
		it.PaidAt = &t
	})
}

// AttachOrderID menyimpan order id Midtrans pada cicilan (saat checkout).
func (s *FeeService) AttachOrderID(rec *feeModel.FeeRecordModel, seq int, orderID string) error {
	return s.mutateInstallment(rec, seq, func(it *feeModel.InstallmentPayload) {
		it.MidtransOrderID = &orderID
	})
}

// ClearOrderID melepas order id (pembayaran expired/batal) supaya checkout
// baru bisa diterbitkan.
func (s *FeeService) ClearOrderID(rec *feeModel.FeeRecordModel, seq int) error {
	return s.mutateInstallment(rec, seq, func(it *feeModel.InstallmentPayload) {
		it.MidtransOrderID = nil
	})
}

func (s *FeeService) mutateInstallment(rec *feeModel.FeeRecordModel, seq int, fn func(*feeModel.InstallmentPayload)) error {
	items, err := rec.DecodeInstallments()
	if err != nil {
		return err
	}
	found := false
	for i := range items {
		if items[i].Seq == seq {
			fn(&items[i])
			found = true
			break
		}
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Cicilan tidak ditemukan")
	}
	if err := rec.SetInstallments(items); err != nil {
		return err
	}
	now := time.Now().UTC()
	rec.FeeRecordUpdatedAt = now
	return s.DB.Model(&feeModel.FeeRecordModel{}).
		Where("fee_record_id = ?", rec.FeeRecordID).
		Updates(map[string]any{
			"fee_record_installments": rec.FeeRecordInstallments,
			"fee_record_updated_at":   now,
		}).Error
}

// FindByID mengambil fee record by primary key.
func (s *FeeService) FindByID(id uuid.UUID) (*feeModel.FeeRecordModel, error) {
	var m feeModel.FeeRecordModel
	if err := s.DB.First(&m, "fee_record_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListForStudent mengembalikan semua fee record milik satu student.
func (s *FeeService) ListForStudent(studentID uuid.UUID) ([]feeModel.FeeRecordModel, error) {
	var ms []feeModel.FeeRecordModel
	err := s.DB.
		Where("fee_record_student_id = ?", studentID).
		Order("fee_record_created_at DESC").
		Find(&ms).Error
	return ms, err
}

// DeactivateOthers mematikan record aktif lain milik student yang sama,
// menjaga invariant satu record aktif per student.
func (s *FeeService) DeactivateOthers(tx *gorm.DB, studentID uuid.UUID, keepID uuid.UUID) error {
	return tx.Model(&feeModel.FeeRecordModel{}).
		Where("fee_record_student_id = ? AND fee_record_is_active = TRUE AND fee_record_id <> ?", studentID, keepID).
		Updates(map[string]any{
			"fee_record_is_active":  false,
			"fee_record_updated_at": time.Now().UTC(),
		}).Error
}
