// file: internals/features/finance/fees/dto/fee_record_dto.go
package dto

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	feeModel "kodingku_backend/internals/features/finance/fees/model"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

type InstallmentInput struct {
	Seq     int       `json:"seq" validate:"required,gte=1"`
	DueDate time.Time `json:"due_date" validate:"required"`
	Amount  float64   `json:"amount" validate:"required,gt=0"`
}

type CreateFeeRecordRequest struct {
	FeeRecordStudentID uuid.UUID          `json:"fee_record_student_id" validate:"required"`
	FeeRecordTitle     string             `json:"fee_record_title" validate:"required,min=3"`
	FeeRecordCurrency  string             `json:"fee_record_currency" validate:"omitempty,len=3,uppercase"`
	Installments       []InstallmentInput `json:"installments" validate:"required,min=1,dive"`
}

type UpdateFeeRecordRequest struct {
	FeeRecordTitle    *string `json:"fee_record_title" validate:"omitempty,min=3"`
	FeeRecordIsActive *bool   `json:"fee_record_is_active"`
}

type MarkInstallmentPaidRequest struct {
	PaymentMethod *string `json:"payment_method" validate:"omitempty,min=2,max=40"`
}

/* =========================================================
   RESPONSE DTO
   ========================================================= */

type InstallmentResponse struct {
	Seq           int        `json:"seq"`
	DueDate       time.Time  `json:"due_date"`
	Amount        float64    `json:"amount"`
	IsPaid        bool       `json:"is_paid"`
	PaymentMethod *string    `json:"payment_method,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

type FeeRecordResponse struct {
	FeeRecordID          uuid.UUID             `json:"fee_record_id"`
	FeeRecordStudentID   uuid.UUID             `json:"fee_record_student_id"`
	FeeRecordTitle       string                `json:"fee_record_title"`
	FeeRecordCurrency    string                `json:"fee_record_currency"`
	FeeRecordTotalAmount float64               `json:"fee_record_total_amount"`
	FeeRecordIsActive    bool                  `json:"fee_record_is_active"`
	Installments         []InstallmentResponse `json:"installments"`
	NextDue              *InstallmentResponse  `json:"next_due,omitempty"`
	FeeRecordCreatedAt   time.Time             `json:"fee_record_created_at"`
	FeeRecordUpdatedAt   time.Time             `json:"fee_record_updated_at"`
}

/* =========================================================
   MAPPERS
   ========================================================= */

// ToModel membentuk model baru; total dihitung dari jumlah cicilan.
func (r *CreateFeeRecordRequest) ToModel() (*feeModel.FeeRecordModel, error) {
	currency := strings.ToUpper(strings.TrimSpace(r.FeeRecordCurrency))
	if currency == "" {
		currency = "IDR"
	}

	items := make([]feeModel.InstallmentPayload, 0, len(r.Installments))
	total := 0.0
	for _, in := range r.Installments {
		items = append(items, feeModel.InstallmentPayload{
			Seq:     in.Seq,
			DueDate: in.DueDate.UTC(),
			Amount:  in.Amount,
		})
		total += in.Amount
	}

	m := &feeModel.FeeRecordModel{
		FeeRecordStudentID:   r.FeeRecordStudentID,
		FeeRecordTitle:       strings.TrimSpace(r.FeeRecordTitle),
		FeeRecordCurrency:    currency,
		FeeRecordTotalAmount: total,
		FeeRecordIsActive:    true,
	}
	if err := m.SetInstallments(items); err != nil {
		return nil, err
	}
	return m, nil
}

func ApplyFeeRecordUpdate(m *feeModel.FeeRecordModel, req *UpdateFeeRecordRequest) {
	if req.FeeRecordTitle != nil {
		m.FeeRecordTitle = strings.TrimSpace(*req.FeeRecordTitle)
	}
	if req.FeeRecordIsActive != nil {
		m.FeeRecordIsActive = *req.FeeRecordIsActive
	}
}

func toInstallmentResponse(it *feeModel.InstallmentPayload) *InstallmentResponse {
	if it == nil {
		return nil
	}
	return &InstallmentResponse{
		Seq:           it.Seq,
		DueDate:       it.DueDate,
		Amount:        it.Amount,
		IsPaid:        it.IsPaid,
		PaymentMethod: it.PaymentMethod,
		PaidAt:        it.PaidAt,
	}
}

func ToFeeRecordResponse(m *feeModel.FeeRecordModel, nextDue *feeModel.InstallmentPayload) *FeeRecordResponse {
	if m == nil {
		return nil
	}
	items, err := m.DecodeInstallments()
	if err != nil {
		log.Printf("[WARN] decode installments fee %s gagal: %v", m.FeeRecordID, err)
	}
	resp := &FeeRecordResponse{
		FeeRecordID:          m.FeeRecordID,
		FeeRecordStudentID:   m.FeeRecordStudentID,
		FeeRecordTitle:       m.FeeRecordTitle,
		FeeRecordCurrency:    m.FeeRecordCurrency,
		FeeRecordTotalAmount: m.FeeRecordTotalAmount,
		FeeRecordIsActive:    m.FeeRecordIsActive,
		Installments:         make([]InstallmentResponse, 0, len(items)),
		NextDue:              toInstallmentResponse(nextDue),
		FeeRecordCreatedAt:   m.FeeRecordCreatedAt,
		FeeRecordUpdatedAt:   m.FeeRecordUpdatedAt,
	}
	for i := range items {
		resp.Installments = append(resp.Installments, *toInstallmentResponse(&items[i]))
	}
	return resp
}
