// file: internals/features/finance/fees/model/fee_record_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
   Mirror dari SQL:

   - fee_record_id            UUID PK
   - fee_record_student_id    UUID NOT NULL (FK users.id)  -- diindex
   - fee_record_title         TEXT NOT NULL                -- mis. "SPP Batch 12"
   - fee_record_currency      VARCHAR(8) NOT NULL DEFAULT 'IDR'
   - fee_record_total_amount  NUMERIC(14,2) NOT NULL DEFAULT 0
   - fee_record_installments  JSONB NOT NULL DEFAULT '[]'  -- array cicilan
   - fee_record_is_active     BOOLEAN NOT NULL DEFAULT TRUE
   - created_at / updated_at

   Invariant: maksimal SATU fee record aktif per student; cicilan disimpan
   sebagai dokumen JSONB utuh dan dimutasi read-modify-write (lihat service).
*/

type FeeRecordModel struct {
	FeeRecordID           uuid.UUID      `json:"fee_record_id" gorm:"column:fee_record_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FeeRecordStudentID    uuid.UUID      `json:"fee_record_student_id" gorm:"column:fee_record_student_id;type:uuid;not null;index"`
	FeeRecordTitle        string         `json:"fee_record_title" gorm:"column:fee_record_title;type:text;not null"`
	FeeRecordCurrency     string         `json:"fee_record_currency" gorm:"column:fee_record_currency;type:varchar(8);not null;default:'IDR'"`
	FeeRecordTotalAmount  float64        `json:"fee_record_total_amount" gorm:"column:fee_record_total_amount;type:numeric(14,2);not null;default:0"`
	FeeRecordInstallments datatypes.JSON `json:"fee_record_installments" gorm:"column:fee_record_installments;type:jsonb;not null;default:'[]'"`
	FeeRecordIsActive     bool           `json:"fee_record_is_active" gorm:"column:fee_record_is_active;not null;default:true"`

	FeeRecordCreatedAt time.Time `json:"fee_record_created_at" gorm:"column:fee_record_created_at;type:timestamptz;not null;default:now()"`
	FeeRecordUpdatedAt time.Time `json:"fee_record_updated_at" gorm:"column:fee_record_updated_at;type:timestamptz;not null;default:now()"`
}

func (FeeRecordModel) TableName() string { return "fee_records" }

/* =========================
   Payload cicilan (JSONB)
   ========================= */

type InstallmentPayload struct {
	Seq             int        `json:"seq"`
	DueDate         time.Time  `json:"due_date"`
	Amount          float64    `json:"amount"`
	IsPaid          bool       `json:"is_paid"`
	PaymentMethod   *string    `json:"payment_method,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	MidtransOrderID *string    `json:"midtrans_order_id,omitempty"`
}

// DecodeInstallments membongkar kolom JSONB jadi slice payload.
func (m *FeeRecordModel) DecodeInstallments() ([]InstallmentPayload, error) {
	if len(m.FeeRecordInstallments) == 0 {
		return nil, nil
	}
	var out []InstallmentPayload
	if err := json.Unmarshal(m.FeeRecordInstallments, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetInstallments menulis ulang kolom JSONB dari slice payload.
func (m *FeeRecordModel) SetInstallments(items []InstallmentPayload) error {
	if items == nil {
		items = []InstallmentPayload{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	m.FeeRecordInstallments = datatypes.JSON(b)
	return nil
}

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (m *FeeRecordModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	m.FeeRecordCreatedAt = now
	m.FeeRecordUpdatedAt = now
	if m.FeeRecordCurrency == "" {
		m.FeeRecordCurrency = "IDR"
	}
	return nil
}

func (m *FeeRecordModel) BeforeUpdate(tx *gorm.DB) error {
	m.FeeRecordUpdatedAt = time.Now().UTC()
	return nil
}
