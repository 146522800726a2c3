// file: internals/features/access/dto/payment_status_dto.go
package dto

import (
	"time"

	feeModel "kodingku_backend/internals/features/finance/fees/model"
)

// PaymentStatusResponse adalah bentuk respon gerbang pembayaran.
// is_blocked hanya true untuk status restricted; status lain non-blocking
// tapi bisa membawa flag peringatan untuk advisory di FE.
type PaymentStatusResponse struct {
	Status    string `json:"status"`
	IsBlocked bool   `json:"is_blocked"`
	Reason    string `json:"reason,omitempty"`

	IsDueSoon            bool `json:"is_due_soon"`
	IsInGracePeriod      bool `json:"is_in_grace_period"`
	IsTrialEndingSoon    bool `json:"is_trial_ending_soon"`
	IsTrialInGracePeriod bool `json:"is_trial_in_grace_period"`

	DaysUntilDue  *int `json:"days_until_due,omitempty"`
	OverdueDays   *int `json:"overdue_days,omitempty"`
	TrialDaysLeft *int `json:"trial_days_left,omitempty"`

	NextInstallment *NextInstallmentInfo `json:"next_installment,omitempty"`

	CheckedAt time.Time `json:"checked_at"`
}

// NextInstallmentInfo meringkas cicilan belum dibayar paling awal untuk
// pesan tagihan di FE (tanpa detail pembayaran internal).
type NextInstallmentInfo struct {
	Seq     int       `json:"seq"`
	DueDate time.Time `json:"due_date"`
	Amount  float64   `json:"amount"`
}

// InstallmentInfoFromPayload memotret payload cicilan jadi info ringkas.
func InstallmentInfoFromPayload(p *feeModel.InstallmentPayload) *NextInstallmentInfo {
	if p == nil {
		return nil
	}
	return &NextInstallmentInfo{
		Seq:     p.Seq,
		DueDate: p.DueDate,
		Amount:  p.Amount,
	}
}
