// file: internals/seeds/fees/seed_fee_records.go
package fees

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	feeModel "kodingku_backend/internals/features/finance/fees/model"
	userModel "kodingku_backend/internals/features/users/user/model"
)

type InstallmentSeed struct {
	Seq       int     `json:"seq"`
	DueInDays int     `json:"due_in_days"` // relatif dari waktu seed
	Amount    float64 `json:"amount"`
	IsPaid    bool    `json:"is_paid"`
}

type FeeRecordSeed struct {
	StudentEmail string            `json:"student_email"`
	Title        string            `json:"title"`
	Currency     string            `json:"currency"`
	Installments []InstallmentSeed `json:"installments"`
}

// SeedFeeRecordsFromJSON membuat fee record dev. Student dirujuk lewat
// email (jalankan setelah seed users). Satu record aktif per student.
func SeedFeeRecordsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file fee record:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []FeeRecordSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	now := time.Now().UTC()
	for _, data := range seeds {
		var student userModel.UserModel
		if err := db.Where("email = ?", data.StudentEmail).First(&student).Error; err != nil {
			log.Printf("❌ Student '%s' tidak ditemukan, fee record dilewati.", data.StudentEmail)
			continue
		}

		var count int64
		if err := db.Model(&feeModel.FeeRecordModel{}).
			Where("fee_record_student_id = ? AND fee_record_is_active = TRUE", student.ID).
			Count(&count).Error; err != nil {
			log.Printf("❌ Gagal cek fee record '%s': %v", data.StudentEmail, err)
			continue
		}
		if count > 0 {
			log.Printf("ℹ️ Fee record aktif untuk '%s' sudah ada, dilewati.", data.StudentEmail)
			continue
		}

		items := make([]feeModel.InstallmentPayload, 0, len(data.Installments))
		total := 0.0
		for _, it := range data.Installments {
			due := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
				AddDate(0, 0, it.DueInDays)
			items = append(items, feeModel.InstallmentPayload{
				Seq:     it.Seq,
				DueDate: due,
				Amount:  it.Amount,
				IsPaid:  it.IsPaid,
			})
			total += it.Amount
		}

		m := feeModel.FeeRecordModel{
			FeeRecordStudentID:   student.ID,
			FeeRecordTitle:       data.Title,
			FeeRecordCurrency:    data.Currency,
			FeeRecordTotalAmount: total,
			FeeRecordIsActive:    true,
		}
		if err := m.SetInstallments(items); err != nil {
			log.Printf("❌ Gagal encode cicilan '%s': %v", data.StudentEmail, err)
			continue
		}

		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Gagal insert fee record '%s': %v", data.StudentEmail, err)
		} else {
			log.Printf("✅ Berhasil insert fee record '%s' (%d cicilan)", data.StudentEmail, len(items))
		}
	}
}
