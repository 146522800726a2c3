// file: internals/seeds/users/seed_users.go
package users

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kodingku_backend/internals/features/users/user/model"
)

type UserSeed struct {
	UserName string  `json:"user_name"`
	FullName *string `json:"full_name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role"`

	// Fakta gerbang akses untuk skenario dev
	IsAdmissionConfirmed   *bool `json:"is_admission_confirmed"`
	TemporaryAccessGranted *bool `json:"temporary_access_granted"`
	// trial_end = now + N hari (absolut di JSON cepat basi)
	TrialDaysFromNow *int `json:"trial_days_from_now"`
}

// SeedUsersFromJSON membuat user dev (password di-bcrypt saat insert).
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	now := time.Now().UTC()
	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		// 🔐 Hash password sebelum disimpan
		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			ID:       uuid.New(),
			UserName: data.UserName,
			FullName: data.FullName,
			Email:    data.Email,
			Password: string(hashed),
			Role:     data.Role,
			IsActive: true,

			IsAdmissionConfirmed:   data.IsAdmissionConfirmed,
			TemporaryAccessGranted: data.TemporaryAccessGranted,
		}
		if data.TrialDaysFromNow != nil {
			trialEnd := now.AddDate(0, 0, *data.TrialDaysFromNow)
			newUser.TrialEndDate = &trialEnd
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Email, err)
		} else {
			log.Printf("✅ Berhasil insert user '%s' (%s)", data.Email, data.Role)
		}
	}
}
