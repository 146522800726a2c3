// file: internals/seeds/platform/seed_platform_settings.go
package platform

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"kodingku_backend/internals/features/platform/settings/model"
)

type PlatformSettingSeed struct {
	TrialDays                         int  `json:"trial_days"`
	WarningDaysBeforeDue              int  `json:"warning_days_before_due"`
	GracePeriodDays                   int  `json:"grace_period_days"`
	BlockUnpaidStudents               bool `json:"block_unpaid_students"`
	MaintenanceMode                   bool `json:"maintenance_mode"`
	AllowAllStudentsDuringMaintenance bool `json:"allow_all_students_during_maintenance"`
}

// SeedPlatformSettingsFromJSON mengisi row singleton pengaturan platform.
// Kalau sudah ada, dilewati (tidak menimpa kebijakan yang berjalan).
func SeedPlatformSettingsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file pengaturan platform:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seed PlatformSettingSeed
	if err := json.Unmarshal(file, &seed); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	var count int64
	if err := db.Model(&model.PlatformSettingModel{}).Count(&count).Error; err != nil {
		log.Fatalf("❌ Gagal cek pengaturan platform: %v", err)
	}
	if count > 0 {
		log.Println("ℹ️ Pengaturan platform sudah ada, dilewati.")
		return
	}

	m := model.PlatformSettingModel{
		PlatformSettingTrialDays:                         seed.TrialDays,
		PlatformSettingWarningDaysBeforeDue:              seed.WarningDaysBeforeDue,
		PlatformSettingGracePeriodDays:                   seed.GracePeriodDays,
		PlatformSettingBlockUnpaidStudents:               seed.BlockUnpaidStudents,
		PlatformSettingMaintenanceMode:                   seed.MaintenanceMode,
		PlatformSettingAllowAllStudentsDuringMaintenance: seed.AllowAllStudentsDuringMaintenance,
	}
	if err := db.Create(&m).Error; err != nil {
		log.Printf("❌ Gagal insert pengaturan platform: %v", err)
	} else {
		log.Println("✅ Berhasil insert pengaturan platform")
	}
}
