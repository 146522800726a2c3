// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	"kodingku_backend/internals/seeds/fees"
	"kodingku_backend/internals/seeds/platform"
	"kodingku_backend/internals/seeds/users"
)

// RunAllSeeds menjalankan semua seeder dev secara berurutan.
// Urutan penting: settings & bahasa dulu, lalu users, baru fee record
// (fee record merujuk student lewat email).
func RunAllSeeds(db *gorm.DB) {
	log.Println("🌱 Menjalankan seeder...")

	platform.SeedPlatformSettingsFromJSON(db, "internals/seeds/platform/data_platform_settings.json")
	platform.SeedCodingLanguagesFromJSON(db, "internals/seeds/platform/data_coding_languages.json")
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	fees.SeedFeeRecordsFromJSON(db, "internals/seeds/fees/data_fee_records.json")

	log.Println("🌱 Seeder selesai.")
}
