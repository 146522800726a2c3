// file: internals/seeds/platform/seed_coding_languages.go
package platform

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"kodingku_backend/internals/features/platform/languages/model"
)

type CodingLanguageSeed struct {
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	EditorKey  *string  `json:"editor_key"`
	Extensions []string `json:"extensions"`
}

// SeedCodingLanguagesFromJSON mengisi registry bahasa editor.
func SeedCodingLanguagesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file bahasa:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []CodingLanguageSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range seeds {
		var existing model.CodingLanguageModel
		if err := db.Where("coding_language_slug = ?", data.Slug).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Bahasa '%s' sudah ada, dilewati.", data.Slug)
			continue
		}

		m := model.CodingLanguageModel{
			CodingLanguageSlug:       data.Slug,
			CodingLanguageName:       data.Name,
			CodingLanguageEditorKey:  data.EditorKey,
			CodingLanguageExtensions: data.Extensions,
			CodingLanguageIsActive:   true,
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ Gagal insert bahasa '%s': %v", data.Slug, err)
		} else {
			log.Printf("✅ Berhasil insert bahasa '%s'", data.Slug)
		}
	}
}
