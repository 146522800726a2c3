// file: internals/features/platform/languages/service/language_resolver.go
package service

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	languageModel "kodingku_backend/internals/features/platform/languages/model"
)

type LanguageService struct {
	DB *gorm.DB
}

func NewLanguageService(db *gorm.DB) *LanguageService {
	return &LanguageService{DB: db}
}

// ResolveSlug mencari bahasa aktif berdasarkan slug.
// Slug tak dikenal BUKAN error: balikan nil supaya broadcast bisa
// mengabaikannya diam-diam.
func (s *LanguageService) ResolveSlug(slug string) *languageModel.CodingLanguageModel {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil
	}
	var m languageModel.CodingLanguageModel
	err := s.DB.
		Where("coding_language_slug = ? AND coding_language_is_active = TRUE", slug).
		First(&m).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARN] resolve language slug %q gagal: %v", slug, err)
		}
		return nil
	}
	return &m
}

// GetByID mengambil bahasa by primary key (untuk snapshot sesi).
func (s *LanguageService) GetByID(id string) *languageModel.CodingLanguageModel {
	var m languageModel.CodingLanguageModel
	if err := s.DB.First(&m, "coding_language_id = ?", id).Error; err != nil {
		return nil
	}
	return &m
}

// ListActive mengembalikan semua bahasa aktif untuk dropdown editor.
func (s *LanguageService) ListActive() ([]languageModel.CodingLanguageModel, error) {
	var ms []languageModel.CodingLanguageModel
	err := s.DB.
		Where("coding_language_is_active = TRUE").
		Order("coding_language_name ASC").
		Find(&ms).Error
	return ms, err
}
