// file: internals/features/platform/settings/service/platform_setting_service.go
package service

import (
	"errors"
	"log"

	"gorm.io/gorm"

	settingModel "kodingku_backend/internals/features/platform/settings/model"
)

type PlatformSettingService struct {
	DB *gorm.DB
}

func NewPlatformSettingService(db *gorm.DB) *PlatformSettingService {
	return &PlatformSettingService{DB: db}
}

// LoadActive mengambil baris pengaturan tunggal.
// Fail-open: nil kalau belum ada ATAU query gagal, jangan pernah bikin
// gerbang pembayaran jadi sumber outage.
func (s *PlatformSettingService) LoadActive() *settingModel.PlatformSettingModel {
	var m settingModel.PlatformSettingModel
	if err := s.DB.Order("platform_setting_created_at ASC").First(&m).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARN] gagal load platform settings, lanjut fail-open: %v", err)
		}
		return nil
	}
	return &m
}

// Get mengembalikan baris pengaturan atau ErrRecordNotFound (untuk surface admin).
func (s *PlatformSettingService) Get() (*settingModel.PlatformSettingModel, error) {
	var m settingModel.PlatformSettingModel
	if err := s.DB.Order("platform_setting_created_at ASC").First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Save membuat baris pertama atau menyimpan perubahan (upsert singleton).
func (s *PlatformSettingService) Save(m *settingModel.PlatformSettingModel) error {
	return s.DB.Save(m).Error
}
