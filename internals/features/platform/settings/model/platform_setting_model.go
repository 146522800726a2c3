// file: internals/features/platform/settings/model/platform_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
   Mirror dari SQL (baris tunggal / singleton):

   - platform_setting_id                          UUID PK
   - platform_setting_trial_days                  INT NOT NULL DEFAULT 7  CHECK (>= 0)
   - platform_setting_warning_days_before_due     INT NOT NULL DEFAULT 3  CHECK (>= 0)
   - platform_setting_grace_period_days           INT NOT NULL DEFAULT 5  CHECK (>= 0)
   - platform_setting_block_unpaid_students       BOOLEAN NOT NULL DEFAULT TRUE
   - platform_setting_maintenance_mode            BOOLEAN NOT NULL DEFAULT FALSE
   - platform_setting_allow_all_students_during_maintenance BOOLEAN NOT NULL DEFAULT FALSE
   - created_at / updated_at
*/

type PlatformSettingModel struct {
	PlatformSettingID uuid.UUID `json:"platform_setting_id" gorm:"column:platform_setting_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Kebijakan trial & pembayaran (hari selalu >= 0)
	PlatformSettingTrialDays            int `json:"platform_setting_trial_days" gorm:"column:platform_setting_trial_days;not null;default:7"`
	PlatformSettingWarningDaysBeforeDue int `json:"platform_setting_warning_days_before_due" gorm:"column:platform_setting_warning_days_before_due;not null;default:3"`
	PlatformSettingGracePeriodDays      int `json:"platform_setting_grace_period_days" gorm:"column:platform_setting_grace_period_days;not null;default:5"`

	PlatformSettingBlockUnpaidStudents bool `json:"platform_setting_block_unpaid_students" gorm:"column:platform_setting_block_unpaid_students;not null;default:true"`

	// Mode maintenance platform
	PlatformSettingMaintenanceMode                   bool `json:"platform_setting_maintenance_mode" gorm:"column:platform_setting_maintenance_mode;not null;default:false"`
	PlatformSettingAllowAllStudentsDuringMaintenance bool `json:"platform_setting_allow_all_students_during_maintenance" gorm:"column:platform_setting_allow_all_students_during_maintenance;not null;default:false"`

	// Timestamps
	PlatformSettingCreatedAt time.Time `json:"platform_setting_created_at" gorm:"column:platform_setting_created_at;type:timestamptz;not null;default:now()"`
	PlatformSettingUpdatedAt time.Time `json:"platform_setting_updated_at" gorm:"column:platform_setting_updated_at;type:timestamptz;not null;default:now()"`
}

func (PlatformSettingModel) TableName() string { return "platform_settings" }

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (m *PlatformSettingModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	m.PlatformSettingCreatedAt = now
	m.PlatformSettingUpdatedAt = now
	return nil
}

func (m *PlatformSettingModel) BeforeUpdate(tx *gorm.DB) error {
	m.PlatformSettingUpdatedAt = time.Now().UTC()
	return nil
}
