// file: internals/features/platform/settings/dto/platform_setting_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"kodingku_backend/internals/features/platform/settings/model"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

// Semua field opsional (PATCH parsial). Hari tidak boleh negatif.
type UpdatePlatformSettingRequest struct {
	PlatformSettingTrialDays            *int `json:"platform_setting_trial_days" validate:"omitempty,gte=0"`
	PlatformSettingWarningDaysBeforeDue *int `json:"platform_setting_warning_days_before_due" validate:"omitempty,gte=0"`
	PlatformSettingGracePeriodDays      *int `json:"platform_setting_grace_period_days" validate:"omitempty,gte=0"`

	PlatformSettingBlockUnpaidStudents               *bool `json:"platform_setting_block_unpaid_students"`
	PlatformSettingMaintenanceMode                   *bool `json:"platform_setting_maintenance_mode"`
	PlatformSettingAllowAllStudentsDuringMaintenance *bool `json:"platform_setting_allow_all_students_during_maintenance"`
}

/* =========================================================
   RESPONSE DTO
   ========================================================= */

type PlatformSettingResponse struct {
	PlatformSettingID uuid.UUID `json:"platform_setting_id"`

	PlatformSettingTrialDays            int `json:"platform_setting_trial_days"`
	PlatformSettingWarningDaysBeforeDue int `json:"platform_setting_warning_days_before_due"`
	PlatformSettingGracePeriodDays      int `json:"platform_setting_grace_period_days"`

	PlatformSettingBlockUnpaidStudents               bool `json:"platform_setting_block_unpaid_students"`
	PlatformSettingMaintenanceMode                   bool `json:"platform_setting_maintenance_mode"`
	PlatformSettingAllowAllStudentsDuringMaintenance bool `json:"platform_setting_allow_all_students_during_maintenance"`

	PlatformSettingCreatedAt time.Time `json:"platform_setting_created_at"`
	PlatformSettingUpdatedAt time.Time `json:"platform_setting_updated_at"`
}

/* =========================================================
   MAPPERS
   ========================================================= */

func ToPlatformSettingResponse(m *model.PlatformSettingModel) *PlatformSettingResponse {
	if m == nil {
		return nil
	}
	return &PlatformSettingResponse{
		PlatformSettingID:                                m.PlatformSettingID,
		PlatformSettingTrialDays:                         m.PlatformSettingTrialDays,
		PlatformSettingWarningDaysBeforeDue:              m.PlatformSettingWarningDaysBeforeDue,
		PlatformSettingGracePeriodDays:                   m.PlatformSettingGracePeriodDays,
		PlatformSettingBlockUnpaidStudents:               m.PlatformSettingBlockUnpaidStudents,
		PlatformSettingMaintenanceMode:                   m.PlatformSettingMaintenanceMode,
		PlatformSettingAllowAllStudentsDuringMaintenance: m.PlatformSettingAllowAllStudentsDuringMaintenance,
		PlatformSettingCreatedAt:                         m.PlatformSettingCreatedAt,
		PlatformSettingUpdatedAt:                         m.PlatformSettingUpdatedAt,
	}
}

// ApplyPlatformSettingUpdate menyalin hanya field yang dikirim (pointer non-nil).
func ApplyPlatformSettingUpdate(m *model.PlatformSettingModel, req *UpdatePlatformSettingRequest) {
	if req.PlatformSettingTrialDays != nil {
		m.PlatformSettingTrialDays = *req.PlatformSettingTrialDays
	}
	if req.PlatformSettingWarningDaysBeforeDue != nil {
		m.PlatformSettingWarningDaysBeforeDue = *req.PlatformSettingWarningDaysBeforeDue
	}
	if req.PlatformSettingGracePeriodDays != nil {
		m.PlatformSettingGracePeriodDays = *req.PlatformSettingGracePeriodDays
	}
	if req.PlatformSettingBlockUnpaidStudents != nil {
		m.PlatformSettingBlockUnpaidStudents = *req.PlatformSettingBlockUnpaidStudents
	}
	if req.PlatformSettingMaintenanceMode != nil {
		m.PlatformSettingMaintenanceMode = *req.PlatformSettingMaintenanceMode
	}
	if req.PlatformSettingAllowAllStudentsDuringMaintenance != nil {
		m.PlatformSettingAllowAllStudentsDuringMaintenance = *req.PlatformSettingAllowAllStudentsDuringMaintenance
	}
}
