// file: internals/features/platform/settings/dto/platform_setting_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kodingku_backend/internals/features/platform/settings/model"
)

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

func baseSettings() *model.PlatformSettingModel {
	return &model.PlatformSettingModel{
		PlatformSettingTrialDays:            7,
		PlatformSettingWarningDaysBeforeDue: 3,
		PlatformSettingGracePeriodDays:      5,
		PlatformSettingBlockUnpaidStudents:  true,
	}
}

func TestApplyPlatformSettingUpdate(t *testing.T) {
	t.Run("request kosong tidak mengubah apa pun", func(t *testing.T) {
		m := baseSettings()
		ApplyPlatformSettingUpdate(m, &UpdatePlatformSettingRequest{})
		assert.Equal(t, baseSettings(), m)
	})

	t.Run("hanya field terkirim yang berubah", func(t *testing.T) {
		m := baseSettings()
		ApplyPlatformSettingUpdate(m, &UpdatePlatformSettingRequest{
			PlatformSettingGracePeriodDays: intp(0),
			PlatformSettingMaintenanceMode: boolp(true),
		})
		assert.Equal(t, 0, m.PlatformSettingGracePeriodDays)
		assert.True(t, m.PlatformSettingMaintenanceMode)
		assert.Equal(t, 7, m.PlatformSettingTrialDays)
		assert.Equal(t, 3, m.PlatformSettingWarningDaysBeforeDue)
		assert.True(t, m.PlatformSettingBlockUnpaidStudents)
	})

	t.Run("false eksplisit tetap diterapkan", func(t *testing.T) {
		m := baseSettings()
		ApplyPlatformSettingUpdate(m, &UpdatePlatformSettingRequest{
			PlatformSettingBlockUnpaidStudents: boolp(false),
		})
		assert.False(t, m.PlatformSettingBlockUnpaidStudents)
	})
}

func TestToPlatformSettingResponse(t *testing.T) {
	assert.Nil(t, ToPlatformSettingResponse(nil))

	m := baseSettings()
	m.PlatformSettingAllowAllStudentsDuringMaintenance = true
	resp := ToPlatformSettingResponse(m)
	assert.Equal(t, 7, resp.PlatformSettingTrialDays)
	assert.Equal(t, 3, resp.PlatformSettingWarningDaysBeforeDue)
	assert.Equal(t, 5, resp.PlatformSettingGracePeriodDays)
	assert.True(t, resp.PlatformSettingBlockUnpaidStudents)
	assert.True(t, resp.PlatformSettingAllowAllStudentsDuringMaintenance)
	assert.False(t, resp.PlatformSettingMaintenanceMode)
}
