// file: internals/features/live/sessions/model/live_session_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*
   Mirror dari SQL:

   - live_session_id                   UUID PK
   - live_session_trainer_id           UUID NOT NULL (FK users)
   - live_session_title                VARCHAR(150) NOT NULL
   - live_session_join_code            VARCHAR(11) NOT NULL UNIQUE  -- XXX-XXX-XXX
   - live_session_is_active            BOOLEAN NOT NULL DEFAULT TRUE
   - live_session_current_code         TEXT
   - live_session_current_output       JSONB          -- opaque, dikirim client
   - live_session_language_id          UUID (FK coding_languages)
   - live_session_workspace_file_id    UUID           -- binding file trainer
   - live_session_workspace_file_name  VARCHAR(255)
   - live_session_student_scratchpads  JSONB NOT NULL DEFAULT '{}'  -- key = user id
   - live_session_participant_count    INT NOT NULL DEFAULT 0       -- legacy join/leave
   - live_session_started_at / ended_at TIMESTAMPTZ
   - created_at / updated_at

   Sesi TIDAK pernah dihapus, hanya dinonaktifkan (ended_at terisi).
   Hitungan peserta otoritatif = jumlah key scratchpad, BUKAN kolom counter.
*/

type LiveSessionModel struct {
	LiveSessionID        uuid.UUID `json:"live_session_id" gorm:"column:live_session_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	LiveSessionTrainerID uuid.UUID `json:"live_session_trainer_id" gorm:"column:live_session_trainer_id;type:uuid;not null;index"`

	LiveSessionTitle    string `json:"live_session_title" gorm:"column:live_session_title;type:varchar(150);not null"`
	LiveSessionJoinCode string `json:"live_session_join_code" gorm:"column:live_session_join_code;type:varchar(11);not null;uniqueIndex"`
	LiveSessionIsActive bool   `json:"live_session_is_active" gorm:"column:live_session_is_active;not null;default:true;index"`

	// Broadcast trainer (shared state, read-only untuk student)
	LiveSessionCurrentCode   *string        `json:"live_session_current_code,omitempty" gorm:"column:live_session_current_code;type:text"`
	LiveSessionCurrentOutput datatypes.JSON `json:"live_session_current_output,omitempty" gorm:"column:live_session_current_output;type:jsonb"`
	LiveSessionLanguageID    *uuid.UUID     `json:"live_session_language_id,omitempty" gorm:"column:live_session_language_id;type:uuid"`

	// Binding file workspace milik trainer (nama didenormalisasi untuk
	// inferensi bahasa saat snapshot)
	LiveSessionWorkspaceFileID   *uuid.UUID `json:"live_session_workspace_file_id,omitempty" gorm:"column:live_session_workspace_file_id;type:uuid"`
	LiveSessionWorkspaceFileName *string    `json:"live_session_workspace_file_name,omitempty" gorm:"column:live_session_workspace_file_name;type:varchar(255)"`

	// Scratchpad per student, object JSONB ber-key user id
	LiveSessionStudentScratchpads datatypes.JSON `json:"live_session_student_scratchpads" gorm:"column:live_session_student_scratchpads;type:jsonb;not null;default:'{}'"`

	// Counter legacy dari endpoint join/leave, informasional saja
	LiveSessionParticipantCount int `json:"live_session_participant_count" gorm:"column:live_session_participant_count;not null;default:0"`

	LiveSessionStartedAt *time.Time `json:"live_session_started_at,omitempty" gorm:"column:live_session_started_at;type:timestamptz"`
	LiveSessionEndedAt   *time.Time `json:"live_session_ended_at,omitempty" gorm:"column:live_session_ended_at;type:timestamptz"`

	LiveSessionCreatedAt time.Time `json:"live_session_created_at" gorm:"column:live_session_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	LiveSessionUpdatedAt time.Time `json:"live_session_updated_at" gorm:"column:live_session_updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
}

func (LiveSessionModel) TableName() string { return "live_sessions" }

// ScratchpadEntry adalah value object satu student di dalam kolom
// live_session_student_scratchpads. Setiap tulis MENGGANTI seluruh entry,
// tidak ada merge per field.
type ScratchpadEntry struct {
	UserID            string          `json:"user_id"`
	UserName          string          `json:"user_name"`
	Code              string          `json:"code"`
	Language          string          `json:"language"`
	Output            json.RawMessage `json:"output,omitempty"`
	WorkspaceFileID   *uuid.UUID      `json:"workspace_file_id,omitempty"`
	WorkspaceFileName *string         `json:"workspace_file_name,omitempty"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ScratchpadEntries membongkar kolom JSONB jadi map ber-key user id.
// Kolom kosong / NULL dibaca sebagai map kosong.
func (m *LiveSessionModel) ScratchpadEntries() (map[string]ScratchpadEntry, error) {
	entries := map[string]ScratchpadEntry{}
	if len(m.LiveSessionStudentScratchpads) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(m.LiveSessionStudentScratchpads, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ExpiryAnchor memilih titik awal umur sesi: started_at kalau ada,
// selain itu created_at.
func (m *LiveSessionModel) ExpiryAnchor() time.Time {
	if m.LiveSessionStartedAt != nil {
		return *m.LiveSessionStartedAt
	}
	return m.LiveSessionCreatedAt
}

// IsExpired menilai apakah sesi sudah melewati batas umur.
func (m *LiveSessionModel) IsExpired(now time.Time, maxAge time.Duration) bool {
	return now.Sub(m.ExpiryAnchor()) > maxAge
}
