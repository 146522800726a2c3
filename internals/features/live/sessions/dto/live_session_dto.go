// file: internals/features/live/sessions/dto/live_session_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	accessDto "kodingku_backend/internals/features/access/dto"
	sessionModel "kodingku_backend/internals/features/live/sessions/model"
)

/* =========================
   Request
   ========================= */

type StartSessionRequest struct {
	Title string `json:"title" validate:"required,min=3,max=150"`
}

// BroadcastRequest: semua field opsional, hanya field yang dikirim yang
// ditulis. Broadcast berisi language saja TIDAK boleh mengosongkan code.
type BroadcastRequest struct {
	Code            *string         `json:"code"`
	Output          json.RawMessage `json:"output"`
	LanguageSlug    *string         `json:"language_slug"`
	WorkspaceFileID *uuid.UUID      `json:"workspace_file_id"`
}

// ScratchpadUpdateRequest punya dua mode:
// (a) legacy  : code (+language) dikirim langsung;
// (b) file    : workspace_file_id dikirim, isi & nama di-resolve server.
type ScratchpadUpdateRequest struct {
	Code            *string         `json:"code"`
	Language        *string         `json:"language"`
	Output          json.RawMessage `json:"output"`
	WorkspaceFileID *uuid.UUID      `json:"workspace_file_id"`
}

// HasWritableInput memastikan minimal satu mode terisi. Ditolak di
// controller sebelum menyentuh DB.
func (r *ScratchpadUpdateRequest) HasWritableInput() bool {
	return r.Code != nil || r.WorkspaceFileID != nil
}

/* =========================
   Response
   ========================= */

type LiveSessionResponse struct {
	LiveSessionID    uuid.UUID  `json:"live_session_id"`
	Title            string     `json:"title"`
	JoinCode         string     `json:"join_code"`
	IsActive         bool       `json:"is_active"`
	TrainerID        uuid.UUID  `json:"trainer_id"`
	ParticipantCount int        `json:"participant_count"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	EndedAt          *time.Time `json:"ended_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// LiveSnapshotResponse adalah payload polling (student & trainer, ~2 detik).
type LiveSnapshotResponse struct {
	JoinCode string `json:"join_code"`
	Title    string `json:"title"`
	IsActive bool   `json:"is_active"`

	Code     *string         `json:"code"`
	Output   json.RawMessage `json:"output,omitempty"`
	Language *string         `json:"language"`

	ParticipantCount  int        `json:"participant_count"`
	WorkspaceFileID   *uuid.UUID `json:"workspace_file_id,omitempty"`
	WorkspaceFileName *string    `json:"workspace_file_name,omitempty"`

	StartedAt *time.Time `json:"started_at,omitempty"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`

	// Hanya terisi untuk requester ber-role student, dan dihilangkan
	// (bukan error) kalau resolusi gagal.
	PaymentStatus *accessDto.PaymentStatusResponse `json:"payment_status,omitempty"`
}

type StudentScratchpadResponse struct {
	UserID            string          `json:"user_id"`
	Name              string          `json:"name"`
	Code              string          `json:"code"`
	Language          string          `json:"language"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Output            json.RawMessage `json:"output,omitempty"`
	WorkspaceFileID   *uuid.UUID      `json:"workspace_file_id,omitempty"`
	WorkspaceFileName *string         `json:"workspace_file_name,omitempty"`
}

/* =========================
   Builder
   ========================= */

// ToLiveSessionResponse memakai hitungan peserta turunan (len key
// scratchpad); decode gagal dihitung 0, kolom counter TIDAK dipakai.
func ToLiveSessionResponse(m *sessionModel.LiveSessionModel) LiveSessionResponse {
	count := 0
	if entries, err := m.ScratchpadEntries(); err == nil {
		count = len(entries)
	}
	return LiveSessionResponse{
		LiveSessionID:    m.LiveSessionID,
		Title:            m.LiveSessionTitle,
		JoinCode:         m.LiveSessionJoinCode,
		IsActive:         m.LiveSessionIsActive,
		TrainerID:        m.LiveSessionTrainerID,
		ParticipantCount: count,
		StartedAt:        m.LiveSessionStartedAt,
		EndedAt:          m.LiveSessionEndedAt,
		CreatedAt:        m.LiveSessionCreatedAt,
	}
}

// BuildLiveSnapshotResponse merakit payload poll dari model + hasil resolusi
// bahasa + entry scratchpad yang sudah didecode.
func BuildLiveSnapshotResponse(
	m *sessionModel.LiveSessionModel,
	entries map[string]sessionModel.ScratchpadEntry,
	language *string,
	payment *accessDto.PaymentStatusResponse,
) LiveSnapshotResponse {
	var output json.RawMessage
	if len(m.LiveSessionCurrentOutput) > 0 {
		output = json.RawMessage(m.LiveSessionCurrentOutput)
	}
	return LiveSnapshotResponse{
		JoinCode: m.LiveSessionJoinCode,
		Title:    m.LiveSessionTitle,
		IsActive: m.LiveSessionIsActive,

		Code:     m.LiveSessionCurrentCode,
		Output:   output,
		Language: language,

		ParticipantCount:  len(entries),
		WorkspaceFileID:   m.LiveSessionWorkspaceFileID,
		WorkspaceFileName: m.LiveSessionWorkspaceFileName,

		StartedAt: m.LiveSessionStartedAt,
		EndedAt:   m.LiveSessionEndedAt,

		PaymentStatus: payment,
	}
}

// BuildStudentScratchpadResponses membalik map jadi array. Urutan TIDAK
// dijamin (iterasi map), sesuai kontrak endpoint students.
func BuildStudentScratchpadResponses(entries map[string]sessionModel.ScratchpadEntry) []StudentScratchpadResponse {
	out := make([]StudentScratchpadResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, StudentScratchpadResponse{
			UserID:            e.UserID,
			Name:              e.UserName,
			Code:              e.Code,
			Language:          e.Language,
			UpdatedAt:         e.UpdatedAt,
			Output:            e.Output,
			WorkspaceFileID:   e.WorkspaceFileID,
			WorkspaceFileName: e.WorkspaceFileName,
		})
	}
	return out
}
