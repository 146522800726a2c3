// file: internals/features/live/sessions/service/live_session_service.go
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kodingku_backend/internals/constants"
	sessionDto "kodingku_backend/internals/features/live/sessions/dto"
	sessionModel "kodingku_backend/internals/features/live/sessions/model"
	langService "kodingku_backend/internals/features/platform/languages/service"
	fileService "kodingku_backend/internals/features/workspace/files/service"
)

/*
Store sesi live. Semua mutasi adalah read-modify-write satu dokumen dengan
update PER FIELD (map Updates / jsonb_set), bukan overwrite seluruh row:
broadcast trainer dan scratchpad tiap student menyentuh kolom/key berbeda
sehingga penulis yang berbeda tidak saling menimpa. Satu-satunya race yang
diterima: dua tulisan hampir bersamaan dari student yang SAMA, yang datang
belakangan menang.
*/

type LiveSessionService struct {
	DB        *gorm.DB
	Files     fileService.FileResolver
	Languages *langService.LanguageService
}

func NewLiveSessionService(db *gorm.DB) *LiveSessionService {
	return &LiveSessionService{
		DB:        db,
		Files:     fileService.NewGormFileResolver(db),
		Languages: langService.NewLanguageService(db),
	}
}

/* =========================
   Create & lookup
   ========================= */

// CreateSession membuat sesi baru dengan join code unik dan scratchpad
// kosong. Retry beberapa kali kalau kebetulan tabrakan kode.
func (svc *LiveSessionService) CreateSession(trainerID uuid.UUID, title string) (*sessionModel.LiveSessionModel, error) {
	now := time.Now().UTC()

	for attempt := 0; attempt < 5; attempt++ {
		code, err := GenerateJoinCode()
		if err != nil {
			return nil, err
		}

		var count int64
		if err := svc.DB.Model(&sessionModel.LiveSessionModel{}).
			Where("live_session_join_code = ?", code).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			continue
		}

		m := sessionModel.LiveSessionModel{
			LiveSessionTrainerID:          trainerID,
			LiveSessionTitle:              title,
			LiveSessionJoinCode:           code,
			LiveSessionIsActive:           true,
			LiveSessionStudentScratchpads: datatypes.JSON([]byte(`{}`)),
			LiveSessionStartedAt:          &now,
		}
		if err := svc.DB.Create(&m).Error; err != nil {
			// unique index bisa tetap menolak kalau kode yang sama lolos
			// dari count di atas (dua create berbarengan); coba kode lain.
			if isDuplicateJoinCode(err) {
				continue
			}
			return nil, err
		}
		return &m, nil
	}
	return nil, fmt.Errorf("gagal mendapatkan join code unik setelah beberapa percobaan")
}

func isDuplicateJoinCode(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// FindByJoinCode mencari sesi berdasarkan join code (sudah dinormalisasi).
// activeOnly=true menolak sesi yang sudah berakhir dengan 404 yang sama
// dengan sesi tidak ada.
func (svc *LiveSessionService) FindByJoinCode(code string, activeOnly bool) (*sessionModel.LiveSessionModel, error) {
	q := svc.DB.Where("live_session_join_code = ?", code)
	if activeOnly {
		q = q.Where("live_session_is_active = TRUE")
	}

	var m sessionModel.LiveSessionModel
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sesi live tidak ditemukan")
		}
		return nil, err
	}
	return &m, nil
}

// ListActive mengambil sesi aktif, opsional difilter trainer.
func (svc *LiveSessionService) ListActive(trainerID *uuid.UUID) ([]sessionModel.LiveSessionModel, error) {
	q := svc.DB.Where("live_session_is_active = TRUE")
	if trainerID != nil {
		q = q.Where("live_session_trainer_id = ?", *trainerID)
	}

	var sessions []sessionModel.LiveSessionModel
	if err := q.Order("live_session_created_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

/* =========================
   Broadcast trainer
   ========================= */

// UpdateBroadcast menulis HANYA field yang dikirim (partial update):
// broadcast berisi language saja tidak menyentuh current_code. Slug bahasa
// yang tidak dikenal diabaikan diam-diam, bukan error.
func (svc *LiveSessionService) UpdateBroadcast(sessionID uuid.UUID, req *sessionDto.BroadcastRequest) error {
	updates := buildBroadcastUpdates(req, svc.resolveLanguageID, svc.resolveFileName)
	if len(updates) == 0 {
		return nil
	}
	updates["live_session_updated_at"] = time.Now().UTC()

	return svc.DB.Model(&sessionModel.LiveSessionModel{}).
		Where("live_session_id = ?", sessionID).
		Updates(updates).Error
}

// buildBroadcastUpdates dipisah murni (resolver di-inject) supaya bisa
// dites tanpa DB.
func buildBroadcastUpdates(
	req *sessionDto.BroadcastRequest,
	resolveLanguageID func(slug string) *uuid.UUID,
	resolveFileName func(id uuid.UUID) *string,
) map[string]interface{} {
	updates := map[string]interface{}{}

	if req.Code != nil {
		updates["live_session_current_code"] = *req.Code
	}
	if len(req.Output) > 0 {
		updates["live_session_current_output"] = datatypes.JSON(req.Output)
	}
	if req.LanguageSlug != nil {
		if id := resolveLanguageID(*req.LanguageSlug); id != nil {
			updates["live_session_language_id"] = *id
		}
	}
	if req.WorkspaceFileID != nil {
		updates["live_session_workspace_file_id"] = *req.WorkspaceFileID
		if name := resolveFileName(*req.WorkspaceFileID); name != nil {
			updates["live_session_workspace_file_name"] = *name
		} else {
			updates["live_session_workspace_file_name"] = gorm.Expr("NULL")
		}
	}
	return updates
}

func (svc *LiveSessionService) resolveLanguageID(slug string) *uuid.UUID {
	lang := svc.Languages.ResolveSlug(slug)
	if lang == nil {
		return nil
	}
	id := lang.CodingLanguageID
	return &id
}

func (svc *LiveSessionService) resolveFileName(id uuid.UUID) *string {
	f := svc.Files.ResolveWorkspaceFile(id)
	if f == nil {
		return nil
	}
	name := f.Name
	return &name
}

/* =========================
   Scratchpad student
   ========================= */

// BuildScratchpadEntry merakit entry scratchpad dari request.
// Mode file-bound: isi & nama diambil dari file workspace; file hilang
// DITOLERANSI, entry jatuh ke code/language kiriman caller. Language
// eksplisit selalu menang atas hasil inferensi ekstensi.
func BuildScratchpadEntry(
	req *sessionDto.ScratchpadUpdateRequest,
	userID uuid.UUID,
	userName string,
	files fileService.FileResolver,
	now time.Time,
) sessionModel.ScratchpadEntry {
	entry := sessionModel.ScratchpadEntry{
		UserID:    userID.String(),
		UserName:  userName,
		UpdatedAt: now,
	}
	if req.Code != nil {
		entry.Code = *req.Code
	}
	if req.Language != nil {
		entry.Language = *req.Language
	}
	if len(req.Output) > 0 {
		entry.Output = req.Output
	}

	if req.WorkspaceFileID != nil {
		entry.WorkspaceFileID = req.WorkspaceFileID
		if f := files.ResolveWorkspaceFile(*req.WorkspaceFileID); f != nil {
			entry.WorkspaceFileName = &f.Name
			entry.Code = f.Content
			if req.Language == nil {
				entry.Language = constants.DetectLanguageSlugFromFilename(f.Name)
			}
		}
	}
	return entry
}

// UpsertScratchpad MENGGANTI seluruh entry milik satu student lewat
// jsonb_set pada key user id, tanpa membaca-menulis ulang map penuh.
// Tulisan student lain tidak tersentuh.
func (svc *LiveSessionService) UpsertScratchpad(sessionID uuid.UUID, studentID uuid.UUID, entry sessionModel.ScratchpadEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return svc.DB.Model(&sessionModel.LiveSessionModel{}).
		Where("live_session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"live_session_student_scratchpads": gorm.Expr(
				"jsonb_set(COALESCE(live_session_student_scratchpads, '{}'::jsonb), ?, ?::jsonb, TRUE)",
				pq.Array([]string{studentID.String()}),
				string(payload),
			),
			"live_session_updated_at": time.Now().UTC(),
		}).Error
}

/* =========================
   Lifecycle & counter legacy
   ========================= */

// SetActive menulis status aktif; endedAt hanya disentuh kalau dioper.
func (svc *LiveSessionService) SetActive(sessionID uuid.UUID, active bool, endedAt *time.Time) error {
	updates := map[string]interface{}{
		"live_session_is_active":  active,
		"live_session_updated_at": time.Now().UTC(),
	}
	if endedAt != nil {
		updates["live_session_ended_at"] = *endedAt
	}

	return svc.DB.Model(&sessionModel.LiveSessionModel{}).
		Where("live_session_id = ?", sessionID).
		Updates(updates).Error
}

// IncrementParticipants / DecrementParticipants memelihara counter legacy
// join/leave. Counter ini TIDAK otoritatif (lihat komentar model); decrement
// tidak pernah turun di bawah nol.
func (svc *LiveSessionService) IncrementParticipants(sessionID uuid.UUID) error {
	return svc.DB.Model(&sessionModel.LiveSessionModel{}).
		Where("live_session_id = ?", sessionID).
		Update("live_session_participant_count",
			gorm.Expr("live_session_participant_count + 1")).Error
}

func (svc *LiveSessionService) DecrementParticipants(sessionID uuid.UUID) error {
	return svc.DB.Model(&sessionModel.LiveSessionModel{}).
		Where("live_session_id = ?", sessionID).
		Update("live_session_participant_count",
			gorm.Expr("GREATEST(live_session_participant_count - 1, 0)")).Error
}

/* =========================
   Resolusi bahasa snapshot
   ========================= */

// ResolveSessionLanguage menjalankan rantai resolver berurut, non-nil
// pertama menang: ekstensi file trainer -> ref bahasa tersimpan -> nil.
func (svc *LiveSessionService) ResolveSessionLanguage(m *sessionModel.LiveSessionModel) *string {
	resolvers := []func() *string{
		func() *string {
			if m.LiveSessionWorkspaceFileName == nil {
				return nil
			}
			if slug := constants.DetectLanguageSlugFromFilename(*m.LiveSessionWorkspaceFileName); slug != "" {
				return &slug
			}
			return nil
		},
		func() *string {
			if m.LiveSessionLanguageID == nil {
				return nil
			}
			lang := svc.Languages.GetByID(m.LiveSessionLanguageID.String())
			if lang == nil {
				return nil
			}
			slug := lang.CodingLanguageSlug
			return &slug
		},
	}

	for _, resolve := range resolvers {
		if slug := resolve(); slug != nil {
			return slug
		}
	}
	return nil
}
