// file: internals/features/live/sessions/service/live_session_service_test.go
package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	sessionDto "kodingku_backend/internals/features/live/sessions/dto"
	sessionModel "kodingku_backend/internals/features/live/sessions/model"
	fileService "kodingku_backend/internals/features/workspace/files/service"
)

// fakeFileResolver memenuhi fileService.FileResolver tanpa DB.
type fakeFileResolver struct {
	files map[uuid.UUID]*fileService.ResolvedWorkspaceFile
}

func (f *fakeFileResolver) ResolveWorkspaceFile(id uuid.UUID) *fileService.ResolvedWorkspaceFile {
	return f.files[id]
}

func sp(s string) *string { return &s }

/* =========================
   Broadcast partial update
   ========================= */

func noLanguage(string) *uuid.UUID { return nil }
func noFileName(uuid.UUID) *string { return nil }

func TestBuildBroadcastUpdates_CodeOnly(t *testing.T) {
	updates := buildBroadcastUpdates(&sessionDto.BroadcastRequest{Code: sp("print(1)")}, noLanguage, noFileName)
	require.Len(t, updates, 1)
	assert.Equal(t, "print(1)", updates["live_session_current_code"])
}

func TestBuildBroadcastUpdates_LanguageOnlyNeverTouchesCode(t *testing.T) {
	langID := uuid.New()
	resolver := func(slug string) *uuid.UUID {
		if slug == "python" {
			return &langID
		}
		return nil
	}

	updates := buildBroadcastUpdates(&sessionDto.BroadcastRequest{LanguageSlug: sp("python")}, resolver, noFileName)
	require.Len(t, updates, 1)
	assert.Equal(t, langID, updates["live_session_language_id"])
	assert.NotContains(t, updates, "live_session_current_code")
	assert.NotContains(t, updates, "live_session_current_output")
}

func TestBuildBroadcastUpdates_UnknownSlugSilentlyIgnored(t *testing.T) {
	updates := buildBroadcastUpdates(&sessionDto.BroadcastRequest{
		Code:         sp("x"),
		LanguageSlug: sp("brainfuck"),
	}, noLanguage, noFileName)
	require.Len(t, updates, 1)
	assert.Equal(t, "x", updates["live_session_current_code"])
}

func TestBuildBroadcastUpdates_Output(t *testing.T) {
	out := json.RawMessage(`{"stdout":"1\n"}`)
	updates := buildBroadcastUpdates(&sessionDto.BroadcastRequest{Output: out}, noLanguage, noFileName)
	assert.Equal(t, datatypes.JSON(out), updates["live_session_current_output"])
}

func TestBuildBroadcastUpdates_WorkspaceFileBinding(t *testing.T) {
	fileID := uuid.New()

	t.Run("file ketemu: id dan nama ditulis", func(t *testing.T) {
		name := "main.go"
		updates := buildBroadcastUpdates(&sessionDto.BroadcastRequest{WorkspaceFileID: &fileID},
			noLanguage, func(uuid.UUID) *string { return &name })
		assert.Equal(t, fileID, updates["live_session_workspace_file_id"])
		assert.Equal(t, "main.go", updates["live_session_workspace_file_name"])
	})

	t.Run("file hilang: id tetap ditulis, nama dikosongkan", func(t *testing.T) {
		updates := buildBroadcastUpdates(&sessionDto.BroadcastRequest{WorkspaceFileID: &fileID},
			noLanguage, noFileName)
		assert.Equal(t, fileID, updates["live_session_workspace_file_id"])
		assert.Equal(t, gorm.Expr("NULL"), updates["live_session_workspace_file_name"])
	})
}

func TestBuildBroadcastUpdates_EmptyRequest(t *testing.T) {
	updates := buildBroadcastUpdates(&sessionDto.BroadcastRequest{}, noLanguage, noFileName)
	assert.Empty(t, updates)
}

/* =========================
   Scratchpad entry
   ========================= */

func TestBuildScratchpadEntry_LegacyMode(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	req := &sessionDto.ScratchpadUpdateRequest{
		Code:     sp("console.log(1)"),
		Language: sp("javascript"),
		Output:   json.RawMessage(`{"stdout":"1"}`),
	}

	entry := BuildScratchpadEntry(req, userID, "Andi", &fakeFileResolver{}, now)
	assert.Equal(t, userID.String(), entry.UserID)
	assert.Equal(t, "Andi", entry.UserName)
	assert.Equal(t, "console.log(1)", entry.Code)
	assert.Equal(t, "javascript", entry.Language)
	assert.JSONEq(t, `{"stdout":"1"}`, string(entry.Output))
	assert.Equal(t, now, entry.UpdatedAt)
	assert.Nil(t, entry.WorkspaceFileID)
}

func TestBuildScratchpadEntry_FileBoundMode(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	fileID := uuid.New()
	files := &fakeFileResolver{files: map[uuid.UUID]*fileService.ResolvedWorkspaceFile{
		fileID: {ID: fileID, Name: "solusi.py", Content: "print('hai')"},
	}}

	t.Run("isi dan bahasa diambil dari file", func(t *testing.T) {
		req := &sessionDto.ScratchpadUpdateRequest{WorkspaceFileID: &fileID}
		entry := BuildScratchpadEntry(req, userID, "Budi", files, now)
		assert.Equal(t, "print('hai')", entry.Code)
		assert.Equal(t, "python", entry.Language)
		require.NotNil(t, entry.WorkspaceFileName)
		assert.Equal(t, "solusi.py", *entry.WorkspaceFileName)
		assert.Equal(t, &fileID, entry.WorkspaceFileID)
	})

	t.Run("language eksplisit menang atas inferensi ekstensi", func(t *testing.T) {
		req := &sessionDto.ScratchpadUpdateRequest{
			WorkspaceFileID: &fileID,
			Language:        sp("python3"),
		}
		entry := BuildScratchpadEntry(req, userID, "Budi", files, now)
		assert.Equal(t, "python3", entry.Language)
	})

	t.Run("file hilang jatuh ke code kiriman", func(t *testing.T) {
		missing := uuid.New()
		req := &sessionDto.ScratchpadUpdateRequest{
			WorkspaceFileID: &missing,
			Code:            sp("cadangan"),
			Language:        sp("plaintext"),
		}
		entry := BuildScratchpadEntry(req, userID, "Budi", files, now)
		assert.Equal(t, "cadangan", entry.Code)
		assert.Equal(t, "plaintext", entry.Language)
		assert.Equal(t, &missing, entry.WorkspaceFileID)
		assert.Nil(t, entry.WorkspaceFileName)
	})
}

/* =========================
   Reaper & resolusi bahasa
   ========================= */

func TestExpiredSessionIDs(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	old := now.Add(-25 * time.Hour)
	fresh := now.Add(-2 * time.Hour)

	stale := sessionModel.LiveSessionModel{
		LiveSessionID:        uuid.New(),
		LiveSessionIsActive:  true,
		LiveSessionStartedAt: &old,
	}
	running := sessionModel.LiveSessionModel{
		LiveSessionID:        uuid.New(),
		LiveSessionIsActive:  true,
		LiveSessionStartedAt: &fresh,
	}
	alreadyEnded := sessionModel.LiveSessionModel{
		LiveSessionID:        uuid.New(),
		LiveSessionIsActive:  false,
		LiveSessionStartedAt: &old,
	}
	// tanpa started_at umur dihitung dari created_at
	neverStarted := sessionModel.LiveSessionModel{
		LiveSessionID:        uuid.New(),
		LiveSessionIsActive:  true,
		LiveSessionCreatedAt: old,
	}

	ids := ExpiredSessionIDs([]sessionModel.LiveSessionModel{stale, running, alreadyEnded, neverStarted}, now)
	assert.ElementsMatch(t, []uuid.UUID{stale.LiveSessionID, neverStarted.LiveSessionID}, ids)
}

func TestResolveSessionLanguage_FileExtensionWins(t *testing.T) {
	svc := &LiveSessionService{}
	langID := uuid.New()
	m := &sessionModel.LiveSessionModel{
		LiveSessionWorkspaceFileName: sp("latihan.ts"),
		LiveSessionLanguageID:        &langID,
	}

	// resolver pertama (ekstensi file) menang sebelum ref tersimpan disentuh
	slug := svc.ResolveSessionLanguage(m)
	require.NotNil(t, slug)
	assert.Equal(t, "typescript", *slug)
}

func TestResolveSessionLanguage_NothingResolvable(t *testing.T) {
	svc := &LiveSessionService{}

	assert.Nil(t, svc.ResolveSessionLanguage(&sessionModel.LiveSessionModel{}))
	assert.Nil(t, svc.ResolveSessionLanguage(&sessionModel.LiveSessionModel{
		LiveSessionWorkspaceFileName: sp("README"),
	}))
}
