// file: internals/features/live/sessions/dto/live_session_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	sessionModel "kodingku_backend/internals/features/live/sessions/model"
)

func strPtr(s string) *string { return &s }

func TestBuildLiveSnapshotResponse_ParticipantCountFromScratchpads(t *testing.T) {
	// kolom counter legacy sengaja diisi nilai ngawur: yang dipercaya
	// tetap jumlah key scratchpad
	m := &sessionModel.LiveSessionModel{
		LiveSessionJoinCode:         "ABC-234-XYZ",
		LiveSessionTitle:            "Belajar Go",
		LiveSessionIsActive:         true,
		LiveSessionCurrentCode:      strPtr("fmt.Println(1)"),
		LiveSessionCurrentOutput:    datatypes.JSON([]byte(`{"stdout":"1\n"}`)),
		LiveSessionParticipantCount: 99,
	}
	entries := map[string]sessionModel.ScratchpadEntry{
		"a": {UserID: "a", UserName: "Andi"},
		"b": {UserID: "b", UserName: "Budi"},
	}

	resp := BuildLiveSnapshotResponse(m, entries, strPtr("go"), nil)
	assert.Equal(t, 2, resp.ParticipantCount)
	assert.Equal(t, "ABC-234-XYZ", resp.JoinCode)
	assert.True(t, resp.IsActive)
	require.NotNil(t, resp.Code)
	assert.Equal(t, "fmt.Println(1)", *resp.Code)
	assert.JSONEq(t, `{"stdout":"1\n"}`, string(resp.Output))
	require.NotNil(t, resp.Language)
	assert.Equal(t, "go", *resp.Language)
	assert.Nil(t, resp.PaymentStatus)
}

func TestBuildLiveSnapshotResponse_EmptySession(t *testing.T) {
	m := &sessionModel.LiveSessionModel{LiveSessionJoinCode: "ABC-234-XYZ"}

	resp := BuildLiveSnapshotResponse(m, map[string]sessionModel.ScratchpadEntry{}, nil, nil)
	assert.Equal(t, 0, resp.ParticipantCount)
	assert.Nil(t, resp.Code)
	assert.Nil(t, resp.Output)
	assert.Nil(t, resp.Language)
}

func TestToLiveSessionResponse_DerivedCount(t *testing.T) {
	m := &sessionModel.LiveSessionModel{
		LiveSessionID:               uuid.New(),
		LiveSessionTitle:            "Kelas Python",
		LiveSessionJoinCode:         "DEF-567-GHJ",
		LiveSessionIsActive:         true,
		LiveSessionParticipantCount: 42,
		LiveSessionStudentScratchpads: datatypes.JSON([]byte(
			`{"a":{"user_id":"a","user_name":"Andi","code":"","language":"","updated_at":"2025-03-10T10:00:00Z"}}`)),
		LiveSessionCreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	resp := ToLiveSessionResponse(m)
	assert.Equal(t, 1, resp.ParticipantCount)
	assert.Equal(t, "DEF-567-GHJ", resp.JoinCode)
}

func TestBuildStudentScratchpadResponses(t *testing.T) {
	updatedA := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	updatedB := updatedA.Add(time.Minute)
	fileID := uuid.New()
	entries := map[string]sessionModel.ScratchpadEntry{
		"a": {UserID: "a", UserName: "Andi", Code: "print(1)", Language: "python", UpdatedAt: updatedA},
		"b": {
			UserID: "b", UserName: "Budi", Code: "x", Language: "go",
			UpdatedAt: updatedB, WorkspaceFileID: &fileID, WorkspaceFileName: strPtr("main.go"),
		},
	}

	out := BuildStudentScratchpadResponses(entries)
	require.Len(t, out, 2)
	assert.ElementsMatch(t,
		[]string{"Andi", "Budi"},
		[]string{out[0].Name, out[1].Name},
	)
	for _, e := range out {
		if e.UserID == "b" {
			assert.Equal(t, &fileID, e.WorkspaceFileID)
			require.NotNil(t, e.WorkspaceFileName)
			assert.Equal(t, "main.go", *e.WorkspaceFileName)
		}
	}
}

func TestScratchpadUpdateRequest_HasWritableInput(t *testing.T) {
	assert.False(t, (&ScratchpadUpdateRequest{}).HasWritableInput())
	assert.False(t, (&ScratchpadUpdateRequest{Language: strPtr("go")}).HasWritableInput())
	assert.True(t, (&ScratchpadUpdateRequest{Code: strPtr("")}).HasWritableInput())
	id := uuid.New()
	assert.True(t, (&ScratchpadUpdateRequest{WorkspaceFileID: &id}).HasWritableInput())
}
