// file: internals/features/live/sessions/model/live_session_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestScratchpadEntries(t *testing.T) {
	t.Run("kolom kosong dibaca map kosong", func(t *testing.T) {
		m := LiveSessionModel{}
		entries, err := m.ScratchpadEntries()
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.NotNil(t, entries)
	})

	t.Run("dua entry student tetap terpisah", func(t *testing.T) {
		m := LiveSessionModel{
			LiveSessionStudentScratchpads: datatypes.JSON([]byte(`{
				"5f9b6c1e-0000-0000-0000-000000000001": {"user_id":"5f9b6c1e-0000-0000-0000-000000000001","user_name":"Andi","code":"print(1)","language":"python","updated_at":"2025-03-10T10:00:00Z"},
				"5f9b6c1e-0000-0000-0000-000000000002": {"user_id":"5f9b6c1e-0000-0000-0000-000000000002","user_name":"Budi","code":"fmt.Println(2)","language":"go","updated_at":"2025-03-10T10:01:00Z"}
			}`)),
		}
		entries, err := m.ScratchpadEntries()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Andi", entries["5f9b6c1e-0000-0000-0000-000000000001"].UserName)
		assert.Equal(t, "go", entries["5f9b6c1e-0000-0000-0000-000000000002"].Language)
	})

	t.Run("JSON rusak mengembalikan error", func(t *testing.T) {
		m := LiveSessionModel{
			LiveSessionStudentScratchpads: datatypes.JSON([]byte(`{bukan json`)),
		}
		_, err := m.ScratchpadEntries()
		assert.Error(t, err)
	})
}

func TestExpiryAnchor(t *testing.T) {
	created := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	started := created.Add(30 * time.Minute)

	m := LiveSessionModel{LiveSessionCreatedAt: created}
	assert.Equal(t, created, m.ExpiryAnchor())

	m.LiveSessionStartedAt = &started
	assert.Equal(t, started, m.ExpiryAnchor())
}

func TestIsExpired(t *testing.T) {
	started := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	m := LiveSessionModel{LiveSessionStartedAt: &started}

	assert.False(t, m.IsExpired(started.Add(23*time.Hour), 24*time.Hour))
	// tepat di batas belum kedaluwarsa, harus benar-benar lewat
	assert.False(t, m.IsExpired(started.Add(24*time.Hour), 24*time.Hour))
	assert.True(t, m.IsExpired(started.Add(25*time.Hour), 24*time.Hour))
}
