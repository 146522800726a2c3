// file: internals/features/live/sessions/service/join_code_test.go
package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJoinCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code, err := GenerateJoinCode()
		require.NoError(t, err)
		assert.Len(t, code, 11)
		assert.Regexp(t, joinCodeRe, code)
		normalized, err := NormalizeJoinCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, normalized)
		seen[code] = true
	}
	// 31^9 kombinasi: 200 undian praktis tidak mungkin tabrakan
	assert.Greater(t, len(seen), 190)
}

func TestNormalizeJoinCode(t *testing.T) {
	t.Run("menerima format valid", func(t *testing.T) {
		code, err := NormalizeJoinCode("ABC-234-XYZ")
		require.NoError(t, err)
		assert.Equal(t, "ABC-234-XYZ", code)
	})

	t.Run("input lowercase dinaikkan ke upper", func(t *testing.T) {
		code, err := NormalizeJoinCode("  abc-234-xyz ")
		require.NoError(t, err)
		assert.Equal(t, "ABC-234-XYZ", code)
	})

	t.Run("menolak glyph ambigu", func(t *testing.T) {
		for _, raw := range []string{"ABC-0O1-XYZ", "ABC-III-XYZ", "LLL-234-XYZ"} {
			_, err := NormalizeJoinCode(raw)
			assert.Error(t, err, raw)
		}
	})

	t.Run("menolak format tanpa pemisah atau salah panjang", func(t *testing.T) {
		for _, raw := range []string{"ABCDEFGHI", "ABC-234", "ABC-234-XYZ-234", "", "AB-C34-XYZ"} {
			_, err := NormalizeJoinCode(raw)
			assert.Error(t, err, raw)
		}
	})

	t.Run("error berupa 400 fiber", func(t *testing.T) {
		_, err := NormalizeJoinCode("salah")
		var fe *fiber.Error
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	})

	t.Run("alfabet tidak memuat glyph ambigu", func(t *testing.T) {
		for _, ch := range "0O1IL" {
			assert.False(t, strings.ContainsRune(joinCodeAlphabet, ch), string(ch))
		}
	})
}
