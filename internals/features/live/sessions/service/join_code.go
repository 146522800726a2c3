// file: internals/features/live/sessions/service/join_code.go
package service

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Alfabet join code: A-Z + 2-9 tanpa glyph ambigu {0, O, 1, I, L}.
const joinCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// Format final: XXX-XXX-XXX, disimpan upper-case.
var joinCodeRe = regexp.MustCompile(`^[A-HJKMNP-Z2-9]{3}-[A-HJKMNP-Z2-9]{3}-[A-HJKMNP-Z2-9]{3}$`)

// GenerateJoinCode membuat join code 9 karakter acak dalam format
// XXX-XXX-XXX. Keunikan dicek terpisah oleh pemanggil.
func GenerateJoinCode() (string, error) {
	var b strings.Builder
	b.Grow(11)
	for i := 0; i < 9; i++ {
		if i > 0 && i%3 == 0 {
			b.WriteByte('-')
		}
		x, err := rand.Int(rand.Reader, big.NewInt(int64(len(joinCodeAlphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(joinCodeAlphabet[x.Int64()])
	}
	return b.String(), nil
}

// NormalizeJoinCode merapikan input user (trim + upper) lalu menolak
// panjang/alfabet/format di luar XXX-XXX-XXX SEBELUM menyentuh DB.
func NormalizeJoinCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if !joinCodeRe.MatchString(code) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Format join code tidak valid")
	}
	return code, nil
}
