// file: internals/features/finance/payments/service/midtrans_test.go
package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallmentOrderIDRoundTrip(t *testing.T) {
	feeID := uuid.New()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	orderID := BuildInstallmentOrderID(feeID, 3, now)
	assert.Equal(t, fmt.Sprintf("KDGFEE-3-%d-%s", now.Unix(), feeID), orderID)

	gotID, gotSeq, err := ParseInstallmentOrderID(orderID)
	require.NoError(t, err)
	assert.Equal(t, feeID, gotID)
	assert.Equal(t, 3, gotSeq)
}

func TestParseInstallmentOrderID(t *testing.T) {
	feeID := uuid.New()

	cases := []struct {
		name    string
		orderID string
	}{
		{"prefix asing", fmt.Sprintf("DONASI-1-1700000000-%s", feeID)},
		{"seq bukan angka", fmt.Sprintf("KDGFEE-x-1700000000-%s", feeID)},
		{"seq nol", fmt.Sprintf("KDGFEE-0-1700000000-%s", feeID)},
		{"uuid rusak", "KDGFEE-1-1700000000-bukan-uuid"},
		{"kurang segmen", "KDGFEE-1-1700000000"},
		{"kosong", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseInstallmentOrderID(tc.orderID)
			assert.Error(t, err)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 50))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "abcdef", truncate("abcdef", 0))
}
