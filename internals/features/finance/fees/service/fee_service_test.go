// file: internals/features/finance/fees/service/fee_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feeModel "kodingku_backend/internals/features/finance/fees/model"
)

func day(offset int) time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func recordWith(t *testing.T, items []feeModel.InstallmentPayload) *feeModel.FeeRecordModel {
	t.Helper()
	rec := &feeModel.FeeRecordModel{}
	require.NoError(t, rec.SetInstallments(items))
	return rec
}

func TestNextUnpaidInstallment(t *testing.T) {
	svc := &FeeService{}

	t.Run("nil record", func(t *testing.T) {
		assert.Nil(t, svc.NextUnpaidInstallment(nil))
	})

	t.Run("kolom kosong", func(t *testing.T) {
		assert.Nil(t, svc.NextUnpaidInstallment(&feeModel.FeeRecordModel{}))
	})

	t.Run("semua lunas", func(t *testing.T) {
		rec := recordWith(t, []feeModel.InstallmentPayload{
			{Seq: 1, DueDate: day(-30), Amount: 100, IsPaid: true},
			{Seq: 2, DueDate: day(0), Amount: 100, IsPaid: true},
		})
		assert.Nil(t, svc.NextUnpaidInstallment(rec))
	})

	t.Run("due date paling awal menang walau urutan acak", func(t *testing.T) {
		rec := recordWith(t, []feeModel.InstallmentPayload{
			{Seq: 3, DueDate: day(60), Amount: 100},
			{Seq: 1, DueDate: day(-30), Amount: 100, IsPaid: true},
			{Seq: 2, DueDate: day(14), Amount: 100},
		})
		next := svc.NextUnpaidInstallment(rec)
		require.NotNil(t, next)
		assert.Equal(t, 2, next.Seq)
		assert.True(t, next.DueDate.Equal(day(14)))
	})

	t.Run("tanggal sama, seq terkecil menang", func(t *testing.T) {
		rec := recordWith(t, []feeModel.InstallmentPayload{
			{Seq: 5, DueDate: day(7), Amount: 100},
			{Seq: 2, DueDate: day(7), Amount: 100},
		})
		next := svc.NextUnpaidInstallment(rec)
		require.NotNil(t, next)
		assert.Equal(t, 2, next.Seq)
	})

	t.Run("hasil adalah salinan, aman dimutasi", func(t *testing.T) {
		rec := recordWith(t, []feeModel.InstallmentPayload{
			{Seq: 1, DueDate: day(7), Amount: 100},
		})
		first := svc.NextUnpaidInstallment(rec)
		require.NotNil(t, first)
		first.IsPaid = true
		first.Amount = 0

		second := svc.NextUnpaidInstallment(rec)
		require.NotNil(t, second)
		assert.False(t, second.IsPaid)
		assert.Equal(t, float64(100), second.Amount)
	})

	t.Run("jsonb rusak dianggap tidak ada cicilan", func(t *testing.T) {
		rec := &feeModel.FeeRecordModel{FeeRecordInstallments: []byte(`{bukan array`)}
		assert.Nil(t, svc.NextUnpaidInstallment(rec))
	})
}

func TestInstallmentRoundTrip(t *testing.T) {
	method := "gopay"
	paid := day(-3).Add(10 * time.Hour)
	items := []feeModel.InstallmentPayload{
		{Seq: 1, DueDate: day(-30), Amount: 1500000, IsPaid: true, PaymentMethod: &method, PaidAt: &paid},
		{Seq: 2, DueDate: day(14), Amount: 1500000},
	}
	rec := recordWith(t, items)

	decoded, err := rec.DecodeInstallments()
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, 1, decoded[0].Seq)
	require.NotNil(t, decoded[0].PaymentMethod)
	assert.Equal(t, "gopay", *decoded[0].PaymentMethod)
	require.NotNil(t, decoded[0].PaidAt)
	assert.True(t, decoded[0].PaidAt.Equal(paid))
	assert.Nil(t, decoded[1].PaymentMethod)
	assert.Nil(t, decoded[1].MidtransOrderID)
}
