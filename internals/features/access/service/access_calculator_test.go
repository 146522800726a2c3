// file: internals/features/access/service/access_calculator_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Jam di-pin supaya aritmetika hari deterministik.
var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func tp(t time.Time) *time.Time { return &t }

// midnight mengembalikan 00:00 UTC sejumlah hari dari testNow. Due date dan
// trial end di data nyata disimpan sebagai tanggal (tengah malam).
func midnight(daysFromNow int) time.Time {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, daysFromNow)
}

func defaultPolicy() *AccessPolicy {
	return &AccessPolicy{
		WarningDaysBeforeDue: 3,
		GracePeriodDays:      5,
		BlockUnpaidStudents:  true,
	}
}

func admittedStudent() StudentFacts {
	return StudentFacts{Role: "student", IsAdmissionConfirmed: true}
}

func TestDaysUntilCeil(t *testing.T) {
	// Jatuh tempo tengah malam tadi = masih hari ini = 0, belum overdue.
	assert.Equal(t, 0, daysUntilCeil(midnight(0), testNow))
	// Baru jadi overdue setelah harinya benar-benar lewat.
	assert.Equal(t, -1, daysUntilCeil(midnight(-1), testNow))
	assert.Equal(t, -3, daysUntilCeil(midnight(-3), testNow))
	// Ke depan dibulatkan ke atas.
	assert.Equal(t, 1, daysUntilCeil(midnight(1), testNow))
	assert.Equal(t, 5, daysUntilCeil(midnight(5), testNow))
	assert.Equal(t, 1, daysUntilCeil(testNow.Add(time.Hour), testNow))
	assert.Equal(t, 0, daysUntilCeil(testNow, testNow))
	// Tepat kelipatan 24 jam tidak ikut dibulatkan naik.
	assert.Equal(t, 2, daysUntilCeil(testNow.Add(48*time.Hour), testNow))
}

func TestCalculateAccessStatus_TemporaryOverrideWins(t *testing.T) {
	// Fakta seburuk apa pun kalah melawan override manual.
	facts := StudentFacts{
		Role:                   "student",
		TemporaryAccessGranted: true,
		IsAdmissionConfirmed:   false,
		TrialEndDate:           tp(midnight(-30)),
		NextPaymentDueDate:     tp(midnight(-30)),
	}
	d := CalculateAccessStatus(facts, defaultPolicy(), testNow)
	assert.Equal(t, StatusGranted, d.Status)
	assert.Empty(t, d.Reason)
}

func TestCalculateAccessStatus_NonStudentAlwaysGranted(t *testing.T) {
	for _, role := range []string{"trainer", "manager", "admin", "Trainer"} {
		facts := StudentFacts{
			Role:               role,
			NextPaymentDueDate: tp(midnight(-30)),
		}
		d := CalculateAccessStatus(facts, defaultPolicy(), testNow)
		assert.Equal(t, StatusGranted, d.Status, "role %s", role)
	}
}

func TestCalculateAccessStatus_NilPolicyFailsOpen(t *testing.T) {
	facts := StudentFacts{Role: "student", IsAdmissionConfirmed: false}
	d := CalculateAccessStatus(facts, nil, testNow)
	assert.Equal(t, StatusGranted, d.Status)
}

func TestCalculateAccessStatus_ActiveTrialBeatsPaymentRules(t *testing.T) {
	// Trial 5 hari lagi dengan jendela warning 7: tetap trial, bukan warning,
	// walaupun ada due date dekat.
	facts := admittedStudent()
	facts.TrialEndDate = tp(midnight(5))
	facts.NextPaymentDueDate = tp(midnight(2))
	policy := defaultPolicy()
	policy.WarningDaysBeforeDue = 7

	d := CalculateAccessStatus(facts, policy, testNow)
	assert.Equal(t, StatusTrial, d.Status)
	require.NotNil(t, d.TrialDaysLeft)
	assert.Equal(t, 5, *d.TrialDaysLeft)
}

func TestCalculateAccessStatus_ExpiredTrialWithoutAdmission(t *testing.T) {
	facts := StudentFacts{
		Role:         "student",
		TrialEndDate: tp(midnight(-10)),
	}
	d := CalculateAccessStatus(facts, defaultPolicy(), testNow)
	assert.Equal(t, StatusRestricted, d.Status)
	assert.Equal(t, ReasonTrialExpired, d.Reason)
}

func TestCalculateAccessStatus_NoTrialWithoutAdmission(t *testing.T) {
	facts := StudentFacts{Role: "student"}
	d := CalculateAccessStatus(facts, defaultPolicy(), testNow)
	assert.Equal(t, StatusRestricted, d.Status)
	assert.Equal(t, ReasonAdmissionNotConfirmed, d.Reason)
}

func TestCalculateAccessStatus_AdmittedWithNothingOwed(t *testing.T) {
	d := CalculateAccessStatus(admittedStudent(), defaultPolicy(), testNow)
	assert.Equal(t, StatusGranted, d.Status)
	assert.Nil(t, d.DaysUntilDue)
}

func TestCalculateAccessStatus_FutureDueDate(t *testing.T) {
	t.Run("dalam jendela warning", func(t *testing.T) {
		facts := admittedStudent()
		facts.NextPaymentDueDate = tp(midnight(2))
		d := CalculateAccessStatus(facts, defaultPolicy(), testNow)
		assert.Equal(t, StatusWarning, d.Status)
		require.NotNil(t, d.DaysUntilDue)
		assert.Equal(t, 2, *d.DaysUntilDue)
		assert.Nil(t, d.OverdueDays)
	})

	t.Run("tepat di batas jendela warning", func(t *testing.T) {
		facts := admittedStudent()
		facts.NextPaymentDueDate = tp(midnight(3))
		d := CalculateAccessStatus(facts, defaultPolicy(), testNow)
		assert.Equal(t, StatusWarning, d.Status)
	})

	t.Run("jatuh tempo hari ini masih warning, bukan overdue", func(t *testing.T) {
		facts := admittedStudent()
		facts.NextPaymentDueDate = tp(midnight(0))
		d := CalculateAccessStatus(facts, defaultPolicy(), testNow)
		assert.Equal(t, StatusWarning, d.Status)
		require.NotNil(t, d.DaysUntilDue)
		assert.Equal(t, 0, *d.DaysUntilDue)
		assert.Nil(t, d.OverdueDays)
	})

	t.Run("di luar jendela warning", func(t *testing.T) {
		facts := admittedStudent()
		facts.NextPaymentDueDate = tp(midnight(10))
		d := CalculateAccessStatus(facts, defaultPolicy(), testNow)
		assert.Equal(t, StatusGranted, d.Status)
	})
}

func TestCalculateAccessStatus_OverdueWithinGrace(t *testing.T) {
	facts := admittedStudent()
	facts.NextPaymentDueDate = tp(testNow.Add(-3 * 24 * time.Hour))

	d := CalculateAccessStatus(facts, defaultPolicy(), testNow)
	assert.Equal(t, StatusGrace, d.Status)
	require.NotNil(t, d.OverdueDays)
	assert.Equal(t, 3, *d.OverdueDays)
}

func TestCalculateAccessStatus_OverdueBeyondGrace(t *testing.T) {
	facts := admittedStudent()
	facts.NextPaymentDueDate = tp(testNow.Add(-3 * 24 * time.Hour))
	policy := defaultPolicy()
	policy.GracePeriodDays = 2

	d := CalculateAccessStatus(facts, policy, testNow)
	assert.Equal(t, StatusRestricted, d.Status)
	assert.Equal(t, ReasonPaymentOverdue, d.Reason)
}

func TestCalculateAccessStatus_OverdueExactlyAtGraceBoundary(t *testing.T) {
	facts := admittedStudent()
	facts.NextPaymentDueDate = tp(testNow.Add(-5 * 24 * time.Hour))

	d := CalculateAccessStatus(facts, defaultPolicy(), testNow)
	assert.Equal(t, StatusGrace, d.Status)
}

func TestCalculateAccessStatus_ZeroGraceDisablesGrace(t *testing.T) {
	facts := admittedStudent()
	facts.NextPaymentDueDate = tp(midnight(-1))
	policy := defaultPolicy()
	policy.GracePeriodDays = 0

	d := CalculateAccessStatus(facts, policy, testNow)
	assert.Equal(t, StatusRestricted, d.Status)
	assert.Equal(t, ReasonPaymentOverdue, d.Reason)
}

func TestCalculateAccessStatus_BlockDisabledStaysGranted(t *testing.T) {
	facts := admittedStudent()
	facts.NextPaymentDueDate = tp(midnight(-30))
	policy := defaultPolicy()
	policy.BlockUnpaidStudents = false

	d := CalculateAccessStatus(facts, policy, testNow)
	assert.Equal(t, StatusGranted, d.Status)
	require.NotNil(t, d.OverdueDays)
	assert.Equal(t, 30, *d.OverdueDays)
}

func TestCalculateAccessStatus_Idempotent(t *testing.T) {
	facts := admittedStudent()
	facts.TrialEndDate = tp(midnight(-2))
	facts.NextPaymentDueDate = tp(midnight(1))
	policy := defaultPolicy()

	first := CalculateAccessStatus(facts, policy, testNow)
	second := CalculateAccessStatus(facts, policy, testNow)
	assert.Equal(t, first, second)
}

func TestPolicyFromSettings_NilPassesThrough(t *testing.T) {
	assert.Nil(t, PolicyFromSettings(nil))
}

func TestTrialWindowFlags(t *testing.T) {
	policy := defaultPolicy()
	ip := func(v int) *int { return &v }

	t.Run("tanpa trial atau tanpa kebijakan", func(t *testing.T) {
		soon, grace := trialWindowFlags(nil, policy)
		assert.False(t, soon)
		assert.False(t, grace)

		soon, grace = trialWindowFlags(ip(2), nil)
		assert.False(t, soon)
		assert.False(t, grace)
	})

	t.Run("trial hampir habis", func(t *testing.T) {
		soon, grace := trialWindowFlags(ip(2), policy)
		assert.True(t, soon)
		assert.False(t, grace)
	})

	t.Run("trial masih lama", func(t *testing.T) {
		soon, grace := trialWindowFlags(ip(5), policy)
		assert.False(t, soon)
		assert.False(t, grace)
	})

	t.Run("trial habis hari ini masuk masa tenggang", func(t *testing.T) {
		soon, grace := trialWindowFlags(ip(0), policy)
		assert.False(t, soon)
		assert.True(t, grace)
	})

	t.Run("tepat di batas masa tenggang", func(t *testing.T) {
		soon, grace := trialWindowFlags(ip(-5), policy)
		assert.False(t, soon)
		assert.True(t, grace)
	})

	t.Run("lewat masa tenggang", func(t *testing.T) {
		soon, grace := trialWindowFlags(ip(-6), policy)
		assert.False(t, soon)
		assert.False(t, grace)
	})

	t.Run("masa tenggang nol menonaktifkan flag", func(t *testing.T) {
		zero := defaultPolicy()
		zero.GracePeriodDays = 0
		soon, grace := trialWindowFlags(ip(-1), zero)
		assert.False(t, soon)
		assert.False(t, grace)
	})
}
