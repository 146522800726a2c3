// file: internals/features/access/service/access_calculator.go
package service

import (
	"math"
	"strings"
	"time"

	"kodingku_backend/internals/constants"
	settingModel "kodingku_backend/internals/features/platform/settings/model"
)

/*
Kalkulator status akses student. Fungsi murni: TIDAK menyentuh DB,
TIDAK membaca jam sendiri (now dioper dari luar supaya bisa di-pin di test).

Urutan aturan bersifat total, aturan pertama yang cocok menang:
 1. temporary_access_granted   -> granted (override manual selalu menang)
 2. role bukan student         -> granted
 3. kebijakan platform kosong  -> granted (fail-open)
 4. trial masih berjalan       -> trial
 5. trial habis, belum admitted -> restricted
 6. tanpa trial, belum admitted -> restricted
 7. admitted tanpa tagihan     -> granted
 8. due date masih di depan    -> warning (dalam jendela) / granted
 9. overdue dalam masa tenggang -> grace
10. lewat masa tenggang        -> restricted kalau block_unpaid_students,
    selain itu granted
*/

// =============================
// Status & reason
// =============================

const (
	StatusGranted    = "granted"
	StatusTrial      = "trial"
	StatusWarning    = "warning"
	StatusGrace      = "grace"
	StatusRestricted = "restricted"
)

const (
	ReasonMaintenanceMode       = "MAINTENANCE_MODE"
	ReasonTrialExpired          = "TRIAL_EXPIRED"
	ReasonAdmissionNotConfirmed = "ADMISSION_NOT_CONFIRMED"
	ReasonPaymentOverdue        = "PAYMENT_OVERDUE"
)

// =============================
// Types
// =============================

// StudentFacts adalah fakta per-user yang dibutuhkan kalkulator.
// Diisi guard dari tabel users + fee record aktif.
type StudentFacts struct {
	Role                   string
	TemporaryAccessGranted bool
	IsAdmissionConfirmed   bool
	TrialEndDate           *time.Time
	NextPaymentDueDate     *time.Time
}

// AccessPolicy adalah potret kebijakan platform yang dioper ke kalkulator.
// nil berarti kebijakan belum pernah dibuat (aturan 3, fail-open).
type AccessPolicy struct {
	WarningDaysBeforeDue int
	GracePeriodDays      int
	BlockUnpaidStudents  bool
}

// PolicyFromSettings memotret row platform_settings jadi kebijakan kalkulator.
func PolicyFromSettings(s *settingModel.PlatformSettingModel) *AccessPolicy {
	if s == nil {
		return nil
	}
	return &AccessPolicy{
		WarningDaysBeforeDue: s.PlatformSettingWarningDaysBeforeDue,
		GracePeriodDays:      s.PlatformSettingGracePeriodDays,
		BlockUnpaidStudents:  s.PlatformSettingBlockUnpaidStudents,
	}
}

// AccessDecision adalah hasil kalkulator: status final plus hitungan hari
// untuk pesan di FE. Reason hanya terisi saat status restricted.
type AccessDecision struct {
	Status string
	Reason string

	// Hari kalender (pembulatan ke atas). DaysUntilDue negatif = overdue.
	DaysUntilDue  *int
	OverdueDays   *int
	TrialDaysLeft *int
}

// =============================
// Aritmetika hari
// =============================

// daysUntilCeil menghitung selisih hari kalender target-now dengan pembulatan
// ke atas dari selisih milidetik / 86_400_000. Konsekuensinya: due date yang
// jatuh hari ini bernilai 0 ("jatuh tempo hari ini", belum overdue); overdue
// baru mulai saat harinya benar-benar lewat (nilai negatif).
func daysUntilCeil(target, now time.Time) int {
	ms := target.Sub(now).Milliseconds()
	return int(math.Ceil(float64(ms) / 86400000.0))
}

// =============================
// Kalkulator
// =============================

// CalculateAccessStatus mengevaluasi aturan 1-10 di atas.
func CalculateAccessStatus(facts StudentFacts, policy *AccessPolicy, now time.Time) AccessDecision {
	d := AccessDecision{Status: StatusGranted}

	if facts.TrialEndDate != nil {
		v := daysUntilCeil(*facts.TrialEndDate, now)
		d.TrialDaysLeft = &v
	}
	if facts.NextPaymentDueDate != nil {
		v := daysUntilCeil(*facts.NextPaymentDueDate, now)
		d.DaysUntilDue = &v
		if v < 0 {
			od := -v
			d.OverdueDays = &od
		}
	}

	// 1) Override manual selalu menang.
	if facts.TemporaryAccessGranted {
		return d
	}

	// 2) Selain student tidak pernah digerbang.
	if !strings.EqualFold(facts.Role, constants.RoleStudent) {
		return d
	}

	// 3) Kebijakan belum ada: fail-open.
	if policy == nil {
		return d
	}

	// 4) Trial masih berjalan.
	if d.TrialDaysLeft != nil && *d.TrialDaysLeft > 0 {
		d.Status = StatusTrial
		return d
	}

	// 5) Trial sudah habis tapi belum dikonfirmasi admisinya.
	if facts.TrialEndDate != nil && !facts.IsAdmissionConfirmed {
		d.Status = StatusRestricted
		d.Reason = ReasonTrialExpired
		return d
	}

	// 6) Tidak pernah trial dan belum dikonfirmasi admisinya.
	if !facts.IsAdmissionConfirmed {
		d.Status = StatusRestricted
		d.Reason = ReasonAdmissionNotConfirmed
		return d
	}

	// 7) Admitted tanpa cicilan tersisa: tidak ada yang ditagih.
	if d.DaysUntilDue == nil {
		return d
	}
	daysUntil := *d.DaysUntilDue

	// 8) Due date masih di depan (termasuk "jatuh tempo hari ini" = 0).
	if daysUntil >= 0 {
		if daysUntil <= policy.WarningDaysBeforeDue {
			d.Status = StatusWarning
		}
		return d
	}

	// 9) Overdue tapi masih dalam masa tenggang.
	overdue := -daysUntil
	if policy.GracePeriodDays > 0 && overdue <= policy.GracePeriodDays {
		d.Status = StatusGrace
		return d
	}

	// 10) Lewat masa tenggang.
	if policy.BlockUnpaidStudents {
		d.Status = StatusRestricted
		d.Reason = ReasonPaymentOverdue
	}
	return d
}
