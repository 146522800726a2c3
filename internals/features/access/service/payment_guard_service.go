// file: internals/features/access/service/payment_guard_service.go
package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	accessDto "kodingku_backend/internals/features/access/dto"
	feeService "kodingku_backend/internals/features/finance/fees/service"
	settingService "kodingku_backend/internals/features/platform/settings/service"
	userService "kodingku_backend/internals/features/users/user/service"
	"kodingku_backend/internals/metrics"
)

/*
Gerbang pembayaran. Service ini TIDAK pernah menulis apa pun dan TIDAK
pernah mengembalikan error ke caller: kegagalan load kebijakan / user /
fee record selalu fail-open (dianggap tidak diblokir) supaya gerbang
pembayaran tidak mungkin jadi sumber outage untuk student aktif.

Semua hitungan diulang dari jam sekarang di tiap panggilan, tanpa cache,
jadi status yang sama bisa berubah sendiri saat hari berganti.
*/

type PaymentGuardService struct {
	DB       *gorm.DB
	Settings *settingService.PlatformSettingService
	Fees     *feeService.FeeService
	Users    *userService.UserService
}

func NewPaymentGuardService(db *gorm.DB) *PaymentGuardService {
	return &PaymentGuardService{
		DB:       db,
		Settings: settingService.NewPlatformSettingService(db),
		Fees:     feeService.NewFeeService(db),
		Users:    userService.NewUserService(db),
	}
}

// CheckStudentPaymentStatus menghitung status akses user saat ini.
func (svc *PaymentGuardService) CheckStudentPaymentStatus(userID uuid.UUID) *accessDto.PaymentStatusResponse {
	now := time.Now().UTC()

	// 1) Kebijakan platform. Belum ada / gagal load -> nil (fail-open).
	settings := svc.Settings.LoadActive()
	policy := PolicyFromSettings(settings)

	// 2) Maintenance menutup gerbang SEBELUM load user, kecuali diizinkan
	//    eksplisit. Override temporary_access pun ikut tertutup di sini.
	if settings != nil && settings.PlatformSettingMaintenanceMode &&
		!settings.PlatformSettingAllowAllStudentsDuringMaintenance {
		metrics.AccessChecks.WithLabelValues("maintenance").Inc()
		return &accessDto.PaymentStatusResponse{
			Status:    StatusRestricted,
			IsBlocked: true,
			Reason:    ReasonMaintenanceMode,
			CheckedAt: now,
		}
	}

	// 3) Fakta user. Gagal load -> fail-open.
	user, err := svc.Users.GetByID(userID)
	if err != nil || user == nil {
		if err != nil {
			log.Printf("[WARN] payment guard: load user %s gagal: %v", userID, err)
		}
		metrics.AccessChecks.WithLabelValues("fail_open").Inc()
		return &accessDto.PaymentStatusResponse{
			Status:    StatusGranted,
			IsBlocked: false,
			CheckedAt: now,
		}
	}

	// 4) Fee record aktif + cicilan belum dibayar paling awal.
	//    Gagal load fee juga fail-open: dianggap tidak ada tagihan.
	var nextDue *time.Time
	var nextInstallment *accessDto.NextInstallmentInfo
	rec, err := svc.Fees.GetActiveForStudent(userID)
	if err != nil {
		log.Printf("[WARN] payment guard: load fee record %s gagal: %v", userID, err)
	}
	if rec != nil {
		if inst := svc.Fees.NextUnpaidInstallment(rec); inst != nil {
			due := inst.DueDate
			nextDue = &due
			nextInstallment = accessDto.InstallmentInfoFromPayload(inst)
		}
	}

	// 5) Kalkulator murni memutuskan status finalnya.
	decision := CalculateAccessStatus(StudentFacts{
		Role:                   user.Role,
		TemporaryAccessGranted: user.TemporaryAccess(),
		IsAdmissionConfirmed:   user.AdmissionConfirmed(),
		TrialEndDate:           user.TrialEndDate,
		NextPaymentDueDate:     nextDue,
	}, policy, now)
	metrics.AccessChecks.WithLabelValues(decision.Status).Inc()

	// 6) Flag trial dihitung TERPISAH dari status fee: user bisa sekaligus
	//    mendekati akhir trial dan punya fee record aktif.
	trialEndingSoon, trialInGrace := trialWindowFlags(decision.TrialDaysLeft, policy)

	return &accessDto.PaymentStatusResponse{
		Status:    decision.Status,
		IsBlocked: decision.Status == StatusRestricted,
		Reason:    decision.Reason,

		IsDueSoon:            decision.Status == StatusWarning,
		IsInGracePeriod:      decision.Status == StatusGrace,
		IsTrialEndingSoon:    trialEndingSoon,
		IsTrialInGracePeriod: trialInGrace,

		DaysUntilDue:  decision.DaysUntilDue,
		OverdueDays:   decision.OverdueDays,
		TrialDaysLeft: decision.TrialDaysLeft,

		NextInstallment: nextInstallment,
		CheckedAt:       now,
	}
}

// trialWindowFlags menurunkan flag advisory trial dari sisa hari trial:
// ending-soon saat trial masih jalan dan sisa harinya masuk jendela warning,
// in-grace saat trial baru saja habis dan belum melewati masa tenggang.
func trialWindowFlags(trialDaysLeft *int, policy *AccessPolicy) (endingSoon, inGrace bool) {
	if trialDaysLeft == nil || policy == nil {
		return false, false
	}
	left := *trialDaysLeft
	if left > 0 {
		return left <= policy.WarningDaysBeforeDue, false
	}
	if policy.GracePeriodDays > 0 && -left <= policy.GracePeriodDays {
		return false, true
	}
	return false, false
}
