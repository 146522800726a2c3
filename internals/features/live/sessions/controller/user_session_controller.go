// file: internals/features/live/sessions/controller/user_session_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kodingku_backend/internals/constants"
	accessDto "kodingku_backend/internals/features/access/dto"
	accessService "kodingku_backend/internals/features/access/service"
	sessionDto "kodingku_backend/internals/features/live/sessions/dto"
	sessionModel "kodingku_backend/internals/features/live/sessions/model"
	"kodingku_backend/internals/features/live/sessions/service"
	helper "kodingku_backend/internals/helpers"
	"kodingku_backend/internals/metrics"
)

type UserSessionController struct {
	DB       *gorm.DB
	Sessions *service.LiveSessionService
	Guard    *accessService.PaymentGuardService
}

func NewUserSessionController(db *gorm.DB) *UserSessionController {
	return &UserSessionController{
		DB:       db,
		Sessions: service.NewLiveSessionService(db),
		Guard:    accessService.NewPaymentGuardService(db),
	}
}

// ====================================================
// GET /api/u/live-sessions/:join_code/snapshot
// ====================================================
// Endpoint polling (FE memanggil tiap ~2 detik). Sesi yang lewat umur
// dinonaktifkan inline dulu supaya caller langsung melihat view nonaktif.
func (ctrl *UserSessionController) GetLiveSnapshot(c *fiber.Ctx) error {
	code, err := service.NormalizeJoinCode(c.Params("join_code"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := ctrl.Sessions.FindByJoinCode(code, false)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ctrl.Sessions.ReapIfExpired(m, time.Now().UTC())

	entries, err := m.ScratchpadEntries()
	if err != nil {
		log.Printf("[WARN] decode scratchpad sesi %s gagal: %v", m.LiveSessionID, err)
		entries = map[string]sessionModel.ScratchpadEntry{}
	}

	// payment status hanya untuk student; kegagalan resolusi user ditelan,
	// snapshot tidak pernah gagal gara-gara gerbang pembayaran
	var payment *accessDto.PaymentStatusResponse
	if helper.GetUserRoleFromToken(c) == constants.RoleStudent {
		if userID, err := helper.GetUserIDFromToken(c); err == nil {
			payment = ctrl.Guard.CheckStudentPaymentStatus(userID)
		}
	}

	metrics.SnapshotPolls.Inc()
	return helper.JsonOK(c, "Snapshot sesi live",
		sessionDto.BuildLiveSnapshotResponse(m, entries, ctrl.Sessions.ResolveSessionLanguage(m), payment))
}

// ====================================================
// PUT /api/u/live-sessions/:join_code/scratchpad
// ====================================================
func (ctrl *UserSessionController) UpdateScratchpad(c *fiber.Ctx) error {
	role := helper.GetUserRoleFromToken(c)
	allowed := false
	for _, r := range constants.ScratchpadWriterRoles {
		if role == r {
			allowed = true
			break
		}
	}
	if !allowed {
		return helper.JsonError(c, fiber.StatusForbidden, "Role ini tidak boleh menulis scratchpad")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	code, err := service.NormalizeJoinCode(c.Params("join_code"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req sessionDto.ScratchpadUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if !req.HasWritableInput() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Scratchpad butuh code atau workspace_file_id")
	}

	m, err := ctrl.Sessions.FindByJoinCode(code, true)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	entry := service.BuildScratchpadEntry(&req, userID, helper.GetUserNameFromToken(c),
		ctrl.Sessions.Files, time.Now().UTC())
	if err := ctrl.Sessions.UpsertScratchpad(m.LiveSessionID, userID, entry); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan scratchpad")
	}
	metrics.ScratchpadWrites.Inc()

	return helper.JsonUpdated(c, "Scratchpad tersimpan", fiber.Map{
		"join_code": m.LiveSessionJoinCode,
		"user_id":   entry.UserID,
	})
}

// =============================================
// POST /api/u/live-sessions/:join_code/join
// POST /api/u/live-sessions/:join_code/leave
// =============================================
// Pasangan legacy: hanya menyentuh counter informasional, TIDAK menyentuh
// scratchpad. Hitungan peserta yang dipercaya tetap len(key scratchpad).
func (ctrl *UserSessionController) JoinSession(c *fiber.Ctx) error {
	code, err := service.NormalizeJoinCode(c.Params("join_code"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := ctrl.Sessions.FindByJoinCode(code, true)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.Sessions.IncrementParticipants(m.LiveSessionID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal bergabung ke sesi")
	}
	return helper.JsonOK(c, "Bergabung ke sesi", fiber.Map{"join_code": m.LiveSessionJoinCode})
}

func (ctrl *UserSessionController) LeaveSession(c *fiber.Ctx) error {
	code, err := service.NormalizeJoinCode(c.Params("join_code"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// sesi yang sudah berakhir tetap diterima: leave cuma bersih-bersih counter
	m, err := ctrl.Sessions.FindByJoinCode(code, false)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.Sessions.DecrementParticipants(m.LiveSessionID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal keluar dari sesi")
	}
	return helper.JsonOK(c, "Keluar dari sesi", fiber.Map{"join_code": m.LiveSessionJoinCode})
}
