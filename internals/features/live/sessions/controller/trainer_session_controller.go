// file: internals/features/live/sessions/controller/trainer_session_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kodingku_backend/internals/constants"
	sessionDto "kodingku_backend/internals/features/live/sessions/dto"
	"kodingku_backend/internals/features/live/sessions/service"
	helper "kodingku_backend/internals/helpers"
	"kodingku_backend/internals/metrics"
)

var validate = validator.New()

type TrainerSessionController struct {
	DB       *gorm.DB
	Sessions *service.LiveSessionService
}

func NewTrainerSessionController(db *gorm.DB) *TrainerSessionController {
	return &TrainerSessionController{
		DB:       db,
		Sessions: service.NewLiveSessionService(db),
	}
}

// canControlSession: pemilik sesi, atau manager/admin (impersonasi staf).
func canControlSession(trainerID uuid.UUID, userID uuid.UUID, role string) bool {
	if trainerID == userID {
		return true
	}
	return role == constants.RoleManager || role == constants.RoleAdmin
}

// ==========================
// POST /api/t/live-sessions
// ==========================
func (ctrl *TrainerSessionController) StartSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req sessionDto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Sessions.CreateSession(userID, req.Title)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sesi live")
	}

	return helper.JsonCreated(c, "Sesi live dimulai", sessionDto.ToLiveSessionResponse(m))
}

// ===============================================
// POST /api/t/live-sessions/:join_code/broadcast
// ===============================================
func (ctrl *TrainerSessionController) Broadcast(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	code, err := service.NormalizeJoinCode(c.Params("join_code"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// broadcast hanya untuk sesi yang masih berjalan
	m, err := ctrl.Sessions.FindByJoinCode(code, true)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !canControlSession(m.LiveSessionTrainerID, userID, helper.GetUserRoleFromToken(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Sesi ini bukan milikmu")
	}

	var req sessionDto.BroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}

	if err := ctrl.Sessions.UpdateBroadcast(m.LiveSessionID, &req); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan broadcast")
	}
	metrics.BroadcastWrites.Inc()

	return helper.JsonUpdated(c, "Broadcast diterapkan", fiber.Map{
		"join_code": m.LiveSessionJoinCode,
	})
}

// =========================================
// POST /api/t/live-sessions/:join_code/end
// =========================================
func (ctrl *TrainerSessionController) EndSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	code, err := service.NormalizeJoinCode(c.Params("join_code"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := ctrl.Sessions.FindByJoinCode(code, false)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !canControlSession(m.LiveSessionTrainerID, userID, helper.GetUserRoleFromToken(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Sesi ini bukan milikmu")
	}

	// idempotent: mengakhiri sesi yang sudah berakhir bukan error
	if m.LiveSessionIsActive {
		now := time.Now().UTC()
		if err := ctrl.Sessions.SetActive(m.LiveSessionID, false, &now); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengakhiri sesi")
		}
		m.LiveSessionIsActive = false
		m.LiveSessionEndedAt = &now
	}

	return helper.JsonOK(c, "Sesi live berakhir", sessionDto.ToLiveSessionResponse(m))
}

// ==========================
// GET /api/t/live-sessions
// ==========================
// List sesi aktif (opsional ?trainer_id=). Sesi yang lewat umur dikeluarkan
// dari halaman dan dinonaktifkan best-effort di belakang; list tidak pernah
// menunggu latensi tulis reaper.
func (ctrl *TrainerSessionController) ListActiveSessions(c *fiber.Ctx) error {
	var trainerID *uuid.UUID
	if raw := c.Query("trainer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "trainer_id tidak valid")
		}
		trainerID = &id
	}

	sessions, err := ctrl.Sessions.ListActive(trainerID)
	if err != nil {
		log.Printf("[ERROR] list sesi live gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi live")
	}

	now := time.Now().UTC()
	expired := service.ExpiredSessionIDs(sessions, now)
	if len(expired) > 0 {
		go ctrl.Sessions.ReapExpired(expired, now)
	}

	items := make([]sessionDto.LiveSessionResponse, 0, len(sessions))
	for i := range sessions {
		s := &sessions[i]
		if s.IsExpired(now, service.SessionMaxAge) {
			continue
		}
		items = append(items, sessionDto.ToLiveSessionResponse(s))
	}

	return helper.JsonList(c, "Daftar sesi live aktif", items, nil)
}

// ==============================================
// GET /api/t/live-sessions/:join_code/students
// ==============================================
func (ctrl *TrainerSessionController) StudentsSnapshot(c *fiber.Ctx) error {
	code, err := service.NormalizeJoinCode(c.Params("join_code"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := ctrl.Sessions.FindByJoinCode(code, false)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	entries, err := m.ScratchpadEntries()
	if err != nil {
		log.Printf("[ERROR] decode scratchpad sesi %s gagal: %v", m.LiveSessionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Data scratchpad rusak")
	}

	return helper.JsonOK(c, "Scratchpad peserta", sessionDto.BuildStudentScratchpadResponses(entries))
}
