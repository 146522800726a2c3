// file: internals/features/live/sessions/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "kodingku_backend/internals/features/live/sessions/controller"
	"kodingku_backend/internals/middlewares"
)

// Route sesi live untuk semua user login (student polling + scratchpad).
func LiveSessionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewUserSessionController(db)

	sessions := r.Group("/live-sessions")
	sessions.Get("/:join_code/snapshot", ctrl.GetLiveSnapshot)
	sessions.Put("/:join_code/scratchpad",
		middlewares.SessionWriteRateLimiter(),
		ctrl.UpdateScratchpad,
	)
	sessions.Post("/:join_code/join", ctrl.JoinSession)
	sessions.Post("/:join_code/leave", ctrl.LeaveSession)
}
