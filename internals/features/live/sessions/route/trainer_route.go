// file: internals/features/live/sessions/route/trainer_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "kodingku_backend/internals/features/live/sessions/controller"
	"kodingku_backend/internals/middlewares"
)

// Route sesi live untuk staf (role dijaga di group /api/t).
func LiveSessionTrainerRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewTrainerSessionController(db)

	sessions := r.Group("/live-sessions")
	sessions.Post("/", ctrl.StartSession)
	sessions.Get("/", ctrl.ListActiveSessions)
	sessions.Post("/:join_code/broadcast",
		middlewares.SessionWriteRateLimiter(),
		ctrl.Broadcast,
	)
	sessions.Post("/:join_code/end", ctrl.EndSession)
	sessions.Get("/:join_code/students", ctrl.StudentsSnapshot)
}
