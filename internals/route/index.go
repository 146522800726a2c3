// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kodingku_backend/internals/constants"
	authMiddleware "kodingku_backend/internals/middlewares/auth"
	routeDetails "kodingku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== WEBHOOK (tanpa auth) =====================
	log.Println("[INFO] Mounting webhook routes...")
	api := app.Group("/api")
	routeDetails.WebhookRoutes(api, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/p")
	routeDetails.PlatformPublicRoutes(public, db)

	// ===================== USER (semua role login) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	routeDetails.LiveUserRoutes(user, db)
	routeDetails.AccessUserRoutes(user, db)
	routeDetails.FinanceUserRoutes(user, db)

	// ===================== TRAINER / STAF =====================
	log.Println("[INFO] Setting up TRAINER group...")
	trainer := app.Group("/api/t",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTrainer("sesi live"), constants.StaffRoles),
	)
	routeDetails.LiveTrainerRoutes(trainer, db)

	// ===================== ADMIN / MANAGER =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorManager("panel admin"), constants.ManagerAndAbove),
	)
	routeDetails.FinanceAdminRoutes(admin, db)
	routeDetails.PlatformAdminRoutes(admin, db)
}
