package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "lukebarnabas_backend/internals/features/admin/auth/route"
	bibleStudyRoute "lukebarnabas_backend/internals/features/content/biblestudies/route"
	homeRoute "lukebarnabas_backend/internals/features/content/home/route"
	sermonRoute "lukebarnabas_backend/internals/features/content/sermons/route"
	shellRoute "lukebarnabas_backend/internals/features/shell/route"
	authMiddleware "lukebarnabas_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	// Read-only content, cached per table version.
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	homeRoute.HomeContentUserRoutes(public, db)
	sermonRoute.SermonUserRoutes(public, db)
	bibleStudyRoute.BibleStudyUserRoutes(public, db)
	shellRoute.ShellConfigRoutes(public)

	// ===================== ADMIN =====================
	// Every mutation behind the JWT gate.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AdminAuthMiddleware(db))
	homeRoute.HomeContentAdminRoutes(admin, db)
	sermonRoute.SermonAdminRoutes(admin, db)
	bibleStudyRoute.BibleStudyAdminRoutes(admin, db)
}
