package exports

import (
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupExportsRoutes(app *fiber.App) {
	api := app.Group("/api/exports")
	api.Use(auth.AuthMiddleware)
	api.Get("/register", DownloadRegisterAPI)
	api.Post("/register/upload", UploadRegisterAPI)
}
