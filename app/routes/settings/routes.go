package settings

import (
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App) {
	web := app.Group("/settings")
	web.Use(auth.AuthMiddleware)
	web.Get("/", SettingsPageHandler)

	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)
	api.Get("/language", GetLanguageAPI)
	api.Put("/language", SetLanguageAPI)
}
