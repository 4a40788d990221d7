package families

import (
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupFamiliesRoutes(app *fiber.App) {
	// Web Routes
	web := app.Group("/register")
	web.Use(auth.AuthMiddleware)
	web.Get("/", RegisterPageHandler)

	// API Routes
	api := app.Group("/api/families")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetFamiliesAPI)
	api.Get("/:id", GetFamilyAPI)
	api.Post("/", SaveFamilyAPI)
	api.Put("/:id", SaveFamilyAPI)
	api.Delete("/:id", DeleteFamilyAPI)
}
