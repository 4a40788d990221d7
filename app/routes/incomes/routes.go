package incomes

import (
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupIncomesRoutes(app *fiber.App) {
	api := app.Group("/api/incomes")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetIncomesAPI)
	api.Post("/", CreateIncomeAPI)
}
