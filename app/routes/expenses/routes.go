package expenses

import (
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupExpensesRoutes(app *fiber.App) {
	// Web Routes
	web := app.Group("/expenses")
	web.Use(auth.AuthMiddleware)
	web.Get("/", ExpensesPageHandler)

	// API Routes
	api := app.Group("/api/expenses")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetExpensesAPI)
	api.Get("/summary", GetExpenseSummaryAPI)
	api.Post("/", CreateExpenseAPI)
	api.Put("/:id", UpdateExpenseAPI)
	api.Delete("/:id", DeleteExpenseAPI)
}
