package statistics

import (
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupStatisticsRoutes(app *fiber.App) {
	web := app.Group("/statistics")
	web.Use(auth.AuthMiddleware)
	web.Get("/", StatisticsPageHandler)

	api := app.Group("/api/statistics")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetMonthlyStatsAPI)
}
