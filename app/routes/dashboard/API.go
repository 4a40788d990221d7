package dashboard

import (
	"github.com/ashuraya1989-cyber/assyrian-church/app/config"
	"github.com/ashuraya1989-cyber/assyrian-church/app/database"
	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	web := app.Group("/dashboard")
	web.Use(auth.AuthMiddleware)
	web.Get("/", DashboardPageHandler)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetDashboardStatsAPI)
}

func DashboardPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		stats = &models.DashboardStats{}
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Summering - Assyriska Föreningen",
		"CurrentPage": "dashboard",
		"user":        user,
		"Language":    config.Language(),
		"Stats":       stats,
	})
}

func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}
