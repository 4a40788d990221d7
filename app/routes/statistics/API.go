package statistics

import (
	"github.com/ashuraya1989-cyber/assyrian-church/app/config"
	"github.com/ashuraya1989-cyber/assyrian-church/app/database"
	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
	"github.com/gofiber/fiber/v2"
)

func StatisticsPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("statistics/index", fiber.Map{
		"Title":       "Statistik - Assyriska Föreningen",
		"CurrentPage": "statistics",
		"user":        user,
		"Language":    config.Language(),
	})
}

// GetMonthlyStatsAPI returns twelve month buckets, January through December,
// pairing income and expense totals for the bar chart. Months without rows
// come back as zeroes so the chart always has a full year.
func GetMonthlyStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	income, err := database.ListIncomeByMonth(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch income totals"})
	}
	expenses, err := database.ListExpensesByMonth(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expense totals"})
	}

	incomeByMonth := map[string]int64{}
	for _, t := range income {
		incomeByMonth[t.Month] += t.Total
	}
	expenseByMonth := map[string]int64{}
	for _, t := range expenses {
		expenseByMonth[t.Month] += t.Total
	}

	stats := make([]*models.MonthlyStat, 0, len(models.Months))
	for _, m := range models.Months {
		stats = append(stats, &models.MonthlyStat{
			Month:   m,
			Income:  incomeByMonth[m],
			Expense: expenseByMonth[m],
		})
	}

	return c.JSON(fiber.Map{"months": stats})
}
