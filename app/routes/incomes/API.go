package incomes

import (
	"time"

	"github.com/ashuraya1989-cyber/assyrian-church/app/config"
	"github.com/ashuraya1989-cyber/assyrian-church/app/database"
	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
	"github.com/gofiber/fiber/v2"
)

func GetIncomesAPI(c *fiber.Ctx) error {
	month := c.Query("month", "")

	incomes, err := database.ListIncomes(config.GetDB(), month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch incomes"})
	}

	return c.JSON(fiber.Map{
		"incomes": incomes,
		"count":   len(incomes),
	})
}

func CreateIncomeAPI(c *fiber.Ctx) error {
	type incomeRequest struct {
		Month string `json:"month"`
		Total int64  `json:"total"`
		Note  string `json:"note"`
		Date  string `json:"date"`
	}

	var req incomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	record := &models.IncomeRecord{
		Month: req.Month,
		Total: req.Total,
		Note:  req.Note,
	}
	if req.Date != "" {
		d, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Date must be on the form YYYY-MM-DD"})
		}
		record.Date = d
	}

	if err := database.CreateIncome(config.GetDB(), record); err != nil {
		if database.IsValidation(err) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create income record"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Income recorded successfully",
		"income":  record,
	})
}
