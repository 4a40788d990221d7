package expenses

import (
	"errors"
	"time"

	"github.com/ashuraya1989-cyber/assyrian-church/app/config"
	"github.com/ashuraya1989-cyber/assyrian-church/app/database"
	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
	"github.com/gofiber/fiber/v2"
)

func ExpensesPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("expenses/index", fiber.Map{
		"Title":       "Utgifter - Assyriska Föreningen",
		"CurrentPage": "expenses",
		"user":        user,
		"Language":    config.Language(),
		"Months":      models.Months,
	})
}

// GetExpensesAPI lists expense rows, optionally for one month.
func GetExpensesAPI(c *fiber.Ctx) error {
	month := c.Query("month", "")

	expenses, err := database.ListExpenses(config.GetDB(), month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expenses"})
	}

	return c.JSON(fiber.Map{
		"expenses": expenses,
		"count":    len(expenses),
	})
}

// GetExpenseSummaryAPI aggregates rows per month and category for the
// summary sidebar.
func GetExpenseSummaryAPI(c *fiber.Ctx) error {
	month := c.Query("month", "")

	summaries, err := database.SummarizeExpenses(config.GetDB(), month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to summarize expenses"})
	}

	return c.JSON(fiber.Map{"summary": summaries})
}

type expenseRequest struct {
	Month      string `json:"month"`
	Week       int    `json:"week"`
	Rent       int64  `json:"rent"`
	Breakfast  int64  `json:"breakfast"`
	Bills      int64  `json:"bills"`
	Other      int64  `json:"other"`
	Comment    string `json:"comment"`
	ReportedBy string `json:"reported_by"`
	Date       string `json:"date"`
}

func (r *expenseRequest) toModel(id string) (*models.Expense, error) {
	e := &models.Expense{
		ID:         id,
		Month:      r.Month,
		Week:       r.Week,
		Rent:       r.Rent,
		Breakfast:  r.Breakfast,
		Bills:      r.Bills,
		Other:      r.Other,
		Comment:    r.Comment,
		ReportedBy: r.ReportedBy,
	}
	if r.Date != "" {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, err
		}
		e.Date = d
	}
	return e, nil
}

func CreateExpenseAPI(c *fiber.Ctx) error {
	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	expense, err := req.toModel("")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Date must be on the form YYYY-MM-DD"})
	}

	if err := database.CreateExpense(config.GetDB(), expense); err != nil {
		if database.IsValidation(err) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create expense"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Expense created successfully",
		"expense": expense,
	})
}

func UpdateExpenseAPI(c *fiber.Ctx) error {
	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	expense, err := req.toModel(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Date must be on the form YYYY-MM-DD"})
	}

	if err := database.UpdateExpense(config.GetDB(), expense); err != nil {
		if database.IsValidation(err) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Expense not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update expense"})
	}

	return c.JSON(fiber.Map{
		"message": "Expense updated successfully",
		"expense": expense,
	})
}

func DeleteExpenseAPI(c *fiber.Ctx) error {
	if err := database.DeleteExpense(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Expense not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete expense"})
	}
	return c.JSON(fiber.Map{"message": "Expense deleted successfully"})
}
