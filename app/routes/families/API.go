package families

import (
	"errors"
	"strings"

	"github.com/ashuraya1989-cyber/assyrian-church/app/config"
	"github.com/ashuraya1989-cyber/assyrian-church/app/database"
	"github.com/ashuraya1989-cyber/assyrian-church/app/fees"
	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
	"github.com/gofiber/fiber/v2"
)

func RegisterPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("families/index", fiber.Map{
		"Title":       "Familjeregister - Assyriska Föreningen",
		"CurrentPage": "register",
		"user":        user,
		"Language":    config.Language(),
	})
}

// GetFamiliesAPI lists families (optionally filtered) with children and a
// live fee estimate for families that have never paid.
func GetFamiliesAPI(c *fiber.Ctx) error {
	search := c.Query("q", "")

	list, err := database.ListFamilies(config.GetDB(), search)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch families"})
	}

	type familyResponse struct {
		*models.Family
		MonthlyFee int64 `json:"monthly_fee"`
		AnnualFee  int64 `json:"annual_fee"`
		Estimated  bool  `json:"estimated"`
	}

	resp := make([]familyResponse, 0, len(list))
	for _, f := range list {
		monthly, annual, estimated := fees.DisplayFees(f)
		resp = append(resp, familyResponse{
			Family:     f,
			MonthlyFee: monthly,
			AnnualFee:  annual,
			Estimated:  estimated,
		})
	}

	return c.JSON(fiber.Map{
		"families": resp,
		"count":    len(resp),
	})
}

func GetFamilyAPI(c *fiber.Ctx) error {
	family, err := database.GetFamily(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Family not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch family"})
	}
	return c.JSON(fiber.Map{"family": family})
}

type childRequest struct {
	Name       string `json:"name"`
	IDNumber   string `json:"id_number"`
	MonthlyFee int64  `json:"monthly_fee"`
}

type familyRequest struct {
	Surname             string         `json:"surname"`
	FirstAdultName      string         `json:"first_adult_name"`
	FirstAdultIDNumber  string         `json:"first_adult_id_number"`
	FirstAdultFee       int64          `json:"first_adult_fee"`
	SecondAdultName     string         `json:"second_adult_name"`
	SecondAdultIDNumber string         `json:"second_adult_id_number"`
	SecondAdultFee      int64          `json:"second_adult_fee"`
	Mobile              string         `json:"mobile"`
	Email               string         `json:"email"`
	Address             string         `json:"address"`
	City                string         `json:"city"`
	PostalCode          string         `json:"postal_code"`
	Children            []childRequest `json:"children"`
}

// SaveFamilyAPI handles both create (POST) and edit (PUT /:id). The family
// and its children are written as one atomic operation; children keep the
// order they were submitted in.
func SaveFamilyAPI(c *fiber.Ctx) error {
	var req familyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if strings.TrimSpace(req.Surname) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Family surname is required"})
	}
	if strings.TrimSpace(req.FirstAdultName) == "" && strings.TrimSpace(req.SecondAdultName) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "At least one adult name (first or second) is required"})
	}
	if len(req.Children) > models.MaxChildrenPerFamily {
		return c.Status(400).JSON(fiber.Map{"error": "A family can have at most 6 children"})
	}

	family := &models.Family{
		ID:                  c.Params("id", ""),
		Surname:             strings.TrimSpace(req.Surname),
		FirstAdultName:      strings.TrimSpace(req.FirstAdultName),
		FirstAdultIDNumber:  req.FirstAdultIDNumber,
		FirstAdultFee:       req.FirstAdultFee,
		SecondAdultName:     strings.TrimSpace(req.SecondAdultName),
		SecondAdultIDNumber: req.SecondAdultIDNumber,
		SecondAdultFee:      req.SecondAdultFee,
		Mobile:              req.Mobile,
		Email:               req.Email,
		Address:             req.Address,
		City:                req.City,
		PostalCode:          req.PostalCode,
	}
	if family.FirstAdultFee == 0 {
		family.FirstAdultFee = fees.DefaultAdultMonthlyFee
	}
	if family.SecondAdultFee == 0 {
		family.SecondAdultFee = fees.DefaultAdultMonthlyFee
	}

	for _, cr := range req.Children {
		fee := cr.MonthlyFee
		if fee == 0 {
			fee = fees.DefaultChildMonthlyFee
		}
		family.Children = append(family.Children, &models.Child{
			Name:       strings.TrimSpace(cr.Name),
			IDNumber:   cr.IDNumber,
			MonthlyFee: fee,
		})
	}

	id, err := database.UpsertFamilyWithChildren(config.GetDB(), family)
	if err != nil {
		if database.IsValidation(err) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Family not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save family"})
	}

	status := fiber.StatusOK
	if c.Method() == fiber.MethodPost {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"message": "Family saved successfully",
		"id":      id,
		"family":  family,
	})
}

func DeleteFamilyAPI(c *fiber.Ctx) error {
	err := database.DeleteFamily(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Family not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete family"})
	}
	return c.JSON(fiber.Map{"message": "Family deleted successfully"})
}
