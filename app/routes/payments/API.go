package payments

import (
	"errors"
	"strings"
	"time"

	"github.com/ashuraya1989-cyber/assyrian-church/app/config"
	"github.com/ashuraya1989-cyber/assyrian-church/app/database"
	"github.com/ashuraya1989-cyber/assyrian-church/app/fees"
	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func PaymentsPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("payments/index", fiber.Map{
		"Title":       "Betalningar - Assyriska Föreningen",
		"CurrentPage": "payments",
		"user":        user,
		"Language":    config.Language(),
	})
}

// GetPaymentOverviewAPI returns one row per family: the latest payment's
// stored fees when one exists, otherwise the live estimate, plus the resolved
// membership standing. The status is recomputed on every request.
func GetPaymentOverviewAPI(c *fiber.Ctx) error {
	search := c.Query("q", "")

	list, err := database.ListFamilies(config.GetDB(), search)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment overview"})
	}

	today := time.Now()
	rows := make([]*models.FamilyPaymentRow, 0, len(list))
	for _, f := range list {
		monthly, annual, estimated := fees.DisplayFees(f)
		row := &models.FamilyPaymentRow{
			FamilyID:        f.ID,
			Surname:         f.Surname,
			FirstAdultName:  f.FirstAdultName,
			SecondAdultName: f.SecondAdultName,
			MonthlyFee:      monthly,
			AnnualFee:       annual,
			Estimated:       estimated,
		}

		var paidUntil string
		if p := fees.LatestPayment(f.Payments); p != nil {
			paidUntil = p.PaidUntil
			row.PaidUntil = p.PaidUntil
			row.AmountPaid = p.AmountPaid
			row.Method = string(p.Method)
			row.Reference = p.Reference
		}
		status := fees.ResolveStatus(paidUntil, today)
		row.StatusLabel = status.Label
		row.StatusSeverity = string(status.Severity)

		rows = append(rows, row)
	}

	return c.JSON(fiber.Map{
		"rows":  rows,
		"count": len(rows),
	})
}

// GetFamilyPaymentsAPI lists one family's full payment history, newest first.
func GetFamilyPaymentsAPI(c *fiber.Ctx) error {
	familyID := c.Params("familyId")

	if _, err := database.GetFamily(config.GetDB(), familyID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Family not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch family"})
	}

	payments, err := database.ListPayments(config.GetDB(), familyID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"count":    len(payments),
	})
}

type paymentRequest struct {
	FamilyID   string `json:"family_id"`
	MonthlyFee int64  `json:"monthly_fee"`
	AnnualFee  int64  `json:"annual_fee"`
	AmountPaid int64  `json:"amount_paid"`
	PaidUntil  string `json:"paid_until"`
	Method     string `json:"method"`
	Reference  string `json:"reference"`
}

func (r *paymentRequest) toModel(id string) *models.Payment {
	return &models.Payment{
		ID:         id,
		FamilyID:   strings.TrimSpace(r.FamilyID),
		MonthlyFee: r.MonthlyFee,
		AnnualFee:  r.AnnualFee,
		AmountPaid: r.AmountPaid,
		PaidUntil:  strings.TrimSpace(r.PaidUntil),
		Method:     models.PaymentMethod(r.Method),
		Reference:  r.Reference,
	}
}

// CreatePaymentAPI registers a dues settlement. When the caller leaves the
// fee fields at zero they are filled from the live estimate, which from then
// on is frozen into this payment.
func CreatePaymentAPI(c *fiber.Ctx) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	payment := req.toModel("")

	if payment.MonthlyFee == 0 && payment.FamilyID != "" {
		family, err := database.GetFamily(config.GetDB(), payment.FamilyID)
		if err == nil {
			payment.MonthlyFee = fees.ComputeMonthlyFee(family)
			if payment.AnnualFee == 0 {
				payment.AnnualFee = fees.ComputeAnnualFee(payment.MonthlyFee)
			}
		}
	}

	// Give every settlement a receipt reference if the caller left it blank
	if strings.TrimSpace(payment.Reference) == "" {
		payment.Reference = "kvitto-" + uuid.New().String()[:8]
	}

	id, err := database.CreatePayment(config.GetDB(), payment)
	if err != nil {
		if database.IsValidation(err) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to register payment"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Payment registered successfully",
		"id":      id,
		"payment": payment,
	})
}

func UpdatePaymentAPI(c *fiber.Ctx) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	payment := req.toModel(c.Params("id"))

	if err := database.UpdatePayment(config.GetDB(), payment); err != nil {
		if database.IsValidation(err) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update payment"})
	}

	return c.JSON(fiber.Map{
		"message": "Payment updated successfully",
		"payment": payment,
	})
}
