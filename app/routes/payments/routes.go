package payments

import (
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupPaymentsRoutes(app *fiber.App) {
	// Web Routes
	web := app.Group("/payments")
	web.Use(auth.AuthMiddleware)
	web.Get("/", PaymentsPageHandler)

	// API Routes
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetPaymentOverviewAPI)
	api.Get("/family/:familyId", GetFamilyPaymentsAPI)
	api.Post("/", CreatePaymentAPI)
	api.Put("/:id", UpdatePaymentAPI)
}
