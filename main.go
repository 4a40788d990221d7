package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/ashuraya1989-cyber/assyrian-church/app/config"
	"github.com/ashuraya1989-cyber/assyrian-church/app/database"
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/auth"
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/dashboard"
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/expenses"
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/exports"
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/families"
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/incomes"
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/payments"
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/settings"
	"github.com/ashuraya1989-cyber/assyrian-church/app/routes/statistics"
	"github.com/ashuraya1989-cyber/assyrian-church/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	// Handle different error codes for web requests
	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Sidan hittades inte - Assyriska Föreningen",
			"CurrentPage": "",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Ej inloggad - Assyriska Föreningen",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Ej inloggad",
			"ErrorMessage": "Logga in för att komma åt den här sidan.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Serverfel - Assyriska Föreningen",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internt serverfel",
			"ErrorMessage": "Något gick fel. Försök igen senare.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Fel - Assyriska Föreningen",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "Ett fel uppstod",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Set global time zone to Swedish local time
	loc, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		log.Printf("Warning: Failed to load Europe/Stockholm location, falling back to UTC+1: %v", err)
		time.Local = time.FixedZone("CET", 1*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.Init()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Load the persisted display language
	config.LoadLanguage(config.GetDB())

	// Start background scheduler
	services.StartReminderScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.Reload(true) // Enable template reloading for development
	engine.Debug(false) // Disable debug mode to reduce verbose logs

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")
	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendFile("./static/favicon.ico")
	})

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup families routes
	families.SetupFamiliesRoutes(app)

	// Setup payments routes
	payments.SetupPaymentsRoutes(app)

	// Setup expenses routes
	expenses.SetupExpensesRoutes(app)

	// Setup incomes routes
	incomes.SetupIncomesRoutes(app)

	// Setup statistics routes
	statistics.SetupStatisticsRoutes(app)

	// Setup settings routes
	settings.SetupSettingsRoutes(app)

	// Setup exports routes
	exports.SetupExportsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	log.Println("Server starting on :8080")
	log.Fatal(app.Listen(":8080"))
}
