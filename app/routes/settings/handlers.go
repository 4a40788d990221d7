package settings

import (
	"github.com/ashuraya1989-cyber/assyrian-church/app/config"
	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
	"github.com/gofiber/fiber/v2"
)

func SettingsPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("settings/index", fiber.Map{
		"Title":       "Inställningar - Assyriska Föreningen",
		"CurrentPage": "settings",
		"user":        user,
		"Language":    config.Language(),
	})
}

func GetLanguageAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"language": config.Language()})
}

// SetLanguageAPI persists the display language and applies it immediately.
// Unknown codes fall back to the default rather than failing.
func SetLanguageAPI(c *fiber.Ctx) error {
	type languageRequest struct {
		Language string `json:"language"`
	}

	var req languageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := config.SetLanguage(config.GetDB(), req.Language); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save language setting"})
	}

	return c.JSON(fiber.Map{"language": config.Language()})
}
