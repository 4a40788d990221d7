package exports

import (
	"fmt"
	"time"

	"github.com/ashuraya1989-cyber/assyrian-church/app/config"
	"github.com/ashuraya1989-cyber/assyrian-church/app/database"
	"github.com/ashuraya1989-cyber/assyrian-church/app/services"
	"github.com/gofiber/fiber/v2"
)

func buildExport() ([]byte, error) {
	families, err := database.ListFamilies(config.GetDB(), "")
	if err != nil {
		return nil, err
	}

	wb, err := services.BuildRegisterWorkbook(families, time.Now())
	if err != nil {
		return nil, err
	}
	return services.WorkbookBytes(wb)
}

// DownloadRegisterAPI streams the member register and payment ledger as an
// XLSX attachment.
func DownloadRegisterAPI(c *fiber.Ctx) error {
	data, err := buildExport()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build export"})
	}

	filename := fmt.Sprintf("member-register-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// UploadRegisterAPI pushes the current register export to the configured
// S3-compatible bucket.
func UploadRegisterAPI(c *fiber.Ctx) error {
	s3 := config.AppConfig.S3
	if !s3.Enabled {
		return c.Status(400).JSON(fiber.Map{"error": "No export bucket configured"})
	}

	data, err := buildExport()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build export"})
	}

	name, err := services.UploadExport(c.Context(), s3, services.ExportObjectName(time.Now()), data)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to upload export"})
	}

	return c.JSON(fiber.Map{
		"message": "Export uploaded successfully",
		"object":  name,
		"bucket":  s3.Bucket,
	})
}
