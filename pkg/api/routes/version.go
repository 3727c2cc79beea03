package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/mavfares/pkg/dataaggregator/source/mav"
)

const APIVersionString = "v1.0"

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        "mavfares",
		"version":     APIVersionString,
		"windowlimit": mav.WindowLength.String(),
	})
}
