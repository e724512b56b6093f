package region

import (
	"github.com/clement8426/trail-mosaic-sub000/internal/catalog"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes exposes the region summaries. Counts are the
// denormalized fixture values, served as-is.
func RegisterRoutes(r fiber.Router, c *catalog.Catalog) {
	r.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(c.Regions)
	})

	r.Get("/:name", func(ctx *fiber.Ctx) error {
		name := ctx.Params("name")
		for _, summary := range c.Regions {
			if summary.Name == name {
				return ctx.JSON(summary)
			}
		}
		return fiber.NewError(fiber.StatusNotFound, "region not found")
	})
}
