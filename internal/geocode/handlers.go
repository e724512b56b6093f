package geocode

import (
	"strconv"

	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, client *Client) {
	r.Get("/reverse", func(c *fiber.Ctx) error {
		lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		if errLng != nil || errLat != nil {
			return fiber.NewError(fiber.StatusBadRequest, "lng and lat required")
		}
		place := client.Reverse(c.Context(), geo.Coordinate{lng, lat})
		return c.JSON(fiber.Map{"place_name": place})
	})
}
