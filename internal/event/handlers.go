package event

import (
	"errors"

	"github.com/clement8426/trail-mosaic-sub000/internal/search"
	"github.com/clement8426/trail-mosaic-sub000/internal/shared/webutil"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/", func(c *fiber.Ctx) error {
		q := search.EventQuery{
			Text:     c.Query("q"),
			Category: c.Query("category"),
			Region:   c.Query("region"),
		}
		q.Distance, q.From = webutil.DistanceParams(c)
		return c.JSON(svc.List(q))
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		e, err := svc.Get(c.Params("id"))
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "event not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(e)
	})
}
