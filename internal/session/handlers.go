package session

import (
	"errors"

	"github.com/clement8426/trail-mosaic-sub000/internal/catalog"
	"github.com/clement8426/trail-mosaic-sub000/internal/search"
	"github.com/clement8426/trail-mosaic-sub000/internal/shared/webutil"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		q := search.SessionQuery{
			Text:    c.Query("q"),
			TrailID: c.Query("trail_id"),
		}
		q.Distance, q.From = webutil.DistanceParams(c)

		results, err := svc.List(c.Context(), webutil.ViewID(c), q)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(results)
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var input catalog.RideSession
		if err := c.BodyParser(&input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if input.Title == "" || input.TrailID == "" || input.Date == "" {
			return fiber.NewError(fiber.StatusBadRequest, "title, date and trail_id required")
		}
		if createdBy, ok := c.Locals("user_id").(string); ok && input.CreatedBy == "" {
			input.CreatedBy = createdBy
		}

		created, err := svc.Create(c.Context(), webutil.ViewID(c), input)
		if errors.Is(err, ErrUnknownTrail) {
			return fiber.NewError(fiber.StatusBadRequest, "trail not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Post("/:id/participants", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Username string `json:"username"`
			Status   string `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil || body.Status == "" {
			return fiber.NewError(fiber.StatusBadRequest, "status required")
		}
		userID, _ := c.Locals("user_id").(string)

		updated, err := svc.SetParticipation(c.Context(), webutil.ViewID(c), c.Params("id"), catalog.Participant{
			UserID:   userID,
			Username: body.Username,
			Status:   body.Status,
		})
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		if errors.Is(err, ErrUnknownStatus) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(updated)
	})
}
