package trail

import (
	"errors"

	"github.com/clement8426/trail-mosaic-sub000/internal/catalog"
	"github.com/clement8426/trail-mosaic-sub000/internal/search"
	"github.com/clement8426/trail-mosaic-sub000/internal/shared/webutil"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		q := search.TrailQuery{
			Text:       c.Query("q"),
			Difficulty: c.Query("difficulty"),
			TrailType:  c.Query("type"),
			BikeType:   c.Query("bike"),
			Region:     c.Query("region"),
		}
		q.Distance, q.From = webutil.DistanceParams(c)

		results, err := svc.List(c.Context(), webutil.ViewID(c), q)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(results)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		t, err := svc.Get(c.Context(), webutil.ViewID(c), c.Params("id"))
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "trail not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(t)
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var input CreateSpotInput
		if err := c.BodyParser(&input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		createdBy, _ := c.Locals("user_id").(string)
		t, err := svc.CreateSpot(c.Context(), createdBy, input)
		if err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"message": "validation failed",
					"fields":  fieldMessages(fieldErrs),
				})
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})

	r.Post("/:id/comments", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Username string `json:"username"`
			Text     string `json:"text"`
			Rating   int    `json:"rating"`
		}
		if err := c.BodyParser(&body); err != nil || body.Text == "" {
			return fiber.NewError(fiber.StatusBadRequest, "text required")
		}
		if body.Rating != 0 && (body.Rating < 1 || body.Rating > 5) {
			return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
		}
		userID, _ := c.Locals("user_id").(string)
		t, err := svc.AddComment(c.Context(), webutil.ViewID(c), c.Params("id"), userID, body.Username, body.Text, body.Rating)
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "trail not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})

	r.Post("/:id/obstacles", authMiddleware, func(c *fiber.Ctx) error {
		var body catalog.Obstacle
		if err := c.BodyParser(&body); err != nil || body.Type == "" {
			return fiber.NewError(fiber.StatusBadRequest, "type required")
		}
		t, err := svc.AddObstacle(c.Context(), webutil.ViewID(c), c.Params("id"), body)
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "trail not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})
}

func fieldMessages(errs validator.ValidationErrors) map[string]string {
	fields := map[string]string{}
	for _, fe := range errs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
