package auth

import (
	"github.com/clement8426/trail-mosaic-sub000/internal/shared/webutil"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/register", func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Username == "" {
			return fiber.NewError(fiber.StatusBadRequest, "email and username required")
		}
		sessionID := sessionID(c)
		record, tokens, err := svc.Register(c.Context(), sessionID, req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"session_id": sessionID,
			"user":       record,
			"tokens":     tokens,
			"message":    "Compte créé avec succès",
		})
	})

	r.Post("/login", func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil || req.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "email required")
		}
		sessionID := sessionID(c)
		record, tokens, err := svc.Login(c.Context(), sessionID, req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{
			"session_id": sessionID,
			"user":       record,
			"tokens":     tokens,
			"message":    "Connexion réussie",
		})
	})

	r.Post("/google", func(c *fiber.Ctx) error {
		var req GoogleLoginRequest
		if err := c.BodyParser(&req); err != nil || req.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "email required")
		}
		sessionID := sessionID(c)
		record, tokens, err := svc.LoginWithGoogle(c.Context(), sessionID, req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{
			"session_id": sessionID,
			"user":       record,
			"tokens":     tokens,
			"message":    "Connexion Google réussie",
		})
	})

	r.Post("/logout", func(c *fiber.Ctx) error {
		sessionID := c.Get(webutil.SessionHeader)
		if sessionID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "session id required")
		}
		if err := svc.Logout(c.Context(), sessionID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"message": "Déconnexion réussie"})
	})

	r.Post("/forgot-password", func(c *fiber.Ctx) error {
		var req ForgotPasswordRequest
		if err := c.BodyParser(&req); err != nil || req.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "email required")
		}
		return c.JSON(fiber.Map{"message": svc.ForgotPassword(c.Context(), req.Email)})
	})

	r.Get("/session", func(c *fiber.Ctx) error {
		sessionID := c.Get(webutil.SessionHeader)
		if sessionID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "session id required")
		}
		record, ok, err := svc.Restore(c.Context(), sessionID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "no session")
		}
		return c.JSON(fiber.Map{"user": record})
	})
}

func sessionID(c *fiber.Ctx) string {
	if id := c.Get(webutil.SessionHeader); id != "" {
		return id
	}
	return uuid.NewString()
}
