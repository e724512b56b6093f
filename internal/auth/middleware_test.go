package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func protectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	return app
}

func TestJWTMiddlewareMissingToken(t *testing.T) {
	app := protectedApp("secret")
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got %d", resp.StatusCode)
	}
}

func TestJWTMiddlewareInvalidToken(t *testing.T) {
	app := protectedApp("secret")
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got %d", resp.StatusCode)
	}
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	svc := NewService("secret", NewSessionStore(nil))
	_, tokens, err := svc.Login(context.Background(), "sess-1", LoginRequest{Email: "remi@trailmosaic.example"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	app := protectedApp("secret")
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("expected ok, got %d", resp.StatusCode)
	}
}

func TestBearerFromHeader(t *testing.T) {
	if bearerFromHeader("Bearer abc") != "abc" {
		t.Fatalf("expected token")
	}
	if bearerFromHeader("bearer abc") != "abc" {
		t.Fatalf("expected case-insensitive scheme")
	}
	if bearerFromHeader("Basic abc") != "" {
		t.Fatalf("expected empty for wrong scheme")
	}
	if bearerFromHeader("") != "" {
		t.Fatalf("expected empty for missing header")
	}
}
