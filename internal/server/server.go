package server

import (
	"github.com/clement8426/trail-mosaic-sub000/internal/auth"
	"github.com/clement8426/trail-mosaic-sub000/internal/catalog"
	"github.com/clement8426/trail-mosaic-sub000/internal/config"
	"github.com/clement8426/trail-mosaic-sub000/internal/event"
	"github.com/clement8426/trail-mosaic-sub000/internal/geocode"
	"github.com/clement8426/trail-mosaic-sub000/internal/mapview"
	"github.com/clement8426/trail-mosaic-sub000/internal/overlay"
	"github.com/clement8426/trail-mosaic-sub000/internal/region"
	"github.com/clement8426/trail-mosaic-sub000/internal/session"
	"github.com/clement8426/trail-mosaic-sub000/internal/trail"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	Catalog  *catalog.Catalog
	Redis    *redis.Client
	Overlays *overlay.Store
	Hub      *mapview.Hub
}

func NewServer(cfg config.Config, cat *catalog.Catalog, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	if cat == nil {
		cat = catalog.Default()
	}

	s := &Server{
		App:      app,
		Cfg:      cfg,
		Catalog:  cat,
		Redis:    redisClient,
		Overlays: overlay.NewStore(redisClient),
		Hub:      mapview.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, auth.NewSessionStore(s.Redis)))
	trail.RegisterRoutes(s.App.Group("/trails"), trail.NewService(s.Catalog, s.Overlays, s.Hub), jwtMiddleware)
	event.RegisterRoutes(s.App.Group("/events"), event.NewService(s.Catalog))
	session.RegisterRoutes(s.App.Group("/sessions"), session.NewService(s.Catalog, s.Overlays, s.Hub), jwtMiddleware)
	region.RegisterRoutes(s.App.Group("/regions"), s.Catalog)
	mapview.RegisterRoutes(s.App.Group("/map"), s.Catalog, s.Hub)
	geocode.RegisterRoutes(s.App.Group("/geocode"), geocode.NewClient(s.Cfg.GeocoderURL, s.Cfg.GeocoderToken))
}
