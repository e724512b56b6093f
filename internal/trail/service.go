package trail

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/clement8426/trail-mosaic-sub000/internal/catalog"
	"github.com/clement8426/trail-mosaic-sub000/internal/mapview"
	"github.com/clement8426/trail-mosaic-sub000/internal/overlay"
	"github.com/clement8426/trail-mosaic-sub000/internal/search"
	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("trail not found")

type Service struct {
	catalog  *catalog.Catalog
	overlays *overlay.Store
	hub      *mapview.Hub
	validate *validator.Validate
}

func NewService(c *catalog.Catalog, overlays *overlay.Store, hub *mapview.Hub) *Service {
	return &Service{
		catalog:  c,
		overlays: overlays,
		hub:      hub,
		validate: validator.New(),
	}
}

// List filters the trail catalog and applies the view session's patch so
// locally added comments and ratings show up in listings.
func (s *Service) List(ctx context.Context, viewID string, q search.TrailQuery) ([]search.TrailResult, error) {
	patch, err := s.overlays.Get(ctx, viewID)
	if err != nil {
		return nil, err
	}
	results := search.Trails(s.catalog, q)
	for i := range results {
		results[i].Trail = patch.ApplyTrail(results[i].Trail)
	}
	return results, nil
}

func (s *Service) Get(ctx context.Context, viewID, id string) (catalog.Trail, error) {
	t, ok := s.catalog.TrailByID(id)
	if !ok {
		return catalog.Trail{}, ErrNotFound
	}
	patch, err := s.overlays.Get(ctx, viewID)
	if err != nil {
		return catalog.Trail{}, err
	}
	return patch.ApplyTrail(t), nil
}

// AddComment records a comment in the view session's patch. A star value
// between 1 and 5 also folds into the trail's rating. The base catalog
// is never touched.
func (s *Service) AddComment(ctx context.Context, viewID, trailID string, userID, username, text string, rating int) (catalog.Trail, error) {
	t, ok := s.catalog.TrailByID(trailID)
	if !ok {
		return catalog.Trail{}, ErrNotFound
	}

	patch, err := s.overlays.Get(ctx, viewID)
	if err != nil {
		return catalog.Trail{}, err
	}
	patch.AddComment(t, catalog.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Text:      text,
		Rating:    rating,
		CreatedAt: time.Now(),
	})
	if err := s.overlays.Save(ctx, viewID, patch); err != nil {
		return catalog.Trail{}, err
	}

	s.notify(viewID)
	return patch.ApplyTrail(t), nil
}

func (s *Service) AddObstacle(ctx context.Context, viewID, trailID string, o catalog.Obstacle) (catalog.Trail, error) {
	t, ok := s.catalog.TrailByID(trailID)
	if !ok {
		return catalog.Trail{}, ErrNotFound
	}

	patch, err := s.overlays.Get(ctx, viewID)
	if err != nil {
		return catalog.Trail{}, err
	}
	patch.AddObstacle(trailID, o)
	if err := s.overlays.Save(ctx, viewID, patch); err != nil {
		return catalog.Trail{}, err
	}

	s.notify(viewID)
	return patch.ApplyTrail(t), nil
}

// CreateSpotInput is the create form payload.
type CreateSpotInput struct {
	Name        string   `json:"name" validate:"required,min=3"`
	Location    string   `json:"location" validate:"required"`
	Lng         float64  `json:"lng" validate:"min=-180,max=180"`
	Lat         float64  `json:"lat" validate:"min=-90,max=90"`
	Description string   `json:"description"`
	DistanceKm  float64  `json:"distance_km" validate:"min=0"`
	ElevationM  float64  `json:"elevation_m" validate:"min=0"`
	Difficulty  string   `json:"difficulty" validate:"required"`
	TrailType   string   `json:"trail_type" validate:"required"`
	BikeTypes   []string `json:"recommended_bikes"`
	Region      string   `json:"region"`
}

// CreateSpot validates the form and synthesizes a trail. The result is
// logged and returned to the caller, not added to the catalog; there is
// no write path.
func (s *Service) CreateSpot(_ context.Context, createdBy string, input CreateSpotInput) (catalog.Trail, error) {
	if err := s.validate.Struct(input); err != nil {
		return catalog.Trail{}, err
	}

	t := catalog.Trail{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Location:    input.Location,
		Coordinates: geo.Coordinate{input.Lng, input.Lat},
		Description: input.Description,
		DistanceKm:  input.DistanceKm,
		ElevationM:  input.ElevationM,
		Difficulty:  input.Difficulty,
		TrailType:   input.TrailType,
		BikeTypes:   input.BikeTypes,
		Obstacles:   []catalog.Obstacle{},
		Region:      input.Region,
		Contributors: []catalog.Contribution{
			{UserID: createdBy, Action: "created", CreatedAt: time.Now()},
		},
	}
	log.Printf("trail: spot %q submitted by %s at %v (not persisted)", t.Name, createdBy, t.Coordinates)
	return t, nil
}

func (s *Service) notify(viewID string) {
	if s.hub != nil {
		s.hub.Broadcast(viewID, []byte(`{"type":"refresh"}`))
	}
}
