package catalog

import (
	"time"

	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"
)

// FilterAll is the sentinel value that bypasses a categorical filter.
const FilterAll = "all"

// Trail difficulty levels.
const (
	DifficultyBeginner     = "Débutant"
	DifficultyIntermediate = "Intermédiaire"
	DifficultyAdvanced     = "Avancé"
	DifficultyExpert       = "Expert"
)

// Trail types.
const (
	TrailTypeDownhill   = "Descente"
	TrailTypeTerrain    = "Terrain de bosses"
	TrailTypeBumpTricks = "Bosses à tricks"
)

// Event categories.
const (
	EventCompetition = "Compétition"
	EventGathering   = "Rassemblement"
	EventTraining    = "Entraînement"
)

// Session participation statuses.
const (
	StatusGoing      = "going"
	StatusInterested = "interested"
	StatusMaybe      = "maybe"
)

type Obstacle struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Contribution struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

type Trail struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	Coordinates geo.Coordinate `json:"coordinates"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	DistanceKm  float64        `json:"distance_km"`
	ElevationM  float64        `json:"elevation_m"`
	Difficulty  string         `json:"difficulty"`
	TrailType   string         `json:"trail_type"`
	BikeTypes   []string       `json:"recommended_bikes"`
	Obstacles   []Obstacle     `json:"obstacles"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
	Region      string         `json:"region,omitempty"`
	Comments    []Comment      `json:"comments,omitempty"`
	Sessions    []string       `json:"sessions,omitempty"`
	Contributors []Contribution `json:"contributors,omitempty"`
}

type Event struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Location    string          `json:"location"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	TrailID     string          `json:"trail_id,omitempty"`
	Region      string          `json:"region,omitempty"`
	Coordinates *geo.Coordinate `json:"coordinates,omitempty"`
}

type Participant struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Status   string `json:"status"`
}

type RideSession struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	CreatedBy    string        `json:"created_by"`
	Participants []Participant `json:"participants"`
	TrailID      string        `json:"trail_id"`
}

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Level     string    `json:"level,omitempty"`
	BikeTypes []string  `json:"preferred_bikes,omitempty"`
	Favorites []string  `json:"favorites,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RegionSummary carries denormalized counts maintained alongside the
// fixtures; it is never recomputed from the catalogs.
type RegionSummary struct {
	Name        string         `json:"name"`
	Coordinates geo.Coordinate `json:"coordinates"`
	Spots       int            `json:"spots"`
	Events      int            `json:"events"`
	Sessions    int            `json:"sessions"`
}
