package mapview

import (
	"log"

	"github.com/clement8426/trail-mosaic-sub000/internal/catalog"
	"github.com/clement8426/trail-mosaic-sub000/internal/search"
	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"
)

// Controller states. Reconciliation only runs once the widget reported
// its style/tiles loaded.
const (
	StateUninitialized = "uninitialized"
	StateLoading       = "loading"
	StateReady         = "ready"
)

// View modes select which catalogs contribute markers.
const (
	ModeTrails   = "trails"
	ModeEvents   = "events"
	ModeSessions = "sessions"
	ModeAll      = "all"
)

const (
	fitPadding = 60
	fitMaxZoom = 15
)

// Filters is the map view's active filter state, shared across the three
// catalogs where fields apply.
type Filters struct {
	Text       string            `json:"text"`
	Difficulty string            `json:"difficulty"`
	TrailType  string            `json:"trail_type"`
	BikeType   string            `json:"bike_type"`
	Category   string            `json:"category"`
	Region     string            `json:"region"`
	Distance   *search.Range     `json:"-"`
	From       *geo.Coordinate   `json:"-"`
}

type Selection struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// Camera is the viewport instruction that accompanies a reconciliation.
type Camera struct {
	Action  string          `json:"action"` // fit_bounds | fly_to
	Target  *geo.Coordinate `json:"target,omitempty"`
	SW      *geo.Coordinate `json:"sw,omitempty"`
	NE      *geo.Coordinate `json:"ne,omitempty"`
	Padding int             `json:"padding,omitempty"`
	MaxZoom float64         `json:"max_zoom,omitempty"`
}

// Controller owns one map widget's marker set and viewport bookkeeping.
// It has exactly one writer: the view session that created it.
type Controller struct {
	catalog *catalog.Catalog

	state        string
	mode         string
	filters      Filters
	center       geo.Coordinate
	zoom         float64
	userLocation *geo.Coordinate
	selected     *Selection

	markers []Marker
}

func NewController(c *catalog.Catalog) *Controller {
	return &Controller{
		catalog: c,
		state:   StateUninitialized,
		mode:    ModeAll,
		zoom:    5,
	}
}

func (c *Controller) State() string { return c.state }

// Markers returns the currently applied marker set.
func (c *Controller) Markers() []Marker { return c.markers }

// BeginLoading moves the controller out of uninitialized while the
// widget loads its style and tiles.
func (c *Controller) BeginLoading() {
	if c.state == StateUninitialized {
		c.state = StateLoading
	}
}

// SetReady marks the widget loaded and runs the first reconciliation.
func (c *Controller) SetReady() (Diff, *Camera) {
	c.state = StateReady
	return c.Reconcile()
}

func (c *Controller) SetViewMode(mode string) (Diff, *Camera) {
	switch mode {
	case ModeTrails, ModeEvents, ModeSessions, ModeAll:
		c.mode = mode
	}
	return c.Reconcile()
}

func (c *Controller) SetFilters(f Filters) (Diff, *Camera) {
	c.filters = f
	return c.Reconcile()
}

// SetViewport records a pan/zoom. Crossing the low-zoom threshold can
// move normalized markers, so it reconciles too.
func (c *Controller) SetViewport(center geo.Coordinate, zoom float64) (Diff, *Camera) {
	c.center = center
	c.zoom = zoom
	return c.Reconcile()
}

// SetUserLocation pins the user's position. The pin always wins over
// auto-fit and triggers a fly-to.
func (c *Controller) SetUserLocation(p geo.Coordinate) (Diff, *Camera) {
	c.userLocation = &p
	return c.Reconcile()
}

// Select records a marker selection and returns the fly-to for the
// item's resolved coordinate. The selection event itself is the caller's
// to surface.
func (c *Controller) Select(kind, id string) (*Selection, *Camera) {
	coord, ok := c.resolve(kind, id)
	if !ok {
		return nil, nil
	}
	c.selected = &Selection{Kind: kind, ID: id}
	return c.selected, &Camera{Action: "fly_to", Target: &coord}
}

func (c *Controller) ClearSelection() {
	c.selected = nil
}

// Reconcile recomputes the visible marker set and diffs it against the
// applied one. Outside the ready state it does nothing.
func (c *Controller) Reconcile() (Diff, *Camera) {
	if c.state != StateReady {
		return Diff{}, nil
	}

	next := c.visibleMarkers()
	diff := DiffMarkers(c.markers, next)
	c.markers = next

	return diff, c.camera(next)
}

func (c *Controller) visibleMarkers() []Marker {
	var markers []Marker

	if c.mode == ModeTrails || c.mode == ModeAll {
		for _, r := range search.Trails(c.catalog, search.TrailQuery{
			Text:       c.filters.Text,
			Difficulty: c.filters.Difficulty,
			TrailType:  c.filters.TrailType,
			BikeType:   c.filters.BikeType,
			Region:     c.filters.Region,
			Distance:   c.filters.Distance,
			From:       c.filters.From,
		}) {
			markers = append(markers, c.marker(KindTrail, r.ID, r.Name, r.Coordinates))
		}
	}
	if c.mode == ModeEvents || c.mode == ModeAll {
		for _, r := range search.Events(c.catalog, search.EventQuery{
			Text:     c.filters.Text,
			Category: c.filters.Category,
			Region:   c.filters.Region,
			Distance: c.filters.Distance,
			From:     c.filters.From,
		}) {
			coord, ok := c.catalog.EventCoordinate(r.Event)
			if !ok {
				continue
			}
			markers = append(markers, c.marker(KindEvent, r.ID, r.Title, coord))
		}
	}
	if c.mode == ModeSessions || c.mode == ModeAll {
		for _, r := range search.Sessions(c.catalog, search.SessionQuery{
			Text:     c.filters.Text,
			Distance: c.filters.Distance,
			From:     c.filters.From,
		}) {
			coord, ok := c.catalog.SessionCoordinate(r.RideSession)
			if !ok {
				continue
			}
			markers = append(markers, c.marker(KindSession, r.ID, r.Title, coord))
		}
	}

	if c.userLocation != nil {
		markers = append(markers, c.marker(KindUserLocation, "me", "Ma position", *c.userLocation))
	}
	return markers
}

func (c *Controller) marker(kind, id, label string, coord geo.Coordinate) Marker {
	return Marker{
		ID:          id,
		Kind:        kind,
		Label:       label,
		Coordinates: geo.NormalizeForLowZoom(coord, c.center, c.zoom),
	}
}

// camera picks the viewport instruction for the current marker set. A
// user-location pin or an explicit selection suppresses auto-fit.
func (c *Controller) camera(markers []Marker) *Camera {
	if c.userLocation != nil {
		return &Camera{Action: "fly_to", Target: c.userLocation}
	}
	if c.selected != nil {
		return nil
	}

	points := make([]geo.Coordinate, 0, len(markers))
	for _, m := range markers {
		points = append(points, m.Coordinates)
	}
	sw, ne, err := geo.BoundsOf(points)
	if err != nil {
		log.Printf("mapview: fit bounds skipped: %v", err)
		return nil
	}
	return &Camera{Action: "fit_bounds", SW: &sw, NE: &ne, Padding: fitPadding, MaxZoom: fitMaxZoom}
}

func (c *Controller) resolve(kind, id string) (geo.Coordinate, bool) {
	switch kind {
	case KindTrail:
		if t, ok := c.catalog.TrailByID(id); ok {
			return t.Coordinates, true
		}
	case KindEvent:
		if e, ok := c.catalog.EventByID(id); ok {
			return c.catalog.EventCoordinate(e)
		}
	case KindSession:
		if s, ok := c.catalog.SessionByID(id); ok {
			return c.catalog.SessionCoordinate(s)
		}
	}
	return geo.Coordinate{}, false
}
