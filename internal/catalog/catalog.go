package catalog

import (
	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"
)

// Catalog is the immutable in-memory dataset the whole service reads from.
// Runtime mutations never touch it; they live in overlay patches.
type Catalog struct {
	Trails   []Trail
	Events   []Event
	Sessions []RideSession
	Users    []User
	Regions  []RegionSummary

	trailsByID map[string]Trail
}

func New(trails []Trail, events []Event, sessions []RideSession, users []User, regions []RegionSummary) *Catalog {
	c := &Catalog{
		Trails:     trails,
		Events:     events,
		Sessions:   sessions,
		Users:      users,
		Regions:    regions,
		trailsByID: make(map[string]Trail, len(trails)),
	}
	for _, t := range trails {
		c.trailsByID[t.ID] = t
	}
	return c
}

// Default returns a catalog over the embedded fixture dataset.
func Default() *Catalog {
	return New(fixtureTrails, fixtureEvents, fixtureSessions, fixtureUsers, fixtureRegions)
}

func (c *Catalog) TrailByID(id string) (Trail, bool) {
	t, ok := c.trailsByID[id]
	return t, ok
}

func (c *Catalog) UserByID(id string) (User, bool) {
	for _, u := range c.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func (c *Catalog) EventByID(id string) (Event, bool) {
	for _, e := range c.Events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

func (c *Catalog) SessionByID(id string) (RideSession, bool) {
	for _, s := range c.Sessions {
		if s.ID == id {
			return s, true
		}
	}
	return RideSession{}, false
}

// TrailCoordinate resolves a trail's position. Trails always carry their
// own coordinates.
func (c *Catalog) TrailCoordinate(t Trail) (geo.Coordinate, bool) {
	return t.Coordinates, true
}

// EventCoordinate resolves an event's position: own coordinates first,
// then the referenced trail, then the location lookup table. Dangling
// trail references degrade to the lookup table rather than failing.
func (c *Catalog) EventCoordinate(e Event) (geo.Coordinate, bool) {
	if e.Coordinates != nil {
		return *e.Coordinates, true
	}
	if e.TrailID != "" {
		if t, ok := c.trailsByID[e.TrailID]; ok {
			return t.Coordinates, true
		}
	}
	return LocationCoordinate(e.Location)
}

// SessionCoordinate resolves a ride session's position through its trail.
func (c *Catalog) SessionCoordinate(s RideSession) (geo.Coordinate, bool) {
	if t, ok := c.trailsByID[s.TrailID]; ok {
		return t.Coordinates, true
	}
	return geo.Coordinate{}, false
}

// cityCoordinates is the single location-to-coordinate table. Every
// caller that needs a fallback position for a bare location string goes
// through LocationCoordinate.
var cityCoordinates = map[string]geo.Coordinate{
	"Paris":       {2.3522, 48.8566},
	"Lyon":        {4.8357, 45.7640},
	"Marseille":   {5.3698, 43.2965},
	"Montpellier": {3.8767, 43.6108},
	"Bordeaux":    {-0.5792, 44.8378},
	"Toulouse":    {1.4442, 43.6047},
	"Nantes":      {-1.5534, 47.2184},
	"Grenoble":    {5.7245, 45.1885},
	"Annecy":      {6.1296, 45.8992},
	"Nice":        {7.2620, 43.7102},
	"Strasbourg":  {7.7521, 48.5734},
	"Lille":       {3.0573, 50.6292},
}

func LocationCoordinate(location string) (geo.Coordinate, bool) {
	c, ok := cityCoordinates[location]
	return c, ok
}
