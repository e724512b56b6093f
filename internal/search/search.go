package search

import (
	"sort"
	"strings"

	"github.com/clement8426/trail-mosaic-sub000/internal/catalog"
	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"
)

// Range is an inclusive [Min, Max] distance window in kilometers.
type Range struct {
	Min float64
	Max float64
}

func (r Range) contains(km float64) bool {
	return km >= r.Min && km <= r.Max
}

// TrailQuery narrows the trail catalog. Empty or "all" categorical values
// bypass the corresponding check. Distance requires From to be set.
type TrailQuery struct {
	Text       string
	Difficulty string
	TrailType  string
	BikeType   string
	Region     string
	Distance   *Range
	From       *geo.Coordinate
}

type EventQuery struct {
	Text     string
	Category string
	Region   string
	Distance *Range
	From     *geo.Coordinate
}

type SessionQuery struct {
	Text     string
	TrailID  string
	Distance *Range
	From     *geo.Coordinate
}

// TrailResult is a catalog trail plus its derived distance from the
// reference point. Distance is view-only and never stored.
type TrailResult struct {
	catalog.Trail
	FromKm *float64 `json:"distance_from_km,omitempty"`

	sortKm float64
}

type EventResult struct {
	catalog.Event
	FromKm *float64 `json:"distance_from_km,omitempty"`

	sortKm float64
}

type SessionResult struct {
	catalog.RideSession
	FromKm *float64 `json:"distance_from_km,omitempty"`

	sortKm float64
}

// Trails filters the catalog's trails. Order is the catalog order unless
// a distance filter is active, in which case results sort nearest-first.
func Trails(c *catalog.Catalog, q TrailQuery) []TrailResult {
	results := make([]TrailResult, 0, len(c.Trails))
	for _, t := range c.Trails {
		if !matchText(q.Text, t.Name, t.Location, t.Description) {
			continue
		}
		if !matchCategory(q.Difficulty, t.Difficulty) {
			continue
		}
		if !matchCategory(q.TrailType, t.TrailType) {
			continue
		}
		if q.BikeType != "" && q.BikeType != catalog.FilterAll && !contains(t.BikeTypes, q.BikeType) {
			continue
		}
		if !matchRegion(q.Region, t.Region) {
			continue
		}
		r := TrailResult{Trail: t}
		if q.Distance != nil {
			raw, ok := withinDistance(t.Coordinates, true, q.From, *q.Distance)
			if !ok {
				continue
			}
			km := geo.RoundKm(raw)
			r.FromKm = &km
			r.sortKm = raw
		} else if q.From != nil {
			km := geo.RoundKm(geo.DistanceKm(*q.From, t.Coordinates))
			r.FromKm = &km
		}
		results = append(results, r)
	}
	if q.Distance != nil {
		sort.SliceStable(results, func(i, j int) bool { return results[i].sortKm < results[j].sortKm })
	}
	return results
}

func Events(c *catalog.Catalog, q EventQuery) []EventResult {
	results := make([]EventResult, 0, len(c.Events))
	for _, e := range c.Events {
		if !matchText(q.Text, e.Title, e.Location, e.Description) {
			continue
		}
		if !matchCategory(q.Category, e.Category) {
			continue
		}
		if !matchRegion(q.Region, e.Region) {
			continue
		}
		r := EventResult{Event: e}
		coord, resolvable := c.EventCoordinate(e)
		if q.Distance != nil {
			raw, ok := withinDistance(coord, resolvable, q.From, *q.Distance)
			if !ok {
				continue
			}
			km := geo.RoundKm(raw)
			r.FromKm = &km
			r.sortKm = raw
		} else if q.From != nil && resolvable {
			km := geo.RoundKm(geo.DistanceKm(*q.From, coord))
			r.FromKm = &km
		}
		results = append(results, r)
	}
	if q.Distance != nil {
		sort.SliceStable(results, func(i, j int) bool { return results[i].sortKm < results[j].sortKm })
	}
	return results
}

func Sessions(c *catalog.Catalog, q SessionQuery) []SessionResult {
	results := make([]SessionResult, 0, len(c.Sessions))
	for _, s := range c.Sessions {
		if !matchText(q.Text, s.Title, s.Description) {
			continue
		}
		if q.TrailID != "" && q.TrailID != s.TrailID {
			continue
		}
		r := SessionResult{RideSession: s}
		coord, resolvable := c.SessionCoordinate(s)
		if q.Distance != nil {
			raw, ok := withinDistance(coord, resolvable, q.From, *q.Distance)
			if !ok {
				continue
			}
			km := geo.RoundKm(raw)
			r.FromKm = &km
			r.sortKm = raw
		} else if q.From != nil && resolvable {
			km := geo.RoundKm(geo.DistanceKm(*q.From, coord))
			r.FromKm = &km
		}
		results = append(results, r)
	}
	if q.Distance != nil {
		sort.SliceStable(results, func(i, j int) bool { return results[i].sortKm < results[j].sortKm })
	}
	return results
}

func matchText(query string, fields ...string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func matchCategory(want, got string) bool {
	return want == "" || want == catalog.FilterAll || want == got
}

func matchRegion(want, got string) bool {
	return want == "" || want == got
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// withinDistance drops items without a resolvable coordinate and items
// outside the window. A distance filter without a reference point matches
// nothing, since nothing can be measured.
func withinDistance(coord geo.Coordinate, resolvable bool, from *geo.Coordinate, r Range) (float64, bool) {
	if !resolvable || from == nil {
		return 0, false
	}
	km := geo.DistanceKm(*from, coord)
	if !r.contains(km) {
		return 0, false
	}
	return km, true
}
