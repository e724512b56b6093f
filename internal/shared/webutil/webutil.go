package webutil

import (
	"strconv"

	"github.com/clement8426/trail-mosaic-sub000/internal/search"
	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"

	"github.com/gofiber/fiber/v2"
)

// SessionHeader carries the browser session id on every request that is
// scoped to a view session.
const SessionHeader = "X-Session-ID"

// ViewID scopes overlay patches to the caller's browser session; an
// anonymous caller gets a shared scratch session.
func ViewID(c *fiber.Ctx) string {
	if id := c.Get(SessionHeader); id != "" {
		return id
	}
	return "anonymous"
}

// DistanceParams reads the optional reference point (lng, lat) and
// distance window (min_km, max_km) query parameters.
func DistanceParams(c *fiber.Ctx) (*search.Range, *geo.Coordinate) {
	var from *geo.Coordinate
	lngStr, latStr := c.Query("lng"), c.Query("lat")
	if lngStr != "" && latStr != "" {
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		lat, errLat := strconv.ParseFloat(latStr, 64)
		if errLng == nil && errLat == nil {
			from = &geo.Coordinate{lng, lat}
		}
	}

	minStr, maxStr := c.Query("min_km"), c.Query("max_km")
	if minStr == "" && maxStr == "" {
		return nil, from
	}
	r := &search.Range{Max: 1e9}
	if v, err := strconv.ParseFloat(minStr, 64); err == nil {
		r.Min = v
	}
	if v, err := strconv.ParseFloat(maxStr, 64); err == nil {
		r.Max = v
	}
	return r, from
}
