package geo

import (
	"errors"
	"math"
)

const earthRadiusKm = 6371.0

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Coordinate is a [longitude, latitude] pair. Longitude-first ordering is
// used everywhere in this codebase, matching GeoJSON.
type Coordinate [2]float64

func (c Coordinate) Lng() float64 { return c[0] }
func (c Coordinate) Lat() float64 { return c[1] }

// DistanceKm returns the great-circle distance between two points in
// kilometers, using the haversine formula.
func DistanceKm(a, b Coordinate) float64 {
	lat1 := radians(a.Lat())
	lat2 := radians(b.Lat())
	dLat := radians(b.Lat() - a.Lat())
	dLng := radians(b.Lng() - a.Lng())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// RoundKm rounds a distance to one decimal, the precision shown to users.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

// LowZoomThreshold is the zoom level below which marker longitudes are
// shifted to avoid antimeridian wraparound artifacts.
const LowZoomThreshold = 2

// NormalizeForLowZoom returns p unchanged at zoom >= LowZoomThreshold.
// Below it, when the longitude delta to the viewport center exceeds 180
// degrees, the point is shifted by a full revolution toward the center so
// markers render on the visible copy of the world.
func NormalizeForLowZoom(p, center Coordinate, zoom float64) Coordinate {
	if zoom >= LowZoomThreshold {
		return p
	}
	delta := p.Lng() - center.Lng()
	if delta > 180 {
		return Coordinate{p.Lng() - 360, p.Lat()}
	}
	if delta < -180 {
		return Coordinate{p.Lng() + 360, p.Lat()}
	}
	return p
}

var ErrNoPoints = errors.New("geo: no points")

// BoundsOf returns the south-west and north-east corners of the bounding
// box containing every point.
func BoundsOf(points []Coordinate) (sw, ne Coordinate, err error) {
	if len(points) == 0 {
		return Coordinate{}, Coordinate{}, ErrNoPoints
	}
	sw = points[0]
	ne = points[0]
	for _, p := range points[1:] {
		sw[0] = math.Min(sw[0], p.Lng())
		sw[1] = math.Min(sw[1], p.Lat())
		ne[0] = math.Max(ne[0], p.Lng())
		ne[1] = math.Max(ne[1], p.Lat())
	}
	return sw, ne, nil
}
