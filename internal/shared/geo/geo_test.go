package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	// Paris (2.3522, 48.8566) to Lyon (4.8357, 45.7640) ~ 390-400 km
	paris := Coordinate{2.3522, 48.8566}
	lyon := Coordinate{4.8357, 45.7640}
	d := DistanceKm(paris, lyon)
	if d < 380 || d > 410 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := Coordinate{3.8767, 43.6108}
	b := Coordinate{-73.5673, 45.5017}
	if DistanceKm(a, b) != DistanceKm(b, a) {
		t.Fatalf("expected symmetric distance")
	}
	if DistanceKm(a, a) != 0 {
		t.Fatalf("expected zero distance to self")
	}
}

func TestRoundKm(t *testing.T) {
	if RoundKm(12.34) != 12.3 {
		t.Fatalf("unexpected rounding: %v", RoundKm(12.34))
	}
	if RoundKm(12.35) != 12.4 {
		t.Fatalf("unexpected rounding: %v", RoundKm(12.35))
	}
}

func TestNormalizeForLowZoomIdentityAtHighZoom(t *testing.T) {
	p := Coordinate{179, 10}
	center := Coordinate{-179, 0}
	if NormalizeForLowZoom(p, center, 2) != p {
		t.Fatalf("expected identity at zoom >= 2")
	}
	if NormalizeForLowZoom(p, center, 8.5) != p {
		t.Fatalf("expected identity at high zoom")
	}
}

func TestNormalizeForLowZoomWraps(t *testing.T) {
	center := Coordinate{-170, 0}

	p := NormalizeForLowZoom(Coordinate{175, 10}, center, 1)
	if p.Lng() != -185 {
		t.Fatalf("expected shift west, got %v", p.Lng())
	}

	p = NormalizeForLowZoom(Coordinate{-175, 10}, Coordinate{170, 0}, 1)
	if p.Lng() != 185 {
		t.Fatalf("expected shift east, got %v", p.Lng())
	}

	// within 180 degrees: untouched
	p = NormalizeForLowZoom(Coordinate{-20, 10}, center, 1)
	if p.Lng() != -20 {
		t.Fatalf("expected no shift, got %v", p.Lng())
	}
}

func TestNormalizeForLowZoomBoundedDelta(t *testing.T) {
	center := Coordinate{45, 0}
	for lng := -180.0; lng <= 180; lng += 7.5 {
		p := NormalizeForLowZoom(Coordinate{lng, 0}, center, 0)
		if math.Abs(p.Lng()-center.Lng()) > 180 {
			t.Fatalf("normalized lng %v more than 180 from center", p.Lng())
		}
	}
}

func TestBoundsOf(t *testing.T) {
	sw, ne, err := BoundsOf([]Coordinate{{2, 48}, {-1, 50}, {5, 43}})
	if err != nil {
		t.Fatalf("bounds: %v", err)
	}
	if sw != (Coordinate{-1, 43}) || ne != (Coordinate{5, 50}) {
		t.Fatalf("unexpected bounds: %v %v", sw, ne)
	}

	if _, _, err := BoundsOf(nil); err == nil {
		t.Fatalf("expected error on empty input")
	}
}

func TestDistanceKmMeridianDegree(t *testing.T) {
	// one degree of latitude along a meridian is R*pi/180 km
	got := DistanceKm(Coordinate{0, 0}, Coordinate{0, 1})
	want := earthRadiusKm * math.Pi / 180
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v km per degree, got %v", want, got)
	}
}
