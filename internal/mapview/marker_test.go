package mapview

import (
	"testing"

	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"
)

func TestDiffMarkersAddRemoveUpdate(t *testing.T) {
	prev := []Marker{
		{ID: "a", Kind: KindTrail, Coordinates: geo.Coordinate{1, 1}, Label: "A"},
		{ID: "b", Kind: KindTrail, Coordinates: geo.Coordinate{2, 2}, Label: "B"},
		{ID: "c", Kind: KindEvent, Coordinates: geo.Coordinate{3, 3}, Label: "C"},
	}
	next := []Marker{
		{ID: "a", Kind: KindTrail, Coordinates: geo.Coordinate{1, 1}, Label: "A"},
		{ID: "b", Kind: KindTrail, Coordinates: geo.Coordinate{2.5, 2}, Label: "B"},
		{ID: "d", Kind: KindSession, Coordinates: geo.Coordinate{4, 4}, Label: "D"},
	}

	d := DiffMarkers(prev, next)
	if len(d.Add) != 1 || d.Add[0].ID != "d" {
		t.Fatalf("unexpected add set: %+v", d.Add)
	}
	if len(d.Update) != 1 || d.Update[0].ID != "b" {
		t.Fatalf("unexpected update set: %+v", d.Update)
	}
	if len(d.Remove) != 1 || d.Remove[0] != "event/c" {
		t.Fatalf("unexpected remove set: %+v", d.Remove)
	}
}

func TestDiffMarkersKindsDoNotCollide(t *testing.T) {
	prev := []Marker{{ID: "x", Kind: KindTrail}}
	next := []Marker{{ID: "x", Kind: KindEvent}}

	d := DiffMarkers(prev, next)
	if len(d.Add) != 1 || len(d.Remove) != 1 {
		t.Fatalf("same id across kinds should be add+remove, got %+v", d)
	}
}

func TestDiffMarkersEmptySets(t *testing.T) {
	if !DiffMarkers(nil, nil).Empty() {
		t.Fatalf("expected empty diff")
	}
	d := DiffMarkers(nil, []Marker{{ID: "a", Kind: KindTrail}})
	if len(d.Add) != 1 {
		t.Fatalf("expected one add, got %+v", d)
	}
	d = DiffMarkers([]Marker{{ID: "a", Kind: KindTrail}}, nil)
	if len(d.Remove) != 1 {
		t.Fatalf("expected one remove, got %+v", d)
	}
}
