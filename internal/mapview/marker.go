package mapview

import (
	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"
)

// Marker kinds.
const (
	KindTrail        = "trail"
	KindEvent        = "event"
	KindSession      = "session"
	KindUserLocation = "user-location"
)

type Marker struct {
	ID          string         `json:"id"`
	Kind        string         `json:"kind"`
	Coordinates geo.Coordinate `json:"coordinates"`
	Label       string         `json:"label"`
}

// Key identifies a marker across reconciliations. Two items of different
// kinds may share an id.
func (m Marker) Key() string {
	return m.Kind + "/" + m.ID
}

// Diff is the reconciliation plan between two marker sets. Applying it to
// the previous set yields exactly the next set; nothing leaks.
type Diff struct {
	Add    []Marker `json:"add,omitempty"`
	Update []Marker `json:"update,omitempty"`
	Remove []string `json:"remove,omitempty"`
}

func (d Diff) Empty() bool {
	return len(d.Add) == 0 && len(d.Update) == 0 && len(d.Remove) == 0
}

// DiffMarkers computes the add/update/remove plan from prev to next. A
// marker present in both sets is an update only when its position or
// label changed.
func DiffMarkers(prev, next []Marker) Diff {
	var d Diff
	seen := make(map[string]Marker, len(prev))
	for _, m := range prev {
		seen[m.Key()] = m
	}
	for _, m := range next {
		old, ok := seen[m.Key()]
		if !ok {
			d.Add = append(d.Add, m)
			continue
		}
		delete(seen, m.Key())
		if old.Coordinates != m.Coordinates || old.Label != m.Label {
			d.Update = append(d.Update, m)
		}
	}
	for _, m := range prev {
		if _, leftover := seen[m.Key()]; leftover {
			d.Remove = append(d.Remove, m.Key())
		}
	}
	return d
}
