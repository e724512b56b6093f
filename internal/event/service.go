package event

import (
	"errors"

	"github.com/clement8426/trail-mosaic-sub000/internal/catalog"
	"github.com/clement8426/trail-mosaic-sub000/internal/search"
)

var ErrNotFound = errors.New("event not found")

type Service struct {
	catalog *catalog.Catalog
}

func NewService(c *catalog.Catalog) *Service {
	return &Service{catalog: c}
}

func (s *Service) List(q search.EventQuery) []search.EventResult {
	return search.Events(s.catalog, q)
}

// Get returns the event with its resolved coordinates filled in, so the
// caller never has to repeat the fallback chain.
func (s *Service) Get(id string) (catalog.Event, error) {
	e, ok := s.catalog.EventByID(id)
	if !ok {
		return catalog.Event{}, ErrNotFound
	}
	if e.Coordinates == nil {
		if coord, ok := s.catalog.EventCoordinate(e); ok {
			e.Coordinates = &coord
		}
	}
	return e, nil
}
