package session

import (
	"context"
	"errors"

	"github.com/clement8426/trail-mosaic-sub000/internal/catalog"
	"github.com/clement8426/trail-mosaic-sub000/internal/mapview"
	"github.com/clement8426/trail-mosaic-sub000/internal/overlay"
	"github.com/clement8426/trail-mosaic-sub000/internal/search"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("session not found")
	ErrUnknownTrail  = errors.New("trail not found")
	ErrUnknownStatus = errors.New("unknown participation status")
)

type Service struct {
	catalog  *catalog.Catalog
	overlays *overlay.Store
	hub      *mapview.Hub
}

func NewService(c *catalog.Catalog, overlays *overlay.Store, hub *mapview.Hub) *Service {
	return &Service{catalog: c, overlays: overlays, hub: hub}
}

// List filters the base sessions merged with the view session's locally
// created ones.
func (s *Service) List(ctx context.Context, viewID string, q search.SessionQuery) ([]search.SessionResult, error) {
	patch, err := s.overlays.Get(ctx, viewID)
	if err != nil {
		return nil, err
	}
	merged := catalog.New(s.catalog.Trails, s.catalog.Events, patch.AllSessions(s.catalog.Sessions), s.catalog.Users, s.catalog.Regions)
	return search.Sessions(merged, q), nil
}

// Create records a new ride session in the overlay. It references an
// existing trail and vanishes with the view session.
func (s *Service) Create(ctx context.Context, viewID string, input catalog.RideSession) (catalog.RideSession, error) {
	if _, ok := s.catalog.TrailByID(input.TrailID); !ok {
		return catalog.RideSession{}, ErrUnknownTrail
	}
	input.ID = uuid.NewString()
	if input.Participants == nil {
		input.Participants = []catalog.Participant{}
	}

	patch, err := s.overlays.Get(ctx, viewID)
	if err != nil {
		return catalog.RideSession{}, err
	}
	patch.AddSession(input)
	if err := s.overlays.Save(ctx, viewID, patch); err != nil {
		return catalog.RideSession{}, err
	}

	s.notify(viewID)
	return input, nil
}

// SetParticipation sets a user's going/interested/maybe status on a base
// or overlay-created session.
func (s *Service) SetParticipation(ctx context.Context, viewID, sessionID string, p catalog.Participant) (catalog.RideSession, error) {
	switch p.Status {
	case catalog.StatusGoing, catalog.StatusInterested, catalog.StatusMaybe:
	default:
		return catalog.RideSession{}, ErrUnknownStatus
	}

	patch, err := s.overlays.Get(ctx, viewID)
	if err != nil {
		return catalog.RideSession{}, err
	}

	target, ok := s.catalog.SessionByID(sessionID)
	if !ok {
		for _, local := range patch.Sessions {
			if local.ID == sessionID {
				target = local
				ok = true
				break
			}
		}
	}
	if !ok {
		return catalog.RideSession{}, ErrNotFound
	}

	patch.SetParticipation(sessionID, p)
	if err := s.overlays.Save(ctx, viewID, patch); err != nil {
		return catalog.RideSession{}, err
	}

	s.notify(viewID)
	return patch.ApplySession(target), nil
}

func (s *Service) notify(viewID string) {
	if s.hub != nil {
		s.hub.Broadcast(viewID, []byte(`{"type":"refresh"}`))
	}
}
