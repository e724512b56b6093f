package overlay

import (
	"context"
	"math"
	"testing"

	"github.com/clement8426/trail-mosaic-sub000/internal/catalog"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRatedCommentUpdatesRunningMean(t *testing.T) {
	trail := catalog.Trail{ID: "trail-1", Rating: 4.0, Reviews: 10}
	p := NewPatch()

	p.AddComment(trail, catalog.Comment{ID: "c1", Text: "super spot", Rating: 4})

	patched := p.ApplyTrail(trail)
	if patched.Reviews != 11 {
		t.Fatalf("expected 11 reviews, got %d", patched.Reviews)
	}
	want := (4.0*10 + 4) / 11
	if math.Abs(patched.Rating-want) > 1e-9 {
		t.Fatalf("expected rating %v, got %v", want, patched.Rating)
	}

	// the base trail is untouched
	if trail.Rating != 4.0 || trail.Reviews != 10 {
		t.Fatalf("base trail mutated")
	}
}

func TestUnratedCommentLeavesAggregateAlone(t *testing.T) {
	trail := catalog.Trail{ID: "trail-1", Rating: 4.5, Reviews: 12}
	p := NewPatch()

	p.AddComment(trail, catalog.Comment{ID: "c1", Text: "pas d'étoiles"})

	patched := p.ApplyTrail(trail)
	if patched.Rating != 4.5 || patched.Reviews != 12 {
		t.Fatalf("aggregate should be unchanged, got %v/%d", patched.Rating, patched.Reviews)
	}
	if len(patched.Comments) != 1 {
		t.Fatalf("expected the comment to be applied")
	}
}

func TestSuccessiveRatingsChainOverlayValue(t *testing.T) {
	trail := catalog.Trail{ID: "trail-1", Rating: 4.0, Reviews: 1}
	p := NewPatch()

	p.AddComment(trail, catalog.Comment{ID: "c1", Rating: 2})
	p.AddComment(trail, catalog.Comment{ID: "c2", Rating: 5})

	patched := p.ApplyTrail(trail)
	if patched.Reviews != 3 {
		t.Fatalf("expected 3 reviews, got %d", patched.Reviews)
	}
	want := (4.0 + 2 + 5) / 3
	if math.Abs(patched.Rating-want) > 1e-9 {
		t.Fatalf("expected rating %v, got %v", want, patched.Rating)
	}
}

func TestAddObstacleAppliedOnRead(t *testing.T) {
	trail := catalog.Trail{ID: "trail-1", Obstacles: []catalog.Obstacle{{Type: "drop"}}}
	p := NewPatch()
	p.AddObstacle("trail-1", catalog.Obstacle{Type: "gap", Description: "nouveau gap"})

	patched := p.ApplyTrail(trail)
	if len(patched.Obstacles) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(patched.Obstacles))
	}
	if len(trail.Obstacles) != 1 {
		t.Fatalf("base trail mutated")
	}
}

func TestParticipationReplacesEarlierStatus(t *testing.T) {
	base := catalog.RideSession{
		ID: "session-1",
		Participants: []catalog.Participant{
			{UserID: "user-1", Username: "remi_dh", Status: catalog.StatusGoing},
		},
	}
	p := NewPatch()
	p.SetParticipation("session-1", catalog.Participant{UserID: "user-2", Username: "lea.vtt", Status: catalog.StatusMaybe})
	p.SetParticipation("session-1", catalog.Participant{UserID: "user-2", Username: "lea.vtt", Status: catalog.StatusGoing})
	p.SetParticipation("session-1", catalog.Participant{UserID: "user-1", Username: "remi_dh", Status: catalog.StatusInterested})

	patched := p.ApplySession(base)
	if len(patched.Participants) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(patched.Participants))
	}
	for _, part := range patched.Participants {
		switch part.UserID {
		case "user-1":
			if part.Status != catalog.StatusInterested {
				t.Fatalf("user-1 status not replaced")
			}
		case "user-2":
			if part.Status != catalog.StatusGoing {
				t.Fatalf("user-2 status not replaced")
			}
		}
	}
}

func TestAllSessionsIncludesOverlayCreated(t *testing.T) {
	base := []catalog.RideSession{{ID: "session-1"}}
	p := NewPatch()
	p.AddSession(catalog.RideSession{ID: "local-1", Title: "Session improvisée"})

	all := p.AllSessions(base)
	if len(all) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(all))
	}
	if all[1].ID != "local-1" {
		t.Fatalf("expected overlay session last")
	}
}

func TestStoreInMemory(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	p, err := store.Get(ctx, "view-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	p.AddObstacle("trail-1", catalog.Obstacle{Type: "gap"})
	if err := store.Save(ctx, "view-1", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Get(ctx, "view-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(loaded.Obstacles["trail-1"]) != 1 {
		t.Fatalf("expected saved patch")
	}

	if err := store.Delete(ctx, "view-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	fresh, _ := store.Get(ctx, "view-1")
	if len(fresh.Obstacles["trail-1"]) != 0 {
		t.Fatalf("expected empty patch after delete")
	}
}

func TestStoreRedisRoundTrip(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	store := NewStore(client)
	ctx := context.Background()

	p := NewPatch()
	p.AddComment(catalog.Trail{ID: "trail-1", Rating: 4.0, Reviews: 10}, catalog.Comment{ID: "c1", Rating: 4})
	if err := store.Save(ctx, "view-redis", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Get(ctx, "view-redis")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Ratings["trail-1"].Reviews != 11 {
		t.Fatalf("expected rating overlay to survive the round trip")
	}

	if err := store.Delete(ctx, "view-redis"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	fresh, err := store.Get(ctx, "view-redis")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if len(fresh.Ratings) != 0 {
		t.Fatalf("expected empty patch after delete")
	}
}

func TestStoreInMemoryGetReturnsCopy(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	p, _ := store.Get(ctx, "view-1")
	p.AddObstacle("trail-1", catalog.Obstacle{Type: "gap"})
	if err := store.Save(ctx, "view-1", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	// mutating one loaded patch must not bleed into another or into
	// the stored state until Save
	a, _ := store.Get(ctx, "view-1")
	b, _ := store.Get(ctx, "view-1")
	a.AddObstacle("trail-1", catalog.Obstacle{Type: "drop"})
	if len(b.Obstacles["trail-1"]) != 1 {
		t.Fatalf("mutation leaked between loaded patches")
	}
	stored, _ := store.Get(ctx, "view-1")
	if len(stored.Obstacles["trail-1"]) != 1 {
		t.Fatalf("mutation leaked into the store without Save")
	}

	// the caller's handle stays private after Save too
	p.AddObstacle("trail-1", catalog.Obstacle{Type: "rock"})
	stored, _ = store.Get(ctx, "view-1")
	if len(stored.Obstacles["trail-1"]) != 1 {
		t.Fatalf("saved patch aliases the caller's copy")
	}
}
