package overlay

import (
	"github.com/clement8426/trail-mosaic-sub000/internal/catalog"
)

// Patch is the set of local mutations layered over the immutable catalog.
// It belongs to one view session, is applied on read, and is never
// written back to the base data.
type Patch struct {
	Comments      map[string][]catalog.Comment  `json:"comments,omitempty"`
	Obstacles     map[string][]catalog.Obstacle `json:"obstacles,omitempty"`
	Ratings       map[string]Rating             `json:"ratings,omitempty"`
	Sessions      []catalog.RideSession         `json:"sessions,omitempty"`
	Participation map[string][]catalog.Participant `json:"participation,omitempty"`
}

// Rating is the overlay value of a trail's aggregate rating after one or
// more rated comments.
type Rating struct {
	Value   float64 `json:"value"`
	Reviews int     `json:"reviews"`
}

func NewPatch() *Patch {
	return &Patch{
		Comments:      map[string][]catalog.Comment{},
		Obstacles:     map[string][]catalog.Obstacle{},
		Ratings:       map[string]Rating{},
		Participation: map[string][]catalog.Participant{},
	}
}

// AddComment records a comment against a trail. A comment with a star
// value folds into the running mean and bumps the review count exactly
// once; an unrated comment leaves the aggregate untouched.
func (p *Patch) AddComment(t catalog.Trail, c catalog.Comment) {
	p.Comments[t.ID] = append(p.Comments[t.ID], c)
	if c.Rating <= 0 {
		return
	}
	current, ok := p.Ratings[t.ID]
	if !ok {
		current = Rating{Value: t.Rating, Reviews: t.Reviews}
	}
	next := Rating{Reviews: current.Reviews + 1}
	next.Value = (current.Value*float64(current.Reviews) + float64(c.Rating)) / float64(next.Reviews)
	p.Ratings[t.ID] = next
}

func (p *Patch) AddObstacle(trailID string, o catalog.Obstacle) {
	p.Obstacles[trailID] = append(p.Obstacles[trailID], o)
}

func (p *Patch) AddSession(s catalog.RideSession) {
	p.Sessions = append(p.Sessions, s)
}

// SetParticipation records a user's status on a session, replacing any
// earlier status for the same user.
func (p *Patch) SetParticipation(sessionID string, participant catalog.Participant) {
	list := p.Participation[sessionID]
	for i := range list {
		if list[i].UserID == participant.UserID {
			list[i] = participant
			p.Participation[sessionID] = list
			return
		}
	}
	p.Participation[sessionID] = append(list, participant)
}

// ApplyTrail returns a copy of the trail with the patch folded in. The
// input trail is left untouched.
func (p *Patch) ApplyTrail(t catalog.Trail) catalog.Trail {
	if comments, ok := p.Comments[t.ID]; ok {
		t.Comments = append(append([]catalog.Comment{}, t.Comments...), comments...)
	}
	if obstacles, ok := p.Obstacles[t.ID]; ok {
		t.Obstacles = append(append([]catalog.Obstacle{}, t.Obstacles...), obstacles...)
	}
	if rating, ok := p.Ratings[t.ID]; ok {
		t.Rating = rating.Value
		t.Reviews = rating.Reviews
	}
	return t
}

// ApplySession returns a copy of the session with patched participation.
func (p *Patch) ApplySession(s catalog.RideSession) catalog.RideSession {
	patched, ok := p.Participation[s.ID]
	if !ok {
		return s
	}
	merged := append([]catalog.Participant{}, s.Participants...)
	for _, np := range patched {
		replaced := false
		for i := range merged {
			if merged[i].UserID == np.UserID {
				merged[i] = np
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, np)
		}
	}
	s.Participants = merged
	return s
}

// AllSessions returns the base sessions with participation applied, plus
// the overlay-created ones.
func (p *Patch) AllSessions(base []catalog.RideSession) []catalog.RideSession {
	out := make([]catalog.RideSession, 0, len(base)+len(p.Sessions))
	for _, s := range base {
		out = append(out, p.ApplySession(s))
	}
	for _, s := range p.Sessions {
		out = append(out, p.ApplySession(s))
	}
	return out
}
