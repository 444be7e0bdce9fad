package models

import (
	"fmt"
)

// Assignment is one seat of a team: a player and the class they play.
type Assignment struct {
	Player PlayerInfo
	Class  GameClass
}

// Team is a roster of at most Tuning.TeamSize() players under per-class limits.
// Assignments keep their insertion order; a swap keeps the seat in place.
type Team struct {
	id          int
	tuning      Tuning
	assignments []Assignment
}

// NewTeam creates an empty team. Ids only need to be unique within a build.
func NewTeam(id int, tuning Tuning) *Team {
	return &Team{
		id:          id,
		tuning:      tuning,
		assignments: make([]Assignment, 0, tuning.TeamSize()),
	}
}

func (t *Team) ID() int { return t.id }

// Copy returns a deep copy that shares no mutable state with t.
func (t *Team) Copy() *Team {
	out := &Team{
		id:          t.id,
		tuning:      t.tuning,
		assignments: make([]Assignment, len(t.assignments), cap(t.assignments)),
	}
	copy(out.assignments, t.assignments)
	return out
}

// Len is the number of assigned players.
func (t *Team) Len() int { return len(t.assignments) }

func (t *Team) IsFull() bool { return len(t.assignments) >= t.tuning.TeamSize() }

// Assignments returns the seats in order.
func (t *Team) Assignments() []Assignment {
	out := make([]Assignment, len(t.assignments))
	copy(out, t.assignments)
	return out
}

func (t *Team) Players() []PlayerInfo {
	out := make([]PlayerInfo, len(t.assignments))
	for i, a := range t.assignments {
		out[i] = a.Player
	}
	return out
}

func (t *Team) indexOf(p PlayerInfo) int {
	for i, a := range t.assignments {
		if a.Player == p {
			return i
		}
	}
	return -1
}

func (t *Team) Contains(p PlayerInfo) bool {
	return t.indexOf(p) >= 0
}

// PlayerClass returns the class the player is assigned to.
func (t *Team) PlayerClass(p PlayerInfo) (GameClass, error) {
	i := t.indexOf(p)
	if i < 0 {
		return 0, fmt.Errorf("%w: %s in team %d", ErrPlayerNotFound, p.nickname, t.id)
	}
	return t.assignments[i].Class, nil
}

// ClassOccupancy counts the players assigned to the class.
func (t *Team) ClassOccupancy(c GameClass) int {
	n := 0
	for _, a := range t.assignments {
		if a.Class == c {
			n++
		}
	}
	return n
}

// IsClassAvailable reports whether the class has a free slot and the team is not full.
func (t *Team) IsClassAvailable(c GameClass) bool {
	return !t.IsFull() && t.ClassOccupancy(c) < t.tuning.ClassLimit(c)
}

// Assign seats the player on the class, or moves them to it if they are
// already in the team. Every check runs before the team is touched.
func (t *Team) Assign(p PlayerInfo, c GameClass) error {
	if !c.Valid() {
		return fmt.Errorf("%w: game class %d", ErrInvalidDomainValue, int(c))
	}
	if !p.CanPlay(c) {
		return fmt.Errorf("%w: %s for %s", ErrNotPlayable, c, p.nickname)
	}

	i := t.indexOf(p)
	if i >= 0 && t.assignments[i].Class == c {
		return nil
	}
	if i < 0 && t.IsFull() {
		return fmt.Errorf("%w: team %d has %d players", ErrTeamFull, t.id, len(t.assignments))
	}
	if t.ClassOccupancy(c) >= t.tuning.ClassLimit(c) {
		return fmt.Errorf("%w: %s in team %d", ErrClassFull, c, t.id)
	}

	if i >= 0 {
		t.assignments[i].Class = c
		return nil
	}
	t.assignments = append(t.assignments, Assignment{Player: p, Class: c})
	return nil
}

// Remove takes the player out of the team.
func (t *Team) Remove(p PlayerInfo) error {
	i := t.indexOf(p)
	if i < 0 {
		return fmt.Errorf("%w: %s in team %d", ErrPlayerNotFound, p.nickname, t.id)
	}
	t.assignments = append(t.assignments[:i], t.assignments[i+1:]...)
	return nil
}

// Strength sums every player's strength on their assigned class.
func (t *Team) Strength() float64 {
	total := 0.0
	for _, a := range t.assignments {
		// Assign only accepts playable classes.
		s, _ := t.tuning.Strength(a.Player, a.Class)
		total += s
	}
	return total
}
