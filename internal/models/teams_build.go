package models

import (
	"fmt"
	"math"
)

// TeamsBuild partitions a player pool into teams and a remaining pool.
// Every player is either in exactly one team or in the remaining pool.
type TeamsBuild struct {
	tuning    Tuning
	teams     []*Team
	remaining []PlayerInfo
	nextID    int
}

// NewTeamsBuild creates a build with no teams and every player remaining.
// Identical player records collapse into one.
func NewTeamsBuild(tuning Tuning, players []PlayerInfo) *TeamsBuild {
	seen := make(map[PlayerInfo]struct{}, len(players))
	remaining := make([]PlayerInfo, 0, len(players))
	for _, p := range players {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		remaining = append(remaining, p)
	}
	return &TeamsBuild{tuning: tuning, remaining: remaining}
}

func (b *TeamsBuild) Tuning() Tuning { return b.tuning }

// Copy returns a deep copy; mutating it never affects b.
func (b *TeamsBuild) Copy() *TeamsBuild {
	teams := make([]*Team, len(b.teams))
	for i, t := range b.teams {
		teams[i] = t.Copy()
	}
	remaining := make([]PlayerInfo, len(b.remaining))
	copy(remaining, b.remaining)
	return &TeamsBuild{
		tuning:    b.tuning,
		teams:     teams,
		remaining: remaining,
		nextID:    b.nextID,
	}
}

// Teams returns the teams in insertion order. The teams themselves are shared.
func (b *TeamsBuild) Teams() []*Team {
	out := make([]*Team, len(b.teams))
	copy(out, b.teams)
	return out
}

// Team looks a team up by id.
func (b *TeamsBuild) Team(id int) (*Team, error) {
	for _, t := range b.teams {
		if t.id == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrTeamNotFound, id)
}

// NewTeam appends an empty team with a fresh id.
func (b *TeamsBuild) NewTeam() *Team {
	t := NewTeam(b.nextID, b.tuning)
	b.nextID++
	b.teams = append(b.teams, t)
	return t
}

// AddTeam appends an existing empty team. Its id must be unused in the build.
func (b *TeamsBuild) AddTeam(t *Team) error {
	if _, err := b.Team(t.id); err == nil {
		return fmt.Errorf("%w: duplicate team id %d", ErrInvalidDomainValue, t.id)
	}
	if t.Len() > 0 {
		return fmt.Errorf("%w: team %d is not empty", ErrInvalidDomainValue, t.id)
	}
	b.teams = append(b.teams, t)
	if t.id >= b.nextID {
		b.nextID = t.id + 1
	}
	return nil
}

// Remaining returns the unplaced players in pool order.
func (b *TeamsBuild) Remaining() []PlayerInfo {
	out := make([]PlayerInfo, len(b.remaining))
	copy(out, b.remaining)
	return out
}

func (b *TeamsBuild) remainingIndex(p PlayerInfo) int {
	for i, r := range b.remaining {
		if r == p {
			return i
		}
	}
	return -1
}

// PopRemaining moves a player from the remaining pool into the team with the given id.
func (b *TeamsBuild) PopRemaining(p PlayerInfo, teamID int, c GameClass) error {
	i := b.remainingIndex(p)
	if i < 0 {
		return fmt.Errorf("%w: %s is not remaining", ErrPlayerNotFound, p.nickname)
	}
	t, err := b.Team(teamID)
	if err != nil {
		return err
	}
	if err := t.Assign(p, c); err != nil {
		return err
	}
	b.remaining = append(b.remaining[:i], b.remaining[i+1:]...)
	return nil
}

// PlacedCount is the number of players seated in teams.
func (b *TeamsBuild) PlacedCount() int {
	n := 0
	for _, t := range b.teams {
		n += t.Len()
	}
	return n
}

// UtilizationInfo returns the fraction of players seated and the size of the
// remaining pool. An empty build reports a fraction of 0.
func (b *TeamsBuild) UtilizationInfo() (fractionPlaced float64, remainingCount int) {
	placed := b.PlacedCount()
	remainingCount = len(b.remaining)
	total := placed + remainingCount
	if total == 0 {
		return 0, 0
	}
	return float64(placed) / float64(total), remainingCount
}

// Strengths returns every team's strength in team order.
func (b *TeamsBuild) Strengths() []float64 {
	out := make([]float64, len(b.teams))
	for i, t := range b.teams {
		out[i] = t.Strength()
	}
	return out
}

// StrengthInfo returns the minimum, maximum and sample variance of team strengths.
func (b *TeamsBuild) StrengthInfo() (min, max, variance float64) {
	vals := b.Strengths()
	if len(vals) == 0 {
		return 0, 0, 0
	}
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return min, max, Variance(vals)
}

// Variance is the fitness of the build: the sample variance of team strengths.
func (b *TeamsBuild) Variance() float64 {
	return Variance(b.Strengths())
}

// Variance returns the sample variance (n-1 denominator) of vals, or 0 with
// fewer than two values.
func Variance(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))

	sum := 0.0
	for _, v := range vals {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(vals)-1)
}
