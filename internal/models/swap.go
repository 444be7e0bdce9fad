package models

import (
	"fmt"
)

// SwapTransaction exchanges two players seated on the same class in two teams.
// Each player takes over the other's seat, so team sizes and class occupancy
// are kept.
type SwapTransaction struct {
	TeamFromID int
	PlayerFrom PlayerInfo
	TeamToID   int
	PlayerTo   PlayerInfo
}

func (s SwapTransaction) String() string {
	return fmt.Sprintf("swap %s (team %d) <-> %s (team %d)",
		s.PlayerFrom.nickname, s.TeamFromID, s.PlayerTo.nickname, s.TeamToID)
}

// Apply mutates the build in place. Nothing is changed when an error is returned.
func (s SwapTransaction) Apply(b *TeamsBuild) error {
	from, err := b.Team(s.TeamFromID)
	if err != nil {
		return err
	}
	to, err := b.Team(s.TeamToID)
	if err != nil {
		return err
	}

	i := from.indexOf(s.PlayerFrom)
	if i < 0 {
		return fmt.Errorf("%w: %s in team %d", ErrPlayerNotFound, s.PlayerFrom.nickname, from.id)
	}
	j := to.indexOf(s.PlayerTo)
	if j < 0 {
		return fmt.Errorf("%w: %s in team %d", ErrPlayerNotFound, s.PlayerTo.nickname, to.id)
	}

	fromClass := from.assignments[i].Class
	toClass := to.assignments[j].Class
	if fromClass != toClass {
		return fmt.Errorf("%w: %s plays %s, %s plays %s",
			ErrClassMismatch, s.PlayerFrom.nickname, fromClass, s.PlayerTo.nickname, toClass)
	}

	from.assignments[i].Player = s.PlayerTo
	to.assignments[j].Player = s.PlayerFrom
	return nil
}
