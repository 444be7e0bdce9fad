package models

import "errors"

// Domain errors. All of them signal a broken invariant rather than a transient
// condition, so callers should not retry.
var (
	// ErrInvalidDomainValue is returned when a class, proficiency or tier is outside its enumeration.
	ErrInvalidDomainValue = errors.New("invalid domain value")
	// ErrNotPlayable is returned when a player has no entry for the requested class.
	ErrNotPlayable = errors.New("player can not play such class")
	// ErrTeamFull is returned when a team already holds its maximum number of players.
	ErrTeamFull = errors.New("team is full")
	// ErrClassFull is returned when every slot of a class is taken in a team.
	ErrClassFull = errors.New("class slots are taken")
	// ErrTeamNotFound is returned when a build has no team with the given id.
	ErrTeamNotFound = errors.New("team not found")
	// ErrClassMismatch is returned when a swap pairs players seated on different classes.
	ErrClassMismatch = errors.New("swapped players play different classes")
	// ErrPlayerNotFound is returned when a player is missing from a team or the remaining pool.
	ErrPlayerNotFound = errors.New("player not found")
)
