package models

import (
	"fmt"
)

// Tuning holds the numeric constants of the domain model. A Tuning is passed
// by value and never mutated, so builds created with it can share it freely.
type Tuning struct {
	// SkillWeights is indexed by SkillTier.
	SkillWeights [numSkillTiers]float64
	// TypeCoefficients is indexed by Proficiency.
	TypeCoefficients [numProficiencies]float64
	// ClassLimits is indexed by GameClass.
	ClassLimits [NumGameClasses]int
}

// DefaultTuning returns the stock values.
//
// A tier-N player on an additional class is worth about a tier-(N-1) player on
// their main class, and a tier-N nonmain about a tier-(N-1) additional.
func DefaultTuning() Tuning {
	return Tuning{
		SkillWeights:     [numSkillTiers]float64{16, 8, 4, 2},
		TypeCoefficients: [numProficiencies]float64{1.0, 0.75, 0.4},
		ClassLimits:      [NumGameClasses]int{2, 2, 1, 1},
	}
}

// Validate rejects tunings that would break the engine: negative weights or
// class limits, or a team without any slot.
func (t Tuning) Validate() error {
	for i, w := range t.SkillWeights {
		if w < 0 {
			return fmt.Errorf("%w: negative weight %v for %s", ErrInvalidDomainValue, w, SkillTier(i))
		}
	}
	for i, c := range t.TypeCoefficients {
		if c < 0 {
			return fmt.Errorf("%w: negative coefficient %v for %s", ErrInvalidDomainValue, c, Proficiency(i))
		}
	}
	for i, l := range t.ClassLimits {
		if l < 0 {
			return fmt.Errorf("%w: negative limit %d for %s", ErrInvalidDomainValue, l, GameClass(i))
		}
	}
	if t.TeamSize() == 0 {
		return fmt.Errorf("%w: class limits leave no slot in a team", ErrInvalidDomainValue)
	}
	return nil
}

// TeamSize is the maximum number of players in a team, the sum of all class limits.
func (t Tuning) TeamSize() int {
	total := 0
	for _, l := range t.ClassLimits {
		total += l
	}
	return total
}

// ClassLimit returns how many players may occupy the class in one team.
func (t Tuning) ClassLimit(c GameClass) int {
	if !c.Valid() {
		return 0
	}
	return t.ClassLimits[c]
}

// Strength is the weight of the player's tier times the coefficient of their
// proficiency on the class.
func (t Tuning) Strength(p PlayerInfo, c GameClass) (float64, error) {
	prof, err := p.ClassProficiency(c)
	if err != nil {
		return 0, err
	}
	return t.SkillWeights[p.skill] * t.TypeCoefficients[prof], nil
}
