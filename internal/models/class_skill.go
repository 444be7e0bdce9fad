package models

import (
	"fmt"
	"strings"
)

// GameClass is one of the four playable roles.
type GameClass int

const (
	Soldier GameClass = iota
	Scout
	Medic
	Demoman
)

// NumGameClasses is the size of the GameClass enumeration.
const NumGameClasses = 4

// GameClasses lists every class in declaration order.
var GameClasses = [NumGameClasses]GameClass{Soldier, Scout, Medic, Demoman}

var gameClassNames = [NumGameClasses]string{"soldier", "scout", "medic", "demoman"}

func (c GameClass) Valid() bool {
	return c >= 0 && int(c) < NumGameClasses
}

func (c GameClass) String() string {
	if !c.Valid() {
		return fmt.Sprintf("GameClass(%d)", int(c))
	}
	return gameClassNames[c]
}

// ParseGameClass resolves a class name, case-insensitively.
func ParseGameClass(s string) (GameClass, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range gameClassNames {
		if n == name {
			return GameClass(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown game class %q", ErrInvalidDomainValue, s)
}

// Proficiency describes how central a class is to a player.
// The numeric value doubles as the preference rank (lower is preferred).
type Proficiency int

const (
	Main Proficiency = iota
	Additional
	Nonmain
)

const numProficiencies = 3

var proficiencyNames = [numProficiencies]string{"main", "additional", "nonmain"}

func (p Proficiency) Valid() bool {
	return p >= 0 && int(p) < numProficiencies
}

func (p Proficiency) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Proficiency(%d)", int(p))
	}
	return proficiencyNames[p]
}

// Rank orders proficiencies for class preference: main(0) < additional(1) < nonmain(2).
func (p Proficiency) Rank() int {
	return int(p)
}

func ParseProficiency(s string) (Proficiency, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range proficiencyNames {
		if n == name {
			return Proficiency(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown proficiency %q", ErrInvalidDomainValue, s)
}

// SkillTier is a player's competitive rating tier, strongest first.
type SkillTier int

const (
	Prem SkillTier = iota
	High
	Mid
	Open
)

const numSkillTiers = 4

// SkillTiers lists tiers from strongest to weakest.
var SkillTiers = [numSkillTiers]SkillTier{Prem, High, Mid, Open}

var skillTierNames = [numSkillTiers]string{"prem", "high", "mid", "open"}

func (s SkillTier) Valid() bool {
	return s >= 0 && int(s) < numSkillTiers
}

func (s SkillTier) String() string {
	if !s.Valid() {
		return fmt.Sprintf("SkillTier(%d)", int(s))
	}
	return skillTierNames[s]
}

func ParseSkillTier(s string) (SkillTier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range skillTierNames {
		if n == name {
			return SkillTier(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown skill tier %q", ErrInvalidDomainValue, s)
}

// ClassSkill describes a player's ability to play one class.
// It is a comparable value: two ClassSkills are equal when both fields match.
type ClassSkill struct {
	class       GameClass
	proficiency Proficiency
}

// NewClassSkill validates both fields before building the value.
func NewClassSkill(class GameClass, proficiency Proficiency) (ClassSkill, error) {
	if !class.Valid() {
		return ClassSkill{}, fmt.Errorf("%w: game class %d", ErrInvalidDomainValue, int(class))
	}
	if !proficiency.Valid() {
		return ClassSkill{}, fmt.Errorf("%w: proficiency %d", ErrInvalidDomainValue, int(proficiency))
	}
	return ClassSkill{class: class, proficiency: proficiency}, nil
}

// MustClassSkill is NewClassSkill for constant inputs; it panics on invalid values.
func MustClassSkill(class GameClass, proficiency Proficiency) ClassSkill {
	cs, err := NewClassSkill(class, proficiency)
	if err != nil {
		panic(err)
	}
	return cs
}

func (cs ClassSkill) GameClass() GameClass { return cs.class }

func (cs ClassSkill) Proficiency() Proficiency { return cs.proficiency }

func (cs ClassSkill) String() string {
	return strings.ToUpper(cs.class.String()) + "=" + cs.proficiency.String()
}
