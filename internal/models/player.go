package models

import (
	"fmt"
	"sort"
	"strings"
)

// PlayerInfo is a rated player and the classes they can fill.
//
// PlayerInfo is an immutable, comparable value. Class entries are held by
// class, so two records with the same nickname, tier and set of class entries
// are equal whatever order the entries were given in, and PlayerInfo can be
// used directly as a map key or set member.
type PlayerInfo struct {
	nickname string
	skill    SkillTier
	classes  [NumGameClasses]ClassSkill
	playable [NumGameClasses]bool
}

// NewPlayerInfo validates the tier and every class entry.
func NewPlayerInfo(nickname string, skill SkillTier, classes ...ClassSkill) (PlayerInfo, error) {
	if !skill.Valid() {
		return PlayerInfo{}, fmt.Errorf("%w: skill tier %d", ErrInvalidDomainValue, int(skill))
	}
	if len(classes) == 0 || len(classes) > NumGameClasses {
		return PlayerInfo{}, fmt.Errorf("%w: %d class entries", ErrInvalidDomainValue, len(classes))
	}

	p := PlayerInfo{nickname: nickname, skill: skill}
	for _, cs := range classes {
		if !cs.class.Valid() || !cs.proficiency.Valid() {
			return PlayerInfo{}, fmt.Errorf("%w: class entry %v", ErrInvalidDomainValue, cs)
		}
		if p.playable[cs.class] {
			return PlayerInfo{}, fmt.Errorf("%w: duplicate entry for %s", ErrInvalidDomainValue, cs.class)
		}
		p.playable[cs.class] = true
		p.classes[cs.class] = cs
	}
	return p, nil
}

func (p PlayerInfo) Nickname() string { return p.nickname }

func (p PlayerInfo) Skill() SkillTier { return p.skill }

// Classes returns the player's class entries in game class order.
func (p PlayerInfo) Classes() []ClassSkill {
	out := make([]ClassSkill, 0, NumGameClasses)
	for _, c := range GameClasses {
		if p.playable[c] {
			out = append(out, p.classes[c])
		}
	}
	return out
}

func (p PlayerInfo) String() string {
	var parts []string
	for _, cs := range p.Classes() {
		parts = append(parts, cs.String())
	}
	return fmt.Sprintf("<PlayerInfo %s [%s] %s>", p.nickname, strings.ToUpper(p.skill.String()), strings.Join(parts, ", "))
}

// ClassProficiency returns the player's proficiency on the class, or
// ErrNotPlayable when the player has no entry for it.
func (p PlayerInfo) ClassProficiency(c GameClass) (Proficiency, error) {
	if c.Valid() && p.playable[c] {
		return p.classes[c].proficiency, nil
	}
	return 0, fmt.Errorf("%w: %s for %s", ErrNotPlayable, c, p.nickname)
}

// CanPlay reports whether the player has an entry for the class.
func (p PlayerInfo) CanPlay(c GameClass) bool {
	_, err := p.ClassProficiency(c)
	return err == nil
}

// Variability is the number of classes the player can play easily (not nonmain).
func (p PlayerInfo) Variability() int {
	n := 0
	for _, cs := range p.Classes() {
		if cs.proficiency != Nonmain {
			n++
		}
	}
	return n
}

// Strength evaluates the player on a class with DefaultTuning.
func (p PlayerInfo) Strength(c GameClass) (float64, error) {
	return DefaultTuning().Strength(p, c)
}

// PreferredClassOrder returns the player's classes, most preferred first.
// Classes with the same proficiency keep game class order.
func (p PlayerInfo) PreferredClassOrder() []GameClass {
	entries := p.Classes()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].proficiency.Rank() < entries[j].proficiency.Rank()
	})

	out := make([]GameClass, len(entries))
	for i, cs := range entries {
		out[i] = cs.class
	}
	return out
}
