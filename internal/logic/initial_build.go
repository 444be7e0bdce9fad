package logic

import (
	"fmt"
	"sort"

	"github.com/openmohaa/mixup/internal/models"
)

// MakeInitial seeds teams from the roster:
//
//  1. every prem player founds a team on their most preferred class;
//  2. the other players, least flexible first, join a seeded team with a free
//     slot on their most preferred class;
//  3. one new team is opened per full team's worth of players still waiting;
//  4. the waiting players, least flexible first, take the first free slot in a
//     new team, trying their classes in preference order.
//
// Players that fit nowhere stay in the remaining pool. Ties keep roster order.
// An invalid tuning is rejected with ErrInvalidDomainValue.
func MakeInitial(players []models.PlayerInfo, tuning models.Tuning) (*models.TeamsBuild, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	build := models.NewTeamsBuild(tuning, players)

	// Step 1: prem players
	for _, p := range build.Remaining() {
		if p.Skill() != models.Prem {
			continue
		}
		order := p.PreferredClassOrder()
		if len(order) == 0 {
			continue
		}
		team := build.NewTeam()
		if err := build.PopRemaining(p, team.ID(), order[0]); err != nil {
			return nil, fmt.Errorf("seed team with %s: %w", p.Nickname(), err)
		}
	}
	seeded := build.Teams()

	// Step 2: other players, single-class ones first
	for _, p := range byVariability(build.Remaining()) {
		order := p.PreferredClassOrder()
		if len(order) == 0 {
			continue
		}
		for _, t := range seeded {
			if t.IsClassAvailable(order[0]) {
				if err := build.PopRemaining(p, t.ID(), order[0]); err != nil {
					return nil, fmt.Errorf("place %s: %w", p.Nickname(), err)
				}
				break
			}
		}
	}

	// Step 3: teams for the leftover players
	newTeamsCount := len(build.Remaining()) / tuning.TeamSize()
	fresh := make([]*models.Team, 0, newTeamsCount)
	for i := 0; i < newTeamsCount; i++ {
		fresh = append(fresh, build.NewTeam())
	}

	// Step 4: fill the new teams, trying every class
	for _, p := range byVariability(build.Remaining()) {
		if err := placeAnywhere(build, fresh, p); err != nil {
			return nil, err
		}
	}

	return build, nil
}

func placeAnywhere(build *models.TeamsBuild, teams []*models.Team, p models.PlayerInfo) error {
	for _, c := range p.PreferredClassOrder() {
		for _, t := range teams {
			if !t.IsClassAvailable(c) {
				continue
			}
			if err := build.PopRemaining(p, t.ID(), c); err != nil {
				return fmt.Errorf("place %s: %w", p.Nickname(), err)
			}
			return nil
		}
	}
	return nil
}

func byVariability(players []models.PlayerInfo) []models.PlayerInfo {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Variability() < players[j].Variability()
	})
	return players
}
