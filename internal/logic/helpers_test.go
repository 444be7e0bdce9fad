package logic

import (
	"math/rand"
	"testing"

	"github.com/openmohaa/mixup/internal/models"
)

// newPlayer builds a player with a main class, optional additional classes and
// every other class as nonmain.
func newPlayer(t testing.TB, nickname string, skill models.SkillTier, main models.GameClass, additional ...models.GameClass) models.PlayerInfo {
	t.Helper()
	classes := []models.ClassSkill{models.MustClassSkill(main, models.Main)}
	for _, c := range additional {
		if c != main {
			classes = append(classes, models.MustClassSkill(c, models.Additional))
		}
	}
	for _, c := range models.GameClasses {
		if c == main || contains(additional, c) {
			continue
		}
		classes = append(classes, models.MustClassSkill(c, models.Nonmain))
	}
	p, err := models.NewPlayerInfo(nickname, skill, classes...)
	if err != nil {
		t.Fatalf("NewPlayerInfo(%q) error = %v", nickname, err)
	}
	return p
}

// singleClass builds a player who can play exactly one class.
func singleClass(t testing.TB, nickname string, skill models.SkillTier, c models.GameClass) models.PlayerInfo {
	t.Helper()
	p, err := models.NewPlayerInfo(nickname, skill, models.MustClassSkill(c, models.Main))
	if err != nil {
		t.Fatalf("NewPlayerInfo(%q) error = %v", nickname, err)
	}
	return p
}

func contains(classes []models.GameClass, c models.GameClass) bool {
	for _, x := range classes {
		if x == c {
			return true
		}
	}
	return false
}

// randomRoster returns a reproducible roster of n players.
func randomRoster(t testing.TB, seed int64, n int) []models.PlayerInfo {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	players := make([]models.PlayerInfo, 0, n)
	for i := 0; i < n; i++ {
		skill := models.SkillTiers[rng.Intn(len(models.SkillTiers))]
		nick := "p" + string(rune('A'+i%26)) + string(rune('a'+i/26))
		if rng.Intn(10) == 0 {
			players = append(players, singleClass(t, nick, skill, models.Medic))
			continue
		}
		main := models.GameClasses[rng.Intn(models.NumGameClasses)]
		var additional []models.GameClass
		for _, c := range models.GameClasses {
			if c != main && rng.Intn(3) == 0 {
				additional = append(additional, c)
			}
		}
		players = append(players, newPlayer(t, nick, skill, main, additional...))
	}
	return players
}

// checkInvariants verifies conservation and capacity.
func checkInvariants(t *testing.T, players []models.PlayerInfo, build *models.TeamsBuild) {
	t.Helper()
	tuning := build.Tuning()

	seen := make(map[models.PlayerInfo]int)
	for _, team := range build.Teams() {
		if team.Len() > tuning.TeamSize() {
			t.Errorf("team %d has %d players", team.ID(), team.Len())
		}
		for _, c := range models.GameClasses {
			if occ := team.ClassOccupancy(c); occ > tuning.ClassLimit(c) {
				t.Errorf("team %d has %d %s", team.ID(), occ, c)
			}
		}
		for _, a := range team.Assignments() {
			seen[a.Player]++
			if !a.Player.CanPlay(a.Class) {
				t.Errorf("%s plays unplayable %s", a.Player.Nickname(), a.Class)
			}
		}
	}
	for _, p := range build.Remaining() {
		seen[p]++
	}

	for _, p := range players {
		if seen[p] != 1 {
			t.Errorf("player %s appears %d times", p.Nickname(), seen[p])
		}
	}
	if len(seen) != len(players) {
		t.Errorf("build holds %d distinct players, roster has %d", len(seen), len(players))
	}
}
