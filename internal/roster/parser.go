// Package roster reads player rosters.
//
// A roster has one player per line, with TAB-separated tokens:
//
//	skill	nickname	main_class	[additional,classes]
//
// Empty tokens are ignored, so several TABs may separate two tokens. Blank
// lines and lines starting with "//" are skipped. Skill and class names are
// case-insensitive.
package roster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/openmohaa/mixup/internal/models"
)

// Rules decide which class entries a roster line produces.
type Rules struct {
	// OpenSkipsNonmain leaves open-tier players without nonmain entries, so
	// they are only ever seated on classes they listed.
	OpenSkipsNonmain bool
}

func DefaultRules() Rules {
	return Rules{}
}

func isMedicOnly(class string) bool {
	return class == "medic only" || class == "medic_only"
}

// Infer builds a player from the fields of a roster entry. The main class
// becomes a main entry, listed additional classes additional entries and every
// other class a nonmain entry. A "medic only" main class yields a single
// medic entry.
func (r Rules) Infer(nickname, skill, main string, additional []string) (models.PlayerInfo, error) {
	tier, err := models.ParseSkillTier(skill)
	if err != nil {
		return models.PlayerInfo{}, err
	}

	main = strings.ToLower(strings.TrimSpace(main))
	if isMedicOnly(main) {
		return models.NewPlayerInfo(nickname, tier, models.MustClassSkill(models.Medic, models.Main))
	}

	mainClass, err := models.ParseGameClass(main)
	if err != nil {
		return models.PlayerInfo{}, err
	}

	var taken [models.NumGameClasses]bool
	taken[mainClass] = true
	classes := []models.ClassSkill{models.MustClassSkill(mainClass, models.Main)}

	for _, name := range additional {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c, err := models.ParseGameClass(name)
		if err != nil {
			return models.PlayerInfo{}, err
		}
		if taken[c] {
			continue
		}
		taken[c] = true
		classes = append(classes, models.MustClassSkill(c, models.Additional))
	}

	if !(r.OpenSkipsNonmain && tier == models.Open) {
		for _, c := range models.GameClasses {
			if !taken[c] {
				classes = append(classes, models.MustClassSkill(c, models.Nonmain))
			}
		}
	}

	return models.NewPlayerInfo(nickname, tier, classes...)
}

// ParseLine parses one roster line.
func (r Rules) ParseLine(line string) (models.PlayerInfo, error) {
	var tokens []string
	for _, tok := range strings.Split(line, "\t") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) < 3 {
		return models.PlayerInfo{}, fmt.Errorf("%w: want skill, nickname and main class, got %d tokens",
			models.ErrInvalidDomainValue, len(tokens))
	}

	var additional []string
	if len(tokens) > 3 {
		additional = strings.Split(tokens[3], ",")
	}
	return r.Infer(tokens[1], tokens[0], tokens[2], additional)
}

// Parse reads a whole roster. Errors carry the 1-based line number.
func (r Rules) Parse(in io.Reader) ([]models.PlayerInfo, error) {
	var players []models.PlayerInfo

	scanner := bufio.NewScanner(in)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "//") {
			continue
		}

		p, err := r.ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		players = append(players, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return players, nil
}

// ParseFile reads the roster stored at path.
func (r Rules) ParseFile(path string) ([]models.PlayerInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	players, err := r.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return players, nil
}
