package roster

import (
	"errors"
	"strings"
	"testing"

	"github.com/openmohaa/mixup/internal/models"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		rules     Rules
		wantSkill models.SkillTier
		want      map[models.GameClass]models.Proficiency
	}{
		{
			name:      "Main Only",
			line:      "high\tKos\tsoldier",
			wantSkill: models.High,
			want: map[models.GameClass]models.Proficiency{
				models.Soldier: models.Main, models.Scout: models.Nonmain,
				models.Medic: models.Nonmain, models.Demoman: models.Nonmain,
			},
		},
		{
			name:      "Additional Classes With Extra Tabs",
			line:      "MID\t\tKos\t\tScout\tsoldier, demoman",
			wantSkill: models.Mid,
			want: map[models.GameClass]models.Proficiency{
				models.Scout: models.Main, models.Soldier: models.Additional,
				models.Demoman: models.Additional, models.Medic: models.Nonmain,
			},
		},
		{
			name:      "Medic Only",
			line:      "open\tHealer\tmedic only",
			wantSkill: models.Open,
			want:      map[models.GameClass]models.Proficiency{models.Medic: models.Main},
		},
		{
			name:      "Medic Only Underscore",
			line:      "prem\tHealer\tMedic_Only\tscout",
			wantSkill: models.Prem,
			want:      map[models.GameClass]models.Proficiency{models.Medic: models.Main},
		},
		{
			name:      "Open Skips Nonmain",
			line:      "open\tNew\tdemoman\tscout",
			rules:     Rules{OpenSkipsNonmain: true},
			wantSkill: models.Open,
			want: map[models.GameClass]models.Proficiency{
				models.Demoman: models.Main, models.Scout: models.Additional,
			},
		},
		{
			name:      "Open Skips Nonmain Keeps Other Tiers",
			line:      "mid\tOld\tdemoman",
			rules:     Rules{OpenSkipsNonmain: true},
			wantSkill: models.Mid,
			want: map[models.GameClass]models.Proficiency{
				models.Demoman: models.Main, models.Scout: models.Nonmain,
				models.Soldier: models.Nonmain, models.Medic: models.Nonmain,
			},
		},
		{
			name:      "Main Repeated As Additional",
			line:      "mid\tX\tscout\tscout,medic",
			wantSkill: models.Mid,
			want: map[models.GameClass]models.Proficiency{
				models.Scout: models.Main, models.Medic: models.Additional,
				models.Soldier: models.Nonmain, models.Demoman: models.Nonmain,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.rules.ParseLine(tt.line)
			if err != nil {
				t.Fatalf("ParseLine error = %v", err)
			}
			if p.Skill() != tt.wantSkill {
				t.Errorf("Skill() = %s, want %s", p.Skill(), tt.wantSkill)
			}
			if got := len(p.Classes()); got != len(tt.want) {
				t.Errorf("len(Classes()) = %d, want %d", got, len(tt.want))
			}
			for c, want := range tt.want {
				got, err := p.ClassProficiency(c)
				if err != nil || got != want {
					t.Errorf("ClassProficiency(%s) = %v, %v; want %s", c, got, err, want)
				}
			}
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"Too Few Tokens", "high\tKos"},
		{"Unknown Skill", "invite\tKos\tsoldier"},
		{"Unknown Main Class", "high\tKos\tengineer"},
		{"Unknown Additional Class", "high\tKos\tsoldier\tspy"},
		{"Spaces Are Not Separators", "high Kos soldier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DefaultRules().ParseLine(tt.line); !errors.Is(err, models.ErrInvalidDomainValue) {
				t.Errorf("error = %v, want ErrInvalidDomainValue", err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	input := "// comment\r\nprem\tA\tscout\r\n\r\nopen\tB\tmedic only\n   \nmid\tC\tdemoman\tsoldier\n"
	players, err := DefaultRules().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}

	var names []string
	for _, p := range players {
		names = append(names, p.Nickname())
	}
	if got := strings.Join(names, ","); got != "A,B,C" {
		t.Errorf("players = %s, want A,B,C", got)
	}
}

func TestParse_ReportsLine(t *testing.T) {
	input := "prem\tA\tscout\n// fine\nmid\tB\tpyro\n"
	_, err := DefaultRules().Parse(strings.NewReader(input))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error = %v, want it to name line 3", err)
	}
}

func TestParseFile(t *testing.T) {
	players, err := DefaultRules().ParseFile("testdata/roster.txt")
	if err != nil {
		t.Fatalf("ParseFile error = %v", err)
	}
	if len(players) != 13 {
		t.Errorf("len(players) = %d, want 13", len(players))
	}

	prems := 0
	for _, p := range players {
		if p.Skill() == models.Prem {
			prems++
		}
	}
	if prems != 2 {
		t.Errorf("prem players = %d, want 2", prems)
	}

	if _, err := DefaultRules().ParseFile("testdata/missing.txt"); err == nil {
		t.Error("ParseFile on a missing file returned no error")
	}
}
