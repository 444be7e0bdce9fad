// Package presenter renders finished builds for people.
package presenter

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openmohaa/mixup/internal/models"
)

// Text writes builds in the plain roster report format. Styling is applied
// only when the writer is a color-capable terminal.
type Text struct {
	w       io.Writer
	header  lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

func NewText(w io.Writer) *Text {
	r := lipgloss.NewRenderer(w)
	return &Text{
		w:       w,
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		muted:   r.NewStyle().Faint(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Render writes every team, then utilization and strength statistics.
func (p *Text) Render(view *models.BuildView) error {
	var sb strings.Builder

	for _, team := range view.Teams {
		sb.WriteString(p.header.Render(fmt.Sprintf("Team #%d", team.Number)))
		sb.WriteString("\n")
		for _, a := range byTier(team.Assignments) {
			fmt.Fprintf(&sb, "%s[%s]: %s\n", a.Nickname, a.Skill, a.Class)
		}
		fmt.Fprintf(&sb, "Strength: %s\n\n", formatStrength(team.Strength))
	}

	used := int(view.Utilization.FractionPlaced * 100)
	fmt.Fprintf(&sb, "Used %d %% of players (%d are waiting)\n", used, view.Utilization.RemainingCount)

	waiting := make([]string, 0, len(view.Remaining))
	for _, r := range view.Remaining {
		waiting = append(waiting, r.Nickname)
	}
	line := "Waiting list: " + strings.Join(waiting, ", ")
	if len(waiting) > 0 {
		line = p.warning.Render(line)
	}
	sb.WriteString(line + "\n")

	sb.WriteString(p.muted.Render(fmt.Sprintf("Strength: min=%.2f, max=%.2f, variance=%.5g",
		view.Strength.Min, view.Strength.Max, view.Strength.Variance)))
	sb.WriteString("\n")

	_, err := io.WriteString(p.w, sb.String())
	return err
}

// byTier orders seats from the strongest tier down, keeping seat order within a tier.
func byTier(seats []models.AssignmentView) []models.AssignmentView {
	out := make([]models.AssignmentView, len(seats))
	copy(out, seats)
	rank := func(skill string) int {
		tier, err := models.ParseSkillTier(skill)
		if err != nil {
			return len(models.SkillTiers)
		}
		return int(tier)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i].Skill) < rank(out[j].Skill)
	})
	return out
}

func formatStrength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
