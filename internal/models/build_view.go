package models

// BuildView is the presentation form of a finished TeamsBuild.
type BuildView struct {
	ID          string          `json:"id"`
	Teams       []TeamView      `json:"teams"`
	Remaining   []PlayerView    `json:"remaining"`
	Utilization UtilizationView `json:"utilization"`
	Strength    StrengthView    `json:"strength"`
	Steps       int             `json:"steps"`
	Trace       []float64       `json:"trace,omitempty"`
}

type TeamView struct {
	Number      int              `json:"number"`
	Strength    float64          `json:"strength"`
	Assignments []AssignmentView `json:"assignments"`
}

type AssignmentView struct {
	Nickname string  `json:"nickname"`
	Skill    string  `json:"skill"`
	Class    string  `json:"class"`
	Strength float64 `json:"strength"`
}

type PlayerView struct {
	Nickname string `json:"nickname"`
	Skill    string `json:"skill"`
}

type UtilizationView struct {
	FractionPlaced float64 `json:"fraction_placed"`
	RemainingCount int     `json:"remaining_count"`
}

type StrengthView struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Variance float64 `json:"variance"`
}

// NewBuildView snapshots the build. Teams are numbered from 1 in build order.
func NewBuildView(id string, b *TeamsBuild) BuildView {
	view := BuildView{
		ID:        id,
		Teams:     make([]TeamView, 0, len(b.teams)),
		Remaining: make([]PlayerView, 0, len(b.remaining)),
	}

	for i, t := range b.teams {
		tv := TeamView{
			Number:      i + 1,
			Strength:    t.Strength(),
			Assignments: make([]AssignmentView, 0, t.Len()),
		}
		for _, a := range t.assignments {
			s, _ := b.tuning.Strength(a.Player, a.Class)
			tv.Assignments = append(tv.Assignments, AssignmentView{
				Nickname: a.Player.nickname,
				Skill:    a.Player.skill.String(),
				Class:    a.Class.String(),
				Strength: s,
			})
		}
		view.Teams = append(view.Teams, tv)
	}

	for _, p := range b.remaining {
		view.Remaining = append(view.Remaining, PlayerView{Nickname: p.nickname, Skill: p.skill.String()})
	}

	view.Utilization.FractionPlaced, view.Utilization.RemainingCount = b.UtilizationInfo()
	view.Strength.Min, view.Strength.Max, view.Strength.Variance = b.StrengthInfo()
	return view
}
