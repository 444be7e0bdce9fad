package handlers

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/openmohaa/mixup/internal/logic"
	"github.com/openmohaa/mixup/internal/models"
)

// MockMixupService
type MockMixupService struct {
	MakeTeamsFunc   func(ctx context.Context, players []models.PlayerInfo) (*logic.Result, error)
	CreateBuildFunc func(ctx context.Context, players []models.PlayerInfo) (*models.BuildView, error)

	Received []models.PlayerInfo
}

func (m *MockMixupService) MakeTeams(ctx context.Context, players []models.PlayerInfo) (*logic.Result, error) {
	if m.MakeTeamsFunc != nil {
		return m.MakeTeamsFunc(ctx, players)
	}
	return &logic.Result{Build: models.NewTeamsBuild(models.DefaultTuning(), players)}, nil
}

func (m *MockMixupService) CreateBuild(ctx context.Context, players []models.PlayerInfo) (*models.BuildView, error) {
	m.Received = players
	if m.CreateBuildFunc != nil {
		return m.CreateBuildFunc(ctx, players)
	}
	return &models.BuildView{
		ID: "mock-build",
		Teams: []models.TeamView{{
			Number:      1,
			Strength:    16,
			Assignments: []models.AssignmentView{{Nickname: "Ace", Skill: "prem", Class: "scout", Strength: 16}},
		}},
		Utilization: models.UtilizationView{FractionPlaced: 1},
		Strength:    models.StrengthView{Min: 16, Max: 16},
	}, nil
}

// MockPinger
type MockPinger struct {
	Err error
}

func (m *MockPinger) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if m.Err != nil {
		cmd.SetErr(m.Err)
		return cmd
	}
	cmd.SetVal("PONG")
	return cmd
}
