package mcp

import (
	"context"
	"time"

	"github.com/2beens/sensefit/internal/stats"
	"github.com/2beens/sensefit/internal/workout"
)

// StatsSource provides the aggregated views over the workout history.
type StatsSource interface {
	Progress(ctx context.Context) stats.Progress
	MuscleGroups(ctx context.Context) []stats.MuscleGroup
	RecoveryScore(ctx context.Context) int
	PersonalBests(ctx context.Context) []stats.PersonalBest
}

// WorkoutsRepo provides the finished workout history.
type WorkoutsRepo interface {
	GetByDateRange(ctx context.Context, from, to time.Time) []workout.Workout
}

// contextService is what the tool handlers need; kept small for tests.
type contextService interface {
	GetProgress(ctx context.Context) stats.Progress
	GetMuscleGroups(ctx context.Context) []stats.MuscleGroup
	GetRecoveryScore(ctx context.Context) int
	GetPersonalBests(ctx context.Context) []stats.PersonalBest
	ListWorkouts(ctx context.Context, from, to time.Time) []workout.Workout
}

// ContextService exposes training statistics and history to MCP clients.
type ContextService struct {
	stats    StatsSource
	workouts WorkoutsRepo
}

func NewContextService(statsSource StatsSource, workoutsRepo WorkoutsRepo) *ContextService {
	return &ContextService{
		stats:    statsSource,
		workouts: workoutsRepo,
	}
}

func (s *ContextService) GetProgress(ctx context.Context) stats.Progress {
	return s.stats.Progress(ctx)
}

func (s *ContextService) GetMuscleGroups(ctx context.Context) []stats.MuscleGroup {
	return s.stats.MuscleGroups(ctx)
}

func (s *ContextService) GetRecoveryScore(ctx context.Context) int {
	return s.stats.RecoveryScore(ctx)
}

func (s *ContextService) GetPersonalBests(ctx context.Context) []stats.PersonalBest {
	return s.stats.PersonalBests(ctx)
}

// ListWorkouts returns finished workouts whose date falls in [from, to], newest first.
func (s *ContextService) ListWorkouts(ctx context.Context, from, to time.Time) []workout.Workout {
	list := s.workouts.GetByDateRange(ctx, from, to)
	if list == nil {
		return []workout.Workout{}
	}
	return list
}
