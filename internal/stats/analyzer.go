package stats

import (
	"context"
	"time"

	"github.com/2beens/sensefit/internal/telemetry/tracing"
	"github.com/2beens/sensefit/internal/workout"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=stats_test

type historySource interface {
	GetAll(ctx context.Context) []workout.Workout
}

// Analyzer computes the statistics views over the stored workout history.
type Analyzer struct {
	history historySource

	// ability to inject clock (for unit testing)
	NowFunc func() time.Time
}

func NewAnalyzer(history historySource) *Analyzer {
	return &Analyzer{
		history: history,
		NowFunc: time.Now,
	}
}

func (a *Analyzer) Progress(ctx context.Context) Progress {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.progress")
	defer span.End()

	history := a.history.GetAll(ctx)
	span.SetAttributes(attribute.Int("history.size", len(history)))
	return ComputeProgress(history, a.NowFunc())
}

func (a *Analyzer) MuscleGroups(ctx context.Context) []MuscleGroup {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.muscle-groups")
	defer span.End()

	history := a.history.GetAll(ctx)
	span.SetAttributes(attribute.Int("history.size", len(history)))
	return ComputeMuscleGroups(history)
}

func (a *Analyzer) RecoveryScore(ctx context.Context) int {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.recovery-score")
	defer span.End()

	return WeeklyRecoveryScore(a.history.GetAll(ctx), a.NowFunc())
}

func (a *Analyzer) PersonalBests(ctx context.Context) []PersonalBest {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.personal-bests")
	defer span.End()

	return PersonalBests(a.history.GetAll(ctx))
}

type LatestIntensity struct {
	WorkoutID     string    `json:"workoutId"`
	Volume        float64   `json:"volume"`
	AverageVolume float64   `json:"averageVolume"`
	Intensity     Intensity `json:"intensity"`
}

// LatestIntensity rates the most recent completed workout against the average
// completed volume of all the earlier ones. False if there is no completed workout.
func (a *Analyzer) LatestIntensity(ctx context.Context) (LatestIntensity, bool) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.latest-intensity")
	defer span.End()

	// history is kept most recent first
	done := completed(a.history.GetAll(ctx))
	if len(done) == 0 {
		return LatestIntensity{}, false
	}

	latest := done[0]
	var earlierTotal float64
	for _, w := range done[1:] {
		earlierTotal += workout.CompletedVolume(w.Exercises)
	}
	var average float64
	if len(done) > 1 {
		average = earlierTotal / float64(len(done)-1)
	}

	volume := workout.CompletedVolume(latest.Exercises)
	return LatestIntensity{
		WorkoutID:     latest.ID,
		Volume:        volume,
		AverageVolume: average,
		Intensity:     WorkoutIntensity(volume, average),
	}, true
}
