package stats_test

import (
	"testing"
	"time"

	"github.com/2beens/sensefit/internal/stats"
	"github.com/2beens/sensefit/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)

func completedSet(weight float64, reps int) workout.Set {
	return workout.Set{Weight: weight, Reps: reps, Completed: true, Type: workout.SetTypeNormal}
}

func pendingSet(weight float64, reps int) workout.Set {
	return workout.Set{Weight: weight, Reps: reps, Type: workout.SetTypeNormal}
}

// finished builds a completed workout that ended daysAgo days before testNow.
func finished(id string, daysAgo int, minutes int, exercises ...workout.Exercise) workout.Workout {
	endTime := testNow.AddDate(0, 0, -daysAgo)
	startTime := endTime.Add(-time.Duration(minutes) * time.Minute)
	return workout.Workout{
		ID:        id,
		Date:      startTime,
		StartTime: startTime,
		EndTime:   &endTime,
		Exercises: exercises,
		Status:    workout.StatusCompleted,
	}
}

func exercise(name, group string, sets ...workout.Set) workout.Exercise {
	return workout.Exercise{Name: name, MuscleGroup: group, Sets: sets}
}

func setsOf(n int, weight float64, reps int) []workout.Set {
	sets := make([]workout.Set, n)
	for i := range sets {
		sets[i] = completedSet(weight, reps)
	}
	return sets
}

func TestComputeProgress_Empty(t *testing.T) {
	progress := stats.ComputeProgress(nil, testNow)
	assert.Equal(t, stats.Progress{WeeklyTarget: 5}, progress)
}

func TestComputeProgress_CompletedSetsVolume(t *testing.T) {
	w := finished("w1", 1, 60,
		exercise("Bench Press", "Chest", completedSet(100, 10), pendingSet(50, 5)),
	)

	progress := stats.ComputeProgress([]workout.Workout{w}, testNow)
	assert.Equal(t, 1, progress.TotalWorkouts)
	assert.Equal(t, 1000.0, progress.TotalVolume)
	assert.Equal(t, 60, progress.AvgDuration)
	assert.Equal(t, 1, progress.PersonalRecords)
	assert.Equal(t, 1, progress.WeeklyWorkouts)
	assert.Equal(t, 1000.0, progress.WeeklyVolume)
	assert.Equal(t, 5, progress.WeeklyTarget)

	// the stored finish volume counts every set
	assert.Equal(t, 1250.0, workout.TotalVolume(w.Exercises))
}

func TestComputeProgress(t *testing.T) {
	inProgress := finished("active", 0, 10, exercise("Squat", "Legs", completedSet(200, 5)))
	inProgress.Status = workout.StatusInProgress
	inProgress.EndTime = nil
	cancelled := finished("cancelled", 0, 10, exercise("Squat", "Legs", completedSet(200, 5)))
	cancelled.Status = workout.StatusCancelled

	noEndTime := finished("no-end", 3, 0, exercise("Plank", "Core", completedSet(0, 1)))
	noEndTime.EndTime = nil

	history := []workout.Workout{
		inProgress,
		cancelled,
		finished("w3", 0, 45,
			exercise("Bench Press", "Chest", completedSet(80, 10), completedSet(85, 8)),
			exercise("bench press", "Chest", completedSet(40, 10)),
		),
		finished("w2", 6, 30,
			exercise("Deadlift", "Back", completedSet(140, 5)),
			exercise("Pull-ups", "Back", completedSet(0, 10)),
		),
		noEndTime,
		finished("w1", 8, 91,
			exercise("Bench Press", "Chest", completedSet(70, 10)),
			exercise("Row", "Back", pendingSet(60, 10)),
		),
	}

	progress := stats.ComputeProgress(history, testNow)
	assert.Equal(t, 4, progress.TotalWorkouts)
	assert.Equal(t, 800+680+400+700.0+700, progress.TotalVolume)
	// mean of 45, 30, 91 = 55.33, the workout without an end is left out
	assert.Equal(t, 55, progress.AvgDuration)
	// names are case sensitive, bodyweight and pending sets are not records
	assert.Equal(t, 3, progress.PersonalRecords)
	assert.Equal(t, 2, progress.WeeklyWorkouts)
	assert.Equal(t, 800+680+400+700.0, progress.WeeklyVolume)
}

func TestComputeProgress_WeekBoundary(t *testing.T) {
	exactlyWeekAgo := finished("edge", 7, 30, exercise("Curl", "Arms", completedSet(10, 10)))
	justOlder := finished("old", 7, 30, exercise("Curl", "Arms", completedSet(10, 10)))
	olderEnd := justOlder.EndTime.Add(-time.Second)
	justOlder.EndTime = &olderEnd

	progress := stats.ComputeProgress([]workout.Workout{exactlyWeekAgo, justOlder}, testNow)
	assert.Equal(t, 1, progress.WeeklyWorkouts)
	assert.Equal(t, 100.0, progress.WeeklyVolume)
}

func TestComputeMuscleGroups(t *testing.T) {
	history := []workout.Workout{
		finished("w1", 1, 60,
			exercise("Deadlift", "Back", setsOf(6, 100, 5)...),
			exercise("Squat", "Legs", setsOf(5, 100, 5)...),
		),
		finished("w2", 2, 60,
			exercise("Row", "Back", setsOf(4, 50, 10)...),
		),
	}

	groups := stats.ComputeMuscleGroups(history)
	require.Len(t, groups, 2)
	assert.Equal(t, stats.MuscleGroup{Name: "Back", Sets: 10, Volume: 5000, Percentage: 100}, groups[0])
	assert.Equal(t, stats.MuscleGroup{Name: "Legs", Sets: 5, Volume: 2500, Percentage: 50}, groups[1])
}

func TestComputeMuscleGroups_OtherAndTies(t *testing.T) {
	active := finished("active", 0, 10, exercise("Squat", "Legs", setsOf(20, 100, 5)...))
	active.Status = workout.StatusInProgress

	history := []workout.Workout{
		active,
		finished("w1", 1, 60,
			exercise("Mystery", "", completedSet(10, 10)),
			exercise("Stretch", "  ", pendingSet(0, 0)),
			exercise("Curl", "Arms", completedSet(20, 10), pendingSet(20, 10)),
			exercise("Crunch", "Core", completedSet(0, 20), completedSet(0, 20)),
			exercise("Lunge", "Legs", pendingSet(20, 10)),
		),
	}

	groups := stats.ComputeMuscleGroups(history)
	require.Len(t, groups, 4)

	assert.Equal(t, "Core", groups[0].Name)
	assert.Equal(t, 2, groups[0].Sets)
	assert.Equal(t, 100, groups[0].Percentage)

	// ties keep first-seen order
	assert.Equal(t, "Other", groups[1].Name)
	assert.Equal(t, 1, groups[1].Sets)
	assert.Equal(t, 100.0, groups[1].Volume)
	assert.Equal(t, 50, groups[1].Percentage)
	assert.Equal(t, "Arms", groups[2].Name)
	assert.Equal(t, 1, groups[2].Sets)

	// a group with no completed sets is still listed
	assert.Equal(t, stats.MuscleGroup{Name: "Legs"}, groups[3])
}

func TestComputeMuscleGroups_Empty(t *testing.T) {
	groups := stats.ComputeMuscleGroups(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)

	onlyPending := []workout.Workout{
		finished("w1", 1, 60, exercise("Squat", "Legs", pendingSet(100, 5))),
	}
	groups = stats.ComputeMuscleGroups(onlyPending)
	require.Len(t, groups, 1)
	assert.Equal(t, 0, groups[0].Percentage)
}

func TestWeeklyRecoveryScore(t *testing.T) {
	recent := func(n int) []workout.Workout {
		var history []workout.Workout
		for i := 0; i < n; i++ {
			history = append(history, finished("w", i%7, 30))
		}
		return history
	}

	assert.Equal(t, 100, stats.WeeklyRecoveryScore(nil, testNow))
	assert.Equal(t, 95, stats.WeeklyRecoveryScore(recent(1), testNow))
	assert.Equal(t, 80, stats.WeeklyRecoveryScore(recent(4), testNow))
	assert.Equal(t, 60, stats.WeeklyRecoveryScore(recent(5), testNow))
	assert.Equal(t, 60, stats.WeeklyRecoveryScore(recent(6), testNow))
	assert.Equal(t, 60, stats.WeeklyRecoveryScore(recent(12), testNow))

	old := []workout.Workout{finished("old", 8, 30), finished("older", 30, 30)}
	assert.Equal(t, 100, stats.WeeklyRecoveryScore(old, testNow))

	cancelled := finished("c", 1, 30)
	cancelled.Status = workout.StatusCancelled
	assert.Equal(t, 100, stats.WeeklyRecoveryScore([]workout.Workout{cancelled}, testNow))
}

func TestPersonalBests(t *testing.T) {
	history := []workout.Workout{
		finished("w3", 0, 30,
			exercise("Bench Press", "Chest", completedSet(100, 3), pendingSet(150, 1)),
		),
		finished("w2", 2, 30,
			exercise("Bench Press", "Chest", completedSet(100, 5)),
			exercise("Squat", "Legs", completedSet(140, 5)),
		),
		finished("w1", 5, 30,
			exercise("Bench Press", "Chest", completedSet(100, 5), completedSet(90, 10)),
			exercise("Pull-ups", "Back", completedSet(0, 12)),
		),
	}

	bests := stats.PersonalBests(history)
	require.Len(t, bests, 2)

	assert.Equal(t, "Bench Press", bests[0].ExerciseName)
	assert.Equal(t, 100.0, bests[0].Weight)
	assert.Equal(t, 5, bests[0].Reps)
	// same weight and reps, the more recent one wins
	assert.Equal(t, "w2", bests[0].WorkoutID)
	assert.Equal(t, 117.0, bests[0].OneRepMax)

	assert.Equal(t, "Squat", bests[1].ExerciseName)
	assert.Equal(t, "Legs", bests[1].MuscleGroup)
	assert.Equal(t, 140.0, bests[1].Weight)

	assert.Empty(t, stats.PersonalBests(nil))
}
