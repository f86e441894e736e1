package stats

import (
	"math"
	"time"

	"github.com/2beens/sensefit/internal/workout"
)

const (
	DefaultWeeklyTarget = 5
	weekWindow          = 7 // days
)

type Progress struct {
	TotalWorkouts   int     `json:"totalWorkouts"`
	TotalVolume     float64 `json:"totalVolume"`
	AvgDuration     int     `json:"avgDuration"` // minutes
	PersonalRecords int     `json:"personalRecords"`
	WeeklyWorkouts  int     `json:"weeklyWorkouts"`
	WeeklyVolume    float64 `json:"weeklyVolume"`
	WeeklyTarget    int     `json:"weeklyTarget"`
}

// ComputeProgress aggregates the completed workouts of the history.
// Volume counts completed sets only, unlike the total stored on each workout.
func ComputeProgress(history []workout.Workout, now time.Time) Progress {
	weekAgo := now.AddDate(0, 0, -weekWindow)
	progress := Progress{
		WeeklyTarget: DefaultWeeklyTarget,
	}

	var totalMinutes float64
	timedWorkouts := 0
	recordExercises := map[string]struct{}{}

	for _, w := range completed(history) {
		volume := workout.CompletedVolume(w.Exercises)
		progress.TotalWorkouts++
		progress.TotalVolume += volume

		if !w.StartTime.IsZero() && w.EndTime != nil {
			totalMinutes += w.EndTime.Sub(w.StartTime).Minutes()
			timedWorkouts++
		}

		for _, ex := range w.Exercises {
			for _, s := range ex.Sets {
				if s.Completed && s.Weight > 0 {
					recordExercises[ex.Name] = struct{}{}
					break
				}
			}
		}

		if inLastWeek(w, weekAgo) {
			progress.WeeklyWorkouts++
			progress.WeeklyVolume += volume
		}
	}

	if timedWorkouts > 0 {
		progress.AvgDuration = int(math.Round(totalMinutes / float64(timedWorkouts)))
	}
	progress.PersonalRecords = len(recordExercises)

	return progress
}

func completed(history []workout.Workout) []workout.Workout {
	var result []workout.Workout
	for _, w := range history {
		if w.Status == workout.StatusCompleted {
			result = append(result, w)
		}
	}
	return result
}

func inLastWeek(w workout.Workout, weekAgo time.Time) bool {
	return w.EndTime != nil && !w.EndTime.Before(weekAgo)
}
