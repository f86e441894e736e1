package stats

import (
	"sort"
	"time"

	"github.com/2beens/sensefit/internal/workout"
)

// PersonalBest is the heaviest completed set ever done for an exercise.
type PersonalBest struct {
	ExerciseName string    `json:"exerciseName"`
	MuscleGroup  string    `json:"muscleGroup,omitempty"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	OneRepMax    float64   `json:"oneRepMax"`
	Date         time.Time `json:"date"`
	WorkoutID    string    `json:"workoutId"`
}

// PersonalBests returns one entry per exercise name, sorted by name. When the
// same weight was lifted more than once, more reps win, then the more recent date.
func PersonalBests(history []workout.Workout) []PersonalBest {
	bests := map[string]PersonalBest{}

	for _, w := range completed(history) {
		for _, ex := range w.Exercises {
			for _, s := range ex.Sets {
				if !s.Completed || s.Weight <= 0 {
					continue
				}
				candidate := PersonalBest{
					ExerciseName: ex.Name,
					MuscleGroup:  ex.MuscleGroup,
					Weight:       s.Weight,
					Reps:         s.Reps,
					OneRepMax:    OneRepMax(s.Weight, s.Reps),
					Date:         w.Date,
					WorkoutID:    w.ID,
				}
				current, ok := bests[ex.Name]
				if !ok || beats(candidate, current) {
					bests[ex.Name] = candidate
				}
			}
		}
	}

	result := make([]PersonalBest, 0, len(bests))
	for _, pb := range bests {
		result = append(result, pb)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ExerciseName < result[j].ExerciseName
	})
	return result
}

func beats(candidate, current PersonalBest) bool {
	if candidate.Weight != current.Weight {
		return candidate.Weight > current.Weight
	}
	if candidate.Reps != current.Reps {
		return candidate.Reps > current.Reps
	}
	return candidate.Date.After(current.Date)
}
