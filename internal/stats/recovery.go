package stats

import (
	"time"

	"github.com/2beens/sensefit/internal/workout"
)

const idealWeeklyWorkouts = 4

// WeeklyRecoveryScore is a naive recovery estimate from the number of workouts
// completed in the last 7 days. No real recovery signal (HRV, sleep) is used yet.
func WeeklyRecoveryScore(history []workout.Workout, now time.Time) int {
	weekAgo := now.AddDate(0, 0, -weekWindow)

	n := 0
	for _, w := range completed(history) {
		if inLastWeek(w, weekAgo) {
			n++
		}
	}

	if n == 0 {
		return 100
	}
	if n <= idealWeeklyWorkouts {
		return 100 - n*5
	}
	return max(60, 100-n*8)
}
