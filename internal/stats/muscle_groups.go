package stats

import (
	"math"
	"sort"
	"strings"

	"github.com/2beens/sensefit/internal/workout"
)

const otherMuscleGroup = "Other"

type MuscleGroup struct {
	Name       string  `json:"name"`
	Sets       int     `json:"sets"`
	Volume     float64 `json:"volume"`
	Percentage int     `json:"percentage"`
}

// ComputeMuscleGroups distributes completed sets and volume over muscle groups.
// Percentages are relative to the most trained group. Groups are ordered by sets,
// most first; equal groups keep the order they were first seen in.
func ComputeMuscleGroups(history []workout.Workout) []MuscleGroup {
	groups := []MuscleGroup{}
	groupIndex := map[string]int{}

	for _, w := range completed(history) {
		for _, ex := range w.Exercises {
			name := ex.MuscleGroup
			if strings.TrimSpace(name) == "" {
				name = otherMuscleGroup
			}
			i, ok := groupIndex[name]
			if !ok {
				i = len(groups)
				groupIndex[name] = i
				groups = append(groups, MuscleGroup{Name: name})
			}
			groups[i].Sets += ex.CompletedSets()
			groups[i].Volume += ex.CompletedVolume()
		}
	}

	maxSets := 1
	for _, g := range groups {
		if g.Sets > maxSets {
			maxSets = g.Sets
		}
	}
	for i := range groups {
		groups[i].Percentage = int(math.Round(100 * float64(groups[i].Sets) / float64(maxSets)))
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Sets > groups[j].Sets
	})

	return groups
}
