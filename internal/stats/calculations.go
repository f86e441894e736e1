package stats

import (
	"fmt"
	"math"
	"strconv"
)

// OneRepMax estimates the one rep max with the Epley formula, rounded.
func OneRepMax(weight float64, reps int) float64 {
	if reps <= 1 {
		return weight
	}
	return math.Round(weight * (1 + float64(reps)/30))
}

// EstimatedWeight is the inverse of OneRepMax: the weight liftable for targetReps.
func EstimatedWeight(oneRepMax float64, targetReps int) float64 {
	if targetReps <= 1 {
		return oneRepMax
	}
	return math.Round(oneRepMax / (1 + float64(targetReps)/30))
}

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// WorkoutIntensity compares a workout volume against the average one.
func WorkoutIntensity(currentVolume, averageVolume float64) Intensity {
	if averageVolume <= 0 {
		return IntensityMedium
	}
	ratio := currentVolume / averageVolume
	switch {
	case ratio < 0.8:
		return IntensityLow
	case ratio > 1.2:
		return IntensityHigh
	default:
		return IntensityMedium
	}
}

// FormatVolume renders volumes from 1000 on as "1.2k".
func FormatVolume(volume float64) string {
	if volume >= 1000 {
		return fmt.Sprintf("%.1fk", volume/1000)
	}
	return strconv.FormatFloat(volume, 'f', -1, 64)
}
