package workout

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState = errors.New("invalid session state")
	// ErrNoActiveWorkout is returned when a mutation or finish is attempted while idle.
	ErrNoActiveWorkout = fmt.Errorf("%w: no active workout", ErrInvalidState)
	// ErrWorkoutInProgress is returned by Start when a workout is already active.
	ErrWorkoutInProgress = fmt.Errorf("%w: workout already in progress", ErrInvalidState)

	ErrNoUser         = errors.New("no signed in user")
	ErrInvalidSet     = errors.New("invalid set")
	ErrDuplicateSetID = errors.New("duplicate set id")
	// ErrDuplicateExerciseID is returned when an exercise with the same id is already in the workout.
	ErrDuplicateExerciseID = errors.New("duplicate exercise id")
)
