package workout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=session_mocks_test.go -package=workout_test

type workoutStore interface {
	Add(ctx context.Context, w Workout) error
}

type userProvider interface {
	CurrentUserID() string
}

// Listener gets notified after each session transition, in transition order.
// Calls are made outside the manager lock, with a copy of the workout, and must
// not call back into the Manager.
type Listener interface {
	WorkoutStarted(w Workout)
	WorkoutFinished(w Workout)
	WorkoutDiscarded(w Workout)
}

// State is either Idle or Active.
type State interface {
	isState()
}

type Idle struct{}

type Active struct {
	Workout Workout
}

func (Idle) isState()   {}
func (Active) isState() {}

type ExerciseUpdate struct {
	Name        *string `json:"name,omitempty"`
	MuscleGroup *string `json:"muscleGroup,omitempty"`
	Equipment   *string `json:"equipment,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	VideoURL    *string `json:"videoUrl,omitempty"`
}

type SetUpdate struct {
	Type      *SetType `json:"type,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Reps      *int     `json:"reps,omitempty"`
	Time      *int     `json:"time,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
	Completed *bool    `json:"completed,omitempty"`
	RestTime  *int     `json:"restTime,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

// Manager owns the single active workout of the process.
type Manager struct {
	store              workoutStore
	users              userProvider
	defaultRestSeconds int

	mutex     sync.Mutex
	state     State
	listeners []Listener

	// held from the end of a transition until its listeners are done
	notifyMutex sync.Mutex

	// ability to inject clock and id generator (for unit testing)
	NowFunc   func() time.Time
	NewIDFunc func() string
}

func NewManager(
	store workoutStore,
	users userProvider,
	defaultRestSeconds int,
) *Manager {
	return &Manager{
		store:              store,
		users:              users,
		defaultRestSeconds: defaultRestSeconds,
		state:              Idle{},
		NowFunc:            time.Now,
		NewIDFunc:          uuid.NewString,
	}
}

// DefaultRestSeconds is the rest time new sets get.
func (m *Manager) DefaultRestSeconds() int {
	return m.defaultRestSeconds
}

func (m *Manager) AddListener(l Listener) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.listeners = append(m.listeners, l)
}

// State returns a snapshot of the current session state.
func (m *Manager) State() State {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if active, ok := m.state.(Active); ok {
		return Active{Workout: active.Workout.Clone()}
	}
	return Idle{}
}

// Active returns a copy of the active workout, and false if the session is idle.
func (m *Manager) Active() (Workout, bool) {
	if active, ok := m.State().(Active); ok {
		return active.Workout, true
	}
	return Workout{}, false
}

func (m *Manager) Start(name string) (Workout, error) {
	m.mutex.Lock()
	if _, ok := m.state.(Active); ok {
		m.mutex.Unlock()
		return Workout{}, ErrWorkoutInProgress
	}

	now := m.now()
	w := Workout{
		ID:        m.NewIDFunc(),
		UserID:    m.users.CurrentUserID(),
		Name:      name,
		Date:      now,
		StartTime: now,
		Exercises: []Exercise{},
		Status:    StatusInProgress,
	}
	m.state = Active{Workout: w}

	log.Debugf("workout [%s] %q started", w.ID, w.Name)
	m.unlockAndNotify(func(l Listener) {
		l.WorkoutStarted(w.Clone())
	})
	return w.Clone(), nil
}

// now drops the monotonic reading, so stored times equal their decoded form.
func (m *Manager) now() time.Time {
	return m.NowFunc().UTC().Round(0)
}

// unlockAndNotify releases m.mutex and calls fn for every listener. Must be
// called with m.mutex held. The notify lock is taken before m.mutex is released,
// so notifications of consecutive transitions can't overtake each other.
func (m *Manager) unlockAndNotify(fn func(l Listener)) {
	listeners := m.listeners
	m.notifyMutex.Lock()
	m.mutex.Unlock()
	defer m.notifyMutex.Unlock()

	for _, l := range listeners {
		fn(l)
	}
}

// mutate runs fn against the active workout, under the lock.
func (m *Manager) mutate(fn func(w *Workout) error) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	active, ok := m.state.(Active)
	if !ok {
		return ErrNoActiveWorkout
	}
	w := active.Workout
	if err := fn(&w); err != nil {
		return err
	}
	m.state = Active{Workout: w}
	return nil
}

func (m *Manager) AddExercise(exercise Exercise) (Exercise, error) {
	if exercise.ID == "" {
		exercise.ID = m.NewIDFunc()
	}
	if exercise.Sets == nil {
		exercise.Sets = []Set{}
	}
	exercise.Sets = append([]Set{}, exercise.Sets...)
	setIDs := make(map[string]bool, len(exercise.Sets))
	for i := range exercise.Sets {
		if exercise.Sets[i].ID == "" {
			exercise.Sets[i].ID = m.NewIDFunc()
		}
		if setIDs[exercise.Sets[i].ID] {
			return Exercise{}, fmt.Errorf("%w: %s", ErrDuplicateSetID, exercise.Sets[i].ID)
		}
		setIDs[exercise.Sets[i].ID] = true
	}

	err := m.mutate(func(w *Workout) error {
		if w.exerciseIndex(exercise.ID) >= 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateExerciseID, exercise.ID)
		}
		w.Exercises = append(w.Exercises, exercise)
		return nil
	})
	if err != nil {
		return Exercise{}, err
	}
	return exercise, nil
}

func (m *Manager) RemoveExercise(exerciseID string) error {
	return m.mutate(func(w *Workout) error {
		i := w.exerciseIndex(exerciseID)
		if i < 0 {
			return nil
		}
		exercises := make([]Exercise, 0, len(w.Exercises)-1)
		exercises = append(exercises, w.Exercises[:i]...)
		w.Exercises = append(exercises, w.Exercises[i+1:]...)
		return nil
	})
}

func (m *Manager) UpdateExercise(exerciseID string, update ExerciseUpdate) error {
	return m.mutate(func(w *Workout) error {
		i := w.exerciseIndex(exerciseID)
		if i < 0 {
			return nil
		}
		ex := w.Exercises[i]
		if update.Name != nil {
			ex.Name = *update.Name
		}
		if update.MuscleGroup != nil {
			ex.MuscleGroup = *update.MuscleGroup
		}
		if update.Equipment != nil {
			ex.Equipment = *update.Equipment
		}
		if update.Notes != nil {
			ex.Notes = *update.Notes
		}
		if update.VideoURL != nil {
			ex.VideoURL = *update.VideoURL
		}
		w.Exercises = replaceExercise(w.Exercises, i, ex)
		return nil
	})
}

// AddSet appends the set to the exercise. A zero set number becomes the count of
// existing sets + 1, an empty id gets generated. If the exercise is not found,
// nothing is added and the returned set is empty.
func (m *Manager) AddSet(exerciseID string, set Set) (Set, error) {
	if err := validateSet(set); err != nil {
		return Set{}, err
	}
	if set.Type == "" {
		set.Type = SetTypeNormal
	}

	var added Set
	err := m.mutate(func(w *Workout) error {
		i := w.exerciseIndex(exerciseID)
		if i < 0 {
			return nil
		}
		ex := w.Exercises[i]
		if set.ID == "" {
			set.ID = m.NewIDFunc()
		} else if ex.setIndex(set.ID) >= 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateSetID, set.ID)
		}
		if set.SetNumber == 0 {
			set.SetNumber = len(ex.Sets) + 1
		}
		ex.Sets = append(append([]Set{}, ex.Sets...), set)
		w.Exercises = replaceExercise(w.Exercises, i, ex)
		added = set
		return nil
	})
	return added, err
}

// AddNewSet adds a normal set, prefilled with weight and reps of the last set
// of the exercise and with the default rest time.
func (m *Manager) AddNewSet(exerciseID string) (Set, error) {
	var added Set
	err := m.mutate(func(w *Workout) error {
		i := w.exerciseIndex(exerciseID)
		if i < 0 {
			return nil
		}
		ex := w.Exercises[i]
		set := Set{
			ID:        m.NewIDFunc(),
			SetNumber: len(ex.Sets) + 1,
			Type:      SetTypeNormal,
			RestTime:  m.defaultRestSeconds,
		}
		if len(ex.Sets) > 0 {
			previous := ex.Sets[len(ex.Sets)-1]
			set.Weight = previous.Weight
			set.Reps = previous.Reps
		}
		ex.Sets = append(append([]Set{}, ex.Sets...), set)
		w.Exercises = replaceExercise(w.Exercises, i, ex)
		added = set
		return nil
	})
	return added, err
}

func (m *Manager) UpdateSet(exerciseID, setID string, update SetUpdate) error {
	if err := validateSetUpdate(update); err != nil {
		return err
	}
	return m.updateSet(exerciseID, setID, func(s *Set) {
		if update.Type != nil {
			s.Type = *update.Type
		}
		if update.Weight != nil {
			s.Weight = *update.Weight
		}
		if update.Reps != nil {
			s.Reps = *update.Reps
		}
		if update.Time != nil {
			s.Time = *update.Time
		}
		if update.Distance != nil {
			s.Distance = *update.Distance
		}
		if update.Completed != nil {
			s.Completed = *update.Completed
		}
		if update.RestTime != nil {
			s.RestTime = *update.RestTime
		}
		if update.Notes != nil {
			s.Notes = *update.Notes
		}
	})
}

func (m *Manager) ToggleSetCompletion(exerciseID, setID string) error {
	return m.updateSet(exerciseID, setID, func(s *Set) {
		s.Completed = !s.Completed
	})
}

func (m *Manager) DeleteSet(exerciseID, setID string) error {
	return m.mutate(func(w *Workout) error {
		i := w.exerciseIndex(exerciseID)
		if i < 0 {
			return nil
		}
		ex := w.Exercises[i]
		j := ex.setIndex(setID)
		if j < 0 {
			return nil
		}
		sets := make([]Set, 0, len(ex.Sets)-1)
		sets = append(sets, ex.Sets[:j]...)
		ex.Sets = append(sets, ex.Sets[j+1:]...)
		w.Exercises = replaceExercise(w.Exercises, i, ex)
		return nil
	})
}

func (m *Manager) updateSet(exerciseID, setID string, fn func(s *Set)) error {
	return m.mutate(func(w *Workout) error {
		i := w.exerciseIndex(exerciseID)
		if i < 0 {
			return nil
		}
		ex := w.Exercises[i]
		j := ex.setIndex(setID)
		if j < 0 {
			return nil
		}
		ex.Sets = append([]Set{}, ex.Sets...)
		fn(&ex.Sets[j])
		w.Exercises = replaceExercise(w.Exercises, i, ex)
		return nil
	})
}

// Finish derives duration and totals, persists the workout and, only when
// persisting succeeded, clears the active state. On a store error the workout
// stays active so it can be saved again.
func (m *Manager) Finish(ctx context.Context) (Workout, error) {
	m.mutex.Lock()
	active, ok := m.state.(Active)
	if !ok {
		m.mutex.Unlock()
		return Workout{}, ErrNoActiveWorkout
	}

	userID := m.users.CurrentUserID()
	if userID == "" {
		m.mutex.Unlock()
		log.Warnf("workout [%s] not finished, no signed in user", active.Workout.ID)
		return Workout{}, ErrNoUser
	}

	finished := finalize(active.Workout.Clone(), userID, m.now())
	if err := m.store.Add(ctx, finished); err != nil {
		m.mutex.Unlock()
		return Workout{}, fmt.Errorf("save workout %s: %w", finished.ID, err)
	}
	m.state = Idle{}

	log.Debugf("workout [%s] finished, volume: %.1f, sets: %d", finished.ID, *finished.TotalVolume, *finished.TotalSets)
	m.unlockAndNotify(func(l Listener) {
		l.WorkoutFinished(finished.Clone())
	})
	return finished, nil
}

// Discard drops the active workout without persisting it.
func (m *Manager) Discard() (Workout, error) {
	m.mutex.Lock()
	active, ok := m.state.(Active)
	if !ok {
		m.mutex.Unlock()
		return Workout{}, ErrNoActiveWorkout
	}
	m.state = Idle{}

	discarded := active.Workout
	discarded.Status = StatusCancelled
	log.Debugf("workout [%s] discarded", discarded.ID)
	m.unlockAndNotify(func(l Listener) {
		l.WorkoutDiscarded(discarded.Clone())
	})
	return discarded, nil
}

func finalize(w Workout, userID string, endTime time.Time) Workout {
	duration := int64(endTime.Sub(w.StartTime) / time.Second)
	totalVolume := TotalVolume(w.Exercises)
	totalSets := TotalSets(w.Exercises)

	w.UserID = userID
	w.EndTime = &endTime
	w.Duration = &duration
	w.TotalVolume = &totalVolume
	w.TotalSets = &totalSets
	w.Status = StatusCompleted
	return w
}

// replaceExercise returns a new slice, so snapshots handed out earlier stay untouched.
func replaceExercise(exercises []Exercise, i int, ex Exercise) []Exercise {
	updated := append([]Exercise{}, exercises...)
	updated[i] = ex
	return updated
}

func validateSet(s Set) error {
	if s.Weight < 0 {
		return fmt.Errorf("%w: negative weight", ErrInvalidSet)
	}
	if s.Reps < 0 {
		return fmt.Errorf("%w: negative reps", ErrInvalidSet)
	}
	if s.Type != "" && !s.Type.IsValid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidSet, s.Type)
	}
	return nil
}

func validateSetUpdate(u SetUpdate) error {
	if u.Weight != nil && *u.Weight < 0 {
		return fmt.Errorf("%w: negative weight", ErrInvalidSet)
	}
	if u.Reps != nil && *u.Reps < 0 {
		return fmt.Errorf("%w: negative reps", ErrInvalidSet)
	}
	if u.Type != nil && !u.Type.IsValid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidSet, *u.Type)
	}
	return nil
}
