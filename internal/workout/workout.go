package workout

import "time"

// SetType can be one of:
//   - normal
//   - warmup
//   - dropset
//   - failure
type SetType string

const (
	SetTypeNormal  SetType = "normal"
	SetTypeWarmup  SetType = "warmup"
	SetTypeDropset SetType = "dropset"
	SetTypeFailure SetType = "failure"
)

func (st SetType) String() string {
	return string(st)
}

func (st SetType) IsValid() bool {
	switch st {
	case SetTypeNormal,
		SetTypeWarmup,
		SetTypeDropset,
		SetTypeFailure:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Set is one performed set of an exercise.
// Absent numeric values are stored as zero.
type Set struct {
	ID        string  `json:"id"`
	SetNumber int     `json:"setNumber"`
	Type      SetType `json:"type"`
	Weight    float64 `json:"weight,omitempty"`
	Reps      int     `json:"reps,omitempty"`
	Time      int     `json:"time,omitempty"`     // seconds
	Distance  float64 `json:"distance,omitempty"` // meters
	Completed bool    `json:"completed"`
	RestTime  int     `json:"restTime,omitempty"` // seconds
	Notes     string  `json:"notes,omitempty"`
}

// Volume is weight x reps of a single set.
func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// Exercise is one exercise instance inside a specific workout.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Equipment   string `json:"equipment,omitempty"`
	Sets        []Set  `json:"sets"`
	Notes       string `json:"notes,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
}

func (e *Exercise) setIndex(setID string) int {
	for i := range e.Sets {
		if e.Sets[i].ID == setID {
			return i
		}
	}
	return -1
}

// Workout is one training session, active or historical.
type Workout struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	Date        time.Time  `json:"date"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Duration    *int64     `json:"duration,omitempty"` // seconds
	Exercises   []Exercise `json:"exercises"`
	TotalVolume *float64   `json:"totalVolume,omitempty"`
	TotalSets   *int       `json:"totalSets,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	IsTemplate  bool       `json:"isTemplate"`
	AIGenerated bool       `json:"aiGenerated,omitempty"`
	Status      Status     `json:"status"`
}

func (w *Workout) exerciseIndex(exerciseID string) int {
	for i := range w.Exercises {
		if w.Exercises[i].ID == exerciseID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy, so the caller can't modify the original exercises and sets.
func (w Workout) Clone() Workout {
	c := w
	if w.EndTime != nil {
		endTime := *w.EndTime
		c.EndTime = &endTime
	}
	if w.Duration != nil {
		duration := *w.Duration
		c.Duration = &duration
	}
	if w.TotalVolume != nil {
		totalVolume := *w.TotalVolume
		c.TotalVolume = &totalVolume
	}
	if w.TotalSets != nil {
		totalSets := *w.TotalSets
		c.TotalSets = &totalSets
	}
	if w.Exercises != nil {
		c.Exercises = make([]Exercise, len(w.Exercises))
		for i, ex := range w.Exercises {
			c.Exercises[i] = ex
			if ex.Sets != nil {
				c.Exercises[i].Sets = append([]Set{}, ex.Sets...)
			}
		}
	}
	return c
}

// TotalVolume sums weight x reps over ALL sets, completed or not.
// This is the figure stored on a workout when it is finished; the statistics
// views use a completed-sets-only volume instead.
func TotalVolume(exercises []Exercise) float64 {
	var total float64
	for _, ex := range exercises {
		for _, s := range ex.Sets {
			total += s.Volume()
		}
	}
	return total
}

// CompletedVolume sums weight x reps over completed sets only.
func CompletedVolume(exercises []Exercise) float64 {
	var total float64
	for _, ex := range exercises {
		total += ex.CompletedVolume()
	}
	return total
}

func (e Exercise) CompletedVolume() float64 {
	var total float64
	for _, s := range e.Sets {
		if s.Completed {
			total += s.Volume()
		}
	}
	return total
}

func (e Exercise) CompletedSets() int {
	count := 0
	for _, s := range e.Sets {
		if s.Completed {
			count++
		}
	}
	return count
}

// TotalSets counts all sets over all exercises.
func TotalSets(exercises []Exercise) int {
	total := 0
	for _, ex := range exercises {
		total += len(ex.Sets)
	}
	return total
}
