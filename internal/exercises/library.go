package exercises

import (
	"slices"
	"strings"

	"github.com/2beens/sensefit/internal/workout"
)

type MuscleGroup string

const (
	MuscleGroupChest     MuscleGroup = "Chest"
	MuscleGroupBack      MuscleGroup = "Back"
	MuscleGroupLegs      MuscleGroup = "Legs"
	MuscleGroupShoulders MuscleGroup = "Shoulders"
	MuscleGroupArms      MuscleGroup = "Arms"
	MuscleGroupCore      MuscleGroup = "Core"
	MuscleGroupCardio    MuscleGroup = "Cardio"
	MuscleGroupFullBody  MuscleGroup = "Full Body"
)

// MuscleGroups lists the groups the library is browsed by.
var MuscleGroups = []MuscleGroup{
	MuscleGroupChest,
	MuscleGroupBack,
	MuscleGroupLegs,
	MuscleGroupShoulders,
	MuscleGroupArms,
	MuscleGroupCore,
}

type Equipment string

const (
	EquipmentBarbell    Equipment = "Barbell"
	EquipmentDumbbell   Equipment = "Dumbbell"
	EquipmentCable      Equipment = "Cable"
	EquipmentMachine    Equipment = "Machine"
	EquipmentBodyweight Equipment = "Bodyweight"
	EquipmentBands      Equipment = "Bands"
	EquipmentKettlebell Equipment = "Kettlebell"
	EquipmentOther      Equipment = "Other"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Item is a read-only exercise library entry.
type Item struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	MuscleGroup  MuscleGroup `json:"muscleGroup"`
	Equipment    Equipment   `json:"equipment"`
	Difficulty   Difficulty  `json:"difficulty,omitempty"`
	Description  string      `json:"description,omitempty"`
	Instructions []string    `json:"instructions,omitempty"`
	VideoURL     string      `json:"videoUrl,omitempty"`
}

// ToExercise builds a new exercise for a workout from the library entry.
// The id is left empty, the session manager assigns one.
func (i Item) ToExercise() workout.Exercise {
	return workout.Exercise{
		Name:        i.Name,
		MuscleGroup: string(i.MuscleGroup),
		Equipment:   string(i.Equipment),
		Sets:        []workout.Set{},
		VideoURL:    i.VideoURL,
	}
}

type Library struct {
	items []Item
	byID  map[string]int
}

func NewLibrary() *Library {
	return newLibrary(catalog)
}

func newLibrary(items []Item) *Library {
	byID := make(map[string]int, len(items))
	for i, item := range items {
		byID[item.ID] = i
	}
	return &Library{
		items: items,
		byID:  byID,
	}
}

func (l *Library) All() []Item {
	return slices.Clone(l.items)
}

func (l *Library) GetByID(id string) (Item, bool) {
	i, ok := l.byID[id]
	if !ok {
		return Item{}, false
	}
	return l.items[i], true
}

// ExerciseForID returns a workout exercise built from the library entry.
func (l *Library) ExerciseForID(id string) (workout.Exercise, bool) {
	item, ok := l.GetByID(id)
	if !ok {
		return workout.Exercise{}, false
	}
	return item.ToExercise(), true
}

func (l *Library) ByMuscleGroup(group MuscleGroup) []Item {
	return l.Filter(group, "")
}

// Search matches a case-insensitive substring of the name.
func (l *Library) Search(query string) []Item {
	return l.Filter("", query)
}

// Filter narrows by muscle group (when not empty) and then by name query
// (when not blank), keeping catalog order.
func (l *Library) Filter(group MuscleGroup, query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	result := []Item{}
	for _, item := range l.items {
		if group != "" && item.MuscleGroup != group {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		result = append(result, item)
	}
	return result
}

func (l *Library) MuscleGroups() []MuscleGroup {
	return slices.Clone(MuscleGroups)
}
