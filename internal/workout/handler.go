package workout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/sensefit/internal/telemetry/tracing"
	"github.com/2beens/sensefit/internal/timer"
	"github.com/2beens/sensefit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type exerciseLibrary interface {
	ExerciseForID(id string) (Exercise, bool)
}

type Handler struct {
	manager   *Manager
	repo      *Repo
	library   exerciseLibrary
	restTimer *timer.RestTimer
}

func NewHandler(
	manager *Manager,
	repo *Repo,
	library exerciseLibrary,
	restTimer *timer.RestTimer,
) *Handler {
	return &Handler{
		manager:   manager,
		repo:      repo,
		library:   library,
		restTimer: restTimer,
	}
}

// writeError maps session errors to status codes.
func writeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, ErrInvalidState):
		http.Error(w, fmt.Sprintf("%s failed: %s", action, err), http.StatusConflict)
	case errors.Is(err, ErrNoUser):
		http.Error(w, fmt.Sprintf("%s failed: %s", action, err), http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidSet), errors.Is(err, ErrDuplicateSetID), errors.Is(err, ErrDuplicateExerciseID):
		http.Error(w, fmt.Sprintf("%s failed: %s", action, err), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
	}
}

// writeActive answers with the current active workout, after a mutation.
func (h *Handler) writeActive(w http.ResponseWriter) {
	active, ok := h.manager.Active()
	if !ok {
		http.Error(w, ErrNoActiveWorkout.Error(), http.StatusConflict)
		return
	}
	pkg.WriteJSON(w, active, http.StatusOK)
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.start")
	defer span.End()

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Errorf("start workout, unmarshal json params: %s", err)
		http.Error(w, "start workout failed, invalid request body", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultWorkoutName(h.manager.NowFunc())
	}

	started, err := h.manager.Start(name)
	if err != nil {
		writeError(w, err, "start workout")
		return
	}
	span.SetAttributes(attribute.String("workout.id", started.ID))
	pkg.WriteJSON(w, started, http.StatusCreated)
}

func (h *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.active")
	defer span.End()

	active, ok := h.manager.Active()
	if !ok {
		http.Error(w, "no active workout", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, active, http.StatusOK)
}

func (h *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.finish")
	defer span.End()

	finished, err := h.manager.Finish(ctx)
	if err != nil {
		span.RecordError(err)
		writeError(w, err, "finish workout")
		return
	}
	h.restTimer.Skip()
	span.SetAttributes(attribute.String("workout.id", finished.ID))
	pkg.WriteJSON(w, finished, http.StatusOK)
}

func (h *Handler) HandleDiscard(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.discard")
	defer span.End()

	discarded, err := h.manager.Discard()
	if err != nil {
		writeError(w, err, "discard workout")
		return
	}
	h.restTimer.Skip()
	pkg.WriteJSON(w, discarded, http.StatusOK)
}

type addExerciseRequest struct {
	LibraryID string `json:"libraryId"`
	Exercise
}

func (h *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.exercise.add")
	defer span.End()

	var req addExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed, invalid request body", http.StatusBadRequest)
		return
	}

	exercise := req.Exercise
	if req.LibraryID != "" {
		span.SetAttributes(attribute.String("library.id", req.LibraryID))
		fromLibrary, ok := h.library.ExerciseForID(req.LibraryID)
		if !ok {
			http.Error(w, "exercise not found in library", http.StatusNotFound)
			return
		}
		exercise = fromLibrary
	} else if strings.TrimSpace(exercise.Name) == "" {
		http.Error(w, "add exercise failed, name empty", http.StatusBadRequest)
		return
	}

	added, err := h.manager.AddExercise(exercise)
	if err != nil {
		writeError(w, err, "add exercise")
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.exercise.update")
	defer span.End()

	exerciseID := mux.Vars(r)["exid"]
	var update ExerciseUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Errorf("update exercise, unmarshal json params: %s", err)
		http.Error(w, "update exercise failed, invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.manager.UpdateExercise(exerciseID, update); err != nil {
		writeError(w, err, "update exercise")
		return
	}
	h.writeActive(w)
}

func (h *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.exercise.remove")
	defer span.End()

	if err := h.manager.RemoveExercise(mux.Vars(r)["exid"]); err != nil {
		writeError(w, err, "remove exercise")
		return
	}
	h.writeActive(w)
}

// HandleAddSet adds the set from the body, or a prefilled one when the body is empty.
func (h *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.set.add")
	defer span.End()

	exerciseID := mux.Vars(r)["exid"]
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "add set failed, read body", http.StatusBadRequest)
		return
	}

	var added Set
	if len(bytes.TrimSpace(body)) == 0 {
		added, err = h.manager.AddNewSet(exerciseID)
	} else {
		var set Set
		if err := json.Unmarshal(body, &set); err != nil {
			log.Errorf("add set, unmarshal json params: %s", err)
			http.Error(w, "add set failed, invalid request body", http.StatusBadRequest)
			return
		}
		added, err = h.manager.AddSet(exerciseID, set)
	}
	if err != nil {
		writeError(w, err, "add set")
		return
	}
	if added.ID == "" {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.set.update")
	defer span.End()

	vars := mux.Vars(r)
	var update SetUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Errorf("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed, invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.manager.UpdateSet(vars["exid"], vars["setid"], update); err != nil {
		writeError(w, err, "update set")
		return
	}
	h.writeActive(w)
}

func (h *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.set.delete")
	defer span.End()

	vars := mux.Vars(r)
	if err := h.manager.DeleteSet(vars["exid"], vars["setid"]); err != nil {
		writeError(w, err, "delete set")
		return
	}
	h.writeActive(w)
}

// HandleToggleSet flips the set completion. A set that becomes completed starts
// the rest timer with its rest time (or the default one).
func (h *Handler) HandleToggleSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.set.toggle")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID, setID := vars["exid"], vars["setid"]
	if err := h.manager.ToggleSetCompletion(exerciseID, setID); err != nil {
		writeError(w, err, "toggle set")
		return
	}

	if set, ok := h.findSet(exerciseID, setID); ok && set.Completed {
		rest := set.RestTime
		if rest <= 0 {
			rest = h.manager.DefaultRestSeconds()
		}
		h.restTimer.Start(rest)
	}
	h.writeActive(w)
}

func (h *Handler) findSet(exerciseID, setID string) (Set, bool) {
	active, ok := h.manager.Active()
	if !ok {
		return Set{}, false
	}
	i := active.exerciseIndex(exerciseID)
	if i < 0 {
		return Set{}, false
	}
	j := active.Exercises[i].setIndex(setID)
	if j < 0 {
		return Set{}, false
	}
	return active.Exercises[i].Sets[j], true
}

func (h *Handler) HandleStartRest(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.rest.start")
	defer span.End()

	var req struct {
		Seconds int `json:"seconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "start rest failed, invalid request body", http.StatusBadRequest)
		return
	}
	if req.Seconds < 0 {
		http.Error(w, "start rest failed, negative seconds", http.StatusBadRequest)
		return
	}
	if req.Seconds == 0 {
		req.Seconds = h.manager.DefaultRestSeconds()
	}

	h.restTimer.Start(req.Seconds)
	pkg.WriteJSON(w, h.restTimer.Status(), http.StatusOK)
}

func (h *Handler) HandleRestStatus(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.rest.status")
	defer span.End()

	pkg.WriteJSON(w, h.restTimer.Status(), http.StatusOK)
}

func (h *Handler) HandleSkipRest(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.rest.skip")
	defer span.End()

	h.restTimer.Skip()
	pkg.WriteJSON(w, h.restTimer.Status(), http.StatusOK)
}

// HandleHistory lists the stored workouts, optionally limited by ?from= and ?to=.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.history")
	defer span.End()

	fromParam := r.URL.Query().Get("from")
	toParam := r.URL.Query().Get("to")
	if fromParam == "" && toParam == "" {
		pkg.WriteJSON(w, h.repo.GetAll(ctx), http.StatusOK)
		return
	}

	from, to, err := ParseDateRange(fromParam, toParam)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	pkg.WriteJSON(w, h.repo.GetByDateRange(ctx, from, to), http.StatusOK)
}

func (h *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, workout id empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("workout.id", id))

	if err := h.repo.Remove(ctx, id); err != nil {
		log.Errorf("delete workout %s: %s", id, err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponse(w, pkg.ContentType.Text, "removed", http.StatusOK)
}

func defaultWorkoutName(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Morning Workout"
	case hour < 17:
		return "Afternoon Workout"
	default:
		return "Evening Workout"
	}
}
