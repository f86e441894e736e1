package workout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/sensefit/internal/blobstore"
	"github.com/2beens/sensefit/internal/telemetry/metrics"
	"github.com/2beens/sensefit/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	workoutsKey = "workouts"
	// TemplatesKey is reserved for workout templates, nothing writes it yet.
	TemplatesKey = "workout_templates"
)

// Repo keeps the workout history as one JSON list (most recent first) under a
// single blob store key.
type Repo struct {
	store          blobstore.Store
	metricsManager *metrics.Manager

	// serializes read-modify-write within this process only
	mutex sync.Mutex
}

func NewRepo(store blobstore.Store, metricsManager *metrics.Manager) *Repo {
	return &Repo{
		store:          store,
		metricsManager: metricsManager,
	}
}

// GetAll never fails: a missing key, a read error or a malformed blob all
// produce an empty history.
func (r *Repo) GetAll(ctx context.Context) []Workout {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get_all")
	defer span.End()

	workouts, err := r.getAll(ctx)
	if err != nil {
		log.Errorf("get workouts: %s", err)
		span.RecordError(err)
		if r.metricsManager != nil {
			r.metricsManager.CounterStorageReadRecoveries.Inc()
		}
		return []Workout{}
	}
	span.SetAttributes(attribute.Int("workouts", len(workouts)))
	return workouts
}

func (r *Repo) getAll(ctx context.Context) ([]Workout, error) {
	value, err := r.store.Get(ctx, workoutsKey)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return []Workout{}, nil
		}
		return nil, fmt.Errorf("read: %w", err)
	}

	var workouts []Workout
	if err := json.Unmarshal(value, &workouts); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if workouts == nil {
		workouts = []Workout{}
	}
	return workouts, nil
}

// SaveAll replaces the whole history.
func (r *Repo) SaveAll(ctx context.Context, workouts []Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.save_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workouts", len(workouts)))

	return r.saveAll(ctx, workouts)
}

func (r *Repo) saveAll(ctx context.Context, workouts []Workout) error {
	if workouts == nil {
		workouts = []Workout{}
	}
	value, err := json.Marshal(workouts)
	if err != nil {
		return fmt.Errorf("marshal workouts: %w", err)
	}
	if err := r.store.Set(ctx, workoutsKey, value); err != nil {
		if r.metricsManager != nil {
			r.metricsManager.CounterStorageWriteFailures.Inc()
		}
		return fmt.Errorf("write workouts: %w", err)
	}
	return nil
}

// Add puts the workout at the front of the history.
func (r *Repo) Add(ctx context.Context, w Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", w.ID))

	r.mutex.Lock()
	defer r.mutex.Unlock()

	// a failed read must not turn into an empty history that overwrites the stored one
	workouts, err := r.getAll(ctx)
	if err != nil {
		return fmt.Errorf("add workout %s: %w", w.ID, err)
	}
	workouts = append([]Workout{w}, workouts...)
	if err := r.saveAll(ctx, workouts); err != nil {
		return err
	}

	log.Debugf("workout [%s] added to history, %d in total", w.ID, len(workouts))
	return nil
}

// Remove deletes the workout with the given id. Removing an unknown id still
// rewrites the history unchanged.
func (r *Repo) Remove(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.remove")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	r.mutex.Lock()
	defer r.mutex.Unlock()

	workouts, err := r.getAll(ctx)
	if err != nil {
		return fmt.Errorf("remove workout %s: %w", id, err)
	}
	filtered := make([]Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.ID != id {
			filtered = append(filtered, w)
		}
	}
	return r.saveAll(ctx, filtered)
}

// GetByDateRange returns the workouts with from <= date <= to, in history order.
func (r *Repo) GetByDateRange(ctx context.Context, from, to time.Time) []Workout {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get_by_date_range")
	defer span.End()
	span.SetAttributes(
		attribute.String("from", from.Format(time.RFC3339)),
		attribute.String("to", to.Format(time.RFC3339)),
	)

	var inRange []Workout
	for _, w := range r.GetAll(ctx) {
		if w.Date.Before(from) || w.Date.After(to) {
			continue
		}
		inRange = append(inRange, w)
	}
	if inRange == nil {
		inRange = []Workout{}
	}
	return inRange
}

// ClearAll removes the whole history.
func (r *Repo) ClearAll(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.clear_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if err := r.store.Delete(ctx, workoutsKey); err != nil {
		return fmt.Errorf("delete workouts: %w", err)
	}
	log.Warnln("workout history cleared")
	return nil
}
