package internal

import (
	"time"

	"github.com/2beens/sensefit/internal/telemetry/metrics"
	"github.com/2beens/sensefit/internal/workout"

	log "github.com/sirupsen/logrus"
)

type elapsedTimer interface {
	Start(startTime time.Time)
	Stop()
}

// workoutObserver feeds session transitions into metrics and drives the elapsed-time ticker.
type workoutObserver struct {
	metricsManager *metrics.Manager
	timer          elapsedTimer
}

func newWorkoutObserver(metricsManager *metrics.Manager, timer elapsedTimer) *workoutObserver {
	return &workoutObserver{
		metricsManager: metricsManager,
		timer:          timer,
	}
}

func (o *workoutObserver) WorkoutStarted(w workout.Workout) {
	log.Debugf("workout [%s] started: %s", w.ID, w.Name)
	o.metricsManager.CounterWorkoutsStarted.Inc()
	o.metricsManager.GaugeActiveWorkoutElapsed.Set(0)
	o.timer.Start(w.StartTime)
}

func (o *workoutObserver) WorkoutFinished(w workout.Workout) {
	o.timer.Stop()
	o.metricsManager.GaugeActiveWorkoutElapsed.Set(0)
	o.metricsManager.CounterWorkoutsFinished.Inc()
	if w.Duration != nil {
		o.metricsManager.HistogramWorkoutDuration.Observe(float64(*w.Duration))
	}
	if w.TotalVolume != nil {
		o.metricsManager.HistogramWorkoutVolume.Observe(*w.TotalVolume)
	}
	log.Infof("workout [%s] finished for user [%s]", w.ID, w.UserID)
}

func (o *workoutObserver) WorkoutDiscarded(w workout.Workout) {
	o.timer.Stop()
	o.metricsManager.GaugeActiveWorkoutElapsed.Set(0)
	o.metricsManager.CounterWorkoutsDiscarded.Inc()
	log.Debugf("workout [%s] discarded", w.ID)
}
