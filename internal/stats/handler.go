package stats

import (
	"net/http"
	"strconv"

	"github.com/2beens/sensefit/internal/telemetry/tracing"
	"github.com/2beens/sensefit/pkg"
)

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

type progressResponse struct {
	Progress
	TotalVolumeDisplay  string `json:"totalVolumeDisplay"`
	WeeklyVolumeDisplay string `json:"weeklyVolumeDisplay"`
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.progress")
	defer span.End()

	progress := h.analyzer.Progress(ctx)
	pkg.WriteJSON(w, progressResponse{
		Progress:            progress,
		TotalVolumeDisplay:  FormatVolume(progress.TotalVolume),
		WeeklyVolumeDisplay: FormatVolume(progress.WeeklyVolume),
	}, http.StatusOK)
}

func (h *Handler) HandleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.muscle-groups")
	defer span.End()

	pkg.WriteJSON(w, h.analyzer.MuscleGroups(ctx), http.StatusOK)
}

func (h *Handler) HandleRecovery(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.recovery")
	defer span.End()

	pkg.WriteJSON(w, map[string]int{
		"score": h.analyzer.RecoveryScore(ctx),
	}, http.StatusOK)
}

func (h *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.records")
	defer span.End()

	pkg.WriteJSON(w, h.analyzer.PersonalBests(ctx), http.StatusOK)
}

func (h *Handler) HandleIntensity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.intensity")
	defer span.End()

	latest, ok := h.analyzer.LatestIntensity(ctx)
	if !ok {
		http.Error(w, "no completed workouts", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, latest, http.StatusOK)
}

type oneRepMaxResponse struct {
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	OneRepMax float64 `json:"oneRepMax"`
	// estimated working weight per target reps
	Estimates map[int]float64 `json:"estimates"`
}

var estimateReps = []int{1, 3, 5, 8, 10, 12, 15}

func (h *Handler) HandleOneRepMax(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.one-rep-max")
	defer span.End()

	weight, err := strconv.ParseFloat(r.URL.Query().Get("weight"), 64)
	if err != nil || weight < 0 {
		http.Error(w, "error, invalid weight", http.StatusBadRequest)
		return
	}
	reps, err := strconv.Atoi(r.URL.Query().Get("reps"))
	if err != nil || reps < 0 {
		http.Error(w, "error, invalid reps", http.StatusBadRequest)
		return
	}

	oneRepMax := OneRepMax(weight, reps)
	estimates := make(map[int]float64, len(estimateReps))
	for _, targetReps := range estimateReps {
		estimates[targetReps] = EstimatedWeight(oneRepMax, targetReps)
	}

	pkg.WriteJSON(w, oneRepMaxResponse{
		Weight:    weight,
		Reps:      reps,
		OneRepMax: oneRepMax,
		Estimates: estimates,
	}, http.StatusOK)
}
