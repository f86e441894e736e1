package exercises

import (
	"net/http"

	"github.com/2beens/sensefit/internal/telemetry/tracing"
	"github.com/2beens/sensefit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Handler struct {
	library *Library
}

func NewHandler(library *Library) *Handler {
	return &Handler{
		library: library,
	}
}

// HandleList serves the library, optionally narrowed by ?group= and ?q=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	group := MuscleGroup(r.URL.Query().Get("group"))
	query := r.URL.Query().Get("q")
	span.SetAttributes(
		attribute.String("group", string(group)),
		attribute.String("query", query),
	)

	items := h.library.Filter(group, query)
	log.Tracef("exercise library: %d items for group [%s] and query [%s]", len(items), group, query)
	pkg.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) HandleGroups(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.groups")
	defer span.End()

	pkg.WriteJSON(w, h.library.MuscleGroups(), http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("id", id))

	item, ok := h.library.GetByID(id)
	if !ok {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, item, http.StatusOK)
}
