package internal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/sensefit/internal/config"
	"github.com/2beens/sensefit/internal/exercises"
	"github.com/2beens/sensefit/internal/identity"
	"github.com/2beens/sensefit/internal/mcp"
	"github.com/2beens/sensefit/internal/middleware"
	"github.com/2beens/sensefit/internal/stats"
	"github.com/2beens/sensefit/internal/telemetry/metrics"
	"github.com/2beens/sensefit/internal/telemetry/tracing"
	"github.com/2beens/sensefit/internal/timer"
	"github.com/2beens/sensefit/internal/workout"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config  *config.Config
	storage *Storage

	// workout domain
	identity       *identity.Holder
	library        *exercises.Library
	workoutRepo    *workout.Repo
	sessionManager *workout.Manager
	analyzer       *stats.Analyzer
	restTimer      *timer.RestTimer
	workoutTimer   *timer.WorkoutTimer
	mcpServer      *sdkmcp.Server

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	s := &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
	}

	storage, err := OpenStorage(ctx, OpenStorageParams{
		Config:           cfg,
		RedisPassword:    params.RedisPassword,
		PostgresPassword: params.PostgresPassword,
		TracingEnabled:   params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.promRegistry = metrics.SetupPrometheus(storage.Collectors()...)
	s.metricsManager = metrics.NewManager("backend", "main", s.promRegistry)
	s.metricsManager.GaugeLifeSignal.Set(0) // set to 1 once serving

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "sensefit-backend", storage.RedisClient)
	if err != nil {
		_ = storage.Close()
		return nil, err
	}
	s.otelShutdown = otelShutdown

	s.identity = identity.NewHolder(cfg.DefaultUserID)
	s.library = exercises.NewLibrary()
	s.workoutRepo = workout.NewRepo(storage.Store, s.metricsManager)
	s.sessionManager = workout.NewManager(s.workoutRepo, s.identity, cfg.DefaultRestSeconds)
	s.analyzer = stats.NewAnalyzer(s.workoutRepo)
	s.restTimer = timer.NewRestTimer(time.Second, func() {
		log.Debugln("rest finished")
	})
	s.workoutTimer = timer.NewWorkoutTimer(time.Second, func(elapsed time.Duration) {
		s.metricsManager.GaugeActiveWorkoutElapsed.Set(elapsed.Seconds())
	})
	s.sessionManager.AddListener(newWorkoutObserver(s.metricsManager, s.workoutTimer))
	s.mcpServer = mcp.NewServer(s.analyzer, s.workoutRepo)

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	workoutHandler := workout.NewHandler(s.sessionManager, s.workoutRepo, s.library, s.restTimer)
	r.HandleFunc("/workout/start", workoutHandler.HandleStart).Methods("POST", "OPTIONS").Name("start-workout")
	r.HandleFunc("/workout/active", workoutHandler.HandleActive).Methods("GET", "OPTIONS").Name("active-workout")
	r.HandleFunc("/workout/finish", workoutHandler.HandleFinish).Methods("POST", "OPTIONS").Name("finish-workout")
	r.HandleFunc("/workout/discard", workoutHandler.HandleDiscard).Methods("POST", "OPTIONS").Name("discard-workout")
	r.HandleFunc("/workout/exercises", workoutHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-exercise")
	r.HandleFunc("/workout/exercises/{exid}", workoutHandler.HandleUpdateExercise).Methods("PATCH", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/workout/exercises/{exid}", workoutHandler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-exercise")
	r.HandleFunc("/workout/exercises/{exid}/sets", workoutHandler.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")
	r.HandleFunc("/workout/exercises/{exid}/sets/{setid}", workoutHandler.HandleUpdateSet).Methods("PATCH", "OPTIONS").Name("update-set")
	r.HandleFunc("/workout/exercises/{exid}/sets/{setid}", workoutHandler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")
	r.HandleFunc("/workout/exercises/{exid}/sets/{setid}/toggle", workoutHandler.HandleToggleSet).Methods("POST", "OPTIONS").Name("toggle-set")
	r.HandleFunc("/workout/rest", workoutHandler.HandleStartRest).Methods("POST", "OPTIONS").Name("start-rest")
	r.HandleFunc("/workout/rest", workoutHandler.HandleRestStatus).Methods("GET", "OPTIONS").Name("rest-status")
	r.HandleFunc("/workout/rest", workoutHandler.HandleSkipRest).Methods("DELETE", "OPTIONS").Name("skip-rest")
	r.HandleFunc("/workouts", workoutHandler.HandleHistory).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{id}", workoutHandler.HandleDeleteWorkout).Methods("DELETE", "OPTIONS").Name("delete-workout")

	statsHandler := stats.NewHandler(s.analyzer)
	r.HandleFunc("/stats/progress", statsHandler.HandleProgress).Methods("GET", "OPTIONS").Name("stats-progress")
	r.HandleFunc("/stats/muscle-groups", statsHandler.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("stats-muscle-groups")
	r.HandleFunc("/stats/recovery", statsHandler.HandleRecovery).Methods("GET", "OPTIONS").Name("stats-recovery")
	r.HandleFunc("/stats/records", statsHandler.HandleRecords).Methods("GET", "OPTIONS").Name("stats-records")
	r.HandleFunc("/stats/intensity", statsHandler.HandleIntensity).Methods("GET", "OPTIONS").Name("stats-intensity")
	r.HandleFunc("/stats/one-rep-max", statsHandler.HandleOneRepMax).Methods("GET", "OPTIONS").Name("stats-one-rep-max")

	exercisesHandler := exercises.NewHandler(s.library)
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/groups", exercisesHandler.HandleGroups).Methods("GET", "OPTIONS").Name("exercise-groups")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")

	identityHandler := identity.NewHandler(s.identity)
	r.HandleFunc("/auth/signin", identityHandler.HandleSignIn).Methods("POST", "OPTIONS").Name("sign-in")
	r.HandleFunc("/auth/signout", identityHandler.HandleSignOut).Methods("POST", "OPTIONS").Name("sign-out")
	r.HandleFunc("/auth/whoami", identityHandler.HandleWhoAmI).Methods("GET", "OPTIONS").Name("whoami")

	mcpHandler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return s.mcpServer
	}, nil)
	r.PathPrefix("/mcp").Handler(otelhttp.NewHandler(mcpHandler, "mcp")).Name("mcp")

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(s.versionInfo))
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	if s.storage.RedisClient != nil {
		r.Use(middleware.RateLimitWrites(
			redis_rate.NewLimiter(s.storage.RedisClient),
			s.metricsManager,
			"main-router",
			s.config.WriteRateLimitPerMin,
		))
	}
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// GracefulShutdown stops the timers and both http servers, then releases storage.
// An active workout is not persisted.
func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Shutdown(ctx))
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		err = multierr.Append(err, s.metricsHttpServer.Shutdown(ctx))
		log.Warnln("metrics server shut down")
	}

	// after the servers drained, so no in-flight request restarts a timer
	s.restTimer.Close()
	s.workoutTimer.Close()
	if state, ok := s.sessionManager.State().(workout.Active); ok {
		log.Warnf("shutting down with active workout [%s], it will be lost", state.Workout.ID)
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	err = multierr.Append(err, s.storage.Close())

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if err != nil {
		log.Errorf(" >>> graceful shutdown: %s", err)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
