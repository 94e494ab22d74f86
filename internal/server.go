package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	fittrackmcp "github.com/2beens/fittrack/internal/mcp"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/misc"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/streak"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workout"
)

const maxRequestBodyBytes = 1 << 20

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	checker     *middleware.HashChecker

	workouts        *workout.Service
	streaks         *streak.Service
	nutrition       *nutrition.Aggregator
	nutritionWriter nutrition.Writer

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AppSecretHash           string
	RedisPassword           string
	HoneycombTracingEnabled bool

	// RedisClient replaces the client built from config, used in tests.
	RedisClient *redis.Client
	// HTTPClient is used by the http nutrition provider; a traced client by default.
	HTTPClient *http.Client
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	s := &Server{
		config:         cfg,
		versionInfo:    params.VersionInfo,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   func() {},
	}
	if params.AppSecretHash != "" {
		s.checker = middleware.NewHashChecker(params.AppSecretHash)
	}

	if params.HoneycombTracingEnabled {
		// use honeycomb distro to setup OpenTelemetry SDK
		otelShutdown, err := tracing.HoneycombSetup()
		if err != nil {
			return nil, err
		}
		s.otelShutdown = otelShutdown
	}

	var repo workout.Repo
	switch cfg.Storage {
	case config.StoragePostgres:
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		s.dbPool = dbPool

		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		if err := db.MigratePool(ctx, dbPool); err != nil {
			return nil, fmt.Errorf("migrate db: %w", err)
		}
		if err := metrics.RegisterDBPool(promRegistry, dbPool, cfg.PostgresDBName); err != nil {
			return nil, fmt.Errorf("register db pool collector: %w", err)
		}
		repo = workout.NewPsqlRepo(dbPool)
	default:
		log.Warnln("using in-memory storage, workouts will not survive a restart")
		repo = workout.NewMemoryRepo()
	}

	rdb := params.RedisClient
	if rdb == nil {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
	}
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}
	s.redisClient = rdb

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	s.workouts = workout.NewService(repo, metricsManager)
	s.streaks = streak.NewService(
		s.workouts,
		streak.NewRedisCache(rdb, cfg.StreakCacheTTL()),
		cfg.Location(),
		metricsManager,
	)
	s.workouts.OnSessionCompleted(s.streaks.HandleSessionCompleted)

	nutritionCacheTTL := time.Duration(cfg.NutritionCacheTTLSeconds) * time.Second
	var provider *nutrition.CachedProvider
	switch cfg.NutritionProvider {
	case config.NutritionProviderHTTP:
		httpClient := params.HTTPClient
		if httpClient == nil {
			httpClient = &http.Client{
				Transport: otelhttp.NewTransport(http.DefaultTransport),
				Timeout:   10 * time.Second,
			}
		}
		provider = nutrition.NewCachedProvider(
			nutrition.NewHTTPProvider(cfg.NutritionAPIURL, httpClient),
			nil,
			nutritionCacheTTL,
		)
	default:
		if s.dbPool == nil {
			return nil, errors.New("postgres nutrition provider without db pool")
		}
		psqlProvider := nutrition.NewPsqlProvider(s.dbPool)
		provider = nutrition.NewCachedProvider(psqlProvider, psqlProvider, nutritionCacheTTL)
	}
	if provider.Writable() {
		s.nutritionWriter = provider
	}
	s.nutrition = nutrition.NewAggregator(provider, cfg.Location(), metricsManager)

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	misc.NewHandler(s.versionInfo).SetupRoutes(r)

	workoutHandler := workout.NewHandler(s.workouts)
	r.HandleFunc("/definitions", workoutHandler.HandleListDefinitions).Methods("GET", "OPTIONS").Name("list-definitions")

	mcpServer := fittrackmcp.NewServer(fittrackmcp.NewHandler(s.workouts, s.streaks, s.nutrition, s.config.Location()))
	r.PathPrefix("/mcp").Handler(fittrackmcp.NewHTTPHandler(mcpServer)).Name("mcp")

	// everything below acts on behalf of an owner
	owned := r.NewRoute().Subrouter()
	owned.Use(middleware.RequireOwner())

	owned.HandleFunc("/templates", workoutHandler.HandleListTemplates).Methods("GET", "OPTIONS").Name("list-templates")
	owned.HandleFunc("/templates", workoutHandler.HandleCreateTemplate).Methods("POST", "OPTIONS").Name("new-template")
	owned.HandleFunc("/templates/{id}", workoutHandler.HandleDeleteTemplate).Methods("DELETE", "OPTIONS").Name("delete-template")
	owned.HandleFunc("/templates/{id}/sessions", workoutHandler.HandleInstantiateTemplate).Methods("POST", "OPTIONS").Name("instantiate-template")

	owned.HandleFunc("/sessions", workoutHandler.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")
	owned.HandleFunc("/sessions", workoutHandler.HandleCreateSession).Methods("POST", "OPTIONS").Name("new-session")
	owned.HandleFunc("/sessions/{id}", workoutHandler.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	owned.HandleFunc("/sessions/{id}/exercises/{exercise}/sets/{set}", workoutHandler.HandleSetCompletion).Methods("PUT", "OPTIONS").Name("set-completion")
	owned.HandleFunc("/sessions/{id}/complete", workoutHandler.HandleCompleteSession).Methods("POST", "OPTIONS").Name("complete-session")

	streakHandler := streak.NewHandler(s.streaks)
	owned.HandleFunc("/streak", streakHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-streak")

	nutritionHandler := nutrition.NewHandler(s.nutrition, s.nutritionWriter)
	owned.HandleFunc("/nutrition/week", nutritionHandler.HandleWeek).Methods("GET", "OPTIONS").Name("nutrition-week")
	owned.HandleFunc("/nutrition/days/{date}", nutritionHandler.HandleUpsertDay).Methods("PUT", "OPTIONS").Name("nutrition-upsert-day")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	// a typed nil checker must not reach the interface
	authMiddleware := middleware.NewAuthMiddlewareHandler(nil)
	if s.checker != nil {
		authMiddleware = middleware.NewAuthMiddlewareHandler(s.checker)
	}

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	if s.config.RateLimitAllowedPerMin > 0 && s.redisClient != nil {
		r.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"main",
			s.config.RateLimitAllowedPerMin,
			s.metricsManager,
		))
	}
	r.Use(middleware.DrainAndCloseRequest(maxRequestBodyBytes))

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
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{Registry: s.promRegistry},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
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

// GracefulShutdown stops the listeners first, then releases backing stores.
func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return err
}
