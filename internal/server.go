package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/physioroutines/internal/api"
	"github.com/2beens/physioroutines/internal/catalog"
	"github.com/2beens/physioroutines/internal/config"
	"github.com/2beens/physioroutines/internal/db"
	"github.com/2beens/physioroutines/internal/middleware"
	"github.com/2beens/physioroutines/internal/storage"
	"github.com/2beens/physioroutines/internal/telemetry/metrics"
	"github.com/2beens/physioroutines/internal/telemetry/tracing"
	"github.com/2beens/physioroutines/internal/tracker"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	backend     storage.Backend
	redisClient *redis.Client
	tracker     *tracker.Tracker
	catalog     *catalog.Catalog

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	PostgresPassword        string
	S3AccessKeyID           string
	S3SecretAccessKey       string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "physio-routines")
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		if params.HoneycombTracingEnabled {
			rdb.AddHook(redisotel.NewTracingHook())
		}

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	} else {
		log.Warnln("redis not configured, rate limiting disabled")
	}

	openParams := &storage.OpenParams{
		Driver:          cfg.Driver(),
		FileRootPath:    cfg.FileRootPath,
		MemorySizeBytes: cfg.MemorySizeMB * 1024 * 1024,
		RedisClient:     rdb,
		Postgres: db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.HoneycombTracingEnabled,
		},
		SqlitePath: cfg.SqlitePath,
		S3: storage.S3Params{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			PathStyle:       cfg.S3PathStyle,
			Prefix:          cfg.S3Prefix,
			AccessKeyID:     params.S3AccessKeyID,
			SecretAccessKey: params.S3SecretAccessKey,
		},
	}
	backend, err := storage.Open(ctx, openParams)
	if err != nil {
		closeRedis(rdb)
		return nil, fmt.Errorf("open storage [%s]: %w", cfg.StorageDriver, err)
	}
	log.Infof("using [%s] storage", cfg.StorageDriver)

	var pgxpoolCollector prometheus.Collector
	if openParams.PostgresPool != nil {
		pgxpoolCollector = pgxpoolprometheus.NewCollector(
			openParams.PostgresPool,
			map[string]string{"db_name": cfg.PostgresName},
		)
	}
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("physio", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	trk, err := tracker.Open(ctx, tracker.Params{
		Backend: backend,
		Key:     cfg.DocumentKey,
	})
	if err != nil {
		_ = backend.Close()
		closeRedis(rdb)
		return nil, fmt.Errorf("open tracker: %w", err)
	}

	var seed []catalog.Exercise
	if cfg.CatalogSeedPath != "" {
		seed, err = catalog.LoadSeedFile(cfg.CatalogSeedPath)
		if err != nil {
			_ = backend.Close()
			closeRedis(rdb)
			return nil, fmt.Errorf("load catalog seed: %w", err)
		}
	}
	var catalogOpts []catalog.Option
	if cfg.CatalogKey != "" {
		catalogOpts = append(catalogOpts, catalog.WithKey(cfg.CatalogKey))
	}
	exercisesCatalog := catalog.Load(ctx, backend, seed, catalogOpts...)

	return &Server{
		config:      cfg,
		backend:     backend,
		redisClient: rdb,
		tracker:     trk,
		catalog:     exercisesCatalog,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func closeRedis(rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if err := rdb.Close(); err != nil {
		log.Errorf("failed to close redis client conn: %s", err)
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	api.NewHandler(s.tracker, s.catalog, s.metricsManager).SetupRoutes(r)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	if s.redisClient != nil {
		r.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			s.metricsManager,
			"main-router",
			s.config.RateLimitPerMin,
		))
	}
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:           s.routerSetup(),
		Addr:              ipAndPort,
		WriteTimeout:      time.Minute,
		ReadTimeout:       time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		ConnState:         s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.MetricsHost, strconv.Itoa(s.config.MetricsPort))
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

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests first, the document may still be written to
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	// closes the db pool too, for the postgres backend
	if err := s.backend.Close(); err != nil {
		log.Errorf("failed to close storage: %s", err)
	}
	closeRedis(s.redisClient)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeOpenConnections.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeOpenConnections.Add(-1)
	default:
		// do nothing
	}
}
