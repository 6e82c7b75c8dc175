package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/jfcevallos/vetclinica-api/internal/handler"
	authhandler "github.com/jfcevallos/vetclinica-api/internal/handler/auth"
	citahandler "github.com/jfcevallos/vetclinica-api/internal/handler/cita"
	clinicahandler "github.com/jfcevallos/vetclinica-api/internal/handler/clinica"
	examenhandler "github.com/jfcevallos/vetclinica-api/internal/handler/examen"
	historiahandler "github.com/jfcevallos/vetclinica-api/internal/handler/historia"
	mascotahandler "github.com/jfcevallos/vetclinica-api/internal/handler/mascota"
	propietariohandler "github.com/jfcevallos/vetclinica-api/internal/handler/propietario"
	"github.com/jfcevallos/vetclinica-api/internal/middleware"
	"github.com/jfcevallos/vetclinica-api/pkg/auth"
)

type Config struct {
	RateLimitEnabled  bool
	RequestsPerSecond float64
	Burst             int
	CORS              middleware.CORSConfig
}

type Handlers struct {
	Auth        *authhandler.Handler
	Propietario *propietariohandler.Handler
	Mascota     *mascotahandler.Handler
	Historia    *historiahandler.Handler
	Examen      *examenhandler.Handler
	Cita        *citahandler.Handler
	Clinica     *clinicahandler.Handler
	Health      *handler.HealthHandler
}

type Router struct {
	engine  *gin.Engine
	metrics *routerMetrics
}

// New assembles the engine: middleware chain, probes, metrics and the
// whole public route table.
func New(cfg Config, handlers Handlers, tokens auth.TokenService, logger zerolog.Logger) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:  engine,
		metrics: newRouterMetrics(),
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		r.metricsMiddleware(),
		middleware.CORS(cfg.CORS),
	)

	if cfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  rate.Limit(cfg.RequestsPerSecond),
			Burst: cfg.Burst,
		})
		engine.Use(limiter.RateLimit())
	}

	root := engine.Group("")
	handlers.Health.RegisterRoutes(root)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	handlers.Auth.RegisterRoutes(api, middleware.VerifyToken(tokens))
	handlers.Propietario.RegisterRoutes(api)
	handlers.Mascota.RegisterRoutes(api)
	handlers.Historia.RegisterRoutes(api)
	handlers.Examen.RegisterRoutes(api)
	handlers.Cita.RegisterRoutes(api)
	handlers.Clinica.RegisterRoutes(api)

	// The pet delete endpoint has always lived outside /api.
	eliminar := engine.Group("/eliminar")
	handlers.Mascota.RegisterDeleteRoute(eliminar)

	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func newRouterMetrics() *routerMetrics {
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "vetclinica_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vetclinica_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vetclinica_errors_total",
				Help: "Total number of HTTP error responses",
			},
			[]string{"method", "path"},
		),
	}
	prometheus.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// FullPath keeps the :id placeholder so cardinality stays bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path).Inc()
		}
	}
}
