package server

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/services/employees"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewRouter builds the gin engine: HTML templates, logging and metrics
// middleware, the employee routes, and the operational endpoints.
func NewRouter(
	log *slog.Logger,
	service employees.EmployeeServiceIface,
	mts *metrics.Metrics,
	reg *prometheus.Registry,
	pinger DBPinger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(requestLogger(log), observeRequests(mts), gin.Recovery())
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	NewEmployeeHandler(log, service).RegisterRoutes(router)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/employees")
	})
	router.GET("/healthz", gin.WrapH(NewHealthChecker(pinger, log)))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	return router
}

// requestLogger logs one line per request through slog.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.InfoContext(c.Request.Context(), "request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// observeRequests records per-route counters and latency histograms. The
// route pattern keeps label cardinality bounded.
func observeRequests(mts *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		mts.HTTPRequestDuration.WithLabelValues(handler).Observe(time.Since(start).Seconds())
		mts.HTTPRequestsTotal.WithLabelValues(handler, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
