// Package handlers implements the quote API endpoints and the operational
// endpoints under /-/.
package handlers

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/lifequote/internal/ports"
)

// BuildInfo describes the running binary. Values come from ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo fills in the Go toolchain version.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{Version: version, Commit: commit, BuildTime: buildTime, GoVersion: runtime.Version()}
}

// HealthHandler serves liveness, readiness, build info and metrics.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
	metrics   http.Handler
}

// NewHealthHandler exposes metrics from gatherer, or the default Prometheus
// gatherer when nil.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo, gatherer prometheus.Gatherer) *HealthHandler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
		metrics:   promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
	}
}

type statusResponse struct {
	Status string                        `json:"status"`
	Checks map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Liveness answers 200 while the process runs. It never touches the store.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// Readiness answers 200 when every registered check passes, which includes
// pinging the document store, and 503 otherwise.
func (h *HealthHandler) Readiness(c *gin.Context) {
	result := h.registry.CheckAll(c.Request.Context())

	code := http.StatusOK
	if result.Status != ports.HealthStatusHealthy {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, statusResponse{Status: string(result.Status), Checks: result.Checks})
}

// Build returns the BuildInfo.
func (h *HealthHandler) Build(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// Metrics serves the Prometheus exposition format.
func (h *HealthHandler) Metrics(c *gin.Context) {
	h.metrics.ServeHTTP(c.Writer, c.Request)
}

// RegisterRoutes mounts /-/live, /-/ready, /-/build and /-/metrics.
func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	ops := r.Group("/-")
	ops.GET("/live", h.Liveness)
	ops.GET("/ready", h.Readiness)
	ops.GET("/build", h.Build)
	ops.GET("/metrics", h.Metrics)
}
