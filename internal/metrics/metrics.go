package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/kosuga/ticker/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Wheel/runner metrics

	WheelSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ticker",
		Name:      "wheel_size",
		Help:      "Current number of distinct time-point keys in the wheel.",
	})

	PastWheelSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ticker",
		Name:      "past_wheel_size",
		Help:      "Current number of drained buckets retained in the past wheel.",
	})

	JobsDispatchedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ticker",
		Name:      "jobs_dispatched_total",
		Help:      "Total jobs handed to the worker pool, by kind.",
	}, []string{"kind"})

	JobExecutionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ticker",
		Name:      "job_execution_duration_seconds",
		Help:      "Duration of a job callback's execution on the worker pool.",
		Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 10, 30},
	})

	JobExecutionErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ticker",
		Name:      "job_execution_errors_total",
		Help:      "Total job callback panics recovered by the runner's dispatch.",
	})

	// Worker pool metrics

	PoolActiveWorkers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ticker",
		Name:      "pool_active_workers",
		Help:      "Number of workers currently executing a task.",
	})

	PoolTotalWorkers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ticker",
		Name:      "pool_total_workers",
		Help:      "Fixed size of the worker pool.",
	})

	// Runner loop metrics

	RunnerLoopIterationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ticker",
		Name:      "runner_loop_iterations_total",
		Help:      "Total iterations of the runner's wake-scan-dispatch loop.",
	})

	RunnerSleepSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ticker",
		Name:      "runner_sleep_seconds",
		Help:      "Computed sleep duration chosen by the runner each iteration.",
		Buckets:   []float64{0, .001, .01, .1, .5, 1, 3, 10},
	})
)

// Register adds all ticker metrics to the default Prometheus registry.
func Register() {
	prometheus.MustRegister(
		WheelSize,
		PastWheelSize,
		JobsDispatchedTotal,
		JobExecutionDuration,
		JobExecutionErrorsTotal,
		PoolActiveWorkers,
		PoolTotalWorkers,
		RunnerLoopIterationsTotal,
		RunnerSleepSeconds,
	)
}

// NewServer builds a debug HTTP server exposing /metrics, /healthz and
// /readyz. This is observability plumbing only — the scheduler itself has
// no wire protocol; nothing here is part of the job-registration API.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		result := checker.Readiness(r.Context())
		status := http.StatusOK
		if result.Status != "up" {
			status = http.StatusServiceUnavailable
		}
		w.WriteHeader(status)
		writeHealth(w, result)
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeHealth(w http.ResponseWriter, result health.Result) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}
