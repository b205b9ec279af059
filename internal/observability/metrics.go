package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	usersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "users",
		Name:      "created_total",
		Help:      "Number of users created.",
	})
	exercisesLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "exercises",
		Name:      "logged_total",
		Help:      "Number of exercises logged.",
	})
	minutesLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "exercises",
		Name:      "minutes_logged_total",
		Help:      "Sum of the durations of all logged exercises, in minutes.",
	})
	logEntriesServed = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "exercise_tracker",
		Subsystem: "logs",
		Name:      "entries_per_response",
		Help:      "Number of entries returned per log request.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 500},
	})
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "exercise_tracker",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(usersCreated, exercisesLogged, minutesLogged, logEntriesServed, httpRequests, httpDuration)
}

// RecordUserCreated counts a newly stored user.
func RecordUserCreated() {
	usersCreated.Inc()
}

// RecordExerciseLogged counts a stored exercise and its duration.
func RecordExerciseLogged(minutes int) {
	exercisesLogged.Inc()
	if minutes > 0 {
		minutesLogged.Add(float64(minutes))
	}
}

// RecordLogServed observes the size of a returned log.
func RecordLogServed(entries int) {
	logEntriesServed.Observe(float64(entries))
}

// ObserveHTTPRequest records one handled request. route should be the
// matched pattern, not the raw path, to keep label cardinality bounded.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
