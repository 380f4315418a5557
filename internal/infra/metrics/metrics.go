package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Количество HTTP-запросов",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Длительность обработки HTTP-запросов",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	HTTPPanicsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "http_panics_total",
		Help: "Паники, перехваченные на границе запроса",
	})

	StorageErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storage_errors_total",
		Help: "Ошибки обращения к хранилищу отзывов",
	})

	FeedbackCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feedback_created_total",
		Help: "Созданные отзывы",
	})

	FeedbackUpdatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feedback_updated_total",
		Help: "Обновлённые отзывы",
	})

	FeedbackDeletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feedback_deleted_total",
		Help: "Удалённые отзывы",
	})
)

// MustRegister регистрирует метрики.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		HTTPPanicsTotal,
		StorageErrorsTotal,
		FeedbackCreatedTotal,
		FeedbackUpdatedTotal,
		FeedbackDeletedTotal,
	)
}

// ObserveRequest записывает длительность и статус обработанного запроса.
func ObserveRequest(method, path string, status int, start time.Time) {
	if path == "" {
		path = "unknown"
	}
	if status == 0 {
		status = 200
	}
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
}
