package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-коллекторов сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках передаётся nil.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	remoteLookupsTotal  *prometheus.CounterVec
	fallbacksTotal      *prometheus.CounterVec
	storageErrorsTotal  *prometheus.CounterVec
	emailsTotal         *prometheus.CounterVec
	stepSavesTotal      *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		remoteLookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "remote_lookups_total",
			Help:        "Calls to external reference data services by outcome",
			ConstLabels: constLabels,
		}, []string{"source", "outcome"}),
		fallbacksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "fallbacks_total",
			Help:        "Resolutions served from cache or bundled tables instead of a remote source",
			ConstLabels: constLabels,
		}, []string{"resolver", "reason"}),
		storageErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "session_storage_errors_total",
			Help:        "Swallowed session storage failures",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		emailsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "emails_total",
			Help:        "Outgoing emails by kind and outcome",
			ConstLabels: constLabels,
		}, []string{"kind", "outcome"}),
		stepSavesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "quote_step_saves_total",
			Help:        "Quote entity writes and session resets",
			ConstLabels: constLabels,
		}, []string{"entity"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.remoteLookupsTotal,
		m.fallbacksTotal,
		m.storageErrorsTotal,
		m.emailsTotal,
		m.stepSavesTotal,
	)

	return m
}

// ObserveHTTP учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveRemote учитывает обращение к внешнему справочному сервису
func (m *Metrics) ObserveRemote(source, outcome string) {
	if m == nil {
		return
	}
	m.remoteLookupsTotal.WithLabelValues(source, outcome).Inc()
}

// ObserveFallback учитывает переход на кэш или встроенные данные
func (m *Metrics) ObserveFallback(resolver, reason string) {
	if m == nil {
		return
	}
	m.fallbacksTotal.WithLabelValues(resolver, reason).Inc()
}

// ObserveStorageError учитывает проглоченную ошибку хранилища сессии
func (m *Metrics) ObserveStorageError(operation string) {
	if m == nil {
		return
	}
	m.storageErrorsTotal.WithLabelValues(operation).Inc()
}

// ObserveEmail учитывает отправку письма
func (m *Metrics) ObserveEmail(kind, outcome string) {
	if m == nil {
		return
	}
	m.emailsTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveStepSave учитывает запись сущности заявки (или сброс сессии)
func (m *Metrics) ObserveStepSave(entity string) {
	if m == nil {
		return
	}
	m.stepSavesTotal.WithLabelValues(entity).Inc()
}
