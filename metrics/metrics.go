// Package metrics exposes Prometheus metrics of the file server.
package metrics

import (
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shirou/gopsutil/cpu"
)

const timeObserve = 1 * time.Second

type Metrics struct {
	CPU              prometheus.Gauge
	AllocatedMemory  prometheus.Gauge
	RequestsNow      prometheus.Gauge
	Requests         prometheus.Counter
	ResponseBodySize prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "todoserv_cpu_usage",
			Help: "CPU usage",
		}),
		AllocatedMemory: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "todoserv_allocated_memory",
		}),
		RequestsNow: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "todoserv_requests_are_being_processed",
			Help: "How many requests are being processed",
		}),
		Requests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "todoserv_requests_were_processed",
			Help: "How many requests were processed since startup",
		}),
		ResponseBodySize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "todoserv_response_body_size",
			Buckets: prometheus.ExponentialBuckets(256, 4, 8),
		}),
	}
	reg.MustRegister(
		m.CPU,
		m.AllocatedMemory,
		m.RequestsNow,
		m.Requests,
		m.ResponseBodySize,
	)
	return m
}

var reg *prometheus.Registry
var GlobalMetrics *Metrics

func UpdateCPU() {
	p, err := cpu.Percent(0, false)
	if err == nil {
		GlobalMetrics.CPU.Set(p[0])
	}
}

func UpdateMemory() {
	m := runtime.MemStats{}
	runtime.ReadMemStats(&m)
	GlobalMetrics.AllocatedMemory.Set(float64(m.Alloc))
}

// IncRequestsNow is a no-op until Init has been called.
func IncRequestsNow() {
	if GlobalMetrics != nil {
		GlobalMetrics.RequestsNow.Inc()
	}
}

// DecRequestsNow is a no-op until Init has been called.
func DecRequestsNow() {
	if GlobalMetrics != nil {
		GlobalMetrics.RequestsNow.Dec()
	}
}

// IncRequests is a no-op until Init has been called.
func IncRequests() {
	if GlobalMetrics != nil {
		GlobalMetrics.Requests.Inc()
	}
}

// UpdateResponseBodySize is a no-op until Init has been called.
func UpdateResponseBodySize(size float64) {
	if GlobalMetrics != nil {
		GlobalMetrics.ResponseBodySize.Observe(size)
	}
}

// Init creates the registry and starts the CPU and memory observer.
func Init() {
	reg = prometheus.NewRegistry()
	GlobalMetrics = NewMetrics(reg)
	go func() {
		t := time.NewTicker(timeObserve)
		for {
			<-t.C
			UpdateCPU()
			UpdateMemory()
		}
	}()
}

func Handler() http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
