package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/geoip2api/geoip2api/geolib"
)

const metricsNamespace = "geoip2api"

// Metrics keeps Prometheus collectors of the service in its own registry.
type Metrics struct {
	registry  *prometheus.Registry
	responses *prometheus.CounterVec
	lookups   *prometheus.HistogramVec
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// InstrumentCity wraps reader to measure lookup durations.
func (m *Metrics) InstrumentCity(reader geolib.CityReader) geolib.CityReader {
	return &instrumentedCityReader{
		reader:   reader,
		observer: m.lookups.WithLabelValues(geolib.TableCity.String()),
	}
}

// InstrumentISP wraps reader to measure lookup durations.
func (m *Metrics) InstrumentISP(reader geolib.ISPReader) geolib.ISPReader {
	return &instrumentedISPReader{
		reader:   reader,
		observer: m.lookups.WithLabelValues(geolib.TableISP.String()),
	}
}

func (m *Metrics) observeResponse(mode geolib.Mode, kind geolib.Kind) {
	m.responses.WithLabelValues(mode.String(), kind.String()).Inc()
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		responses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "responses_total",
				Help:      "Counts lookup responses by mode and result kind",
			},
			[]string{"mode", "kind"},
		),
		lookups: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "lookup_duration_seconds",
				Help:      "Histogram of database lookup durations",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 12),
			},
			[]string{"table"},
		),
	}

	m.registry.MustRegister(
		m.responses,
		m.lookups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

type instrumentedCityReader struct {
	reader   geolib.CityReader
	observer prometheus.Observer
}

func (i *instrumentedCityReader) LookupCity(ip string) (geolib.CityRecord, error) {
	timer := prometheus.NewTimer(i.observer)
	defer timer.ObserveDuration()

	return i.reader.LookupCity(ip)
}

type instrumentedISPReader struct {
	reader   geolib.ISPReader
	observer prometheus.Observer
}

func (i *instrumentedISPReader) LookupISP(ip string) (geolib.ISPRecord, error) {
	timer := prometheus.NewTimer(i.observer)
	defer timer.ObserveDuration()

	return i.reader.LookupISP(ip)
}
