package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/geoip2api/geoip2api/geolib"
	"github.com/geoip2api/geoip2api/mmdb"
)

// DatabaseInfo is something which can describe an opened database.
type DatabaseInfo interface {
	Info() mmdb.Info
}

// Options configures a server. Resolver is mandatory; Metrics is
// optional, /metrics is not routed without it.
type Options struct {
	Resolver       *geolib.Resolver
	Databases      []DatabaseInfo
	Metrics        *Metrics
	RequestTimeout time.Duration
}

func MakeServer(opts Options) *chi.Mux {
	router := chi.NewRouter()
	h := &handler{
		resolver:  opts.Resolver,
		databases: opts.Databases,
		metrics:   opts.Metrics,
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(timeout))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(accessLog)

	router.Route("/v1", func(r chi.Router) {
		r.Get("/info", h.info)
		r.Get("/ip", h.self)
		r.Get("/ip/{ip}", h.curated)
		r.Get("/ip/{ip}/all", h.complete)
		r.Get("/ip/{ip}/{resource}", h.single)
	})

	if opts.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	return router
}
