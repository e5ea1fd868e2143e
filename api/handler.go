package api

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"

	"github.com/geoip2api/geoip2api/geolib"
	"github.com/geoip2api/geoip2api/mmdb"
)

// StatusCode maps result kind to HTTP status code. Both unknown and
// unimplemented resources are answered with 418.
func StatusCode(kind geolib.Kind) int {
	switch kind {
	case geolib.KindSuccess:
		return http.StatusOK
	case geolib.KindNoData:
		return http.StatusNoContent
	case geolib.KindMalformedInput:
		return http.StatusNotAcceptable
	case geolib.KindUnknownResource, geolib.KindNotImplemented:
		return http.StatusTeapot
	}

	return http.StatusInternalServerError
}

type handler struct {
	resolver  *geolib.Resolver
	databases []DatabaseInfo
	metrics   *Metrics
}

func (h *handler) curated(w http.ResponseWriter, req *http.Request) {
	h.resolve(w, chi.URLParam(req, "ip"), geolib.ModeCurated())
}

func (h *handler) complete(w http.ResponseWriter, req *http.Request) {
	h.resolve(w, chi.URLParam(req, "ip"), geolib.ModeComplete())
}

func (h *handler) single(w http.ResponseWriter, req *http.Request) {
	h.resolve(w, chi.URLParam(req, "ip"), geolib.ModeSingle(chi.URLParam(req, "resource")))
}

func (h *handler) self(w http.ResponseWriter, req *http.Request) {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		// RealIP middleware sets remote address without a port.
		host = req.RemoteAddr
	}

	h.resolve(w, host, geolib.ModeCurated())
}

func (h *handler) info(w http.ResponseWriter, req *http.Request) {
	response := struct {
		Results []mmdb.Info `json:"results"`
	}{
		Results: make([]mmdb.Info, 0, len(h.databases)),
	}

	for _, v := range h.databases {
		response.Results = append(response.Results, v.Info())
	}

	h.encodeJSON(w, response)
}

func (h *handler) resolve(w http.ResponseWriter, ip string, mode geolib.Mode) {
	result := h.resolver.Resolve(ip, mode)

	if h.metrics != nil {
		h.metrics.observeResponse(mode, result.Kind)
	}

	if !result.OK() {
		w.WriteHeader(StatusCode(result.Kind))

		return
	}

	h.encodeJSON(w, result.Fields)
}

func (h *handler) encodeJSON(w http.ResponseWriter, data interface{}) {
	encoder := json.NewEncoder(w)

	w.Header().Set("Content-Type", "application/json")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(data); err != nil {
		log.WithFields(log.Fields{"err": err}).Warn("cannot write response")
	}
}
