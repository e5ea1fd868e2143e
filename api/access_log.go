package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/mileusna/useragent"
	log "github.com/sirupsen/logrus"
)

func isCrawler(req *http.Request) bool {
	return useragent.Parse(req.UserAgent()).Bot
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		wrapped := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(wrapped, req)

		status := wrapped.Status()
		if status == 0 {
			status = http.StatusOK
		}

		log.WithFields(log.Fields{
			"method":   req.Method,
			"path":     req.URL.Path,
			"status":   status,
			"bytes":    wrapped.BytesWritten(),
			"duration": time.Since(start),
			"remote":   req.RemoteAddr,
			"crawler":  isCrawler(req),
		}).Info("request")
	})
}
