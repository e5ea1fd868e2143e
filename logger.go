package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/geoip2api/geoip2api/config"
)

func setupLogging(format string, debug bool) {
	switch format {
	case config.LogFormatJSON:
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{})
	}

	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
