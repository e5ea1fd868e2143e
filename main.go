package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/geoip2api/geoip2api/api"
	"github.com/geoip2api/geoip2api/config"
	"github.com/geoip2api/geoip2api/geolib"
	"github.com/geoip2api/geoip2api/mmdb"
)

const (
	version = "0.1.0"

	shutdownTimeout = 10 * time.Second
)

var (
	app = kingpin.New(
		"geoip2api",
		"HTTP API for IP geolocation on MaxMind GeoIP2 databases")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("GEOIP2API_DEBUG").
		Bool()
	envFile = app.Flag("env-file", "Path to the .env file.").
		Default(".env").
		Envar("GEOIP2API_ENV_FILE").
		String()
	configFile = app.Arg("config-path", "Path to the config.").
			File()
)

func init() {
	app.Version(version)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := loadEnvFile(*envFile); err != nil {
		log.Fatal(err)
	}

	var configReader io.Reader

	if *configFile != nil {
		configReader = *configFile
		defer (*configFile).Close()
	}

	conf, err := config.Parse(configReader)
	if err != nil {
		log.Fatal(err)
	}

	setupLogging(conf.LogFormat, *debug)

	city, err := mmdb.OpenCity(conf.CityDB, conf.Locale)
	if err != nil {
		log.Fatal(err)
	}
	defer city.Close()

	isp, err := mmdb.OpenISP(conf.ISPDB)
	if err != nil {
		log.Fatal(err)
	}
	defer isp.Close()

	metrics := api.NewMetrics()
	resolver := geolib.NewResolver(geolib.NewCatalog(),
		metrics.InstrumentCity(city),
		metrics.InstrumentISP(isp))
	router := api.MakeServer(api.Options{
		Resolver:       resolver,
		Databases:      []api.DatabaseInfo{city, isp},
		Metrics:        metrics,
		RequestTimeout: conf.RequestTimeout,
	})

	handler, err := wrapHandler(router, conf)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:              conf.Listen,
		Handler:           handler,
		ReadHeaderTimeout: conf.RequestTimeout,
	}

	ctx, cancel := makeRootContext(func() {
		reopenDatabases(city, isp)
	})
	defer cancel()

	go func() {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithFields(log.Fields{"err": err}).Warn("cannot shutdown server gracefully")
		}
	}()

	log.WithFields(log.Fields{
		"listen":  conf.Listen,
		"version": version,
	}).Info("start server")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
