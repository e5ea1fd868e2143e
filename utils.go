package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"

	"github.com/geoip2api/geoip2api/config"
)

type reopener interface {
	Reopen() error
}

// makeRootContext returns a context which is cancelled on SIGINT or
// SIGTERM. SIGHUP calls reload instead.
func makeRootContext(reload func()) (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for sig := range sigChan {
			if sig == syscall.SIGHUP {
				reload()

				continue
			}

			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	return rootCtx, cancel
}

func reopenDatabases(readers ...reopener) {
	for _, v := range readers {
		if err := v.Reopen(); err != nil {
			log.WithFields(log.Fields{"err": err}).Error("cannot reopen database")
		}
	}
}

// loadEnvFile puts variables from .env file into environment. Absent
// file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return errors.Annotatef(err, "cannot load env file %s", path)
	}

	return nil
}

func wrapHandler(handler http.Handler, conf *config.Config) (http.Handler, error) {
	if conf.BasicAuth.Enabled() {
		handler = &basicAuthMiddleware{
			handler:  handler,
			user:     []byte(conf.BasicAuth.User),
			password: []byte(conf.BasicAuth.Password),
		}
	}

	if len(conf.AllowedNetworks) > 0 {
		networksHandler, err := newAllowedNetworksMiddleware(handler, conf.AllowedNetworks)
		if err != nil {
			return nil, errors.Annotate(err, "cannot build allowed networks")
		}

		handler = networksHandler
	}

	return handler, nil
}
