// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"crypto/tls"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moov-io/signup/admin"

	"github.com/go-kit/kit/metrics/prometheus"
	"github.com/go-kit/log"
	"github.com/gorilla/mux"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	httpAddr  = flag.String("http.addr", ":8080", "HTTP listen address")
	adminAddr = flag.String("admin.addr", ":9090", "Admin HTTP listen address")

	logger log.Logger = log.NewNopLogger()

	// Metrics
	signups = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "account_signups",
		Help: "Count of signup attempts by outcome",
	}, []string{"status"})

	internalServerErrors = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "internal_server_errors",
		Help: "Count of how many 500's we've returned",
	}, nil)
)

const Version = "0.2.0-dev"

func main() {
	flag.Parse()

	// Setup logging, default to stderr
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	logger = log.With(logger, "caller", log.DefaultCaller)
	logger.Log("startup", fmt.Sprintf("Starting signup server version %s", Version))

	if err := admin.Init(); err != nil {
		logger.Log("admin", err)
		os.Exit(1)
	}

	// Listen for application termination.
	errs := make(chan error)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, closer, err := setupAccountRepository(ctx, logger)
	if err != nil {
		logger.Log("storage", err)
		os.Exit(1)
	}
	defer closer.Close()

	controller := newSignupController(
		logger,
		newEmailValidator(),
		newDBAddAccount(newBcryptEncrypter(getBcryptCost()), repo),
	)

	router := mux.NewRouter()
	addSignupRoutes(router, logger, controller)

	serve := &http.Server{
		Addr:    *httpAddr,
		Handler: router,
		TLSConfig: &tls.Config{
			InsecureSkipVerify:       false,
			PreferServerCipherSuites: true,
			MinVersion:               tls.VersionTLS12,
		},
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	shutdownServer := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := serve.Shutdown(ctx); err != nil {
			logger.Log("shutdown", err)
		}
	}

	adminServer := admin.NewServer(*adminAddr)
	go func() {
		logger.Log("admin", fmt.Sprintf("Starting admin service on %s", adminServer.BindAddress()))
		if err := adminServer.Listen(); err != nil && err != http.ErrServerClosed {
			logger.Log("admin", "shutting down", "error", err)
		}
	}()

	go func() {
		logger.Log("transport", "HTTP", "addr", *httpAddr)
		errs <- serve.ListenAndServe()
	}()

	if err := <-errs; err != nil {
		adminServer.Shutdown()
		shutdownServer()
		logger.Log("exit", err)
	}
}
