// NumberClassifierService is a web service that describes the mathematical properties of a number.
//
// For an integer given in the "number" query parameter it reports whether the number is prime,
// perfect or an Armstrong number, its parity, the sum of its digits and a fun fact.
// Fun facts come from the numbers API; when that API is slow or unavailable a fact is generated locally,
// so the endpoint always answers.
// It also provides Prometheus metrics for monitoring and recording metrics.
//
// The following endpoints are available:
//
//  1. GET /api/classify-number?number=<value> - Classify a number
//  2. GET /health - Report service health
//  3. GET /metrics - Display Prometheus metrics
//
// Configuration is read from flags, environment variables and an optional .env file; run with --help for the list.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"NumberClassifierService/config"
	"NumberClassifierService/funfact"
	"NumberClassifierService/handlers"
	"NumberClassifierService/server"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("No .env file loaded")
	}

	app := &cli.App{
		Name:   "numberclassifier",
		Usage:  "serve the number classification API",
		Flags:  config.Flags(),
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c)
	if err != nil {
		return err
	}
	log, err := cfg.NewLogger()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	resolver := funfact.NewResolver(
		funfact.NewClient(cfg.NumbersAPIURL, cfg.NumbersAPITimeout),
		log,
		funfact.NewMetrics(registry),
	)
	classifier := handlers.NewClassifyHandler(resolver, log)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.New(cfg, classifier, registry, log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.NumbersAPITimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("Shutting down server")
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			log.Error("Shutdown error: " + err.Error())
		}
	}()

	log.WithField("numbers_api", cfg.NumbersAPIURL).Info("Server listening on " + cfg.Addr())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
