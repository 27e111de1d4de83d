/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"

	"github.com/credentia/platform/cmd/common"
	"github.com/credentia/platform/internal/logfields"
	"github.com/credentia/platform/pkg/gateway"
	"github.com/credentia/platform/pkg/messaging/redismq"
	"github.com/credentia/platform/pkg/messaging/rpc"
	"github.com/credentia/platform/pkg/observability/health/healthutil"
	redischeck "github.com/credentia/platform/pkg/observability/health/redis"
	"github.com/credentia/platform/pkg/observability/metrics"
	metricsProvider "github.com/credentia/platform/pkg/observability/metrics/noop"
	"github.com/credentia/platform/pkg/observability/metrics/prometheus"
	"github.com/credentia/platform/pkg/observability/tracing"
	"github.com/credentia/platform/pkg/restapi/resterr"
	"github.com/credentia/platform/pkg/restapi/v1/platform"
)

var logger = log.New("gateway-rest")

const (
	healthCheckTimeout     = 10 * time.Second
	gracePeriod            = 10 * time.Second
	prometheusProviderName = "prometheus"
)

// GetStartCmd returns the Cobra start command.
func GetStartCmd() *cobra.Command {
	startCmd := createStartCmd()

	createFlags(startCmd)

	return startCmd
}

func createStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start gateway-rest",
		Long:  "Start the REST gateway for the credential platform command bus",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return err
			}

			return startGateway(params)
		},
	}
}

func startGateway(params *startupParameters) error { //nolint:funlen
	if params.logLevel != "" {
		common.SetDefaultLogLevel(logger, params.logLevel)
	}

	shutdownTracer, _, err := tracing.Initialize(params.tracingExporter, "gateway-rest")
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer shutdownTracer()

	m, destroyMetrics, err := createMetrics(params)
	if err != nil {
		return err
	}
	defer destroyMetrics()

	bus, err := createBus(params)
	if err != nil {
		return err
	}
	defer bus.Close() //nolint:errcheck

	client, err := rpc.NewClient(bus,
		rpc.WithCallTimeout(params.callTimeout),
		rpc.WithClientMetrics(m),
	)
	if err != nil {
		return fmt.Errorf("create rpc client: %w", err)
	}
	defer client.Stop()

	gw := gateway.New(&gateway.Config{
		Caller:     client,
		RetryCount: params.retryCount,
	})

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler
	e.Use(echomw.Recover())

	registerHealthCheck(e, params)

	platform.NewController(&platform.Config{Gateway: gw}).RegisterRoutes(e.Group("/v1"))

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("starting gateway-rest server", logfields.WithAddress(params.hostURL))

		if err := e.Start(params.hostURL); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("gateway-rest server: %w", err)
	case sig := <-interrupt:
		logger.Info("shutting down on signal: " + sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracePeriod)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown gateway-rest server: %w", err)
	}

	return nil
}

func createBus(params *startupParameters) (*redismq.Bus, error) {
	opts := []redismq.Opt{
		redismq.WithTraceProvider(otel.GetTracerProvider()),
	}

	if params.redisMasterName != "" {
		opts = append(opts, redismq.WithMasterName(params.redisMasterName))
	}

	if params.redisPassword != "" {
		opts = append(opts, redismq.WithPassword(params.redisPassword))
	}

	if !params.redisDisableTLS {
		opts = append(opts, redismq.WithTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}))
	}

	bus, err := redismq.New(params.redisURLs, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to redis bus: %w", err)
	}

	return bus, nil
}

func createMetrics(params *startupParameters) (metrics.Metrics, func(), error) {
	if params.metricsProvider != prometheusProviderName {
		return metricsProvider.GetMetrics(), func() {}, nil
	}

	provider := prometheus.NewPrometheusProvider(&http.Server{Addr: params.promHTTPURL})

	if err := provider.Create(); err != nil {
		return nil, nil, fmt.Errorf("create prometheus provider: %w", err)
	}

	return provider.Metrics(), func() {
		if err := provider.Destroy(); err != nil {
			logger.Warn("destroy prometheus provider", log.WithError(err))
		}
	}, nil
}

func registerHealthCheck(e *echo.Echo, params *startupParameters) {
	responseTimes := healthutil.NewResponseTimes()

	checkOpts := []redischeck.ClientOpt{}

	if params.redisMasterName != "" {
		checkOpts = append(checkOpts, redischeck.WithMasterName(params.redisMasterName))
	}

	if params.redisPassword != "" {
		checkOpts = append(checkOpts, redischeck.WithPassword(params.redisPassword))
	}

	if !params.redisDisableTLS {
		checkOpts = append(checkOpts, redischeck.WithTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}))
	}

	checker := health.NewChecker(
		health.WithTimeout(healthCheckTimeout),
		health.WithInterceptors(healthutil.ResponseTimeInterceptor(responseTimes)),
		health.WithCheck(health.Check{
			Name:  "redis",
			Check: redischeck.New(params.redisURLs, checkOpts...),
		}),
	)

	e.GET("/healthcheck", echo.WrapHandler(health.NewHandler(checker,
		health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimes)))))
}
