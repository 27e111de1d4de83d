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
	"go.opentelemetry.io/otel/trace"

	"github.com/credentia/platform/cmd/common"
	"github.com/credentia/platform/internal/logfields"
	"github.com/credentia/platform/pkg/agentservice"
	"github.com/credentia/platform/pkg/client/agent"
	"github.com/credentia/platform/pkg/commands"
	"github.com/credentia/platform/pkg/locker"
	"github.com/credentia/platform/pkg/messaging/redismq"
	"github.com/credentia/platform/pkg/messaging/router"
	"github.com/credentia/platform/pkg/messaging/rpc"
	"github.com/credentia/platform/pkg/observability/health/healthutil"
	mongocheck "github.com/credentia/platform/pkg/observability/health/mongo"
	redischeck "github.com/credentia/platform/pkg/observability/health/redis"
	"github.com/credentia/platform/pkg/observability/metrics"
	metricsProvider "github.com/credentia/platform/pkg/observability/metrics/noop"
	"github.com/credentia/platform/pkg/observability/metrics/prometheus"
	"github.com/credentia/platform/pkg/observability/tracing"
	endorsementtracing "github.com/credentia/platform/pkg/observability/tracing/wrappers/endorsement"
	"github.com/credentia/platform/pkg/service/endorsement"
	"github.com/credentia/platform/pkg/service/exchange"
	"github.com/credentia/platform/pkg/service/ledger"
	"github.com/credentia/platform/pkg/service/wallet"
	"github.com/credentia/platform/pkg/storage/inmemory/endorsementtxstore"
	"github.com/credentia/platform/pkg/storage/mongodb"
	mongotxstore "github.com/credentia/platform/pkg/storage/mongodb/endorsementtxstore"
)

var logger = log.New("agent-service")

const (
	databaseName = "agent_service"

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
		Short: "Start agent-service",
		Long:  "Start the agent-facing command handler service",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return err
			}

			return startService(params)
		},
	}
}

//nolint:funlen
func startService(params *startupParameters) error {
	if params.logLevel != "" {
		common.SetDefaultLogLevel(logger, params.logLevel)
	}

	shutdownTracer, tracer, err := tracing.Initialize(params.tracingExporter, "agent-service")
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

	agentClient := agent.NewClient(agent.WithHTTPClient(&http.Client{
		Timeout: params.agentRequestTimeout,
	}))

	endorsementSvc, closeStore, err := createEndorsementService(params, bus, agentClient, m, tracer)
	if err != nil {
		return err
	}
	defer closeStore()

	walletSvc, err := wallet.NewService(&wallet.Config{AgentClient: agentClient})
	if err != nil {
		return fmt.Errorf("create wallet service: %w", err)
	}

	ledgerSvc, err := ledger.NewService(&ledger.Config{AgentClient: agentClient})
	if err != nil {
		return fmt.Errorf("create ledger service: %w", err)
	}

	exchangeSvc, err := exchange.NewService(&exchange.Config{AgentClient: agentClient})
	if err != nil {
		return fmt.Errorf("create exchange service: %w", err)
	}

	controller, err := agentservice.NewController(&agentservice.Config{
		WalletService:      walletSvc,
		LedgerService:      ledgerSvc,
		ExchangeService:    exchangeSvc,
		EndorsementService: endorsementSvc,
	})
	if err != nil {
		return fmt.Errorf("create controller: %w", err)
	}

	builder := router.NewBuilder()

	if err := controller.Bind(builder); err != nil {
		return fmt.Errorf("bind command handlers: %w", err)
	}

	server, err := rpc.NewServer(bus, commands.AgentServiceTopic, builder.Build(),
		rpc.WithHandlerTimeout(params.handlerTimeout),
		rpc.WithServerMetrics(m),
	)
	if err != nil {
		return fmt.Errorf("create rpc server: %w", err)
	}
	defer server.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	registerHealthCheck(e, params)

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("starting agent-service status server", logfields.WithAddress(params.hostURL))

		if err := e.Start(params.hostURL); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("agent-service status server: %w", err)
	case sig := <-interrupt:
		logger.Info("shutting down on signal: " + sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracePeriod)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown agent-service status server: %w", err)
	}

	return nil
}

func createEndorsementService(params *startupParameters, bus *redismq.Bus, agentClient *agent.Client,
	m metrics.Metrics, tracer trace.Tracer) (*endorsementtracing.Wrapper, func(), error) {
	cfg := &endorsement.Config{
		AgentClient: agentClient,
		Metrics:     m,
	}

	closeStore := func() {}

	switch params.databaseType {
	case databaseTypeMongoDBOption:
		mongoClient, err := mongodb.New(params.databaseURL, params.databasePrefix+databaseName)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to mongodb: %w", err)
		}

		mongoStore, err := mongotxstore.New(context.Background(), mongoClient)
		if err != nil {
			mongoClient.Close() //nolint:errcheck,gosec

			return nil, nil, fmt.Errorf("create endorsement tx store: %w", err)
		}

		cfg.TransactionStore = mongoStore
		cfg.Locker = locker.NewRedisLocker(bus.Client())
		closeStore = func() {
			if err := mongoClient.Close(); err != nil {
				logger.Warn("error closing mongodb client", log.WithError(err))
			}
		}
	default:
		cfg.TransactionStore = endorsementtxstore.New()
		cfg.Locker = locker.NewKeyedMutex()
	}

	svc, err := endorsement.NewService(cfg)
	if err != nil {
		closeStore()

		return nil, nil, fmt.Errorf("create endorsement service: %w", err)
	}

	return endorsementtracing.Wrap(svc, tracer), closeStore, nil
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

	checks := []health.Check{
		{
			Name:  "redis",
			Check: redischeck.New(params.redisURLs, checkOpts...),
		},
	}

	if params.databaseType == databaseTypeMongoDBOption {
		checks = append(checks, health.Check{
			Name:  "mongodb",
			Check: mongocheck.New(params.databaseURL),
		})
	}

	opts := []health.CheckerOption{
		health.WithTimeout(healthCheckTimeout),
		health.WithInterceptors(healthutil.ResponseTimeInterceptor(responseTimes)),
	}

	for _, check := range checks {
		opts = append(opts, health.WithCheck(check))
	}

	checker := health.NewChecker(opts...)

	e.GET("/healthcheck", echo.WrapHandler(health.NewHandler(checker,
		health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimes)))))
}
