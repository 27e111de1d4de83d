/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/credentia/platform/cmd/common"
	"github.com/credentia/platform/pkg/observability/tracing"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the gateway-rest instance on. Format: HostName:Port."
	hostURLEnvKey        = "GATEWAY_REST_HOST_URL"

	redisURLFlagName  = "redis-url"
	redisURLEnvKey    = "GATEWAY_REST_REDIS_URL"
	redisURLFlagUsage = "Comma-separated list of redis addresses carrying the command bus. " +
		commonEnvVarUsageText + redisURLEnvKey

	redisMasterNameFlagName  = "redis-master-name"
	redisMasterNameEnvKey    = "GATEWAY_REST_REDIS_MASTER_NAME"
	redisMasterNameFlagUsage = "Redis sentinel master name. " +
		commonEnvVarUsageText + redisMasterNameEnvKey

	redisPasswordFlagName  = "redis-password"              //nolint:gosec
	redisPasswordEnvKey    = "GATEWAY_REST_REDIS_PASSWORD" //nolint:gosec
	redisPasswordFlagUsage = "Redis password. " +
		commonEnvVarUsageText + redisPasswordEnvKey

	redisDisableTLSFlagName  = "redis-disable-tls"
	redisDisableTLSEnvKey    = "GATEWAY_REST_REDIS_DISABLE_TLS"
	redisDisableTLSFlagUsage = "Disable TLS for the redis connection. Possible values: true, false (default: false). " +
		commonEnvVarUsageText + redisDisableTLSEnvKey

	callTimeoutFlagName  = "call-timeout"
	callTimeoutEnvKey    = "GATEWAY_REST_CALL_TIMEOUT"
	callTimeoutFlagUsage = "Upper bound for a single command call, as a Go duration (default: 15s). " +
		commonEnvVarUsageText + callTimeoutEnvKey

	retryCountFlagName  = "retry-count"
	retryCountEnvKey    = "GATEWAY_REST_RETRY_COUNT"
	retryCountFlagUsage = "Number of retries for idempotent commands on transient failures (default: 2). " +
		commonEnvVarUsageText + retryCountEnvKey

	metricsProviderFlagName  = "metrics-provider-name"
	metricsProviderEnvKey    = "GATEWAY_REST_METRICS_PROVIDER_NAME"
	metricsProviderFlagUsage = "The metrics provider name (supported: prometheus). " +
		commonEnvVarUsageText + metricsProviderEnvKey

	promHTTPURLFlagName  = "prom-http-url"
	promHTTPURLEnvKey    = "GATEWAY_REST_PROM_HTTP_URL"
	promHTTPURLFlagUsage = "URL that exposes the prometheus metrics endpoint. Format: HostName:Port. " +
		commonEnvVarUsageText + promHTTPURLEnvKey

	tracingExporterFlagName  = "tracing-exporter"
	tracingExporterEnvKey    = "GATEWAY_REST_TRACING_EXPORTER"
	tracingExporterFlagUsage = "Span exporter type (supported: JAEGER, STDOUT). Empty disables tracing. " +
		commonEnvVarUsageText + tracingExporterEnvKey
)

const defaultCallTimeout = 15 * time.Second

type startupParameters struct {
	hostURL         string
	redisURLs       []string
	redisMasterName string
	redisPassword   string
	redisDisableTLS bool
	callTimeout     time.Duration
	retryCount      uint64
	metricsProvider string
	promHTTPURL     string
	tracingExporter tracing.SpanExporterType
	logLevel        string
}

func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	redisURLs, err := cmdutils.GetUserSetVarFromArrayString(cmd, redisURLFlagName, redisURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	redisMasterName := cmdutils.GetUserSetOptionalVarFromString(cmd, redisMasterNameFlagName, redisMasterNameEnvKey)
	redisPassword := cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey)

	redisDisableTLS := false

	redisDisableTLSStr := cmdutils.GetUserSetOptionalVarFromString(cmd, redisDisableTLSFlagName, redisDisableTLSEnvKey)
	if redisDisableTLSStr != "" {
		redisDisableTLS, err = strconv.ParseBool(redisDisableTLSStr)
		if err != nil {
			return nil, err
		}
	}

	callTimeout := defaultCallTimeout

	callTimeoutStr := cmdutils.GetUserSetOptionalVarFromString(cmd, callTimeoutFlagName, callTimeoutEnvKey)
	if callTimeoutStr != "" {
		callTimeout, err = time.ParseDuration(callTimeoutStr)
		if err != nil {
			return nil, err
		}
	}

	var retryCount uint64 = 2

	retryCountStr := cmdutils.GetUserSetOptionalVarFromString(cmd, retryCountFlagName, retryCountEnvKey)
	if retryCountStr != "" {
		retryCount, err = strconv.ParseUint(retryCountStr, 10, 64)
		if err != nil {
			return nil, err
		}
	}

	metricsProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey)
	promHTTPURL := cmdutils.GetUserSetOptionalVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey)
	tracingExporter := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingExporterFlagName, tracingExporterEnvKey)
	logLevel := cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey)

	return &startupParameters{
		hostURL:         hostURL,
		redisURLs:       redisURLs,
		redisMasterName: redisMasterName,
		redisPassword:   redisPassword,
		redisDisableTLS: redisDisableTLS,
		callTimeout:     callTimeout,
		retryCount:      retryCount,
		metricsProvider: metricsProvider,
		promHTTPURL:     promHTTPURL,
		tracingExporter: tracingExporter,
		logLevel:        logLevel,
	}, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringArrayP(redisURLFlagName, "", []string{}, redisURLFlagUsage)
	startCmd.Flags().StringP(redisMasterNameFlagName, "", "", redisMasterNameFlagUsage)
	startCmd.Flags().StringP(redisPasswordFlagName, "", "", redisPasswordFlagUsage)
	startCmd.Flags().StringP(redisDisableTLSFlagName, "", "", redisDisableTLSFlagUsage)
	startCmd.Flags().StringP(callTimeoutFlagName, "", "", callTimeoutFlagUsage)
	startCmd.Flags().StringP(retryCountFlagName, "", "", retryCountFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", metricsProviderFlagUsage)
	startCmd.Flags().StringP(promHTTPURLFlagName, "", "", promHTTPURLFlagUsage)
	startCmd.Flags().StringP(tracingExporterFlagName, "", "", tracingExporterFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelFlagUsage)
}
