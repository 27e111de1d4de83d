/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
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
	hostURLFlagUsage     = "URL to serve the health and status endpoints on. Format: HostName:Port."
	hostURLEnvKey        = "AGENT_SERVICE_HOST_URL"

	redisURLFlagName  = "redis-url"
	redisURLEnvKey    = "AGENT_SERVICE_REDIS_URL"
	redisURLFlagUsage = "Comma-separated list of redis addresses carrying the command bus. " +
		commonEnvVarUsageText + redisURLEnvKey

	redisMasterNameFlagName  = "redis-master-name"
	redisMasterNameEnvKey    = "AGENT_SERVICE_REDIS_MASTER_NAME"
	redisMasterNameFlagUsage = "Redis sentinel master name. " +
		commonEnvVarUsageText + redisMasterNameEnvKey

	redisPasswordFlagName  = "redis-password"               //nolint:gosec
	redisPasswordEnvKey    = "AGENT_SERVICE_REDIS_PASSWORD" //nolint:gosec
	redisPasswordFlagUsage = "Redis password. " +
		commonEnvVarUsageText + redisPasswordEnvKey

	redisDisableTLSFlagName  = "redis-disable-tls"
	redisDisableTLSEnvKey    = "AGENT_SERVICE_REDIS_DISABLE_TLS"
	redisDisableTLSFlagUsage = "Disable TLS for the redis connection. Possible values: true, false (default: false). " +
		commonEnvVarUsageText + redisDisableTLSEnvKey

	databaseTypeFlagName      = "database-type"
	databaseTypeEnvKey        = "AGENT_SERVICE_DATABASE_TYPE"
	databaseTypeFlagShorthand = "t"
	databaseTypeFlagUsage     = "The type of database to use for the endorsement transaction store. " +
		"Supported options: mem, mongodb. " + commonEnvVarUsageText + databaseTypeEnvKey

	databaseURLFlagName      = "database-url"
	databaseURLEnvKey        = "AGENT_SERVICE_DATABASE_URL"
	databaseURLFlagShorthand = "v"
	databaseURLFlagUsage     = "The URL (or connection string) of the database. Not needed if using mem. " +
		"For mongodb include the mongodb://mongodb.example.com:27017. " +
		commonEnvVarUsageText + databaseURLEnvKey

	databasePrefixFlagName  = "database-prefix"
	databasePrefixEnvKey    = "AGENT_SERVICE_DATABASE_PREFIX"
	databasePrefixFlagUsage = "An optional prefix to be used when creating and retrieving underlying databases. " +
		commonEnvVarUsageText + databasePrefixEnvKey

	agentRequestTimeoutFlagName  = "agent-request-timeout"
	agentRequestTimeoutEnvKey    = "AGENT_SERVICE_AGENT_REQUEST_TIMEOUT"
	agentRequestTimeoutFlagUsage = "Upper bound for a single outbound agent API request, " +
		"as a Go duration (default: 30s). " + commonEnvVarUsageText + agentRequestTimeoutEnvKey

	handlerTimeoutFlagName  = "handler-timeout"
	handlerTimeoutEnvKey    = "AGENT_SERVICE_HANDLER_TIMEOUT"
	handlerTimeoutFlagUsage = "Upper bound for handling a single command when the envelope carries no deadline, " +
		"as a Go duration (default: 30s). " + commonEnvVarUsageText + handlerTimeoutEnvKey

	metricsProviderFlagName  = "metrics-provider-name"
	metricsProviderEnvKey    = "AGENT_SERVICE_METRICS_PROVIDER_NAME"
	metricsProviderFlagUsage = "The metrics provider name (supported: prometheus). " +
		commonEnvVarUsageText + metricsProviderEnvKey

	promHTTPURLFlagName  = "prom-http-url"
	promHTTPURLEnvKey    = "AGENT_SERVICE_PROM_HTTP_URL"
	promHTTPURLFlagUsage = "URL that exposes the prometheus metrics endpoint. Format: HostName:Port. " +
		commonEnvVarUsageText + promHTTPURLEnvKey

	tracingExporterFlagName  = "tracing-exporter"
	tracingExporterEnvKey    = "AGENT_SERVICE_TRACING_EXPORTER"
	tracingExporterFlagUsage = "Span exporter type (supported: JAEGER, STDOUT). Empty disables tracing. " +
		commonEnvVarUsageText + tracingExporterEnvKey
)

const (
	databaseTypeMemOption     = "mem"
	databaseTypeMongoDBOption = "mongodb"

	defaultAgentRequestTimeout = 30 * time.Second
	defaultHandlerTimeout      = 30 * time.Second
)

type startupParameters struct {
	hostURL             string
	redisURLs           []string
	redisMasterName     string
	redisPassword       string
	redisDisableTLS     bool
	databaseType        string
	databaseURL         string
	databasePrefix      string
	agentRequestTimeout time.Duration
	handlerTimeout      time.Duration
	metricsProvider     string
	promHTTPURL         string
	tracingExporter     tracing.SpanExporterType
	logLevel            string
}

//nolint:funlen,gocyclo
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

	databaseType, err := cmdutils.GetUserSetVarFromString(cmd, databaseTypeFlagName, databaseTypeEnvKey, false)
	if err != nil {
		return nil, err
	}

	if databaseType != databaseTypeMemOption && databaseType != databaseTypeMongoDBOption {
		return nil, fmt.Errorf("unsupported database type: %s", databaseType)
	}

	databaseURL, err := cmdutils.GetUserSetVarFromString(cmd, databaseURLFlagName, databaseURLEnvKey,
		databaseType == databaseTypeMemOption)
	if err != nil {
		return nil, err
	}

	databasePrefix := cmdutils.GetUserSetOptionalVarFromString(cmd, databasePrefixFlagName, databasePrefixEnvKey)

	agentRequestTimeout := defaultAgentRequestTimeout

	agentRequestTimeoutStr := cmdutils.GetUserSetOptionalVarFromString(cmd, agentRequestTimeoutFlagName,
		agentRequestTimeoutEnvKey)
	if agentRequestTimeoutStr != "" {
		agentRequestTimeout, err = time.ParseDuration(agentRequestTimeoutStr)
		if err != nil {
			return nil, err
		}
	}

	handlerTimeout := defaultHandlerTimeout

	handlerTimeoutStr := cmdutils.GetUserSetOptionalVarFromString(cmd, handlerTimeoutFlagName, handlerTimeoutEnvKey)
	if handlerTimeoutStr != "" {
		handlerTimeout, err = time.ParseDuration(handlerTimeoutStr)
		if err != nil {
			return nil, err
		}
	}

	metricsProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey)
	promHTTPURL := cmdutils.GetUserSetOptionalVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey)
	tracingExporter := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingExporterFlagName, tracingExporterEnvKey)
	logLevel := cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey)

	return &startupParameters{
		hostURL:             hostURL,
		redisURLs:           redisURLs,
		redisMasterName:     redisMasterName,
		redisPassword:       redisPassword,
		redisDisableTLS:     redisDisableTLS,
		databaseType:        databaseType,
		databaseURL:         databaseURL,
		databasePrefix:      databasePrefix,
		agentRequestTimeout: agentRequestTimeout,
		handlerTimeout:      handlerTimeout,
		metricsProvider:     metricsProvider,
		promHTTPURL:         promHTTPURL,
		tracingExporter:     tracingExporter,
		logLevel:            logLevel,
	}, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringArrayP(redisURLFlagName, "", []string{}, redisURLFlagUsage)
	startCmd.Flags().StringP(redisMasterNameFlagName, "", "", redisMasterNameFlagUsage)
	startCmd.Flags().StringP(redisPasswordFlagName, "", "", redisPasswordFlagUsage)
	startCmd.Flags().StringP(redisDisableTLSFlagName, "", "", redisDisableTLSFlagUsage)
	startCmd.Flags().StringP(databaseTypeFlagName, databaseTypeFlagShorthand, "", databaseTypeFlagUsage)
	startCmd.Flags().StringP(databaseURLFlagName, databaseURLFlagShorthand, "", databaseURLFlagUsage)
	startCmd.Flags().StringP(databasePrefixFlagName, "", "", databasePrefixFlagUsage)
	startCmd.Flags().StringP(agentRequestTimeoutFlagName, "", "", agentRequestTimeoutFlagUsage)
	startCmd.Flags().StringP(handlerTimeoutFlagName, "", "", handlerTimeoutFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", metricsProviderFlagUsage)
	startCmd.Flags().StringP(promHTTPURLFlagName, "", "", promHTTPURLFlagUsage)
	startCmd.Flags().StringP(tracingExporterFlagName, "", "", tracingExporterFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelFlagUsage)
}
