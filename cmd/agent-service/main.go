/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package agent-service handles platform commands against tenant cloud agents.
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/credentia/platform/cmd/agent-service/startcmd"
)

var logger = log.New("agent-service")

func main() {
	rootCmd := &cobra.Command{
		Use: "agent-service",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run agent-service", log.WithError(err))
	}
}
