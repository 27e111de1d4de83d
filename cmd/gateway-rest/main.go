/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package gateway-rest exposes the platform command catalog over REST.
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/credentia/platform/cmd/gateway-rest/startcmd"
)

var logger = log.New("gateway-rest")

func main() {
	rootCmd := &cobra.Command{
		Use: "gateway-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run gateway-rest", log.WithError(err))
	}
}
