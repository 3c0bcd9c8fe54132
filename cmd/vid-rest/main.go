/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main runs the Verified ID relay: it submits issuance and presentation requests to the
// authority, receives its callbacks and answers browser status polls.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/verifiedid-relay/cmd/vid-rest/startcmd"
)

var logger = log.New("vid-rest")
var Version string // will be embeded during build

func main() {
	rootCmd := &cobra.Command{
		Use: "vid-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(
		startcmd.WithVersion(Version),
		startcmd.WithServerVersion(os.Getenv("VID_SERVER_VERSION")),
	))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run vid-rest", log.WithError(err))
	}
}
