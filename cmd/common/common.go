/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/verifiedid-relay/internal/logfields"
)

const (
	// LogLevelFlagName is the flag name used for setting the log levels.
	LogLevelFlagName = "log-level"
	// LogLevelEnvKey is the env var name used for setting the log levels.
	LogLevelEnvKey = "LOG_LEVEL"
	// LogLevelFlagShorthand is the shorthand flag name used for setting the log levels.
	LogLevelFlagShorthand = "l"
	// LogLevelPrefixFlagUsage is the usage text for the log level flag.
	LogLevelPrefixFlagUsage = "Sets logging levels for individual modules as well as the default level. " +
		"The format of the string is as follows: module1=level1:module2=level2:defaultLevel. " +
		"Supported levels are: CRITICAL, ERROR, WARNING, INFO, DEBUG. " +
		"Example: callback=DEBUG:authority-client=WARNING:INFO. " +
		"Defaults to info if not set. Setting to debug may adversely impact performance. Alternatively, this can be " +
		"set with the following environment variable: " + LogLevelEnvKey
)

const logSpecErrorMsg = `Invalid log spec. It needs to be in the following format: ` +
	`"ModuleName1=Level1:ModuleName2=Level2:ModuleNameN=LevelN:AllOtherModuleDefaultLevel". ` +
	`Defaulting to info.`

// LogLevelFlag registers the log level flag on cmd.
func LogLevelFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(LogLevelFlagName, LogLevelFlagShorthand, "", LogLevelPrefixFlagUsage)
}

// LogLevel returns the log spec set by flag or environment variable, or an empty string.
func LogLevel(cmd *cobra.Command) string {
	return cmdutils.GetUserSetOptionalVarFromString(cmd, LogLevelFlagName, LogLevelEnvKey)
}

// SetLogLevels applies a log spec such as "callback=DEBUG:INFO". An invalid spec resets every
// module to info.
func SetLogLevels(logger *log.Log, logSpec string) {
	if err := log.SetSpec(logSpec); err != nil {
		logger.Warn(logSpecErrorMsg, logfields.WithUserLogLevel(logSpec), log.WithError(err))

		log.SetLevel("", log.INFO)

		return
	}

	if log.GetLevel("") == log.DEBUG {
		logger.Info(`Log level set to "debug". Performance may be adversely impacted.`)
	}

	logger.Info("Successfully set log levels", logfields.WithUserLogLevel(log.GetSpec()))
}
