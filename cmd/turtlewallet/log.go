package main

import (
	"github.com/pkg/errors"
	"github.com/turtlecoin/turtled/infrastructure/logger"
)

var (
	backendLog = logger.NewBackend()
	log        = backendLog.Logger("TTWL")
)

// initLog configures the shared logger from the common command line flags.
// Without a log file the logger stays off.
func initLog(flags *networkFlags) error {
	level, ok := logger.LevelFromString(flags.LogLevel)
	if !ok {
		return errors.Errorf("unknown log level: %s", flags.LogLevel)
	}
	if flags.LogFile != "" {
		err := backendLog.AddLogFile(flags.LogFile, level)
		if err != nil {
			return err
		}
	}
	log.SetLevel(level)
	return backendLog.Run()
}
