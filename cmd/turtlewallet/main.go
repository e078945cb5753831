package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func main() {
	subCmd, config := parseCommandLine()

	var err error
	switch subCmd {
	case inspectSubCmd:
		conf := config.(*inspectConfig)
		err = runWithLog(&conf.networkFlags, func() error { return inspect(conf) })
	case validateSubCmd:
		conf := config.(*validateConfig)
		err = runWithLog(&conf.networkFlags, func() error { return validate(conf) })
	case showMixinRangeSubCmd:
		conf := config.(*showMixinRangeConfig)
		err = runWithLog(&conf.networkFlags, func() error { return showMixinRange(conf) })
	default:
		err = errors.Errorf("unknown sub-command '%s'", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
}

func runWithLog(flags *networkFlags, run func() error) error {
	err := initLog(flags)
	if err != nil {
		return err
	}
	defer backendLog.Close()
	return run()
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
