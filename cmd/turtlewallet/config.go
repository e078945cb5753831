package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/turtlecoin/turtled/netparams"
)

const (
	inspectSubCmd        = "inspect"
	validateSubCmd       = "validate"
	showMixinRangeSubCmd = "showMixinRange"
)

type networkFlags struct {
	Simnet   bool   `long:"simnet" description:"Use the simulation test network"`
	LogFile  string `long:"logfile" description:"Write logs to this file, with rotation"`
	LogLevel string `long:"loglevel" short:"d" default:"info" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
}

func (f *networkFlags) params() *netparams.Params {
	if f.Simnet {
		return &netparams.SimnetParams
	}
	return &netparams.MainnetParams
}

type inspectConfig struct {
	Address string `long:"address" short:"a" description:"The address to decode" required:"true"`
	networkFlags
}

type validateConfig struct {
	Addresses       []string `long:"address" short:"a" description:"An address to validate, may be given multiple times" required:"true"`
	AllowIntegrated bool     `long:"allow-integrated" short:"i" description:"Accept integrated addresses as well as standard ones"`
	networkFlags
}

type showMixinRangeConfig struct {
	Height uint64 `long:"height" short:"b" description:"The block height to look the mixin bounds up at" required:"true"`
	networkFlags
}

func parseCommandLine() (subCommand string, config interface{}) {
	parser := flags.NewParser(nil, flags.PrintErrors|flags.HelpFlag)

	inspectConf := &inspectConfig{}
	parser.AddCommand(inspectSubCmd, "Decodes an address",
		"Decodes a standard or integrated address and prints its network tag, "+
			"public keys and embedded payment ID", inspectConf)

	validateConf := &validateConfig{}
	parser.AddCommand(validateSubCmd, "Validates addresses",
		"Checks that every given address parses, carries the expected network "+
			"tag and holds well-formed public keys", validateConf)

	showMixinRangeConf := &showMixinRangeConfig{}
	parser.AddCommand(showMixinRangeSubCmd, "Shows the mixin bounds at a height",
		"Shows the minimum, maximum and default mixin the network enforces at "+
			"the given block height", showMixinRangeConf)

	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
		return "", nil
	}

	switch parser.Command.Active.Name {
	case inspectSubCmd:
		config = inspectConf
	case validateSubCmd:
		config = validateConf
	case showMixinRangeSubCmd:
		config = showMixinRangeConf
	}

	return parser.Command.Active.Name, config
}
