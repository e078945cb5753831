package main

import (
	"fmt"
)

func showMixinRange(conf *showMixinRangeConfig) error {
	params := conf.params()
	min, max, def := params.MixinBounds(conf.Height)

	fmt.Printf("Mixin bounds on %s at height %d:\n", params.Name, conf.Height)
	fmt.Printf("Minimum: %d\n", min)
	fmt.Printf("Maximum: %d\n", max)
	fmt.Printf("Default: %d\n", def)
	return nil
}
