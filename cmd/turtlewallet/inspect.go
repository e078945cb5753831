package main

import (
	"fmt"

	"github.com/turtlecoin/turtled/domain/address"
)

func inspect(conf *inspectConfig) error {
	params := conf.params()
	log.Infof("Decoding address on %s", params.Name)

	parsed, err := address.Decode(params, conf.Address, true)
	if err != nil {
		return err
	}

	fmt.Printf("Network:     %s (tag %d)\n", params.Name, parsed.Tag)
	fmt.Printf("Spend key:   %s\n", parsed.SpendKey)
	fmt.Printf("View key:    %s\n", parsed.ViewKey)
	if parsed.PaymentID != "" {
		fmt.Printf("Payment ID:  %s\n", parsed.PaymentID)
	}
	return nil
}
