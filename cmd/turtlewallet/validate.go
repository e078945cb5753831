package main

import (
	"fmt"

	"github.com/turtlecoin/turtled/domain/walletvalidator"
)

func validate(conf *validateConfig) error {
	params := conf.params()
	validator := walletvalidator.New(&walletvalidator.Config{Params: params})

	err := validator.ValidateAddresses(conf.Addresses, conf.AllowIntegrated)
	if err != nil {
		return err
	}

	log.Infof("Validated %d addresses on %s", len(conf.Addresses), params.Name)
	fmt.Printf("All %d addresses are valid on %s\n", len(conf.Addresses), params.Name)
	return nil
}
