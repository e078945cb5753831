package walletvalidator

import (
	"github.com/turtlecoin/turtled/domain/address"
	"github.com/turtlecoin/turtled/domain/walletcrypto"
	"github.com/turtlecoin/turtled/domain/walleterrors"
	"github.com/turtlecoin/turtled/domain/wallettypes"
)

// ValidateAddresses verifies every address parses on this network. The
// first failing address decides the result.
func (v *Validator) ValidateAddresses(addresses []string, integratedAllowed bool) error {
	for _, addr := range addresses {
		if _, err := address.Decode(v.params, addr, integratedAllowed); err != nil {
			return err
		}
	}
	return nil
}

// ValidateOurAddresses verifies every address parses as a standard address
// and belongs to the wallet, i.e. its spend key is among the wallet's
// public spend keys.
func (v *Validator) ValidateOurAddresses(addresses []string) error {
	if err := v.ValidateAddresses(addresses, false); err != nil {
		return err
	}

	for _, addr := range addresses {
		parsed, err := address.Decode(v.params, addr, false)
		if err != nil {
			return err
		}

		if !v.spendKeys.HasPublicSpendKey(parsed.SpendKey) {
			return walleterrors.Newf(walleterrors.ErrAddressNotInWallet,
				"The address given (%s) does not exist in the wallet container, but it is required to exist for this operation", addr)
		}
	}
	return nil
}

// ValidateDestinations verifies the destination list is non-empty, every
// amount is non-zero, and every address parses. Integrated addresses are
// allowed.
func (v *Validator) ValidateDestinations(destinations []wallettypes.Destination) error {
	if len(destinations) == 0 {
		return walleterrors.New(walleterrors.ErrNoDestinationsGiven)
	}

	addresses := make([]string, 0, len(destinations))
	for _, destination := range destinations {
		if destination.Amount == 0 {
			return walleterrors.New(walleterrors.ErrAmountIsZero)
		}
		addresses = append(addresses, destination.Address)
	}

	return v.ValidateAddresses(addresses, true)
}

// ValidateIntegratedAddresses verifies that the whole destination set
// implies at most one distinct payment ID. The caller-supplied payment ID,
// if any, fixes the expected value; otherwise the first integrated
// destination does.
func (v *Validator) ValidateIntegratedAddresses(destinations []wallettypes.Destination, paymentID string) error {
	for _, destination := range destinations {
		if len(destination.Address) != v.params.IntegratedAddressLength {
			continue
		}

		parsed, err := address.Decode(v.params, destination.Address, true)
		if err != nil {
			return err
		}

		if paymentID == "" {
			paymentID = parsed.PaymentID
		} else if paymentID != parsed.PaymentID {
			return walleterrors.New(walleterrors.ErrConflictingPaymentIDs)
		}
	}
	return nil
}

// addressesToSpendKeys parses standard addresses into their public spend
// keys, for balance lookups.
func (v *Validator) addressesToSpendKeys(addresses []string) ([]walletcrypto.PublicKey, error) {
	spendKeys := make([]walletcrypto.PublicKey, 0, len(addresses))
	for _, addr := range addresses {
		parsed, err := address.Decode(v.params, addr, false)
		if err != nil {
			return nil, err
		}
		spendKeys = append(spendKeys, parsed.SpendKey)
	}
	return spendKeys, nil
}
