package walletvalidator

import (
	"github.com/turtlecoin/turtled/domain/wallettypes"
)

// ValidateTransaction runs the full pre-flight pipeline over the
// parameters of a send. Checks run in the listed order and the first
// failure is returned; a nil result means the transaction may be built.
func (v *Validator) ValidateTransaction(destinations []wallettypes.Destination, mixin uint64,
	fee wallettypes.FeeType, paymentID string, subWalletsToTakeFrom []string, changeAddress string,
	height uint64) error {

	return runChecks([]func() error{
		// The destinations themselves: non-empty, non-zero amounts,
		// parseable addresses.
		func() error { return v.ValidateDestinations(destinations) },

		// Integrated destinations must all agree on one payment ID.
		func() error { return v.ValidateIntegratedAddresses(destinations, paymentID) },

		// The sub-wallets to take funds from must exist in the wallet.
		func() error { return v.ValidateOurAddresses(subWalletsToTakeFrom) },

		// The wallet must have enough unlocked funds.
		func() error { return v.ValidateAmount(destinations, fee, subWalletsToTakeFrom, height) },

		// The mixin must be allowed at the current height.
		func() error { return v.ValidateMixin(mixin, height) },

		// The payment ID, if given, must be well formed.
		func() error { return v.ValidatePaymentID(paymentID) },

		// Change must return to an address the wallet owns.
		func() error { return v.ValidateOurAddresses([]string{changeAddress}) },
	})
}

// ValidateFusionTransaction runs the pre-flight pipeline for a fusion
// (consolidation) transaction, in the listed order.
func (v *Validator) ValidateFusionTransaction(mixin uint64, subWalletsToTakeFrom []string,
	destinationAddress string, height uint64, optimizeTarget *uint64) error {

	return runChecks([]func() error{
		func() error { return v.ValidateMixin(mixin, height) },
		func() error { return v.ValidateOurAddresses(subWalletsToTakeFrom) },
		func() error { return v.ValidateOurAddresses([]string{destinationAddress}) },
		func() error { return v.ValidateOptimizeTarget(optimizeTarget) },
	})
}
