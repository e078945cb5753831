package walletvalidator

import (
	"math"

	"github.com/turtlecoin/turtled/domain/walleterrors"
	"github.com/turtlecoin/turtled/domain/wallettypes"
)

// ValidateAmount verifies the wallet can cover the transaction: the
// per-byte fee rate meets the network minimum, the amounts sum without
// overflowing, and the unlocked balance of the source addresses (all
// sub-wallets if none are given) covers the destinations plus any fixed
// fee.
//
// Fee rates other than a fixed fee can only be fully settled against the
// constructed transaction, so only the cases decidable in advance are
// rejected here. A FeeType with no model selected panics: that is a defect
// in the caller, not user input.
func (v *Validator) ValidateAmount(destinations []wallettypes.Destination, fee wallettypes.FeeType,
	sourceAddresses []string, height uint64) error {

	if !fee.IsSpecified() {
		panic("programmer error: fee type not specified")
	}

	if fee.IsFeePerByte() && fee.FeePerByteRate() < v.params.MinimumFeePerByte {
		return walleterrors.Newf(walleterrors.ErrFeeTooSmall,
			"The fee per byte given (%v) is lower than the minimum allowed fee per byte (%v)",
			fee.FeePerByteRate(), v.params.MinimumFeePerByte)
	}

	spendKeys, err := v.addressesToSpendKeys(sourceAddresses)
	if err != nil {
		return err
	}

	// Take from all sub-wallets if no source addresses were specified.
	availableBalance, _ := v.balances.Balance(spendKeys, len(sourceAddresses) == 0, height)

	amounts := make([]uint64, 0, len(destinations)+1)
	if fee.IsFixedFee() {
		amounts = append(amounts, fee.FixedFeeAmount())
	}
	for _, destination := range destinations {
		amounts = append(amounts, destination.Amount)
	}

	totalAmount, ok := sumNoOverflow(amounts)
	if !ok {
		return walleterrors.New(walleterrors.ErrWillOverflow)
	}

	if totalAmount > availableBalance {
		return walleterrors.Newf(walleterrors.ErrNotEnoughBalance,
			"Not enough unlocked funds were found to cover this transaction (have %d, need %d)",
			availableBalance, totalAmount)
	}

	return nil
}

// sumNoOverflow adds amounts with a running bound check, so the sum is
// never allowed to wrap.
func sumNoOverflow(amounts []uint64) (total uint64, ok bool) {
	for _, amount := range amounts {
		if amount > math.MaxUint64-total {
			return 0, false
		}
		total += amount
	}
	return total, true
}
