package walletvalidator

import (
	"strconv"

	"github.com/turtlecoin/turtled/domain/walletcrypto"
	"github.com/turtlecoin/turtled/domain/walleterrors"
)

const hashLength = 64

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// ValidateHash verifies that hash is a 64-character hex string.
func (v *Validator) ValidateHash(hash string) error {
	if len(hash) != hashLength {
		return walleterrors.New(walleterrors.ErrHashWrongLength)
	}
	if !isHex(hash) {
		return walleterrors.New(walleterrors.ErrHashInvalid)
	}
	return nil
}

// ValidatePaymentID verifies that paymentID is either empty (no payment ID)
// or a 64-character hex string.
func (v *Validator) ValidatePaymentID(paymentID string) error {
	if paymentID == "" {
		return nil
	}
	if len(paymentID) != v.params.PaymentIDLength {
		return walleterrors.New(walleterrors.ErrPaymentIDWrongLength)
	}
	if !isHex(paymentID) {
		return walleterrors.New(walleterrors.ErrPaymentIDInvalid)
	}
	return nil
}

// ValidatePrivateKey verifies that key is a well-formed scalar.
func (v *Validator) ValidatePrivateKey(key walletcrypto.SecretKey) error {
	if !v.keyChecker.IsValidSecretKey(key) {
		return walleterrors.New(walleterrors.ErrInvalidPrivateKey)
	}
	return nil
}

// ValidatePublicKey verifies that key is a well-formed curve point.
func (v *Validator) ValidatePublicKey(key walletcrypto.PublicKey) error {
	if !v.keyChecker.IsValidPublicKey(key) {
		return walleterrors.New(walleterrors.ErrInvalidPublicKey)
	}
	return nil
}

// ValidateMixin verifies that mixin lies within the bounds the network
// enforces at the given height.
func (v *Validator) ValidateMixin(mixin uint64, height uint64) error {
	min, max, _ := v.mixins.MixinBounds(height)

	if mixin < min {
		return walleterrors.Newf(walleterrors.ErrMixinTooSmall,
			"The mixin value given (%d) is lower than the minimum mixin allowed (%d)", mixin, min)
	}
	if mixin > max {
		return walleterrors.Newf(walleterrors.ErrMixinTooBig,
			"The mixin value given (%d) is greater than the maximum mixin allowed (%d)", mixin, max)
	}
	return nil
}

// ValidateOptimizeTarget verifies that the fusion optimize target, if any,
// is a round amount: its first decimal digit followed only by zeros. A nil
// target means no preference and is always valid.
func (v *Validator) ValidateOptimizeTarget(optimizeTarget *uint64) error {
	if optimizeTarget == nil {
		return nil
	}
	target := *optimizeTarget

	// First digit times ten to the remaining length. Zero and single
	// digit targets trivially equal their own rounding.
	str := strconv.FormatUint(target, 10)
	validTarget := uint64(str[0] - '0')
	for i := 1; i < len(str); i++ {
		validTarget *= 10
	}

	if target != validTarget {
		return walleterrors.Newf(walleterrors.ErrAmountUgly,
			"The optimize target given (%d) is not a single digit followed by zeros", target)
	}
	return nil
}
