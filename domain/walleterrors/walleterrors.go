package walleterrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode identifies the validation rule a set of transaction parameters
// violated. The code is the stable identity callers should branch on; the
// description attached to a ValidationError is diagnostic only and is meant
// to be surfaced to the end user unmodified.
type ErrorCode uint8

// These constants enumerate every rule the pre-flight validation of a
// transaction can fail on.
const (
	// ErrAddressWrongLength indicates an address that is neither the
	// standard nor the integrated textual length.
	ErrAddressWrongLength ErrorCode = iota

	// ErrAddressWrongPrefix indicates an address that does not begin with
	// the network's human-readable prefix.
	ErrAddressWrongPrefix

	// ErrAddressNotBase58 indicates an address that fails base58 decoding
	// or its embedded checksum.
	ErrAddressNotBase58

	// ErrAddressNotValid indicates an address whose decoded payload does
	// not deserialize into a well-formed key pair.
	ErrAddressNotValid

	// ErrAddressIsIntegrated indicates an integrated address supplied for
	// a parameter that only accepts standard addresses.
	ErrAddressIsIntegrated

	// ErrAddressNotInWallet indicates an address whose spend key is not
	// held by the wallet, where ownership is required.
	ErrAddressNotInWallet

	// ErrIntegratedPaymentIDInvalid indicates an integrated address whose
	// embedded payment ID is malformed.
	ErrIntegratedPaymentIDInvalid

	// ErrConflictingPaymentIDs indicates that the destination set implies
	// more than one distinct payment ID.
	ErrConflictingPaymentIDs

	// ErrNoDestinationsGiven indicates an empty destination list.
	ErrNoDestinationsGiven

	// ErrAmountIsZero indicates a destination with a zero amount.
	ErrAmountIsZero

	// ErrHashWrongLength indicates a hash that is not exactly 64
	// characters.
	ErrHashWrongLength

	// ErrHashInvalid indicates a hash containing non-hexadecimal
	// characters.
	ErrHashInvalid

	// ErrPaymentIDWrongLength indicates a non-empty payment ID that is not
	// exactly 64 characters.
	ErrPaymentIDWrongLength

	// ErrPaymentIDInvalid indicates a payment ID containing
	// non-hexadecimal characters.
	ErrPaymentIDInvalid

	// ErrInvalidPrivateKey indicates a private key that is not a canonical
	// ed25519 scalar.
	ErrInvalidPrivateKey

	// ErrInvalidPublicKey indicates a public key that is not a valid curve
	// point.
	ErrInvalidPublicKey

	// ErrMixinTooSmall indicates a mixin below the minimum the network
	// allows at the given height.
	ErrMixinTooSmall

	// ErrMixinTooBig indicates a mixin above the maximum the network
	// allows at the given height.
	ErrMixinTooBig

	// ErrFeeTooSmall indicates a per-byte fee rate below the network
	// minimum.
	ErrFeeTooSmall

	// ErrNotEnoughBalance indicates the available balance cannot cover the
	// destination amounts plus any fixed fee.
	ErrNotEnoughBalance

	// ErrWillOverflow indicates that summing the transaction amounts would
	// overflow a uint64.
	ErrWillOverflow

	// ErrAmountUgly indicates a fusion optimize target that is not a round
	// amount of the form d * 10^n.
	ErrAmountUgly
)

// Map of error codes back to strings for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrAddressWrongLength:         "ErrAddressWrongLength",
	ErrAddressWrongPrefix:         "ErrAddressWrongPrefix",
	ErrAddressNotBase58:           "ErrAddressNotBase58",
	ErrAddressNotValid:            "ErrAddressNotValid",
	ErrAddressIsIntegrated:        "ErrAddressIsIntegrated",
	ErrAddressNotInWallet:         "ErrAddressNotInWallet",
	ErrIntegratedPaymentIDInvalid: "ErrIntegratedPaymentIDInvalid",
	ErrConflictingPaymentIDs:      "ErrConflictingPaymentIDs",
	ErrNoDestinationsGiven:        "ErrNoDestinationsGiven",
	ErrAmountIsZero:               "ErrAmountIsZero",
	ErrHashWrongLength:            "ErrHashWrongLength",
	ErrHashInvalid:                "ErrHashInvalid",
	ErrPaymentIDWrongLength:       "ErrPaymentIDWrongLength",
	ErrPaymentIDInvalid:           "ErrPaymentIDInvalid",
	ErrInvalidPrivateKey:          "ErrInvalidPrivateKey",
	ErrInvalidPublicKey:           "ErrInvalidPublicKey",
	ErrMixinTooSmall:              "ErrMixinTooSmall",
	ErrMixinTooBig:                "ErrMixinTooBig",
	ErrFeeTooSmall:                "ErrFeeTooSmall",
	ErrNotEnoughBalance:           "ErrNotEnoughBalance",
	ErrWillOverflow:               "ErrWillOverflow",
	ErrAmountUgly:                 "ErrAmountUgly",
}

// String returns the ErrorCode in human-readable form.
func (code ErrorCode) String() string {
	if s, ok := errorCodeStrings[code]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", uint8(code))
}

var defaultDescriptions = map[ErrorCode]string{
	ErrAddressWrongLength:         "The address given is the wrong length",
	ErrAddressWrongPrefix:         "The address given does not have the expected prefix",
	ErrAddressNotBase58:           "The address given is not a valid base58 encoded address",
	ErrAddressNotValid:            "The address given is not valid",
	ErrAddressIsIntegrated:        "The address given is an integrated address, but integrated addresses aren't valid for this parameter",
	ErrAddressNotInWallet:         "The address given does not exist in the wallet container, but it is required to exist for this operation",
	ErrIntegratedPaymentIDInvalid: "The payment ID stored in the integrated address supplied is not valid",
	ErrConflictingPaymentIDs:      "Conflicting payment IDs were given. This could mean an integrated address + payment ID were given, where they are not the same, or that multiple integrated addresses with different payment IDs were given",
	ErrNoDestinationsGiven:        "The transaction must have at least one destination",
	ErrAmountIsZero:               "The amount given for a destination must be greater than zero",
	ErrHashWrongLength:            "The hash given is not 64 characters long",
	ErrHashInvalid:                "The hash given is not a hex string (a-f, 0-9)",
	ErrPaymentIDWrongLength:       "The payment ID given is not 64 characters long",
	ErrPaymentIDInvalid:           "The payment ID given is not a hex string (a-f, 0-9)",
	ErrInvalidPrivateKey:          "The private key given is not a valid ed25519 scalar",
	ErrInvalidPublicKey:           "The public key given is not a valid ed25519 curve point",
	ErrMixinTooSmall:              "The mixin value given is too low to be accepted by the network",
	ErrMixinTooBig:                "The mixin value given is too high to be accepted by the network",
	ErrFeeTooSmall:                "The fee given for this transaction is below the minimum allowed network fee",
	ErrNotEnoughBalance:           "Not enough unlocked funds were found to cover this transaction",
	ErrWillOverflow:               "The sum of the amounts given would overflow",
	ErrAmountUgly:                 "The optimize target given is not a multiple of a power of ten",
}

// ValidationError identifies a validation rule violation. The caller can use
// errors.As, or the ExtractCode and IsErrorCode helpers, to determine which
// rule was violated.
type ValidationError struct {
	Code        ErrorCode // The violated rule
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e ValidationError) Error() string {
	return e.Description
}

// New returns a ValidationError carrying the default description for code,
// wrapped with a stack trace.
func New(code ErrorCode) error {
	return errors.WithStack(ValidationError{Code: code, Description: defaultDescriptions[code]})
}

// Newf returns a ValidationError with a caller-supplied description, wrapped
// with a stack trace.
func Newf(code ErrorCode, format string, args ...interface{}) error {
	return errors.WithStack(ValidationError{Code: code, Description: fmt.Sprintf(format, args...)})
}

// ExtractCode attempts to return the validation error code for a given error
// by examining the error chain. It returns true if a code was found.
func ExtractCode(err error) (ErrorCode, bool) {
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Code, true
	}
	return 0, false
}

// IsErrorCode returns whether err carries the given validation error code.
func IsErrorCode(err error, code ErrorCode) bool {
	extracted, ok := ExtractCode(err)
	return ok && extracted == code
}
