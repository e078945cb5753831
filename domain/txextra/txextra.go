package txextra

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// Transaction extra field tags. The payment ID travels inside an extra
// nonce field: tag, length, nonce sub-tag, then the raw 32 bytes.
const (
	tagNonce          = 0x02
	nonceTagPaymentID = 0x00

	// PaymentIDSize is the size of a decoded payment ID, in bytes.
	PaymentIDSize = 32

	nonceSize = 1 + PaymentIDSize
)

// ErrInvalidPaymentID indicates a payment ID that is not exactly
// PaymentIDSize bytes of hex.
var ErrInvalidPaymentID = errors.New("invalid payment ID")

// ErrNoPaymentID indicates an extra blob that does not carry a payment ID
// nonce.
var ErrNoPaymentID = errors.New("no payment ID in extra")

// CreateWithPaymentID serializes a hex payment ID into a transaction extra
// blob. It fails if the payment ID is not 64 hex characters.
func CreateWithPaymentID(paymentID string) ([]byte, error) {
	decoded, err := hex.DecodeString(paymentID)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPaymentID, "not a hex string: %s", err)
	}
	if len(decoded) != PaymentIDSize {
		return nil, errors.Wrapf(ErrInvalidPaymentID, "expected %d bytes, got %d", PaymentIDSize, len(decoded))
	}

	extra := make([]byte, 0, 2+nonceSize)
	extra = append(extra, tagNonce, nonceSize, nonceTagPaymentID)
	extra = append(extra, decoded...)
	return extra, nil
}

// PaymentIDFromExtra extracts the hex payment ID from a transaction extra
// blob produced by CreateWithPaymentID.
func PaymentIDFromExtra(extra []byte) (string, error) {
	for i := 0; i+1 < len(extra); {
		tag, length := extra[i], int(extra[i+1])
		if i+2+length > len(extra) {
			return "", errors.Wrap(ErrNoPaymentID, "truncated extra field")
		}
		if tag == tagNonce && length == nonceSize && extra[i+2] == nonceTagPaymentID {
			return hex.EncodeToString(extra[i+3 : i+2+length]), nil
		}
		i += 2 + length
	}
	return "", errors.WithStack(ErrNoPaymentID)
}
