package walletcrypto

import (
	"encoding/hex"

	"filippo.io/edwards25519"
	"github.com/pkg/errors"
)

// KeySize is the size of public and secret keys, in bytes.
const KeySize = 32

// PublicKey is an ed25519 public key: the compressed encoding of a curve
// point.
type PublicKey [KeySize]byte

// SecretKey is an ed25519 secret key: a scalar modulo the curve group order.
type SecretKey [KeySize]byte

// String returns the PublicKey as a hex string.
func (key PublicKey) String() string {
	return hex.EncodeToString(key[:])
}

// String returns the SecretKey as a hex string.
func (key SecretKey) String() string {
	return hex.EncodeToString(key[:])
}

// ErrWrongKeySize indicates a byte slice of the wrong length was given where
// a 32-byte key was expected.
var ErrWrongKeySize = errors.New("wrong key size")

// PublicKeyFromBytes converts a 32-byte slice into a PublicKey.
func PublicKeyFromBytes(data []byte) (PublicKey, error) {
	var key PublicKey
	if len(data) != KeySize {
		return key, errors.Wrapf(ErrWrongKeySize, "expected %d bytes, got %d", KeySize, len(data))
	}
	copy(key[:], data)
	return key, nil
}

// CheckPublicKey returns whether key is the canonical encoding of a valid
// curve point.
func CheckPublicKey(key PublicKey) bool {
	_, err := new(edwards25519.Point).SetBytes(key[:])
	return err == nil
}

// CheckSecretKey returns whether key is a canonical scalar, i.e. whether it
// is reduced modulo the curve group order.
func CheckSecretKey(key SecretKey) bool {
	_, err := new(edwards25519.Scalar).SetCanonicalBytes(key[:])
	return err == nil
}

// Checker is the default crypto-primitive oracle, implemented on
// edwards25519 arithmetic. The zero value is ready to use.
type Checker struct{}

// IsValidPublicKey implements the point-validity predicate.
func (Checker) IsValidPublicKey(key PublicKey) bool {
	return CheckPublicKey(key)
}

// IsValidSecretKey implements the scalar-range predicate.
func (Checker) IsValidSecretKey(key SecretKey) bool {
	return CheckSecretKey(key)
}
