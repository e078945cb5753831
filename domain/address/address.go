package address

import (
	"strings"

	"github.com/turtlecoin/turtled/domain/txextra"
	"github.com/turtlecoin/turtled/domain/walletcrypto"
	"github.com/turtlecoin/turtled/domain/walleterrors"
	"github.com/turtlecoin/turtled/netparams"
	"github.com/turtlecoin/turtled/util/base58"
)

// Address is a parsed wallet address. PaymentID is non-empty exactly when
// the address was parsed from integrated-address text. Addresses are value
// types, constructed per call and never shared.
type Address struct {
	// Tag is the network tag the address was encoded with.
	Tag uint64

	// SpendKey is the public spend key of the recipient.
	SpendKey walletcrypto.PublicKey

	// ViewKey is the public view key of the recipient.
	ViewKey walletcrypto.PublicKey

	// PaymentID is the 64-character hex payment ID embedded in an
	// integrated address, or empty for a standard address.
	PaymentID string
}

// Encode produces the textual standard address for a key pair on the given
// network.
func Encode(params *netparams.Params, spendKey, viewKey walletcrypto.PublicKey) string {
	payload := make([]byte, 0, 2*walletcrypto.KeySize)
	payload = append(payload, spendKey[:]...)
	payload = append(payload, viewKey[:]...)
	return base58.EncodeAddr(params.AddressPrefixTag, payload)
}

// EncodeIntegrated produces the textual integrated address carrying both a
// payment ID and a key pair. The payment ID is embedded as its 64 raw hex
// characters so the textual length stays constant.
func EncodeIntegrated(params *netparams.Params, paymentID string, spendKey, viewKey walletcrypto.PublicKey) (string, error) {
	if _, err := txextra.CreateWithPaymentID(paymentID); err != nil {
		return "", walleterrors.Newf(walleterrors.ErrPaymentIDInvalid,
			"The payment ID given (%s) is not a 64 character hex string", paymentID)
	}

	payload := make([]byte, 0, params.PaymentIDLength+2*walletcrypto.KeySize)
	payload = append(payload, paymentID...)
	payload = append(payload, spendKey[:]...)
	payload = append(payload, viewKey[:]...)
	return base58.EncodeAddr(params.AddressPrefixTag, payload), nil
}

// Decode parses a textual address on the given network. Integrated
// addresses are normalized through their embedded standard form: the
// payment ID and key pair are extracted, the key pair is re-encoded as a
// standard address, and that derived string goes through the standard
// parse. This validates the embedded keys on the same code path as every
// other address.
func Decode(params *netparams.Params, addr string, allowIntegrated bool) (*Address, error) {
	if len(addr) != params.StandardAddressLength && len(addr) != params.IntegratedAddressLength {
		return nil, walleterrors.Newf(walleterrors.ErrAddressWrongLength,
			"The address given is the wrong length. It should be %d chars or %d chars, but it is %d chars",
			params.StandardAddressLength, params.IntegratedAddressLength, len(addr))
	}

	if !strings.HasPrefix(addr, params.AddressPrefix) {
		return nil, walleterrors.Newf(walleterrors.ErrAddressWrongPrefix,
			"The address given does not begin with the expected prefix %s", params.AddressPrefix)
	}

	paymentID := ""
	if len(addr) == params.IntegratedAddressLength {
		if !allowIntegrated {
			return nil, walleterrors.Newf(walleterrors.ErrAddressIsIntegrated,
				"The address given (%s) is an integrated address, but integrated addresses aren't valid for this parameter", addr)
		}

		embeddedPaymentID, spendKey, viewKey, err := decodeIntegrated(params, addr)
		if err != nil {
			return nil, err
		}

		paymentID = embeddedPaymentID
		addr = Encode(params, spendKey, viewKey)
	}

	tag, payload, err := base58.DecodeAddr(addr)
	if err != nil {
		return nil, walleterrors.Newf(walleterrors.ErrAddressNotBase58,
			"The address given is not a valid base58 encoded address: %s", err)
	}

	spendKey, viewKey, err := deserializeKeys(payload)
	if err != nil {
		return nil, err
	}
	if tag != params.AddressPrefixTag {
		return nil, walleterrors.Newf(walleterrors.ErrAddressNotValid,
			"The address given has network tag %d, expected %d", tag, params.AddressPrefixTag)
	}

	return &Address{
		Tag:       tag,
		SpendKey:  spendKey,
		ViewKey:   viewKey,
		PaymentID: paymentID,
	}, nil
}

// decodeIntegrated pulls the payment ID and key pair out of integrated
// address text. The payment ID occupies the first PaymentIDLength bytes of
// the decoded payload as raw hex characters, the key pair the remainder.
func decodeIntegrated(params *netparams.Params, addr string) (
	paymentID string, spendKey, viewKey walletcrypto.PublicKey, err error) {

	_, payload, err := base58.DecodeAddr(addr)
	if err != nil {
		return "", spendKey, viewKey, walleterrors.Newf(walleterrors.ErrAddressNotBase58,
			"The address given is not a valid base58 encoded address: %s", err)
	}

	if len(payload) < params.PaymentIDLength {
		return "", spendKey, viewKey, walleterrors.New(walleterrors.ErrIntegratedPaymentIDInvalid)
	}

	paymentID = string(payload[:params.PaymentIDLength])

	// A payment ID is only well formed if it survives the tx-extra
	// serialization it will eventually travel in.
	if _, err := txextra.CreateWithPaymentID(paymentID); err != nil {
		return "", spendKey, viewKey, walleterrors.Newf(walleterrors.ErrIntegratedPaymentIDInvalid,
			"The payment ID stored in the integrated address supplied (%s) is not valid", paymentID)
	}

	spendKey, viewKey, err = deserializeKeys(payload[params.PaymentIDLength:])
	if err != nil {
		return "", spendKey, viewKey, err
	}

	return paymentID, spendKey, viewKey, nil
}

// deserializeKeys splits an address payload into its spend and view keys,
// verifying both are valid curve points.
func deserializeKeys(payload []byte) (spendKey, viewKey walletcrypto.PublicKey, err error) {
	if len(payload) != 2*walletcrypto.KeySize {
		return spendKey, viewKey, walleterrors.Newf(walleterrors.ErrAddressNotValid,
			"The address given decodes to %d key bytes, expected %d", len(payload), 2*walletcrypto.KeySize)
	}

	copy(spendKey[:], payload[:walletcrypto.KeySize])
	copy(viewKey[:], payload[walletcrypto.KeySize:])

	if !walletcrypto.CheckPublicKey(spendKey) || !walletcrypto.CheckPublicKey(viewKey) {
		return spendKey, viewKey, walleterrors.New(walleterrors.ErrAddressNotValid)
	}

	return spendKey, viewKey, nil
}
