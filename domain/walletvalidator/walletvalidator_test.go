package walletvalidator

import (
	"strings"
	"testing"

	"github.com/turtlecoin/turtled/domain/address"
	"github.com/turtlecoin/turtled/domain/subwallets"
	"github.com/turtlecoin/turtled/domain/walletcrypto"
	"github.com/turtlecoin/turtled/netparams"
)

var testParams = &netparams.MainnetParams

// The tests need a handful of distinct, known-valid public key encodings:
// the ed25519 base point, its negation, and the identity point.
func ourSpendKey() walletcrypto.PublicKey {
	var key walletcrypto.PublicKey
	key[0] = 0x58
	for i := 1; i < walletcrypto.KeySize; i++ {
		key[i] = 0x66
	}
	return key
}

func foreignSpendKey() walletcrypto.PublicKey {
	key := ourSpendKey()
	key[walletcrypto.KeySize-1] |= 0x80
	return key
}

func viewKey() walletcrypto.PublicKey {
	var key walletcrypto.PublicKey
	key[0] = 0x01
	return key
}

func ourAddress() string {
	return address.Encode(testParams, ourSpendKey(), viewKey())
}

func foreignAddress() string {
	return address.Encode(testParams, foreignSpendKey(), viewKey())
}

func integratedAddress(t *testing.T, paymentID string) string {
	t.Helper()
	addr, err := address.EncodeIntegrated(testParams, paymentID, foreignSpendKey(), viewKey())
	if err != nil {
		t.Fatalf("integratedAddress: unexpected error: %+v", err)
	}
	return addr
}

// newTestValidator returns a validator over a wallet holding a single
// sub-wallet (ourSpendKey) so membership and balance checks have something
// to hit.
func newTestValidator(t *testing.T) (*Validator, *subwallets.SubWallets) {
	t.Helper()

	wallets := subwallets.New()
	wallets.AddSubWallet(ourSpendKey())

	validator := New(&Config{
		Params:    testParams,
		Balances:  wallets,
		SpendKeys: wallets,
	})
	return validator, wallets
}

func testPaymentID(half string) string {
	return strings.Repeat(half, 32)
}
