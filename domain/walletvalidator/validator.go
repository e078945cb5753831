package walletvalidator

import (
	"github.com/turtlecoin/turtled/domain/walletcrypto"
	"github.com/turtlecoin/turtled/netparams"
)

// BalanceSource is the balance oracle: a snapshot of spendable and locked
// funds for a set of sub-wallets as of a chain height.
type BalanceSource interface {
	Balance(spendKeys []walletcrypto.PublicKey, takeFromAll bool, height uint64) (available, locked uint64)
}

// SpendKeyHolder is the key-membership oracle: which public spend keys the
// wallet container currently holds.
type SpendKeyHolder interface {
	HasPublicSpendKey(spendKey walletcrypto.PublicKey) bool
}

// MixinPolicy is the height-policy oracle: the mixin bounds the network
// enforces at a given height.
type MixinPolicy interface {
	MixinBounds(height uint64) (min, max, def uint64)
}

// KeyChecker is the crypto-primitive oracle: pure well-formedness
// predicates over keys.
type KeyChecker interface {
	IsValidPublicKey(key walletcrypto.PublicKey) bool
	IsValidSecretKey(key walletcrypto.SecretKey) bool
}

// Config collects the network parameters and oracles a Validator consults.
type Config struct {
	// Params supplies the protocol constants, and doubles as the default
	// MixinPolicy.
	Params *netparams.Params

	// Balances supplies balance snapshots.
	Balances BalanceSource

	// SpendKeys supplies wallet key membership.
	SpendKeys SpendKeyHolder

	// MixinPolicy overrides the height policy. Optional; defaults to
	// Params.
	MixinPolicy MixinPolicy

	// KeyChecker overrides the crypto-primitive predicates. Optional;
	// defaults to the edwards25519 checker.
	KeyChecker KeyChecker
}

// Validator is a library of independent pre-flight checks over
// user-supplied transaction parameters, plus the composite pipelines that
// run them in a fixed, fail-fast order. A Validator owns no mutable state:
// every method is reentrant and any number of validations may run
// concurrently.
type Validator struct {
	params     *netparams.Params
	balances   BalanceSource
	spendKeys  SpendKeyHolder
	mixins     MixinPolicy
	keyChecker KeyChecker
}

// New instantiates a Validator from the given config.
func New(config *Config) *Validator {
	mixins := config.MixinPolicy
	if mixins == nil {
		mixins = config.Params
	}
	keyChecker := config.KeyChecker
	if keyChecker == nil {
		keyChecker = walletcrypto.Checker{}
	}

	return &Validator{
		params:     config.Params,
		balances:   config.Balances,
		spendKeys:  config.SpendKeys,
		mixins:     mixins,
		keyChecker: keyChecker,
	}
}

// runChecks executes checks in order, stopping at the first failure. The
// order in which composite validators list their checks is part of the
// contract: callers observe the first violated rule.
func runChecks(checks []func() error) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
