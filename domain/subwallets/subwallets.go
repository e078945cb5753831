package subwallets

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/turtlecoin/turtled/domain/walletcrypto"
)

// credit is an amount of funds held by a sub-wallet, spendable once the
// chain reaches its unlock height.
type credit struct {
	amount       uint64
	unlockHeight uint64
}

// SubWallets is the collection of sub-wallets a wallet container holds,
// keyed by public spend key. It implements the balance and key-membership
// oracles the validation engine consumes.
//
// The collection is safe for concurrent use: wallet-sync activity may add
// credits while validation reads balances.
type SubWallets struct {
	mtx     sync.RWMutex
	wallets map[walletcrypto.PublicKey][]credit
}

// New returns an empty sub-wallet collection.
func New() *SubWallets {
	return &SubWallets{wallets: make(map[walletcrypto.PublicKey][]credit)}
}

// ErrUnknownSpendKey indicates an operation on a spend key the collection
// does not hold.
var ErrUnknownSpendKey = errors.New("unknown public spend key")

// AddSubWallet registers a sub-wallet with no funds. Adding an existing key
// is a no-op.
func (s *SubWallets) AddSubWallet(spendKey walletcrypto.PublicKey) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.wallets[spendKey]; !ok {
		s.wallets[spendKey] = nil
	}
}

// Credit adds funds to a sub-wallet, spendable from unlockHeight onwards.
func (s *SubWallets) Credit(spendKey walletcrypto.PublicKey, amount uint64, unlockHeight uint64) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.wallets[spendKey]; !ok {
		return errors.Wrapf(ErrUnknownSpendKey, "%s", spendKey)
	}
	s.wallets[spendKey] = append(s.wallets[spendKey], credit{amount: amount, unlockHeight: unlockHeight})
	return nil
}

// HasPublicSpendKey returns whether the collection holds the given spend
// key. It implements the key-membership oracle.
func (s *SubWallets) HasPublicSpendKey(spendKey walletcrypto.PublicKey) bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	_, ok := s.wallets[spendKey]
	return ok
}

// PublicSpendKeys returns the spend keys of every sub-wallet.
func (s *SubWallets) PublicSpendKeys() []walletcrypto.PublicKey {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	keys := make([]walletcrypto.PublicKey, 0, len(s.wallets))
	for key := range s.wallets {
		keys = append(keys, key)
	}
	return keys
}

// Balance returns the unlocked and locked balance across the given spend
// keys as of the given height, or across every sub-wallet when takeFromAll
// is set. Spend keys the collection does not hold contribute nothing. It
// implements the balance oracle.
func (s *SubWallets) Balance(spendKeys []walletcrypto.PublicKey, takeFromAll bool, height uint64) (available, locked uint64) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if takeFromAll {
		spendKeys = spendKeys[:0:0]
		for key := range s.wallets {
			spendKeys = append(spendKeys, key)
		}
	}

	for _, key := range spendKeys {
		for _, c := range s.wallets[key] {
			if c.unlockHeight <= height {
				available += c.amount
			} else {
				locked += c.amount
			}
		}
	}
	return available, locked
}
