package coins

import (
	"fmt"
	"sync"
)

var ErrCoinNotFound = fmt.Errorf("coin not found")

// Registry is an ordered collection of coins owned by the host
// application: construct one at startup, register coins into it and pass
// it to every resolver call. Reads may happen concurrently from several
// goroutines; writes are serialized against them.
//
// Multiple coins may share a version byte. That is expected and the
// registry reports every claimant, in registration order.
type Registry struct {
	mu      sync.RWMutex
	ordered []Coin
	// byKey indexes coins by id and by uri scheme. The first registered
	// coin wins a contested key (e.g. mainnet and testnet both answer to
	// the "bitcoin" scheme).
	byKey map[string]Coin
}

func NewRegistry() *Registry {
	return &Registry{
		byKey: map[string]Coin{},
	}
}

// Register appends coin to the registry. It does not deduplicate: callers
// that care about double registration must check first.
func (r *Registry) Register(coin Coin) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ordered = append(r.ordered, coin)
	r.index(coin)
}

// Unregister removes the first entry structurally equal to coin. Removing
// a coin that was never registered is a no-op.
func (r *Registry) Unregister(coin Coin) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.ordered {
		if coinEqual(c, coin) {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			r.reindex()
			return
		}
	}
}

// FindByVersionByte returns every registered coin whose address header or
// p2sh header equals version, in registration order. An empty result means
// no registered coin claims the version byte; it is not an error.
func (r *Registry) FindByVersionByte(version byte) []Coin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []Coin{}
	for _, c := range r.ordered {
		if c.GetAddressHeader() == int(version) || c.GetP2SHHeader() == int(version) {
			result = append(result, c)
		}
	}
	return result
}

// Lookup finds a coin by id or uri scheme.
func (r *Registry) Lookup(idOrScheme string) (Coin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	coin, found := r.byKey[idOrScheme]
	if !found {
		return nil, fmt.Errorf("coin '%s': %w", idOrScheme, ErrCoinNotFound)
	}
	return coin, nil
}

// Coins returns a snapshot of the registry in registration order.
func (r *Registry) Coins() []Coin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Coin, len(r.ordered))
	copy(result, r.ordered)
	return result
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ordered)
}

// index must be called with the write lock held.
func (r *Registry) index(coin Coin) {
	if _, found := r.byKey[coin.GetID()]; !found {
		r.byKey[coin.GetID()] = coin
	}
	if _, found := r.byKey[coin.GetURIScheme()]; !found {
		r.byKey[coin.GetURIScheme()] = coin
	}
}

// reindex must be called with the write lock held.
func (r *Registry) reindex() {
	r.byKey = map[string]Coin{}
	for _, c := range r.ordered {
		r.index(c)
	}
}

// coinEqual compares descriptors field by field rather than by reference,
// so a caller can unregister an equivalent value it built itself.
func coinEqual(a, b Coin) bool {
	if a == b {
		return true
	}
	if a.GetID() != b.GetID() ||
		a.GetName() != b.GetName() ||
		a.GetSymbol() != b.GetSymbol() ||
		a.GetURIScheme() != b.GetURIScheme() ||
		a.GetAddressHeader() != b.GetAddressHeader() ||
		a.GetP2SHHeader() != b.GetP2SHHeader() ||
		a.GetDecimalPlaces() != b.GetDecimalPlaces() {
		return false
	}
	aCodes, bCodes := a.GetAcceptableAddressCodes(), b.GetAcceptableAddressCodes()
	if len(aCodes) != len(bCodes) {
		return false
	}
	for i := range aCodes {
		if aCodes[i] != bCodes[i] {
			return false
		}
	}
	return true
}
