package coins

// NoP2SH is the p2sh header value of coins that have no pay-to-script-hash
// address form.
const NoP2SH = -1

// Coin describes one network's address encoding parameters and display
// metadata. Implementations must be immutable once shared: the registry
// stores them by reference and never copies.
type Coin interface {
	GetID() string
	GetName() string
	GetSymbol() string
	GetURIScheme() string

	// GetAddressHeader is the version byte of pay-to-pubkey-hash
	// addresses, in [0, 255].
	GetAddressHeader() int
	// GetP2SHHeader is the version byte of pay-to-script-hash addresses,
	// or NoP2SH when the coin does not support them.
	GetP2SHHeader() int
	// GetAcceptableAddressCodes lists every version byte this coin claims.
	// Codes may overlap with other coins; overlap is expected and the
	// resolver surfaces every claimant.
	GetAcceptableAddressCodes() []int

	// GetDecimalPlaces is the precision of the coin's smallest unit.
	GetDecimalPlaces() int
}
