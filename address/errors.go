package address

import "fmt"

// WrongNetworkError reports a syntactically valid address whose version
// byte is not claimed by the coin the caller expected. It carries both
// sides so the caller can say "got a mainnet address, wanted testnet".
type WrongNetworkError struct {
	// Version is the version byte actually decoded from the address.
	Version int
	// AcceptableCodes is the expected coin's acceptable version byte set.
	AcceptableCodes []int
}

func (e *WrongNetworkError) Error() string {
	return fmt.Sprintf(
		"version code %d of decoded address is not acceptable, expected one of %v",
		e.Version, e.AcceptableCodes,
	)
}
