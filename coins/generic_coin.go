package coins

import (
	"fmt"

	"github.com/goccy/go-json"
)

type GenericCoinConfig struct {
	// ID defaults to URIScheme when empty.
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	URIScheme string `json:"uri_scheme"`
	// P2SHHeader of -1 means the coin has no pay-to-script-hash addresses.
	AddressHeader int `json:"address_header"`
	P2SHHeader    int `json:"p2sh_header"`
	// AcceptableAddressCodes defaults to {AddressHeader, P2SHHeader}.
	AcceptableAddressCodes []int `json:"acceptable_address_codes,omitempty"`
	DecimalPlaces          int   `json:"decimal_places"`
}

// GenericCoin is a Coin built from plain config data. Both the built-in
// convertible-coin table and user supplied coins use it.
type GenericCoin struct {
	config GenericCoinConfig
}

func NewGenericCoin(config GenericCoinConfig) *GenericCoin {
	if config.ID == "" {
		config.ID = config.URIScheme
	}
	if config.AcceptableAddressCodes == nil {
		config.AcceptableAddressCodes = []int{config.AddressHeader}
		if config.P2SHHeader != NoP2SH {
			config.AcceptableAddressCodes = append(config.AcceptableAddressCodes, config.P2SHHeader)
		}
	}
	return &GenericCoin{config: config}
}

// NewCoinFromJSON parses and validates a coin config. It is the entry
// point for user supplied coin definitions.
func NewCoinFromJSON(content []byte) (*GenericCoin, error) {
	config := GenericCoinConfig{}
	err := json.Unmarshal(content, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal coin config: %w", err)
	}
	if config.Name == "" {
		return nil, fmt.Errorf("coin config must have a name")
	}
	if config.URIScheme == "" {
		return nil, fmt.Errorf("coin config must have a uri_scheme")
	}
	if config.AddressHeader < 0 || config.AddressHeader > 255 {
		return nil, fmt.Errorf("address_header %d is out of [0, 255]", config.AddressHeader)
	}
	if config.P2SHHeader != NoP2SH && (config.P2SHHeader < 0 || config.P2SHHeader > 255) {
		return nil, fmt.Errorf("p2sh_header %d is out of [0, 255] and not %d", config.P2SHHeader, NoP2SH)
	}
	if config.DecimalPlaces < 0 {
		return nil, fmt.Errorf("decimal_places must not be negative, got %d", config.DecimalPlaces)
	}
	return NewGenericCoin(config), nil
}

func (gc *GenericCoin) GetID() string {
	return gc.config.ID
}

func (gc *GenericCoin) GetName() string {
	return gc.config.Name
}

func (gc *GenericCoin) GetSymbol() string {
	return gc.config.Symbol
}

func (gc *GenericCoin) GetURIScheme() string {
	return gc.config.URIScheme
}

func (gc *GenericCoin) GetAddressHeader() int {
	return gc.config.AddressHeader
}

func (gc *GenericCoin) GetP2SHHeader() int {
	return gc.config.P2SHHeader
}

func (gc *GenericCoin) GetAcceptableAddressCodes() []int {
	codes := make([]int, len(gc.config.AcceptableAddressCodes))
	copy(codes, gc.config.AcceptableAddressCodes)
	return codes
}

func (gc *GenericCoin) GetDecimalPlaces() int {
	return gc.config.DecimalPlaces
}

// Config returns a copy of the coin's config, suitable for persisting.
func (gc *GenericCoin) Config() GenericCoinConfig {
	config := gc.config
	config.AcceptableAddressCodes = gc.GetAcceptableAddressCodes()
	return config
}
