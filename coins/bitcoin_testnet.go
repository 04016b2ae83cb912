package coins

var BitcoinTestnet Coin = NewBitcoinTestnet()

// bitcoinTestnet is testnet3. It shares the "bitcoin" uri scheme with
// mainnet, so the registry resolves "bitcoin" to whichever of the two was
// registered first.
type bitcoinTestnet struct{}

func NewBitcoinTestnet() *bitcoinTestnet {
	return &bitcoinTestnet{}
}

func (self *bitcoinTestnet) GetID() string {
	return "org.bitcoin.test"
}

func (self *bitcoinTestnet) GetName() string {
	return "Bitcoin Testnet"
}

func (self *bitcoinTestnet) GetSymbol() string {
	return "BTC"
}

func (self *bitcoinTestnet) GetURIScheme() string {
	return "bitcoin"
}

func (self *bitcoinTestnet) GetAddressHeader() int {
	return 111
}

func (self *bitcoinTestnet) GetP2SHHeader() int {
	return 196
}

func (self *bitcoinTestnet) GetAcceptableAddressCodes() []int {
	return []int{111, 196}
}

func (self *bitcoinTestnet) GetDecimalPlaces() int {
	return 8
}
