package coins

var Bitcoin Coin = NewBitcoin()

type bitcoin struct{}

func NewBitcoin() *bitcoin {
	return &bitcoin{}
}

func (self *bitcoin) GetID() string {
	return "org.bitcoin.production"
}

func (self *bitcoin) GetName() string {
	return "Bitcoin"
}

func (self *bitcoin) GetSymbol() string {
	return "BTC"
}

func (self *bitcoin) GetURIScheme() string {
	return "bitcoin"
}

func (self *bitcoin) GetAddressHeader() int {
	return 0
}

func (self *bitcoin) GetP2SHHeader() int {
	return 5
}

func (self *bitcoin) GetAcceptableAddressCodes() []int {
	return []int{0, 5}
}

func (self *bitcoin) GetDecimalPlaces() int {
	return 8
}
