package coins

// Insert more coin configs here to support more convertible networks.
// Registration order is significant: ambiguous address lookups report
// claimants in this order, after Bitcoin itself.
var builtinCoinConfigs = []GenericCoinConfig{
	/*  NAME                     URI PREFIX                      CODE              DECIMALS          ADDRESS PREFIX     P2SH PREFIX */
	{Name: "BitCrystals", URIScheme: "counterparty_bcy", Symbol: "BCY", DecimalPlaces: 8, AddressHeader: 0, P2SHHeader: 5},
	{Name: "Blackcoin", URIScheme: "blackcoin", Symbol: "BLK", DecimalPlaces: 8, AddressHeader: 25, P2SHHeader: 85},
	{Name: "Clams", URIScheme: "clam", Symbol: "CLAM", DecimalPlaces: 8, AddressHeader: 137, P2SHHeader: 13},
	{Name: "Counterparty", URIScheme: "counterparty_xcp", Symbol: "XCP", DecimalPlaces: 8, AddressHeader: 0, P2SHHeader: 5},
	{Name: "Dash", URIScheme: "dash", Symbol: "DASH", DecimalPlaces: 8, AddressHeader: 76, P2SHHeader: 16},
	{Name: "Digibyte", URIScheme: "digibyte", Symbol: "DGB", DecimalPlaces: 8, AddressHeader: 30, P2SHHeader: 5},
	{Name: "Dogecoin", URIScheme: "dogecoin", Symbol: "DOGE", DecimalPlaces: 8, AddressHeader: 30, P2SHHeader: 22},
	{Name: "Emercoin", URIScheme: "emercoin", Symbol: "EMC", DecimalPlaces: 6, AddressHeader: 33, P2SHHeader: 92},
	{Name: "Litecoin", URIScheme: "litecoin", Symbol: "LTC", DecimalPlaces: 8, AddressHeader: 48, P2SHHeader: 5},
	{Name: "MaidSafeCoin", URIScheme: "counterparty_maid", Symbol: "MAID", DecimalPlaces: 8, AddressHeader: 0, P2SHHeader: 5},
	{Name: "Mastercoin", URIScheme: "mastercoin", Symbol: "MSC", DecimalPlaces: 8, AddressHeader: 0, P2SHHeader: 5},
	{Name: "Mintcoin", URIScheme: "mintcoin", Symbol: "MINT", DecimalPlaces: 6, AddressHeader: 51, P2SHHeader: 8},
	{Name: "Monacoin", URIScheme: "monacoin", Symbol: "MONA", DecimalPlaces: 8, AddressHeader: 50, P2SHHeader: 5},
	{Name: "Namecoin", URIScheme: "namecoin", Symbol: "NMC", DecimalPlaces: 8, AddressHeader: 52, P2SHHeader: NoP2SH},
	{Name: "Novacoin", URIScheme: "novacoin", Symbol: "NVC", DecimalPlaces: 6, AddressHeader: 8, P2SHHeader: 20},
	{Name: "NuBits", URIScheme: "Nu", Symbol: "NBT", DecimalPlaces: 4, AddressHeader: 25, P2SHHeader: 26},
	{Name: "Peercoin", URIScheme: "ppcoin", Symbol: "PPC", DecimalPlaces: 6, AddressHeader: 55, P2SHHeader: 117},
	{Name: "Reddcoin", URIScheme: "reddcoin", Symbol: "RDD", DecimalPlaces: 8, AddressHeader: 61, P2SHHeader: 5},
	{Name: "Shadowcash", URIScheme: "shadowcoin", Symbol: "SDC", DecimalPlaces: 8, AddressHeader: 63, P2SHHeader: 125},
	{Name: "Startcoin", URIScheme: "startcoin", Symbol: "START", DecimalPlaces: 8, AddressHeader: 125, P2SHHeader: 5},
	{Name: "Storjcoin X", URIScheme: "counterparty_sjcx", Symbol: "SJCX", DecimalPlaces: 8, AddressHeader: 0, P2SHHeader: 5},
	{Name: "Vericoin", URIScheme: "vericoin", Symbol: "VRC", DecimalPlaces: 8, AddressHeader: 70, P2SHHeader: 85},
	{Name: "Vertcoin", URIScheme: "vertcoin", Symbol: "VTC", DecimalPlaces: 8, AddressHeader: 71, P2SHHeader: 5},
}

// BuiltinCoins returns the built-in convertible coins in table order.
// Bitcoin itself is not part of the table; see RegisterBuiltins.
func BuiltinCoins() []Coin {
	result := make([]Coin, 0, len(builtinCoinConfigs))
	for _, config := range builtinCoinConfigs {
		result = append(result, NewGenericCoin(config))
	}
	return result
}

// RegisterBuiltins bulk-loads Bitcoin followed by the whole built-in coin
// table, in table order, into reg.
func RegisterBuiltins(reg *Registry) {
	reg.Register(Bitcoin)
	for _, coin := range BuiltinCoins() {
		reg.Register(coin)
	}
}
