package domain

// Country is a static catalog entry pairing a supported country with its
// currency. Symbol carries the Arabic currency mark, SymbolEn the Latin one.
type Country struct {
	Code           string
	Name           string
	NameEn         string
	Currency       string
	Symbol         string
	SymbolEn       string
	CurrencyName   string
	CurrencyNameEn string
	Flag           string
}
