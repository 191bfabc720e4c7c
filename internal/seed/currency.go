package seed

import "transverse/internal/domain"

// Countries returns the read-only country/currency catalog. The first entry
// is the default when no preference is stored and detection finds nothing.
func Countries() []domain.Country {
	return []domain.Country{
		{Code: "SA", Name: "السعودية", NameEn: "Saudi Arabia", Currency: "SAR", Symbol: "ر.س", SymbolEn: "SAR", CurrencyName: "ريال سعودي", CurrencyNameEn: "Saudi Riyal", Flag: "🇸🇦"},
		{Code: "AE", Name: "الإمارات", NameEn: "UAE", Currency: "AED", Symbol: "د.إ", SymbolEn: "AED", CurrencyName: "درهم إماراتي", CurrencyNameEn: "UAE Dirham", Flag: "🇦🇪"},
		{Code: "KW", Name: "الكويت", NameEn: "Kuwait", Currency: "KWD", Symbol: "د.ك", SymbolEn: "KWD", CurrencyName: "دينار كويتي", CurrencyNameEn: "Kuwaiti Dinar", Flag: "🇰🇼"},
		{Code: "QA", Name: "قطر", NameEn: "Qatar", Currency: "QAR", Symbol: "ر.ق", SymbolEn: "QAR", CurrencyName: "ريال قطري", CurrencyNameEn: "Qatari Riyal", Flag: "🇶🇦"},
		{Code: "BH", Name: "البحرين", NameEn: "Bahrain", Currency: "BHD", Symbol: "د.ب", SymbolEn: "BHD", CurrencyName: "دينار بحريني", CurrencyNameEn: "Bahraini Dinar", Flag: "🇧🇭"},
		{Code: "OM", Name: "عمان", NameEn: "Oman", Currency: "OMR", Symbol: "ر.ع", SymbolEn: "OMR", CurrencyName: "ريال عماني", CurrencyNameEn: "Omani Rial", Flag: "🇴🇲"},
		{Code: "JO", Name: "الأردن", NameEn: "Jordan", Currency: "JOD", Symbol: "د.أ", SymbolEn: "JOD", CurrencyName: "دينار أردني", CurrencyNameEn: "Jordanian Dinar", Flag: "🇯🇴"},
		{Code: "EG", Name: "مصر", NameEn: "Egypt", Currency: "EGP", Symbol: "ج.م", SymbolEn: "EGP", CurrencyName: "جنيه مصري", CurrencyNameEn: "Egyptian Pound", Flag: "🇪🇬"},
		{Code: "LB", Name: "لبنان", NameEn: "Lebanon", Currency: "LBP", Symbol: "ل.ل", SymbolEn: "LBP", CurrencyName: "ليرة لبنانية", CurrencyNameEn: "Lebanese Pound", Flag: "🇱🇧"},
		{Code: "MA", Name: "المغرب", NameEn: "Morocco", Currency: "MAD", Symbol: "د.م", SymbolEn: "MAD", CurrencyName: "درهم مغربي", CurrencyNameEn: "Moroccan Dirham", Flag: "🇲🇦"},
		{Code: "DZ", Name: "الجزائر", NameEn: "Algeria", Currency: "DZD", Symbol: "د.ج", SymbolEn: "DZD", CurrencyName: "دينار جزائري", CurrencyNameEn: "Algerian Dinar", Flag: "🇩🇿"},
		{Code: "TN", Name: "تونس", NameEn: "Tunisia", Currency: "TND", Symbol: "د.ت", SymbolEn: "TND", CurrencyName: "دينار تونسي", CurrencyNameEn: "Tunisian Dinar", Flag: "🇹🇳"},
	}
}
