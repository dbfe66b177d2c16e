package payroll

// Country pairs a country with the currency it is paid in.
type Country struct {
	Name   string
	Code   string
	Symbol string
}

// Countries is the list offered at login, sorted by name.
var Countries = []Country{
	{Name: "Afghanistan", Code: "AFN", Symbol: "؋"},
	{Name: "Albania", Code: "ALL", Symbol: "L"},
	{Name: "Algeria", Code: "DZD", Symbol: "د.ج"},
	{Name: "Andorra", Code: "EUR", Symbol: "€"},
	{Name: "Angola", Code: "AOA", Symbol: "Kz"},
	{Name: "Argentina", Code: "ARS", Symbol: "$"},
	{Name: "Armenia", Code: "AMD", Symbol: "֏"},
	{Name: "Australia", Code: "AUD", Symbol: "$"},
	{Name: "Austria", Code: "EUR", Symbol: "€"},
	{Name: "Azerbaijan", Code: "AZN", Symbol: "₼"},
	{Name: "Bahamas", Code: "BSD", Symbol: "$"},
	{Name: "Bahrain", Code: "BHD", Symbol: ".د.ب"},
	{Name: "Bangladesh", Code: "BDT", Symbol: "৳"},
	{Name: "Barbados", Code: "BBD", Symbol: "$"},
	{Name: "Belarus", Code: "BYN", Symbol: "Br"},
	{Name: "Belgium", Code: "EUR", Symbol: "€"},
	{Name: "Belize", Code: "BZD", Symbol: "$"},
	{Name: "Bhutan", Code: "BTN", Symbol: "Nu."},
	{Name: "Bolivia", Code: "BOB", Symbol: "Bs."},
	{Name: "Bosnia and Herzegovina", Code: "BAM", Symbol: "KM"},
	{Name: "Botswana", Code: "BWP", Symbol: "P"},
	{Name: "Brazil", Code: "BRL", Symbol: "R$"},
	{Name: "Brunei", Code: "BND", Symbol: "$"},
	{Name: "Bulgaria", Code: "BGN", Symbol: "лв"},
	{Name: "Cambodia", Code: "KHR", Symbol: "៛"},
	{Name: "Cameroon", Code: "XAF", Symbol: "FCFA"},
	{Name: "Canada", Code: "CAD", Symbol: "$"},
	{Name: "Chile", Code: "CLP", Symbol: "$"},
	{Name: "China", Code: "CNY", Symbol: "¥"},
	{Name: "Colombia", Code: "COP", Symbol: "$"},
	{Name: "Costa Rica", Code: "CRC", Symbol: "₡"},
	{Name: "Croatia", Code: "EUR", Symbol: "€"},
	{Name: "Cuba", Code: "CUP", Symbol: "$"},
	{Name: "Cyprus", Code: "EUR", Symbol: "€"},
	{Name: "Czech Republic", Code: "CZK", Symbol: "Kč"},
	{Name: "Denmark", Code: "DKK", Symbol: "kr"},
	{Name: "Dominican Republic", Code: "DOP", Symbol: "$"},
	{Name: "Ecuador", Code: "USD", Symbol: "$"},
	{Name: "Egypt", Code: "EGP", Symbol: "E£"},
	{Name: "El Salvador", Code: "USD", Symbol: "$"},
	{Name: "Estonia", Code: "EUR", Symbol: "€"},
	{Name: "Ethiopia", Code: "ETB", Symbol: "Br"},
	{Name: "Europe", Code: "EUR", Symbol: "€"},
	{Name: "Fiji", Code: "FJD", Symbol: "$"},
	{Name: "Finland", Code: "EUR", Symbol: "€"},
	{Name: "France", Code: "EUR", Symbol: "€"},
	{Name: "Georgia", Code: "GEL", Symbol: "₾"},
	{Name: "Germany", Code: "EUR", Symbol: "€"},
	{Name: "Ghana", Code: "GHS", Symbol: "GH₵"},
	{Name: "Greece", Code: "EUR", Symbol: "€"},
	{Name: "Guatemala", Code: "GTQ", Symbol: "Q"},
	{Name: "Honduras", Code: "HNL", Symbol: "L"},
	{Name: "Hungary", Code: "HUF", Symbol: "Ft"},
	{Name: "Iceland", Code: "ISK", Symbol: "kr"},
	{Name: "India", Code: "INR", Symbol: "₹"},
	{Name: "Indonesia", Code: "IDR", Symbol: "Rp"},
	{Name: "Iran", Code: "IRR", Symbol: "﷼"},
	{Name: "Iraq", Code: "IQD", Symbol: "ع.د"},
	{Name: "Ireland", Code: "EUR", Symbol: "€"},
	{Name: "Italy", Code: "EUR", Symbol: "€"},
	{Name: "Jamaica", Code: "JMD", Symbol: "$"},
	{Name: "Japan", Code: "JPY", Symbol: "¥"},
	{Name: "Jordan", Code: "JOD", Symbol: "د.أ"},
	{Name: "Kazakhstan", Code: "KZT", Symbol: "₸"},
	{Name: "Kenya", Code: "KES", Symbol: "KSh"},
	{Name: "Kuwait", Code: "KWD", Symbol: "د.ك"},
	{Name: "Lebanon", Code: "LBP", Symbol: "ل.ل"},
	{Name: "Libya", Code: "LYD", Symbol: "ل.د"},
	{Name: "Luxembourg", Code: "EUR", Symbol: "€"},
	{Name: "Malaysia", Code: "MYR", Symbol: "RM"},
	{Name: "Maldives", Code: "MVR", Symbol: "Rf"},
	{Name: "Malta", Code: "EUR", Symbol: "€"},
	{Name: "Mauritius", Code: "MUR", Symbol: "₨"},
	{Name: "Mexico", Code: "MXN", Symbol: "$"},
	{Name: "Monaco", Code: "EUR", Symbol: "€"},
	{Name: "Mongolia", Code: "MNT", Symbol: "₮"},
	{Name: "Morocco", Code: "MAD", Symbol: "د.م."},
	{Name: "Myanmar", Code: "MMK", Symbol: "K"},
	{Name: "Nepal", Code: "NPR", Symbol: "₨"},
	{Name: "Netherlands", Code: "EUR", Symbol: "€"},
	{Name: "New Zealand", Code: "NZD", Symbol: "$"},
	{Name: "Nigeria", Code: "NGN", Symbol: "₦"},
	{Name: "Norway", Code: "NOK", Symbol: "kr"},
	{Name: "Oman", Code: "OMR", Symbol: "ر.ع."},
	{Name: "Pakistan", Code: "PKR", Symbol: "₨"},
	{Name: "Palestine", Code: "JOD", Symbol: "د.أ"},
	{Name: "Panama", Code: "PAB", Symbol: "B/."},
	{Name: "Paraguay", Code: "PYG", Symbol: "₲"},
	{Name: "Peru", Code: "PEN", Symbol: "S/."},
	{Name: "Philippines", Code: "PHP", Symbol: "₱"},
	{Name: "Poland", Code: "PLN", Symbol: "zł"},
	{Name: "Portugal", Code: "EUR", Symbol: "€"},
	{Name: "Qatar", Code: "QAR", Symbol: "ر.ق"},
	{Name: "Romania", Code: "RON", Symbol: "lei"},
	{Name: "Russia", Code: "RUB", Symbol: "₽"},
	{Name: "Saudi Arabia", Code: "SAR", Symbol: "ر.س"},
	{Name: "Serbia", Code: "RSD", Symbol: "din."},
	{Name: "Singapore", Code: "SGD", Symbol: "$"},
	{Name: "Slovakia", Code: "EUR", Symbol: "€"},
	{Name: "Slovenia", Code: "EUR", Symbol: "€"},
	{Name: "South Africa", Code: "ZAR", Symbol: "R"},
	{Name: "South Korea", Code: "KRW", Symbol: "₩"},
	{Name: "Spain", Code: "EUR", Symbol: "€"},
	{Name: "Sri Lanka", Code: "LKR", Symbol: "₨"},
	{Name: "Sudan", Code: "SDG", Symbol: "£"},
	{Name: "Sweden", Code: "SEK", Symbol: "kr"},
	{Name: "Switzerland", Code: "CHF", Symbol: "CHF"},
	{Name: "Syria", Code: "SYP", Symbol: "£"},
	{Name: "Taiwan", Code: "TWD", Symbol: "NT$"},
	{Name: "Tanzania", Code: "TZS", Symbol: "Sh"},
	{Name: "Thailand", Code: "THB", Symbol: "฿"},
	{Name: "Tunisia", Code: "TND", Symbol: "د.ت"},
	{Name: "Turkey", Code: "TRY", Symbol: "₺"},
	{Name: "Ukraine", Code: "UAH", Symbol: "₴"},
	{Name: "United Arab Emirates", Code: "AED", Symbol: "د.إ"},
	{Name: "United Kingdom", Code: "GBP", Symbol: "£"},
	{Name: "United States", Code: "USD", Symbol: "$"},
	{Name: "Uruguay", Code: "UYU", Symbol: "$U"},
	{Name: "Uzbekistan", Code: "UZS", Symbol: "so'm"},
	{Name: "Venezuela", Code: "VES", Symbol: "Bs.S"},
	{Name: "Vietnam", Code: "VND", Symbol: "₫"},
	{Name: "Yemen", Code: "YER", Symbol: "﷼"},
	{Name: "Zambia", Code: "ZMW", Symbol: "ZK"},
	{Name: "Zimbabwe", Code: "ZWL", Symbol: "$"},
}

// CountryByName looks up a country by its exact name.
func CountryByName(name string) (Country, bool) {
	for _, c := range Countries {
		if c.Name == name {
			return c, true
		}
	}
	return Country{}, false
}
