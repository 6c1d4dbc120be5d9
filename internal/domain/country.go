package domain

const DefaultLanguage = "en"

type Country struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// DefaultCountries is the ordered list the pipeline walks when no explicit
// country configuration is given. Order matters: a run limited to N
// countries takes the first N.
var DefaultCountries = []Country{
	{Code: "US", Name: "United States"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "CA", Name: "Canada"},
	{Code: "AU", Name: "Australia"},
	{Code: "IT", Name: "Italy"},
	{Code: "ES", Name: "Spain"},
	{Code: "FR", Name: "France"},
	{Code: "DE", Name: "Germany"},
	{Code: "NL", Name: "Netherlands"},
	{Code: "PT", Name: "Portugal"},
	{Code: "BR", Name: "Brazil"},
	{Code: "MX", Name: "Mexico"},
	{Code: "AR", Name: "Argentina"},
	{Code: "CO", Name: "Colombia"},
	{Code: "CL", Name: "Chile"},
	{Code: "CN", Name: "China"},
	{Code: "JP", Name: "Japan"},
	{Code: "KR", Name: "South Korea"},
	{Code: "IN", Name: "India"},
	{Code: "ID", Name: "Indonesia"},
	{Code: "TH", Name: "Thailand"},
	{Code: "VN", Name: "Vietnam"},
	{Code: "PH", Name: "Philippines"},
	{Code: "SG", Name: "Singapore"},
	{Code: "RU", Name: "Russia"},
	{Code: "PL", Name: "Poland"},
	{Code: "UA", Name: "Ukraine"},
	{Code: "CZ", Name: "Czech Republic"},
	{Code: "TR", Name: "Turkey"},
	{Code: "SA", Name: "Saudi Arabia"},
	{Code: "AE", Name: "United Arab Emirates"},
	{Code: "IL", Name: "Israel"},
	{Code: "SE", Name: "Sweden"},
	{Code: "NO", Name: "Norway"},
	{Code: "DK", Name: "Denmark"},
	{Code: "FI", Name: "Finland"},
	{Code: "GR", Name: "Greece"},
	{Code: "ZA", Name: "South Africa"},
}

var countryLanguages = map[string]string{
	"US": "en", "GB": "en", "CA": "en", "AU": "en", "NZ": "en", "IE": "en",
	"PH": "en", "SG": "en", "ZA": "en", "NG": "en", "KE": "en",
	"IT": "it", "ES": "es", "MX": "es", "AR": "es", "CO": "es", "CL": "es", "PE": "es",
	"FR": "fr", "BE": "fr",
	"DE": "de", "AT": "de", "CH": "de",
	"PT": "pt", "BR": "pt",
	"NL": "nl",
	"RU": "ru", "PL": "pl", "UA": "uk", "CZ": "cs", "RO": "ro",
	"CN": "zh", "TW": "zh", "HK": "zh",
	"JP": "ja", "KR": "ko", "IN": "hi", "ID": "id", "TH": "th", "VN": "vi", "MY": "ms",
	"TR": "tr", "SA": "ar", "AE": "ar", "EG": "ar", "IL": "he",
	"SE": "sv", "NO": "no", "DK": "da", "FI": "fi", "GR": "el",
}

var languageNames = map[string]string{
	"en": "English", "it": "Italian", "es": "Spanish", "fr": "French",
	"de": "German", "pt": "Portuguese", "nl": "Dutch",
	"ru": "Russian", "pl": "Polish", "uk": "Ukrainian", "cs": "Czech", "ro": "Romanian",
	"zh": "Chinese", "ja": "Japanese", "ko": "Korean", "hi": "Hindi", "id": "Indonesian",
	"th": "Thai", "vi": "Vietnamese", "ms": "Malay",
	"tr": "Turkish", "ar": "Arabic", "he": "Hebrew",
	"sv": "Swedish", "no": "Norwegian", "da": "Danish", "fi": "Finnish",
	"el": "Greek",
}

// LanguageForCountry returns the ISO 639-1 code articles for a country are
// written in, defaulting to English for unmapped countries.
func LanguageForCountry(countryCode string) string {
	if lang, ok := countryLanguages[countryCode]; ok {
		return lang
	}
	return DefaultLanguage
}

// LanguageName returns the English name of a language code, used in prompts.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "English"
}
