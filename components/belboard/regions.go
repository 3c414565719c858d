package belboard

import "strings"

const (
	defaultCountry = "United States"
	defaultRegion  = "Others"
)

// countryCodes maps the two-letter referral id prefix (after the leading
// "K") to an ISO-style country code. Legacy ids used "DA" for Denmark.
var countryCodes = map[string]string{
	"TW": "TW", "US": "US", "DE": "DE", "FR": "FR", "JP": "JP",
	"AU": "AU", "KR": "KR", "IT": "IT", "MX": "MX", "CN": "CN",
	"CA": "CA", "IN": "IN", "NO": "NO", "NL": "NL", "BR": "BR",
	"SE": "SE", "CH": "CH", "DA": "DK", "PL": "PL", "BE": "BE",
	"SG": "SG", "TH": "TH", "MY": "MY", "ZA": "ZA",
}

var countryNames = map[string]string{
	"TW": "Taiwan", "US": "United States", "DE": "Germany", "FR": "France", "JP": "Japan",
	"AU": "Australia", "KR": "South Korea", "IT": "Italy", "MX": "Mexico", "CN": "China",
	"CA": "Canada", "IN": "India", "NO": "Norway", "NL": "Netherlands", "BR": "Brazil",
	"SE": "Sweden", "CH": "Switzerland", "DK": "Denmark", "PL": "Poland", "BE": "Belgium",
	"SG": "Singapore", "TH": "Thailand", "MY": "Malaysia", "ZA": "South Africa",
}

var regionByCountry = map[string]string{
	"Australia":   "AAU / NZ",
	"New Zealand": "AAU / NZ",

	"Brunei": "ASEAN", "Cambodia": "ASEAN", "Indonesia": "ASEAN",
	"Malaysia": "ASEAN", "Philippines": "ASEAN", "Singapore": "ASEAN",
	"Thailand": "ASEAN", "Vietnam": "ASEAN", "Myanmar": "ASEAN", "Laos": "ASEAN",

	"China": "China",

	"Austria": "Europe", "Belgium": "Europe", "Bulgaria": "Europe",
	"Croatia": "Europe", "Cyprus": "Europe", "Czech Republic": "Europe",
	"Denmark": "Europe", "Estonia": "Europe", "Finland": "Europe",
	"France": "Europe", "Germany": "Europe", "Greece": "Europe",
	"Hungary": "Europe", "Ireland": "Europe", "Italy": "Europe",
	"Latvia": "Europe", "Lithuania": "Europe", "Luxembourg": "Europe",
	"Malta": "Europe", "Netherlands": "Europe", "Poland": "Europe",
	"Portugal": "Europe", "Romania": "Europe", "Slovakia": "Europe",
	"Slovenia": "Europe", "Spain": "Europe", "Sweden": "Europe",
	"Norway": "Europe", "Switzerland": "Europe", "United Kingdom": "Europe",
	"Iceland": "Europe",

	"India": "India",
	"Japan": "Japan",

	"South Korea": "Korea", "Korea": "Korea",

	"Argentina": "LATAM", "Bolivia": "LATAM", "Brazil": "LATAM",
	"Chile": "LATAM", "Colombia": "LATAM", "Costa Rica": "LATAM",
	"Cuba": "LATAM", "Dominican Republic": "LATAM", "Ecuador": "LATAM",
	"El Salvador": "LATAM", "Guatemala": "LATAM", "Honduras": "LATAM",
	"Mexico": "LATAM", "Nicaragua": "LATAM", "Panama": "LATAM",
	"Paraguay": "LATAM", "Peru": "LATAM", "Uruguay": "LATAM",
	"Venezuela": "LATAM",

	"Algeria": "ME&A", "Angola": "ME&A", "Egypt": "ME&A",
	"Ethiopia": "ME&A", "Ghana": "ME&A", "Kenya": "ME&A",
	"Morocco": "ME&A", "Nigeria": "ME&A", "South Africa": "ME&A",
	"Tunisia": "ME&A", "Uganda": "ME&A", "Zimbabwe": "ME&A",
	"Israel": "ME&A", "Jordan": "ME&A", "Lebanon": "ME&A",
	"Qatar": "ME&A", "Saudi Arabia": "ME&A", "UAE": "ME&A",
	"Turkey": "ME&A", "Iran": "ME&A", "Iraq": "ME&A",
	"Kuwait": "ME&A", "Oman": "ME&A", "Bahrain": "ME&A",

	"United States": "North America",
	"Canada":        "North America",

	"Taiwan": "Taiwan",

	"Russia": "Russia & CIS", "Belarus": "Russia & CIS",
	"Kazakhstan": "Russia & CIS", "Kyrgyzstan": "Russia & CIS",
	"Tajikistan": "Russia & CIS", "Turkmenistan": "Russia & CIS",
	"Uzbekistan": "Russia & CIS", "Armenia": "Russia & CIS",
	"Azerbaijan": "Russia & CIS", "Georgia": "Russia & CIS",
	"Moldova": "Russia & CIS", "Ukraine": "Russia & CIS",
}

// CountryForID derives the country name from a referral id. Ids follow the
// K<country prefix><suffix> format; unmapped prefixes fall back to the
// default country.
func CountryForID(id string) string {
	if len(id) < 3 || !strings.HasPrefix(id, "K") {
		return defaultCountry
	}
	code, ok := countryCodes[id[1:3]]
	if !ok {
		return defaultCountry
	}
	if name, ok := countryNames[code]; ok {
		return name
	}
	return defaultCountry
}

// RegionForCountry maps a country name to its sales region, "Others" when
// the country is unmapped.
func RegionForCountry(country string) string {
	if region, ok := regionByCountry[country]; ok {
		return region
	}
	return defaultRegion
}
