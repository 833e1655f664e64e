package pricing

import "strings"

// cityMultipliers maps city names to cost-of-living adjustments relative to
// Lagos. Substring match, first entry wins, so more specific names must
// come before names they contain.
var cityMultipliers = []struct {
	city       string
	multiplier float64
}{
	{"lagos", 1.00},
	{"abuja", 1.05},
	{"port harcourt", 0.95},
	{"ibadan", 0.85},
	{"enugu", 0.85},
	{"benin", 0.82},
	{"owerri", 0.83},
	{"uyo", 0.84},
	{"kano", 0.80},
	{"kaduna", 0.78},
	{"jos", 0.80},
	{"abeokuta", 0.82},
}

// defaultCityMultiplier covers smaller towns absent from the table.
const defaultCityMultiplier = 0.90

// CityMultiplier resolves an address or city name to its cost multiplier.
// Pure string matching, no I/O.
func CityMultiplier(cityOrAddress string) float64 {
	m, _ := LookupCityMultiplier(cityOrAddress)
	return m
}

// LookupCityMultiplier additionally reports whether the address matched a
// tabulated city; a false return carries the default multiplier.
func LookupCityMultiplier(cityOrAddress string) (float64, bool) {
	s := strings.ToLower(cityOrAddress)
	for _, e := range cityMultipliers {
		if strings.Contains(s, e.city) {
			return e.multiplier, true
		}
	}
	return defaultCityMultiplier, false
}
