package domain

import "fmt"

// City is one of the fixed set of cities served by airports and flights.
type City string

const (
	CityDelhi     City = "DELHI"
	CityMumbai    City = "MUMBAI"
	CityKolkata   City = "KOLKATA"
	CityChennai   City = "CHENNAI"
	CityBangalore City = "BANGALORE"
	CityHyderabad City = "HYDERABAD"
	CityPune      City = "PUNE"
	CityJaipur    City = "JAIPUR"
	CityNYC       City = "NYC"
	CityLA        City = "LA"
	CityChicago   City = "CHICAGO"
	CityLondon    City = "LONDON"
	CityParis     City = "PARIS"
	CityTokyo     City = "TOKYO"
)

var cities = map[City]struct{}{
	CityDelhi:     {},
	CityMumbai:    {},
	CityKolkata:   {},
	CityChennai:   {},
	CityBangalore: {},
	CityHyderabad: {},
	CityPune:      {},
	CityJaipur:    {},
	CityNYC:       {},
	CityLA:        {},
	CityChicago:   {},
	CityLondon:    {},
	CityParis:     {},
	CityTokyo:     {},
}

func (c City) Valid() bool {
	_, ok := cities[c]
	return ok
}

// ParseCity accepts only the exact constant names, the same rule the
// "city" binding applies to request bodies.
func ParseCity(s string) (City, error) {
	c := City(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, s)
	}
	return c, nil
}
