package domain

import "bikeshare/internal/platform/slug"

type City string

const (
	CityChicago    City = "chicago"
	CityNewYork    City = "new_york_city"
	CityWashington City = "washington"
)

// Cities lists the supported cities in prompt order.
func Cities() []City {
	return []City{CityChicago, CityNewYork, CityWashington}
}

func (c City) Validate() error {
	switch c {
	case CityChicago, CityNewYork, CityWashington:
		return nil
	default:
		return &UnknownCityError{Input: string(c)}
	}
}

func (c City) DisplayName() string {
	switch c {
	case CityChicago:
		return "Chicago"
	case CityNewYork:
		return "New York City"
	case CityWashington:
		return "Washington"
	default:
		return string(c)
	}
}

// ParseCity accepts ids and display names in any case, e.g. "New York",
// "new_york_city" or "CHICAGO".
func ParseCity(input string) (City, error) {
	switch slug.Make(input) {
	case "chicago":
		return CityChicago, nil
	case "new-york", "new-york-city", "nyc":
		return CityNewYork, nil
	case "washington", "washington-dc", "washington-d-c":
		return CityWashington, nil
	default:
		return "", &UnknownCityError{Input: input}
	}
}
