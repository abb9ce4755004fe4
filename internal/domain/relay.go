package domain

type City struct {
	Code string
	Name string
}

type Country struct {
	Code   string
	Name   string
	Cities []City
}

// RelayList is the parsed relay_list_v2 response. Order follows the response.
type RelayList struct {
	Countries []Country
}

// CityRef pairs a city with the code of the country it belongs to.
type CityRef struct {
	CountryCode string
	City        City
}

// Cities flattens the list in response order.
func (l RelayList) Cities() []CityRef {
	var out []CityRef
	for _, c := range l.Countries {
		for _, city := range c.Cities {
			out = append(out, CityRef{CountryCode: c.Code, City: city})
		}
	}
	return out
}
