package api

import "github.com/phrazzld/lunisolar-api/internal/domain/lunisolar"

// LunarDateResponse is the body of a successful solar-to-lunar conversion.
// It has no year field.
type LunarDateResponse struct {
	Month int `json:"month"`
	Day   int `json:"day"`
}

// SolarDateResponse is one element of a lunar-to-solar response array.
type SolarDateResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func lunarResultToResponse(res lunisolar.LunarResult) LunarDateResponse {
	return LunarDateResponse{
		Month: int(res.Month),
		Day:   int(res.Day),
	}
}

// solarResultsToResponse never returns nil, so an empty result encodes as [].
func solarResultsToResponse(results []lunisolar.SolarResult) []SolarDateResponse {
	out := make([]SolarDateResponse, 0, len(results))
	for _, res := range results {
		out = append(out, SolarDateResponse{
			Year:  int(res.Year),
			Month: int(res.Month),
			Day:   int(res.Day),
		})
	}
	return out
}
