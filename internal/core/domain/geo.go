package domain

import (
	"strconv"
	"strings"
)

// ParseCoordinates checks the free-text latitude/longitude pair of a theft
// report. Both must be given or both left empty.
func ParseCoordinates(lat, lng string) (*float64, *float64, error) {
	lat, lng = strings.TrimSpace(lat), strings.TrimSpace(lng)
	if lat == "" && lng == "" {
		return nil, nil, nil
	}

	verr := &ValidationError{}
	if lat == "" {
		verr.Add("latitude", "latitude is required when longitude is set")
	}
	if lng == "" {
		verr.Add("longitude", "longitude is required when latitude is set")
	}
	if err := verr.OrNil(); err != nil {
		return nil, nil, err
	}

	latV, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		verr.Add("latitude", "must be a number")
	} else if latV < -90 || latV > 90 {
		verr.Add("latitude", "must be between -90 and 90")
	}

	lngV, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		verr.Add("longitude", "must be a number")
	} else if lngV < -180 || lngV > 180 {
		verr.Add("longitude", "must be between -180 and 180")
	}

	if err := verr.OrNil(); err != nil {
		return nil, nil, err
	}
	return &latV, &lngV, nil
}
