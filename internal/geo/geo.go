// Package geo maps supported supplier locations to map coordinates.
//
// The table is fixed; there is no geocoding service behind it. An
// unknown location is not an error: it resolves to a default centroid
// and logs a warning, so a record with a stale location string still
// renders somewhere sensible.
package geo

import (
	"log"
	"sort"
)

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// DefaultCentroid is the fallback position for unknown locations: the
// geographic center of the contiguous United States.
var DefaultCentroid = Coordinate{Lat: 39.8283, Lng: -98.5795}

// locations is the fixed set of supported location strings.
var locations = map[string]Coordinate{
	"San Francisco, CA": {37.7749, -122.4194},
	"Austin, TX":        {30.2672, -97.7431},
	"Seattle, WA":       {47.6062, -122.3321},
	"Portland, OR":      {45.5155, -122.6789},
	"Boston, MA":        {42.3601, -71.0589},
	"New York, NY":      {40.7128, -74.0060},
	"Chicago, IL":       {41.8781, -87.6298},
	"Los Angeles, CA":   {34.0522, -118.2437},
	"Miami, FL":         {25.7617, -80.1918},
	"Denver, CO":        {39.7392, -104.9903},
}

// Lookup returns the coordinate for a supported location string.
func Lookup(location string) (Coordinate, bool) {
	c, ok := locations[location]
	return c, ok
}

// Resolve returns the coordinate for a location, falling back to
// DefaultCentroid (with a logged warning) when the location is unknown.
func Resolve(location string) Coordinate {
	c, ok := locations[location]
	if !ok {
		log.Printf("geo: no coordinates for location %q, using default centroid", location)
		return DefaultCentroid
	}
	return c
}

// Names returns the supported location strings, sorted.
func Names() []string {
	out := make([]string, 0, len(locations))
	for name := range locations {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
