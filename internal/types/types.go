// Package types holds small value objects shared across modules.
package types

// Point is a WGS84 coordinate pair in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Location is a caller-supplied, fully geocoded place. The engine never
// resolves addresses itself; geocoding is an upstream concern.
type Location struct {
	Address string
	Point
}
