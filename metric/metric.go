package metric

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"

	"github.com/uyouii/trajectory-algorithms/common"
	"github.com/uyouii/trajectory-algorithms/model"
)

// DistanceFunc computes a nonnegative distance between two points. It must be
// pure and stateless; the pipeline applies one function consistently for both
// segmentation and graph construction.
type DistanceFunc func(a, b model.Point) float64

type Kind int

const (
	// GreatCircle treats points as (latitude, longitude) degrees and measures
	// distances in meters.
	GreatCircle Kind = iota
	// Planar treats points as generic 2D coordinates and measures straight
	// line distances in the input units.
	Planar
)

// Haversine is the great-circle distance in meters between two
// (latitude, longitude) points.
func Haversine(a, b model.Point) float64 {
	// orb points are (lon, lat)
	return geo.DistanceHaversine(orb.Point{a.Y, a.X}, orb.Point{b.Y, b.X})
}

// Euclidean is the planar straight line distance between two points.
func Euclidean(a, b model.Point) float64 {
	return planar.Distance(orb.Point{a.X, a.Y}, orb.Point{b.X, b.Y})
}

func (k Kind) Distance() (DistanceFunc, error) {
	switch k {
	case GreatCircle:
		return Haversine, nil
	case Planar:
		return Euclidean, nil
	}
	return nil, common.ErrorInvalidValue
}
