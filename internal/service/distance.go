package service

import (
	"math"

	"sensitive-places-api/internal/models"
)

// EarthRadiusMeters is the mean Earth radius used by Distance.
const EarthRadiusMeters = 6371e3

// Distance returns the haversine great-circle distance between two points,
// rounded to whole meters. Inputs are not range checked.
func Distance(from, to models.Coordinates) int {
	phi1 := from.Lat * math.Pi / 180
	phi2 := to.Lat * math.Pi / 180
	deltaPhi := (to.Lat - from.Lat) * math.Pi / 180
	deltaLambda := (to.Lng - from.Lng) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(EarthRadiusMeters * c))
}
