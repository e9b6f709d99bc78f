/*
Copyright © 2026 the firespread authors.
This file is part of firespread.

firespread is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

firespread is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with firespread.  If not, see <http://www.gnu.org/licenses/>.
*/

package firespread

import (
	"math"

	"github.com/ctessum/geom"
)

// earthRadiusM is the WGS84 equatorial Earth radius used for the local tangent
// plane projection (spec.md §3).
const earthRadiusM = 6378137.0

// tangentPlane is a local metric plane centered on an ignition point.
// The driver owns exactly one per simulation; it never mutates after
// construction, mirroring how framework.go's Cell keeps both a native
// and a web-map geom.T side by side rather than reprojecting on every
// access.
type tangentPlane struct {
	lat0, lng0 float64
	cosLat0    float64
}

func newTangentPlane(lat0, lng0 float64) tangentPlane {
	return tangentPlane{lat0: lat0, lng0: lng0, cosLat0: math.Cos(lat0 * deg2rad)}
}

// toLocal converts a lat/lng into the local metric plane, x=east,
// y=north, meters from the ignition origin.
func (p tangentPlane) toLocal(lat, lng float64) geom.Point {
	x := (lng - p.lng0) * p.cosLat0 * earthRadiusM * deg2rad
	y := (lat - p.lat0) * earthRadiusM * deg2rad
	return geom.Point{X: x, Y: y}
}

// toLatLng converts a local metric point back to lat/lng.
func (p tangentPlane) toLatLng(pt geom.Point) (lat, lng float64) {
	lat = p.lat0 + pt.Y/(earthRadiusM*deg2rad)
	lng = p.lng0 + pt.X/(p.cosLat0*earthRadiusM*deg2rad)
	return lat, lng
}
