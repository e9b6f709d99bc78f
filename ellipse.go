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

const deg2rad = math.Pi / 180

// ellipseDisplacement implements the Huygens wavelet: the vertex is
// the focus of an elemental ellipse whose major axis lies along the
// downwind direction, with a = (ROSHead+ROSBack)/2*dt and focus offset
// c = (ROSHead-ROSBack)/2*dt (spec.md §4.5). The new front position in
// the direction of headingDeg (the vertex's outward normal azimuth,
// compass bearing) is the polar-from-focus point on that ellipse,
// r(delta) = a*(1-e^2)/(1-e*cos(delta)), e = c/a — the textbook
// Prometheus/Richards formulation referenced in spec.md §4.5/§9 and
// the literal reading of the glossary's "every front point is the
// source of an elemental wavelet" definition. The returned geom.Point
// is a displacement vector (meters, x=east, y=north), added to a
// vertex's geom.Point position in driver.go's step, the same way
// framework.go's Cell carries its position as a geom.T rather than a
// pair of bare floats.
func ellipseDisplacement(rosHead, rosBack, windToDirDeg, headingDeg, dt float64) geom.Point {
	a := (rosHead + rosBack) / 2 * dt
	if a <= 0 {
		return geom.Point{}
	}
	c := (rosHead - rosBack) / 2 * dt
	e := c / a

	delta := (headingDeg - windToDirDeg) * deg2rad
	denom := 1 - e*math.Cos(delta)
	if denom < 1e-6 {
		denom = 1e-6
	}
	r := a * (1 - e*e) / denom
	if r < 0 {
		r = 0
	}

	hr := headingDeg * deg2rad
	return geom.Point{X: r * math.Sin(hr), Y: r * math.Cos(hr)}
}

// windToDirection converts a meteorological "wind is coming from"
// bearing into the "fire spreads toward" bearing.
func windToDirection(windFromDeg float64) float64 {
	return normalizeDegrees(windFromDeg + 180)
}

// bearingBetween returns the compass bearing (degrees, clockwise from
// north) from (x0,y0) to (x1,y1) in the local metric plane.
func bearingBetween(x0, y0, x1, y1 float64) float64 {
	return normalizeDegrees(math.Atan2(x1-x0, y1-y0) / deg2rad)
}
