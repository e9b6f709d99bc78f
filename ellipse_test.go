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
	"testing"
)

func TestWindToDirectionIsOpposite(t *testing.T) {
	if got := windToDirection(0); got != 180 {
		t.Errorf("windToDirection(0) = %g, want 180", got)
	}
	if got := windToDirection(270); got != 90 {
		t.Errorf("windToDirection(270) = %g, want 90", got)
	}
}

// With ROSHead == ROSBack the elemental ellipse degenerates to a
// circle: every heading displaces the vertex by the same distance.
func TestEllipseDisplacementCircularWhenHeadEqualsBack(t *testing.T) {
	const ros = 20.0 // m/min
	const dt = 2.0    // minutes
	want := ros * dt
	for _, heading := range []float64{0, 45, 90, 180, 270} {
		disp := ellipseDisplacement(ros, ros, 90, heading, dt)
		got := math.Hypot(disp.X, disp.Y)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("heading=%g: displacement=%g, want %g", heading, got, want)
		}
	}
}

// With ROSHead > ROSBack, the vertex whose outward normal points
// downwind should displace further than the one pointing upwind.
func TestEllipseDisplacementHeadExceedsBack(t *testing.T) {
	const head, back = 40.0, 10.0
	const windToDir = 90.0
	const dt = 1.0

	downDisp := ellipseDisplacement(head, back, windToDir, windToDir, dt)
	downDist := math.Hypot(downDisp.X, downDisp.Y)

	upwind := normalizeDegrees(windToDir + 180)
	upDisp := ellipseDisplacement(head, back, windToDir, upwind, dt)
	upDist := math.Hypot(upDisp.X, upDisp.Y)

	if downDist <= upDist {
		t.Errorf("downwind displacement %g should exceed upwind displacement %g", downDist, upDist)
	}
}

func TestEllipseDisplacementZeroROSIsZero(t *testing.T) {
	disp := ellipseDisplacement(0, 0, 90, 45, 5)
	if disp.X != 0 || disp.Y != 0 {
		t.Errorf("zero ROS should produce zero displacement, got (%g,%g)", disp.X, disp.Y)
	}
}
