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

	"github.com/ctessum/geom"
)

func TestTangentPlaneOriginMapsToZero(t *testing.T) {
	p := newTangentPlane(51.0, -114.0)
	pt := p.toLocal(51.0, -114.0)
	if pt.X != 0 || pt.Y != 0 {
		t.Errorf("origin should map to (0,0), got (%g,%g)", pt.X, pt.Y)
	}
}

func TestTangentPlaneRoundTrip(t *testing.T) {
	p := newTangentPlane(51.0, -114.0)
	cases := []geom.Point{
		{X: 0, Y: 0},
		{X: 1000, Y: -500},
		{X: -2500, Y: 8000},
	}
	for _, pt := range cases {
		lat, lng := p.toLatLng(pt)
		back := p.toLocal(lat, lng)
		if math.Abs(back.X-pt.X) > 1e-6 || math.Abs(back.Y-pt.Y) > 1e-6 {
			t.Errorf("round trip for %+v gave %+v", pt, back)
		}
	}
}

func TestTangentPlaneNorthIsPositiveY(t *testing.T) {
	p := newTangentPlane(51.0, -114.0)
	pt := p.toLocal(51.01, -114.0)
	if pt.Y <= 0 {
		t.Errorf("a point north of the origin should have positive Y, got %g", pt.Y)
	}
	if math.Abs(pt.X) > 1e-6 {
		t.Errorf("a point due north should have X ~= 0, got %g", pt.X)
	}
}

func TestTangentPlaneEastIsPositiveX(t *testing.T) {
	p := newTangentPlane(51.0, -114.0)
	pt := p.toLocal(51.0, -113.99)
	if pt.X <= 0 {
		t.Errorf("a point east of the origin should have positive X, got %g", pt.X)
	}
}
