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
	"gonum.org/v1/gonum/floats"
)

// ignitionVertexCount is N0 in spec.md §4.6.
const ignitionVertexCount = 16

// FireVertex is one point on the fire front, carried in both
// geographic and local-metric coordinates (mirrors framework.go's
// Cell, which keeps Geom and WebMapGeom side by side rather than
// reprojecting on every access).
type FireVertex struct {
	Lat, Lng float64
	Pos      geom.Point // local metric position, meters from the ignition origin
	Active   bool
}

// FirePerimeter is a single closed, simple ring of FireVertex plus the
// simulated time it represents. The driver exclusively owns the
// mutable FirePerimeter across one integration (spec.md §3).
type FirePerimeter struct {
	Vertices []FireVertex
	StepTime float64 // hours
}

// newIgnitionPerimeter seeds a small regular N0-gon around the
// ignition point, radius r0 = max(1m, ROSHead*dtInit) (spec.md §4.6).
func newIgnitionPerimeter(plane tangentPlane, rosHeadMPerMin, dtInitSeconds float64) FirePerimeter {
	r0 := math.Max(1, rosHeadMPerMin/60*dtInitSeconds)
	verts := make([]FireVertex, 0, ignitionVertexCount+1)
	for i := 0; i < ignitionVertexCount; i++ {
		bearing := float64(i) * 360 / ignitionVertexCount
		pos := geom.Point{X: r0 * math.Sin(bearing*deg2rad), Y: r0 * math.Cos(bearing*deg2rad)}
		lat, lng := plane.toLatLng(pos)
		verts = append(verts, FireVertex{Lat: lat, Lng: lng, Pos: pos, Active: true})
	}
	verts = append(verts, verts[0])
	return FirePerimeter{Vertices: verts}
}

// openRing returns the vertex positions without the closing duplicate.
func (p FirePerimeter) openRing() []geom.Point {
	n := len(p.Vertices)
	if n < 2 {
		return nil
	}
	out := make([]geom.Point, n-1)
	for i := 0; i < n-1; i++ {
		out[i] = p.Vertices[i].Pos
	}
	return out
}

// Close ensures the ring's first and last vertex are identical
// (spec.md §4.6).
func (p *FirePerimeter) Close() {
	n := len(p.Vertices)
	if n == 0 {
		return
	}
	if n == 1 || p.Vertices[0].Pos != p.Vertices[n-1].Pos {
		p.Vertices = append(p.Vertices, p.Vertices[0])
	}
}

// distinctVertexCount counts vertices excluding the closing duplicate.
func (p FirePerimeter) distinctVertexCount() int {
	n := len(p.Vertices)
	if n == 0 {
		return 0
	}
	if n >= 2 && p.Vertices[0].Pos == p.Vertices[n-1].Pos {
		return n - 1
	}
	return n
}

// Degenerate reports whether the ring has fewer than 3 distinct
// vertices (spec.md §4.6/§4.7).
func (p FirePerimeter) Degenerate() bool {
	return p.distinctVertexCount() < 3
}

// AreaHectares computes the ring's area via the shoelace formula in
// the local metric frame, converted to hectares. Degenerate
// perimeters (fewer than 3 distinct vertices) have area 0 (spec.md
// §4.6).
func (p FirePerimeter) AreaHectares() float64 {
	ring := p.openRing()
	if len(ring) < 3 {
		return 0
	}
	a := shoelace(ring)
	return math.Abs(a) / 2 / 10000
}

func shoelace(ring []geom.Point) float64 {
	n := len(ring)
	a := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return a
}

// EnforceCCW reverses the ring if its signed area is negative, so the
// winding order is consistently counter-clockwise in the local metric
// frame (spec.md §4.6).
func (p *FirePerimeter) EnforceCCW() {
	ring := p.openRing()
	if len(ring) < 3 {
		return
	}
	if shoelace(ring) < 0 {
		n := len(p.Vertices)
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			p.Vertices[i], p.Vertices[j] = p.Vertices[j], p.Vertices[i]
		}
	}
}

// ToGeomPolygon converts the ring to a github.com/ctessum/geom.Polygon
// for cross-checking area/bounds against the shoelace implementation
// above.
func (p FirePerimeter) ToGeomPolygon() geom.Polygon {
	ring := p.openRing()
	if len(ring) == 0 {
		return geom.Polygon{}
	}
	closed := append(append([]geom.Point{}, ring...), ring[0])
	return geom.Polygon{closed}
}

// OutwardNormals returns, for each distinct vertex (excluding the
// closing duplicate), the compass bearing of the outward normal —
// the direction bisecting the two adjacent edges' normals, pointing
// away from the ring's centroid (spec.md §4.5).
func (p FirePerimeter) OutwardNormals() []float64 {
	ring := p.openRing()
	n := len(ring)
	if n < 3 {
		out := make([]float64, n)
		return out
	}
	cx, cy := centroid(ring)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		prev := ring[(i-1+n)%n]
		cur := ring[i]
		next := ring[(i+1)%n]

		n1x, n1y := edgeNormal(prev, cur)
		n2x, n2y := edgeNormal(cur, next)
		bx, by := n1x+n2x, n1y+n2y
		if bx == 0 && by == 0 {
			bx, by = n1x, n1y
		}
		// Orient outward: away from centroid.
		if bx*(cur.X-cx)+by*(cur.Y-cy) < 0 {
			bx, by = -bx, -by
		}
		out[i] = normalizeDegrees(math.Atan2(bx, by) / deg2rad)
	}
	return out
}

// edgeNormal returns the unit right-hand normal of the edge from a to
// b (outward for a counter-clockwise ring), or (0,0) for a zero-length
// edge.
func edgeNormal(a, b geom.Point) (float64, float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0
	}
	return dy / length, -dx / length
}

func centroid(ring []geom.Point) (float64, float64) {
	var sx, sy float64
	for _, p := range ring {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(ring))
	return sx / n, sy / n
}

// Resample subdivides edges longer than dMax and merges vertices
// closer together than dMin, keeping neighbor spacing between dMin and
// dMax (5-30m as the driver calls it). Run after every advection step, before
// rubber-band cleanup (see DESIGN.md's cleanup-order decision).
func (p *FirePerimeter) Resample(plane tangentPlane, dMin, dMax float64) {
	ring := p.openRing()
	if len(ring) < 2 {
		return
	}

	subdivided := make([]geom.Point, 0, len(ring))
	n := len(ring)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		subdivided = append(subdivided, a)
		d := math.Hypot(b.X-a.X, b.Y-a.Y)
		if d > dMax {
			segments := int(math.Ceil(d / dMax))
			for s := 1; s < segments; s++ {
				t := float64(s) / float64(segments)
				subdivided = append(subdivided, geom.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)})
			}
		}
	}

	merged := make([]geom.Point, 0, len(subdivided))
	for _, pt := range subdivided {
		if len(merged) > 0 {
			last := merged[len(merged)-1]
			if math.Hypot(pt.X-last.X, pt.Y-last.Y) < dMin {
				continue
			}
		}
		merged = append(merged, pt)
	}
	// Check wraparound between the last kept point and the first.
	if len(merged) > 2 {
		first, last := merged[0], merged[len(merged)-1]
		if math.Hypot(first.X-last.X, first.Y-last.Y) < dMin {
			merged = merged[:len(merged)-1]
		}
	}

	p.setFromLocal(plane, merged)
}

func (p *FirePerimeter) setFromLocal(plane tangentPlane, pts []geom.Point) {
	verts := make([]FireVertex, 0, len(pts)+1)
	for _, pt := range pts {
		lat, lng := plane.toLatLng(pt)
		verts = append(verts, FireVertex{Lat: lat, Lng: lng, Pos: pt, Active: true})
	}
	p.Vertices = verts
	p.Close()
}

// RemoveSelfIntersections is the "rubber-band" cleanup: it finds any
// pair of non-adjacent edges that cross, replaces the intervening
// vertex subsequence with the single intersection point, and repeats
// until no crossings remain (spec.md §4.6).
func (p *FirePerimeter) RemoveSelfIntersections(plane tangentPlane) {
	ring := p.openRing()
	for pass := 0; pass < len(ring)+8; pass++ {
		n := len(ring)
		if n < 4 {
			break
		}
		found := false
		for i := 0; i < n && !found; i++ {
			a1, a2 := ring[i], ring[(i+1)%n]
			for j := i + 2; j < n && !found; j++ {
				if i == 0 && j == n-1 {
					continue // adjacent via wraparound
				}
				b1, b2 := ring[j], ring[(j+1)%n]
				if pt, ok := segmentIntersection(a1, a2, b1, b2); ok {
					newRing := make([]geom.Point, 0, n)
					newRing = append(newRing, ring[:i+1]...)
					newRing = append(newRing, pt)
					newRing = append(newRing, ring[j+1:]...)
					ring = newRing
					found = true
				}
			}
		}
		if !found {
			break
		}
	}
	p.setFromLocal(plane, ring)
}

// segmentIntersection reports whether segment a1-a2 crosses segment
// b1-b2 at an interior point of both, returning that point.
func segmentIntersection(a1, a2, b1, b2 geom.Point) (geom.Point, bool) {
	r := geom.Point{X: a2.X - a1.X, Y: a2.Y - a1.Y}
	s := geom.Point{X: b2.X - b1.X, Y: b2.Y - b1.Y}
	denom := cross(r, s)
	if math.Abs(denom) < 1e-9 {
		return geom.Point{}, false
	}
	qp := geom.Point{X: b1.X - a1.X, Y: b1.Y - a1.Y}
	t := cross(qp, s) / denom
	u := cross(qp, r) / denom
	const eps = 1e-6
	if t > eps && t < 1-eps && u > eps && u < 1-eps {
		return geom.Point{X: a1.X + t*r.X, Y: a1.Y + t*r.Y}, true
	}
	return geom.Point{}, false
}

func cross(a, b geom.Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// CircularityRatio returns the ratio of the maximum to minimum vertex
// distance from the ring's centroid — 1.0 for a perfect circle. Used
// to check the zero-wind near-circular invariant in spec.md §8.
func CircularityRatio(p FirePerimeter) float64 {
	ring := p.openRing()
	if len(ring) < 3 {
		return 1
	}
	cx, cy := centroid(ring)
	radii := make([]float64, len(ring))
	for i, pt := range ring {
		radii[i] = math.Hypot(pt.X-cx, pt.Y-cy)
	}
	min, max := floats.Min(radii), floats.Max(radii)
	if min <= 0 {
		return math.Inf(1)
	}
	return max / min
}
