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

import "math"

// FireType classifies how a fire is propagating through the canopy,
// per Van Wagner (1977).
type FireType int

const (
	Surface FireType = iota
	PassiveCrown
	ActiveCrown
)

func (t FireType) String() string {
	switch t {
	case Surface:
		return "surface"
	case PassiveCrown:
		return "passive_crown"
	case ActiveCrown:
		return "active_crown"
	default:
		return "unknown"
	}
}

// MarshalJSON satisfies the snapshot format's
// "surface"|"passive_crown"|"active_crown" string enumeration.
func (t FireType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// activeCrownThreshold is the crown fraction burned above which a
// fire is classified as active rather than intermittent/passive
// (spec.md §4.3).
const activeCrownThreshold = 0.9

// classifyCrown applies the Van Wagner (1977) critical-intensity test
// and, for fuels with a defined crown ROS curve, the crown-fire ROS
// boost. It returns the crown fraction burned, the fire type, the
// (possibly boosted) head ROS, and the crown fuel consumption.
func classifyCrown(fp FuelParams, in FBPInputs, rosSurfaceHead, sfc float64) (cfb float64, fireType FireType, rosHead float64, cfc float64) {
	if fp.CBH <= 0 || fp.CFL <= 0 {
		return 0, Surface, rosSurfaceHead, 0
	}

	csi := 0.001 * math.Pow(fp.CBH, 1.5) * math.Pow(460+25.9*in.FoliarMoisture, 1.5)
	if sfc <= 0 {
		return 0, Surface, rosSurfaceHead, 0
	}
	rso := csi / (300 * sfc)

	if rosSurfaceHead < rso {
		return 0, Surface, rosSurfaceHead, 0
	}

	cfb = 1 - math.Exp(-0.23*(rosSurfaceHead-rso))
	if cfb < 0 {
		cfb = 0
	}
	if cfb > 1 {
		cfb = 1
	}

	rosHead = rosSurfaceHead
	if fp.CrownA > 0 {
		rsc := rsiCurve(fp.CrownA, fp.CrownB, fp.CrownC, in.ISI)
		rosHead = rosSurfaceHead + cfb*(rsc-rosSurfaceHead)
	}

	cfc = cfb * fp.CFL

	if cfb >= activeCrownThreshold {
		fireType = ActiveCrown
	} else {
		fireType = PassiveCrown
	}
	return cfb, fireType, rosHead, cfc
}
