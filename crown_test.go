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

// rsoFor duplicates the Van Wagner critical-ROS formula so tests can
// pick rosSurfaceHead values on either side of the threshold without
// hardcoding a magic number.
func rsoFor(fp FuelParams, fmc, sfc float64) float64 {
	csi := 0.001 * math.Pow(fp.CBH, 1.5) * math.Pow(460+25.9*fmc, 1.5)
	return csi / (300 * sfc)
}

func TestClassifyCrownNoCrownFuelIsAlwaysSurface(t *testing.T) {
	in := FBPInputs{FoliarMoisture: 97, ISI: 15}
	cfb, ft, rosHead, cfc := classifyCrown(fuelTable[D1], in, 999, 5)
	if cfb != 0 || ft != Surface || cfc != 0 {
		t.Errorf("fuel with CBH=0 should never crown: cfb=%g ft=%v cfc=%g", cfb, ft, cfc)
	}
	if rosHead != 999 {
		t.Errorf("surface ROS should pass through unchanged, got %g", rosHead)
	}
}

func TestClassifyCrownBelowThresholdIsSurface(t *testing.T) {
	fp := fuelTable[C6]
	in := FBPInputs{FoliarMoisture: 97, ISI: 15}
	const sfc = 5.0
	rso := rsoFor(fp, in.FoliarMoisture, sfc)

	cfb, ft, rosHead, cfc := classifyCrown(fp, in, rso/2, sfc)
	if cfb != 0 || ft != Surface || cfc != 0 {
		t.Errorf("ROS below RSO should stay Surface: cfb=%g ft=%v cfc=%g", cfb, ft, cfc)
	}
	if rosHead != rso/2 {
		t.Errorf("ROS below RSO should pass through unchanged, got %g", rosHead)
	}
}

func TestClassifyCrownAboveThresholdCrowns(t *testing.T) {
	fp := fuelTable[C6]
	in := FBPInputs{FoliarMoisture: 97, ISI: 15}
	const sfc = 5.0
	rso := rsoFor(fp, in.FoliarMoisture, sfc)

	cfb, ft, _, cfc := classifyCrown(fp, in, rso*3, sfc)
	if cfb <= 0 || cfb > 1 {
		t.Fatalf("CFB out of [0,1] range: %g", cfb)
	}
	if ft == Surface {
		t.Errorf("ROS well above RSO should classify beyond Surface")
	}
	if cfc != cfb*fp.CFL {
		t.Errorf("crown fuel consumption should be CFB*CFL: got %g, want %g", cfc, cfb*fp.CFL)
	}
}

func TestClassifyCrownVeryHighROSGoesActive(t *testing.T) {
	fp := fuelTable[C6]
	in := FBPInputs{FoliarMoisture: 97, ISI: 30}
	const sfc = 3.0
	rso := rsoFor(fp, in.FoliarMoisture, sfc)

	cfb, ft, _, _ := classifyCrown(fp, in, rso*50, sfc)
	if ft != ActiveCrown {
		t.Errorf("extreme ROS should classify as ActiveCrown, got %v (cfb=%g)", ft, cfb)
	}
	if cfb < activeCrownThreshold {
		t.Errorf("ActiveCrown classification requires CFB >= %g, got %g", activeCrownThreshold, cfb)
	}
}

func TestClassifyCrownZeroSFCIsSurface(t *testing.T) {
	fp := fuelTable[C6]
	in := FBPInputs{FoliarMoisture: 97, ISI: 15}
	cfb, ft, rosHead, _ := classifyCrown(fp, in, 50, 0)
	if cfb != 0 || ft != Surface || rosHead != 50 {
		t.Errorf("zero surface fuel consumption should short-circuit to Surface: cfb=%g ft=%v rosHead=%g", cfb, ft, rosHead)
	}
}
