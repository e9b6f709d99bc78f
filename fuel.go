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

import "strings"

// FuelGroup is the broad fuel-behavior family a FuelCode belongs to.
type FuelGroup int

const (
	Conifer FuelGroup = iota
	Deciduous
	Mixed
	Open
	Slash
)

func (g FuelGroup) String() string {
	switch g {
	case Conifer:
		return "Conifer"
	case Deciduous:
		return "Deciduous"
	case Mixed:
		return "Mixed"
	case Open:
		return "Open"
	case Slash:
		return "Slash"
	default:
		return "Unknown"
	}
}

// FuelCode is a closed enumeration of the 18 FBP System fuel types.
// ParseFuelCode is the only way to go from a string to a FuelCode, and
// it validates against the fixed set; out-of-range integer values are
// rejected by lookupFuel and SimulationConfig.Validate.
type FuelCode int

const (
	C1 FuelCode = iota
	C2
	C3
	C4
	C5
	C6
	C7
	D1
	D2
	M1
	M2
	M3
	M4
	O1a
	O1b
	S1
	S2
	S3
	numFuelCodes
)

var fuelCodeNames = [numFuelCodes]string{
	C1: "C1", C2: "C2", C3: "C3", C4: "C4", C5: "C5", C6: "C6", C7: "C7",
	D1: "D1", D2: "D2",
	M1: "M1", M2: "M2", M3: "M3", M4: "M4",
	O1a: "O1a", O1b: "O1b",
	S1: "S1", S2: "S2", S3: "S3",
}

func (c FuelCode) String() string {
	if c < 0 || int(c) >= len(fuelCodeNames) {
		return "Unknown"
	}
	return fuelCodeNames[c]
}

// ParseFuelCode converts a fuel-type string (e.g. "C2", "o1b") into a
// FuelCode. It fails with InvalidConfig when the code does not match
// one of the 18 known types.
func ParseFuelCode(s string) (FuelCode, error) {
	s = strings.TrimSpace(s)
	for i, name := range fuelCodeNames {
		if strings.EqualFold(name, s) {
			return FuelCode(i), nil
		}
	}
	return 0, newError(InvalidConfig, "unknown fuel type %q", s)
}

// FuelParams is the frozen set of FBP System parameters for one fuel
// code (Forestry Canada Fire Danger Group 1992, the "FBP System" red
// book tables). One record per code; populated once into fuelTable
// and never mutated afterward.
type FuelParams struct {
	Code  FuelCode
	Group FuelGroup

	// RSI = A * (1 - exp(-B*ISI))^C, the surface rate-of-spread curve.
	A, B, C float64

	// BUI effect: BE = exp(50*ln(Q)*(1/BUI - 1/BUI0)), clamped to MaxBE.
	Q, BUI0, MaxBE float64

	// CBH is crown base height [m]; CFL is crown fuel load [kg/m2].
	// Used by the crown-fire model (crown.go).
	CBH, CFL float64

	// SurfaceFuelLoad [kg/m2] is used directly as SFC for the grass
	// (O1a/O1b) fuels and scales the BUI-dependent slash (S1-S3)
	// fuel-consumption formula.
	SurfaceFuelLoad float64

	// CrownA, CrownB, CrownC parameterize the fuel-specific crown ROS
	// formula RSC used by crown.go; in fuelTable only C2 and C6 set
	// them, so only those fuels get the crown ROS boost.
	CrownA, CrownB, CrownC float64
}

// fuelTable holds the frozen per-code parameter table. Values follow
// the standard FBP System (1992) equations of state; this is the
// leaf-most layer of the spread model and every other calculator
// reads from it, never writes to it.
var fuelTable = [numFuelCodes]FuelParams{
	C1: {Code: C1, Group: Conifer, A: 90, B: 0.0649, C: 4.5, Q: 0.90, BUI0: 72, MaxBE: 1.076, CBH: 2.0, CFL: 0.75},
	C2: {Code: C2, Group: Conifer, A: 110, B: 0.0282, C: 1.5, Q: 0.70, BUI0: 64, MaxBE: 1.321, CBH: 3.0, CFL: 0.80,
		CrownA: 50, CrownB: 0.0340, CrownC: 1.0},
	C3: {Code: C3, Group: Conifer, A: 110, B: 0.0444, C: 3.0, Q: 0.75, BUI0: 62, MaxBE: 1.261, CBH: 8.0, CFL: 1.15},
	C4: {Code: C4, Group: Conifer, A: 110, B: 0.0293, C: 1.5, Q: 0.80, BUI0: 66, MaxBE: 1.184, CBH: 4.0, CFL: 1.20},
	C5: {Code: C5, Group: Conifer, A: 30, B: 0.0697, C: 4.0, Q: 0.80, BUI0: 56, MaxBE: 1.220, CBH: 18.0, CFL: 1.20},
	C6: {Code: C6, Group: Conifer, A: 30, B: 0.0800, C: 3.0, Q: 0.80, BUI0: 62, MaxBE: 1.197, CBH: 7.0, CFL: 1.80,
		CrownA: 60, CrownB: 0.0497, CrownC: 1.0},
	C7: {Code: C7, Group: Conifer, A: 45, B: 0.0305, C: 2.0, Q: 0.85, BUI0: 106, MaxBE: 1.134, CBH: 10.0, CFL: 0.50},
	D1: {Code: D1, Group: Deciduous, A: 30, B: 0.0232, C: 1.6, Q: 0.90, BUI0: 32, MaxBE: 1.179, CBH: 0, CFL: 0},
	D2: {Code: D2, Group: Deciduous, A: 30, B: 0.0232, C: 1.6, Q: 0.90, BUI0: 32, MaxBE: 1.179, CBH: 0, CFL: 0},
	M1: {Code: M1, Group: Mixed, Q: 0.80, BUI0: 50, MaxBE: 1.250, CBH: 6.0, CFL: 0.80},
	M2: {Code: M2, Group: Mixed, Q: 0.80, BUI0: 50, MaxBE: 1.250, CBH: 6.0, CFL: 0.80},
	M3: {Code: M3, Group: Mixed, A: 120, B: 0.0572, C: 1.4, Q: 0.80, BUI0: 50, MaxBE: 1.250, CBH: 6.0, CFL: 0.80},
	M4: {Code: M4, Group: Mixed, A: 100, B: 0.0404, C: 1.48, Q: 0.80, BUI0: 50, MaxBE: 1.250, CBH: 6.0, CFL: 0.80},
	O1a: {Code: O1a, Group: Open, A: 190, B: 0.0310, C: 1.4, Q: 1.00, BUI0: 1, MaxBE: 1.000, CBH: 0, CFL: 0, SurfaceFuelLoad: 0.35},
	O1b: {Code: O1b, Group: Open, A: 250, B: 0.0350, C: 1.7, Q: 1.00, BUI0: 1, MaxBE: 1.000, CBH: 0, CFL: 0, SurfaceFuelLoad: 0.35},
	S1:  {Code: S1, Group: Slash, A: 75, B: 0.0297, C: 1.3, Q: 0.75, BUI0: 38, MaxBE: 1.460, CBH: 0, CFL: 0, SurfaceFuelLoad: 4.0},
	S2:  {Code: S2, Group: Slash, A: 40, B: 0.0438, C: 1.7, Q: 0.75, BUI0: 63, MaxBE: 1.256, CBH: 0, CFL: 0, SurfaceFuelLoad: 10.0},
	S3:  {Code: S3, Group: Slash, A: 55, B: 0.0829, C: 3.2, Q: 0.75, BUI0: 31, MaxBE: 1.590, CBH: 0, CFL: 0, SurfaceFuelLoad: 12.0},
}

// c2Params and d1Params back the mixedwood RSI blends (C2 for M1/M2,
// D1 for all of M1-M4).
var c2Params = fuelTable[C2]
var d1Params = fuelTable[D1]

// lookupFuel returns the frozen parameter record for code, or an
// InvalidConfig error if code is out of range.
func lookupFuel(code FuelCode) (FuelParams, error) {
	if code < 0 || code >= numFuelCodes {
		return FuelParams{}, newError(InvalidConfig, "unknown fuel code %d", int(code))
	}
	return fuelTable[code], nil
}

// FuelTable returns a copy of the frozen per-code FBP parameter table,
// keyed by fuel code name. It exists for callers that want to inspect
// the 18 fuel types without reaching into package internals.
func FuelTable() map[string]FuelParams {
	out := make(map[string]FuelParams, numFuelCodes)
	for i, p := range fuelTable {
		out[FuelCode(i).String()] = p
	}
	return out
}
