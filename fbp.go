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
	"time"
)

// defaultFoliarMoisture is used when FBPInputs.FoliarMoisture is zero
// and no ignition date/latitude is available to derive one (spec.md
// §9 open question: FMC fixed at 97 in the simplest reading).
const defaultFoliarMoisture = 97.0

// defaultGrassCuring is the degree-of-curing parameter (percent) used
// when FBPInputs.GrassCuring is zero.
const defaultGrassCuring = 60.0

// FBPInputs bundles the per-call inputs to the FBP calculator beyond
// the fuel code itself. A zero FoliarMoisture, PercentConifer or
// GrassCuring falls back to a default; the other fields are used as
// given.
type FBPInputs struct {
	ISI, BUI       float64
	FFMC           float64 // used by the conifer SFC formula
	WindSpeed      float64 // km/h, 10m
	FoliarMoisture float64 // percent; 0 means "derive from IgnitionDate/Lat, falling back to the default"
	PercentConifer float64 // percent, M1/M2 only; 0 means 100% conifer blend weight is undefined, so 100 is assumed
	PercentDeadFir float64 // percent, M3/M4 only
	GrassCuring    float64 // percent, O1a/O1b only; 0 means defaultGrassCuring

	// IgnitionDate and Lat feed the date/latitude FMC curve
	// (foliarMoistureFromDate) when FoliarMoisture is not set. A zero
	// IgnitionDate skips the curve and keeps the fixed default.
	IgnitionDate time.Time
	Lat          float64
}

// FBPResult is the full output of one FBP calculation: surface and
// crown behavior combined into head/flank/back rate of spread, fuel
// consumption, intensity, geometry, and classification.
type FBPResult struct {
	FuelCode FuelCode

	RSI float64 // surface rate of spread index, pre-BUI-effect
	BE  float64 // buildup effect multiplier

	SFC float64 // surface fuel consumption, kg/m2
	CFC float64 // crown fuel consumption, kg/m2
	TFC float64 // total fuel consumption, kg/m2

	ROSHead, ROSFlank, ROSBack float64 // m/min
	LBR                        float64 // length-to-breadth ratio

	HFI         float64 // kW/m, head fire intensity
	FlameLength float64 // m

	CFB      float64
	FireType FireType
}

// ComputeFBP runs the FBP System equation stack for one fuel code and
// one set of spread-drivers, following spec.md §4.2-§4.3. It fails
// with InvalidConfig for an unknown fuel code and InvalidInputs for a
// negative ISI or BUI.
func ComputeFBP(code FuelCode, in FBPInputs) (FBPResult, error) {
	fp, err := lookupFuel(code)
	if err != nil {
		return FBPResult{}, err
	}
	if in.ISI < 0 || in.BUI < 0 {
		return FBPResult{}, newError(InvalidInputs, "ISI and BUI must be >= 0, got ISI=%g BUI=%g", in.ISI, in.BUI)
	}
	if in.FoliarMoisture == 0 {
		in.FoliarMoisture = foliarMoistureFromDate(in.IgnitionDate, in.Lat)
	}
	if in.GrassCuring == 0 {
		in.GrassCuring = defaultGrassCuring
	}
	if in.PercentConifer == 0 {
		in.PercentConifer = 100
	}

	rsi := surfaceRSI(fp, in)
	be := buildupEffect(fp, in.BUI)

	rosSurfaceHead := rsi * be
	if fp.Code == D2 {
		rosSurfaceHead *= 0.2
	}
	if rosSurfaceHead < 0 || math.IsNaN(rosSurfaceHead) {
		return FBPResult{}, newError(NumericError, "surface ROS computed as %g for fuel %s", rosSurfaceHead, fp.Code)
	}

	sfc := surfaceFuelConsumption(fp, in)

	cfb, fireType, rosHead, cfc := classifyCrown(fp, in, rosSurfaceHead, sfc)
	tfc := sfc + cfc

	lbr := lengthToBreadth(in.WindSpeed)
	bros := rosHead * math.Exp(-0.05039*in.WindSpeed)
	fros := (rosHead + bros) / (2 * lbr)

	hfi := 300 * tfc * rosHead
	flameLen := 0.0775 * math.Pow(math.Max(hfi, 0), 0.46)

	return FBPResult{
		FuelCode:    code,
		RSI:         rsi,
		BE:          be,
		SFC:         sfc,
		CFC:         cfc,
		TFC:         tfc,
		ROSHead:     rosHead,
		ROSFlank:    fros,
		ROSBack:     bros,
		LBR:         lbr,
		HFI:         hfi,
		FlameLength: flameLen,
		CFB:         cfb,
		FireType:    fireType,
	}, nil
}

// surfaceRSI dispatches the RSI = a*(1-exp(-b*ISI))^c curve to the
// right fuel-group branch. No polymorphism: a closed switch over the
// fuel group, per spec.md §9's re-architecting note.
func surfaceRSI(fp FuelParams, in FBPInputs) float64 {
	switch fp.Group {
	case Conifer, Deciduous, Slash:
		return rsiCurve(fp.A, fp.B, fp.C, in.ISI)
	case Open:
		cf := curingFactor(in.GrassCuring)
		return rsiCurve(fp.A, fp.B, fp.C, in.ISI) * cf
	case Mixed:
		return mixedwoodRSI(fp, in)
	default:
		return 0
	}
}

func rsiCurve(a, b, c, isi float64) float64 {
	return a * math.Pow(1-math.Exp(-b*isi), c)
}

// curingFactor is a monotonic curing-factor curve with CF(0)=0 (the
// ROS_head=0 boundary case in spec.md §8) and CF(100)=1; it is a
// simplified stand-in for the Cruz et al. grass curing curve, chosen
// because the exact official curve is not pinned down by spec.md.
func curingFactor(curingPct float64) float64 {
	c := curingPct / 100
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return c * c
}

// mixedwoodRSI blends a conifer curve (C2 for M1/M2, the fuel's own
// a,b,c for M3/M4) with the deciduous D1 curve (D1*0.2 for the
// leafless M2/M4 case) by percent conifer / dead fir, per spec.md §4.2.
func mixedwoodRSI(fp FuelParams, in FBPInputs) float64 {
	c2 := rsiCurve(c2Params.A, c2Params.B, c2Params.C, in.ISI)
	d1 := rsiCurve(d1Params.A, d1Params.B, d1Params.C, in.ISI)

	switch fp.Code {
	case M1:
		pc := in.PercentConifer / 100
		return pc*c2 + (1-pc)*d1
	case M2:
		pc := in.PercentConifer / 100
		return pc*c2 + (1-pc)*d1*0.2
	case M3:
		pdf := in.PercentDeadFir / 100
		m3 := rsiCurve(fp.A, fp.B, fp.C, in.ISI)
		return pdf*m3 + (1-pdf)*d1
	case M4:
		pdf := in.PercentDeadFir / 100
		m4 := rsiCurve(fp.A, fp.B, fp.C, in.ISI)
		return pdf*m4 + (1-pdf)*d1*0.2
	default:
		return 0
	}
}

// buildupEffect computes BE = exp(50*ln(q)*(1/BUI - 1/BUI0)), clamped
// to [0, MaxBE]. O1a/O1b skip the BUI effect entirely (spec.md §4.2).
func buildupEffect(fp FuelParams, bui float64) float64 {
	if fp.Group == Open {
		return 1
	}
	if bui <= 0 {
		return 0
	}
	be := math.Exp(50 * math.Log(fp.Q) * (1/bui - 1/fp.BUI0))
	if be > fp.MaxBE {
		be = fp.MaxBE
	}
	if be < 0 {
		be = 0
	}
	return be
}

// surfaceFuelConsumption computes SFC per the fuel-group formulas in
// spec.md §4.2. These are simplified single-curve forms of the FBP
// System's per-fuel SFC tables, chosen because spec.md does not pin
// down the official per-fuel coefficients.
func surfaceFuelConsumption(fp FuelParams, in FBPInputs) float64 {
	switch fp.Group {
	case Conifer:
		ffmcTerm := 1.5 * (1 - math.Exp(-0.0735*(in.FFMC-50)))
		if ffmcTerm < 0 {
			ffmcTerm = 0
		}
		buiTerm := 2.5 * (1 - math.Exp(-0.0115*in.BUI))
		return ffmcTerm + buiTerm
	case Deciduous:
		return 1.0 + 0.5*(1-math.Exp(-0.0108*in.BUI))
	case Slash:
		return fp.SurfaceFuelLoad * (1 - math.Exp(-0.01*in.BUI))
	case Open:
		return fp.SurfaceFuelLoad
	case Mixed:
		conifer := 1.5*(1-math.Exp(-0.0735*(in.FFMC-50))) + 2.5*(1-math.Exp(-0.0115*in.BUI))
		if conifer < 0 {
			conifer = 0
		}
		deciduous := 1.0 + 0.5*(1-math.Exp(-0.0108*in.BUI))
		var frac float64
		switch fp.Code {
		case M1, M2:
			frac = in.PercentConifer / 100
		case M3, M4:
			frac = in.PercentDeadFir / 100
		}
		return frac*conifer + (1-frac)*deciduous
	default:
		return 0
	}
}

// lengthToBreadth computes the elliptical length-to-breadth ratio
// (ST-X-3 Eq. 80).
func lengthToBreadth(ws float64) float64 {
	return 1 + 8.729*math.Pow(1-math.Exp(-0.030*ws), 2.155)
}

// foliarMoistureFromDate is the date/latitude FMC supplement named in
// spec.md §9's open question (ST-X-3 Eq. 1-3 describe the official
// curve; this is a simplified stand-in since the precise coefficients
// aren't pinned down by spec.md). FMC is lowest around the latitude's
// spring green-up day and rises on either side of it, clamped to the
// FBP System's documented 85-120% range. A zero date keeps the fixed
// default used when no ignition date is supplied.
func foliarMoistureFromDate(date time.Time, lat float64) float64 {
	if date.IsZero() {
		return defaultFoliarMoisture
	}
	greenup := 151.0 + (lat-46.0)*1.0 // later green-up further north
	diff := float64(date.YearDay()) - greenup
	fmc := 85 + 0.0189*diff*diff
	return clamp(fmc, 85, 120)
}
