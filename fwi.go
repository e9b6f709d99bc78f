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

// dayLengthDMC and dayLengthDC are the Van Wagner (1987) effective
// day-length adjustment tables for the Duff Moisture Code and Drought
// Code, indexed January-December for the northern hemisphere. The
// southern hemisphere uses the same table shifted by six months.
var dayLengthDMC = [12]float64{6.5, 7.5, 9.0, 12.8, 13.9, 13.9, 12.4, 10.9, 9.4, 8.0, 7.0, 6.0}
var dayLengthDC = [12]float64{-1.6, -1.6, -1.6, 0.9, 3.8, 5.8, 6.4, 5.0, 2.4, 0.4, -1.6, -1.6}

func monthIndex(w Weather) int {
	if w.Date.IsZero() {
		return 6 // default to July, the FBP System's reference mid-season month
	}
	return int(w.Date.Month()) - 1
}

func dayLengthFactor(table [12]float64, month int, lat float64) float64 {
	if lat < 0 {
		month = (month + 6) % 12
	}
	return table[month]
}

// ComputeFWI derives the six FWI components from today's weather and
// yesterday's FWIState (ST-X-3 / Van Wagner 1987). prev may be the
// zero value, in which case defaultFWIState seeds the calculation.
// Any non-nil field in overrides replaces the corresponding computed
// value; a derived component (ISI, BUI, FWI) recomputes from
// overridden inputs unless it is itself overridden.
func ComputeFWI(w Weather, prev FWIState, overrides *FWIOverrides, lat float64) (FWIState, error) {
	w, err := w.validate()
	if err != nil {
		return FWIState{}, err
	}
	if prev == (FWIState{}) {
		prev = defaultFWIState
	}
	month := monthIndex(w)

	ffmc := computeFFMC(prev.FFMC, w)
	dmc := computeDMC(prev.DMC, w, dayLengthFactor(dayLengthDMC, month, lat))
	dc := computeDC(prev.DC, w, dayLengthFactor(dayLengthDC, month, lat))

	if overrides != nil {
		if overrides.FFMC != nil {
			ffmc = *overrides.FFMC
		}
		if overrides.DMC != nil {
			dmc = *overrides.DMC
		}
		if overrides.DC != nil {
			dc = *overrides.DC
		}
	}
	ffmc = clamp(ffmc, 0, 101)
	if dmc < 0 {
		dmc = 0
	}
	if dc < 0 {
		dc = 0
	}

	isi := isiFromFFMC(ffmc, w.WindSpeed)
	if overrides != nil && overrides.ISI != nil {
		isi = *overrides.ISI
	}

	bui := buiFromDMCDC(dmc, dc)
	if overrides != nil && overrides.BUI != nil {
		bui = *overrides.BUI
	}

	fwi := fwiFromISIBUI(isi, bui)
	if overrides != nil && overrides.FWI != nil {
		fwi = *overrides.FWI
	}

	return FWIState{FFMC: ffmc, DMC: dmc, DC: dc, ISI: isi, BUI: bui, FWI: fwi}, nil
}

// computeFFMC applies the Van Wagner (1987) Fine Fuel Moisture Code
// update, carrying moisture content in the 0-250-ish% range through a
// drying/wetting branch before converting back to the FFMC scale.
func computeFFMC(prevFFMC float64, w Weather) float64 {
	mo := 147.2 * (101 - prevFFMC) / (59.5 + prevFFMC)

	if w.Precipitation24h > 0.5 {
		rf := w.Precipitation24h - 0.5
		if mo <= 150 {
			mo = mo + 42.5*rf*math.Exp(-100/(251-mo))*(1-math.Exp(-6.93/rf))
		} else {
			mo = mo + 42.5*rf*math.Exp(-100/(251-mo))*(1-math.Exp(-6.93/rf)) +
				0.0015*(mo-150)*(mo-150)*math.Sqrt(rf)
		}
		if mo > 250 {
			mo = 250
		}
	}

	rh := w.RelativeHumidity
	t := w.Temperature
	ws := w.WindSpeed

	ed := 0.942*math.Pow(rh, 0.679) + 11*math.Exp((rh-100)/10) +
		0.18*(21.1-t)*(1-math.Exp(-0.115*rh))
	ew := 0.618*math.Pow(rh, 0.753) + 10*math.Exp((rh-100)/10) +
		0.18*(21.1-t)*(1-math.Exp(-0.115*rh))

	var m float64
	switch {
	case mo > ed:
		ko := 0.424*(1-math.Pow(rh/100, 1.7)) + 0.0694*math.Sqrt(ws)*(1-math.Pow(rh/100, 8))
		kd := ko * 0.581 * math.Exp(0.0365*t)
		m = ed + (mo-ed)*math.Pow(10, -kd)
	case mo < ew:
		k1 := 0.424*(1-math.Pow((100-rh)/100, 1.7)) + 0.0694*math.Sqrt(ws)*(1-math.Pow((100-rh)/100, 8))
		kw := k1 * 0.581 * math.Exp(0.0365*t)
		m = ew - (ew-mo)*math.Pow(10, -kw)
	default:
		m = mo
	}

	ffmc := 59.5 * (250 - m) / (147.2 + m)
	return clamp(ffmc, 0, 101)
}

// computeDMC applies the Van Wagner (1987) Duff Moisture Code update.
func computeDMC(prevDMC float64, w Weather, le float64) float64 {
	pmc := prevDMC
	if w.Precipitation24h > 1.5 {
		reff := 0.92*w.Precipitation24h - 1.27
		moIn := 20 + math.Exp(5.6348-pmc/43.43)
		var b float64
		switch {
		case pmc <= 33:
			b = 100 / (0.5 + 0.3*pmc)
		case pmc <= 65:
			b = 14 - 1.3*math.Log(pmc)
		default:
			b = 6.2*math.Log(pmc) - 17.2
		}
		mr := moIn + 1000*reff/(48.77+b*reff)
		pmc = 43.43 * (5.6348 - math.Log(math.Max(mr-20, 1e-6)))
		if pmc < 0 {
			pmc = 0
		}
	}

	t := w.Temperature
	rh := math.Min(w.RelativeHumidity, 100)
	var k float64
	if t > -1.1 {
		k = 1.894 * (t + 1.1) * (100 - rh) * le * 1e-6
	}
	dmc := pmc + 100*k
	if dmc < 0 {
		dmc = 0
	}
	return dmc
}

// computeDC applies the Van Wagner (1987) Drought Code update.
func computeDC(prevDC float64, w Weather, lf float64) float64 {
	do := prevDC
	if w.Precipitation24h > 2.8 {
		rd := 0.83*w.Precipitation24h - 1.27
		qo := 800 * math.Exp(-do/400)
		qr := qo + 3.937*rd
		dr := 400 * math.Log(800/math.Max(qr, 1e-6))
		if dr < 0 {
			dr = 0
		}
		do = dr
	}
	v := 0.36*(w.Temperature+2.8) + lf
	if v < 0 {
		v = 0
	}
	dc := do + 0.5*v
	if dc < 0 {
		dc = 0
	}
	return dc
}

// isiFromFFMC computes the Initial Spread Index: ISI = 0.208*f(W)*f(F).
func isiFromFFMC(ffmc, ws float64) float64 {
	m := 147.2 * (101 - ffmc) / (59.5 + ffmc)
	fW := math.Exp(0.05039 * ws)
	fF := 91.9 * math.Exp(-0.1386*m) * (1 + math.Pow(m, 5.31)/4.93e7)
	isi := 0.208 * fW * fF
	if isi < 0 {
		isi = 0
	}
	return isi
}

// buiFromDMCDC computes the Buildup Index per ST-X-3.
func buiFromDMCDC(dmc, dc float64) float64 {
	if dmc <= 0 {
		return 0
	}
	denom := dmc + 0.4*dc
	if denom <= 0 {
		return 0
	}
	var bui float64
	if dmc <= 0.4*dc {
		bui = 0.8 * dmc * dc / denom
	} else {
		bui = dmc - (1-0.8*dc/denom)*(0.92+math.Pow(0.0114*dmc, 1.7))
	}
	if bui < 0 {
		bui = 0
	}
	return bui
}

// fwiFromISIBUI computes the Fire Weather Index per ST-X-3.
func fwiFromISIBUI(isi, bui float64) float64 {
	var fD float64
	if bui <= 80 {
		fD = 0.626*math.Pow(bui, 0.809) + 2
	} else {
		fD = 1000 / (25 + 108.64*math.Exp(-0.023*bui))
	}
	b := 0.1 * isi * fD
	var fwi float64
	if b > 1 {
		fwi = math.Exp(2.72 * math.Pow(0.434*math.Log(b), 0.647))
	} else {
		fwi = b
	}
	if fwi < 0 {
		fwi = 0
	}
	return fwi
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
