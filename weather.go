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

import "time"

// Weather is a single daily weather observation, held constant for
// the duration of one simulation run (spec.md §9 open question: no
// temporal FWI evolution).
type Weather struct {
	WindSpeed        float64   `desc:"10m wind speed" units:"km/h"`
	WindDirection    float64   `desc:"direction the wind is blowing from, meteorological convention" units:"degrees"`
	Temperature      float64   `desc:"air temperature" units:"degrees C"`
	RelativeHumidity float64   `desc:"relative humidity" units:"percent"`
	Precipitation24h float64   `desc:"24-hour accumulated precipitation" units:"mm"`
	Date             time.Time // optional; used for the FMC day-of-year curve and FWI day-length factors
}

// validate checks Weather against the ranges in spec.md §3/§4.1 and
// returns it with RH above 100 capped at 100 (the one safe-default
// recovery spec.md §7 calls out explicitly); RH below 0 is rejected.
func (w Weather) validate() (Weather, error) {
	if w.WindSpeed < 0 {
		return w, newError(InvalidConfig, "wind_speed must be >= 0, got %g", w.WindSpeed)
	}
	if w.RelativeHumidity < 0 || w.RelativeHumidity > 100 {
		if w.RelativeHumidity > 100 {
			w.RelativeHumidity = 100 // safe default: cap RH before use in FWI
		} else {
			return w, newError(InvalidConfig, "relative_humidity out of range [0,100]: %g", w.RelativeHumidity)
		}
	}
	if w.Temperature < -50 {
		return w, newError(InvalidConfig, "temperature %g is below the -50C physical floor", w.Temperature)
	}
	if w.Precipitation24h < 0 {
		return w, newError(InvalidConfig, "precipitation_24h must be >= 0, got %g", w.Precipitation24h)
	}
	if w.WindDirection < 0 || w.WindDirection >= 360 {
		w.WindDirection = normalizeDegrees(w.WindDirection)
	}
	return w, nil
}

// FWIState is the six-component Fire Weather Index System state.
type FWIState struct {
	FFMC float64 `desc:"Fine Fuel Moisture Code" units:"index, 0-101"`
	DMC  float64 `desc:"Duff Moisture Code" units:"index"`
	DC   float64 `desc:"Drought Code" units:"index"`
	ISI  float64 `desc:"Initial Spread Index" units:"index"`
	BUI  float64 `desc:"Buildup Index" units:"index"`
	FWI  float64 `desc:"Fire Weather Index" units:"index"`
}

// defaultFWIState is used as "yesterday's" state when the caller
// supplies no prior observation (spec.md §4.1).
var defaultFWIState = FWIState{FFMC: 85, DMC: 6, DC: 15}

// FWIOverrides replaces specific computed FWI components with
// caller-supplied values. Any field left nil is computed normally;
// derived components recompute from overridden inputs unless they too
// are overridden (spec.md §4.1).
type FWIOverrides struct {
	FFMC *float64
	DMC  *float64
	DC   *float64
	ISI  *float64
	BUI  *float64
	FWI  *float64
}

func normalizeDegrees(d float64) float64 {
	for d < 0 {
		d += 360
	}
	for d >= 360 {
		d -= 360
	}
	return d
}
