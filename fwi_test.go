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

func baseWeather() Weather {
	return Weather{
		WindSpeed:        20,
		WindDirection:    270,
		Temperature:      25,
		RelativeHumidity: 30,
		Precipitation24h: 0,
	}
}

func TestComputeFWIRejectsInvalidWeather(t *testing.T) {
	cases := []struct {
		name string
		w    Weather
	}{
		{"negative wind", Weather{WindSpeed: -1}},
		{"RH below 0", Weather{RelativeHumidity: -1}},
		{"temperature below floor", Weather{Temperature: -60}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ComputeFWI(c.w, FWIState{}, nil, 51.0); err == nil {
				t.Errorf("expected an error for %s", c.name)
			}
		})
	}
}

func TestComputeFWIClampsExcessHumidity(t *testing.T) {
	w := baseWeather()
	w.RelativeHumidity = 150
	if _, err := ComputeFWI(w, FWIState{}, nil, 51.0); err != nil {
		t.Fatalf("RH>100 should be capped, not rejected: %v", err)
	}
}

func TestComputeFWIDefaultsToYesterdayFWIState(t *testing.T) {
	w := baseWeather()
	a, err := ComputeFWI(w, FWIState{}, nil, 51.0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ComputeFWI(w, defaultFWIState, nil, 51.0)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("zero-value prev state should default to defaultFWIState: %+v != %+v", a, b)
	}
}

func TestComputeFWIOverridesAllSix(t *testing.T) {
	w := baseWeather()
	overrides := &FWIOverrides{
		FFMC: floatPtr(88),
		DMC:  floatPtr(40),
		DC:   floatPtr(280),
		ISI:  floatPtr(9),
		BUI:  floatPtr(60),
		FWI:  floatPtr(22),
	}
	got, err := ComputeFWI(w, FWIState{}, overrides, 51.0)
	if err != nil {
		t.Fatal(err)
	}
	want := FWIState{FFMC: 88, DMC: 40, DC: 280, ISI: 9, BUI: 60, FWI: 22}
	if got != want {
		t.Errorf("full override set not honored exactly: got %+v, want %+v", got, want)
	}
}

func TestComputeFWIPartialOverrideRecomputesDerived(t *testing.T) {
	w := baseWeather()
	unoverridden, err := ComputeFWI(w, FWIState{}, nil, 51.0)
	if err != nil {
		t.Fatal(err)
	}
	overrides := &FWIOverrides{FFMC: floatPtr(50)}
	got, err := ComputeFWI(w, FWIState{}, overrides, 51.0)
	if err != nil {
		t.Fatal(err)
	}
	if got.FFMC != 50 {
		t.Errorf("FFMC override not applied: got %g", got.FFMC)
	}
	if got.ISI == unoverridden.ISI {
		t.Errorf("ISI should recompute from the overridden FFMC, got the unoverridden value %g", got.ISI)
	}
}

func TestComputeFWINonNegativeFiniteOutputs(t *testing.T) {
	winds := []float64{0, 10, 40}
	humidities := []float64{10, 50, 100}
	for _, ws := range winds {
		for _, rh := range humidities {
			w := Weather{WindSpeed: ws, RelativeHumidity: rh, Temperature: 20}
			got, err := ComputeFWI(w, FWIState{}, nil, 51.0)
			if err != nil {
				t.Fatalf("ws=%g rh=%g: %v", ws, rh, err)
			}
			for _, v := range []float64{got.FFMC, got.DMC, got.DC, got.ISI, got.BUI, got.FWI} {
				if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
					t.Errorf("ws=%g rh=%g: non-finite or negative FWI component: %+v", ws, rh, got)
				}
			}
		}
	}
}

func floatPtr(v float64) *float64 { return &v }
