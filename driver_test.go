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
	"errors"
	"math"
	"testing"
)

func baseConfig() SimulationConfig {
	return SimulationConfig{
		IgnitionLat: 51.0,
		IgnitionLng: -114.0,
		Weather: Weather{
			WindSpeed: 15, WindDirection: 270, Temperature: 25,
			RelativeHumidity: 35, Precipitation24h: 0,
		},
		FuelCode:                C2,
		DurationHours:           1,
		SnapshotIntervalMinutes: 20,
	}
}

func TestSimulateRejectsInvalidConfigWithNoSequence(t *testing.T) {
	c := baseConfig()
	c.DurationHours = 0
	seq, err := Simulate(c)
	if err == nil {
		t.Fatal("expected an error for duration_hours <= 0")
	}
	if seq != nil {
		t.Error("an InvalidConfig rejection should return a nil sequence")
	}
	var fErr *Error
	if !errors.As(err, &fErr) || fErr.Kind != InvalidConfig {
		t.Errorf("expected InvalidConfig, got %v", err)
	}
}

func TestSimulateRejectsUnknownFuelCode(t *testing.T) {
	c := baseConfig()
	c.FuelCode = numFuelCodes
	if _, err := Simulate(c); err == nil {
		t.Error("expected an error for an unknown fuel code")
	}
}

func TestSimulateFirstFrameIsAtTimeZero(t *testing.T) {
	seq, err := Simulate(baseConfig())
	if err != nil {
		t.Fatal(err)
	}
	frame, ok := seq.Next()
	if !ok {
		t.Fatal("expected at least one frame")
	}
	if frame.TimeHours != 0 {
		t.Errorf("first frame should be at t=0, got %g", frame.TimeHours)
	}
	if len(frame.Perimeter) == 0 {
		t.Error("first frame should carry a non-empty perimeter")
	}
}

// The sequence must be finite: pulling past the end of a short
// simulation returns ok=false and never resumes (spec.md §5).
func TestSimulateSequenceIsFiniteAndNonResumable(t *testing.T) {
	c := baseConfig()
	c.DurationHours = 0.2
	c.SnapshotIntervalMinutes = 6 // two snapshot boundaries within duration
	seq, err := Simulate(c)
	if err != nil {
		t.Fatal(err)
	}

	var frames []float64
	for {
		f, ok := seq.Next()
		if !ok {
			break
		}
		frames = append(frames, f.TimeHours)
		if len(frames) > 1000 {
			t.Fatal("sequence did not terminate")
		}
	}
	if len(frames) < 2 {
		t.Fatalf("expected multiple frames, got %d", len(frames))
	}
	last := frames[len(frames)-1]
	if math.Abs(last-c.DurationHours) > 1e-6 {
		t.Errorf("last frame should land at duration_hours=%g, got %g", c.DurationHours, last)
	}

	// Further pulls after exhaustion must keep returning false.
	if _, ok := seq.Next(); ok {
		t.Error("Next() after exhaustion should keep returning false")
	}
	if err := seq.Err(); err != nil {
		t.Errorf("a clean completion should report no error, got %v", err)
	}
}

// Frame timestamps must be non-decreasing and the perimeter must
// remain a valid, non-degenerate ring for a short, well-posed run.
func TestSimulateFrameTimesAreMonotonic(t *testing.T) {
	c := baseConfig()
	c.DurationHours = 0.5
	c.SnapshotIntervalMinutes = 10
	seq, err := Simulate(c)
	if err != nil {
		t.Fatal(err)
	}

	prev := -1.0
	for {
		f, ok := seq.Next()
		if !ok {
			break
		}
		if f.TimeHours < prev {
			t.Errorf("frame times must be non-decreasing: %g after %g", f.TimeHours, prev)
		}
		prev = f.TimeHours
		if f.AreaHa < 0 {
			t.Errorf("area must never be negative, got %g", f.AreaHa)
		}
	}
	if err := seq.Err(); err != nil {
		t.Fatalf("well-posed run should not fail: %v", err)
	}
}

func TestSimulateAreaGrowsOverTime(t *testing.T) {
	c := baseConfig()
	c.DurationHours = 1
	c.SnapshotIntervalMinutes = 20
	seq, err := Simulate(c)
	if err != nil {
		t.Fatal(err)
	}

	first, ok := seq.Next()
	if !ok {
		t.Fatal("expected a first frame")
	}
	var last Frame
	for {
		f, ok := seq.Next()
		if !ok {
			break
		}
		last = f
	}
	if last.AreaHa <= first.AreaHa {
		t.Errorf("burned area should grow over the run: first=%g last=%g", first.AreaHa, last.AreaHa)
	}
}
