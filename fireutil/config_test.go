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

package fireutil

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"testing"

	"github.com/wildfire-sim/firespread"
)

// TestConfigLoadAndToSimulationConfig mirrors inmaputil/config_test.go's
// TestParseMask: write a throwaway config file, load it through Config,
// and check the unmarshalled value against a literal want.
func TestConfigLoadAndToSimulationConfig(t *testing.T) {
	f, err := os.Create("tmp_envelope.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove("tmp_envelope.json")
	fmt.Fprint(f, `{
		"ignition_lat": 51.0,
		"ignition_lng": -114.0,
		"weather": {
			"wind_speed": 20,
			"wind_direction": 270,
			"temperature": 25,
			"relative_humidity": 30,
			"precipitation_24h": 0
		},
		"fuel_type": "C2",
		"duration_hours": 4,
		"snapshot_interval_minutes": 30,
		"slope_pct": 0,
		"aspect_deg": 0
	}`)
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	c := NewConfig()
	if err := c.Load("tmp_envelope.json"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	env, err := c.Envelope()
	if err != nil {
		t.Fatalf("Envelope: %v", err)
	}

	want := Envelope{
		IgnitionLat: 51.0,
		IgnitionLng: -114.0,
		Weather: WeatherEnvelope{
			WindSpeed: 20, WindDirection: 270, Temperature: 25,
			RelativeHumidity: 30, Precipitation24h: 0,
		},
		FuelType:                "C2",
		DurationHours:           4,
		SnapshotIntervalMinutes: 30,
	}
	if !reflect.DeepEqual(env, want) {
		t.Errorf("Envelope() = %+v, want %+v", env, want)
	}

	sc, err := env.ToSimulationConfig()
	if err != nil {
		t.Fatalf("ToSimulationConfig: %v", err)
	}
	if sc.FuelCode != firespread.C2 {
		t.Errorf("FuelCode = %v, want C2", sc.FuelCode)
	}
	if sc.Weather.WindSpeed != 20 || sc.IgnitionLat != 51.0 {
		t.Errorf("ToSimulationConfig did not carry weather/ignition fields through: %+v", sc)
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("config built from the envelope should validate: %v", err)
	}
}

// TestConfigLoadEmptyPathIsNoop mirrors the teacher's "no --config flag
// given" path: Load("") must not error.
func TestConfigLoadEmptyPathIsNoop(t *testing.T) {
	c := NewConfig()
	if err := c.Load(""); err != nil {
		t.Fatalf("Load(\"\") should be a no-op, got %v", err)
	}
}

// TestEnvelopeUnknownFuelTypeRejected checks that an invalid fuel_type
// string surfaces as the same InvalidConfig Kind firespread.Simulate
// itself would raise, not a fireutil-specific error type.
func TestEnvelopeUnknownFuelTypeRejected(t *testing.T) {
	env := Envelope{FuelType: "not-a-fuel"}
	_, err := env.ToSimulationConfig()
	if err == nil {
		t.Fatal("expected an error for an unknown fuel_type")
	}
	var fErr *firespread.Error
	if !errors.As(err, &fErr) || fErr.Kind != firespread.InvalidConfig {
		t.Errorf("expected a firespread.InvalidConfig error, got %v", err)
	}
}
