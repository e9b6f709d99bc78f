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

// Package fireutil wires the firespread core to a Cobra/Viper command
// line, mirroring how inmaputil wires the InMAP core to its CLI.
package fireutil

import (
	"fmt"
	"time"

	"github.com/lnashier/viper"

	"github.com/wildfire-sim/firespread"
)

// WeatherEnvelope is the weather block of the configuration envelope
// in spec.md §6.
type WeatherEnvelope struct {
	WindSpeed        float64 `mapstructure:"wind_speed"`
	WindDirection    float64 `mapstructure:"wind_direction"`
	Temperature      float64 `mapstructure:"temperature"`
	RelativeHumidity float64 `mapstructure:"relative_humidity"`
	Precipitation24h float64 `mapstructure:"precipitation_24h"`
}

// FWIOverridesEnvelope is the optional fwi_overrides block. A nil
// pointer field means "not overridden".
type FWIOverridesEnvelope struct {
	FFMC *float64 `mapstructure:"ffmc"`
	DMC  *float64 `mapstructure:"dmc"`
	DC   *float64 `mapstructure:"dc"`
	ISI  *float64 `mapstructure:"isi"`
	BUI  *float64 `mapstructure:"bui"`
	FWI  *float64 `mapstructure:"fwi"`
}

// Envelope is the in-memory form of the configuration envelope
// spec.md §6 describes, unmarshalled from JSON or TOML by Viper.
type Envelope struct {
	IgnitionLat float64 `mapstructure:"ignition_lat"`
	IgnitionLng float64 `mapstructure:"ignition_lng"`

	Weather      WeatherEnvelope       `mapstructure:"weather"`
	FWIOverrides *FWIOverridesEnvelope `mapstructure:"fwi_overrides"`

	FuelType string `mapstructure:"fuel_type"`

	DurationHours           float64 `mapstructure:"duration_hours"`
	SnapshotIntervalMinutes float64 `mapstructure:"snapshot_interval_minutes"`

	SlopePct  float64 `mapstructure:"slope_pct"`
	AspectDeg float64 `mapstructure:"aspect_deg"`

	// IgnitionDate seeds the date/latitude FMC supplement
	// (firespread.FBPInputs.IgnitionDate); RFC 3339, optional.
	IgnitionDate string `mapstructure:"ignition_date"`

	// DerivedMetrics names govaluate expressions evaluated against
	// each emitted Frame (see derived.go).
	DerivedMetrics map[string]string `mapstructure:"derived_metrics"`
}

// Config wraps a *viper.Viper the way inmaputil.Cfg wraps one. The
// spec.md §6 envelope is read from a --config file, with automatic
// lookup of FIRESPREAD_*-prefixed environment variables; the only
// command-line flag bound to it is --config itself.
type Config struct {
	*viper.Viper
}

// NewConfig returns a Config with the FIRESPREAD_ environment prefix
// set and automatic environment lookup enabled. It registers no
// defaults for the envelope keys.
func NewConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("FIRESPREAD")
	v.AutomaticEnv()
	return &Config{Viper: v}
}

// Load reads path (JSON or TOML, detected by Viper from the
// extension) into the Config, mirroring inmaputil's setConfig.
func (c *Config) Load(path string) error {
	if path == "" {
		return nil
	}
	c.SetConfigFile(path)
	if err := c.ReadInConfig(); err != nil {
		return fmt.Errorf("firespread: problem reading configuration file: %v", err)
	}
	return nil
}

// Envelope unmarshals the current Config into an Envelope.
func (c *Config) Envelope() (Envelope, error) {
	var e Envelope
	if err := c.Unmarshal(&e); err != nil {
		return Envelope{}, fmt.Errorf("firespread: problem parsing configuration: %v", err)
	}
	return e, nil
}

// ToSimulationConfig converts an Envelope into a
// firespread.SimulationConfig, resolving the fuel type string into a
// FuelCode and the FWI override pointers into a
// firespread.FWIOverrides. Returns the same *firespread.Error kinds
// firespread.Simulate itself would for an invalid fuel code.
func (e Envelope) ToSimulationConfig() (firespread.SimulationConfig, error) {
	code, err := firespread.ParseFuelCode(e.FuelType)
	if err != nil {
		return firespread.SimulationConfig{}, err
	}

	weather := firespread.Weather{
		WindSpeed:        e.Weather.WindSpeed,
		WindDirection:    e.Weather.WindDirection,
		Temperature:      e.Weather.Temperature,
		RelativeHumidity: e.Weather.RelativeHumidity,
		Precipitation24h: e.Weather.Precipitation24h,
	}
	if e.IgnitionDate != "" {
		t, err := time.Parse(time.RFC3339, e.IgnitionDate)
		if err != nil {
			return firespread.SimulationConfig{}, fmt.Errorf("firespread: invalid ignition_date %q: %v", e.IgnitionDate, err)
		}
		weather.Date = t
	}

	var overrides *firespread.FWIOverrides
	if e.FWIOverrides != nil {
		overrides = &firespread.FWIOverrides{
			FFMC: e.FWIOverrides.FFMC,
			DMC:  e.FWIOverrides.DMC,
			DC:   e.FWIOverrides.DC,
			ISI:  e.FWIOverrides.ISI,
			BUI:  e.FWIOverrides.BUI,
			FWI:  e.FWIOverrides.FWI,
		}
	}

	return firespread.SimulationConfig{
		IgnitionLat:             e.IgnitionLat,
		IgnitionLng:             e.IgnitionLng,
		Weather:                 weather,
		FWIOverrides:            overrides,
		FuelCode:                code,
		DurationHours:           e.DurationHours,
		SnapshotIntervalMinutes: e.SnapshotIntervalMinutes,
		SlopePct:                e.SlopePct,
		AspectDeg:               e.AspectDeg,
	}, nil
}
