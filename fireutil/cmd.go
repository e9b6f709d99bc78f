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
	"encoding/json"
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wildfire-sim/firespread"
)

// Cfg holds the command tree and the shared viper-backed
// configuration, mirroring inmaputil.Cfg.
type Cfg struct {
	*Config

	Root, runCmd, validateCmd, fuelsCmd *cobra.Command
}

// InitializeConfig builds the command tree: run (simulate and stream
// frames), validate (parse+validate a config without simulating), and
// fuels (list the 18 FBP fuel codes and their table values), per
// SPEC_FULL.md's domain-stack wiring of cobra/pflag/viper.
func InitializeConfig() *Cfg {
	cfg := &Cfg{Config: NewConfig()}

	cfg.Root = &cobra.Command{
		Use:   "firespread",
		Short: "Simulate wildfire spread under the Canadian FBP/FWI systems.",
		Long: `firespread simulates the spatial spread of a wildfire from a point
ignition using the Canadian Forest Fire Behavior Prediction (FBP) System,
the Fire Weather Index (FWI) System, and a Huygens-wavelet front
propagator. Configuration is supplied via a --config file (JSON or
TOML), with FIRESPREAD_-prefixed environment variables also consulted.`,
		DisableAutoGenTag: true,
	}

	configFlag := func(fs *pflag.FlagSet) {
		fs.String("config", "", "path to a JSON or TOML configuration file")
		cfg.BindPFlag("config", fs.Lookup("config"))
	}

	cfg.runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and print each Frame as JSON, one per line.",
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.runSimulation(os.Stdout)
		},
	}
	configFlag(cfg.runCmd.Flags())

	cfg.validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Parse and validate a configuration without simulating.",
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.validateConfig()
		},
	}
	configFlag(cfg.validateCmd.Flags())

	cfg.fuelsCmd = &cobra.Command{
		Use:   "fuels",
		Short: "List the 18 FBP System fuel codes and their table values.",
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, args []string) {
			printFuelTable(os.Stdout)
		},
	}

	cfg.Root.AddCommand(cfg.runCmd, cfg.validateCmd, cfg.fuelsCmd)
	return cfg
}

func (cfg *Cfg) loadEnvelope() (Envelope, error) {
	if path := cfg.GetString("config"); path != "" {
		if err := cfg.Load(path); err != nil {
			return Envelope{}, err
		}
	}
	return cfg.Envelope()
}

func (cfg *Cfg) validateConfig() error {
	env, err := cfg.loadEnvelope()
	if err != nil {
		return err
	}
	sc, err := env.ToSimulationConfig()
	if err != nil {
		return err
	}
	// firespread.Simulate runs every validation step (structural
	// config checks, weather range checks, fuel lookup, FWI/FBP) but
	// the frame sequence is discarded without being pulled.
	if _, err := firespread.Simulate(sc); err != nil {
		return err
	}
	fmt.Println("configuration is valid")
	return nil
}

func (cfg *Cfg) runSimulation(w *os.File) error {
	env, err := cfg.loadEnvelope()
	if err != nil {
		return err
	}
	sc, err := env.ToSimulationConfig()
	if err != nil {
		return err
	}
	sc.Log = log.StandardLogger().WriterLevel(log.DebugLevel)

	dm, err := NewDerivedMetrics(env.DerivedMetrics)
	if err != nil {
		return err
	}

	log.WithField("fuel_type", env.FuelType).Info("starting simulation")
	seq, err := firespread.Simulate(sc)
	if err != nil {
		log.WithError(err).Error("simulation rejected")
		return err
	}

	enc := json.NewEncoder(w)
	count := 0
	for {
		frame, ok := seq.Next()
		if !ok {
			break
		}
		count++
		if dm != nil {
			derived, err := dm.Evaluate(frame)
			if err != nil {
				log.WithError(err).Warn("skipping derived metrics for this frame")
			} else if derived != nil {
				if err := enc.Encode(struct {
					firespread.Frame
					Derived map[string]float64 `json:"derived_metrics,omitempty"`
				}{frame, derived}); err != nil {
					return err
				}
				continue
			}
		}
		if err := enc.Encode(frame); err != nil {
			return err
		}
	}
	if err := seq.Err(); err != nil {
		log.WithError(err).Error("simulation ended in failure")
		return err
	}
	log.WithField("frames", count).Info("simulation completed")
	return nil
}

func printFuelTable(w *os.File) {
	table := firespread.FuelTable()
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p := table[name]
		fmt.Fprintf(w, "%-3s  group=%-10s a=%-6g b=%-8g c=%-5g cbh=%-5gm cfl=%-5gkg/m2\n",
			name, p.Group, p.A, p.B, p.C, p.CBH, p.CFL)
	}
}
