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

// Package firespread simulates the spatial spread of a wildfire from a
// point ignition under a single weather observation and a uniform fuel
// type, using the Canadian Forest Fire Behavior Prediction (FBP) System,
// the Fire Weather Index (FWI) System, and a Huygens-wavelet polygonal
// front propagator.
//
// The entry point is Simulate, which returns a lazily-pulled, finite,
// non-restartable sequence of Frames. The package does no file I/O or
// transport of its own; its only other output is the optional per-step
// log written to SimulationConfig.Log. See github.com/wildfire-sim/firespread/fireutil
// for a Cobra/Viper-based CLI built on top of it.
package firespread
