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
	"fmt"
	"io"
	"math"

	"github.com/ctessum/geom"
)

// resampleMergeM and resampleSubdivide are the merge and subdivide
// thresholds for vertex spacing (spec.md §4.6); dtMinSeconds is the
// smallest integration step.
const (
	resampleMergeM    = 5.0
	resampleSubdivide = 30.0
	dtMinSeconds      = 1.0
)

// SimulationConfig is the single entry point's input, the in-memory
// equivalent of the JSON envelope in spec.md §6.
type SimulationConfig struct {
	IgnitionLat, IgnitionLng float64

	Weather      Weather
	FWIOverrides *FWIOverrides

	FuelCode FuelCode

	DurationHours           float64
	SnapshotIntervalMinutes float64

	SlopePct  float64
	AspectDeg float64

	// Log receives one line per integration step, mirroring the
	// teacher's run.go Log(w io.Writer) step function. Nil means no
	// logging (the core itself carries no logging dependency; only the
	// CLI layer wires one in).
	Log io.Writer
}

// Validate checks the structural invariants spec.md §3/§6 place on
// SimulationConfig, independent of the weather-range checks Weather
// itself performs.
func (c SimulationConfig) Validate() error {
	if c.DurationHours <= 0 {
		return newError(InvalidConfig, "duration_hours must be > 0, got %g", c.DurationHours)
	}
	if c.SnapshotIntervalMinutes <= 0 {
		return newError(InvalidConfig, "snapshot_interval_minutes must be > 0, got %g", c.SnapshotIntervalMinutes)
	}
	if c.SnapshotIntervalMinutes/60 > c.DurationHours {
		return newError(InvalidConfig, "snapshot_interval_minutes (%g min) exceeds duration_hours (%g h)", c.SnapshotIntervalMinutes, c.DurationHours)
	}
	if c.FuelCode < 0 || int(c.FuelCode) >= numFuelCodes {
		return newError(InvalidConfig, "unknown fuel code %d", int(c.FuelCode))
	}
	if c.SlopePct < 0 {
		return newError(InvalidConfig, "slope_pct must be >= 0, got %g", c.SlopePct)
	}
	return nil
}

// Frame is one time-stamped snapshot of the fire front, matching the
// JSON shape in spec.md §6.
type Frame struct {
	TimeHours     float64            `json:"time_hours"`
	Perimeter     [][2]float64       `json:"perimeter"`
	AreaHa        float64            `json:"area_ha"`
	HeadROSMMin   float64            `json:"head_ros_m_min"`
	MaxHFIKWM     float64            `json:"max_hfi_kw_m"`
	FireType      FireType           `json:"fire_type"`
	FlameLengthM  float64            `json:"flame_length_m"`
	FuelBreakdown map[string]float64 `json:"fuel_breakdown"`
}

func frameFromPerimeter(p FirePerimeter, timeHours float64, fb FBPResult) Frame {
	pts := make([][2]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i] = [2]float64{v.Lat, v.Lng}
	}
	return Frame{
		TimeHours:     timeHours,
		Perimeter:     pts,
		AreaHa:        p.AreaHectares(),
		HeadROSMMin:   fb.ROSHead,
		MaxHFIKWM:     fb.HFI,
		FireType:      fb.FireType,
		FlameLengthM:  fb.FlameLength,
		FuelBreakdown: map[string]float64{fb.FuelCode.String(): 1},
	}
}

// SimState is the driver's state machine position (spec.md §4.7).
type SimState int

const (
	Initializing SimState = iota
	Running
	Completed
	Failed
)

func (s SimState) String() string {
	switch s {
	case Initializing:
		return "Initializing"
	case Running:
		return "Running"
	case Completed:
		return "Completed"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// FrameSeq is the lazy, finite, non-restartable sequence of Frames
// produced by Simulate. Next returns (frame, true) until the run
// completes or fails, then (zero, false); once it has returned false,
// further calls keep returning false. The caller drops the sequence to
// cancel (spec.md §5), and no internal buffers are retained afterward.
type FrameSeq struct {
	sim  *simulator
	done bool
	err  error
}

// Next pulls the next Frame, running as many integration steps as
// needed to cross the next snapshot boundary. Returns ok=false once
// the simulation has reached Completed or Failed and its last frame
// has already been delivered.
func (s *FrameSeq) Next() (Frame, bool) {
	if s.done {
		return Frame{}, false
	}
	f, more := s.sim.advanceToNextSnapshot()
	if !more {
		s.done = true
		s.err = s.sim.err
		s.sim = nil
	}
	return f, more
}

// Err returns the terminal error if the simulation ended in Failed,
// after the last frame (if any) has already been delivered.
func (s *FrameSeq) Err() error {
	if s.sim == nil {
		return s.err
	}
	return s.sim.err
}

// Simulate builds a driver from config and returns the lazy Frame
// sequence (spec.md §6's `simulate(config) -> sequence<Frame>`).
// InvalidConfig failures are returned immediately with no sequence at
// all, matching the "fatal, no frames" contract in spec.md §7.
func Simulate(config SimulationConfig) (*FrameSeq, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	w, err := config.Weather.validate()
	if err != nil {
		return nil, wrapError(InvalidConfig, err, "invalid weather")
	}
	fp, err := lookupFuel(config.FuelCode)
	if err != nil {
		return nil, err
	}

	fwi, err := ComputeFWI(w, FWIState{}, config.FWIOverrides, config.IgnitionLat)
	if err != nil {
		return nil, wrapError(InvalidConfig, err, "FWI computation failed")
	}

	in := FBPInputs{
		ISI:          fwi.ISI,
		BUI:          fwi.BUI,
		FFMC:         fwi.FFMC,
		WindSpeed:    w.WindSpeed,
		IgnitionDate: w.Date,
		Lat:          config.IgnitionLat,
	}
	fbp, err := ComputeFBP(config.FuelCode, in)
	if err != nil {
		return nil, wrapError(InvalidConfig, err, "FBP computation failed")
	}

	plane := newTangentPlane(config.IgnitionLat, config.IgnitionLng)
	perim := newIgnitionPerimeter(plane, fbp.ROSHead, dtMinSeconds)

	logw := config.Log
	if logw == nil {
		logw = io.Discard
	}

	sim := &simulator{
		config:       config,
		plane:        plane,
		fp:           fp,
		fbp:          fbp,
		windToDir:    windToDirection(w.WindDirection),
		perim:        perim,
		state:        Initializing,
		snapshotStep: config.SnapshotIntervalMinutes / 60,
		duration:     config.DurationHours,
		log:          logw,
	}
	fmt.Fprintf(logw, "simulation initialized: fuel=%s duration=%gh\n", config.FuelCode, config.DurationHours)

	return &FrameSeq{sim: sim}, nil
}

// simulator holds all mutable per-run state. It is never shared across
// goroutines (spec.md §5).
type simulator struct {
	config SimulationConfig
	plane  tangentPlane
	fp     FuelParams
	fbp    FBPResult

	windToDir float64 // degrees, direction the fire spreads toward

	perim FirePerimeter

	state SimState
	err   error

	simTime      float64 // hours
	nextSnapshot float64
	snapshotStep float64
	duration     float64

	firstFrameEmitted bool

	log     io.Writer
	stepNum int
}

// advanceToNextSnapshot runs integration steps until simTime crosses
// the next snapshot boundary (or duration), then returns the Frame at
// that boundary. It always emits t=0 first (spec.md §4.7 step 4).
func (s *simulator) advanceToNextSnapshot() (Frame, bool) {
	if s.state == Completed || s.state == Failed {
		return Frame{}, false
	}
	s.state = Running

	if !s.firstFrameEmitted {
		s.firstFrameEmitted = true
		s.nextSnapshot = s.snapshotStep
		return frameFromPerimeter(s.perim, 0, s.fbp), true
	}

	for s.simTime < s.nextSnapshot && s.simTime < s.duration {
		if err := s.step(); err != nil {
			if e, ok := err.(*Error); ok && e.Kind == DegeneratePerimeter {
				// Nothing left to advect: the zero-area ring is carried
				// unchanged to the next snapshot boundary.
				s.simTime = math.Min(s.nextSnapshot, s.duration)
				break
			}
			s.state = Failed
			s.err = err
			fmt.Fprintf(s.log, "simulation terminated: %v\n", err)
			return Frame{}, false
		}
	}

	target := math.Min(s.nextSnapshot, s.duration)
	atEnd := s.simTime >= s.duration-1e-9
	if atEnd {
		s.state = Completed
	}
	s.nextSnapshot += s.snapshotStep
	return frameFromPerimeter(s.perim, math.Min(s.simTime, target), s.fbp), true
}

// step advances the front by one adaptive-size integration step
// (spec.md §4.7 steps 2-3).
func (s *simulator) step() error {
	normals := s.perim.OutwardNormals()
	ring := s.perim.openRing()
	if len(ring) < 3 {
		return newError(DegeneratePerimeter, "perimeter pruned to %d vertices", len(ring))
	}

	maxDisplacement := 0.0
	for i := range ring {
		head := s.fbp.ROSHead
		if s.config.SlopePct > 0 {
			head *= DirectionalSlopeFactor(normals[i], s.config.SlopePct, s.config.AspectDeg)
		}
		if v := head / 60; v > maxDisplacement {
			maxDisplacement = v // m/min -> m/s scale proxy for dt search
		}
	}
	// dt clamped to [1s, snapshot_interval]; additionally bounded so
	// that the fastest vertex does not move more than d_max/2 in one
	// step (spec.md §4.7 step 2).
	remainingSeconds := (math.Min(s.nextSnapshot, s.duration) - s.simTime) * 3600
	dt := math.Min(remainingSeconds, s.snapshotStep*3600)
	if maxDisplacement > 0 {
		maxDtForDisplacement := (resampleSubdivide / 2) / maxDisplacement
		dt = math.Min(dt, maxDtForDisplacement)
	}
	dt = math.Max(dt, dtMinSeconds)

	newRing := make([]geom.Point, len(ring))
	for i, v := range ring {
		head := s.fbp.ROSHead
		if s.config.SlopePct > 0 {
			head *= DirectionalSlopeFactor(normals[i], s.config.SlopePct, s.config.AspectDeg)
		}
		back := s.fbp.ROSBack
		disp := ellipseDisplacement(head, back, s.windToDir, normals[i], dt/60)
		if math.IsNaN(disp.X) || math.IsNaN(disp.Y) || math.IsInf(disp.X, 0) || math.IsInf(disp.Y, 0) {
			return newError(NumericError, "non-finite displacement at vertex %d", i)
		}
		newRing[i] = geom.Point{X: v.X + disp.X, Y: v.Y + disp.Y}
	}

	s.perim.setFromLocal(s.plane, newRing)
	s.perim.Resample(s.plane, resampleMergeM, resampleSubdivide)
	s.perim.RemoveSelfIntersections(s.plane)
	s.perim.EnforceCCW()

	s.simTime += dt / 3600
	s.stepNum++
	fmt.Fprintf(s.log, "step %-4d  dt=%5.1fs  simTime=%6.3fh  vertices=%d  area=%6.3fha\n",
		s.stepNum, dt, s.simTime, len(s.perim.Vertices), s.perim.AreaHectares())
	return nil
}
