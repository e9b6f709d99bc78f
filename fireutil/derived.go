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
	"fmt"

	"github.com/Knetic/govaluate"

	"github.com/wildfire-sim/firespread"
)

// DerivedMetrics compiles a set of user-defined expressions (e.g.
// "hfi_per_ha": "max_hfi_kw_m / area_ha") into evaluators run against
// each emitted Frame, echoing the teacher's govaluate-based
// user-defined output variables in io.go's Outputter.
type DerivedMetrics struct {
	exprs map[string]*govaluate.EvaluableExpression
}

// NewDerivedMetrics compiles the named expressions up front so a
// malformed expression fails before any simulation runs.
func NewDerivedMetrics(defs map[string]string) (*DerivedMetrics, error) {
	dm := &DerivedMetrics{exprs: make(map[string]*govaluate.EvaluableExpression, len(defs))}
	for name, expr := range defs {
		compiled, err := govaluate.NewEvaluableExpression(expr)
		if err != nil {
			return nil, fmt.Errorf("firespread: derived metric %q: %v", name, err)
		}
		dm.exprs[name] = compiled
	}
	return dm, nil
}

// Evaluate runs every compiled expression against frame's fields,
// returning one scalar per derived metric name.
func (dm *DerivedMetrics) Evaluate(frame firespread.Frame) (map[string]float64, error) {
	if dm == nil || len(dm.exprs) == 0 {
		return nil, nil
	}
	params := map[string]interface{}{
		"time_hours":     frame.TimeHours,
		"area_ha":        frame.AreaHa,
		"head_ros_m_min": frame.HeadROSMMin,
		"max_hfi_kw_m":   frame.MaxHFIKWM,
		"flame_length_m": frame.FlameLengthM,
	}
	out := make(map[string]float64, len(dm.exprs))
	for name, expr := range dm.exprs {
		result, err := expr.Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("firespread: derived metric %q: %v", name, err)
		}
		v, ok := result.(float64)
		if !ok {
			return nil, fmt.Errorf("firespread: derived metric %q did not evaluate to a number", name)
		}
		out[name] = v
	}
	return out, nil
}
