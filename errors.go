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

import "fmt"

// Kind classifies the fatal and recoverable conditions the core can
// raise. Kind, not the concrete error type, is what callers should
// switch on.
type Kind int

const (
	// InvalidConfig covers an unknown fuel code or an out-of-range
	// weather, duration, or snapshot interval. Fatal; no frames are
	// emitted.
	InvalidConfig Kind = iota
	// InvalidInputs covers negative ISI/BUI/ROS passed into the FBP
	// equations. Surfaced to the driver as InvalidConfig.
	InvalidInputs
	// NumericError covers NaN/Inf appearing in vertex positions or
	// intensities. Fatal: FrameSeq.Next returns ok=false; the caller's
	// own copy of the Frame from its last successful Next call is the
	// only "last good frame" available, since the sequence retains no
	// history once it has been consumed.
	NumericError
	// DegeneratePerimeter is recoverable: the perimeter was pruned to
	// fewer than 3 vertices during cleanup. The driver emits a
	// zero-area frame at each remaining snapshot boundary and
	// continues to duration_hours.
	DegeneratePerimeter
)

func (k Kind) String() string {
	switch k {
	case InvalidConfig:
		return "InvalidConfig"
	case InvalidInputs:
		return "InvalidInputs"
	case NumericError:
		return "NumericError"
	case DegeneratePerimeter:
		return "DegeneratePerimeter"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by this package. Kind identifies
// the taxonomy bucket from spec.md §7; Err, if non-nil, is the
// underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("firespread: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("firespread: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target has the same Kind, fulfilling errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(k Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Err: err}
}
