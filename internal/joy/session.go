package joy

import (
	"math"
	"math/bits"
	"time"
)

// AxisRange is the running [min, max] envelope observed for one axis.
// The zero-sample sentinels (max-uint32 min, zero max) are never exposed:
// callers must gate on Session.Success before reading ranges.
type AxisRange struct {
	Min uint32
	Max uint32
}

func newAxisRange() AxisRange {
	return AxisRange{Min: math.MaxUint32, Max: 0}
}

func (r *AxisRange) observe(v uint32) {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
}

// Range reports the observed spread. Only meaningful after at least one
// successful sample.
func (r AxisRange) Range() uint32 {
	return r.Max - r.Min
}

// Session aggregates one sampling run.
type Session struct {
	Success int
	Errors  int

	// ButtonsEverPressed is the OR of every sampled button mask.
	ButtonsEverPressed uint32

	X, Y, Z, R, U, V AxisRange
}

// ButtonCount is the number of distinct buttons seen pressed at least
// once during the session.
func (s Session) ButtonCount() int {
	return bits.OnesCount32(s.ButtonsEverPressed)
}

// Degraded reports whether the run should exit nonzero. Any failed poll
// degrades the session; a session where every poll failed is covered by
// the same test.
func (s Session) Degraded() bool {
	return s.Errors > 0
}

func (s *Session) fold(st State) {
	s.Success++
	s.X.observe(st.X)
	s.Y.observe(st.Y)
	s.Z.observe(st.Z)
	s.R.observe(st.R)
	s.U.observe(st.U)
	s.V.observe(st.V)
	s.ButtonsEverPressed |= st.Buttons
}

// SampleOptions controls one run of Sample.
type SampleOptions struct {
	// Samples is the exact number of poll attempts.
	Samples int

	// Delay is the pause after every attempt, including the last and
	// including failed ones.
	Delay time.Duration

	// OnSample, when set, fires with the raw snapshot of a successful
	// poll at iteration 0 or Samples-1, in iteration order. Failed
	// first/last polls emit nothing.
	OnSample func(iteration int, st State)

	// Sleep replaces time.Sleep, for tests.
	Sleep func(time.Duration)
}

// Sample performs opt.Samples poll attempts against one device slot and
// folds every successful snapshot into the returned Session. Failed
// polls are counted and skipped; nothing is retried. The caller must
// already have confirmed the slot exists via Caps.
func Sample(sub Subsystem, id uint, opt SampleOptions) Session {
	sleep := opt.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	sess := Session{
		X: newAxisRange(), Y: newAxisRange(), Z: newAxisRange(),
		R: newAxisRange(), U: newAxisRange(), V: newAxisRange(),
	}

	for i := 0; i < opt.Samples; i++ {
		st, err := sub.State(id)
		if err != nil {
			sess.Errors++
		} else {
			sess.fold(st)
			if opt.OnSample != nil && (i == 0 || i == opt.Samples-1) {
				opt.OnSample(i, st)
			}
		}
		sleep(opt.Delay)
	}
	return sess
}
