package viewer

import "go.uber.org/zap"

// Sweep is a handle to one 360° rotation animation. Its timer lives only as
// long as the viewer that started it stays open and no newer sweep replaces it.
type Sweep struct {
	viewer *Viewer
	step   int
	stop   func()
	done   bool
}

// Active reports whether the sweep still has ticks scheduled.
func (s *Sweep) Active() bool {
	return s != nil && !s.done
}

// Step returns the number of ticks applied so far.
func (s *Sweep) Step() int {
	if s == nil {
		return 0
	}
	return s.step
}

// Cancel stops the sweep. The rotation stays wherever the last tick left it.
func (s *Sweep) Cancel() {
	if s == nil || s.done {
		return
	}
	if s.stop != nil {
		s.stop()
	}
	s.release()
	s.viewer.logger.Debug("sweep cancelled", zap.Int("step", s.step))
}

func (s *Sweep) tick() {
	if s.done {
		return
	}
	v := s.viewer
	s.step++
	v.transform.Rotation = float64((s.step * SweepStepDegrees) % 360)
	v.render()

	if s.step >= SweepSteps {
		v.transform.Rotation = 0
		v.render()
		s.release()
		return
	}
	s.stop = v.sched.After(v.interval, s.tick)
}

func (s *Sweep) release() {
	s.done = true
	s.stop = nil
	if s.viewer.sweep == s {
		s.viewer.sweep = nil
	}
}
