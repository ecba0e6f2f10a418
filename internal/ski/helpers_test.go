package ski

// seqRandom replays a fixed sequence of values, cycling when exhausted.
type seqRandom struct {
	vals []float64
	i    int
}

func newSeq(vals ...float64) *seqRandom {
	return &seqRandom{vals: vals}
}

func (s *seqRandom) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

const testDt = 1.0 / 60

// newTestRun returns a medium run with an empty field and a constant random source.
func newTestRun() *Run {
	r := NewRun(LevelMedium, WithRandom(newSeq(0.5)))
	r.field.Reset()
	return r
}

// stepClear advances one tick and removes anything spawned so only
// hand-placed objects matter.
func stepClear(r *Run, in Input) []Event {
	events := append([]Event(nil), r.Step(in, testDt)...)
	r.field.Each(func(o *SlopeObject) bool {
		if o.Y > ViewHeight {
			r.field.Remove(o.Handle)
		}
		return true
	})
	r.field.Compact()
	return events
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func findEvent(events []Event, kind EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}
