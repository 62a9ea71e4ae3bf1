package joy

// fakeSubsystem scripts capability and state responses for the engine
// tests. State results are consumed in call order; once the script is
// exhausted every further poll fails.
type fakeSubsystem struct {
	num    uint
	caps   map[uint]Caps
	states []stateResult

	stateCalls int
}

type stateResult struct {
	st  State
	err error
}

func (f *fakeSubsystem) NumDevices() uint { return f.num }

func (f *fakeSubsystem) Caps(id uint) (Caps, error) {
	c, ok := f.caps[id]
	if !ok {
		return Caps{}, ErrNotFound
	}
	return c, nil
}

func (f *fakeSubsystem) State(id uint) (State, error) {
	i := f.stateCalls
	f.stateCalls++
	if i >= len(f.states) {
		return State{}, ErrReadFailed
	}
	return f.states[i].st, f.states[i].err
}

func ok(st State) stateResult { return stateResult{st: st} }

func failed() stateResult { return stateResult{err: ErrReadFailed} }
