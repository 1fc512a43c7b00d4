package palette

// State is the working palette together with its lock mask.
// Every transition returns a new State; the receiver is never modified.
type State struct {
	Palette Palette
	Locks   LockMask
}

// DefaultState returns the default palette with nothing locked.
func DefaultState() State {
	return State{Palette: Default()}
}

// Apply merges a freshly generated palette, keeping locked slots.
func (s State) Apply(fresh Palette) State {
	return State{Palette: Merge(s.Palette, fresh, s.Locks), Locks: s.Locks}
}

// Replace swaps in a whole palette (a loaded or extracted one) and clears locks.
func (s State) Replace(p Palette) State {
	return State{Palette: p}
}

// ToggleLock flips the lock on zero-based slot i.
func (s State) ToggleLock(i int) (State, error) {
	locks, err := s.Locks.Toggle(i)
	if err != nil {
		return s, err
	}
	return State{Palette: s.Palette, Locks: locks}, nil
}
