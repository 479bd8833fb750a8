package guard

// Stack accumulates release actions during heterogeneous multi-step
// construction and runs them in reverse push order. It is the structured
// scope block for building a composite object out of differently-typed
// guards: push each guard's Release as it is created, disarm the stack once
// every step has succeeded, and let a deferred Release sweep up after any
// early return.
//
//	var s guard.Stack
//	defer s.Release()
//
//	rp, err := ext.Create(dev, createRenderPass)
//	if err != nil {
//		return nil, err
//	}
//	s.Push(rp.Release)
//	// ... further fallible steps ...
//	s.Disarm()
type Stack struct {
	releases []func()
	disarmed bool
}

// Push registers a release action to run on Release.
func (s *Stack) Push(release func()) {
	s.releases = append(s.releases, release)
}

// Len returns the number of registered release actions.
func (s *Stack) Len() int {
	return len(s.releases)
}

// Disarm makes Release a no-op, keeping every pushed resource alive.
func (s *Stack) Disarm() {
	s.disarmed = true
}

// Release runs the registered actions in reverse push order unless the stack
// was disarmed. Idempotent.
func (s *Stack) Release() {
	if s.disarmed {
		return
	}
	s.disarmed = true
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
}
