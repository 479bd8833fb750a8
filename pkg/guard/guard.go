package guard

// Guard owns a single resource and guarantees its destruction on Release
// unless the resource was moved out with Take. The destroyer is held by
// reference semantics only: the caller guarantees it outlives the guard.
type Guard[R Destroyable[D], D any] struct {
	resource  R
	destroyer D
	armed     bool
}

// New wraps a freshly created resource in an armed guard.
func New[R Destroyable[D], D any](resource R, destroyer D) *Guard[R, D] {
	return &Guard[R, D]{
		resource:  resource,
		destroyer: destroyer,
		armed:     true,
	}
}

// Resource returns the guarded resource without transferring ownership.
func (g *Guard[R, D]) Resource() R {
	return g.resource
}

// ResourcePtr returns a pointer to the guarded resource for in-place mutation.
func (g *Guard[R, D]) ResourcePtr() *R {
	return &g.resource
}

// Destroyer returns the destroyer passed during construction.
func (g *Guard[R, D]) Destroyer() D {
	return g.destroyer
}

// Take moves the resource out and disarms the guard; a later Release does
// nothing. Calling Take on a guard that was already taken or released is a
// programming error and panics.
func (g *Guard[R, D]) Take() R {
	if !g.armed {
		panic("guard: resource already taken or released")
	}
	g.armed = false
	return g.resource
}

// Release destroys the resource unless the guard was disarmed. It is
// idempotent, so pairing a deferred Release with an explicit one is safe.
func (g *Guard[R, D]) Release() {
	if !g.armed {
		return
	}
	g.armed = false
	g.resource.DestroyWith(g.destroyer)
}
