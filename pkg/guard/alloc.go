package guard

// AllocGuard is the Guard variant for resource kinds whose destruction takes
// an allocation-callback parameter. The stored parameter is handed to
// DestroyWith verbatim on Release; the destroyer and parameter accessors let
// composed higher-level guards recurse into driver-specific bookkeeping.
type AllocGuard[R AllocDestroyable[D, A], D, A any] struct {
	resource  R
	destroyer D
	allocCB   A
	armed     bool
}

// NewAlloc wraps a freshly created resource in an armed guard, remembering
// the allocation callbacks to pass at destruction.
func NewAlloc[R AllocDestroyable[D, A], D, A any](resource R, destroyer D, allocCB A) *AllocGuard[R, D, A] {
	return &AllocGuard[R, D, A]{
		resource:  resource,
		destroyer: destroyer,
		allocCB:   allocCB,
		armed:     true,
	}
}

// Resource returns the guarded resource without transferring ownership.
func (g *AllocGuard[R, D, A]) Resource() R {
	return g.resource
}

// ResourcePtr returns a pointer to the guarded resource for in-place mutation.
func (g *AllocGuard[R, D, A]) ResourcePtr() *R {
	return &g.resource
}

// Destroyer returns the destroyer passed during construction.
func (g *AllocGuard[R, D, A]) Destroyer() D {
	return g.destroyer
}

// AllocCallbacks returns the allocation-callback parameter passed during
// construction.
func (g *AllocGuard[R, D, A]) AllocCallbacks() A {
	return g.allocCB
}

// Take moves the resource out and disarms the guard. It panics if the guard
// was already taken or released.
func (g *AllocGuard[R, D, A]) Take() R {
	if !g.armed {
		panic("guard: resource already taken or released")
	}
	g.armed = false
	return g.resource
}

// Release destroys the resource with the stored allocation callbacks unless
// the guard was disarmed. Idempotent.
func (g *AllocGuard[R, D, A]) Release() {
	if !g.armed {
		return
	}
	g.armed = false
	g.resource.DestroyWith(g.destroyer, g.allocCB)
}
