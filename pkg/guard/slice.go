package guard

// Slice is a guard over an ordered collection of resources sharing one
// destroyer. A Slice only ever exists fully constructed: the TryNew
// constructors clean up partial state internally before surfacing an error.
// Release destroys elements in reverse index order.
type Slice[R Destroyable[D], D any] struct {
	resources []R
	destroyer D
	armed     bool
}

// TryNewWith builds a guarded collection of n resources by calling
// factory(0) .. factory(n-1) in order. If any call fails, every resource
// created so far is destroyed, most recent first, and the factory's error is
// returned unchanged.
func TryNewWith[R Destroyable[D], D any](destroyer D, n int, factory func(i int) (R, error)) (*Slice[R, D], error) {
	resources, err := collect(n, factory, func(r R) { r.DestroyWith(destroyer) })
	if err != nil {
		return nil, err
	}
	return &Slice[R, D]{resources: resources, destroyer: destroyer, armed: true}, nil
}

// TryNewFrom builds a guarded collection with one factory per slot, fixing
// the collection size at the call site. Cleanup semantics match TryNewWith.
func TryNewFrom[R Destroyable[D], D any](destroyer D, factories ...func() (R, error)) (*Slice[R, D], error) {
	return TryNewWith(destroyer, len(factories), func(i int) (R, error) {
		return factories[i]()
	})
}

// Resources returns the underlying collection without transferring ownership.
func (g *Slice[R, D]) Resources() []R {
	return g.resources
}

// At returns the resource at index i.
func (g *Slice[R, D]) At(i int) R {
	return g.resources[i]
}

// Len returns the number of guarded resources.
func (g *Slice[R, D]) Len() int {
	return len(g.resources)
}

// Destroyer returns the shared destroyer passed during construction.
func (g *Slice[R, D]) Destroyer() D {
	return g.destroyer
}

// Take moves the collection out and disarms the guard. It panics if the
// guard was already taken or released.
func (g *Slice[R, D]) Take() []R {
	if !g.armed {
		panic("guard: resources already taken or released")
	}
	g.armed = false
	return g.resources
}

// Release destroys every element in reverse index order unless the guard was
// disarmed. Idempotent.
func (g *Slice[R, D]) Release() {
	if !g.armed {
		return
	}
	g.armed = false
	for i := len(g.resources) - 1; i >= 0; i-- {
		g.resources[i].DestroyWith(g.destroyer)
	}
}

// AllocSlice is the Slice counterpart for alloc-parameterized resources.
type AllocSlice[R AllocDestroyable[D, A], D, A any] struct {
	resources []R
	destroyer D
	allocCB   A
	armed     bool
}

// TryNewAllocWith is TryNewWith for resources destroyed with allocation
// callbacks; the same callbacks are used for mid-construction cleanup and
// for the eventual Release.
func TryNewAllocWith[R AllocDestroyable[D, A], D, A any](destroyer D, allocCB A, n int, factory func(i int) (R, error)) (*AllocSlice[R, D, A], error) {
	resources, err := collect(n, factory, func(r R) { r.DestroyWith(destroyer, allocCB) })
	if err != nil {
		return nil, err
	}
	return &AllocSlice[R, D, A]{resources: resources, destroyer: destroyer, allocCB: allocCB, armed: true}, nil
}

// TryNewAllocFrom is TryNewFrom for resources destroyed with allocation
// callbacks.
func TryNewAllocFrom[R AllocDestroyable[D, A], D, A any](destroyer D, allocCB A, factories ...func() (R, error)) (*AllocSlice[R, D, A], error) {
	return TryNewAllocWith(destroyer, allocCB, len(factories), func(i int) (R, error) {
		return factories[i]()
	})
}

// Resources returns the underlying collection without transferring ownership.
func (g *AllocSlice[R, D, A]) Resources() []R {
	return g.resources
}

// At returns the resource at index i.
func (g *AllocSlice[R, D, A]) At(i int) R {
	return g.resources[i]
}

// Len returns the number of guarded resources.
func (g *AllocSlice[R, D, A]) Len() int {
	return len(g.resources)
}

// Destroyer returns the shared destroyer passed during construction.
func (g *AllocSlice[R, D, A]) Destroyer() D {
	return g.destroyer
}

// AllocCallbacks returns the allocation-callback parameter passed during
// construction.
func (g *AllocSlice[R, D, A]) AllocCallbacks() A {
	return g.allocCB
}

// Take moves the collection out and disarms the guard. It panics if the
// guard was already taken or released.
func (g *AllocSlice[R, D, A]) Take() []R {
	if !g.armed {
		panic("guard: resources already taken or released")
	}
	g.armed = false
	return g.resources
}

// Release destroys every element in reverse index order unless the guard was
// disarmed. Idempotent.
func (g *AllocSlice[R, D, A]) Release() {
	if !g.armed {
		return
	}
	g.armed = false
	for i := len(g.resources) - 1; i >= 0; i-- {
		g.resources[i].DestroyWith(g.destroyer, g.allocCB)
	}
}

// collect runs the transactional construction loop shared by every TryNew
// entry point: ascending creation, and on failure at index k, destruction of
// indices k-1..0 before the error escapes.
func collect[R any](n int, factory func(i int) (R, error), destroy func(R)) ([]R, error) {
	resources := make([]R, 0, n)
	for i := range n {
		r, err := factory(i)
		if err != nil {
			for j := len(resources) - 1; j >= 0; j-- {
				destroy(resources[j])
			}
			return nil, err
		}
		resources = append(resources, r)
	}
	return resources, nil
}
