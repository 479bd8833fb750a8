package guard

// Destroyable is implemented by resource types that are destroyed through an
// external destroyer, typically the device or instance handle that created
// them. DestroyWith must be safe to call exactly once and cannot fail: APIs
// of this shape treat destruction as infallible, and a resource whose
// underlying destroy call can report errors must absorb them here.
type Destroyable[D any] interface {
	// DestroyWith destroys the resource via destroyer.
	DestroyWith(destroyer D)
}

// AllocDestroyable is implemented by resource types whose destruction takes
// an allocation-callback parameter in addition to the destroyer. The
// parameter is threaded through unchanged; a nil-able type with a nil value
// expresses "no callbacks".
type AllocDestroyable[D, A any] interface {
	// DestroyWith destroys the resource via destroyer, passing allocCB.
	DestroyWith(destroyer D, allocCB A)
}

// DestroyFunc adapts a closure into a Destroyable resource.
type DestroyFunc[D any] func(destroyer D)

// DestroyWith implements Destroyable.
func (f DestroyFunc[D]) DestroyWith(destroyer D) {
	f(destroyer)
}

// AllocDestroyFunc adapts a closure into an AllocDestroyable resource.
type AllocDestroyFunc[D, A any] func(destroyer D, allocCB A)

// DestroyWith implements AllocDestroyable.
func (f AllocDestroyFunc[D, A]) DestroyWith(destroyer D, allocCB A) {
	f(destroyer, allocCB)
}

// Group is a slice of destroyables that destroys as a unit, elements in
// reverse order. It lets a homogeneous batch act as a single resource inside
// a Guard.
type Group[R Destroyable[D], D any] []R

// DestroyWith implements Destroyable.
func (g Group[R, D]) DestroyWith(destroyer D) {
	for i := len(g) - 1; i >= 0; i-- {
		g[i].DestroyWith(destroyer)
	}
}

// AllocGroup is the Group counterpart for alloc-parameterized resources.
type AllocGroup[R AllocDestroyable[D, A], D, A any] []R

// DestroyWith implements AllocDestroyable.
func (g AllocGroup[R, D, A]) DestroyWith(destroyer D, allocCB A) {
	for i := len(g) - 1; i >= 0; i-- {
		g[i].DestroyWith(destroyer, allocCB)
	}
}
