package ext

import (
	"github.com/ib-77/guarded/pkg/guard"
)

// Create invokes create with the destroyer and wraps the result in a guard
// scoped to it. On failure there is nothing to clean up and the error is
// returned unchanged.
func Create[R guard.Destroyable[D], D any](destroyer D, create func(D) (R, error)) (*guard.Guard[R, D], error) {
	resource, err := create(destroyer)
	if err != nil {
		return nil, err
	}
	return guard.New(resource, destroyer), nil
}

// CreateAlloc invokes create with the destroyer and allocation callbacks,
// wrapping the result in a guard that will destroy with the same callbacks.
func CreateAlloc[R guard.AllocDestroyable[D, A], D, A any](destroyer D, allocCB A, create func(D, A) (R, error)) (*guard.AllocGuard[R, D, A], error) {
	resource, err := create(destroyer, allocCB)
	if err != nil {
		return nil, err
	}
	return guard.NewAlloc(resource, destroyer, allocCB), nil
}

// CreateSlice builds a guarded collection scoped to the destroyer by calling
// create(destroyer, i) per index, with the transactional cleanup of
// guard.TryNewWith.
func CreateSlice[R guard.Destroyable[D], D any](destroyer D, n int, create func(D, int) (R, error)) (*guard.Slice[R, D], error) {
	return guard.TryNewWith(destroyer, n, func(i int) (R, error) {
		return create(destroyer, i)
	})
}

// CreateAllocSlice is CreateSlice for alloc-parameterized resources.
func CreateAllocSlice[R guard.AllocDestroyable[D, A], D, A any](destroyer D, allocCB A, n int, create func(D, A, int) (R, error)) (*guard.AllocSlice[R, D, A], error) {
	return guard.TryNewAllocWith(destroyer, allocCB, n, func(i int) (R, error) {
		return create(destroyer, allocCB, i)
	})
}
