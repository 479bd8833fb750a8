// Package guard provides scoped ownership for resources obtained from
// handle-based APIs, where creating a composite object takes several
// sequentially-created sub-resources and a failure halfway through must not
// leak the ones already created.
//
// A Guard owns one resource and destroys it exactly once on Release, unless
// the resource was moved out with Take. Callers pair construction with a
// deferred release:
//
//	g := guard.New(view, device)
//	defer g.Release()
//	// ... fallible work ...
//	return g.Take(), nil
//
// Key operations:
// - Destroyable/AllocDestroyable: a resource type declares how it is destroyed
// - New/NewAlloc: wrap a freshly created resource in a guard
// - Take: move the resource out, disarming the guard
// - Release: destroy the resource unless taken; safe to call twice
// - TryNewWith/TryNewFrom: all-or-nothing construction of a guarded collection
// - Stack: LIFO release stack for heterogeneous multi-step construction
package guard
