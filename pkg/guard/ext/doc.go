// Package ext wraps raw fallible creation calls so that a successful result
// comes back already guarded, scoped to the destroyer that created it. It
// removes the create-then-wrap boilerplate at call sites; behavior is direct
// delegation plus wrapping, and creation errors pass through unchanged.
//
// Key operations:
// - Create/CreateAlloc: one guarded resource from one creation call
// - CreateSlice/CreateAllocSlice: a guarded collection from an indexed call
package ext
