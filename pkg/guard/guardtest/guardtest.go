// Package guardtest provides canned destroyable resources and a recording
// destroyer for exercising guard semantics in tests.
//
// Key constructs:
// - Recorder: destroyer that records destroyed resource IDs in call order
// - Resource/AllocResource: minimal Destroyable/AllocDestroyable values
// - Callbacks: opaque allocation-callback value recorded alongside destroys
// - FailingFactory: indexed factory that fails at a chosen index
package guardtest

// Recorder stands in for a device or instance handle and records every
// destroy call routed through it.
type Recorder struct {
	destroyed []int
	callbacks []*Callbacks
}

// Record notes that the resource with the given ID was destroyed.
func (r *Recorder) Record(id int, cb *Callbacks) {
	r.destroyed = append(r.destroyed, id)
	r.callbacks = append(r.callbacks, cb)
}

// Destroyed returns the IDs of destroyed resources in destruction order.
func (r *Recorder) Destroyed() []int {
	return r.destroyed
}

// CallbacksSeen returns the allocation callbacks observed per destroy call,
// nil entries for plain resources.
func (r *Recorder) CallbacksSeen() []*Callbacks {
	return r.callbacks
}

// Reset clears the recorded history.
func (r *Recorder) Reset() {
	r.destroyed = nil
	r.callbacks = nil
}

// Callbacks is an opaque allocation-callback parameter.
type Callbacks struct {
	Tag string
}

// Resource is a minimal destroyable handle identified by an integer.
type Resource struct {
	ID int
}

// DestroyWith implements guard.Destroyable.
func (r Resource) DestroyWith(rec *Recorder) {
	rec.Record(r.ID, nil)
}

// AllocResource is a minimal alloc-parameterized destroyable handle.
type AllocResource struct {
	ID int
}

// DestroyWith implements guard.AllocDestroyable.
func (r AllocResource) DestroyWith(rec *Recorder, cb *Callbacks) {
	rec.Record(r.ID, cb)
}

// FailingFactory returns an indexed factory producing Resource{ID: i} until
// index failAt, where it returns err instead.
func FailingFactory(failAt int, err error) func(i int) (Resource, error) {
	return func(i int) (Resource, error) {
		if i == failAt {
			return Resource{}, err
		}
		return Resource{ID: i}, nil
	}
}
