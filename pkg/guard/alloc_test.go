package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/guarded/pkg/guard"
	"github.com/ib-77/guarded/pkg/guard/guardtest"
)

func TestAllocRelease_PassesStoredCallbacks(t *testing.T) {
	t.Parallel()
	rec := &guardtest.Recorder{}
	cb := &guardtest.Callbacks{Tag: "host-alloc"}

	g := guard.NewAlloc(guardtest.AllocResource{ID: 11}, rec, cb)
	g.Release()
	g.Release()

	assert.Equal(t, []int{11}, rec.Destroyed())
	assert.Equal(t, []*guardtest.Callbacks{cb}, rec.CallbacksSeen())
}

func TestAllocTake_SuppressesDestroy(t *testing.T) {
	t.Parallel()
	rec := &guardtest.Recorder{}
	cb := &guardtest.Callbacks{}

	g := guard.NewAlloc(guardtest.AllocResource{ID: 11}, rec, cb)
	taken := g.Take()
	g.Release()

	assert.Equal(t, 11, taken.ID)
	assert.Empty(t, rec.Destroyed())
}

func TestAllocAccessors(t *testing.T) {
	t.Parallel()
	rec := &guardtest.Recorder{}
	cb := &guardtest.Callbacks{Tag: "pool"}

	g := guard.NewAlloc(guardtest.AllocResource{ID: 2}, rec, cb)
	defer g.Release()

	assert.Equal(t, 2, g.Resource().ID)
	assert.Same(t, rec, g.Destroyer())
	assert.Same(t, cb, g.AllocCallbacks())

	g.ResourcePtr().ID = 8
	assert.Equal(t, 8, g.Resource().ID)
}

func TestAllocTake_PanicsWhenCalledTwice(t *testing.T) {
	t.Parallel()
	rec := &guardtest.Recorder{}

	g := guard.NewAlloc(guardtest.AllocResource{ID: 1}, rec, &guardtest.Callbacks{})
	g.Take()

	assert.Panics(t, func() { g.Take() })
}

func TestAllocGroup_DestroysInReverseWithCallbacks(t *testing.T) {
	t.Parallel()
	rec := &guardtest.Recorder{}
	cb := &guardtest.Callbacks{}
	group := guard.AllocGroup[guardtest.AllocResource, *guardtest.Recorder, *guardtest.Callbacks]{
		{ID: 0}, {ID: 1},
	}

	g := guard.NewAlloc(group, rec, cb)
	g.Release()

	assert.Equal(t, []int{1, 0}, rec.Destroyed())
	assert.Equal(t, []*guardtest.Callbacks{cb, cb}, rec.CallbacksSeen())
}
