package strategies

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStrategy struct {
	id string
	fn Func
}

func (f *fakeStrategy) ID() string            { return f.id }
func (f *fakeStrategy) Name() string          { return f.id }
func (f *fakeStrategy) Compute(n int64) int64 { return f.fn(n) }

func newFake(id string) *fakeStrategy {
	return &fakeStrategy{id: id, fn: func(n int64) int64 { return n }}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(newFake("b"))
	r.Register(newFake("a"))

	s, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", s.ID())

	_, err = r.Get("missing")
	assert.Error(t, err)

	if diff := cmp.Diff([]string{"a", "b"}, r.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RegisterDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(newFake("x"))
	assert.Panics(t, func() { r.Register(newFake("x")) })
	assert.Panics(t, func() { r.Register(newFake("  ")) })
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"goto", "iterative", "recursive"} {
		r.Register(newFake(id))
	}

	ss, err := r.Resolve([]string{"recursive", " ", "goto"})
	require.NoError(t, err)
	got := make([]string, 0, len(ss))
	for _, s := range ss {
		got = append(got, s.ID())
	}
	if diff := cmp.Diff([]string{"recursive", "goto"}, got); diff != "" {
		t.Errorf("Resolve order mismatch (-want +got):\n%s", diff)
	}

	_, err = r.Resolve([]string{"goto", "goto"})
	assert.Error(t, err, "duplicate ids must be rejected")

	_, err = r.Resolve([]string{"goto", "nope"})
	assert.Error(t, err)

	_, err = r.Resolve(nil)
	assert.Error(t, err)
}

func TestFuncOf(t *testing.T) {
	s := &fakeStrategy{id: "double", fn: func(n int64) int64 { return 2 * n }}
	assert.Equal(t, int64(14), FuncOf(s)(7))
}
