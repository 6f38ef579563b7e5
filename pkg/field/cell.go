package field

// Cell is the minimal reactive primitive editing state is built from: a value
// with an explicit write and synchronous change notification. Watchers run on
// the writer's stack before Set returns, which keeps recomputation order
// deterministic without a scheduler. Cells are not safe for concurrent use;
// the runtime model is single-threaded by design.
type Cell[T any] struct {
	value    T
	watchers []func(T)
}

// NewCell creates a cell seeded with v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set writes v and notifies watchers in registration order.
func (c *Cell[T]) Set(v T) {
	c.value = v
	for _, fn := range c.watchers {
		fn(v)
	}
}

// Watch registers fn to run on every subsequent write.
func (c *Cell[T]) Watch(fn func(T)) {
	if fn != nil {
		c.watchers = append(c.watchers, fn)
	}
}
