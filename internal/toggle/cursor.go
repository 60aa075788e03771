package toggle

// Cursor cycles through a fixed list, one value per call to Next.
type Cursor[T any] struct {
	list  []T
	index int
}

// NewCursor returns a cursor positioned on the first element of list.
// The list is copied.
func NewCursor[T any](list []T) *Cursor[T] {
	return &Cursor[T]{list: append([]T(nil), list...)}
}

// Next returns the current value and advances circularly. It reports
// false, and does not move, when the list is empty.
func (c *Cursor[T]) Next() (T, bool) {
	var zero T
	if c == nil || len(c.list) == 0 {
		return zero, false
	}
	value := c.list[c.index]
	c.index = (c.index + 1) % len(c.list)
	return value, true
}

// Peek returns the value Next would return without advancing.
func (c *Cursor[T]) Peek() (T, bool) {
	var zero T
	if c == nil || len(c.list) == 0 {
		return zero, false
	}
	return c.list[c.index], true
}

// Index returns the position of the next value.
func (c *Cursor[T]) Index() int {
	if c == nil {
		return 0
	}
	return c.index
}

// Len returns the list length.
func (c *Cursor[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.list)
}
