package dynarray

import (
	"fmt"
	"strings"
)

// DefaultCapacity is the buffer size of a list created with New.
const DefaultCapacity = 4

// List is a dynamic array of comparable elements. Slots [0, count) of the
// buffer are live; the rest are spare capacity holding zero values.
type List[T comparable] struct {
	storage []T
	count   int
}

// New returns an empty list with DefaultCapacity slots.
func New[T comparable]() *List[T] {
	return &List[T]{storage: make([]T, DefaultCapacity)}
}

// NewWithCapacity returns an empty list with capacity slots. A capacity
// below one is rejected with ErrInvalidArgument.
func NewWithCapacity[T comparable](capacity int) (*List[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity %d must be at least 1", ErrInvalidArgument, capacity)
	}
	return &List[T]{storage: make([]T, capacity)}, nil
}

// From returns a list with the default capacity holding items in order.
func From[T comparable](items ...T) *List[T] {
	l := New[T]()
	l.AddRange(items...)
	return l
}

func (l *List[T]) Count() int    { return l.count }
func (l *List[T]) Capacity() int { return len(l.storage) }

func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex("get", index); err != nil {
		var zero T
		return zero, err
	}
	return l.storage[index], nil
}

func (l *List[T]) Set(index int, item T) error {
	if err := l.checkIndex("set", index); err != nil {
		return err
	}
	l.storage[index] = item
	return nil
}

// Add appends item, doubling the capacity first when the buffer is full.
func (l *List[T]) Add(item T) {
	if l.count == len(l.storage) {
		l.resize()
	}
	l.storage[l.count] = item
	l.count++
}

func (l *List[T]) AddRange(items ...T) {
	for _, item := range items {
		l.Add(item)
	}
}

// Insert places item at index, shifting later elements right. Only live
// indices are accepted: inserting at Count is rejected, use Add instead.
func (l *List[T]) Insert(index int, item T) error {
	if err := l.checkIndex("insert", index); err != nil {
		return err
	}
	if l.count == len(l.storage) {
		l.resize()
	}
	for i := l.count; i > index; i-- {
		l.storage[i] = l.storage[i-1]
	}
	l.storage[index] = item
	l.count++
	return nil
}

// Remove deletes the first element equal to item and reports whether one
// was found.
func (l *List[T]) Remove(item T) bool {
	p := l.IndexOf(item)
	if p < 0 {
		return false
	}
	l.removeAt(p)
	return true
}

func (l *List[T]) RemoveAt(index int) error {
	if err := l.checkIndex("remove_at", index); err != nil {
		return err
	}
	l.removeAt(index)
	return nil
}

// Reverse reverses the live elements in place.
func (l *List[T]) Reverse() {
	l.reverse(0, l.count)
}

// ReverseRange reverses the count elements starting at index. The range
// must lie within the live elements.
func (l *List[T]) ReverseRange(index, count int) error {
	if index < 0 || index > l.count {
		return &IndexError{Op: "reverse_range", Index: index, Count: l.count}
	}
	if count < 0 || count > l.count-index {
		return &IndexError{Op: "reverse_range", Index: index, Count: l.count}
	}
	l.reverse(index, count)
	return nil
}

// IndexOf returns the position of the first element equal to item, or -1.
func (l *List[T]) IndexOf(item T) int {
	for i := 0; i < l.count; i++ {
		if l.storage[i] == item {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the position of the last element equal to item, or -1.
func (l *List[T]) LastIndexOf(item T) int {
	for i := l.count - 1; i >= 0; i-- {
		if l.storage[i] == item {
			return i
		}
	}
	return -1
}

func (l *List[T]) Contains(item T) bool {
	return l.IndexOf(item) != -1
}

// Find returns the first live element satisfying match. The boolean is
// false, and the element the zero value, when nothing matches.
func (l *List[T]) Find(match func(T) bool) (T, bool) {
	for i := 0; i < l.count; i++ {
		if match(l.storage[i]) {
			return l.storage[i], true
		}
	}
	var zero T
	return zero, false
}

// FindAll returns a new list holding every element satisfying match, in order.
func (l *List[T]) FindAll(match func(T) bool) *List[T] {
	found := New[T]()
	for i := 0; i < l.count; i++ {
		if match(l.storage[i]) {
			found.Add(l.storage[i])
		}
	}
	return found
}

// ForEach calls action on each live element in index order.
func (l *List[T]) ForEach(action func(T)) error {
	if action == nil {
		return fmt.Errorf("%w: nil action", ErrInvalidArgument)
	}
	for i := 0; i < l.count; i++ {
		action(l.storage[i])
	}
	return nil
}

// Clear drops every element. The capacity is kept.
func (l *List[T]) Clear() {
	l.storage = make([]T, len(l.storage))
	l.count = 0
}

// Slice returns a copy of the live elements.
func (l *List[T]) Slice() []T {
	out := make([]T, l.count)
	copy(out, l.storage[:l.count])
	return out
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < l.count; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, l.storage[i])
	}
	b.WriteByte(']')
	return b.String()
}

// resize doubles the buffer, copying every slot including spare ones.
func (l *List[T]) resize() {
	grown := make([]T, len(l.storage)*2)
	copy(grown, l.storage)
	l.storage = grown
}

func (l *List[T]) removeAt(index int) {
	for i := index; i < l.count-1; i++ {
		l.storage[i] = l.storage[i+1]
	}
	var zero T
	l.storage[l.count-1] = zero
	l.count--
}

func (l *List[T]) reverse(index, count int) {
	for i, j := index, index+count-1; i < j; i, j = i+1, j-1 {
		l.storage[i], l.storage[j] = l.storage[j], l.storage[i]
	}
}

func (l *List[T]) checkIndex(op string, index int) error {
	if index < 0 || index >= l.count {
		return &IndexError{Op: op, Index: index, Count: l.count}
	}
	return nil
}
