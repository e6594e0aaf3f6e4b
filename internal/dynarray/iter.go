package dynarray

import "iter"

// All yields the live elements in index order. Each call starts a new pass.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.count; i++ {
			if !yield(l.storage[i]) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from the last live element to the first.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := l.count - 1; i >= 0; i-- {
			if !yield(i, l.storage[i]) {
				return
			}
		}
	}
}

// AddSeq appends every element produced by seq.
func (l *List[T]) AddSeq(seq iter.Seq[T]) {
	for item := range seq {
		l.Add(item)
	}
}
