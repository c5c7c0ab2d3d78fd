package command

import "sync"

// SafeRef guards a value shared between goroutines. Get returns a copy under
// a read lock; Set and Update take the write lock.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef returns a SafeRef holding val.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns the current value.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Set replaces the value.
func (r *SafeRef[T]) Set(val T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = val
}

// Update mutates the value in place under the write lock.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}

// Swap replaces the value and returns the previous one.
func (r *SafeRef[T]) Swap(val T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.val
	r.val = val
	return old
}
