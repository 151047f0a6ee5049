package queue

import (
	"sync"
)

type element[T any] struct {
	next  *element[T]
	value T
}

// Queue represents a FIFO queue built on a singly linked list with a sentinel head.
type Queue[T any] struct {
	pool *sync.Pool // optional pool used to create/release queue elements
	root element[T] // sentinel element, root.next is the front
	back *element[T]
	len  int // current queue length excluding (this) sentinel element
}

// NewQueue creates new Queue instance.
func NewQueue[T any]() *Queue[T] {
	return NewQueuePooled[T](nil)
}

// NewQueuePooled creates new Queue instance.
// Pooled queue uses given pool for elements creating/releasing.
func NewQueuePooled[T any](pool *sync.Pool) *Queue[T] {
	q := new(Queue[T])
	q.pool = pool
	q.back = &q.root
	return q
}

// NewElementPool returns a pool suitable for NewQueuePooled.
func NewElementPool[T any]() *sync.Pool {
	return &sync.Pool{New: func() any {
		return new(element[T])
	}}
}

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int {
	return q.len
}

// Front returns the first value of the queue without removing it.
func (q *Queue[T]) Front() (v T, err error) {
	if q.len == 0 {
		err = ErrorQueueEmpty
		return
	}
	return q.root.next.value, nil
}

// PushBack appends value v at the back of the queue.
func (q *Queue[T]) PushBack(v T) {
	q.lazyInit()
	var e *element[T]
	if q.pool != nil {
		e = q.pool.Get().(*element[T])
	} else {
		e = new(element[T])
	}
	e.value = v
	q.back.next = e
	q.back = e
	q.len++
}

// PopFront removes and returns the first value of the queue.
func (q *Queue[T]) PopFront() (v T, err error) {
	if q.len == 0 {
		err = ErrorQueueEmpty
		return
	}
	e := q.root.next
	q.root.next = e.next
	q.len--
	if q.len == 0 {
		q.back = &q.root
	}
	v = e.value
	q.release(e)
	return
}

// Clean removes all existing values.
func (q *Queue[T]) Clean() {
	for e := q.root.next; e != nil; {
		next := e.next
		q.release(e)
		e = next
	}
	q.root.next = nil
	q.back = &q.root
	q.len = 0
}

// lazyInit lazily initializes a zero Queue value.
func (q *Queue[T]) lazyInit() {
	if q.back == nil {
		q.back = &q.root
	}
}

func (q *Queue[T]) release(e *element[T]) {
	// Clean up removed element to avoid memory leaks
	*e = element[T]{}
	if q.pool != nil {
		q.pool.Put(e)
	}
}
