package rule

import (
	"container/list"
	"context"
	"sync"
)

// memoCache is a bounded LRU of async rule outcomes keyed by value.
type memoCache[T comparable] struct {
	capacity int
	items    map[T]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

type memoEntry[T comparable] struct {
	value   T
	outcome bool
}

func (c *memoCache[T]) get(value T) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[value]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*memoEntry[T]).outcome, true
	}
	return false, false
}

func (c *memoCache[T]) put(value T, outcome bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[value]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*memoEntry[T]).outcome = outcome
		return
	}

	c.items[value] = c.eviction.PushFront(&memoEntry[T]{value: value, outcome: outcome})

	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*memoEntry[T]).value)
	}
}

// Memoize wraps an async rule with a bounded LRU of past outcomes so
// revalidating a recently seen value skips the latent operation. Debounced
// forms revalidate the same value whenever adjacent fields change, which
// makes remote checks like uniqueness lookups needlessly chatty.
//
// Only clean outcomes are cached. An errored check is retried on the next
// pass so a transient fault never pins a value to the generic failure
// verdict. Panics if capacity is not positive.
func Memoize[T comparable](r Async[T], capacity int) Async[T] {
	if capacity <= 0 {
		panic("memoized rule capacity must be positive")
	}

	cache := &memoCache[T]{
		capacity: capacity,
		items:    make(map[T]*list.Element),
		eviction: list.New(),
	}

	return Async[T]{
		Description: r.Description,
		Feedback:    r.Feedback,
		Check: func(ctx context.Context, value T) (bool, error) {
			if outcome, ok := cache.get(value); ok {
				return outcome, nil
			}

			outcome, err := r.Valid(ctx, value)
			if err != nil {
				return false, err
			}

			cache.put(value, outcome)
			return outcome, nil
		},
	}
}
