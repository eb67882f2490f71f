package syncs

import "sync"

// Semaphore bounds the number of jobs in flight.
type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	if n < 1 {
		n = 1
	}
	return make(chan struct{}, n)
}

func (s Semaphore) Acquire() {
	s <- struct{}{}
}

func (s Semaphore) Release() {
	<-s
}

// Map calls fn for every input, at most cap(s) at a time. Results keep the
// input order.
func Map[T, R any](s Semaphore, inputs []T, fn func(T) R) []R {
	results := make([]R, len(inputs))
	var wg sync.WaitGroup
	for i, input := range inputs {
		s.Acquire()
		wg.Go(func() {
			defer s.Release()
			results[i] = fn(input)
		})
	}
	wg.Wait()
	return results
}
