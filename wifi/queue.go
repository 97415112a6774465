package wifi

// queue is an unbounded ordered FIFO between exactly one producer and one
// consumer. Sends on in never block; values come out of out in send order.
// Closing in drains whatever is still buffered and then closes out.
//
// The manager uses one queue per direction, which preserves the original
// design's no-backpressure contract: a slow status consumer grows memory
// instead of stalling the actor.
type queue[T any] struct {
	in  chan T
	out chan T
}

func newQueue[T any]() *queue[T] {
	q := &queue[T]{
		in:  make(chan T),
		out: make(chan T),
	}

	go q.run()

	return q
}

func (q *queue[T]) run() {
	var pending []T

	for {
		if len(pending) == 0 {
			v, ok := <-q.in
			if !ok {
				close(q.out)
				return
			}

			pending = append(pending, v)
		}

		select {
		case v, ok := <-q.in:
			if !ok {
				for _, v := range pending {
					q.out <- v
				}

				close(q.out)
				return
			}

			pending = append(pending, v)
		case q.out <- pending[0]:
			pending = pending[1:]
		}
	}
}

func (q *queue[T]) close() {
	close(q.in)
}
