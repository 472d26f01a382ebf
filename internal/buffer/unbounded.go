// Package buffer provides a channel pair backed by a growable queue.
package buffer

// Unbounded returns a write channel and a read channel joined by a queue
// that grows as needed, so producers never wait on a slow consumer.
//
// initialCap sizes the backing slice. Once hardLimit items are queued the
// oldest is dropped and onDrop (if non-nil) is called with it.
// Closing in flushes whatever is queued and then closes out.
//
//	in, out := buffer.Unbounded[event.Event](64, 10000, nil)
//	in <- event.NewPress("5")
//	ev := <-out
func Unbounded[T any](initialCap, hardLimit int, onDrop func(T)) (chan<- T, <-chan T) {
	in := make(chan T, 8)
	out := make(chan T, 8)

	go func() {
		defer close(out)

		queue := make([]T, 0, initialCap)

		for {
			var next T
			var downstream chan T

			// Only offer to out when there is something to send.
			if len(queue) > 0 {
				next = queue[0]
				downstream = out
			}

			select {
			case val, ok := <-in:
				if !ok {
					for _, item := range queue {
						out <- item
					}
					return
				}

				if hardLimit > 0 && len(queue) >= hardLimit {
					if onDrop != nil {
						onDrop(queue[0])
					}
					queue = queue[1:]
				}
				queue = append(queue, val)

			case downstream <- next:
				queue = queue[1:]
			}
		}
	}()

	return in, out
}
