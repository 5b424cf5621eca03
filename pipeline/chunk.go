package pipeline

import (
	"context"
)

// Chunk groups consecutive values into slices of size values; the last
// slice may be shorter. A size below 1 is treated as 1. Each emitted slice
// is freshly allocated and owned by the consumer.
func Chunk[T any](p *Pipeline[T], size int) *Pipeline[[]T] {
	if size < 1 {
		size = 1
	}
	return &Pipeline[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &chunkIter[T]{source: p.create(ctx), size: size}
		},
	}
}

type chunkIter[T any] struct {
	source Iterator[T]
	size   int
	err    error
	done   bool
}

func (it *chunkIter[T]) Next(ctx context.Context) ([]T, bool, error) {
	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true
		return nil, false, err
	}
	if it.done {
		return nil, false, nil
	}

	chunk := make([]T, 0, it.size)
	for len(chunk) < it.size {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			if len(chunk) > 0 {
				// Emit what was read; the error surfaces on the next call.
				it.err = err
				return chunk, true, nil
			}
			it.done = true
			return nil, false, err
		}
		if !ok {
			it.done = true
			break
		}
		chunk = append(chunk, val)
	}
	if len(chunk) == 0 {
		return nil, false, nil
	}
	return chunk, true, nil
}

func (it *chunkIter[T]) Close() error { return it.source.Close() }
