/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package iterator

import (
	"context"
	"sync"
)

// Item is a single value produced by an AsyncIterator. Exactly one of Value or Err is meaningful; a
// failure producing one event doesn't end the stream, so Item carries the error alongside a Done
// flag instead of the Next call itself returning an error.
type Item struct {
	// Value is the produced value. Only meaningful when Done is false and Err is nil.
	Value interface{}

	// Err is non-nil when producing this item failed. A failed item is still a regular item: the
	// stream is expected to keep running afterward unless the source chooses to end it.
	Err error

	// Done is true when the stream has no more items. Value and Err are meaningless when Done is
	// true.
	Done bool
}

// AsyncIterator is a source of values delivered over time rather than all at once, such as the
// event stream a subscription's root field produces. It is the asynchronous counterpart to the
// synchronous Iterator in iterable.go (package graphql/executor): where Iterator's Next blocks the
// calling goroutine until a value is ready, AsyncIterator's Next returns immediately with a channel
// the caller can select on alongside a context deadline or other events.
//
// An AsyncIterator must be cooperatively cancellable: after Cancel is called, outstanding and
// subsequent Next calls must promptly yield a Done item and release any resources held by the
// underlying source (goroutines, subscriptions to an upstream broker, open connections).
type AsyncIterator interface {
	// Next requests the next item. The returned channel receives exactly one Item and is then
	// closed. If ctx is cancelled before an item is ready, the channel still receives exactly one
	// Item -- one whose Err is ctx.Err() -- rather than being closed without a send, so callers can
	// always safely range over or receive once from the channel.
	Next(ctx context.Context) <-chan Item

	// Cancel stops the iterator. Idempotent. After Cancel returns, subsequent Next calls resolve
	// promptly to a Done item.
	Cancel()
}

// deliver sends item on ch and closes ch. It is the shared final step of every AsyncIterator
// implementation's Next method.
func deliver(ch chan Item, item Item) <-chan Item {
	ch <- item
	close(ch)
	return ch
}

// ChannelAsyncIterator adapts a plain Go channel of already-produced values into an AsyncIterator.
// It is the bridge a FieldSubscriber implementation reaches for when its event source is naturally
// expressed as a channel (a pub/sub client's delivery channel, a ticker, a fan-in of several
// sources): wrap the channel once with NewChannelAsyncIterator and return the result.
type ChannelAsyncIterator struct {
	source <-chan interface{}

	cancelOnce sync.Once
	cancelCh   chan struct{}
}

var _ AsyncIterator = (*ChannelAsyncIterator)(nil)

// NewChannelAsyncIterator returns an AsyncIterator that yields every value sent on source, in
// order, until source is closed or Cancel is called.
func NewChannelAsyncIterator(source <-chan interface{}) *ChannelAsyncIterator {
	return &ChannelAsyncIterator{
		source:   source,
		cancelCh: make(chan struct{}),
	}
}

// Next implements AsyncIterator.
func (it *ChannelAsyncIterator) Next(ctx context.Context) <-chan Item {
	out := make(chan Item, 1)
	select {
	case <-it.cancelCh:
		return deliver(out, Item{Done: true})
	default:
	}

	go func() {
		select {
		case v, ok := <-it.source:
			if !ok {
				deliver(out, Item{Done: true})
				return
			}
			deliver(out, Item{Value: v})
		case <-it.cancelCh:
			deliver(out, Item{Done: true})
		case <-ctx.Done():
			deliver(out, Item{Err: ctx.Err()})
		}
	}()
	return out
}

// Cancel implements AsyncIterator.
func (it *ChannelAsyncIterator) Cancel() {
	it.cancelOnce.Do(func() {
		close(it.cancelCh)
	})
}

// MapFunc transforms a single source event into the value a MapIterator yields for it. It is run
// once per event, never concurrently with itself, and its own failure becomes the Err of the item
// MapIterator produces for that event -- it does not end the stream.
type MapFunc func(ctx context.Context, event interface{}) (interface{}, error)

// MapIterator wraps a source AsyncIterator with a MapFunc applied to each event in turn. It is how
// the subscription execution algorithm turns a raw event stream into a stream of GraphQL execution
// results: the MapFunc there re-runs the query executor with the event as root value.
//
// Application is serialized -- MapIterator never has more than one call to its MapFunc in flight --
// so that results are produced in the same order the source emits them, matching the "NotifySubscribers"
// step of the subscription execution algorithm, which must complete one event's execution before
// starting the next.
type MapIterator struct {
	source AsyncIterator
	mapFn  MapFunc

	// mu is held across one source.Next plus the MapFunc call for its event.
	mu sync.Mutex
}

var _ AsyncIterator = (*MapIterator)(nil)

// NewMapIterator returns an AsyncIterator that yields mapFn(event) for each event source produces.
func NewMapIterator(source AsyncIterator, mapFn MapFunc) *MapIterator {
	return &MapIterator{source: source, mapFn: mapFn}
}

// Next implements AsyncIterator.
func (it *MapIterator) Next(ctx context.Context) <-chan Item {
	out := make(chan Item, 1)
	go func() {
		it.mu.Lock()
		defer it.mu.Unlock()

		sourceItem, ok := <-it.source.Next(ctx)
		if !ok {
			deliver(out, Item{Done: true})
			return
		}
		if sourceItem.Done {
			deliver(out, sourceItem)
			return
		}
		if sourceItem.Err != nil {
			deliver(out, Item{Err: sourceItem.Err})
			return
		}

		mapped, err := it.mapFn(ctx, sourceItem.Value)
		if err != nil {
			deliver(out, Item{Err: err})
			return
		}
		deliver(out, Item{Value: mapped})
	}()
	return out
}

// Cancel implements AsyncIterator.
func (it *MapIterator) Cancel() {
	it.source.Cancel()
}
