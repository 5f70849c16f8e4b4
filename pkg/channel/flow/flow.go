package flow

import (
	"github.com/ib-77/optchan/pkg/channel"
	"github.com/ib-77/optchan/pkg/opt"
)

// Flow wraps a channel.Channel to enable fluent chaining
type Flow[E, T any] struct {
	ch channel.Channel[E, T]
}

// Start creates a new flow from a channel.Channel
func Start[E, T any](ch channel.Channel[E, T]) Flow[E, T] {
	return Flow[E, T]{ch: ch}
}

// FromValue creates a new flow from a successful value
func FromValue[E, T any](v T) Flow[E, T] {
	return Start(channel.FromValue[E](v))
}

// FromError creates a new flow from a failure value
func FromError[E, T any](e E) Flow[E, T] {
	return Start(channel.FromError[E, T](e))
}

// Channel returns the underlying channel.Channel
func (f Flow[E, T]) Channel() channel.Channel[E, T] {
	return f.ch
}

// Then applies a payload-to-payload step; skipped entirely on failure
func (f Flow[E, T]) Then(step func(payload opt.Optional[T]) opt.Optional[T]) Flow[E, T] {
	if f.ch.IsFailure() {
		return f
	}
	return Flow[E, T]{ch: channel.ForwardOrElse(f.ch, step)}
}

// Filter keeps a Present payload only while predicate holds
func (f Flow[E, T]) Filter(predicate func(v T) bool) Flow[E, T] {
	return f.Then(func(payload opt.Optional[T]) opt.Optional[T] {
		return payload.Filter(predicate)
	})
}

// Ensure triggers side effects for failure/success without changing the result
func (f Flow[E, T]) Ensure(onFailure func(e E), onSuccess func(payload opt.Optional[T])) Flow[E, T] {
	if f.ch.IsFailure() {
		if onFailure != nil {
			onFailure(f.ch.Err())
		}
		return f
	}

	if onSuccess != nil {
		onSuccess(f.ch.Payload())
	}
	return f
}

// Via chains a step that produces a payload of a new type
func Via[E, In, Out any](f Flow[E, In],
	step func(payload opt.Optional[In]) opt.Optional[Out]) Flow[E, Out] {
	return Flow[E, Out]{ch: channel.ForwardOrElse(f.ch, step)}
}

// MapError transforms the failure value, leaving a success untouched
func MapError[E, F, T any](f Flow[E, T], transform func(e E) F) Flow[F, T] {
	return Flow[F, T]{ch: channel.MapError(f.ch, transform)}
}

// Finally collapses the flow to a final value, delegating to channel.Fold
func Finally[E, T, Out any](f Flow[E, T],
	onFailure func(e E) Out,
	onSuccess func(payload opt.Optional[T]) Out) Out {
	return channel.Fold(f.ch, onFailure, onSuccess)
}
