package channel

import "github.com/ib-77/optchan/pkg/opt"

// forwardFrom propagates a failure into a Channel of a new payload type,
// keeping the error, id and creation time of the original.
func forwardFrom[E, In, Out any](from Channel[E, In]) Channel[E, Out] {
	return Channel[E, Out]{
		err:       from.err,
		failed:    from.failed,
		payload:   opt.Absent[Out](),
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Fold reduces a Channel to a plain value, calling exactly one handler.
// Everything else in this package is convenience over Fold.
func Fold[E, T, Out any](c Channel[E, T],
	onFailure func(e E) Out,
	onSuccess func(payload opt.Optional[T]) Out) Out {

	if c.failed {
		return onFailure(c.err)
	}
	return onSuccess(c.payload)
}

// MapError transforms the error of a failure; a success passes through with
// payload and provenance untouched and the transform is never called.
func MapError[E, F, T any](c Channel[E, T], transform func(e E) F) Channel[F, T] {
	if !c.failed {
		return Channel[F, T]{
			payload:   c.payload,
			failed:    false,
			createdAt: c.createdAt,
			id:        c.id,
		}
	}
	return Channel[F, T]{
		err:       transform(c.err),
		failed:    true,
		payload:   opt.Absent[T](),
		createdAt: c.createdAt,
		id:        c.id,
	}
}

// ForwardValue replaces the payload of a success with Present(v), discarding
// whatever the prior payload was; a failure is propagated untouched. v is
// already evaluated by the caller — use ForwardOrElse when construction of
// the next payload must be suppressed on failure.
func ForwardValue[E, In, Out any](prior Channel[E, In], v Out) Channel[E, Out] {
	if prior.failed {
		return forwardFrom[E, In, Out](prior)
	}
	return Channel[E, Out]{
		payload:   opt.Present(v),
		failed:    false,
		createdAt: prior.createdAt,
		id:        prior.id,
	}
}

// ForwardAbsent turns a success into "success, nothing to report",
// discarding the prior payload; a failure is propagated untouched.
func ForwardAbsent[E, In, Out any](prior Channel[E, In]) Channel[E, Out] {
	if prior.failed {
		return forwardFrom[E, In, Out](prior)
	}
	return Channel[E, Out]{
		payload:   opt.Absent[Out](),
		failed:    false,
		createdAt: prior.createdAt,
		id:        prior.id,
	}
}

// ForwardOrElse hands the current payload Optional to build and wraps its
// result as the next success payload. On a failure the error is propagated
// and build is never called.
func ForwardOrElse[E, In, Out any](prior Channel[E, In],
	build func(payload opt.Optional[In]) opt.Optional[Out]) Channel[E, Out] {

	if prior.failed {
		return forwardFrom[E, In, Out](prior)
	}
	return Channel[E, Out]{
		payload:   build(prior.payload),
		failed:    false,
		createdAt: prior.createdAt,
		id:        prior.id,
	}
}
