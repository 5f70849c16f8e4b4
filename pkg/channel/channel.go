package channel

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/optchan/pkg/opt"
)

// Channel is either Failure(err) or Success(payload). Exactly one variant is
// active; the payload Optional belongs to the success variant only.
type Channel[E, T any] struct {
	id        uuid.UUID
	createdAt time.Time
	err       E
	payload   opt.Optional[T]
	failed    bool
}

// FromError builds a failed Channel. The caller must pass a genuine error
// value; a zero E on the failure path is a contract violation that this
// package does not detect.
func FromError[E, T any](e E) Channel[E, T] {
	return Channel[E, T]{
		err:       e,
		failed:    true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromValue builds a successful Channel carrying v.
func FromValue[E, T any](v T) Channel[E, T] {
	return Channel[E, T]{
		payload:   opt.Present(v),
		failed:    false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Empty builds a successful Channel with nothing to report.
func Empty[E, T any]() Channel[E, T] {
	return Channel[E, T]{
		payload:   opt.Absent[T](),
		failed:    false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromOptional wraps an existing Optional as the success payload directly,
// avoiding a double wrap.
func FromOptional[E, T any](o opt.Optional[T]) Channel[E, T] {
	return Channel[E, T]{
		payload:   o,
		failed:    false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Auto builds a successful Channel from a pointer: Present payload on
// non-nil, Absent on nil.
func Auto[E, T any](p *T) Channel[E, T] {
	return FromOptional[E](opt.Of(p))
}

func (c Channel[E, T]) IsFailure() bool {
	return c.failed
}

// IsSuccess reports absence of failure. The payload may still be Absent;
// use HasValue to ask whether a value is actually carried.
func (c Channel[E, T]) IsSuccess() bool {
	return !c.failed
}

// HasValue reports whether this is a success whose payload is Present.
func (c Channel[E, T]) HasValue() bool {
	return !c.failed && c.payload.IsPresent()
}

// Err returns the failure value. Meaningful only when IsFailure is true.
func (c Channel[E, T]) Err() E {
	return c.err
}

// Payload returns the success payload. Absent on a failure.
func (c Channel[E, T]) Payload() opt.Optional[T] {
	return c.payload
}

func (c Channel[E, T]) Id() uuid.UUID {
	return c.id
}

// CreatedAt time creation (UTC)
func (c Channel[E, T]) CreatedAt() time.Time {
	return c.createdAt
}

// Equal reports variant-and-value equality: failures compare by error value,
// successes by payload. Id and creation time do not participate.
func (c Channel[E, T]) Equal(other Channel[E, T]) bool {
	if c.failed != other.failed {
		return false
	}
	if c.failed {
		return reflect.DeepEqual(c.err, other.err)
	}
	return c.payload.Equal(other.payload)
}

func (c Channel[E, T]) String() string {
	if c.failed {
		return fmt.Sprintf("Failure(%v)", c.err)
	}
	return fmt.Sprintf("Success(%s)", c.payload)
}
