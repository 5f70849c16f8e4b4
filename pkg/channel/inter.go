package channel

import (
	"time"

	"github.com/ib-77/optchan/pkg/opt"
)

type PayloadProvider[T any] interface {
	// Payload returns the success payload Optional
	Payload() opt.Optional[T]
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that carry either a payload or a failure value
type WithFailure[E, T any] interface {
	PayloadProvider[T]
	// Err returns the failure value if the operation failed
	Err() E
	// IsFailure returns true if the operation failed
	IsFailure() bool
	// IsSuccess returns true when no failure occurred, even with an Absent payload
	IsSuccess() bool
}
