// Package channel provides Channel[E, T], a two-variant sum type representing
// either a failure carrying an error value E, or a success whose payload is an
// opt.Optional[T] — success means absence of failure, not presence of data.
//
// Highlights:
// - FromError/FromValue/Empty/FromOptional/Auto: construct a Channel
// - IsFailure/IsSuccess/HasValue: state predicates
// - Fold: reduce to a plain value with one handler per variant
// - MapError: transform the error while leaving a success untouched
// - ForwardValue/ForwardAbsent/ForwardOrElse: compose a prior Channel into a
//   new one, propagating failures without invoking downstream logic
//
// IsSuccess and HasValue answer different questions and must not be conflated:
// IsSuccess is true for any non-failure, including a success with an Absent
// payload; HasValue is true only when the payload actually carries a value.
// Branching on IsSuccess alone and then reading the payload as if it were
// guaranteed is the classic client bug this split exists to prevent.
//
// Each Channel is stamped with a uuid and a creation time at construction;
// failure propagation through MapError and the Forward family preserves both,
// so a failure can be traced back to the step that produced it.
package channel
