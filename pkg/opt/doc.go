// Package opt provides Optional[T], a two-variant sum type holding either
// exactly one value (Present) or nothing (Absent), with short-circuiting
// combinators that make null checks unnecessary in calling code.
//
// Highlights:
// - Present/Absent/Of/OfNilable: construct an Optional
// - IsPresent/IsAbsent: state predicates
// - Get/OrNil/OrElse/OrElseGet: leave the Optional world
// - Filter: keep a Present value only while a predicate holds
// - Map/FlatMap/Fold: package-level transforms that may change the value type
//
// An Optional is an immutable value; every combinator returns a new instance.
// The value type must not itself be an Optional: flatten through FlatMap
// instead of nesting one Optional inside another.
package opt
