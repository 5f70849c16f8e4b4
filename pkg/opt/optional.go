package opt

import (
	"fmt"
	"reflect"
)

// Optional holds either one value of T or nothing. The zero value is Absent.
type Optional[T any] struct {
	value   T
	present bool
}

func Present[T any](v T) Optional[T] {
	return Optional[T]{
		value:   v,
		present: true,
	}
}

func Absent[T any]() Optional[T] {
	return Optional[T]{
		present: false,
	}
}

// Of builds an Optional from a pointer: Present on non-nil, Absent on nil.
func Of[T any](p *T) Optional[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// OfNilable builds an Optional from any value, treating typed nil pointers,
// maps, slices, funcs and channels as Absent.
func OfNilable[T any](v T) Optional[T] {
	if IsNil(v) {
		return Absent[T]()
	}
	return Present(v)
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

// Get returns the contained value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrNil returns a pointer to a copy of the contained value, or nil if Absent.
// This is the supported escape hatch into Go's nullable representation.
func (o Optional[T]) OrNil() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// OrElseGet returns the contained value, or the supplier's result if Absent.
// The supplier is never called when a value is present.
func (o Optional[T]) OrElseGet(supply func() T) T {
	if o.present {
		return o.value
	}
	return supply()
}

// Filter keeps a Present value only if predicate holds; the predicate is
// never called on an Absent Optional.
func (o Optional[T]) Filter(predicate func(v T) bool) Optional[T] {
	if !o.present {
		return o
	}
	if predicate(o.value) {
		return o
	}
	return Absent[T]()
}

// Equal reports variant-and-value equality: two Absents are always equal,
// two Presents are equal iff their values are deeply equal.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.present != other.present {
		return false
	}
	if !o.present {
		return true
	}
	return reflect.DeepEqual(o.value, other.value)
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Absent"
	}
	return fmt.Sprintf("Present(%v)", o.value)
}
