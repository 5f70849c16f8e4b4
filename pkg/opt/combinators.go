package opt

// Map transforms a Present value into a new Optional of a possibly different
// type; on Absent the transform is never called.
func Map[In, Out any](o Optional[In], transform func(v In) Out) Optional[Out] {
	if o.present {
		return Present(transform(o.value))
	}
	return Absent[Out]()
}

// FlatMap composes a transform that itself returns an Optional. The result is
// the transform's Optional as-is, never a nested one.
func FlatMap[In, Out any](o Optional[In], transform func(v In) Optional[Out]) Optional[Out] {
	if o.present {
		return transform(o.value)
	}
	return Absent[Out]()
}

// Fold reduces an Optional to a plain value, calling exactly one handler.
func Fold[In, Out any](o Optional[In],
	onPresent func(v In) Out,
	onAbsent func() Out) Out {

	if o.present {
		return onPresent(o.value)
	}
	return onAbsent()
}
