package lop

// Option is the two-state value every container normalizes to.
type Option[T any] struct {
	val T
	ok  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{val: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Value returns the contained value, or the zero value when absent.
func (o Option[T]) Value() T {
	return o.val
}

func (o Option[T]) ValueOr(alt T) T {
	if o.ok {
		return o.val
	}
	return alt
}

// ToOption makes Option its own normal form.
func (o Option[T]) ToOption() Option[T] {
	return o
}
