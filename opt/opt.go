// Package opt provides a present/absent wrapper for values whose zero value is
// a legitimate setting and therefore cannot double as "not provided".
package opt

import "fmt"

// Value holds either a T or nothing. The zero Value is absent, so a struct of
// Values built from a partial composite literal leaves the omitted fields
// absent.
type Value[T any] struct {
	v  T
	ok bool
}

// Some returns a present Value holding v.
func Some[T any](v T) Value[T] { return Value[T]{v: v, ok: true} }

// None returns an absent Value.
func None[T any]() Value[T] { return Value[T]{} }

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return Value[T]{}
	}
	return Some(*p)
}

// IsSet reports whether the value is present.
func (o Value[T]) IsSet() bool { return o.ok }

// Get returns the held value and whether it is present. An absent Value
// returns the zero T and false.
func (o Value[T]) Get() (T, bool) { return o.v, o.ok }

// MustGet returns the held value and panics when absent.
func (o Value[T]) MustGet() T {
	if !o.ok {
		panic("opt: MustGet on absent value")
	}
	return o.v
}

// Or returns the held value, or fallback when absent.
func (o Value[T]) Or(fallback T) T {
	if o.ok {
		return o.v
	}
	return fallback
}

// OrElse returns o when present and fallback otherwise.
func (o Value[T]) OrElse(fallback Value[T]) Value[T] {
	if o.ok {
		return o
	}
	return fallback
}

// Ptr returns a pointer to a copy of the held value, or nil when absent.
func (o Value[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.v
	return &v
}

func (o Value[T]) String() string {
	if !o.ok {
		return "<absent>"
	}
	return fmt.Sprint(o.v)
}
