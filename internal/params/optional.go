package params

import (
	"fmt"
	"reflect"
	"slices"
)

// Optional is a value that is either unset or set to a value of type T.
// The zero Optional is unset.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional set to v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an unset Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns an Optional set to *p, or unset when p is nil.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Some(*p)
}

// IsSet reports whether a value has been specified.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the value if set, def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil when unset.
func (o Optional[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// Equal reports whether both are unset, or both are set to equal values.
// A set nil list and a set empty list are equal.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.set != other.set {
		return false
	}
	if !o.set {
		return true
	}
	if list, ok := any(o.value).([]string); ok {
		return slices.Equal(list, any(other.value).([]string))
	}
	return reflect.DeepEqual(o.value, other.value)
}

func (o Optional[T]) String() string {
	if !o.set {
		return "<unset>"
	}
	return fmt.Sprint(o.value)
}

// override replaces *dst with src when src is set.
func override[T any](dst *Optional[T], src Optional[T]) {
	if src.set {
		*dst = src
	}
}

// overrideList is override for list fields; the slice is cloned so the
// receiver never shares backing storage with the layer it came from.
func overrideList(dst *Optional[[]string], src Optional[[]string]) {
	if src.set {
		*dst = Some(cloneList(src.value))
	}
}

// cloneList copies s. The copy is never nil: a set list that is empty
// has one representation.
func cloneList(s []string) []string {
	return append(make([]string, 0, len(s)), s...)
}
