package helper

import (
	"reflect"
)

// GetTypedValueOf2 asserts the result of a comma-ok getter, such as
// sync.Map.Load, to T. ok is false if the getter misses or the type differs.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// IsNil reports whether v is nil, including a nil pointer, map, slice, chan
// or func stored in a non-nil interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
