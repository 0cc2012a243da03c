package util

import "reflect"

// IsNil reports whether v carries no value: a nil interface, or a typed nil
// pointer, map, slice, channel or function boxed in one. Value kinds are
// never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
