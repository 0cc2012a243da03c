package util

import (
	"reflect"
	"strings"
)

// order classes: values order against each other only within one class
const (
	classNone = iota
	classNumber
	classString
)

func orderClass(v reflect.Value) int {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Bool:
		return classNumber
	case reflect.String:
		return classString
	default:
		return classNone
	}
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	}
	return 0
}

// Compare resolves a total order between a and b at runtime: numeric kinds
// (all int, uint and float widths, plus bool as 0/1) order on the real
// line, strings order lexicographically. ok is false when the two values
// share no order, including any nil.
func Compare(a, b any) (c int, ok bool) {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	ca, cb := orderClass(av), orderClass(bv)
	if ca == classNone || ca != cb {
		return 0, false
	}
	if ca == classString {
		return strings.Compare(av.String(), bv.String()), true
	}
	fa, fb := toFloat(av), toFloat(bv)
	switch {
	case fa < fb:
		return -1, true
	case fa > fb:
		return 1, true
	}
	return 0, true
}
