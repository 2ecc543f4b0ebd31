// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"math"
	"reflect"
)

// numClass partitions the predeclared numeric types.
type numClass uint8

const (
	notNumeric numClass = iota
	signedInt
	unsignedInt
	floating
)

func classOf(rt reflect.Type) numClass {
	if rt == nil || !isPredeclared(rt) {
		return notNumeric
	}
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedInt
	case reflect.Float32, reflect.Float64:
		return floating
	}
	return notNumeric
}

// isPredeclared reports whether rt is a predeclared type rather than a
// named type defined over one.
func isPredeclared(rt reflect.Type) bool {
	return rt.PkgPath() == "" && rt.Name() == rt.Kind().String()
}

func isNumeric(rt reflect.Type) bool { return classOf(rt) != notNumeric }

func isInteger(rt reflect.Type) bool {
	c := classOf(rt)
	return c == signedInt || c == unsignedInt
}

// sizedRank orders types of equal width: the explicitly sized type wins.
func sizedRank(rt reflect.Type) int {
	switch rt.Kind() {
	case reflect.Uintptr:
		return 0
	case reflect.Int, reflect.Uint:
		return 1
	}
	return 2
}

// wider returns the wider of two types of the same class.
func wider(a, b reflect.Type) reflect.Type {
	switch {
	case a.Bits() > b.Bits():
		return a
	case b.Bits() > a.Bits():
		return b
	case sizedRank(a) >= sizedRank(b):
		return a
	}
	return b
}

// commonNumeric applies the usual arithmetic conversions to two
// predeclared numeric types.
func commonNumeric(a, b reflect.Type) (reflect.Type, bool) {
	ca, cb := classOf(a), classOf(b)
	if ca == notNumeric || cb == notNumeric {
		return nil, false
	}
	switch {
	case a == b:
		return a, true
	case ca == floating && cb == floating:
		return wider(a, b), true
	case ca == floating:
		return a, true
	case cb == floating:
		return b, true
	case ca == cb:
		return wider(a, b), true
	}
	s, u := a, b
	if ca == unsignedInt {
		s, u = b, a
	}
	if u.Bits() >= s.Bits() {
		return u, true
	}
	return s, true
}

// embedsNumeric reports whether every value of from is exactly
// representable in to.
func embedsNumeric(from, to reflect.Type) bool {
	cf, ct := classOf(from), classOf(to)
	if cf == notNumeric || ct == notNumeric {
		return false
	}
	if from == to {
		return true
	}
	switch {
	case cf == signedInt && ct == signedInt, cf == unsignedInt && ct == unsignedInt:
		return to.Bits() >= from.Bits()
	case cf == unsignedInt && ct == signedInt:
		return to.Bits() > from.Bits()
	case cf == floating && ct == floating:
		return to.Bits() >= from.Bits()
	case ct == floating:
		return magnitudeBits(from) <= mantissaBits(to)
	}
	return false
}

func magnitudeBits(rt reflect.Type) int {
	if classOf(rt) == signedInt {
		return rt.Bits() - 1
	}
	return rt.Bits()
}

func mantissaBits(rt reflect.Type) int {
	if rt.Kind() == reflect.Float32 {
		return 24
	}
	return 53
}

// convertNumeric converts a numeric value to the predeclared type to.
func convertNumeric(v any, to reflect.Type) any {
	return reflect.ValueOf(v).Convert(to).Interface()
}

// arith applies a binary arithmetic operator to two values of the same
// numeric type. Integer arithmetic wraps like Go arithmetic; integer
// division by zero panics.
func arith(op byte, a, b any) any {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	out := reflect.New(va.Type()).Elem()
	switch classOf(va.Type()) {
	case signedInt:
		x, y := va.Int(), vb.Int()
		switch op {
		case '+':
			out.SetInt(x + y)
		case '-':
			out.SetInt(x - y)
		case '*':
			out.SetInt(x * y)
		case '/':
			out.SetInt(x / y)
		case '%':
			out.SetInt(x % y)
		}
	case unsignedInt:
		x, y := va.Uint(), vb.Uint()
		switch op {
		case '+':
			out.SetUint(x + y)
		case '-':
			out.SetUint(x - y)
		case '*':
			out.SetUint(x * y)
		case '/':
			out.SetUint(x / y)
		case '%':
			out.SetUint(x % y)
		}
	case floating:
		x, y := va.Float(), vb.Float()
		switch op {
		case '+':
			out.SetFloat(x + y)
		case '-':
			out.SetFloat(x - y)
		case '*':
			out.SetFloat(x * y)
		case '/':
			out.SetFloat(x / y)
		case '%':
			out.SetFloat(math.Mod(x, y))
		}
	default:
		panic("typeclass: arithmetic on non-numeric " + va.Type().String())
	}
	return out.Interface()
}

// numberOf returns n as a value of the numeric type rt.
func numberOf(rt reflect.Type, n int64) any {
	return reflect.ValueOf(n).Convert(rt).Interface()
}

// compareOrdered compares two values of the same ordered kind.
func compareOrdered(a, b any) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp3(va.Int() < vb.Int(), va.Int() > vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp3(va.Uint() < vb.Uint(), va.Uint() > vb.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp3(va.Float() < vb.Float(), va.Float() > vb.Float())
	case reflect.String:
		return cmp3(va.String() < vb.String(), va.String() > vb.String())
	}
	panic("typeclass: ordering on unordered " + va.Type().String())
}

func cmp3(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

// isOrderedKind reports whether values of rt support < in Go.
func isOrderedKind(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	}
	return false
}
