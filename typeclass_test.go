// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/typeclass"
)

// mustPanicWith runs f and returns the *DispatchError it panics with.
// It fails the test unless the panic wraps target.
func mustPanicWith(t *testing.T, target error, f func()) *typeclass.DispatchError {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		f()
	}()
	if got == nil {
		t.Fatalf("expected panic wrapping %v", target)
	}
	de, ok := got.(*typeclass.DispatchError)
	if !ok {
		t.Fatalf("panic %v (%T), want *DispatchError", got, got)
	}
	if !errors.Is(de, target) {
		t.Fatalf("panic %v, want %v", de, target)
	}
	return de
}

// mustPanicMessage runs f and fails the test unless it panics with msg.
func mustPanicMessage(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q", msg)
		}
		if s, ok := r.(string); !ok || s != msg {
			t.Fatalf("panic %v, want %q", r, msg)
		}
	}()
	f()
}

func tagOf[T any]() typeclass.Tag { return typeclass.TagFor[T]() }

// opaque models nothing: it is neither comparable nor ordered.
type opaque struct{ f func() }

type celsius float64
