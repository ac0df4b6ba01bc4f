// Package assert holds go-cmp backed test assertions
package assert

import (
	"reflect"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var registeredOpts sync.Map

// errors compare by message so tests can construct expected errors inline
var errorOpts = cmp.Options{cmp.Comparer(func(e1, e2 error) bool {
	if e1 == nil || e2 == nil {
		return e1 == nil && e2 == nil
	}
	return e1.Error() == e2.Error()
})}

// RegisterOpts registers go-cmp options used whenever a value of type t is compared
func RegisterOpts(t reflect.Type, opts ...cmp.Option) {
	registeredOpts.Store(t, cmp.Options(opts))
}

// Equal fails the test if expected and actual differ
func Equal(t testing.TB, expected, actual interface{}) {
	t.Helper()
	if _, ok := expected.(string); ok {
		Equalf(t, expected, actual, "failed to assert equals ( actual, expected )\n\t%q\n\t%q", actual, expected)
		return
	}
	Equalf(t, expected, actual, "failed to assert equals ( actual, expected )\n\t%T{%+v}\n\t%T{%+v}", actual, actual, expected, expected)
}

// Equalf fails the test with the formatted message if expected and actual differ
func Equalf(t testing.TB, expected, actual interface{}, format string, args ...interface{}) {
	t.Helper()
	if !cmp.Equal(expected, actual, optsFor(expected)...) {
		t.Fatalf("\n"+format, args...)
	}
}

// NotEqual fails the test if expected and actual are equal
func NotEqual(t testing.TB, expected, actual interface{}) {
	t.Helper()
	if cmp.Equal(expected, actual, optsFor(expected)...) {
		t.Fatalf("\nfailed to assert not equals\n\t%T{%+v}", actual, actual)
	}
}

// Match fails the test with the reported diff if expected and actual differ
func Match(t testing.TB, expected, actual interface{}) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, optsFor(expected)...); diff != "" {
		t.Fatalf("\nfailed to assert no diff:\n%s", diff)
	}
}

// True fails the test with the formatted message unless o is true
func True(t testing.TB, o interface{}, format string, args ...interface{}) {
	t.Helper()
	if b, ok := o.(bool); !ok || !b {
		t.Fatalf("\n"+format, args...)
	}
}

// False fails the test with the formatted message unless o is false
func False(t testing.TB, o interface{}, format string, args ...interface{}) {
	t.Helper()
	if b, ok := o.(bool); !ok || b {
		t.Fatalf("\n"+format, args...)
	}
}

// Nil fails the test unless o is nil
func Nil(t testing.TB, o interface{}) {
	t.Helper()
	if !isNil(o) {
		t.Fatalf("\nfailed to assert nil: %T{%+v}", o, o)
	}
}

// NotNil fails the test if o is nil
func NotNil(t testing.TB, o interface{}) {
	t.Helper()
	if isNil(o) {
		t.Fatalf("\nfailed to assert not nil: %T", o)
	}
}

func optsFor(o interface{}) cmp.Options {
	if opts, ok := registeredOpts.Load(reflect.TypeOf(o)); ok {
		return opts.(cmp.Options)
	}
	if _, ok := o.(error); ok {
		return errorOpts
	}
	return nil
}

func isNil(o interface{}) bool {
	if o == nil {
		return true
	}
	switch v := reflect.ValueOf(o); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}
