// Package callable defines the generic function shapes shared by the memo and
// bridge packages.
//
// Fn1, Fn2 and Fn3 may fail: a non-nil error is the failure they declare.
// Func1, Func2 and Func3 declare no failure; once a failing callable has been
// bridged into one of them, any failure surfaces as a panic.
//
// There is one family per arity. Type parameters stand in for any argument
// or result type.
package callable

// Unit is the result type of callables that only produce side effects.
type Unit = struct{}

// Fn1 is a one-argument function that may fail.
type Fn1[A, R any] func(A) (R, error)

// Fn2 is a two-argument function that may fail.
type Fn2[A, B, R any] func(A, B) (R, error)

// Fn3 is a three-argument function that may fail.
type Fn3[A, B, C, R any] func(A, B, C) (R, error)

// Func1 is a one-argument function that declares no failure.
type Func1[A, R any] func(A) R

// Func2 is a two-argument function that declares no failure.
type Func2[A, B, R any] func(A, B) R

// Func3 is a three-argument function that declares no failure.
type Func3[A, B, C, R any] func(A, B, C) R

// Callable1 is anything that can be invoked with one argument and may fail.
// Fn1 implements it, and so do memoized wrappers.
type Callable1[A, R any] interface {
	Call(A) (R, error)
}

// Callable2 is the two-argument counterpart of Callable1.
type Callable2[A, B, R any] interface {
	Call(A, B) (R, error)
}

// Callable3 is the three-argument counterpart of Callable1.
type Callable3[A, B, C, R any] interface {
	Call(A, B, C) (R, error)
}

var (
	_ Callable1[int, int]           = Fn1[int, int](nil)
	_ Callable2[int, int, int]      = Fn2[int, int, int](nil)
	_ Callable3[int, int, int, int] = Fn3[int, int, int, int](nil)
)

func (f Fn1[A, R]) Call(a A) (R, error) { return f(a) }

func (f Fn2[A, B, R]) Call(a A, b B) (R, error) { return f(a, b) }

func (f Fn3[A, B, C, R]) Call(a A, b B, c C) (R, error) { return f(a, b, c) }

// Of1 adapts any Callable1 into its plain function form.
func Of1[A, R any](c Callable1[A, R]) Fn1[A, R] {
	if f, ok := c.(Fn1[A, R]); ok {
		return f
	}
	return c.Call
}

// Of2 adapts any Callable2 into its plain function form.
func Of2[A, B, R any](c Callable2[A, B, R]) Fn2[A, B, R] {
	if f, ok := c.(Fn2[A, B, R]); ok {
		return f
	}
	return c.Call
}

// Of3 adapts any Callable3 into its plain function form.
func Of3[A, B, C, R any](c Callable3[A, B, C, R]) Fn3[A, B, C, R] {
	if f, ok := c.(Fn3[A, B, C, R]); ok {
		return f
	}
	return c.Call
}
