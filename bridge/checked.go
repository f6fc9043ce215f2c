package bridge

import (
	"github.com/samber/mo"

	"github.com/on-the-ground/functional_ive_go/callable"
)

// catch turns a panic carrying an ordinary error back into an error result.
// Fatal errors and panic values that are not errors keep panicking.
func (p policy) catch(errp *error) {
	rec := recover()
	if rec == nil {
		return
	}
	err, ok := rec.(error)
	if !ok || p.isFatal(err) {
		panic(rec)
	}
	p.debug("panic caught", "checked", err)
	*errp = err
}

// Checked1 is the inverse of the bridges: it runs a callable that reports
// failure by panicking and returns the panic as an error. Checked1 of
// SneakyThrow1(f) behaves like f for ordinary failures.
func Checked1[A, R any](f callable.Func1[A, R], opts ...Option) callable.Fn1[A, R] {
	p := newPolicy(opts)
	return func(a A) (r R, err error) {
		defer p.catch(&err)
		return f(a), nil
	}
}

func Checked2[A, B, R any](f callable.Func2[A, B, R], opts ...Option) callable.Fn2[A, B, R] {
	p := newPolicy(opts)
	return func(a A, b B) (r R, err error) {
		defer p.catch(&err)
		return f(a, b), nil
	}
}

func Checked3[A, B, C, R any](f callable.Func3[A, B, C, R], opts ...Option) callable.Fn3[A, B, C, R] {
	p := newPolicy(opts)
	return func(a A, b B, c C) (r R, err error) {
		defer p.catch(&err)
		return f(a, b, c), nil
	}
}

func result[R any](p policy, r R, err error) mo.Result[R] {
	if err == nil {
		return mo.Ok(r)
	}
	p.screen("try", err)
	return mo.Err[R](err)
}

// Try1 views the outcome of f as a mo.Result. Fatal errors still panic.
func Try1[A, R any](f callable.Fn1[A, R], opts ...Option) func(A) mo.Result[R] {
	p := newPolicy(opts)
	return func(a A) mo.Result[R] {
		r, err := f(a)
		return result(p, r, err)
	}
}

func Try2[A, B, R any](f callable.Fn2[A, B, R], opts ...Option) func(A, B) mo.Result[R] {
	p := newPolicy(opts)
	return func(a A, b B) mo.Result[R] {
		r, err := f(a, b)
		return result(p, r, err)
	}
}

func Try3[A, B, C, R any](f callable.Fn3[A, B, C, R], opts ...Option) func(A, B, C) mo.Result[R] {
	p := newPolicy(opts)
	return func(a A, b B, c C) mo.Result[R] {
		r, err := f(a, b, c)
		return result(p, r, err)
	}
}
