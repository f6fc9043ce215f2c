package bridge

import (
	"fmt"

	"github.com/on-the-ground/functional_ive_go/callable"
)

func typeName(err error) string {
	return fmt.Sprintf("%T", err)
}

// throwing returns a recovery provider that never provides: it translates
// the failure and panics with the result. This is how Nest is built on top
// of Recover.
func throwing[F any](p policy, mapper func(error) error) func(error) F {
	return func(err error) F {
		panic(p.translate(err, mapper))
	}
}

func orDefault(mapper func(error) error) func(error) error {
	if mapper == nil {
		return DefaultMapper
	}
	return mapper
}

// Nest1 bridges f with DefaultMapper: an ordinary failure panics as a
// *ThrownError carrying the failure's message and unwrapping to it.
func Nest1[A, R any](f callable.Fn1[A, R], opts ...Option) callable.Func1[A, R] {
	return NestWith1(f, DefaultMapper, opts...)
}

// NestWith1 bridges f by panicking with mapper(e) for every ordinary failure
// e. Fatal errors panic unchanged and never reach mapper. A nil mapper means
// DefaultMapper. If mapper returns nil, the call panics with a
// *ContractViolation instead.
func NestWith1[A, R any](f callable.Fn1[A, R], mapper func(error) error, opts ...Option) callable.Func1[A, R] {
	p := newPolicy(opts)
	return recover1(p, "nest", f, throwing[callable.Func1[A, R]](p, orDefault(mapper)))
}

// Recover1 bridges f by substituting a fallback for every ordinary failure e:
// provider(e) is invoked with the original argument and its result returned.
// Fatal errors panic unchanged and never reach provider. If provider returns
// nil, the call panics with a *ContractViolation.
func Recover1[A, R any](f callable.Fn1[A, R], provider func(error) callable.Func1[A, R], opts ...Option) callable.Func1[A, R] {
	if provider == nil {
		panic(ErrNilProvider)
	}
	return recover1(newPolicy(opts), "recover", f, provider)
}

func recover1[A, R any](p policy, op string, f callable.Fn1[A, R], provider func(error) callable.Func1[A, R]) callable.Func1[A, R] {
	return func(a A) R {
		r, err := f(a)
		if err == nil {
			return r
		}
		p.screen(op, err)
		fallback := provider(err)
		if fallback == nil {
			panic(p.violation("recover provider", err))
		}
		p.debug("failure recovered", op, err)
		return fallback(a)
	}
}

// SneakyThrow1 bridges f by panicking with the failure itself, untranslated.
// The panic value is the very error f returned.
func SneakyThrow1[A, R any](f callable.Fn1[A, R], opts ...Option) callable.Func1[A, R] {
	p := newPolicy(opts)
	return func(a A) R {
		r, err := f(a)
		if err != nil {
			p.screen("sneakyThrow", err)
			p.debug("failure rethrown", "sneakyThrow", err)
			panic(err)
		}
		return r
	}
}

// Nest2 is the two-argument counterpart of Nest1.
func Nest2[A, B, R any](f callable.Fn2[A, B, R], opts ...Option) callable.Func2[A, B, R] {
	return NestWith2(f, DefaultMapper, opts...)
}

func NestWith2[A, B, R any](f callable.Fn2[A, B, R], mapper func(error) error, opts ...Option) callable.Func2[A, B, R] {
	p := newPolicy(opts)
	return recover2(p, "nest", f, throwing[callable.Func2[A, B, R]](p, orDefault(mapper)))
}

func Recover2[A, B, R any](f callable.Fn2[A, B, R], provider func(error) callable.Func2[A, B, R], opts ...Option) callable.Func2[A, B, R] {
	if provider == nil {
		panic(ErrNilProvider)
	}
	return recover2(newPolicy(opts), "recover", f, provider)
}

func recover2[A, B, R any](p policy, op string, f callable.Fn2[A, B, R], provider func(error) callable.Func2[A, B, R]) callable.Func2[A, B, R] {
	return func(a A, b B) R {
		r, err := f(a, b)
		if err == nil {
			return r
		}
		p.screen(op, err)
		fallback := provider(err)
		if fallback == nil {
			panic(p.violation("recover provider", err))
		}
		p.debug("failure recovered", op, err)
		return fallback(a, b)
	}
}

func SneakyThrow2[A, B, R any](f callable.Fn2[A, B, R], opts ...Option) callable.Func2[A, B, R] {
	p := newPolicy(opts)
	return func(a A, b B) R {
		r, err := f(a, b)
		if err != nil {
			p.screen("sneakyThrow", err)
			p.debug("failure rethrown", "sneakyThrow", err)
			panic(err)
		}
		return r
	}
}

// Nest3 is the three-argument counterpart of Nest1.
func Nest3[A, B, C, R any](f callable.Fn3[A, B, C, R], opts ...Option) callable.Func3[A, B, C, R] {
	return NestWith3(f, DefaultMapper, opts...)
}

func NestWith3[A, B, C, R any](f callable.Fn3[A, B, C, R], mapper func(error) error, opts ...Option) callable.Func3[A, B, C, R] {
	p := newPolicy(opts)
	return recover3(p, "nest", f, throwing[callable.Func3[A, B, C, R]](p, orDefault(mapper)))
}

func Recover3[A, B, C, R any](f callable.Fn3[A, B, C, R], provider func(error) callable.Func3[A, B, C, R], opts ...Option) callable.Func3[A, B, C, R] {
	if provider == nil {
		panic(ErrNilProvider)
	}
	return recover3(newPolicy(opts), "recover", f, provider)
}

func recover3[A, B, C, R any](p policy, op string, f callable.Fn3[A, B, C, R], provider func(error) callable.Func3[A, B, C, R]) callable.Func3[A, B, C, R] {
	return func(a A, b B, c C) R {
		r, err := f(a, b, c)
		if err == nil {
			return r
		}
		p.screen(op, err)
		fallback := provider(err)
		if fallback == nil {
			panic(p.violation("recover provider", err))
		}
		p.debug("failure recovered", op, err)
		return fallback(a, b, c)
	}
}

func SneakyThrow3[A, B, C, R any](f callable.Fn3[A, B, C, R], opts ...Option) callable.Func3[A, B, C, R] {
	p := newPolicy(opts)
	return func(a A, b B, c C) R {
		r, err := f(a, b, c)
		if err != nil {
			p.screen("sneakyThrow", err)
			p.debug("failure rethrown", "sneakyThrow", err)
			panic(err)
		}
		return r
	}
}
