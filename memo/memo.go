package memo

import (
	"errors"

	"github.com/on-the-ground/functional_ive_go/callable"
	"github.com/on-the-ground/functional_ive_go/shared/helper"
)

var ErrNilCallable = errors.New("memo: nil callable")

var (
	_ callable.Callable1[int, int]           = (*Memo1[int, int])(nil)
	_ callable.Callable2[int, int, int]      = (*Memo2[int, int, int])(nil)
	_ callable.Callable3[int, int, int, int] = (*Memo3[int, int, int, int])(nil)
)

// Memo1 is a memoized one-argument callable.
type Memo1[A, R any] struct {
	*table[R]
	fn callable.Fn1[A, R]
}

// Memoized1 wraps c with a concurrent table from argument to result.
//
// If c already is a *Memo1, it is returned as is and opts are ignored:
// memoizing twice never builds a cache of a cache.
func Memoized1[A, R any](c callable.Callable1[A, R], opts ...Option) *Memo1[A, R] {
	if helper.IsNil(c) {
		panic(ErrNilCallable)
	}
	if m, ok := c.(*Memo1[A, R]); ok {
		return m
	}
	return &Memo1[A, R]{table: newTable[R](opts), fn: callable.Of1[A, R](c)}
}

// Call returns the cached result for a, computing it on first use.
// Errors are returned to the caller and never cached.
func (m *Memo1[A, R]) Call(a A) (R, error) {
	return m.getOrCompute(tableKeys(a), func() (R, error) {
		return m.fn(a)
	})
}

// Cached returns the stored result for a without calling the wrapped
// callable or waiting on a call in flight. It does not count as a hit.
func (m *Memo1[A, R]) Cached(a A) (R, bool) {
	return m.peek(tableKeys(a))
}

// Fn returns the memo as a plain function value. Passing that value back to
// Memoized1 wraps it again; pass the memo itself to keep the idempotence.
func (m *Memo1[A, R]) Fn() callable.Fn1[A, R] {
	return m.Call
}

// Memo2 is a memoized two-argument callable.
type Memo2[A, B, R any] struct {
	*table[R]
	fn callable.Fn2[A, B, R]
}

// Memoized2 is the two-argument counterpart of Memoized1.
func Memoized2[A, B, R any](c callable.Callable2[A, B, R], opts ...Option) *Memo2[A, B, R] {
	if helper.IsNil(c) {
		panic(ErrNilCallable)
	}
	if m, ok := c.(*Memo2[A, B, R]); ok {
		return m
	}
	return &Memo2[A, B, R]{table: newTable[R](opts), fn: callable.Of2[A, B, R](c)}
}

// Call returns the cached result for (a, b), computing it on first use.
func (m *Memo2[A, B, R]) Call(a A, b B) (R, error) {
	return m.getOrCompute(tableKeys(a, b), func() (R, error) {
		return m.fn(a, b)
	})
}

func (m *Memo2[A, B, R]) Cached(a A, b B) (R, bool) {
	return m.peek(tableKeys(a, b))
}

// Fn returns the memo as a plain function value.
func (m *Memo2[A, B, R]) Fn() callable.Fn2[A, B, R] {
	return m.Call
}

// Memo3 is a memoized three-argument callable.
type Memo3[A, B, C, R any] struct {
	*table[R]
	fn callable.Fn3[A, B, C, R]
}

// Memoized3 is the three-argument counterpart of Memoized1.
func Memoized3[A, B, C, R any](c callable.Callable3[A, B, C, R], opts ...Option) *Memo3[A, B, C, R] {
	if helper.IsNil(c) {
		panic(ErrNilCallable)
	}
	if m, ok := c.(*Memo3[A, B, C, R]); ok {
		return m
	}
	return &Memo3[A, B, C, R]{table: newTable[R](opts), fn: callable.Of3[A, B, C, R](c)}
}

// Call returns the cached result for (a, b, c), computing it on first use.
func (m *Memo3[A, B, C, R]) Call(a A, b B, c C) (R, error) {
	return m.getOrCompute(tableKeys(a, b, c), func() (R, error) {
		return m.fn(a, b, c)
	})
}

func (m *Memo3[A, B, C, R]) Cached(a A, b B, c C) (R, bool) {
	return m.peek(tableKeys(a, b, c))
}

// Fn returns the memo as a plain function value.
func (m *Memo3[A, B, C, R]) Fn() callable.Fn3[A, B, C, R] {
	return m.Call
}

// Pure1 memoizes a function that cannot fail.
//
// WARNING: only pure functions belong here. A function that depends on time,
// I/O or mutable state will keep returning its first answer.
func Pure1[A, R any](pureFn func(A) R, opts ...Option) func(A) R {
	m := Memoized1[A, R](callable.Lift1[A, R](pureFn), opts...)
	return func(a A) R {
		r, _ := m.Call(a)
		return r
	}
}

func Pure2[A, B, R any](pureFn func(A, B) R, opts ...Option) func(A, B) R {
	m := Memoized2[A, B, R](callable.Lift2[A, B, R](pureFn), opts...)
	return func(a A, b B) R {
		r, _ := m.Call(a, b)
		return r
	}
}

func Pure3[A, B, C, R any](pureFn func(A, B, C) R, opts ...Option) func(A, B, C) R {
	m := Memoized3[A, B, C, R](callable.Lift3[A, B, C, R](pureFn), opts...)
	return func(a A, b B, c C) R {
		r, _ := m.Call(a, b, c)
		return r
	}
}
