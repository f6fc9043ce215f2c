package callable

// AndThen1 runs f, then feeds its result to g. The first error wins and g is
// not called after f fails.
func AndThen1[A, R, S any](f Fn1[A, R], g Fn1[R, S]) Fn1[A, S] {
	return func(a A) (S, error) {
		r, err := f(a)
		if err != nil {
			return *new(S), err
		}
		return g(r)
	}
}

func AndThen2[A, B, R, S any](f Fn2[A, B, R], g Fn1[R, S]) Fn2[A, B, S] {
	return func(a A, b B) (S, error) {
		r, err := f(a, b)
		if err != nil {
			return *new(S), err
		}
		return g(r)
	}
}

func AndThen3[A, B, C, R, S any](f Fn3[A, B, C, R], g Fn1[R, S]) Fn3[A, B, C, S] {
	return func(a A, b B, c C) (S, error) {
		r, err := f(a, b, c)
		if err != nil {
			return *new(S), err
		}
		return g(r)
	}
}

// Compose1 is AndThen1 with the arguments in mathematical order: g after f.
func Compose1[A, R, S any](g Fn1[R, S], f Fn1[A, R]) Fn1[A, S] {
	return AndThen1(f, g)
}

// Curry2 turns a two-argument callable into a chain of one-argument ones.
func Curry2[A, B, R any](f Fn2[A, B, R]) func(A) Fn1[B, R] {
	return func(a A) Fn1[B, R] {
		return Partial2(f, a)
	}
}

// Curry3 turns a three-argument callable into a chain of one-argument ones.
func Curry3[A, B, C, R any](f Fn3[A, B, C, R]) func(A) func(B) Fn1[C, R] {
	return func(a A) func(B) Fn1[C, R] {
		return Curry2(Partial3(f, a))
	}
}

// Partial2 fixes the first argument of f.
func Partial2[A, B, R any](f Fn2[A, B, R], a A) Fn1[B, R] {
	return func(b B) (R, error) {
		return f(a, b)
	}
}

// Partial3 fixes the first argument of f.
func Partial3[A, B, C, R any](f Fn3[A, B, C, R], a A) Fn2[B, C, R] {
	return func(b B, c C) (R, error) {
		return f(a, b, c)
	}
}

type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

func Tupled2[A, B, R any](f Fn2[A, B, R]) Fn1[Tuple2[A, B], R] {
	return func(t Tuple2[A, B]) (R, error) {
		return f(t.V1, t.V2)
	}
}

func Tupled3[A, B, C, R any](f Fn3[A, B, C, R]) Fn1[Tuple3[A, B, C], R] {
	return func(t Tuple3[A, B, C]) (R, error) {
		return f(t.V1, t.V2, t.V3)
	}
}

func Untupled2[A, B, R any](f Fn1[Tuple2[A, B], R]) Fn2[A, B, R] {
	return func(a A, b B) (R, error) {
		return f(Tuple2[A, B]{V1: a, V2: b})
	}
}

func Untupled3[A, B, C, R any](f Fn1[Tuple3[A, B, C], R]) Fn3[A, B, C, R] {
	return func(a A, b B, c C) (R, error) {
		return f(Tuple3[A, B, C]{V1: a, V2: b, V3: c})
	}
}

// Lift1 views a function that never fails as a failing callable.
func Lift1[A, R any](f Func1[A, R]) Fn1[A, R] {
	return func(a A) (R, error) {
		return f(a), nil
	}
}

func Lift2[A, B, R any](f Func2[A, B, R]) Fn2[A, B, R] {
	return func(a A, b B) (R, error) {
		return f(a, b), nil
	}
}

func Lift3[A, B, C, R any](f Func3[A, B, C, R]) Fn3[A, B, C, R] {
	return func(a A, b B, c C) (R, error) {
		return f(a, b, c), nil
	}
}

// Consume1 gives a consumer the callable shape, so it can be memoized or
// bridged like any other callable.
func Consume1[A any](f func(A) error) Fn1[A, Unit] {
	return func(a A) (Unit, error) {
		return Unit{}, f(a)
	}
}

func Consume2[A, B any](f func(A, B) error) Fn2[A, B, Unit] {
	return func(a A, b B) (Unit, error) {
		return Unit{}, f(a, b)
	}
}

func Consume3[A, B, C any](f func(A, B, C) error) Fn3[A, B, C, Unit] {
	return func(a A, b B, c C) (Unit, error) {
		return Unit{}, f(a, b, c)
	}
}

// Negate1 inverts a predicate. Failures pass through untouched.
func Negate1[A any](p Fn1[A, bool]) Fn1[A, bool] {
	return AndThen1(p, func(b bool) (bool, error) { return !b, nil })
}
