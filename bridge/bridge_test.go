package bridge_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/on-the-ground/functional_ive_go/bridge"
	"github.com/on-the-ground/functional_ive_go/callable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var errBoom = errors.New("boom")

type checkedError struct {
	msg string
}

func (e *checkedError) Error() string { return e.msg }

func failing1(err error) callable.Fn1[int, int] {
	return func(int) (int, error) { return 0, err }
}

func failing2(err error) callable.Fn2[int, int, int] {
	return func(int, int) (int, error) { return 0, err }
}

func failing3(err error) callable.Fn3[int, int, int, int] {
	return func(int, int, int) (int, error) { return 0, err }
}

// panicValue runs fn and returns what it panicked with.
func panicValue(t *testing.T, fn func()) (rec any) {
	t.Helper()
	defer func() {
		rec = recover()
	}()
	fn()
	t.Fatal("expected panic")
	return nil
}

func TestBridges_PassSuccessThrough(t *testing.T) {
	sum := callable.Fn3[int, int, int, int](func(a, b, c int) (int, error) { return a + b + c, nil })
	never := func(error) callable.Func3[int, int, int, int] {
		t.Fatal("provider must not be called on success")
		return nil
	}

	assert.Equal(t, 6, bridge.Nest3(sum)(1, 2, 3))
	assert.Equal(t, 6, bridge.NestWith3(sum, func(error) error { return nil })(1, 2, 3))
	assert.Equal(t, 6, bridge.Recover3(sum, never)(1, 2, 3))
	assert.Equal(t, 6, bridge.SneakyThrow3(sum)(1, 2, 3))
}

func TestNest_DefaultMapper(t *testing.T) {
	e := &checkedError{msg: "boom"}

	rec := panicValue(t, func() { bridge.Nest1(failing1(e))(1) })

	thrown, ok := rec.(*bridge.ThrownError)
	require.True(t, ok, "got %T", rec)
	assert.Equal(t, "boom", thrown.Error())
	assert.Same(t, e, errors.Unwrap(thrown))
	assert.ErrorIs(t, thrown, e)
}

func TestNest_AllArities(t *testing.T) {
	e := errors.New("boom")

	for name, call := range map[string]func(){
		"1": func() { bridge.Nest1(failing1(e))(1) },
		"2": func() { bridge.Nest2(failing2(e))(1, 2) },
		"3": func() { bridge.Nest3(failing3(e))(1, 2, 3) },
	} {
		t.Run(name, func(t *testing.T) {
			rec := panicValue(t, call)
			err, ok := rec.(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, e)
			assert.IsType(t, &bridge.ThrownError{}, err)
		})
	}
}

func TestNestWith_CustomMapper(t *testing.T) {
	e := &checkedError{msg: "io failed"}
	var seen error
	mapped := errors.New("mapped")

	rec := panicValue(t, func() {
		bridge.NestWith2(failing2(e), func(err error) error {
			seen = err
			return mapped
		})(1, 2)
	})

	assert.Same(t, mapped, rec)
	assert.Same(t, e, seen)
}

func TestNestWith_NilMapperMeansDefault(t *testing.T) {
	rec := panicValue(t, func() { bridge.NestWith1(failing1(errors.New("x")), nil)(0) })
	assert.IsType(t, &bridge.ThrownError{}, rec)
}

func TestNestWith_MapperReturningNilIsAContractViolation(t *testing.T) {
	e := &checkedError{msg: "boom"}

	for name, mapper := range map[string]func(error) error{
		"untyped nil": func(error) error { return nil },
		"typed nil":   func(error) error { var ce *checkedError; return ce },
	} {
		t.Run(name, func(t *testing.T) {
			rec := panicValue(t, func() { bridge.NestWith3(failing3(e), mapper)(1, 2, 3) })

			violation, ok := rec.(*bridge.ContractViolation)
			require.True(t, ok, "got %T", rec)
			assert.ErrorIs(t, violation, bridge.ErrContractViolation)
			assert.NotErrorIs(t, violation, e)
			assert.Same(t, e, violation.Cause)
			assert.Contains(t, violation.Error(), "*bridge_test.checkedError")
			assert.Contains(t, violation.Error(), "boom")
			assert.Contains(t, violation.Error(), "nest")
		})
	}
}

func TestRecover_Substitution(t *testing.T) {
	var got []int
	provider := func(error) callable.Func3[int, int, int, int] {
		return func(a, b, c int) int {
			got = []int{a, b, c}
			return 10
		}
	}

	recovered := bridge.Recover3(failing3(errors.New("always")), provider)

	assert.Equal(t, 10, recovered(1, 2, 3))
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 10, recovered(7, 8, 9))
	assert.Equal(t, []int{7, 8, 9}, got)
}

func TestRecover_ProviderSeesTheFailure(t *testing.T) {
	notFound := errors.New("not found")
	parse := bridge.Recover1(
		callable.Fn1[string, int](strconv.Atoi),
		func(err error) callable.Func1[string, int] {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				return func(string) int { return -1 }
			}
			panic(notFound)
		},
	)

	assert.Equal(t, 42, parse("42"))
	assert.Equal(t, -1, parse("forty-two"))

	two := bridge.Recover2(failing2(notFound), func(err error) callable.Func2[int, int, int] {
		return func(a, b int) int { return a * b }
	})
	assert.Equal(t, 12, two(3, 4))
}

func TestRecover_NilFallbackIsAContractViolation(t *testing.T) {
	e := &checkedError{msg: "lookup failed"}

	rec := panicValue(t, func() {
		bridge.Recover1(failing1(e), func(error) callable.Func1[int, int] { return nil })(1)
	})

	violation, ok := rec.(*bridge.ContractViolation)
	require.True(t, ok, "got %T", rec)
	assert.Contains(t, violation.Error(), "recover provider")
	assert.Contains(t, violation.Error(), "*bridge_test.checkedError")
	assert.Contains(t, violation.Error(), "lookup failed")
}

func TestRecover_NilProviderPanicsAtConstruction(t *testing.T) {
	assert.PanicsWithValue(t, bridge.ErrNilProvider, func() {
		bridge.Recover2(failing2(errors.New("x")), nil)
	})
}

func TestSneakyThrow_Identity(t *testing.T) {
	e := &checkedError{msg: "checked"}

	assert.Same(t, e, panicValue(t, func() { bridge.SneakyThrow1(failing1(e))(1) }))
	assert.Same(t, e, panicValue(t, func() { bridge.SneakyThrow2(failing2(e))(1, 2) }))
	assert.Same(t, e, panicValue(t, func() { bridge.SneakyThrow3(failing3(e))(1, 2, 3) }))
}

func TestFatalPassthrough(t *testing.T) {
	fatal := bridge.Fatal(errors.New("out of memory"))

	mapperCalled := false
	providerCalled := false
	mapper := func(err error) error {
		mapperCalled = true
		return err
	}
	provider := func(error) callable.Func2[int, int, int] {
		providerCalled = true
		return func(int, int) int { return 0 }
	}

	assert.Same(t, fatal, panicValue(t, func() { bridge.Nest2(failing2(fatal))(1, 2) }))
	assert.Same(t, fatal, panicValue(t, func() { bridge.NestWith2(failing2(fatal), mapper)(1, 2) }))
	assert.Same(t, fatal, panicValue(t, func() { bridge.Recover2(failing2(fatal), provider)(1, 2) }))
	assert.Same(t, fatal, panicValue(t, func() { bridge.SneakyThrow2(failing2(fatal))(1, 2) }))

	assert.False(t, mapperCalled)
	assert.False(t, providerCalled)
}

func TestFatalPassthrough_WrappedFatal(t *testing.T) {
	wrapped := fmt.Errorf("while loading: %w", bridge.Fatal(errors.New("disk gone")))

	rec := panicValue(t, func() {
		bridge.Recover1(failing1(wrapped), func(error) callable.Func1[int, int] {
			t.Fatal("provider must not see fatal errors")
			return nil
		})(1)
	})
	assert.Same(t, wrapped, rec)
}

var errCustomFatal = errors.New("custom fatal")

func TestWithFatal_CustomClassifier(t *testing.T) {
	onlyCustom := bridge.WithFatal(func(err error) bool { return errors.Is(err, errCustomFatal) })

	rec := panicValue(t, func() { bridge.Nest1(failing1(errCustomFatal), onlyCustom)(1) })
	assert.Same(t, errCustomFatal, rec)

	// A FatalError is ordinary under a classifier that does not recognise it.
	rec = panicValue(t, func() { bridge.Nest1(failing1(bridge.Fatal(errBoom)), onlyCustom)(1) })
	assert.IsType(t, &bridge.ThrownError{}, rec)
}

func TestWrappedPanicsAreNotIntercepted(t *testing.T) {
	panicking := callable.Fn1[int, int](func(int) (int, error) { panic("raw panic") })

	assert.Equal(t, "raw panic", panicValue(t, func() {
		bridge.Recover1(panicking, func(error) callable.Func1[int, int] {
			return func(int) int { return 0 }
		})(1)
	}))
}

func TestBridges_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := bridge.WithLogger(zap.New(core))
	e := errors.New("boom")

	_ = bridge.Recover1(failing1(e), func(error) callable.Func1[int, int] {
		return func(int) int { return 1 }
	}, logger)(1)
	_ = panicValue(t, func() { bridge.Nest1(failing1(e), logger)(1) })
	_ = panicValue(t, func() { bridge.SneakyThrow1(failing1(e), logger)(1) })
	_ = panicValue(t, func() { bridge.Nest1(failing1(bridge.Fatal(e)), logger)(1) })
	_ = panicValue(t, func() { bridge.NestWith1(failing1(e), func(error) error { return nil }, logger)(1) })

	assert.Equal(t, 1, logs.FilterMessage("failure recovered").Len())
	assert.Equal(t, 1, logs.FilterMessage("failure translated").Len())
	assert.Equal(t, 1, logs.FilterMessage("failure rethrown").Len())
	assert.Equal(t, 1, logs.FilterMessage("fatal error passed through").Len())

	violations := logs.FilterMessage("contract violation")
	require.Equal(t, 1, violations.Len())
	assert.Equal(t, zap.WarnLevel, violations.All()[0].Level)
	assert.Equal(t, "nest mapper", violations.All()[0].ContextMap()["op"])
}
