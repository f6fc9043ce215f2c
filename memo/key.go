package memo

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

var ErrUnhashableKey = errors.New("argument is neither comparable nor a fmt.Stringer")

// stringerKey keeps keys derived from String() apart from plain string
// arguments that happen to spell the same text.
type stringerKey string

// floatKey is the key of a float or complex argument: its bit pattern, with
// every NaN collapsed into one. -0 and +0 stay apart and NaN equals NaN,
// which Go's == does not give.
type floatKey struct {
	typ    reflect.Type
	re, im uint64
}

var canonicalNaN = math.Float64bits(math.NaN())

func floatBits(f float64) uint64 {
	if math.IsNaN(f) {
		return canonicalNaN
	}
	return math.Float64bits(f)
}

// tableKey derives the key of one argument. Comparable values are their own
// key, except floats, which are keyed by bits. A non-comparable fmt.Stringer
// (a struct holding a slice, say) is keyed by its String(). Anything else
// panics with ErrUnhashableKey.
func tableKey(arg any) Key {
	if arg == nil {
		return nil
	}
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return floatKey{typ: rv.Type(), re: floatBits(rv.Float())}
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return floatKey{typ: rv.Type(), re: floatBits(real(c)), im: floatBits(imag(c))}
	}
	if rv.Type().Comparable() {
		return arg
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringerKey(stringer.String())
	}
	panic(fmt.Errorf("%w: %T", ErrUnhashableKey, arg))
}

func tableKeys(args ...any) []Key {
	keys := make([]Key, len(args))
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	return keys
}
