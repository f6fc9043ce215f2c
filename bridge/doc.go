// Package bridge converts callables that return errors into callables that
// do not, for call sites whose signature has no room for an error.
//
// Every bridge first classifies the failure of the wrapped call:
//
//   - success: the value is returned;
//   - fatal error (see IsFatal and WithFatal): panics with the error unchanged;
//   - ordinary error e: handled according to the bridge.
//
// The three bridges differ only in how they handle e:
//
//	Nest         panics with mapper(e), DefaultMapper unless given
//	Recover      returns provider(e)(args...)
//	SneakyThrow  panics with e itself
//
// A mapper or provider that returns nil is a contract violation, reported by
// panicking with *ContractViolation naming the type and message of e.
//
// Panics raised by the wrapped callable are never intercepted. Checked does
// the reverse trip, and Try exposes the outcome as a mo.Result.
//
// Example:
//
//	parse := bridge.Recover1(strconvAtoi, func(error) callable.Func1[string, int] {
//	    return func(string) int { return -1 }
//	})
//	n := parse("not a number") // -1
package bridge
