// Package memo memoizes callables by the values of their arguments.
//
// Memoizing is not just a performance switch. It forces the question:
//
//	→ "Is this callable really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The centerpiece is the Memoized family:
//   - Memoized1 to Memoized3 wrap any callable.Callable of that arity.
//   - Pure1 to Pure3 are shortcuts for functions that cannot fail.
//   - Memoizing a memo returns the same memo.
//
// Table semantics:
//   - Keys are argument tuples, stored as a trie of sync.Maps, one level per
//     argument. Comparable arguments are compared by value. Floats are
//     compared by bits, so -0 and +0 differ and NaN matches NaN. A
//     non-comparable fmt.Stringer is keyed by its String().
//   - Only successes are stored. A failed (or panicking) computation leaves
//     no entry, and the next call with the same arguments tries again.
//   - Concurrent first calls with equal arguments run the computation once;
//     the other callers block until it finishes.
//   - The table grows without bound. Drop the memo to reclaim it.
//
// A memoized callable that calls itself with the same arguments deadlocks.
// Recursion on smaller arguments, as in memoized Fibonacci, is fine.
//
// WARNING: Do not memoize impure callables (e.g., those depending on time, I/O, etc).
package memo
