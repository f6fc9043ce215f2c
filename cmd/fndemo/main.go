// Command fndemo exercises memoized and bridged callables end to end.
//
//	fndemo [-config path] [-n N] [words...]
//
// It memoizes Fibonacci up to N, memoizes Levenshtein distance between the
// given words, and parses the words as integers through the three bridges.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/on-the-ground/functional_ive_go/bridge"
	"github.com/on-the-ground/functional_ive_go/callable"
	"github.com/on-the-ground/functional_ive_go/config"
	"github.com/on-the-ground/functional_ive_go/memo"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	n := flag.Int("n", 40, "largest Fibonacci index to compute")
	flag.Parse()

	if err := run(*configPath, *n, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, n int, words []string) error {
	c := config.Default()
	if configPath != "" {
		var err error
		if c, err = config.Load(configPath); err != nil {
			return err
		}
	}

	logger, err := c.Logger()
	if err != nil {
		return err
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			logger.Warn("failed to sync logger", zap.Error(err))
		}
	}()

	if len(words) == 0 {
		words = []string{"kitten", "sitting", "42"}
	}

	fib := newFib(c.MemoOptions(logger))
	fmt.Printf("fib(%d) = %d\n", n, fib(n))

	lev := newLevenshtein(c.MemoOptions(logger))
	for i := 0; i+1 < len(words); i++ {
		fmt.Printf("levenshtein(%q, %q) = %d\n", words[i], words[i+1], lev(words[i], words[i+1]))
	}

	parseAll(words, c.BridgeOptions(logger))
	return nil
}

func newFib(opts []memo.Option) func(int) uint64 {
	var fib func(int) uint64
	fib = memo.Pure1(func(n int) uint64 {
		if n <= 1 {
			return uint64(max(n, 0))
		}
		return fib(n-1) + fib(n-2)
	}, opts...)
	return fib
}

func newLevenshtein(opts []memo.Option) func(string, string) int {
	var lev func(string, string) int
	lev = memo.Pure2(func(a, b string) int {
		if len(a) == 0 {
			return len(b)
		}
		if len(b) == 0 {
			return len(a)
		}
		if a[0] == b[0] {
			return lev(a[1:], b[1:])
		}
		return 1 + min(lev(a[1:], b), lev(a, b[1:]), lev(a[1:], b[1:]))
	}, opts...)
	return lev
}

func parseAll(words []string, opts []bridge.Option) {
	atoi := callable.Fn1[string, int](strconv.Atoi)

	orZero := bridge.Recover1(atoi, func(error) callable.Func1[string, int] {
		return func(string) int { return 0 }
	}, opts...)
	nested := bridge.Checked1(bridge.Nest1(atoi, opts...), opts...)
	sneaky := bridge.Checked1(bridge.SneakyThrow1(atoi, opts...), opts...)

	for _, w := range words {
		_, nestErr := nested(w)
		_, sneakyErr := sneaky(w)

		var numErr *strconv.NumError
		fmt.Printf("%q: recover=%d nest=%v sneaky-is-NumError=%t\n",
			w, orZero(w), nestErr, sneakyErr != nil && errors.As(sneakyErr, &numErr))
	}
}
