package memo

import "go.uber.org/zap"

// Option configures a memoized callable.
type Option func(*options)

type options struct {
	logger    *zap.Logger
	numShards int
	observer  func(Event)
}

// WithLogger makes the memo log creation, misses, hits and failures at
// debug level. Without it nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithShards splits the table into n tries, routed by xxhash of the first
// argument. Values below 1 mean a single trie.
func WithShards(n int) Option {
	return func(o *options) {
		o.numShards = n
	}
}

// WithObserver registers a callback that receives one Event per call.
// It runs synchronously on the calling goroutine and must not block.
func WithObserver(observer func(Event)) Option {
	return func(o *options) {
		o.observer = observer
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:    zap.NewNop(),
		numShards: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.numShards <= 0 {
		o.numShards = 1
	}
	return o
}
