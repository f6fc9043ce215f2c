package bridge

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/functional_ive_go/shared/helper"
)

// Option configures a bridge.
type Option func(*policy)

// WithFatal replaces IsFatal as the classifier of errors that must pass
// through untouched.
func WithFatal(isFatal func(error) bool) Option {
	return func(p *policy) {
		p.isFatal = isFatal
	}
}

// WithLogger makes the bridge log every failure it handles at debug level,
// and contract violations at warn level.
func WithLogger(logger *zap.Logger) Option {
	return func(p *policy) {
		p.logger = logger
	}
}

// policy is the decision every bridged call makes afresh: success, fatal
// error, or ordinary failure. It holds no per-call state.
type policy struct {
	isFatal func(error) bool
	logger  *zap.Logger
}

func newPolicy(opts []Option) policy {
	p := policy{
		isFatal: IsFatal,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	if p.isFatal == nil {
		p.isFatal = IsFatal
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

func (p policy) debug(msg, op string, err error) {
	if ce := p.logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(zap.String("op", op), zap.String("errorType", typeName(err)), zap.Error(err))
	}
}

// screen panics with err unchanged when it is fatal.
func (p policy) screen(op string, err error) {
	if p.isFatal(err) {
		p.debug("fatal error passed through", op, err)
		panic(err)
	}
}

// violation logs and builds the error raised when a handler returned nil.
func (p policy) violation(op string, cause error) error {
	v := &ContractViolation{Op: op, Cause: cause}
	p.logger.Warn("contract violation", zap.String("op", op), zap.NamedError("cause", cause))
	return v
}

// translate applies mapper to an ordinary failure.
func (p policy) translate(err error, mapper func(error) error) error {
	mapped := mapper(err)
	if helper.IsNil(mapped) {
		return p.violation("nest mapper", err)
	}
	p.debug("failure translated", "nest", err)
	return mapped
}
