package bridge

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrContractViolation matches every *ContractViolation with errors.Is.
	ErrContractViolation = errors.New("contract violation")

	ErrNilProvider = errors.New("bridge: nil recovery provider")
)

// FatalError marks an error that no bridge may intercept.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return "fatal: " + e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

func (e *FatalError) Fatal() bool {
	return true
}

// Fatal wraps err so that IsFatal reports true for it and for anything
// wrapping it. Fatal(nil) is nil.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal is the default fatal classifier. An error is fatal when something
// in its chain reports Fatal() == true, or when it is a runtime.Error.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var fataler interface{ Fatal() bool }
	if errors.As(err, &fataler) && fataler.Fatal() {
		return true
	}
	var runtimeErr runtime.Error
	return errors.As(err, &runtimeErr)
}

// ThrownError is what Nest panics with by default. It keeps the message of
// the original failure and unwraps to it.
type ThrownError struct {
	msg   string
	cause error
}

func (e *ThrownError) Error() string {
	return e.msg
}

func (e *ThrownError) Unwrap() error {
	return e.cause
}

// DefaultMapper translates a failure into a *ThrownError.
func DefaultMapper(err error) error {
	return &ThrownError{msg: err.Error(), cause: err}
}

// ContractViolation is raised when a mapper or a recovery provider returns
// nil. Cause is the failure that was being handled; it is reported in the
// message but deliberately not unwrapped, so errors.Is(v, cause) is false.
type ContractViolation struct {
	Op    string
	Cause error
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("%s: %s returned nil while handling %T: %s",
		ErrContractViolation, e.Op, e.Cause, e.Cause.Error())
}

func (e *ContractViolation) Is(target error) bool {
	return target == ErrContractViolation
}
