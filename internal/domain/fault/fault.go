// Package fault defines the tagged error type used across the domain and
// application layers. Callers classify failures with KindOf instead of
// matching on sentinel values or message text.
package fault

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind classifies a domain failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindInvalidState
	KindInsufficientFunds
	KindSystem
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInvalidState:
		return "invalid_state"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Fault is a classified error. The zero value is not useful; construct
// faults with the package-level constructors.
type Fault struct {
	kind Kind
	msg  string
	err  error

	// Populated only for KindInsufficientFunds.
	requested decimal.Decimal
	available decimal.Decimal
}

// Error implements the error interface.
func (f *Fault) Error() string {
	if f.err != nil {
		return fmt.Sprintf("%s: %v", f.msg, f.err)
	}
	return f.msg
}

// Unwrap exposes the wrapped cause, if any.
func (f *Fault) Unwrap() error {
	return f.err
}

// Kind returns the classification of this fault.
func (f *Fault) Kind() Kind {
	return f.kind
}

// Requested returns the amount that was requested. Only meaningful for
// insufficient-funds faults.
func (f *Fault) Requested() decimal.Decimal {
	return f.requested
}

// Available returns the balance that was available. Only meaningful for
// insufficient-funds faults.
func (f *Fault) Available() decimal.Decimal {
	return f.available
}

// Validationf creates a validation fault.
func Validationf(format string, args ...interface{}) error {
	return &Fault{kind: KindValidation, msg: fmt.Sprintf(format, args...)}
}

// NotFoundf creates a not-found fault.
func NotFoundf(format string, args ...interface{}) error {
	return &Fault{kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

// InvalidStatef creates an invalid-state fault.
func InvalidStatef(format string, args ...interface{}) error {
	return &Fault{kind: KindInvalidState, msg: fmt.Sprintf(format, args...)}
}

// InsufficientFunds creates a fault carrying the requested amount and the
// available balance.
func InsufficientFunds(requested, available decimal.Decimal) error {
	return &Fault{
		kind:      KindInsufficientFunds,
		msg:       fmt.Sprintf("insufficient funds: requested %s, available %s", requested, available),
		requested: requested,
		available: available,
	}
}

// System wraps an infrastructure error as a system fault.
func System(msg string, err error) error {
	return &Fault{kind: KindSystem, msg: msg, err: err}
}

// KindOf returns the classification of err, or KindUnknown if err is not a
// Fault.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.kind
	}
	return KindUnknown
}

// As extracts the Fault from err, if present.
func As(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
