// Package validation is the pure orchestrator: it applies the structural
// and semantic checks common to every transaction kind and the four
// top-level verify operations, and returns values, never panics. It does
// not log, does not touch a clock, and does not consult any store beyond
// what its callers resolve and pass in.
package validation

import "fmt"

// Code is a closed enum of every way a transaction can fail validation.
// It crosses process boundaries as a plain integer so a downstream RPC or
// consensus layer can map it deterministically to an exit code.
type Code int

const (
	// WrongChainHexID means attributes.chain_hex_id != ctx.chain_hex_id.
	WrongChainHexID Code = iota
	// NoInputs means a UTXO-spending transaction has zero inputs.
	NoInputs
	// NoOutputs means a transaction required to carry outputs has zero.
	NoOutputs
	// DuplicateInputs means two input pointers are equal.
	DuplicateInputs
	// ZeroCoin means an output, unbond, or withdraw amount is zero.
	ZeroCoin
	// InvalidSum means a checked coin sum overflowed or underflowed.
	InvalidSum
	// UnexpectedWitnesses means len(witnesses) > len(inputs).
	UnexpectedWitnesses
	// MissingWitnesses means len(witnesses) < len(inputs).
	MissingWitnesses
	// InvalidInput means a resolved input does not match its pointer or
	// the pointer's index is out of range.
	InvalidInput
	// InputSpent is reserved for the caller: the engine itself never
	// consults a spent-output index, but the code is reserved so a
	// caller-side double-spend check can surface through the same enum.
	InputSpent
	// InputOutputDoNotMatch means incoins < outcoins + fee, or an
	// account's bonded/unbonded balance cannot cover a requested move.
	InputOutputDoNotMatch
	// OutputInTimelock means a spent output's valid_from is still ahead
	// of the previous block's time.
	OutputInTimelock
	// EcdsaCrypto means a witness failed signature or Merkle proof
	// verification, or had the wrong shape for its address.
	EcdsaCrypto
	// AccountNotFound means an unbond or withdraw was attempted with no
	// account snapshot supplied.
	AccountNotFound
	// AccountNotUnbonded means a withdraw was attempted before the
	// account's unbonding clock matured.
	AccountNotUnbonded
	// AccountWithdrawOutputNotLocked means a withdraw output is missing
	// its valid_from lock or carries the wrong one.
	AccountWithdrawOutputNotLocked
	// AccountIncorrectNonce means the transaction's nonce does not match
	// the account's current nonce.
	AccountIncorrectNonce
	// EnclaveRejected is reserved for a future trusted-execution
	// integration; nothing in this engine produces it yet.
	EnclaveRejected
)

var codeNames = map[Code]string{
	WrongChainHexID:                 "WrongChainHexId",
	NoInputs:                        "NoInputs",
	NoOutputs:                       "NoOutputs",
	DuplicateInputs:                 "DuplicateInputs",
	ZeroCoin:                        "ZeroCoin",
	InvalidSum:                      "InvalidSum",
	UnexpectedWitnesses:             "UnexpectedWitnesses",
	MissingWitnesses:                "MissingWitnesses",
	InvalidInput:                    "InvalidInput",
	InputSpent:                      "InputSpent",
	InputOutputDoNotMatch:           "InputOutputDoNotMatch",
	OutputInTimelock:                "OutputInTimelock",
	EcdsaCrypto:                     "EcdsaCrypto",
	AccountNotFound:                 "AccountNotFound",
	AccountNotUnbonded:              "AccountNotUnbonded",
	AccountWithdrawOutputNotLocked:  "AccountWithdrawOutputNotLocked",
	AccountIncorrectNonce:           "AccountIncorrectNonce",
	EnclaveRejected:                 "EnclaveRejected",
}

// String renders the code's name, used by Error.Error and by log fields.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Error is the engine's one error type: a closed code plus enough context
// to reproduce the failure, never an exception and never wrapped in a
// generic errors.New string that would lose the code at the boundary.
type Error struct {
	Code    Code
	Context string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Context == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Context)
}

// Unwrap exposes the underlying cause, if any, to errors.Is/As.
func (e *Error) Unwrap() error { return e.cause }

// newError builds an Error with formatted context.
func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Context: fmt.Sprintf(format, args...)}
}

// wrapError builds an Error that also carries a lower-level cause, used
// when a coin or witness package error needs to surface as a Code without
// losing its original message.
func wrapError(code Code, cause error) *Error {
	return &Error{Code: code, Context: cause.Error(), cause: cause}
}
