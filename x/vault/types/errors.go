package types

import (
	"cosmossdk.io/errors"
)

// Vault module sentinel errors
var (
	ErrValidation              = errors.Register(ModuleName, 2, "validation error")
	ErrArithmeticOverflow      = errors.Register(ModuleName, 3, "arithmetic overflow")
	ErrArithmeticUnderflow     = errors.Register(ModuleName, 4, "arithmetic underflow")
	ErrDivideByZero            = errors.Register(ModuleName, 5, "division by zero")
	ErrUnsupportedToken        = errors.Register(ModuleName, 6, "unsupported token")
	ErrNotImplemented          = errors.Register(ModuleName, 7, "not implemented")
	ErrUnknownCorrelationID    = errors.Register(ModuleName, 8, "unknown reply correlation id")
	ErrDuplicateCorrelationID  = errors.Register(ModuleName, 9, "duplicate reply correlation id")
	ErrExchangeReply           = errors.Register(ModuleName, 10, "exchange call failed")
	ErrAlreadyInitialized      = errors.Register(ModuleName, 11, "vault already initialized")
	ErrNotInitialized          = errors.Register(ModuleName, 12, "vault not initialized")
	ErrPairAddressAlreadySet   = errors.Register(ModuleName, 13, "pair address already set")
	ErrUnauthorized            = errors.Register(ModuleName, 14, "unauthorized")
	ErrInvalidStatusTransition = errors.Register(ModuleName, 15, "invalid migration status transition")
	ErrUnknownContinuationKind = errors.Register(ModuleName, 16, "unknown continuation kind")
	ErrInvalidParams           = errors.Register(ModuleName, 17, "invalid params")
)
