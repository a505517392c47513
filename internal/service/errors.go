package service

import "errors"

// Domain error taxonomy. Handlers map these onto HTTP statuses with errors.Is;
// anything else is treated as a persistence failure and propagated.
var (
	// ErrInvalidInput marks a locally-recoverable rejection: nothing changed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoOpenRegister means a checkout was attempted with no open session.
	// No partial state is written; the caller prompts to open a register.
	ErrNoOpenRegister = errors.New("no register session is open")
	// ErrRegisterAlreadyOpen rejects a second open() while a session exists.
	ErrRegisterAlreadyOpen = errors.New("a register session is already open")
	// ErrRegisterClosed rejects mutations on a closed (terminal) session.
	ErrRegisterClosed = errors.New("register session is closed")
	// ErrCartEmpty is the fail-fast result of checking out an empty cart.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrCreditExceeded rejects a credit sale beyond the client's limit.
	ErrCreditExceeded = errors.New("client credit limit exceeded")
	// ErrReauthFailed rejects an administrative action with a wrong PIN.
	ErrReauthFailed = errors.New("administrator verification failed")
)
