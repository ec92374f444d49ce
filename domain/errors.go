package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrWalletUnavailable will throw if no wallet capability is injected
	ErrWalletUnavailable = errors.New("wallet capability unavailable")
	// ErrUserRejected will throw if the user declined a wallet prompt
	ErrUserRejected = errors.New("user rejected wallet request")
	// ErrSignerUnavailable will throw if a mutating call runs without a connected signer
	ErrSignerUnavailable = errors.New("signer unavailable")
	// ErrContractUnavailable will throw if the required contract binding is absent
	ErrContractUnavailable = errors.New("contract unavailable")
	// ErrApprovalRequired will throw if listing is attempted before marketplace transfer approval
	ErrApprovalRequired = errors.New("marketplace transfer approval required")

	// request error
	ErrNotFound       = errors.New("requested item is not found")
	ErrBadParamInput  = errors.New("given param is not valid")
	ErrInvalidPrice   = errors.New("price must be greater than zero")
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidTokenId = errors.New("invalid token id")
)

// SubmissionError reports a pre-mining failure: wallet rejection, simulation
// revert, insufficient funds or stale price. Never retried automatically.
type SubmissionError struct {
	Reason error
}

func NewSubmissionError(reason error) *SubmissionError {
	return &SubmissionError{Reason: reason}
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("transaction submission failed: %v", e.Reason)
}

func (e *SubmissionError) Unwrap() error {
	return e.Reason
}

// ConfirmationError reports a post-submission failure: revert after mining
// or a broken receipt wait. Same no-retry policy as SubmissionError.
type ConfirmationError struct {
	Reason error
}

func NewConfirmationError(reason error) *ConfirmationError {
	return &ConfirmationError{Reason: reason}
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("transaction confirmation failed: %v", e.Reason)
}

func (e *ConfirmationError) Unwrap() error {
	return e.Reason
}
