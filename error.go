package bancogo

import (
	"errors"
	"fmt"
)

var (
	ErrInternalServer = errors.New("internal server error")

	// Withdrawal/deposit rule violations, reported one at a time in the
	// fixed order documented on Account.Withdraw.
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrExceedsWithdrawalLimit  = errors.New("amount exceeds the per-withdrawal limit")
	ErrWithdrawalCountExceeded = errors.New("withdrawal count limit reached")
)

type ErrBadRequest struct {
	Fields map[string]string `json:"fields"`
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}

type ErrAlreadyExists struct {
	Identifier string `json:"identifier"`
}

func (e ErrAlreadyExists) Error() string {
	return fmt.Sprintf("person %q already registered", e.Identifier)
}

type ErrPersonNotFound struct {
	Identifier string `json:"identifier"`
}

func (e ErrPersonNotFound) Error() string {
	return "person not found"
}

type ErrAccountNotFound struct {
	Number int64 `json:"number"`
}

func (e ErrAccountNotFound) Error() string {
	return "account not found"
}
