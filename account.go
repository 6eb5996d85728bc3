package bancogo

import (
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	Deposit    TransactionKind = "Deposit"
	Withdrawal TransactionKind = "Withdrawal"
)

// Transaction is one entry in an account's history. Amount is signed:
// positive for deposits, negative for withdrawals. Entries are never
// mutated or removed once appended.
type Transaction struct {
	Kind   TransactionKind `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// Account tracks a balance, its owner, and the ordered transaction history.
// The balance equals the sum of history amounts after every operation; a
// failed operation leaves all three fields untouched.
type Account struct {
	Agency string  `json:"agency"`
	Number int64   `json:"number"`
	Owner  *Person `json:"owner"`

	balance     decimal.Decimal
	history     []Transaction
	withdrawals int
}

// OpenAccount creates a zero-balance account for the person registered under
// identifier. The caller supplies the account number; the endpoint owning
// the directory issues them sequentially starting at 1.
func OpenAccount(agency string, number int64, reg *Registry, identifier string) (*Account, error) {
	owner, err := reg.Find(identifier)
	if err != nil {
		return nil, err
	}
	return &Account{
		Agency: agency,
		Number: number,
		Owner:  owner,
	}, nil
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// History returns the live append-only transaction slice. Callers must not
// modify it.
func (a *Account) History() []Transaction {
	return a.history
}

func (a *Account) Withdrawals() int {
	return a.withdrawals
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.history = append(a.history, Transaction{Kind: Deposit, Amount: amount})
	return nil
}

// Withdraw debits amount if every precondition holds. Checks run in a fixed
// order and only the first violation is reported: insufficient funds, then
// the per-withdrawal limit, then the withdrawal count limit, then a
// non-positive amount. Overdrawing past the per-withdrawal limit therefore
// always reports ErrInsufficientFunds.
func (a *Account) Withdraw(amount, perWithdrawalLimit decimal.Decimal, withdrawalCountLimit int) error {
	switch {
	case amount.GreaterThan(a.balance):
		return ErrInsufficientFunds
	case amount.GreaterThan(perWithdrawalLimit):
		return ErrExceedsWithdrawalLimit
	case a.withdrawals >= withdrawalCountLimit:
		return ErrWithdrawalCountExceeded
	case !amount.IsPositive():
		return ErrInvalidAmount
	}
	a.balance = a.balance.Sub(amount)
	a.history = append(a.history, Transaction{Kind: Withdrawal, Amount: amount.Neg()})
	a.withdrawals++
	return nil
}
