package bancogo

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type RegisterPersonReq struct {
	Identifier string `json:"identifier"`
	FullName   string `json:"full_name"`
	BirthDate  string `json:"birth_date"`
	Address    string `json:"address"`
}

type OpenAccountReq struct {
	Identifier string `json:"identifier"`
}

type ChargeReq struct {
	Amount  decimal.Decimal `json:"amount"`
	AcctNum int64
}

type StatementReq struct {
	AcctNum int64
}

//go:generate mockgen -destination mocks/service.go -package mocks github.com/jdamiao/bancogo Service

type Service interface {
	RegisterPerson(RegisterPersonReq) (*Person, error)
	FindPerson(identifier string) (*Person, error)
	OpenAccount(OpenAccountReq) (*Account, error)
	Deposit(ChargeReq) (*decimal.Decimal, error)
	Withdraw(ChargeReq) (*decimal.Decimal, error)
	Balance(acctNum int64) (*decimal.Decimal, error)
	Accounts() *Cursor
	Report(acctNum int64, kind string) (*Report, error)
	Statement(w io.Writer, req StatementReq) error
}

func NewService(repo Repository, limits Limits, log *zerolog.Logger) (*serviceImpl, error) {
	if !limits.PerWithdrawal.IsPositive() {
		return nil, ErrBadRequest{Fields: map[string]string{"per_withdrawal": "must be positive"}}
	}
	if limits.DailyWithdrawals <= 0 {
		return nil, ErrBadRequest{Fields: map[string]string{"daily_withdrawals": "must be positive"}}
	}
	return &serviceImpl{
		repo:   repo,
		limits: limits,
		log:    log,
	}, nil
}

type serviceImpl struct {
	repo   Repository
	limits Limits
	log    *zerolog.Logger
}

func (s *serviceImpl) RegisterPerson(req RegisterPersonReq) (*Person, error) {
	if req.Identifier == "" {
		return nil, ErrBadRequest{Fields: map[string]string{"identifier": "missing"}}
	}
	return s.repo.CreatePerson(req)
}

func (s *serviceImpl) FindPerson(identifier string) (*Person, error) {
	return s.repo.FindPerson(identifier)
}

func (s *serviceImpl) OpenAccount(req OpenAccountReq) (*Account, error) {
	return s.repo.CreateAccount(req.Identifier)
}

func (s *serviceImpl) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	acct, err := s.repo.GetAccount(req.AcctNum)
	if err != nil {
		return nil, err
	}
	if err = acct.Deposit(req.Amount); err != nil {
		return nil, err
	}
	bal := acct.Balance()
	return &bal, nil
}

func (s *serviceImpl) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	acct, err := s.repo.GetAccount(req.AcctNum)
	if err != nil {
		return nil, err
	}
	if err = acct.Withdraw(req.Amount, s.limits.PerWithdrawal, s.limits.DailyWithdrawals); err != nil {
		return nil, err
	}
	bal := acct.Balance()
	return &bal, nil
}

func (s *serviceImpl) Balance(acctNum int64) (*decimal.Decimal, error) {
	acct, err := s.repo.GetAccount(acctNum)
	if err != nil {
		return nil, err
	}
	bal := acct.Balance()
	return &bal, nil
}

func (s *serviceImpl) Accounts() *Cursor {
	return s.repo.Accounts()
}

func (s *serviceImpl) Report(acctNum int64, kind string) (*Report, error) {
	acct, err := s.repo.GetAccount(acctNum)
	if err != nil {
		return nil, err
	}
	return NewReport(acct.History(), kind), nil
}

func (s *serviceImpl) Statement(w io.Writer, req StatementReq) error {
	acct, err := s.repo.GetAccount(req.AcctNum)
	if err != nil {
		return err
	}
	return writeStatementPDF(w, acct)
}
