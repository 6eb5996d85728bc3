package bancogo

//go:generate mockgen -destination mocks/repository.go -package mocks github.com/jdamiao/bancogo Repository

type Repository interface {
	CreatePerson(req RegisterPersonReq) (*Person, error)
	FindPerson(identifier string) (*Person, error)
	CreateAccount(identifier string) (*Account, error)
	GetAccount(number int64) (*Account, error)
	Accounts() *Cursor
}
