package bancogo

import (
	"io"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type Middleware func(Service) Service

var (
	_ Service = (*auditMiddleware)(nil)
)

// auditMiddleware records one audit event after every mutating call: a
// snowflake event ID, the wall-clock time, the upper-cased operation name,
// and the error when the call failed. It never inspects or alters arguments
// or results, and it emits only after the wrapped call has returned, so the
// event always trails the state change it observed. Read paths pass through
// untouched.
type auditMiddleware struct {
	next Service
	log  *zerolog.Logger
	node *snowflake.Node
	now  func() time.Time
}

// NewAuditMiddleware wraps a Service with audit logging. A nil clock means
// time.Now; tests pass a fixed one.
func NewAuditMiddleware(log *zerolog.Logger, node *snowflake.Node, clock func() time.Time) Middleware {
	if clock == nil {
		clock = time.Now
	}
	return func(next Service) Service {
		return &auditMiddleware{
			next: next,
			log:  log,
			node: node,
			now:  clock,
		}
	}
}

func (a *auditMiddleware) record(op string, err error) {
	evt := a.log.Info().
		Str("event", a.node.Generate().String()).
		Time("at", a.now()).
		Str("op", strings.ToUpper(op))
	if err != nil {
		evt = evt.Str("result", err.Error())
	}
	evt.Msg("transaction executed")
}

func (a *auditMiddleware) RegisterPerson(req RegisterPersonReq) (*Person, error) {
	p, err := a.next.RegisterPerson(req)
	a.record("register_person", err)
	return p, err
}

func (a *auditMiddleware) OpenAccount(req OpenAccountReq) (*Account, error) {
	acct, err := a.next.OpenAccount(req)
	a.record("open_account", err)
	return acct, err
}

func (a *auditMiddleware) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	bal, err := a.next.Deposit(req)
	a.record("deposit", err)
	return bal, err
}

func (a *auditMiddleware) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	bal, err := a.next.Withdraw(req)
	a.record("withdraw", err)
	return bal, err
}

func (a *auditMiddleware) FindPerson(identifier string) (*Person, error) {
	return a.next.FindPerson(identifier)
}

func (a *auditMiddleware) Balance(acctNum int64) (*decimal.Decimal, error) {
	return a.next.Balance(acctNum)
}

func (a *auditMiddleware) Accounts() *Cursor {
	return a.next.Accounts()
}

func (a *auditMiddleware) Report(acctNum int64, kind string) (*Report, error) {
	return a.next.Report(acctNum, kind)
}

func (a *auditMiddleware) Statement(w io.Writer, req StatementReq) error {
	return a.next.Statement(w, req)
}
