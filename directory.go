package bancogo

import (
	"github.com/shopspring/decimal"
)

// Directory keeps accounts in creation order.
type Directory struct {
	accounts []*Account
}

func NewDirectory() *Directory {
	return &Directory{}
}

func (d *Directory) Append(a *Account) {
	d.accounts = append(d.accounts, a)
}

func (d *Directory) Get(number int64) (*Account, error) {
	for _, a := range d.accounts {
		if a.Number == number {
			return a, nil
		}
	}
	return nil, ErrAccountNotFound{Number: number}
}

func (d *Directory) Len() int {
	return len(d.accounts)
}

// Iter returns a fresh single-pass cursor over the directory in creation
// order. A new cursor restarts the traversal; an exhausted one stays
// exhausted.
func (d *Directory) Iter() *Cursor {
	return &Cursor{accounts: d.accounts}
}

// Summary is one row of the account listing.
type Summary struct {
	Number  int64           `json:"number"`
	Owner   string          `json:"owner"`
	Balance decimal.Decimal `json:"balance"`
}

// Cursor walks a directory snapshot one account at a time. It is not safe
// against concurrent mutation of the directory; single-actor use only.
type Cursor struct {
	accounts []*Account
	idx      int
}

// Next yields the next account summary; the second return is false once the
// cursor is exhausted.
func (c *Cursor) Next() (Summary, bool) {
	if c.idx >= len(c.accounts) {
		return Summary{}, false
	}
	a := c.accounts[c.idx]
	c.idx++
	return Summary{
		Number:  a.Number,
		Owner:   a.Owner.FullName,
		Balance: a.Balance(),
	}, true
}
