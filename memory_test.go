package bancogo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdamiao/bancogo"
)

func TestMemoryEndpoint(t *testing.T) {
	t.Run("issues sequential account numbers starting at 1", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		endpt := bancogo.NewMemoryEndpoint("0001")

		for i, id := range []string{"111", "222"} {
			_, err := endpt.CreatePerson(bancogo.RegisterPersonReq{Identifier: id, FullName: "Pessoa " + id})
			reqrd.Nil(err)
			acct, err := endpt.CreateAccount(id)
			reqrd.Nil(err)
			as.Equal(int64(i+1), acct.Number)
			as.Equal("0001", acct.Agency)
		}
	})

	t.Run("a failed account creation leaves no number gap", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		endpt := bancogo.NewMemoryEndpoint("0001")
		_, err := endpt.CreatePerson(bancogo.RegisterPersonReq{Identifier: "111", FullName: "Ana"})
		reqrd.Nil(err)

		_, err = endpt.CreateAccount("999")
		as.ErrorAs(err, &bancogo.ErrPersonNotFound{})

		acct, err := endpt.CreateAccount("111")
		reqrd.Nil(err)
		as.Equal(int64(1), acct.Number)
	})

	t.Run("many accounts may share one owner", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		endpt := bancogo.NewMemoryEndpoint("0001")
		_, err := endpt.CreatePerson(bancogo.RegisterPersonReq{Identifier: "111", FullName: "Ana"})
		reqrd.Nil(err)

		first, err := endpt.CreateAccount("111")
		reqrd.Nil(err)
		second, err := endpt.CreateAccount("111")
		reqrd.Nil(err)
		as.Same(first.Owner, second.Owner)
		as.NotEqual(first.Number, second.Number)
	})

	t.Run("rejects duplicate person registration", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		endpt := bancogo.NewMemoryEndpoint("0001")
		_, err := endpt.CreatePerson(bancogo.RegisterPersonReq{Identifier: "111", FullName: "Ana"})
		reqrd.Nil(err)
		_, err = endpt.CreatePerson(bancogo.RegisterPersonReq{Identifier: "111", FullName: "Ana 2"})
		as.ErrorAs(err, &bancogo.ErrAlreadyExists{})
	})

	t.Run("GetAccount reports a missing number", func(tt *testing.T) {
		as := assert.New(tt)
		endpt := bancogo.NewMemoryEndpoint("0001")
		_, err := endpt.GetAccount(42)
		as.ErrorAs(err, &bancogo.ErrAccountNotFound{})
	})
}
