package bancogo_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdamiao/bancogo"
)

func TestStatement(t *testing.T) {
	t.Run("writes a PDF document for the account", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		log := zerolog.Nop()

		endpt := bancogo.NewMemoryEndpoint("0001")
		svc, err := bancogo.NewService(endpt, testLimits(), &log)
		reqrd.Nil(err)
		_, err = svc.RegisterPerson(bancogo.RegisterPersonReq{Identifier: "111", FullName: "Ana"})
		reqrd.Nil(err)
		_, err = svc.OpenAccount(bancogo.OpenAccountReq{Identifier: "111"})
		reqrd.Nil(err)
		_, err = svc.Deposit(bancogo.ChargeReq{Amount: decimal.NewFromInt(100), AcctNum: 1})
		reqrd.Nil(err)

		buf := &bytes.Buffer{}
		reqrd.Nil(svc.Statement(buf, bancogo.StatementReq{AcctNum: 1}))
		as.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
		as.Greater(buf.Len(), 500)
	})

	t.Run("errors on a missing account", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		log := zerolog.Nop()

		endpt := bancogo.NewMemoryEndpoint("0001")
		svc, err := bancogo.NewService(endpt, testLimits(), &log)
		reqrd.Nil(err)

		err = svc.Statement(&bytes.Buffer{}, bancogo.StatementReq{AcctNum: 9})
		as.ErrorAs(err, &bancogo.ErrAccountNotFound{})
	})
}
