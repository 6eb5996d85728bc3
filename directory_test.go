package bancogo_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdamiao/bancogo"
)

func drain(cur *bancogo.Cursor) []bancogo.Summary {
	var out []bancogo.Summary
	for {
		s, ok := cur.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

func TestDirectoryCursor(t *testing.T) {
	reqrd := require.New(t)

	reg := bancogo.NewRegistry()
	dir := bancogo.NewDirectory()
	names := []string{"Ana", "Bruno", "Carla"}
	for i, name := range names {
		id := fmt.Sprintf("%d11", i+1)
		_, err := reg.Register(id, name, "01-01-1990", "Rua A, 1 - Centro - SP")
		reqrd.Nil(err)
		acct, err := bancogo.OpenAccount("0001", int64(i+1), reg, id)
		reqrd.Nil(err)
		reqrd.Nil(acct.Deposit(decimal.NewFromInt(int64(100 * (i + 1)))))
		dir.Append(acct)
	}

	t.Run("yields every account in creation order", func(tt *testing.T) {
		as := assert.New(tt)
		summaries := drain(dir.Iter())
		require.New(tt).Len(summaries, dir.Len())
		for i, s := range summaries {
			as.Equal(int64(i+1), s.Number)
			as.Equal(names[i], s.Owner)
			as.Equal(decimal.NewFromInt(int64(100*(i+1))).StringFixed(2), s.Balance.StringFixed(2))
		}
	})

	t.Run("a fresh cursor repeats the identical sequence", func(tt *testing.T) {
		as := assert.New(tt)
		first := drain(dir.Iter())
		second := drain(dir.Iter())
		as.Equal(first, second)
	})

	t.Run("an exhausted cursor stays exhausted", func(tt *testing.T) {
		as := assert.New(tt)
		cur := dir.Iter()
		drain(cur)
		_, ok := cur.Next()
		as.False(ok)
	})

	t.Run("an empty directory yields nothing", func(tt *testing.T) {
		as := assert.New(tt)
		as.Empty(drain(bancogo.NewDirectory().Iter()))
	})
}

func TestDirectoryGet(t *testing.T) {
	as := assert.New(t)
	reqrd := require.New(t)
	reg := bancogo.NewRegistry()
	_, err := reg.Register("111", "Ana", "01-01-1990", "Rua A, 1 - Centro - SP")
	reqrd.Nil(err)
	acct, err := bancogo.OpenAccount("0001", 1, reg, "111")
	reqrd.Nil(err)
	dir := bancogo.NewDirectory()
	dir.Append(acct)

	got, err := dir.Get(1)
	reqrd.Nil(err)
	as.Same(acct, got)

	_, err = dir.Get(2)
	as.ErrorAs(err, &bancogo.ErrAccountNotFound{})
}
