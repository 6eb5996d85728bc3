package bancogo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jdamiao/bancogo"
)

func TestConfig(t *testing.T) {
	t.Run("zero value falls back to the console defaults", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		var cfg bancogo.Config

		as.Equal(bancogo.DefaultAgency, cfg.AgencyCode())
		as.Equal(bancogo.DefaultListen, cfg.ListenAddr())
		limits, err := cfg.WithdrawalLimits()
		reqrd.Nil(err)
		as.Equal("500", limits.PerWithdrawal.String())
		as.Equal(bancogo.DefaultDailyWithdrawals, limits.DailyWithdrawals)
	})

	t.Run("decodes from YAML", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		raw := `
agency: "0042"
listen: ":8080"
limits:
  per_withdrawal: "750.50"
  daily_withdrawals: 5
`
		var cfg bancogo.Config
		reqrd.Nil(yaml.Unmarshal([]byte(raw), &cfg))
		as.Equal("0042", cfg.AgencyCode())
		as.Equal(":8080", cfg.ListenAddr())
		limits, err := cfg.WithdrawalLimits()
		reqrd.Nil(err)
		as.Equal("750.50", limits.PerWithdrawal.StringFixed(2))
		as.Equal(5, limits.DailyWithdrawals)
	})

	t.Run("rejects an unparseable limit", func(tt *testing.T) {
		as := assert.New(tt)
		var cfg bancogo.Config
		cfg.Limits.PerWithdrawal = "five hundred"
		_, err := cfg.WithdrawalLimits()
		as.NotNil(err)
	})
}
