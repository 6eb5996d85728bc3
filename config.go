package bancogo

import (
	"github.com/shopspring/decimal"
)

const (
	DefaultAgency           = "0001"
	DefaultListen           = ":3000"
	DefaultDailyWithdrawals = 3

	defaultPerWithdrawal = "500"
)

type Config struct {
	Agency string `yaml:"agency"`
	Listen string `yaml:"listen"`
	Limits struct {
		PerWithdrawal    string `yaml:"per_withdrawal"`
		DailyWithdrawals int    `yaml:"daily_withdrawals"`
	} `yaml:"limits"`
}

// Limits are the withdrawal constraints enforced on every account.
type Limits struct {
	PerWithdrawal    decimal.Decimal
	DailyWithdrawals int
}

// WithdrawalLimits parses the configured limits, falling back to the
// defaults for unset fields.
func (c *Config) WithdrawalLimits() (Limits, error) {
	per := c.Limits.PerWithdrawal
	if per == "" {
		per = defaultPerWithdrawal
	}
	amt, err := decimal.NewFromString(per)
	if err != nil {
		return Limits{}, err
	}
	count := c.Limits.DailyWithdrawals
	if count == 0 {
		count = DefaultDailyWithdrawals
	}
	return Limits{PerWithdrawal: amt, DailyWithdrawals: count}, nil
}

func (c *Config) AgencyCode() string {
	if c.Agency == "" {
		return DefaultAgency
	}
	return c.Agency
}

func (c *Config) ListenAddr() string {
	if c.Listen == "" {
		return DefaultListen
	}
	return c.Listen
}
