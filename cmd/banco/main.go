package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/jdamiao/bancogo"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const menu = `
================ MENU ================
[d]  deposit
[s]  withdraw
[e]  statement
[nu] new person
[nc] new account
[lc] list accounts
[r]  transaction report
[q]  quit
=> `

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()

	// The console runs fine without a config file; defaults match the
	// classic setup (agency 0001, 500 per withdrawal, 3 a day).
	var cfg bancogo.Config
	if cfgfl, err := os.Open(*cfp); err == nil {
		err = yaml.NewDecoder(cfgfl).Decode(&cfg)
		cfgfl.Close()
		if err != nil {
			logger.Fatal().Err(err).Msg("error decoding config file")
		}
	}

	limits, err := cfg.WithdrawalLimits()
	if err != nil {
		logger.Fatal().Err(err).Msg("error parsing withdrawal limits")
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting snowflake node")
	}

	endpt := bancogo.NewMemoryEndpoint(cfg.AgencyCode())
	svc, err := bancogo.NewService(endpt, limits, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting service")
	}

	c := &console{
		svc: bancogo.NewAuditMiddleware(&logger, node, nil)(svc),
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
	}
	c.run()
}

type console struct {
	svc bancogo.Service
	in  *bufio.Scanner
	out io.Writer
}

func (c *console) run() {
	for {
		switch c.prompt(menu) {
		case "d":
			c.deposit()
		case "s":
			c.withdraw()
		case "e":
			c.statement()
		case "nu":
			c.registerPerson()
		case "nc":
			c.openAccount()
		case "lc":
			c.listAccounts()
		case "r":
			c.report()
		case "q":
			fmt.Fprintln(c.out, "\nGoodbye!")
			return
		default:
			fmt.Fprintln(c.out, "\nInvalid option. Try again.")
		}
	}
}

func (c *console) prompt(label string) string {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		// stdin closed; same farewell path as "q"
		return "q"
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) promptAcctNum() (int64, bool) {
	num, err := strconv.ParseInt(c.prompt("Account number: "), 10, 64)
	if err != nil {
		fmt.Fprintln(c.out, "\nInvalid account number.")
		return 0, false
	}
	return num, true
}

func (c *console) promptAmount(label string) (decimal.Decimal, bool) {
	amt, err := decimal.NewFromString(c.prompt(label))
	if err != nil {
		fmt.Fprintln(c.out, "\nInvalid amount.")
		return decimal.Zero, false
	}
	return amt, true
}

func (c *console) deposit() {
	num, ok := c.promptAcctNum()
	if !ok {
		return
	}
	amt, ok := c.promptAmount("Deposit amount: ")
	if !ok {
		return
	}
	bal, err := c.svc.Deposit(bancogo.ChargeReq{Amount: amt, AcctNum: num})
	if err != nil {
		fmt.Fprintf(c.out, "\nOperation failed: %s\n", err)
		return
	}
	fmt.Fprintf(c.out, "\nDeposit of R$ %s completed. Balance: R$ %s\n",
		amt.StringFixed(2), bal.StringFixed(2))
}

func (c *console) withdraw() {
	num, ok := c.promptAcctNum()
	if !ok {
		return
	}
	amt, ok := c.promptAmount("Withdrawal amount: ")
	if !ok {
		return
	}
	bal, err := c.svc.Withdraw(bancogo.ChargeReq{Amount: amt, AcctNum: num})
	if err != nil {
		fmt.Fprintf(c.out, "\nOperation failed: %s\n", err)
		return
	}
	fmt.Fprintf(c.out, "\nWithdrawal of R$ %s completed. Balance: R$ %s\n",
		amt.StringFixed(2), bal.StringFixed(2))
}

func (c *console) statement() {
	num, ok := c.promptAcctNum()
	if !ok {
		return
	}
	rep, err := c.svc.Report(num, "")
	if err != nil {
		fmt.Fprintf(c.out, "\nOperation failed: %s\n", err)
		return
	}
	fmt.Fprintln(c.out, "\n================ STATEMENT ===============")
	empty := true
	for {
		txn, ok := rep.Next()
		if !ok {
			break
		}
		empty = false
		fmt.Fprintf(c.out, "%s: R$ %s\n", txn.Kind, txn.Amount.StringFixed(2))
	}
	if empty {
		fmt.Fprintln(c.out, "No transactions recorded.")
	}
	bal, err := c.svc.Balance(num)
	if err != nil {
		fmt.Fprintf(c.out, "\nOperation failed: %s\n", err)
		return
	}
	fmt.Fprintf(c.out, "\nCurrent balance: R$ %s\n", bal.StringFixed(2))
	fmt.Fprintln(c.out, "==========================================")
}

func (c *console) registerPerson() {
	req := bancogo.RegisterPersonReq{
		Identifier: c.prompt("Identifier (numbers only): "),
		FullName:   c.prompt("Full name: "),
		BirthDate:  c.prompt("Birth date (dd-mm-yyyy): "),
		Address:    c.prompt("Address (street, nr - district - city/state): "),
	}
	if _, err := c.svc.RegisterPerson(req); err != nil {
		fmt.Fprintf(c.out, "\nOperation failed: %s\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nPerson registered.")
}

func (c *console) openAccount() {
	identifier := c.prompt("Holder identifier: ")
	acct, err := c.svc.OpenAccount(bancogo.OpenAccountReq{Identifier: identifier})
	if err != nil {
		fmt.Fprintf(c.out, "\nOperation failed: %s\n", err)
		return
	}
	fmt.Fprintf(c.out, "\nAccount %d opened at agency %s.\n", acct.Number, acct.Agency)
}

func (c *console) listAccounts() {
	fmt.Fprintln(c.out, "\n============ OPEN ACCOUNTS =============")
	cur := c.svc.Accounts()
	for {
		s, ok := cur.Next()
		if !ok {
			break
		}
		fmt.Fprintf(c.out, "Account: %d | Holder: %s | Balance: R$ %s\n",
			s.Number, s.Owner, s.Balance.StringFixed(2))
	}
	fmt.Fprintln(c.out, "========================================")
}

func (c *console) report() {
	num, ok := c.promptAcctNum()
	if !ok {
		return
	}
	kind := c.prompt("Filter by kind (Deposit/Withdrawal, empty for all): ")
	rep, err := c.svc.Report(num, kind)
	if err != nil {
		fmt.Fprintf(c.out, "\nOperation failed: %s\n", err)
		return
	}
	fmt.Fprintln(c.out, "\n========= TRANSACTION REPORT =========")
	empty := true
	for {
		txn, ok := rep.Next()
		if !ok {
			break
		}
		empty = false
		fmt.Fprintf(c.out, "%s: R$ %s\n", txn.Kind, txn.Amount.StringFixed(2))
	}
	if empty {
		fmt.Fprintln(c.out, "No transactions recorded.")
	}
	fmt.Fprintln(c.out, "======================================")
}
