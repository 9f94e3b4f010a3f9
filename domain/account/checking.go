package account

import (
	"github.com/shopspring/decimal"

	"github.com/Jaskaranbir/bank-ledger/model"
)

// WithdrawFee is the flat fee debited on every
// successful checking-account withdrawal.
var WithdrawFee = decimal.NewFromInt(2)

// Checking is a fee-charging account: every withdrawal
// debits a flat fee on top of the withdrawn amount, and
// balance must cover both.
// Use #NewChecking to create new instance.
type Checking struct {
	core
}

// NewChecking validates provided config and
// creates new Checking-instance.
func NewChecking(cfg *Cfg) (*Checking, error) {
	c, err := newCore(cfg)
	if err != nil {
		return nil, err
	}
	return &Checking{core: c}, nil
}

// Withdraw deducts provided amount plus WithdrawFee from
// balance. Succeeds only if amount > 0 and balance covers
// amount + fee. The recorded amount excludes the fee.
// Appends exactly one transaction-record regardless of outcome.
func (c *Checking) Withdraw(amount decimal.Decimal) (bool, error) {
	total := amount.Add(WithdrawFee)
	if !amount.IsPositive() || total.GreaterThan(c.balance) {
		err := c.record(model.TxnWithdrawal, amount, model.TxnFailed)
		return false, err
	}

	err := c.setBalance(c.balance.Sub(total))
	if err != nil {
		return false, err
	}
	err = c.record(model.TxnWithdrawal, amount, model.TxnSuccess)
	if err != nil {
		return false, err
	}
	return true, nil
}

// AccountType is the display-label of this account-variant.
func (c *Checking) AccountType() string {
	return "Checking Account"
}
