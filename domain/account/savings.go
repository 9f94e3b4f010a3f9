package account

import (
	"github.com/shopspring/decimal"

	"github.com/Jaskaranbir/bank-ledger/model"
)

// Savings is a plain-threshold account: withdrawals
// succeed as long as balance covers the amount.
// Use #NewSavings to create new instance.
type Savings struct {
	core
}

// NewSavings validates provided config and
// creates new Savings-instance.
func NewSavings(cfg *Cfg) (*Savings, error) {
	c, err := newCore(cfg)
	if err != nil {
		return nil, err
	}
	return &Savings{core: c}, nil
}

// Withdraw deducts provided amount from balance.
// Succeeds only if 0 < amount <= balance. Appends exactly
// one transaction-record regardless of outcome.
func (s *Savings) Withdraw(amount decimal.Decimal) (bool, error) {
	if !amount.IsPositive() || amount.GreaterThan(s.balance) {
		err := s.record(model.TxnWithdrawal, amount, model.TxnFailed)
		return false, err
	}

	err := s.setBalance(s.balance.Sub(amount))
	if err != nil {
		return false, err
	}
	err = s.record(model.TxnWithdrawal, amount, model.TxnSuccess)
	if err != nil {
		return false, err
	}
	return true, nil
}

// AccountType is the display-label of this account-variant.
func (s *Savings) AccountType() string {
	return "Savings Account"
}
