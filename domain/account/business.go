package account

import (
	"github.com/shopspring/decimal"

	"github.com/Jaskaranbir/bank-ledger/model"
)

// MinBusinessBalance is the minimum-balance floor for
// business-accounts. Withdrawals leaving less than this
// are rejected, and accounts cannot be opened below it.
var MinBusinessBalance = decimal.NewFromInt(500)

// Business is a floor-constrained account: withdrawals
// may never take balance below MinBusinessBalance.
// Use #NewBusiness to create new instance.
type Business struct {
	core
}

// NewBusiness validates provided config and
// creates new Business-instance.
func NewBusiness(cfg *Cfg) (*Business, error) {
	c, err := newCore(cfg)
	if err != nil {
		return nil, err
	}
	return &Business{core: c}, nil
}

// Withdraw deducts provided amount from balance.
// Succeeds only if amount > 0 and the remaining balance
// stays at or above MinBusinessBalance. Appends exactly
// one transaction-record regardless of outcome.
func (b *Business) Withdraw(amount decimal.Decimal) (bool, error) {
	remaining := b.balance.Sub(amount)
	if !amount.IsPositive() || remaining.LessThan(MinBusinessBalance) {
		err := b.record(model.TxnWithdrawal, amount, model.TxnFailed)
		return false, err
	}

	err := b.setBalance(remaining)
	if err != nil {
		return false, err
	}
	err = b.record(model.TxnWithdrawal, amount, model.TxnSuccess)
	if err != nil {
		return false, err
	}
	return true, nil
}

// AccountType is the display-label of this account-variant.
func (b *Business) AccountType() string {
	return "Business Account"
}
