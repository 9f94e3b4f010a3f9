package account

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/validator.v2"

	"github.com/Jaskaranbir/bank-ledger/model"
)

// ErrInvalidBalance signals an attempted negative-balance
// assignment. The deposit/withdraw contracts validate before
// mutating, so this surfacing through the public interface
// means a broken invariant and is treated as fatal by callers.
var ErrInvalidBalance = errors.New("balance cannot be negative")

// ErrUnknownAccountType signals an account-type which
// matches no known account-variant.
var ErrUnknownAccountType = errors.New("unknown account-type")

// Account is the uniform contract of all account-variants.
// Deposit and Withdraw return the business-outcome as bool.
// A rejected operation is not an error: it is recorded in
// the transaction-history with Failed status, and the caller
// may retry with corrected input. The error-return is
// non-nil only on invariant-breaches, which are fatal.
type Account interface {
	ID() int64
	Holder() string
	Balance() decimal.Decimal
	AccountType() string

	Password() string
	SetPassword(password string)

	Deposit(amount decimal.Decimal) (bool, error)
	Withdraw(amount decimal.Decimal) (bool, error)

	// Txns is the account's transaction-history,
	// in append-order.
	Txns() []model.Txn
	// LogTxn appends a record to the account's
	// transaction-history.
	LogTxn(txn model.Txn)
}

// Cfg defines config common to every account-variant.
type Cfg struct {
	ID     int64  `validate:"min=1"`
	Holder string `validate:"nonzero"`

	Balance  decimal.Decimal
	Password string
}

// core is state and behavior shared by the bank-issued
// account-variants (Savings, Checking, Business).
// CryptoWallet shares the same field-shape but is an
// independent type, see crypto_wallet.go.
type core struct {
	id       int64
	holder   string
	balance  decimal.Decimal
	password string
	txns     []model.Txn
}

func newCore(cfg *Cfg) (core, error) {
	err := validator.Validate(cfg)
	if err != nil {
		return core{}, errors.Wrap(err, "error validating config")
	}
	if cfg.Balance.IsNegative() {
		return core{}, ErrInvalidBalance
	}

	return core{
		id:       cfg.ID,
		holder:   cfg.Holder,
		balance:  cfg.Balance,
		password: cfg.Password,
		txns:     make([]model.Txn, 0),
	}, nil
}

// setBalance is the single balance-mutation boundary.
// Every deposit/withdraw path assigns through it.
func (c *core) setBalance(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidBalance
	}
	c.balance = amount
	return nil
}

// record appends a new transaction-record
// reflecting an operation's outcome.
func (c *core) record(
	kind model.TxnKind,
	amount decimal.Decimal,
	status model.TxnStatus,
) error {
	txn, err := model.NewTxn(&model.TxnCfg{
		Kind:   kind,
		Amount: amount,
		Status: status,
	})
	if err != nil {
		return errors.Wrap(err, "error creating transaction-record")
	}
	c.txns = append(c.txns, txn)
	return nil
}

// Deposit adds provided amount to balance. Succeeds only
// for positive amounts. Appends exactly one transaction-record
// regardless of outcome.
func (c *core) Deposit(amount decimal.Decimal) (bool, error) {
	if !amount.IsPositive() {
		err := c.record(model.TxnDeposit, amount, model.TxnFailed)
		return false, err
	}

	err := c.setBalance(c.balance.Add(amount))
	if err != nil {
		return false, err
	}
	err = c.record(model.TxnDeposit, amount, model.TxnSuccess)
	if err != nil {
		return false, err
	}
	return true, nil
}

// ID is the unique account-number.
func (c *core) ID() int64 {
	return c.id
}

// Holder is name of the account-holder.
func (c *core) Holder() string {
	return c.holder
}

// Balance is the current account-balance. Never negative.
func (c *core) Balance() decimal.Decimal {
	return c.balance
}

// Password is the account's access-password.
func (c *core) Password() string {
	return c.password
}

// SetPassword sets the account's access-password.
func (c *core) SetPassword(password string) {
	c.password = password
}

// Txns provides a copy of the account's
// transaction-history, in append-order.
func (c *core) Txns() []model.Txn {
	txns := make([]model.Txn, len(c.txns))
	copy(txns, c.txns)
	return txns
}

// LogTxn appends provided record to the
// account's transaction-history.
func (c *core) LogTxn(txn model.Txn) {
	c.txns = append(c.txns, txn)
}
