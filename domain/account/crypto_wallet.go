package account

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/validator.v2"

	"github.com/Jaskaranbir/bank-ledger/model"
)

// CryptoWallet holds coin-balances. It satisfies the same
// Account contract as the bank-issued variants but does not
// embed their shared core: it is an independent type with
// the same field-shape and its own rules.
// Use #NewCryptoWallet to create new instance.
type CryptoWallet struct {
	id       int64
	holder   string
	balance  decimal.Decimal
	password string
	txns     []model.Txn
}

// NewCryptoWallet validates provided config and
// creates new CryptoWallet-instance.
func NewCryptoWallet(cfg *Cfg) (*CryptoWallet, error) {
	err := validator.Validate(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "error validating config")
	}
	if cfg.Balance.IsNegative() {
		return nil, ErrInvalidBalance
	}

	return &CryptoWallet{
		id:       cfg.ID,
		holder:   cfg.Holder,
		balance:  cfg.Balance,
		password: cfg.Password,
		txns:     make([]model.Txn, 0),
	}, nil
}

func (w *CryptoWallet) setBalance(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidBalance
	}
	w.balance = amount
	return nil
}

func (w *CryptoWallet) record(
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
	w.txns = append(w.txns, txn)
	return nil
}

// Deposit adds provided amount of coins to balance.
// Succeeds only for positive amounts. Appends exactly one
// transaction-record regardless of outcome.
func (w *CryptoWallet) Deposit(amount decimal.Decimal) (bool, error) {
	if !amount.IsPositive() {
		err := w.record(model.TxnDeposit, amount, model.TxnFailed)
		return false, err
	}

	err := w.setBalance(w.balance.Add(amount))
	if err != nil {
		return false, err
	}
	err = w.record(model.TxnDeposit, amount, model.TxnSuccess)
	if err != nil {
		return false, err
	}
	return true, nil
}

// Withdraw deducts provided amount of coins from balance.
// Succeeds only if 0 < amount <= balance. Appends exactly
// one transaction-record regardless of outcome.
func (w *CryptoWallet) Withdraw(amount decimal.Decimal) (bool, error) {
	if !amount.IsPositive() || amount.GreaterThan(w.balance) {
		err := w.record(model.TxnWithdrawal, amount, model.TxnFailed)
		return false, err
	}

	err := w.setBalance(w.balance.Sub(amount))
	if err != nil {
		return false, err
	}
	err = w.record(model.TxnWithdrawal, amount, model.TxnSuccess)
	if err != nil {
		return false, err
	}
	return true, nil
}

// ID is the unique wallet-id.
func (w *CryptoWallet) ID() int64 {
	return w.id
}

// Holder is name of the wallet-holder.
func (w *CryptoWallet) Holder() string {
	return w.holder
}

// Balance is the current coin-balance. Never negative.
func (w *CryptoWallet) Balance() decimal.Decimal {
	return w.balance
}

// Password is the wallet's access-password.
func (w *CryptoWallet) Password() string {
	return w.password
}

// SetPassword sets the wallet's access-password.
func (w *CryptoWallet) SetPassword(password string) {
	w.password = password
}

// Txns provides a copy of the wallet's
// transaction-history, in append-order.
func (w *CryptoWallet) Txns() []model.Txn {
	txns := make([]model.Txn, len(w.txns))
	copy(txns, w.txns)
	return txns
}

// LogTxn appends provided record to the
// wallet's transaction-history.
func (w *CryptoWallet) LogTxn(txn model.Txn) {
	w.txns = append(w.txns, txn)
}

// AccountType is the display-label of this account-variant.
func (w *CryptoWallet) AccountType() string {
	return "Crypto Wallet"
}
