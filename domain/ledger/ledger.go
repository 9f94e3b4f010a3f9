package ledger

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/validator.v2"

	"github.com/Jaskaranbir/bank-ledger/domain/account"
	"github.com/Jaskaranbir/bank-ledger/logger"
	"github.com/Jaskaranbir/bank-ledger/model"
	"github.com/Jaskaranbir/bank-ledger/storage"
)

// Ledger owns the mapping from account-number to Account
// and drives account-creation, lookups, deposits/withdrawals
// and fund-transfers. Every mutating operation re-persists
// the full ledger-snapshot through the configured Store.
// Single-actor: operations run to completion one at a time.
// Use #New to create new instance.
type Ledger struct {
	log   logger.Logger
	store storage.Store

	accounts map[int64]account.Account
}

// Cfg defines config for Ledger.
type Cfg struct {
	Log   logger.Logger `validate:"nonnil"`
	Store storage.Store `validate:"nonnil"`
}

// New validates provided config, creates new Ledger-instance
// and restores its accounts from the configured Store.
func New(cfg *Cfg) (*Ledger, error) {
	err := validator.Validate(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "error validating config")
	}

	l := &Ledger{
		log:   cfg.Log,
		store: cfg.Store,

		accounts: make(map[int64]account.Account),
	}
	err = l.restore()
	if err != nil {
		return nil, errors.Wrap(err, "error restoring ledger from store")
	}
	return l, nil
}

// CreateAccountCfg defines parameters for opening an account.
type CreateAccountCfg struct {
	Kind          account.Kind `validate:"nonzero"`
	AccountNumber int64        `validate:"min=1"`
	Holder        string       `validate:"nonzero"`

	OpeningBalance decimal.Decimal

	// Password must be entered twice; mismatch
	// aborts creation with no partial state.
	Password        string `validate:"nonzero"`
	ConfirmPassword string `validate:"nonzero"`
}

// CreateAccount opens a new account of provided kind.
// Rejects duplicate account-numbers, business-accounts opened
// below the minimum-balance floor, unknown kinds and mismatched
// password-confirmation; no mutation happens on rejection.
// An "OpeningDeposit" record is logged only for positive
// opening-balances. Persists the ledger on success.
func (l *Ledger) CreateAccount(cfg *CreateAccountCfg) (account.Account, error) {
	err := validator.Validate(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "error validating config")
	}

	if _, exists := l.accounts[cfg.AccountNumber]; exists {
		l.log.Debugf("Rejected creation of duplicate account: %d", cfg.AccountNumber)
		return nil, ErrDuplicateAccount
	}
	if cfg.Kind == account.KindBusiness &&
		cfg.OpeningBalance.LessThan(account.MinBusinessBalance) {
		l.log.Debugf(
			"Rejected business-account %d: opening-balance %s below floor %s",
			cfg.AccountNumber, cfg.OpeningBalance, account.MinBusinessBalance,
		)
		return nil, ErrMinOpeningBalance
	}
	if cfg.Password != cfg.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	acc, err := account.New(cfg.Kind, &account.Cfg{
		ID:       cfg.AccountNumber,
		Holder:   cfg.Holder,
		Balance:  cfg.OpeningBalance,
		Password: cfg.Password,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error creating account-variant: %s", cfg.Kind)
	}

	if cfg.OpeningBalance.IsPositive() {
		err = logTxn(acc, model.TxnOpeningDeposit, cfg.OpeningBalance, model.TxnSuccess)
		if err != nil {
			return nil, err
		}
	}
	l.accounts[cfg.AccountNumber] = acc

	l.log.Infof(
		"Created %s %d for holder: %s with balance: %s",
		acc.AccountType(), acc.ID(), acc.Holder(), acc.Balance(),
	)
	err = l.Persist()
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// Account looks up an account by account-number.
func (l *Ledger) Account(id int64) (account.Account, error) {
	acc, found := l.accounts[id]
	if !found {
		return nil, ErrNotFound
	}
	return acc, nil
}

// AccountSecure looks up an account by account-number and
// checks provided password for exact match. Both failure-modes
// surface as the single ErrAccessDenied outcome; the
// distinction is only logged.
func (l *Ledger) AccountSecure(id int64, password string) (account.Account, error) {
	acc, found := l.accounts[id]
	if !found {
		l.log.Debugf("Secure-lookup failed, unknown account: %d", id)
		return nil, ErrAccessDenied
	}
	if acc.Password() != password {
		l.log.Debugf("Secure-lookup failed, password-mismatch for account: %d", id)
		return nil, ErrAccessDenied
	}
	return acc, nil
}

// Deposit resolves an account by plain lookup and deposits
// provided amount into it. The ledger is persisted after
// every attempt which reached the account (rejected attempts
// change state too: they log a Failed record).
func (l *Ledger) Deposit(id int64, amount decimal.Decimal) (bool, error) {
	acc, err := l.Account(id)
	if err != nil {
		return false, err
	}
	return l.finishTxn(acc.Deposit(amount))
}

// DepositSecure is Deposit with password-secured
// account-resolution.
func (l *Ledger) DepositSecure(
	id int64,
	password string,
	amount decimal.Decimal,
) (bool, error) {
	acc, err := l.AccountSecure(id, password)
	if err != nil {
		return false, err
	}
	return l.finishTxn(acc.Deposit(amount))
}

// Withdraw resolves an account by plain lookup and withdraws
// provided amount from it, under the account-variant's
// withdrawal-policy. Persistence follows the same rule
// as Deposit.
func (l *Ledger) Withdraw(id int64, amount decimal.Decimal) (bool, error) {
	acc, err := l.Account(id)
	if err != nil {
		return false, err
	}
	return l.finishTxn(acc.Withdraw(amount))
}

// WithdrawSecure is Withdraw with password-secured
// account-resolution.
func (l *Ledger) WithdrawSecure(
	id int64,
	password string,
	amount decimal.Decimal,
) (bool, error) {
	acc, err := l.AccountSecure(id, password)
	if err != nil {
		return false, err
	}
	return l.finishTxn(acc.Withdraw(amount))
}

// finishTxn persists the ledger after a deposit/withdraw
// attempt and folds the persistence-error into the result.
func (l *Ledger) finishTxn(ok bool, opErr error) (bool, error) {
	persistErr := l.Persist()
	if opErr != nil {
		return false, opErr
	}
	if persistErr != nil {
		return false, persistErr
	}
	return ok, nil
}

// ListAccounts provides all accounts,
// ordered by account-number.
func (l *Ledger) ListAccounts() []account.Account {
	accounts := make([]account.Account, 0, len(l.accounts))
	for _, acc := range l.accounts {
		accounts = append(accounts, acc)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].ID() < accounts[j].ID()
	})
	return accounts
}

// Txns provides the transaction-history of an account,
// in append-order.
func (l *Ledger) Txns(id int64) ([]model.Txn, error) {
	acc, err := l.Account(id)
	if err != nil {
		return nil, err
	}
	return acc.Txns(), nil
}

// logTxn appends a new record with provided outcome
// to an account's transaction-history.
func logTxn(
	acc account.Account,
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
	acc.LogTxn(txn)
	return nil
}
