package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/validator.v2"
)

// TxnKind names the operation which produced a transaction-record.
type TxnKind string

// String returns string-representation of a TxnKind.
func (k TxnKind) String() string {
	return string(k)
}

// Transaction-kinds appearing in account-histories.
const (
	TxnDeposit        TxnKind = "Deposit"
	TxnWithdrawal     TxnKind = "Withdrawal"
	TxnOpeningDeposit TxnKind = "OpeningDeposit"
	TxnTransferOut    TxnKind = "Transfer Out"
	TxnTransferIn     TxnKind = "Transfer In"
)

// TxnStatus represents outcome of the operation
// which produced a transaction-record.
type TxnStatus string

// String returns string-representation of a TxnStatus.
func (s TxnStatus) String() string {
	return string(s)
}

// Transaction-outcomes. Rejected operations are
// recorded too, with TxnFailed status.
const (
	TxnSuccess TxnStatus = "Success"
	TxnFailed  TxnStatus = "Failed"
)

// Txn is a single immutable entry in an account's
// transaction-history.
// Use #NewTxn to create new instance.
type Txn struct {
	ID     string
	Kind   TxnKind
	Amount decimal.Decimal
	Status TxnStatus
	Time   time.Time
}

// TxnCfg is config for Txn.
type TxnCfg struct {
	Kind   TxnKind   `validate:"nonzero"`
	Status TxnStatus `validate:"nonzero"`
	Amount decimal.Decimal
	// Uses current UTC-time if not set.
	Time time.Time
}

// NewTxn validates provided config and creates a new Txn.
func NewTxn(cfg *TxnCfg) (Txn, error) {
	err := validator.Validate(cfg)
	if err != nil {
		return Txn{}, errors.Wrap(err, "error validating config")
	}
	if cfg.Status != TxnSuccess && cfg.Status != TxnFailed {
		return Txn{}, errors.Errorf("unknown transaction-status: %s", cfg.Status)
	}
	if cfg.Time.IsZero() {
		cfg.Time = time.Now().UTC()
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return Txn{}, errors.Wrap(err, "error generating transaction-id")
	}

	return Txn{
		ID:     id.String(),
		Kind:   cfg.Kind,
		Amount: cfg.Amount,
		Status: cfg.Status,
		Time:   cfg.Time,
	}, nil
}

// String formats the transaction-record for display.
func (t Txn) String() string {
	return fmt.Sprintf(
		"Transaction:%s | Amount:%s | Status:%s | Time:%s",
		t.Kind,
		t.Amount.String(),
		t.Status,
		t.Time.Format("2006-01-02 15:04:05"),
	)
}
