package storage

import (
	"github.com/shopspring/decimal"
)

// TxnTimeFmt is the time-format of persisted transaction-timestamps.
const TxnTimeFmt = "2006-01-02 15:04:05"

// TxnRecord is serialized form of a single
// account transaction-history entry.
type TxnRecord struct {
	ID        string          `json:"id"`
	Kind      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Timestamp string          `json:"timestamp"`
}

// AccountRecord is serialized form of a single account.
// AccountType carries the display-label of the account-variant
// and is used to reconstruct the variant on load.
type AccountRecord struct {
	AccountType string          `json:"account_type"`
	HolderName  string          `json:"holder_name"`
	Balance     decimal.Decimal `json:"balance"`
	Password    string          `json:"password"`
	Txns        []TxnRecord     `json:"transactions"`
}

// Snapshot is the full serialized ledger-state, keyed
// by stringified account-number. Every save is a total
// snapshot which replaces prior contents.
type Snapshot map[string]AccountRecord

// Store persists and restores ledger-snapshots.
type Store interface {
	// Save persists provided snapshot, fully
	// replacing any previously-saved snapshot.
	Save(snapshot Snapshot) error
	// Load restores the last-saved snapshot.
	// Returns empty snapshot if nothing was saved yet.
	Load() (Snapshot, error)
}
