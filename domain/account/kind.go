package account

import (
	"strings"

	"github.com/Jaskaranbir/bank-ledger/model"
)

// Kind is the caller-facing account-type selector
// used when opening accounts.
type Kind string

// String returns string-representation of a Kind.
func (k Kind) String() string {
	return string(k)
}

// Account-kinds which can be opened.
const (
	KindSavings  Kind = "savings"
	KindChecking Kind = "checking"
	KindBusiness Kind = "business"
	KindCrypto   Kind = "crypto"
)

// New creates the account-variant matching provided kind.
// Kind-matching is case-insensitive. Returns
// ErrUnknownAccountType for unmatched kinds.
func New(kind Kind, cfg *Cfg) (Account, error) {
	switch Kind(strings.ToLower(kind.String())) {
	case KindSavings:
		return NewSavings(cfg)
	case KindChecking:
		return NewChecking(cfg)
	case KindBusiness:
		return NewBusiness(cfg)
	case KindCrypto:
		return NewCryptoWallet(cfg)
	default:
		return nil, ErrUnknownAccountType
	}
}

// Reconstruct rebuilds the account-variant matching a
// persisted account-type label (as produced by
// Account#AccountType), and replays provided
// transaction-history onto it in order.
// Label-matching is a case-insensitive substring check,
// so older snapshots with slightly-different labels still
// load. Returns ErrUnknownAccountType for unmatched labels;
// the loader skips such records.
func Reconstruct(label string, cfg *Cfg, txns []model.Txn) (Account, error) {
	var acc Account
	var err error

	lowerLabel := strings.ToLower(label)
	switch {
	case strings.Contains(lowerLabel, "savings"):
		acc, err = NewSavings(cfg)
	case strings.Contains(lowerLabel, "checking"):
		acc, err = NewChecking(cfg)
	case strings.Contains(lowerLabel, "business"):
		acc, err = NewBusiness(cfg)
	case strings.Contains(lowerLabel, "crypto"):
		acc, err = NewCryptoWallet(cfg)
	default:
		return nil, ErrUnknownAccountType
	}
	if err != nil {
		return nil, err
	}

	for _, txn := range txns {
		acc.LogTxn(txn)
	}
	return acc, nil
}
