package ledger

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/Jaskaranbir/bank-ledger/domain/account"
	"github.com/Jaskaranbir/bank-ledger/model"
	"github.com/Jaskaranbir/bank-ledger/storage"
)

// Persist serializes every account and saves the full
// ledger-snapshot through the configured Store. Every
// mutating ledger-operation calls this; failures are I/O
// errors and surface to the caller.
func (l *Ledger) Persist() error {
	snapshot := storage.Snapshot{}
	for id, acc := range l.accounts {
		txns := acc.Txns()
		txnRecords := make([]storage.TxnRecord, 0, len(txns))
		for _, txn := range txns {
			txnRecords = append(txnRecords, storage.TxnRecord{
				ID:        txn.ID,
				Kind:      txn.Kind.String(),
				Amount:    txn.Amount,
				Status:    txn.Status.String(),
				Timestamp: txn.Time.UTC().Format(storage.TxnTimeFmt),
			})
		}

		snapshot[strconv.FormatInt(id, 10)] = storage.AccountRecord{
			AccountType: acc.AccountType(),
			HolderName:  acc.Holder(),
			Balance:     acc.Balance(),
			Password:    acc.Password(),
			Txns:        txnRecords,
		}
	}

	err := l.store.Save(snapshot)
	return errors.Wrap(err, "error saving ledger-snapshot")
}

// restore rebuilds the account-mapping from the last-saved
// snapshot. Records with unrecognized account-types are
// skipped; any other malformed record fails the restore.
func (l *Ledger) restore() error {
	snapshot, err := l.store.Load()
	if err != nil {
		return errors.Wrap(err, "error loading ledger-snapshot")
	}

	for key, record := range snapshot {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid account-number in snapshot: %s", key)
		}

		txns := make([]model.Txn, 0, len(record.Txns))
		for _, txnRecord := range record.Txns {
			txnTime, err := time.Parse(storage.TxnTimeFmt, txnRecord.Timestamp)
			if err != nil {
				return errors.Wrapf(
					err,
					"invalid transaction-timestamp in snapshot for account: %s", key,
				)
			}
			txns = append(txns, model.Txn{
				ID:     txnRecord.ID,
				Kind:   model.TxnKind(txnRecord.Kind),
				Amount: txnRecord.Amount,
				Status: model.TxnStatus(txnRecord.Status),
				Time:   txnTime,
			})
		}

		acc, err := account.Reconstruct(
			record.AccountType,
			&account.Cfg{
				ID:       id,
				Holder:   record.HolderName,
				Balance:  record.Balance,
				Password: record.Password,
			},
			txns,
		)
		if err == account.ErrUnknownAccountType {
			l.log.Warnf(
				"Skipped account %s with unrecognized account-type: %s",
				key, record.AccountType,
			)
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "error reconstructing account: %s", key)
		}

		l.accounts[id] = acc
	}

	if len(l.accounts) > 0 {
		l.log.Infof("Restored %d account(s) from snapshot", len(l.accounts))
	}
	return nil
}
