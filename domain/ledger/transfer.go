package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/Jaskaranbir/bank-ledger/domain/account"
	"github.com/Jaskaranbir/bank-ledger/model"
)

// TransferFunds moves provided amount between two accounts
// using withdraw-then-deposit with compensating rollback:
//  1. Same-account or non-positive-amount transfers are
//     rejected up-front: no mutation, no records.
//  2. Both accounts are resolved by plain lookup; a miss
//     rejects the transfer with no mutation.
//  3. Withdrawal from the source runs under that account's
//     policy. On rejection a Failed "Transfer Out" record is
//     logged on the source and the transfer stops.
//  4. On withdrawal-success the deposit into the destination
//     runs. If it is rejected, the amount is re-deposited
//     into the source, restoring its pre-transfer balance
//     (the re-deposit cannot be rejected: deposit only
//     rejects non-positive amounts, and amount > 0 is
//     already guaranteed).
//  5. The ledger is persisted once at the end of every
//     attempt which reached the accounts, regardless
//     of outcome.
//
// Returns whether the transfer completed. Rejections from
// steps 1-2 are returned as errors; a policy-rejection in
// steps 3-4 returns (false, nil) with the Failed record
// logged on the source.
func (l *Ledger) TransferFunds(
	fromID int64,
	toID int64,
	amount decimal.Decimal,
) (bool, error) {
	if fromID == toID {
		return false, ErrSameAccount
	}
	if !amount.IsPositive() {
		return false, ErrInvalidAmount
	}

	from, err := l.Account(fromID)
	if err != nil {
		return false, err
	}
	to, err := l.Account(toID)
	if err != nil {
		return false, err
	}

	transferred, transferErr := l.transfer(from, to, amount)
	persistErr := l.Persist()
	if transferErr != nil {
		return false, transferErr
	}
	if persistErr != nil {
		return false, persistErr
	}
	return transferred, nil
}

// transfer runs the withdraw/deposit/compensate steps of
// the transfer-protocol. Caller persists the ledger afterwards.
func (l *Ledger) transfer(
	from account.Account,
	to account.Account,
	amount decimal.Decimal,
) (bool, error) {
	withdrawn, err := from.Withdraw(amount)
	if err != nil {
		return false, err
	}
	if !withdrawn {
		l.log.Debugf(
			"Transfer of %s from account %d rejected by withdrawal-policy",
			amount, from.ID(),
		)
		err = logTxn(from, model.TxnTransferOut, amount, model.TxnFailed)
		return false, err
	}

	deposited, err := to.Deposit(amount)
	if err != nil {
		return false, err
	}
	if !deposited {
		// Compensate: restore the source's pre-transfer balance.
		// The re-deposit logs its own Success Deposit record.
		_, err = from.Deposit(amount)
		if err != nil {
			return false, err
		}
		l.log.Debugf(
			"Transfer of %s to account %d rejected by deposit, source %d restored",
			amount, to.ID(), from.ID(),
		)
		err = logTxn(from, model.TxnTransferOut, amount, model.TxnFailed)
		return false, err
	}

	err = logTxn(from, model.TxnTransferOut, amount, model.TxnSuccess)
	if err != nil {
		return false, err
	}
	err = logTxn(to, model.TxnTransferIn, amount, model.TxnSuccess)
	if err != nil {
		return false, err
	}

	l.log.Infof(
		"Transferred %s from account %d to account %d",
		amount, from.ID(), to.ID(),
	)
	return true, nil
}
