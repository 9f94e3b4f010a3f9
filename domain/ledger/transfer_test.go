package ledger

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/shopspring/decimal"

	"github.com/Jaskaranbir/bank-ledger/domain/account"
	"github.com/Jaskaranbir/bank-ledger/logger"
	"github.com/Jaskaranbir/bank-ledger/model"
	"github.com/Jaskaranbir/bank-ledger/storage"
)

// rejectingAccount wraps an account-variant and rejects
// every deposit, logging the Failed record per the Account
// contract. Lets tests exercise the compensation-path of
// the transfer-protocol, which is unreachable with the
// real variants (their deposits only reject non-positive
// amounts, and transfer guarantees amount > 0).
type rejectingAccount struct {
	account.Account
}

func (r *rejectingAccount) Deposit(amount decimal.Decimal) (bool, error) {
	txn, err := model.NewTxn(&model.TxnCfg{
		Kind:   model.TxnDeposit,
		Amount: amount,
		Status: model.TxnFailed,
	})
	if err != nil {
		return false, err
	}
	r.LogTxn(txn)
	return false, nil
}

var _ = Describe("TransferFunds", func() {
	var store *storage.MemoryStore
	var ldgr *Ledger

	BeforeEach(func() {
		var err error

		store = storage.NewMemoryStore()
		ldgr, err = New(&Cfg{
			Log:   logger.NewLogrusLogger("Ledger"),
			Store: store,
		})
		Expect(err).ToNot(HaveOccurred())

		_, err = ldgr.CreateAccount(mkCreateCfg(account.KindSavings, 2, 100))
		Expect(err).ToNot(HaveOccurred())
		_, err = ldgr.CreateAccount(mkCreateCfg(account.KindChecking, 3, 0))
		Expect(err).ToNot(HaveOccurred())
	})

	It("moves funds and logs a Success transfer-record on each side", func() {
		transferred, err := ldgr.TransferFunds(2, 3, dec(100))
		Expect(err).ToNot(HaveOccurred())
		Expect(transferred).To(BeTrue())

		from, err := ldgr.Account(2)
		Expect(err).ToNot(HaveOccurred())
		to, err := ldgr.Account(3)
		Expect(err).ToNot(HaveOccurred())
		Expect(from.Balance().IsZero()).To(BeTrue())
		Expect(to.Balance().Equal(dec(100))).To(BeTrue())

		fromTxns := from.Txns()
		outRecords := 0
		for _, txn := range fromTxns {
			if txn.Kind == model.TxnTransferOut {
				outRecords++
				Expect(txn.Status).To(Equal(model.TxnSuccess))
			}
		}
		Expect(outRecords).To(Equal(1))

		toTxns := to.Txns()
		inRecords := 0
		for _, txn := range toTxns {
			if txn.Kind == model.TxnTransferIn {
				inRecords++
				Expect(txn.Status).To(Equal(model.TxnSuccess))
			}
		}
		Expect(inRecords).To(Equal(1))
	})

	It("rejects non-positive amounts before touching either account", func() {
		from, err := ldgr.Account(2)
		Expect(err).ToNot(HaveOccurred())
		to, err := ldgr.Account(3)
		Expect(err).ToNot(HaveOccurred())
		fromTxnsBefore := len(from.Txns())
		toTxnsBefore := len(to.Txns())

		transferred, err := ldgr.TransferFunds(2, 3, dec(-5))
		Expect(err).To(Equal(ErrInvalidAmount))
		Expect(transferred).To(BeFalse())

		Expect(from.Txns()).To(HaveLen(fromTxnsBefore))
		Expect(to.Txns()).To(HaveLen(toTxnsBefore))
		Expect(from.Balance().Equal(dec(100))).To(BeTrue())
	})

	It("rejects same-account transfers", func() {
		_, err := ldgr.TransferFunds(2, 2, dec(10))
		Expect(err).To(Equal(ErrSameAccount))
	})

	It("rejects transfers when either account is missing", func() {
		_, err := ldgr.TransferFunds(2, 99, dec(10))
		Expect(err).To(Equal(ErrNotFound))

		_, err = ldgr.TransferFunds(99, 3, dec(10))
		Expect(err).To(Equal(ErrNotFound))
	})

	It("stops on withdrawal-rejection, logging Failed Transfer Out on source only", func() {
		transferred, err := ldgr.TransferFunds(2, 3, dec(1000))
		Expect(err).ToNot(HaveOccurred())
		Expect(transferred).To(BeFalse())

		from, err := ldgr.Account(2)
		Expect(err).ToNot(HaveOccurred())
		Expect(from.Balance().Equal(dec(100))).To(BeTrue())

		fromTxns := from.Txns()
		last := fromTxns[len(fromTxns)-1]
		Expect(last.Kind).To(Equal(model.TxnTransferOut))
		Expect(last.Status).To(Equal(model.TxnFailed))

		to, err := ldgr.Account(3)
		Expect(err).ToNot(HaveOccurred())
		for _, txn := range to.Txns() {
			Expect(txn.Kind).ToNot(Equal(model.TxnTransferIn))
		}
	})

	It("compensates the source when the destination rejects the deposit", func() {
		to, err := ldgr.Account(3)
		Expect(err).ToNot(HaveOccurred())
		ldgr.accounts[3] = &rejectingAccount{Account: to}

		from, err := ldgr.Account(2)
		Expect(err).ToNot(HaveOccurred())
		balanceBefore := from.Balance()

		transferred, err := ldgr.TransferFunds(2, 3, dec(40))
		Expect(err).ToNot(HaveOccurred())
		Expect(transferred).To(BeFalse())

		// Compensation restores the exact pre-transfer balance.
		Expect(from.Balance().Equal(balanceBefore)).To(BeTrue())

		fromTxns := from.Txns()
		last := fromTxns[len(fromTxns)-1]
		Expect(last.Kind).To(Equal(model.TxnTransferOut))
		Expect(last.Status).To(Equal(model.TxnFailed))

		Expect(to.Balance().IsZero()).To(BeTrue())
	})

	It("persists once at the end of every attempt which reached the accounts", func() {
		transferred, err := ldgr.TransferFunds(2, 3, dec(1000))
		Expect(err).ToNot(HaveOccurred())
		Expect(transferred).To(BeFalse())

		snapshot, err := store.Load()
		Expect(err).ToNot(HaveOccurred())
		txns := snapshot["2"].Txns
		Expect(txns[len(txns)-1].Kind).To(Equal(model.TxnTransferOut.String()))
		Expect(txns[len(txns)-1].Status).To(Equal(model.TxnFailed.String()))
	})
})
