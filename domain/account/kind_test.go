package account

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/shopspring/decimal"

	"github.com/Jaskaranbir/bank-ledger/model"
)

var _ = Describe("New", func() {
	var cfg *Cfg

	BeforeEach(func() {
		cfg = &Cfg{
			ID:      7,
			Holder:  "test-holder",
			Balance: decimal.NewFromInt(500),
		}
	})

	It("creates the variant matching provided kind", func() {
		kinds := map[Kind]string{
			KindSavings:  "Savings Account",
			KindChecking: "Checking Account",
			KindBusiness: "Business Account",
			KindCrypto:   "Crypto Wallet",
		}
		for kind, label := range kinds {
			acc, err := New(kind, cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(acc.AccountType()).To(Equal(label))
		}
	})

	It("matches kinds case-insensitively", func() {
		acc, err := New(Kind("SAVINGS"), cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(acc.AccountType()).To(Equal("Savings Account"))
	})

	It("errors on unknown kinds", func() {
		_, err := New(Kind("offshore"), cfg)
		Expect(err).To(Equal(ErrUnknownAccountType))
	})
})

var _ = Describe("Reconstruct", func() {
	var cfg *Cfg
	var txns []model.Txn

	BeforeEach(func() {
		cfg = &Cfg{
			ID:       3,
			Holder:   "test-holder",
			Balance:  decimal.NewFromInt(150),
			Password: "test-password",
		}

		txns = make([]model.Txn, 0)
		for _, kind := range []model.TxnKind{
			model.TxnOpeningDeposit,
			model.TxnDeposit,
			model.TxnWithdrawal,
		} {
			txn, err := model.NewTxn(&model.TxnCfg{
				Kind:   kind,
				Status: model.TxnSuccess,
				Amount: decimal.NewFromInt(50),
				Time:   time.Now().UTC(),
			})
			Expect(err).ToNot(HaveOccurred())
			txns = append(txns, txn)
		}
	})

	It("rebuilds the variant from its persisted label", func() {
		labels := map[string]string{
			"Savings Account":  "Savings Account",
			"Checking Account": "Checking Account",
			"Business Account": "Business Account",
			"Crypto Wallet":    "Crypto Wallet",
		}
		for label, expected := range labels {
			acc, err := Reconstruct(label, cfg, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(acc.AccountType()).To(Equal(expected))
			Expect(acc.Balance().Equal(cfg.Balance)).To(BeTrue())
			Expect(acc.Password()).To(Equal("test-password"))
		}
	})

	It("matches labels by case-insensitive substring", func() {
		acc, err := Reconstruct("premium SAVINGS account", cfg, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(acc.AccountType()).To(Equal("Savings Account"))
	})

	It("errors on unrecognized labels", func() {
		_, err := Reconstruct("Money Market Account", cfg, nil)
		Expect(err).To(Equal(ErrUnknownAccountType))
	})

	It("replays transaction-history in order", func() {
		acc, err := Reconstruct("Checking Account", cfg, txns)
		Expect(err).ToNot(HaveOccurred())

		replayed := acc.Txns()
		Expect(replayed).To(HaveLen(len(txns)))
		for i, txn := range txns {
			Expect(replayed[i].ID).To(Equal(txn.ID))
			Expect(replayed[i].Kind).To(Equal(txn.Kind))
		}
	})
})
