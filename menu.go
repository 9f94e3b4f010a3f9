package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/validator.v2"

	"github.com/Jaskaranbir/bank-ledger/domain/account"
	"github.com/Jaskaranbir/bank-ledger/domain/ledger"
	"github.com/Jaskaranbir/bank-ledger/logger"
)

// menu is the interactive prompt-loop over the core
// ledger-operations. It only parses input, re-prompts on
// invalid entries and displays operation-results; every
// state-change goes through the Ledger.
// Use #newMenu to create new instance.
type menu struct {
	log    logger.Logger
	ledger *ledger.Ledger

	scanner *bufio.Scanner
	out     io.Writer
}

// menuCfg defines config for menu.
type menuCfg struct {
	Log    logger.Logger  `validate:"nonnil"`
	Ledger *ledger.Ledger `validate:"nonnil"`

	In  io.Reader `validate:"nonnil"`
	Out io.Writer `validate:"nonnil"`
}

func newMenu(cfg *menuCfg) (*menu, error) {
	err := validator.Validate(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "error validating config")
	}

	return &menu{
		log:    cfg.Log,
		ledger: cfg.Ledger,

		scanner: bufio.NewScanner(cfg.In),
		out:     cfg.Out,
	}, nil
}

// run drives the main menu until the user exits
// or input ends.
func (m *menu) run() error {
	m.log.Debug("Starting interactive menu")
	m.printf("Welcome to the Banking System\n")

	for {
		m.printf("\nMain Menu:\n")
		m.printf("1. Create new account (savings/checking/business/crypto)\n")
		m.printf("2. Deposit funds\n")
		m.printf("3. Withdraw funds\n")
		m.printf("4. Transfer funds between accounts\n")
		m.printf("5. View account details\n")
		m.printf("6. Display all accounts\n")
		m.printf("7. Exit\n")

		choice, ok := m.prompt("Choose an option (1-7): ")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = m.createAccount()
		case "2":
			err = m.deposit()
		case "3":
			err = m.withdraw()
		case "4":
			err = m.transfer()
		case "5":
			err = m.viewAccount()
		case "6":
			m.listAccounts()
		case "7":
			m.printf("Goodbye!\n")
			return nil
		default:
			m.printf("Invalid option. Please choose 1-7.\n")
			continue
		}
		if err != nil {
			return err
		}

		again, ok := m.prompt("Do you want to continue? (y/n): ")
		if !ok || strings.ToLower(again) != "y" {
			m.printf("Goodbye!\n")
			return nil
		}
	}
}

func (m *menu) createAccount() error {
	var kind account.Kind
	for {
		input, ok := m.prompt("Enter account type (savings/checking/business/crypto): ")
		if !ok {
			return nil
		}
		switch account.Kind(strings.ToLower(input)) {
		case account.KindSavings, account.KindChecking,
			account.KindBusiness, account.KindCrypto:
			kind = account.Kind(strings.ToLower(input))
		default:
			m.printf("Invalid account type. Please enter one of: savings, checking, business, or crypto.\n")
			continue
		}
		break
	}

	id, ok := m.promptAccountNumber("Enter account number (numeric): ")
	if !ok {
		return nil
	}
	holder, ok := m.prompt("Enter holder name: ")
	if !ok {
		return nil
	}

	var opening decimal.Decimal
	for {
		input, ok := m.prompt("Enter opening balance (>= 0): ")
		if !ok {
			return nil
		}
		amount, err := decimal.NewFromString(input)
		if err != nil {
			m.printf("Invalid input. Please enter a number.\n")
			continue
		}
		if amount.IsNegative() {
			m.printf("Opening balance cannot be negative.\n")
			continue
		}
		opening = amount
		break
	}

	password, ok := m.prompt("Create a password for this account: ")
	if !ok {
		return nil
	}
	confirm, ok := m.prompt("Confirm password: ")
	if !ok {
		return nil
	}

	acc, err := m.ledger.CreateAccount(&ledger.CreateAccountCfg{
		Kind:            kind,
		AccountNumber:   id,
		Holder:          holder,
		OpeningBalance:  opening,
		Password:        password,
		ConfirmPassword: confirm,
	})
	switch errors.Cause(err) {
	case nil:
		m.printf(
			"%s created for %s with balance $%s.\n",
			acc.AccountType(), acc.Holder(), acc.Balance(),
		)
	case ledger.ErrDuplicateAccount:
		m.printf("Account number %d already exists. Please use a different number.\n", id)
	case ledger.ErrMinOpeningBalance:
		m.printf(
			"Business accounts require a minimum $%s opening balance.\n",
			account.MinBusinessBalance,
		)
	case ledger.ErrPasswordMismatch:
		m.printf("Passwords do not match. Account not created.\n")
	default:
		return errors.Wrap(err, "error creating account")
	}
	return nil
}

func (m *menu) deposit() error {
	id, ok := m.promptAccountNumber("Account number: ")
	if !ok {
		return nil
	}
	amount, ok := m.promptAmount("Deposit amount (> 0): ")
	if !ok {
		return nil
	}
	password, ok := m.prompt("Enter your password: ")
	if !ok {
		return nil
	}

	deposited, err := m.ledger.DepositSecure(id, password, amount)
	switch errors.Cause(err) {
	case nil:
	case ledger.ErrAccessDenied:
		m.printf("Account not found or incorrect password.\n")
		return nil
	default:
		return errors.Wrap(err, "error depositing funds")
	}

	if deposited {
		acc, err := m.ledger.Account(id)
		if err != nil {
			return errors.Wrap(err, "error resolving account")
		}
		m.printf("Deposited $%s. New balance is: $%s\n", amount, acc.Balance())
	} else {
		m.printf("Deposit amount must be positive.\n")
	}
	return nil
}

func (m *menu) withdraw() error {
	id, ok := m.promptAccountNumber("Account number: ")
	if !ok {
		return nil
	}
	amount, ok := m.promptAmount("Withdrawal amount (> 0): ")
	if !ok {
		return nil
	}

	withdrawn, err := m.ledger.Withdraw(id, amount)
	switch errors.Cause(err) {
	case nil:
	case ledger.ErrNotFound:
		m.printf("Account not found.\n")
		return nil
	default:
		return errors.Wrap(err, "error withdrawing funds")
	}

	if withdrawn {
		acc, err := m.ledger.Account(id)
		if err != nil {
			return errors.Wrap(err, "error resolving account")
		}
		m.printf("Withdrew $%s. Remaining balance is: $%s\n", amount, acc.Balance())
	} else {
		m.printf("Invalid amount.\n")
	}
	return nil
}

func (m *menu) transfer() error {
	fromID, ok := m.promptAccountNumber("From account number: ")
	if !ok {
		return nil
	}
	toID, ok := m.promptAccountNumber("To account number: ")
	if !ok {
		return nil
	}
	amount, ok := m.promptAmount("Transfer amount (> 0): ")
	if !ok {
		return nil
	}

	transferred, err := m.ledger.TransferFunds(fromID, toID, amount)
	switch errors.Cause(err) {
	case nil:
	case ledger.ErrSameAccount:
		m.printf("Cannot transfer to the same account.\n")
		return nil
	case ledger.ErrInvalidAmount:
		m.printf("Transfer amount must be greater than 0.\n")
		return nil
	case ledger.ErrNotFound:
		m.printf("Transfer failed: one or both accounts not found.\n")
		return nil
	default:
		return errors.Wrap(err, "error transferring funds")
	}

	if transferred {
		m.printf("Transferred $%s from Account %d to Account %d.\n", amount, fromID, toID)
	} else {
		m.printf("Transfer failed due to insufficient balance or invalid amount.\n")
	}
	return nil
}

func (m *menu) viewAccount() error {
	id, ok := m.promptAccountNumber("Account number: ")
	if !ok {
		return nil
	}

	acc, err := m.ledger.Account(id)
	switch errors.Cause(err) {
	case nil:
	case ledger.ErrNotFound:
		m.printf("Account not found.\n")
		return nil
	default:
		return errors.Wrap(err, "error resolving account")
	}

	m.printf(
		"%s | Account Number: %d | Holder: %s | Balance: $%s\n",
		acc.AccountType(), acc.ID(), acc.Holder(), acc.Balance(),
	)
	m.printf("\nRecent Transactions:\n")
	txns := acc.Txns()
	if len(txns) == 0 {
		m.printf("No transactions yet.\n")
		return nil
	}
	if len(txns) > 10 {
		txns = txns[len(txns)-10:]
	}
	for _, txn := range txns {
		m.printf("%s\n", txn)
	}
	return nil
}

func (m *menu) listAccounts() {
	accounts := m.ledger.ListAccounts()
	if len(accounts) == 0 {
		m.printf("No accounts in the system.\n")
		return
	}
	for _, acc := range accounts {
		m.printf(
			"%s | Account Number: %d | Holder: %s | Balance: $%s\n",
			acc.AccountType(), acc.ID(), acc.Holder(), acc.Balance(),
		)
	}
}

// prompt displays a label and reads one trimmed input-line.
// Second return is false once input has ended.
func (m *menu) prompt(label string) (string, bool) {
	m.printf("%s", label)
	if !m.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.scanner.Text()), true
}

// promptAccountNumber re-prompts until a numeric
// account-number is entered.
func (m *menu) promptAccountNumber(label string) (int64, bool) {
	for {
		input, ok := m.prompt(label)
		if !ok {
			return 0, false
		}
		id, err := strconv.ParseInt(input, 10, 64)
		if err != nil || id <= 0 {
			m.printf("Account number must be numeric.\n")
			continue
		}
		return id, true
	}
}

// promptAmount re-prompts until a positive
// decimal amount is entered.
func (m *menu) promptAmount(label string) (decimal.Decimal, bool) {
	for {
		input, ok := m.prompt(label)
		if !ok {
			return decimal.Decimal{}, false
		}
		amount, err := decimal.NewFromString(input)
		if err != nil {
			m.printf("Invalid input. Please enter numeric values.\n")
			continue
		}
		if !amount.IsPositive() {
			m.printf("Amount must be greater than 0.\n")
			continue
		}
		return amount, true
	}
}

func (m *menu) printf(format string, v ...interface{}) {
	fmt.Fprintf(m.out, format, v...)
}
