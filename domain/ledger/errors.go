package ledger

import "github.com/pkg/errors"

// Rejection-outcomes of ledger-operations. These are
// local and recoverable: no mutation has happened and
// the caller may retry with corrected input.
var (
	// ErrNotFound signals a lookup for an
	// unknown account-number.
	ErrNotFound = errors.New("account not found")

	// ErrDuplicateAccount signals account-creation with an
	// account-number which already exists.
	ErrDuplicateAccount = errors.New("account-number already exists")

	// ErrAccessDenied signals a failed password-secured lookup.
	// Deliberately covers both unknown account-number and
	// password-mismatch, so callers cannot probe which
	// account-numbers exist.
	ErrAccessDenied = errors.New("access denied")

	// ErrPasswordMismatch signals that password and its
	// confirmation differed during account-creation.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrMinOpeningBalance signals a business-account opening
	// with balance below the minimum-balance floor.
	ErrMinOpeningBalance = errors.New("business-accounts require minimum opening-balance")

	// ErrInvalidAmount signals a non-positive amount.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrSameAccount signals a transfer where source and
	// destination are the same account.
	ErrSameAccount = errors.New("cannot transfer to the same account")
)
