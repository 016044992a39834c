package account

import "errors"

var (
	// ErrInvalidAmount is returned for negative deposits and withdrawals.
	ErrInvalidAmount = errors.New("the amount to deposit or withdraw must not be negative")

	// ErrInsufficientFunds is returned when a withdrawal would breach the minimum balance.
	ErrInsufficientFunds = errors.New("the withdrawal exceeds the available amount")

	// ErrNegativeDuration is returned for a negative number of interest days.
	ErrNegativeDuration = errors.New("the number of days must not be negative")

	// ErrDurationTooLong is returned for more than MaxInterestDays interest days.
	ErrDurationTooLong = errors.New("the number of days is too large")

	// ErrUnknownKind is returned for an unrecognized account kind tag.
	ErrUnknownKind = errors.New("undefined account type")
)
