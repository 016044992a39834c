package account

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Holder is the personal data attached to an account.
type Holder struct {
	Username  string
	Password  string
	Gender    string
	Telephone string
	IDNumber  string
}

// Account represents a customer account.
type Account struct {
	kind    Kind
	holder  Holder
	balance decimal.Decimal
}

// New creates an account.
func New(kind Kind, holder Holder, balance decimal.Decimal) *Account {
	return &Account{
		kind:    kind,
		holder:  holder,
		balance: balance,
	}
}

// Kind returns the account kind.
func (a Account) Kind() Kind {
	return a.kind
}

// Holder returns the personal data of the account.
func (a Account) Holder() Holder {
	return a.holder
}

func (a Account) Username() string {
	return a.holder.Username
}

func (a Account) Password() string {
	return a.holder.Password
}

func (a Account) Gender() string {
	return a.holder.Gender
}

func (a Account) Telephone() string {
	return a.holder.Telephone
}

func (a Account) IDNumber() string {
	return a.holder.IDNumber
}

// Balance returns the current balance.
func (a Account) Balance() decimal.Decimal {
	return a.balance
}

// MinimumBalance returns the minimum balance of the account kind.
func (a Account) MinimumBalance() decimal.Decimal {
	return a.kind.MinimumBalance()
}

// InterestRate returns the daily interest rate of the account kind.
func (a Account) InterestRate() decimal.Decimal {
	return a.kind.InterestRate()
}

// AvailableToWithdraw returns the largest amount which can be withdrawn.
func (a Account) AvailableToWithdraw() decimal.Decimal {
	return a.balance.Sub(a.kind.MinimumBalance())
}

func (a Account) String() string {
	return fmt.Sprintf("%s(%s,%s)", a.holder.Username, a.kind, a.balance.StringFixed(2))
}

// Authenticate returns whether username and password both match exactly.
func (a Account) Authenticate(username, password string) bool {
	return a.holder.Username == username && a.holder.Password == password
}

// Deposit increases the balance by amount.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw decreases the balance by amount, provided the result does not
// fall below the minimum balance of the account kind.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	if a.balance.Sub(amount).LessThan(a.kind.MinimumBalance()) {
		return fmt.Errorf("%w: at most %s can be withdrawn", ErrInsufficientFunds, a.AvailableToWithdraw().StringFixed(2))
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// interestPrecision bounds the number of fractional digits carried between
// compounding steps.
const interestPrecision = 28

// MaxInterestDays is the longest duration, 100 years, for which interest is
// compounded.
const MaxInterestDays = 36500

// Interest returns the interest accrued over the given number of days. The
// balance is compounded daily.
func (a Account) Interest(days int) (decimal.Decimal, error) {
	if days < 0 {
		return decimal.Zero, fmt.Errorf("%w: %d", ErrNegativeDuration, days)
	}
	if days > MaxInterestDays {
		return decimal.Zero, fmt.Errorf("%w: %d (at most %d)", ErrDurationTooLong, days, MaxInterestDays)
	}
	rate := a.kind.InterestRate()
	if days == 0 || rate.IsZero() {
		return decimal.Zero, nil
	}
	var (
		factor = decimal.NewFromInt(1).Add(rate)
		b      = a.balance
	)
	for i := 0; i < days; i++ {
		b = b.Mul(factor).Round(interestPrecision)
	}
	return b.Sub(a.balance), nil
}

// ApplyInterest adds the interest for the given number of days to the
// balance and returns it.
func (a *Account) ApplyInterest(days int) (decimal.Decimal, error) {
	delta, err := a.Interest(days)
	if err != nil {
		return decimal.Zero, err
	}
	a.balance = a.balance.Add(delta)
	return delta, nil
}
