package ledger

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/sboehler/atm/lib/model/account"
)

// ErrStaleSession is returned when the account of a session has been
// removed from the ledger.
var ErrStaleSession = errors.New("the logged in account no longer exists")

// Session refers to the logged-in account. The position is resolved again
// whenever the ledger has changed structurally since the last use.
type Session struct {
	ledger     *Ledger
	account    *account.Account
	position   int
	generation uint64
}

func (s *Session) resolve() (*account.Account, error) {
	if s.generation == s.ledger.generation {
		return s.account, nil
	}
	pos := s.ledger.indexOf(s.account)
	if pos < 0 {
		return nil, ErrStaleSession
	}
	s.position, s.generation = pos, s.ledger.generation
	return s.account, nil
}

// Position returns the current position of the account in the ledger.
func (s *Session) Position() (int, error) {
	if _, err := s.resolve(); err != nil {
		return 0, err
	}
	return s.position, nil
}

// Account returns a snapshot of the logged-in account.
func (s *Session) Account() (account.Account, error) {
	a, err := s.resolve()
	if err != nil {
		return account.Account{}, err
	}
	return *a, nil
}

// Deposit deposits amount into the logged-in account.
func (s *Session) Deposit(amount decimal.Decimal) error {
	a, err := s.resolve()
	if err != nil {
		return err
	}
	return a.Deposit(amount)
}

// Withdraw withdraws amount from the logged-in account.
func (s *Session) Withdraw(amount decimal.Decimal) error {
	a, err := s.resolve()
	if err != nil {
		return err
	}
	return a.Withdraw(amount)
}

// Interest computes the interest of the logged-in account.
func (s *Session) Interest(days int) (decimal.Decimal, error) {
	a, err := s.resolve()
	if err != nil {
		return decimal.Zero, err
	}
	return a.Interest(days)
}

// ApplyInterest credits the interest to the logged-in account.
func (s *Session) ApplyInterest(days int) (decimal.Decimal, error) {
	a, err := s.resolve()
	if err != nil {
		return decimal.Zero, err
	}
	return a.ApplyInterest(days)
}
