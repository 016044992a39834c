// Copyright 2021 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ledger holds the set of all accounts and persists it as CSV.
package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/sboehler/atm/lib/model/account"
)

var (
	// ErrMalformedRow is returned for rows with missing fields or an unparsable balance.
	ErrMalformedRow = errors.New("malformed row")

	// ErrPositionOutOfRange is returned for positions outside of the ledger.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrSourceUnavailable is returned when the ledger file cannot be opened.
	ErrSourceUnavailable = errors.New("file is not open/not found")

	// ErrEmptyUsername is returned when an account without username is added.
	ErrEmptyUsername = errors.New("username must not be empty")

	// ErrInvalidCredentials is returned when no account matches a login.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Ledger is the ordered set of all accounts. It is not safe for concurrent
// use.
type Ledger struct {
	accounts []*account.Account

	// generation is incremented on every structural change.
	generation uint64
}

// New creates a ledger with the given accounts.
func New(accounts ...*account.Account) *Ledger {
	l := &Ledger{accounts: accounts}
	l.sort()
	return l
}

func (l *Ledger) sort() {
	slices.SortStableFunc(l.accounts, func(a1, a2 *account.Account) bool {
		return a1.Username() < a2.Username()
	})
}

// Len returns the number of accounts.
func (l *Ledger) Len() int {
	return len(l.accounts)
}

// List returns a snapshot of all accounts in ledger order.
func (l *Ledger) List() []account.Account {
	res := make([]account.Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		res = append(res, *a)
	}
	return res
}

// Get returns a snapshot of the account at the given position.
func (l *Ledger) Get(pos int) (account.Account, error) {
	if err := l.checkPosition(pos); err != nil {
		return account.Account{}, err
	}
	return *l.accounts[pos], nil
}

// Total returns the sum of all balances.
func (l *Ledger) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, a := range l.accounts {
		sum = sum.Add(a.Balance())
	}
	return sum
}

// Add creates a new account with zero balance and returns its position.
func (l *Ledger) Add(kind account.Kind, holder account.Holder) (int, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %d", account.ErrUnknownKind, kind)
	}
	if holder.Username == "" {
		return 0, ErrEmptyUsername
	}
	a := account.New(kind, holder, decimal.Zero)
	l.accounts = append(l.accounts, a)
	l.sort()
	l.generation++
	return l.indexOf(a), nil
}

// AddTag is like Add, but takes the kind as its tag.
func (l *Ledger) AddTag(tag string, holder account.Holder) (int, error) {
	kind, err := account.ParseKind(tag)
	if err != nil {
		return 0, err
	}
	return l.Add(kind, holder)
}

// Remove deletes the account at the given position.
func (l *Ledger) Remove(pos int) error {
	if err := l.checkPosition(pos); err != nil {
		return err
	}
	l.accounts = slices.Delete(l.accounts, pos, pos+1)
	l.generation++
	return nil
}

// FindByCredentials returns the position of the first account matching
// username and password.
func (l *Ledger) FindByCredentials(username, password string) (int, bool) {
	for i, a := range l.accounts {
		if a.Authenticate(username, password) {
			return i, true
		}
	}
	return 0, false
}

// Login returns a session for the first account matching username and
// password.
func (l *Ledger) Login(username, password string) (*Session, error) {
	pos, ok := l.FindByCredentials(username, password)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return &Session{
		ledger:     l,
		account:    l.accounts[pos],
		position:   pos,
		generation: l.generation,
	}, nil
}

func (l *Ledger) checkPosition(pos int) error {
	if pos < 0 || pos >= len(l.accounts) {
		return fmt.Errorf("%w: %d (ledger has %d accounts)", ErrPositionOutOfRange, pos, len(l.accounts))
	}
	return nil
}

func (l *Ledger) indexOf(a *account.Account) int {
	for i, b := range l.accounts {
		if a == b {
			return i
		}
	}
	return -1
}
