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

// Package session implements the interactive ATM terminal.
package session

import (
	"errors"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/sboehler/atm/lib/ledger"
	"github.com/sboehler/atm/lib/model/account"
	"github.com/sboehler/atm/lib/report"
	"github.com/sboehler/atm/lib/table"
)

// The administrator credentials are fixed.
const (
	adminUsername = "admin"
	adminPassword = "1337Code"
)

// Terminal runs the menus of the ATM on a ledger.
type Terminal struct {
	Ledger *ledger.Ledger
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Color  bool
	Logger *slog.Logger

	// Save, if set, is called after every successful change.
	Save func() error

	p *prompter
}

// Run shows the main menu until the user exits or the input ends.
func (t *Terminal) Run() error {
	color.NoColor = !t.Color
	if t.Logger == nil {
		t.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	t.p = newPrompter(t.In, t.Out, t.Err)
	err := t.mainMenu()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (t *Terminal) mainMenu() error {
	for {
		t.p.println(slash)
		t.p.println("Welcome to the ATM system!")
		t.p.println(slash)
		t.p.println()
		t.p.println("1. Login as a User (to withdraw, deposit or check your balance)")
		t.p.println("2. Login as an Administrator (admin name & password required)")
		t.p.println("Any key else: Exit")
		t.p.println()
		t.p.println("Tips: If you want to create an account or delete your")
		t.p.println("account permanently, please contact us to help you.")
		t.p.println()
		t.p.println(slash)
		option, err := t.p.readLine("Choose your option: ")
		if err != nil {
			return err
		}
		switch trim(option) {
		case "1":
			err = t.userLogin()
		case "2":
			err = t.adminLogin()
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (t *Terminal) credentials() (string, string, error) {
	t.p.println(slash)
	username, err := t.p.readLine("Please enter your username: ")
	if err != nil {
		return "", "", err
	}
	password, err := t.p.readLine("Please enter your password: ")
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

func (t *Terminal) changed() {
	if t.Save == nil {
		return
	}
	if err := t.Save(); err != nil {
		t.p.errorf("Error: %v", err)
		t.Logger.Error("autosave failed", slog.String("error", err.Error()))
	}
}

func (t *Terminal) userLogin() error {
	username, password, err := t.credentials()
	if err != nil {
		return err
	}
	s, err := t.Ledger.Login(username, password)
	if err != nil {
		t.p.println("Invalid username or password! Please try again.")
		t.Logger.Debug("user login failed", slog.String("username", username))
		return nil
	}
	t.Logger.Debug("user logged in", slog.String("username", username))
	return t.userMenu(s)
}

func (t *Terminal) userMenu(s *ledger.Session) error {
	for {
		option, err := t.p.choose("Welcome to the ATM user subsystem!", []string{
			"Check your account information",
			"Deposit your money",
			"Withdraw your money",
			"Calculate your interest",
		}, "Exit")
		if err != nil {
			return err
		}
		switch option {
		case "1":
			err = t.checkInfo(s)
		case "2":
			err = t.deposit(s)
		case "3":
			err = t.withdraw(s)
		case "4":
			err = t.interest(s)
		default:
			return nil
		}
		if errors.Is(err, ledger.ErrStaleSession) {
			t.p.errorf("Error: %v", err)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (t *Terminal) checkInfo(s *ledger.Session) error {
	a, err := s.Account()
	if err != nil {
		return err
	}
	t.p.println(slash)
	t.p.println()
	t.p.printf("Username: %s\n", a.Username())
	t.p.printf("Password: %s\n", a.Password())
	t.p.printf("Account Type: %s\n", a.Kind())
	t.p.printf("Gender: %s\n", a.Gender())
	t.p.printf("Telephone #: %s\n", a.Telephone())
	t.p.printf("ID #: %s\n", a.IDNumber())
	t.p.printf("Current Balance: %s\n", a.Balance().StringFixed(2))
	t.p.println()
	t.p.println(slash)
	return t.p.pause()
}

func (t *Terminal) deposit(s *ledger.Session) error {
	for {
		a, err := s.Account()
		if err != nil {
			return err
		}
		t.p.println(slash)
		t.p.printf("Your current balance is: %s\n", a.Balance().StringFixed(2))
		amount, err := t.p.readDecimal("How much do you want to deposit? ")
		if err != nil {
			return err
		}
		if err := s.Deposit(amount); err != nil {
			if errors.Is(err, ledger.ErrStaleSession) {
				return err
			}
			t.p.errorf("Error: %v", err)
			t.p.println("Please try again.")
			continue
		}
		t.changed()
		a, _ = s.Account()
		t.p.println("Deposit successful.")
		t.p.printf("Your current balance is: %s\n", a.Balance().StringFixed(2))
		return t.p.pause()
	}
}

func (t *Terminal) withdraw(s *ledger.Session) error {
	for {
		a, err := s.Account()
		if err != nil {
			return err
		}
		t.p.println(slash)
		t.p.printf("The minimum balance you can reach is: %s\n", a.MinimumBalance().StringFixed(2))
		t.p.printf("The money you are able to withdraw is: %s\n", a.AvailableToWithdraw().StringFixed(2))
		t.p.printf("Your current balance is: %s\n", a.Balance().StringFixed(2))
		amount, err := t.p.readDecimal("How much do you want to withdraw? ")
		if err != nil {
			return err
		}
		if err := s.Withdraw(amount); err != nil {
			if errors.Is(err, ledger.ErrStaleSession) {
				return err
			}
			t.p.errorf("Input Error: %v", err)
			t.p.println("Please try again.")
			continue
		}
		t.changed()
		a, _ = s.Account()
		t.p.println("Withdrawal successful.")
		t.p.printf("Your current balance is: %s\n", a.Balance().StringFixed(2))
		return t.p.pause()
	}
}

func (t *Terminal) interest(s *ledger.Session) error {
	for {
		t.p.println(slash)
		days, err := t.p.readInt("How many days do you want to calculate? ")
		if err != nil {
			return err
		}
		delta, err := s.Interest(days)
		if err != nil {
			if errors.Is(err, ledger.ErrStaleSession) {
				return err
			}
			t.p.errorf("Input Error: %v", err)
			t.p.println("Please try again.")
			continue
		}
		t.p.printf("Your interest is: %s\n", delta.StringFixed(2))
		return t.p.pause()
	}
}

func (t *Terminal) adminLogin() error {
	username, password, err := t.credentials()
	if err != nil {
		return err
	}
	if username != adminUsername || password != adminPassword {
		t.p.println("Invalid username or password! Please try again.")
		t.Logger.Warn("administrator login failed", slog.String("username", username))
		return nil
	}
	t.Logger.Debug("administrator logged in")
	return t.adminMenu()
}

func (t *Terminal) adminMenu() error {
	for {
		option, err := t.p.choose("Welcome to the ATM Admin subsystem!", []string{
			"List of all accounts",
			"Create a new account",
			"Erase an account and transfer/withdraw all money",
		}, "Exit")
		if err != nil {
			return err
		}
		switch option {
		case "1":
			err = t.listAccounts()
		case "2":
			err = t.addAccount()
		case "3":
			err = t.removeAccount()
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (t *Terminal) listAccounts() error {
	t.p.println(slash)
	if t.Ledger.Len() == 0 {
		t.p.println("No accounts!")
		return nil
	}
	var rn report.Renderer
	tr := table.TextRenderer{Color: t.Color}
	if err := tr.Render(rn.Render(t.Ledger.List()), t.Out); err != nil {
		return err
	}
	t.p.println(slash)
	return t.p.pause()
}

func (t *Terminal) addAccount() error {
	for {
		t.p.println("If you want to create an account: ")
		var fields [6]string
		for i, prompt := range []string{
			"1. Enter the type of the account: ",
			"2. Enter the username: ",
			"3. Enter the password: ",
			"4. Enter the gender: ",
			"5. Enter the telephone number: ",
			"6. Enter the ID number: ",
		} {
			s, err := t.p.readLine(prompt)
			if err != nil {
				return err
			}
			fields[i] = s
		}
		pos, err := t.Ledger.AddTag(trim(fields[0]), account.Holder{
			Username:  fields[1],
			Password:  fields[2],
			Gender:    fields[3],
			Telephone: fields[4],
			IDNumber:  fields[5],
		})
		if err != nil {
			t.p.errorf("Error: %v", err)
			t.p.println("Please try again.")
			continue
		}
		t.Logger.Info("account added", slog.String("username", fields[1]), slog.Int("position", pos))
		t.changed()
		t.p.printf("Account has been added successfully at position %d.\n", pos)
		return t.p.pause()
	}
}

func (t *Terminal) removeAccount() error {
	for {
		pos, err := t.p.readInt("What account do you want to remove? ")
		if err != nil {
			return err
		}
		a, err := t.Ledger.Get(pos)
		if err == nil {
			err = t.Ledger.Remove(pos)
		}
		if err != nil {
			t.p.errorf("Error: %v", err)
			t.p.println("Please try again.")
			continue
		}
		t.Logger.Info("account removed", slog.String("username", a.Username()), slog.Int("position", pos))
		t.changed()
		t.p.println("Account has been removed successfully.")
		return t.p.pause()
	}
}
