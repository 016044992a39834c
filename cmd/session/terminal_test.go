package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/sboehler/atm/lib/ledger"
	"github.com/sboehler/atm/lib/model/account"
)

func sampleLedger() *ledger.Ledger {
	return ledger.New(
		account.New(account.Debit, account.Holder{Username: "alice", Password: "pw1", Gender: "F", Telephone: "555-0100", IDNumber: "ID001"}, decimal.RequireFromString("1000")),
		account.New(account.NormalCredit, account.Holder{Username: "bob", Password: "pw2", Gender: "M", Telephone: "555-0199", IDNumber: "ID002"}, decimal.RequireFromString("-500")),
	)
}

type run struct {
	stdout, stderr string
	saves          int
}

func runTerminal(t *testing.T, l *ledger.Ledger, input string) run {
	t.Helper()
	var stdout, stderr bytes.Buffer
	var saves int
	term := Terminal{
		Ledger: l,
		In:     strings.NewReader(input),
		Out:    &stdout,
		Err:    &stderr,
		Save: func() error {
			saves++
			return nil
		},
	}
	if err := term.Run(); err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}
	return run{stdout.String(), stderr.String(), saves}
}

func balances(l *ledger.Ledger) map[string]string {
	res := make(map[string]string)
	for _, a := range l.List() {
		res[a.Username()] = a.Balance().StringFixed(2)
	}
	return res
}

func TestExitOnEmptyInput(t *testing.T) {
	got := runTerminal(t, sampleLedger(), "")

	if !strings.Contains(got.stdout, "Welcome to the ATM system!") {
		t.Errorf("stdout does not show the main menu:\n%s", got.stdout)
	}
	if got.saves != 0 {
		t.Errorf("saves = %d, want 0", got.saves)
	}
}

func TestWithdrawRetriesUntilAllowed(t *testing.T) {
	l := sampleLedger()

	got := runTerminal(t, l, "1\nbob\npw2\n3\n7200\n6500\n\n\n\n")

	if diff := cmp.Diff(map[string]string{"alice": "1000.00", "bob": "-7000.00"}, balances(l)); diff != "" {
		t.Errorf("balances mismatch (-want +got):\n%s", diff)
	}
	for _, want := range []string{
		"The minimum balance you can reach is: -7000.00",
		"The money you are able to withdraw is: 6500.00",
		"Withdrawal successful.",
	} {
		if !strings.Contains(got.stdout, want) {
			t.Errorf("stdout does not contain %q:\n%s", want, got.stdout)
		}
	}
	if !strings.Contains(got.stderr, account.ErrInsufficientFunds.Error()) {
		t.Errorf("stderr does not report the rejected withdrawal:\n%s", got.stderr)
	}
	if got.saves != 1 {
		t.Errorf("saves = %d, want 1", got.saves)
	}
}

func TestDeposit(t *testing.T) {
	l := sampleLedger()

	got := runTerminal(t, l, "1\nalice\npw1\n2\nabc\n-5\n250.5\n\n\n\n")

	if diff := cmp.Diff(map[string]string{"alice": "1250.50", "bob": "-500.00"}, balances(l)); diff != "" {
		t.Errorf("balances mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(got.stderr, "Bad entry.") {
		t.Errorf("stderr does not report the bad entry:\n%s", got.stderr)
	}
	if !strings.Contains(got.stderr, account.ErrInvalidAmount.Error()) {
		t.Errorf("stderr does not report the negative amount:\n%s", got.stderr)
	}
	if !strings.Contains(got.stdout, "Your current balance is: 1250.50") {
		t.Errorf("stdout does not show the new balance:\n%s", got.stdout)
	}
}

func TestInvalidLogin(t *testing.T) {
	l := sampleLedger()

	got := runTerminal(t, l, "1\nbob\nwrong\n2\nadmin\nadmin\n\n")

	if n := strings.Count(got.stdout, "Invalid username or password! Please try again."); n != 2 {
		t.Errorf("got %d login failures, want 2:\n%s", n, got.stdout)
	}
	if strings.Contains(got.stdout, "subsystem") {
		t.Errorf("stdout shows a submenu after failed logins:\n%s", got.stdout)
	}
}

func TestCheckInfoAndInterest(t *testing.T) {
	got := runTerminal(t, sampleLedger(), "1\nalice\npw1\n1\n\n4\n-1\n2\n\n\n\n")

	for _, want := range []string{
		"Username: alice",
		"Account Type: Debit",
		"Current Balance: 1000.00",
		"Your interest is: 12.54",
	} {
		if !strings.Contains(got.stdout, want) {
			t.Errorf("stdout does not contain %q:\n%s", want, got.stdout)
		}
	}
	if !strings.Contains(got.stderr, account.ErrNegativeDuration.Error()) {
		t.Errorf("stderr does not report the negative duration:\n%s", got.stderr)
	}
}

func TestAdminAddListRemove(t *testing.T) {
	l := sampleLedger()

	got := runTerminal(t, l, strings.Join([]string{
		"2", "admin", "1337Code",
		"2", "Gold", "carol", "pw3", "F", "555-0142", "ID003",
		"Compcard", "carol", "pw3", "F", "555-0142", "ID003", "",
		"3", "7", "0", "",
		"1", "",
		"", "", "",
	}, "\n"))

	var names []string
	for _, a := range l.List() {
		names = append(names, a.String())
	}
	if diff := cmp.Diff([]string{"bob(NormalCredit,-500.00)", "carol(Compcard,0.00)"}, names); diff != "" {
		t.Errorf("accounts mismatch (-want +got):\n%s", diff)
	}
	for _, want := range []string{
		"Account has been added successfully at position 2.",
		"Account has been removed successfully.",
		"| 1 | carol ",
	} {
		if !strings.Contains(got.stdout, want) {
			t.Errorf("stdout does not contain %q:\n%s", want, got.stdout)
		}
	}
	for _, want := range []string{account.ErrUnknownKind.Error(), ledger.ErrPositionOutOfRange.Error()} {
		if !strings.Contains(got.stderr, want) {
			t.Errorf("stderr does not contain %q:\n%s", want, got.stderr)
		}
	}
	if got.saves != 2 {
		t.Errorf("saves = %d, want 2", got.saves)
	}
}

func TestAdminListEmpty(t *testing.T) {
	got := runTerminal(t, ledger.New(), "2\nadmin\n1337Code\n1\n\n\n")

	if !strings.Contains(got.stdout, "No accounts!") {
		t.Errorf("stdout does not contain %q:\n%s", "No accounts!", got.stdout)
	}
}

func TestAutosaveFailureIsReported(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := sampleLedger()
	term := Terminal{
		Ledger: l,
		In:     strings.NewReader("1\nalice\npw1\n2\n10\n\n\n\n"),
		Out:    &stdout,
		Err:    &stderr,
		Save: func() error {
			return errors.New("disk full")
		},
	}

	if err := term.Run(); err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}

	if !strings.Contains(stderr.String(), "disk full") {
		t.Errorf("stderr does not report the failed save:\n%s", stderr.String())
	}
	if diff := cmp.Diff(map[string]string{"alice": "1010.00", "bob": "-500.00"}, balances(l)); diff != "" {
		t.Errorf("balances mismatch (-want +got):\n%s", diff)
	}
}

func TestPaddedInput(t *testing.T) {
	l := sampleLedger()

	got := runTerminal(t, l, strings.Join([]string{
		"  2 ", "admin", "1337Code",
		" 2\t", " Compcard ", "carol", "pw3", "F", "555-0142", "ID003", "",
		"", "", "",
	}, "\n"))

	if !strings.Contains(got.stdout, "Account has been added successfully at position 2.") {
		t.Errorf("stdout does not report the new account:\n%s", got.stdout)
	}
	a, err := l.Get(2)
	if err != nil {
		t.Fatalf("Get(2) returned unexpected error: %v", err)
	}
	if got, want := a.String(), "carol(Compcard,0.00)"; got != want {
		t.Errorf("Get(2) = %s, want %s", got, want)
	}
}

func TestInterestRejectsLongDurations(t *testing.T) {
	got := runTerminal(t, sampleLedger(), "1\nalice\npw1\n4\n50000000\n2\n\n\n\n")

	if !strings.Contains(got.stderr, account.ErrDurationTooLong.Error()) {
		t.Errorf("stderr does not report the long duration:\n%s", got.stderr)
	}
	if !strings.Contains(got.stdout, "Your interest is: 12.54") {
		t.Errorf("stdout does not show the interest:\n%s", got.stdout)
	}
}
