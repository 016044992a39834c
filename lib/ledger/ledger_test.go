package ledger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"

	"github.com/sboehler/atm/lib/model/account"
)

func lines(ss ...string) string {
	return strings.Join(ss, "\n") + "\n"
}

const header = "Account_type,username,password,gender,telephone,ID_number,balance"

type row struct {
	Kind     account.Kind
	Username string
	Password string
	Balance  string
}

func rows(l *Ledger) []row {
	var res []row
	for _, a := range l.List() {
		res = append(res, row{a.Kind(), a.Username(), a.Password(), a.Balance().StringFixed(2)})
	}
	return res
}

func mustLoad(t *testing.T, text string) *Ledger {
	t.Helper()
	l, err := Load(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	return l
}

func TestLoad(t *testing.T) {
	tests := []struct {
		desc string
		text string
		want []row
	}{
		{
			desc: "sorted by username",
			text: lines(
				header,
				"Compcard,bob,pw2,M,556,ID2,-500.00",
				"Debit,alice,pw,F,555,ID1,100.00",
			),
			want: []row{
				{account.Debit, "alice", "pw", "100.00"},
				{account.Compcard, "bob", "pw2", "-500.00"},
			},
		},
		{
			desc: "all kinds",
			text: lines(
				header,
				"VVIPCredit,e,p,,,,-150000",
				"VIPCredit,d,p,,,,-3000.5",
				"NormalCredit,c,p,,,,0",
				"Compcard,b,p,,,,1",
				"Debit,a,p,,,,2.999",
			),
			want: []row{
				{account.Debit, "a", "p", "3.00"},
				{account.Compcard, "b", "p", "1.00"},
				{account.NormalCredit, "c", "p", "0.00"},
				{account.VIPCredit, "d", "p", "-3000.50"},
				{account.VVIPCredit, "e", "p", "-150000.00"},
			},
		},
		{
			desc: "header only",
			text: lines(header),
		},
		{
			desc: "empty source",
			text: "",
		},
		{
			desc: "blank lines and extra fields",
			text: lines(
				header,
				"",
				"Debit,alice,pw,F,555,ID1,100.00,ignored",
				"",
			),
			want: []row{
				{account.Debit, "alice", "pw", "100.00"},
			},
		},
		{
			desc: "duplicate usernames keep file order",
			text: lines(
				header,
				"Debit,alice,first,F,555,ID1,1",
				"Compcard,alice,second,F,555,ID1,2",
			),
			want: []row{
				{account.Debit, "alice", "first", "1.00"},
				{account.Compcard, "alice", "second", "2.00"},
			},
		},
		{
			desc: "quoted field",
			text: lines(
				header,
				`Debit,alice,"pw,with,commas",F,555,ID1,1`,
			),
			want: []row{
				{account.Debit, "alice", "pw,with,commas", "1.00"},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			l := mustLoad(t, test.text)

			if diff := cmp.Diff(test.want, rows(l)); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		desc     string
		text     string
		wantErr  error
		wantLine int
	}{
		{
			desc: "unknown kind",
			text: lines(
				header,
				"Debit,alice,pw,F,555,ID1,100.00",
				"Gold,bob,pw,M,556,ID2,1.00",
			),
			wantErr:  account.ErrUnknownKind,
			wantLine: 3,
		},
		{
			desc: "missing fields",
			text: lines(
				header,
				"Debit,alice,pw,F,555,100.00",
			),
			wantErr:  ErrMalformedRow,
			wantLine: 2,
		},
		{
			desc: "invalid balance",
			text: lines(
				header,
				"Debit,alice,pw,F,555,ID1,lots",
			),
			wantErr:  ErrMalformedRow,
			wantLine: 2,
		},
		{
			desc: "empty username",
			text: lines(
				header,
				"Debit,,pw,F,555,ID1,1",
			),
			wantErr:  ErrMalformedRow,
			wantLine: 2,
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			l, err := Load(strings.NewReader(test.text))

			if !errors.Is(err, test.wantErr) {
				t.Fatalf("Load() returned error %v, want %v", err, test.wantErr)
			}
			if l != nil {
				t.Errorf("Load() returned a ledger with %d accounts, want none", l.Len())
			}
			var re *RowError
			if !errors.As(err, &re) {
				t.Fatalf("Load() returned %T, want *RowError", err)
			}
			if re.Line != test.wantLine {
				t.Errorf("RowError.Line = %d, want %d", re.Line, test.wantLine)
			}
		})
	}
}

func TestSaveGolden(t *testing.T) {
	l := mustLoad(t, lines(
		header,
		"VIPCredit,bob,hunter2,M,555-0199,ID002,-3000",
		"Debit,alice,pw123,F,555-0100,ID001,1250",
		"Compcard,carol,s3cr3t,F,555-0142,ID003,12.345",
	))
	if _, err := l.Add(account.NormalCredit, account.Holder{
		Username:  "dave",
		Password:  "pa,ss",
		Gender:    "M",
		Telephone: "555-0111",
		IDNumber:  "ID004",
	}); err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}
	var buf bytes.Buffer

	if err := l.Save(&buf); err != nil {
		t.Fatalf("Save() returned unexpected error: %v", err)
	}

	goldie.New(t).Assert(t, "save", buf.Bytes())
}

func TestRoundTrip(t *testing.T) {
	text := lines(
		header,
		"VVIPCredit,zed,z,M,1,ID9,-199999.99",
		"Debit,alice,pw123,F,555-0100,ID001,1250.00",
		"Compcard,mallory,m,,,,-6999.5",
		`NormalCredit,bob,"a ""quoted"" pw",M,555,ID2,0`,
	)
	l := mustLoad(t, text)
	var buf bytes.Buffer
	if err := l.Save(&buf); err != nil {
		t.Fatalf("Save() returned unexpected error: %v", err)
	}

	got := mustLoad(t, buf.String())

	if diff := cmp.Diff(snapshot(l), snapshot(got)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

type fullRow struct {
	Kind    account.Kind
	Holder  account.Holder
	Balance string
}

func snapshot(l *Ledger) []fullRow {
	var res []fullRow
	for _, a := range l.List() {
		res = append(res, fullRow{a.Kind(), a.Holder(), a.Balance().StringFixed(2)})
	}
	return res
}

func TestAdd(t *testing.T) {
	l := mustLoad(t, lines(
		header,
		"Debit,alice,pw,F,555,ID1,100.00",
		"Compcard,carol,pw,F,555,ID3,1.00",
	))

	pos, err := l.Add(account.VIPCredit, account.Holder{Username: "bob", Password: "x"})

	if err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}
	if pos != 1 {
		t.Errorf("Add() = %d, want 1", pos)
	}
	want := []row{
		{account.Debit, "alice", "pw", "100.00"},
		{account.VIPCredit, "bob", "x", "0.00"},
		{account.Compcard, "carol", "pw", "1.00"},
	}
	if diff := cmp.Diff(want, rows(l)); diff != "" {
		t.Errorf("Add() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddTag(t *testing.T) {
	l := New()

	if _, err := l.AddTag("Gold", account.Holder{Username: "bob"}); !errors.Is(err, account.ErrUnknownKind) {
		t.Errorf("AddTag(Gold) returned %v, want %v", err, account.ErrUnknownKind)
	}
	if _, err := l.AddTag("Debit", account.Holder{}); !errors.Is(err, ErrEmptyUsername) {
		t.Errorf("AddTag() with empty username returned %v, want %v", err, ErrEmptyUsername)
	}
	if _, err := l.Add(account.Kind(9), account.Holder{Username: "bob"}); !errors.Is(err, account.ErrUnknownKind) {
		t.Errorf("Add(9) returned %v, want %v", err, account.ErrUnknownKind)
	}
	if l.Len() != 0 {
		t.Fatalf("Len() = %d after failed adds, want 0", l.Len())
	}

	pos, err := l.AddTag("VVIPCredit", account.Holder{Username: "bob"})

	if err != nil {
		t.Fatalf("AddTag(VVIPCredit) returned unexpected error: %v", err)
	}
	a, err := l.Get(pos)
	if err != nil {
		t.Fatalf("Get(%d) returned unexpected error: %v", pos, err)
	}
	if a.Kind() != account.VVIPCredit || !a.Balance().IsZero() {
		t.Errorf("Get(%d) = %v, want bob(VVIPCredit,0.00)", pos, a)
	}
}

func TestRemove(t *testing.T) {
	text := lines(
		header,
		"Debit,alice,pw,F,555,ID1,100.00",
		"Compcard,bob,pw2,M,556,ID2,-500.00",
	)
	for _, pos := range []int{-1, 2, 100} {
		l := mustLoad(t, text)

		err := l.Remove(pos)

		if !errors.Is(err, ErrPositionOutOfRange) {
			t.Errorf("Remove(%d) returned %v, want %v", pos, err, ErrPositionOutOfRange)
		}
		if l.Len() != 2 {
			t.Errorf("Remove(%d) changed the ledger to %d accounts", pos, l.Len())
		}
	}

	l := mustLoad(t, text)
	if err := l.Remove(0); err != nil {
		t.Fatalf("Remove(0) returned unexpected error: %v", err)
	}
	want := []row{{account.Compcard, "bob", "pw2", "-500.00"}}
	if diff := cmp.Diff(want, rows(l)); diff != "" {
		t.Errorf("Remove(0) mismatch (-want +got):\n%s", diff)
	}
	if _, err := l.Get(1); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("Get(1) returned %v, want %v", err, ErrPositionOutOfRange)
	}
}

func TestFindByCredentials(t *testing.T) {
	l := mustLoad(t, lines(
		header,
		"Debit,carol,pw,F,555,ID3,1",
		"Debit,alice,pw,F,555,ID1,1",
		"Compcard,alice,pw,F,555,ID1,2",
		"Debit,bob,pw2,M,556,ID2,1",
	))
	tests := []struct {
		username, password string
		want               int
		ok                 bool
	}{
		{"alice", "pw", 0, true},
		{"bob", "pw2", 2, true},
		{"carol", "pw", 3, true},
		{"bob", "pw", 0, false},
		{"dave", "pw", 0, false},
	}
	for _, test := range tests {
		got, ok := l.FindByCredentials(test.username, test.password)
		if ok != test.ok || got != test.want {
			t.Errorf("FindByCredentials(%q, %q) = %d, %t, want %d, %t", test.username, test.password, got, ok, test.want, test.ok)
		}
	}
}

func TestSpecExample(t *testing.T) {
	l := mustLoad(t, lines(
		header,
		"Debit,alice,pw,F,555,ID1,100.00",
		"Compcard,bob,pw2,M,556,ID2,-500.00",
	))
	s, err := l.Login("bob", "pw2")
	if err != nil {
		t.Fatalf("Login() returned unexpected error: %v", err)
	}

	if err := s.Withdraw(decimal.NewFromInt(7200)); !errors.Is(err, account.ErrInsufficientFunds) {
		t.Errorf("Withdraw(7200) returned %v, want %v", err, account.ErrInsufficientFunds)
	}
	if err := s.Withdraw(decimal.NewFromInt(6500)); err != nil {
		t.Fatalf("Withdraw(6500) returned unexpected error: %v", err)
	}

	a, err := s.Account()
	if err != nil {
		t.Fatalf("Account() returned unexpected error: %v", err)
	}
	if got := a.Balance().StringFixed(2); got != "-7000.00" {
		t.Errorf("Balance() = %s, want -7000.00", got)
	}
}

func TestTotal(t *testing.T) {
	l := mustLoad(t, lines(
		header,
		"Debit,alice,pw,F,555,ID1,100.25",
		"Compcard,bob,pw2,M,556,ID2,-500.00",
	))
	if got, want := l.Total(), decimal.RequireFromString("-399.75"); !got.Equal(want) {
		t.Errorf("Total() = %s, want %s", got, want)
	}
}
