package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sboehler/atm/lib/model/account"
)

// Header is the first row of every ledger file.
var Header = []string{
	"Account_type",
	"username",
	"password",
	"gender",
	"telephone",
	"ID_number",
	"balance",
}

// RowError is an error in a specific row of a ledger file.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Load reads a ledger. The first row is treated as header and skipped. Any
// invalid row aborts the load.
func Load(r io.Reader) (*Ledger, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	var (
		accounts  []*account.Account
		firstLine = true
	)
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &RowError{Line: pe.Line, Err: fmt.Errorf("%w: %v", ErrMalformedRow, pe.Err)}
			}
			return nil, err
		}
		if firstLine {
			firstLine = false
			continue
		}
		a, err := parseRow(rec)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, &RowError{Line: line, Err: err}
		}
		accounts = append(accounts, a)
	}
	return New(accounts...), nil
}

func parseRow(r []string) (*account.Account, error) {
	if len(r) < len(Header) {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRow, len(Header), len(r))
	}
	kind, err := account.ParseKind(r[0])
	if err != nil {
		return nil, err
	}
	if r[1] == "" {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, ErrEmptyUsername)
	}
	balance, err := decimal.NewFromString(strings.TrimSpace(r[6]))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid balance %q", ErrMalformedRow, r[6])
	}
	return account.New(kind, account.Holder{
		Username:  r[1],
		Password:  r[2],
		Gender:    r[3],
		Telephone: r[4],
		IDNumber:  r[5],
	}, balance), nil
}

// Save writes the header and all accounts in ledger order.
func (l *Ledger) Save(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, a := range l.accounts {
		if err := writer.Write(formatRow(a)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatRow(a *account.Account) []string {
	return []string{
		a.Kind().String(),
		a.Username(),
		a.Password(),
		a.Gender(),
		a.Telephone(),
		a.IDNumber(),
		a.Balance().StringFixed(2),
	}
}
