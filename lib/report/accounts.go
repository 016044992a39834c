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

// Package report renders account listings.
package report

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/sboehler/atm/lib/model/account"
	"github.com/sboehler/atm/lib/table"
)

var columns = []string{
	"#",
	"Username",
	"Password",
	"Account Type",
	"Gender",
	"Telephone",
	"ID number",
	"Balance",
}

// Renderer renders a list of accounts.
type Renderer struct {
	MaskPasswords bool
	ShowTotal     bool
}

// Render renders the accounts, numbered by their position.
func (rn *Renderer) Render(accounts []account.Account) *table.Table {
	tbl := table.New(len(columns))
	tbl.AddSeparatorRow()
	header := tbl.AddRow()
	for _, c := range columns {
		header.AddText(c, table.Center)
	}
	tbl.AddSeparatorRow()
	total := decimal.Zero
	for i, a := range accounts {
		tbl.AddRow().
			AddText(strconv.Itoa(i), table.Right).
			AddText(a.Username(), table.Left).
			AddText(rn.password(a), table.Left).
			AddText(a.Kind().String(), table.Left).
			AddText(a.Gender(), table.Left).
			AddText(a.Telephone(), table.Left).
			AddText(a.IDNumber(), table.Left).
			AddNumber(a.Balance())
		total = total.Add(a.Balance())
	}
	if rn.ShowTotal {
		if len(accounts) > 0 {
			tbl.AddSeparatorRow()
		}
		r := tbl.AddRow().AddText("Total", table.Left)
		for i := 2; i < len(columns); i++ {
			r.AddEmpty()
		}
		r.AddNumber(total)
	}
	// The header separator already closes an empty listing.
	if len(accounts) > 0 || rn.ShowTotal {
		tbl.AddSeparatorRow()
	}
	return tbl
}

func (rn *Renderer) password(a account.Account) string {
	if rn.MaskPasswords {
		return strings.Repeat("*", utf8.RuneCountInString(a.Password()))
	}
	return a.Password()
}
