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

package account

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind is the product type of an account.
type Kind int

const (
	// Debit is a checking account which cannot be overdrawn.
	Debit Kind = iota
	// Compcard is a combined card with a small overdraft.
	Compcard
	// NormalCredit is a credit account.
	NormalCredit
	// VIPCredit is a credit account with a larger credit line.
	VIPCredit
	// VVIPCredit is a credit account with the largest credit line.
	VVIPCredit
)

// Kinds is an array with the ordered account kinds.
var Kinds = []Kind{Debit, Compcard, NormalCredit, VIPCredit, VVIPCredit}

var kinds = map[string]Kind{
	"Debit":        Debit,
	"Compcard":     Compcard,
	"NormalCredit": NormalCredit,
	"VIPCredit":    VIPCredit,
	"VVIPCredit":   VVIPCredit,
}

type terms struct {
	minimum decimal.Decimal
	rate    decimal.Decimal
}

var kindTerms = map[Kind]terms{
	Debit:        {decimal.Zero, decimal.RequireFromString("0.00625")},
	Compcard:     {decimal.NewFromInt(-7000), decimal.RequireFromString("0.00425")},
	NormalCredit: {decimal.NewFromInt(-7000), decimal.Zero},
	VIPCredit:    {decimal.NewFromInt(-50000), decimal.Zero},
	VVIPCredit:   {decimal.NewFromInt(-200000), decimal.Zero},
}

// ParseKind returns the kind with the given tag.
func ParseKind(tag string) (Kind, error) {
	k, ok := kinds[tag]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, tag)
	}
	return k, nil
}

func (k Kind) String() string {
	switch k {
	case Debit:
		return "Debit"
	case Compcard:
		return "Compcard"
	case NormalCredit:
		return "NormalCredit"
	case VIPCredit:
		return "VIPCredit"
	case VVIPCredit:
		return "VVIPCredit"
	}
	return ""
}

// Valid returns whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	_, ok := kindTerms[k]
	return ok
}

// SortPriority returns the position of the kind in Kinds.
func (k Kind) SortPriority() int {
	return int(k)
}

// MinimumBalance returns the lowest balance a withdrawal may leave.
func (k Kind) MinimumBalance() decimal.Decimal {
	return kindTerms[k].minimum
}

// InterestRate returns the daily interest rate.
func (k Kind) InterestRate() decimal.Decimal {
	return kindTerms[k].rate
}

// IsCredit returns whether the kind is one of the credit kinds.
func (k Kind) IsCredit() bool {
	return k == NormalCredit || k == VIPCredit || k == VVIPCredit
}
