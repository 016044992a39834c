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

package flags

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/sboehler/atm/lib/ledger"
	"github.com/sboehler/atm/lib/model/account"
)

// KindFlag manages a flag to determine an account kind.
type KindFlag struct {
	set  bool
	kind account.Kind
}

var _ pflag.Value = (*KindFlag)(nil)

func (kf KindFlag) String() string {
	if !kf.set {
		return ""
	}
	return kf.kind.String()
}

// Set implements pflag.Value.
func (kf *KindFlag) Set(v string) error {
	k, err := account.ParseKind(v)
	if err != nil {
		return err
	}
	kf.kind, kf.set = k, true
	return nil
}

// Type implements pflag.Value.
func (kf KindFlag) Type() string {
	var ss []string
	for _, k := range account.Kinds {
		ss = append(ss, k.String())
	}
	return strings.Join(ss, "|")
}

// Value returns the kind, or an error if the flag has not been set.
func (kf KindFlag) Value() (account.Kind, error) {
	if !kf.set {
		return 0, fmt.Errorf("no account type given")
	}
	return kf.kind, nil
}

// EncodingFlag manages a flag to determine a file encoding.
type EncodingFlag struct {
	enc ledger.Encoding
}

var _ pflag.Value = (*EncodingFlag)(nil)

func (ef EncodingFlag) String() string {
	return string(ef.enc)
}

// Set implements pflag.Value.
func (ef *EncodingFlag) Set(v string) error {
	enc, err := ledger.ParseEncoding(v)
	if err != nil {
		return err
	}
	ef.enc = enc
	return nil
}

// Type implements pflag.Value.
func (ef EncodingFlag) Type() string {
	return "<encoding>"
}

// Value returns the encoding.
func (ef EncodingFlag) Value() ledger.Encoding {
	return ef.enc
}

// ValueOr returns the encoding, or def if the flag has not been set.
func (ef EncodingFlag) ValueOr(def ledger.Encoding) ledger.Encoding {
	if ef.enc == "" {
		return def
	}
	return ef.enc
}

// LevelFlag manages a flag to determine a log level.
type LevelFlag struct {
	level slog.Level
	set   bool
}

var _ pflag.Value = (*LevelFlag)(nil)

func (lf LevelFlag) String() string {
	if !lf.set {
		return ""
	}
	return strings.ToLower(lf.level.String())
}

// Set implements pflag.Value.
func (lf *LevelFlag) Set(v string) error {
	if err := lf.level.UnmarshalText([]byte(v)); err != nil {
		return err
	}
	lf.set = true
	return nil
}

// Type implements pflag.Value.
func (lf LevelFlag) Type() string {
	return "debug|info|warn|error"
}

// IsSet returns whether the flag has been given.
func (lf LevelFlag) IsSet() bool {
	return lf.set
}

// Value returns the level.
func (lf LevelFlag) Value() slog.Level {
	return lf.level
}
