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

package commands

import (
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/sboehler/atm/cmd/flags"
	"github.com/sboehler/atm/lib/ledger"
)

// CreateFormatCommand creates the command.
func CreateFormatCommand(o *flags.Options) *cobra.Command {
	r := formatRunner{options: o}

	return &cobra.Command{
		Use:   "format FILE...",
		Short: "format ledger files",
		Long: `Format the given ledger files in-place: accounts are sorted by username and balances are written ` +
			`with two decimals. Each file is replaced atomically.`,

		Args: cobra.MinimumNArgs(1),

		RunE: r.run,
	}
}

type formatRunner struct {
	options *flags.Options
}

const formatConcurrency = 10

func (r *formatRunner) run(cmd *cobra.Command, args []string) (errors error) {
	cfg, err := r.options.Config(cmd)
	if err != nil {
		return err
	}
	enc, err := flags.Encoding(cfg)
	if err != nil {
		return err
	}
	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(formatConcurrency)
	for _, arg := range args {
		arg := arg
		g.Go(func() error {
			if err := formatFile(arg, enc); err != nil {
				mu.Lock()
				defer mu.Unlock()
				errors = multierr.Append(errors, err)
			}
			return nil
		})
	}
	g.Wait()
	return errors
}

func formatFile(target string, enc ledger.Encoding) error {
	l, err := ledger.LoadFile(target, enc)
	if err != nil {
		return err
	}
	return l.SaveFile(target, enc)
}
