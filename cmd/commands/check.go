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
	"bufio"
	"fmt"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/sboehler/atm/cmd/flags"
	"github.com/sboehler/atm/lib/ledger"
)

// CreateCheckCommand creates the command.
func CreateCheckCommand(o *flags.Options) *cobra.Command {
	r := checkRunner{options: o}

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "check ledger files",
		Long:  `Load the given ledger files and report the number of accounts and the total balance of each.`,

		Args: cobra.MinimumNArgs(1),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type checkRunner struct {
	options *flags.Options
	quiet   bool
}

func (r *checkRunner) setupFlags(c *cobra.Command) {
	c.Flags().BoolVarP(&r.quiet, "quiet", "q", false, "do not show a progress bar")
}

const checkConcurrency = 5

func (r *checkRunner) run(cmd *cobra.Command, args []string) error {
	cfg, err := r.options.Config(cmd)
	if err != nil {
		return err
	}
	enc, err := flags.Encoding(cfg)
	if err != nil {
		return err
	}
	var (
		ledgers = make([]*ledger.Ledger, len(args))
		errs    = make([]error, len(args))
		g       errgroup.Group
	)
	g.SetLimit(checkConcurrency)
	bar := pb.New(len(args)).SetWriter(cmd.ErrOrStderr())
	if !r.quiet {
		bar.Start()
	}
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			defer bar.Increment()
			ledgers[i], errs[i] = ledger.LoadFile(path, enc)
			return nil
		})
	}
	g.Wait()
	if !r.quiet {
		bar.Finish()
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()
	for i, path := range args {
		if errs[i] != nil {
			fmt.Fprintf(out, "%s: FAILED\n", path)
			continue
		}
		fmt.Fprintf(out, "%s: %d accounts, total %s\n", path, ledgers[i].Len(), ledgers[i].Total().StringFixed(2))
	}
	return multierr.Combine(errs...)
}
