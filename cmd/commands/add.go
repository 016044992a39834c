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
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sboehler/atm/cmd/flags"
	"github.com/sboehler/atm/lib/model/account"
)

// CreateAddCommand creates the command.
func CreateAddCommand(o *flags.Options) *cobra.Command {
	r := addRunner{options: o}

	cmd := &cobra.Command{
		Use:   "add USERNAME PASSWORD GENDER TELEPHONE ID_NUMBER",
		Short: "create an account",
		Long:  `Create an account with a zero balance and save the ledger.`,

		Args: cobra.ExactArgs(5),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type addRunner struct {
	options *flags.Options
	kind    flags.KindFlag
}

func (r *addRunner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.kind, "kind", "account type")
	c.MarkFlagRequired("kind")
}

func (r *addRunner) run(cmd *cobra.Command, args []string) error {
	kind, err := r.kind.Value()
	if err != nil {
		return err
	}
	cfg, err := r.options.Config(cmd)
	if err != nil {
		return err
	}
	logger := flags.Logger(cmd, cfg)
	l, err := flags.LoadLedger(cfg, logger)
	if err != nil {
		return err
	}
	pos, err := l.Add(kind, account.Holder{
		Username:  args[0],
		Password:  args[1],
		Gender:    args[2],
		Telephone: args[3],
		IDNumber:  args[4],
	})
	if err != nil {
		return err
	}
	if err := flags.SaveLedger(cfg, logger, l); err != nil {
		return err
	}
	logger.Info("account added", slog.String("username", args[0]), slog.Int("position", pos))
	fmt.Fprintf(cmd.OutOrStdout(), "added %s at position %d\n", args[0], pos)
	return nil
}
