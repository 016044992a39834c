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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sboehler/atm/cmd/flags"
)

// CreateRemoveCommand creates the command.
func CreateRemoveCommand(o *flags.Options) *cobra.Command {
	r := removeRunner{options: o}

	return &cobra.Command{
		Use:   "remove POSITION",
		Short: "remove an account",
		Long:  `Remove the account at the given position, as shown by the list command, and save the ledger.`,

		Args: cobra.ExactArgs(1),

		RunE: r.run,
	}
}

type removeRunner struct {
	options *flags.Options
}

func (r *removeRunner) run(cmd *cobra.Command, args []string) error {
	pos, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid position %q: %w", args[0], err)
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
	a, err := l.Get(pos)
	if err != nil {
		return err
	}
	if err := l.Remove(pos); err != nil {
		return err
	}
	if err := flags.SaveLedger(cfg, logger, l); err != nil {
		return err
	}
	logger.Info("account removed", slog.String("username", a.Username()), slog.Int("position", pos))
	fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", a)
	return nil
}
