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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sboehler/atm/cmd/flags"
)

// CreateExportCommand creates the command.
func CreateExportCommand(o *flags.Options) *cobra.Command {
	r := exportRunner{options: o}

	cmd := &cobra.Command{
		Use:   "export OUTPUT",
		Short: "save the ledger to another file",
		Long:  `Save the ledger to another file, optionally in a different character encoding.`,

		Args: cobra.ExactArgs(1),

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type exportRunner struct {
	options    *flags.Options
	toEncoding flags.EncodingFlag
}

func (r *exportRunner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.toEncoding, "to-encoding", "character encoding of the output (default: the ledger encoding)")
}

func (r *exportRunner) run(cmd *cobra.Command, args []string) error {
	cfg, err := r.options.Config(cmd)
	if err != nil {
		return err
	}
	enc, err := flags.Encoding(cfg)
	if err != nil {
		return err
	}
	logger := flags.Logger(cmd, cfg)
	l, err := flags.LoadLedger(cfg, logger)
	if err != nil {
		return err
	}
	if err := l.SaveFile(args[0], r.toEncoding.ValueOr(enc)); err != nil {
		return err
	}
	logger.Info("ledger exported", slog.String("file", args[0]), slog.Int("accounts", l.Len()))
	return nil
}
