// Copyright 2020 Silvio Böhler
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

// Package cmd is the main command file for Cobra
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/sboehler/atm/cmd/commands"
	"github.com/sboehler/atm/cmd/completion"
	"github.com/sboehler/atm/cmd/flags"
	"github.com/sboehler/atm/cmd/session"
	"github.com/sboehler/atm/lib/config"
	"github.com/sboehler/atm/lib/ledger"
)

// CreateCmd creates the root command.
func CreateCmd() *cobra.Command {
	var r rootRunner

	cmd := &cobra.Command{
		Use:   "atm",
		Short: "atm is a console bank terminal",
		Long: `atm simulates an automated teller machine on a CSV ledger file. Users log in to check their account, ` +
			`deposit, withdraw and calculate interest; the administrator lists, creates and removes accounts.`,

		Args: cobra.NoArgs,

		RunE: r.run,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	r.options.Setup(cmd)
	r.setupFlags(cmd)

	cmd.AddCommand(commands.CreateListCommand(&r.options))
	cmd.AddCommand(commands.CreateAddCommand(&r.options))
	cmd.AddCommand(commands.CreateRemoveCommand(&r.options))
	cmd.AddCommand(commands.CreateCheckCommand(&r.options))
	cmd.AddCommand(commands.CreateFormatCommand(&r.options))
	cmd.AddCommand(commands.CreateExportCommand(&r.options))
	cmd.AddCommand(completion.CreateCmd(cmd))
	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	cmd := CreateCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

type rootRunner struct {
	options  flags.Options
	backup   string
	autosave bool
}

func (r *rootRunner) setupFlags(cmd *cobra.Command) {
	def := config.Default()
	cmd.Flags().StringVar(&r.backup, "backup", def.Backup, "backup file written after loading, relative to the ledger file (empty to disable)")
	cmd.Flags().BoolVar(&r.autosave, "autosave", def.Autosave, "save the ledger after every change")
}

func (r *rootRunner) run(cmd *cobra.Command, args []string) error {
	cfg, err := r.options.Config(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("backup") {
		cfg.Backup = r.backup
	}
	if cmd.Flags().Changed("autosave") {
		cfg.Autosave = r.autosave
	}
	logger := flags.Logger(cmd, cfg)

	l, err := flags.LoadLedger(cfg, logger)
	if err != nil {
		return err
	}
	if err := r.writeBackup(cfg, logger, l); err != nil {
		return err
	}
	term := session.Terminal{
		Ledger: l,
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Err:    cmd.ErrOrStderr(),
		Color:  cfg.Color,
		Logger: logger,
	}
	if cfg.Autosave {
		term.Save = func() error {
			return flags.SaveLedger(cfg, logger, l)
		}
	}
	err = term.Run()
	return multierr.Append(err, flags.SaveLedger(cfg, logger, l))
}

func (r *rootRunner) writeBackup(cfg config.Config, logger *slog.Logger, l *ledger.Ledger) error {
	path := cfg.BackupPath()
	if path == "" {
		return nil
	}
	enc, err := flags.Encoding(cfg)
	if err != nil {
		return err
	}
	if err := l.SaveFile(path, enc); err != nil {
		return err
	}
	logger.Info("backup written", slog.String("file", path))
	return nil
}
