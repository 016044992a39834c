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

	"github.com/spf13/cobra"

	"github.com/sboehler/atm/cmd/flags"
	"github.com/sboehler/atm/lib/report"
	"github.com/sboehler/atm/lib/table"
)

// CreateListCommand creates the command.
func CreateListCommand(o *flags.Options) *cobra.Command {
	r := listRunner{options: o}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list all accounts",
		Long:  `List all accounts of the ledger, numbered by the position used to remove them.`,

		Args: cobra.NoArgs,

		RunE: r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type listRunner struct {
	options       *flags.Options
	showPasswords bool
	thousands     bool
}

func (r *listRunner) setupFlags(c *cobra.Command) {
	c.Flags().BoolVar(&r.showPasswords, "show-passwords", false, "show passwords in clear text")
	c.Flags().BoolVarP(&r.thousands, "thousands", "k", false, "use thousands separators")
}

func (r *listRunner) run(cmd *cobra.Command, args []string) error {
	cfg, err := r.options.Config(cmd)
	if err != nil {
		return err
	}
	l, err := flags.LoadLedger(cfg, flags.Logger(cmd, cfg))
	if err != nil {
		return err
	}
	rn := report.Renderer{
		MaskPasswords: !r.showPasswords,
		ShowTotal:     true,
	}
	tr := table.TextRenderer{
		Color:     cfg.Color,
		Thousands: r.thousands,
	}
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()
	return tr.Render(rn.Render(l.List()), out)
}
