// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bidir/internal/bench"
	"github.com/katalvlaran/bidir/internal/report"
)

// ErrDisagree is returned by bench --strict when the finders disagree.
var ErrDisagree = errors.New("bidirbench: searches disagree")

func newBenchCommand(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run both searches on one graph and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := bench.Run(cmd.Context(), a.cfg, a.inst)
			if err != nil {
				return err
			}
			if err = report.Render(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if strict && (!res.Agree || (res.Sweep != nil && len(res.Sweep.Disagreements) > 0)) {
				return fmt.Errorf("%w: %d -> %d", ErrDisagree, res.Source, res.Target)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when the searches disagree")

	return cmd
}
