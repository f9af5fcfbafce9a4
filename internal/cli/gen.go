// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bidir/graphio"
	"github.com/katalvlaran/bidir/internal/bench"
	"github.com/katalvlaran/bidir/internal/ctxlog"
)

func newGenCommand(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write the configured graph as a YAML edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := bench.LoadGraph(cmd.Context(), a.cfg.Graph)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return graphio.Write(cmd.OutOrStdout(), in.Graph)
			}
			if err = graphio.WriteFile(out, in.Graph); err != nil {
				return err
			}
			ctxlog.FromContext(cmd.Context()).Info("graph written",
				"path", out, "seed", in.Seed, "vertices", in.Graph.VertexCount(), "edges", in.Graph.EdgeCount())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout when empty or -)")

	return cmd
}
