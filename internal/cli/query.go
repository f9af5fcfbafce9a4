// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bidir/core"
	"github.com/katalvlaran/bidir/internal/bench"
	"github.com/katalvlaran/bidir/internal/report"
)

func newQueryCommand(a *app) *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "query SOURCE TARGET",
		Short: "Find one shortest path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := vertexArg(args[0])
			if err != nil {
				return err
			}
			target, err := vertexArg(args[1])
			if err != nil {
				return err
			}

			var algorithms []string
			switch algorithm {
			case bench.Bidirectional, bench.Unidirectional:
				algorithms = []string{algorithm}
			case "both":
				algorithms = []string{bench.Bidirectional, bench.Unidirectional}
			default:
				return fmt.Errorf("query: unknown algorithm %q", algorithm)
			}

			in, err := bench.LoadGraph(cmd.Context(), a.cfg.Graph)
			if err != nil {
				return err
			}
			r := bench.NewRunner(in.Graph, a.cfg.Search, a.inst)
			for i, alg := range algorithms {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err = report.RenderSearch(cmd.OutOrStdout(), r.Search(cmd.Context(), alg, source, target)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&algorithm, "algorithm", bench.Bidirectional, "bidirectional, unidirectional or both")

	return cmd
}

func vertexArg(s string) (core.VertexID, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("query: vertex %q must be a non-negative integer", s)
	}

	return core.VertexID(n), nil
}
