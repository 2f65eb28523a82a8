// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algoviz/builder"
)

func newRandomCmd(a *app) *cobra.Command {
	var (
		seed   int64
		indent bool
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random connected graph document",
		Long: `Generates a connected graph: a random spanning tree plus --extra distinct
edges, weights in [1, --max-weight]. The same --seed gives the same graph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			rc := a.cfg.Random
			g, err := builder.RandomConnected(rc.Nodes, rc.Extra,
				builder.WithSeed(seed),
				builder.WithWeightRange(builder.DefaultMinWeight, rc.MaxWeight),
			)
			if err != nil {
				return err
			}
			a.log.Info("random graph generated",
				zap.Int64("seed", seed),
				zap.Int("nodes", g.NodeCount()),
				zap.Int("arcs", g.ArcCount()),
			)

			data, err := g.MarshalJSON()
			if err != nil {
				return err
			}
			if indent {
				var buf bytes.Buffer
				if err := json.Indent(&buf, data, "", "  "); err != nil {
					return err
				}
				data = buf.Bytes()
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)

			return err
		},
	}

	cmd.Flags().Int("nodes", 8, "number of nodes")
	cmd.Flags().Int("extra", 6, "edges added on top of the spanning tree")
	cmd.Flags().Int64("max-weight", builder.DefaultMaxWeight, "largest edge weight")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent the JSON output")
	bindFlags(cmd, map[string]string{
		"random.nodes":      "nodes",
		"random.extra":      "extra",
		"random.max_weight": "max-weight",
	})

	return cmd
}
