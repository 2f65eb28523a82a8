// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/kruskal"
)

// traceDocument is the JSON output of trace.
type traceDocument struct {
	kruskal.Result
	Summary kruskal.Summary `json:"summary"`
}

func newTraceCmd(a *app) *cobra.Command {
	var (
		format  string
		speed   time.Duration
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "trace <graph-file|->",
		Short: "Print the Kruskal step trace of a graph document",
		Long: `Reads a graph document (JSON or YAML, {"A":[{"toNode":"B","weight":1}]})
from a file or from stdin when the argument is "-", and prints its trace.

With --format text and a non-zero --speed the steps are replayed one by one.`,
		Example: `  algoviz trace graph.json
  algoviz random --seed 7 | algoviz trace - --format text --speed 300ms`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "text" {
				return fmt.Errorf("unknown format %q (want json or text)", format)
			}
			if speed < 0 {
				return fmt.Errorf("speed must not be negative, got %s", speed)
			}
			if speed > 0 && format != "text" {
				return fmt.Errorf("--speed requires --format text")
			}

			if args[0] == "-" && isTerminal(cmd.InOrStdin()) {
				fmt.Fprintln(cmd.ErrOrStderr(), "reading graph document from stdin, end with Ctrl-D")
			}
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			g, err := core.Decode(data)
			if err != nil {
				return err
			}
			if a.cfg.Strict {
				if err := core.Validate(g); err != nil {
					return err
				}
			}

			tb, err := a.cfg.TieBreakMode()
			if err != nil {
				return err
			}
			res, err := kruskal.Run(g, kruskal.WithTieBreak(tb))
			if err != nil {
				return err
			}
			a.log.Debug("trace generated",
				zap.String("input", args[0]),
				zap.Int("nodes", g.NodeCount()),
				zap.Int("steps", len(res.Steps)),
				zap.String("tie_break", string(tb)),
			)

			out := cmd.OutOrStdout()
			if format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(traceDocument{Result: res, Summary: kruskal.Summarize(res.Steps)})
			}

			return newRenderer(out, noColor).play(cmd.Context(), res, speed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or text")
	cmd.Flags().DurationVar(&speed, "speed", 0, "delay between replayed steps (text format)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}

	return data, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
