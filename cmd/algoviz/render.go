// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/algoviz/kruskal"
	"github.com/katalvlaran/algoviz/replay"
)

// ANSI colors per step type, matching the visualizer: consider is pending,
// add joins the tree, reject would close a cycle.
var stepColors = map[kruskal.StepType]string{
	kruskal.StepConsider: "3",
	kruskal.StepAdd:      "2",
	kruskal.StepReject:   "1",
}

// renderer prints traces as aligned text lines.
type renderer struct {
	out *termenv.Output
}

func newRenderer(w io.Writer, noColor bool) *renderer {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *renderer) step(i int, s kruskal.Step) error {
	label := r.out.String(fmt.Sprintf("%-8s", s.Type)).Foreground(r.out.Color(stepColors[s.Type]))
	if s.Type == kruskal.StepAdd {
		label = label.Bold()
	}
	_, err := fmt.Fprintf(r.out, "%3d  %s %s-%s\n", i+1, label, s.Source, s.Target)

	return err
}

// play writes each step, waiting delay between steps, then a summary line.
func (r *renderer) play(ctx context.Context, res kruskal.Result, delay time.Duration) error {
	if err := replay.Play(ctx, res.Steps, delay, r.step); err != nil {
		return err
	}
	sum := kruskal.Summarize(res.Steps)
	_, err := fmt.Fprintf(r.out, "added %d, rejected %d, total weight %d, components %d\n",
		sum.Added, sum.Rejected, res.TotalWeight, res.Components)

	return err
}
