// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package hover

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Lexer747/acci-chart/chart"
	"github.com/Lexer747/acci-chart/cmd/subcommands/common"
	"github.com/Lexer747/acci-chart/eventloop"
	"github.com/Lexer747/acci-chart/geom"
	"github.com/Lexer747/acci-chart/terminal"
	"github.com/Lexer747/acci-chart/utils/errors"
	"github.com/Lexer747/acci-chart/view/terminalview"
	"github.com/spf13/cobra"
)

type Config struct {
	termSize string
	at       string
	draw     bool
}

func NewCmd(o *common.Options) *cobra.Command {
	c := &Config{}
	cmd := &cobra.Command{
		Use:   "hover --at X,Y FILE",
		Short: "Prints the points under a pointer location",
		Long: "Lays the chart out on a fixed size terminal and moves the pointer to the given location, printing\n" +
			"every point it enters. Locations are in pixels, a terminal cell is 1 pixel wide and 2 pixels high.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), o, c, args[0], cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&c.termSize, "term-size", "24x80", "the terminal size to lay the chart out in, \"<H>x<W>\"")
	cmd.Flags().StringVar(&c.at, "at", "", "the pointer location \"<X>,<Y>\" in pixels")
	cmd.Flags().BoolVar(&c.draw, "draw", false, "also draw the frame with the tooltip shown")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

func Run(ctx context.Context, o *common.Options, c *Config, path string, out io.Writer) error {
	at, err := ParsePoint(c.at)
	if err != nil {
		return err
	}
	size, err := terminal.ParseSize(c.termSize)
	if err != nil {
		return err
	}
	s, err := o.Settings()
	if err != nil {
		return err
	}
	logger, closeLog, err := common.NewLogger(s, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	loaded, err := common.LoadChart(path)
	if err != nil {
		return err
	}
	term, err := terminal.NewTestTerminal(strings.NewReader(""), out, func() terminal.Size { return size })
	if err != nil {
		return err
	}
	settings := s.Chart()
	settings.AnimationDuration = 0
	v := terminalview.New(term, logger)
	m, err := loaded.NewModel(v, settings, eventloop.New(logger), logger)
	if err != nil {
		return err
	}
	if err := m.Update(ctx, true); err != nil {
		return err
	}
	m.PointerMoved(at)
	if err := Report(out, m); err != nil {
		return err
	}
	if c.draw {
		v.SetCursor(at)
		if err := v.Paint(); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out)
	}
	return err
}

// Report prints the hovered points in hit order followed by the tooltip anchor.
func Report(w io.Writer, m *chart.Model) error {
	hovered := m.Hovered()
	if hovered.Empty() {
		_, err := fmt.Fprintf(w, "no points under pointer (%s)\n", m.HoverState())
		return err
	}
	for _, p := range hovered.Points() {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return err
		}
	}
	if anchor, ok := m.TooltipAnchor(); ok {
		_, err := fmt.Fprintf(w, "tooltip at (%.2f, %.2f)\n", anchor.X, anchor.Y)
		return err
	}
	return nil
}

// ParsePoint reads "X,Y".
func ParsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, errors.Errorf("invalid location %q, expected X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid x %q", xs)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid y %q", ys)
	}
	return geom.Point{X: x, Y: y}, nil
}
