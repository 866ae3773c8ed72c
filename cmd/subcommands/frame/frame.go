// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package frame

import (
	"context"
	"fmt"
	"os"

	"github.com/Lexer747/acci-chart/chart"
	"github.com/Lexer747/acci-chart/cmd/subcommands/common"
	"github.com/Lexer747/acci-chart/eventloop"
	"github.com/Lexer747/acci-chart/terminal"
	"github.com/Lexer747/acci-chart/view/terminalview"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type Config struct {
	termSize string
}

func NewCmd(o *common.Options) *cobra.Command {
	c := &Config{}
	cmd := &cobra.Command{
		Use:   "frame [options] FILE...",
		Short: "Draws a single frame of each chart file",
		Long: "Reads chart files and draws the final frame of each, with animations disabled.\n\n" +
			"e.g. acci-chart frame --term-size 20x80 usage.yaml",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), o, c, args)
		},
	}
	cmd.Flags().StringVar(&c.termSize, "term-size", "", "controls the terminal size and fixes it to the input,"+
		" input is in the form \"<H>x<W>\" e.g. 20x80. H and W must be integers - where H == height, and W == width of the terminal.")
	return cmd
}

func Run(ctx context.Context, o *common.Options, c *Config, paths []string) error {
	s, err := o.Settings()
	if err != nil {
		return err
	}
	logger, closeLog, err := common.NewLogger(s, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	term, err := MakeTerminal(c.termSize)
	if err != nil {
		return err
	}
	settings := s.Chart()
	settings.AnimationDuration = 0
	for _, path := range paths {
		if err := Draw(ctx, term, path, settings, logger); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

// Draw paints one update of the chart at path to term.
func Draw(ctx context.Context, term *terminal.Terminal, path string, s chart.Settings, logger *log.Logger) error {
	c, err := common.LoadChart(path)
	if err != nil {
		return err
	}
	v := terminalview.New(term, logger)
	m, err := c.NewModel(v, s, eventloop.New(logger), logger)
	if err != nil {
		return err
	}
	if err := m.Update(ctx, true); err != nil {
		return err
	}
	return v.Paint()
}

func MakeTerminal(termSize string) (*terminal.Terminal, error) {
	if termSize == "" {
		return terminal.NewTerminal()
	}
	size, err := terminal.ParseSize(termSize)
	if err != nil {
		return nil, err
	}
	return terminal.NewFixedSizeTerminal(size)
}
