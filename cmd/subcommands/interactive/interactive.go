// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package interactive

import (
	"context"
	"io"
	"time"

	"github.com/Lexer747/acci-chart/cmd/subcommands/common"
	"github.com/Lexer747/acci-chart/eventloop"
	"github.com/Lexer747/acci-chart/terminal"
	"github.com/Lexer747/acci-chart/utils/errors"
	"github.com/Lexer747/acci-chart/view/terminalview"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	resizePoll time.Duration
}

func NewCmd(o *common.Options) *cobra.Command {
	c := &Config{}
	cmd := &cobra.Command{
		Use:   "interactive FILE",
		Short: "Draws a chart and lets the cursor be moved over it",
		Long: "Takes over the terminal and draws the chart, arrow keys move the pointer over the chart and show the\n" +
			"tooltip of the points beneath it. Logs are discarded unless --log-file is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), o, c, args[0])
		},
	}
	cmd.Flags().DurationVar(&c.resizePoll, "resize-poll", 250*time.Millisecond, "how often the terminal size is checked")
	return cmd
}

func Run(ctx context.Context, o *common.Options, c *Config, path string) error {
	s, err := o.Settings()
	if err != nil {
		return err
	}
	// The chart owns stdout so logs may only go to a file.
	logger, closeLog, err := common.NewLogger(s, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	loaded, err := common.LoadChart(path)
	if err != nil {
		return err
	}
	term, err := terminal.NewTerminal()
	if err != nil {
		return err
	}

	ctx, stop := context.WithCancelCause(ctx)
	defer stop(nil)
	g, ctx := errgroup.WithContext(ctx)

	loop := eventloop.New(logger.WithPrefix("eventloop"))
	v := terminalview.New(term, logger.WithPrefix("view"))
	m, err := loaded.NewModel(v, s.Chart(), loop, logger)
	if err != nil {
		return err
	}
	app := NewApplication(m, v, loop.Post, stop, logger)

	g.Go(func() error { return loop.Run(ctx) })
	g.Go(func() error { return watchSize(ctx, term, c.resizePoll, loop, app) })

	restore, err := term.StartRaw(ctx, stop, app.Listeners(ctx)...)
	defer restore()
	if err != nil {
		stop(err)
		return errors.Join(err, g.Wait())
	}
	if err := loop.Do(ctx, func() {
		if err := app.Init(ctx); err != nil {
			stop(err)
		}
	}); err != nil {
		logger.Debug("init interrupted", "err", err)
	}

	err = g.Wait()
	_ = term.ClearScreen()
	if errors.Is(err, terminal.UserControlCErr) || errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

func watchSize(ctx context.Context, term *terminal.Terminal, poll time.Duration, loop *eventloop.Loop, app *Application) error {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	last := term.Size()
	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case <-ticker.C:
		}
		if err := term.UpdateCurrentTerminalSize(); err != nil {
			return errors.Wrap(err, "failed to read terminal size")
		}
		if size := term.Size(); size != last {
			last = size
			loop.Post(func() { app.Resized(ctx) })
		}
	}
}
