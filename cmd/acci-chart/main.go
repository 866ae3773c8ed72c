// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Lexer747/acci-chart/cmd/subcommands/common"
	"github.com/Lexer747/acci-chart/cmd/subcommands/frame"
	"github.com/Lexer747/acci-chart/cmd/subcommands/hover"
	"github.com/Lexer747/acci-chart/cmd/subcommands/interactive"
	"github.com/Lexer747/acci-chart/utils/exit"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := NewRootCmd().ExecuteContext(ctx)
	cancel()
	exit.OnError(err)
}

func NewRootCmd() *cobra.Command {
	o := &common.Options{}
	cmd := &cobra.Command{
		Use:   "acci-chart",
		Short: "Draws pie, doughnut and cartesian charts in the terminal",
		Long: "acci-chart reads yaml chart files and draws them in the terminal.\n\n" +
			"Settings are read from --config, then overridden by ACCI_CHART_* environment variables and flags.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	o.Bind(cmd)
	cmd.AddCommand(
		frame.NewCmd(o),
		hover.NewCmd(o),
		interactive.NewCmd(o),
	)
	return cmd
}
