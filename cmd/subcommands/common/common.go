// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// common holds what every subcommand needs: the resolved settings, a logger and a model built from a chart
// file.
package common

import (
	"io"
	"os"

	"github.com/Lexer747/acci-chart/chart"
	"github.com/Lexer747/acci-chart/chart/view"
	"github.com/Lexer747/acci-chart/config"
	"github.com/Lexer747/acci-chart/eventloop"
	"github.com/Lexer747/acci-chart/files"
	"github.com/Lexer747/acci-chart/utils/errors"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Options are the persistent flags of the root command.
type Options struct {
	ConfigPath string
	Viper      *viper.Viper
}

func (o *Options) Bind(cmd *cobra.Command) {
	o.Viper = config.New()
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.ConfigPath, "config", "", "yaml `file` of chart settings (default settings and ACCI_CHART_* env only)")
	flags.String("log-level", "", "one of [debug, info, warn, error] (default info)")
	flags.String("log-file", "", "write logs to `file` instead of stderr")
	flags.String("selection-mode", "", "one of [auto, exact], how hovered points are chosen")
	_ = o.Viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = o.Viper.BindPFlag("log_file", flags.Lookup("log-file"))
	_ = o.Viper.BindPFlag("selection_mode", flags.Lookup("selection-mode"))
}

func (o *Options) Settings() (config.Settings, error) {
	return config.LoadFrom(o.Viper, o.ConfigPath)
}

// NewLogger writes to the configured log file, or fallback when there is none. The returned func closes the
// log file.
func NewLogger(s config.Settings, fallback io.Writer) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}
	if s.LogFile != "" {
		f, err := os.Create(s.LogFile)
		if err != nil {
			return nil, closer, errors.Wrap(err, "could not create log file")
		}
		w, closer = f, func() { _ = f.Close() }
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           s.Level(),
		ReportTimestamp: true,
		Prefix:          "acci-chart",
	})
	logger.Debug("logging started", "file", s.LogFile, "level", s.Level())
	return logger, closer, nil
}

// Chart is one chart file loaded and ready to draw.
type Chart struct {
	Path   string
	Kind   chart.Kind
	Series []chart.Series
}

func LoadChart(path string) (*Chart, error) {
	cf, err := files.LoadFile(path)
	if err != nil {
		return nil, err
	}
	kind, series, err := cf.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "building chart %q", path)
	}
	return &Chart{Path: path, Kind: kind, Series: series}, nil
}

func (c *Chart) NewModel(v view.View, s chart.Settings, scheduler eventloop.Scheduler, logger *log.Logger) (*chart.Model, error) {
	m, err := chart.NewModel(chart.Config{
		View:      v,
		Kind:      c.Kind,
		Settings:  s,
		Scheduler: scheduler,
		Logger:    logger.With("chart", c.Path),
	})
	if err != nil {
		return nil, err
	}
	return m, m.SetSeries(c.Series...)
}
