// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// config resolves the chart settings from defaults, an optional yaml file and ACCI_CHART_ prefixed
// environment variables, in increasing order of precedence.
package config

import (
	"strings"
	"time"

	"github.com/Lexer747/acci-chart/chart"
	"github.com/Lexer747/acci-chart/chart/interaction"
	"github.com/Lexer747/acci-chart/utils/errors"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const EnvPrefix = "ACCI_CHART"

type Padding struct {
	Top    float64 `mapstructure:"top"`
	Bottom float64 `mapstructure:"bottom"`
	Left   float64 `mapstructure:"left"`
	Right  float64 `mapstructure:"right"`
}

type Animation struct {
	Duration time.Duration `mapstructure:"duration"`
	Interval time.Duration `mapstructure:"interval"`
}

type Settings struct {
	LogLevel         string        `mapstructure:"log_level"`
	LogFile          string        `mapstructure:"log_file"`
	SelectionMode    string        `mapstructure:"selection_mode"`
	TooltipTimeout   time.Duration `mapstructure:"tooltip_timeout"`
	StartingRotation float64       `mapstructure:"starting_rotation"`
	InnerRadius      float64       `mapstructure:"inner_radius"`
	MarkerRadius     float64       `mapstructure:"marker_radius"`
	Padding          Padding       `mapstructure:"padding"`
	Animation        Animation     `mapstructure:"animation"`
}

// New returns a viper instance with every default set and the environment bound, nested keys use an
// underscore in the environment e.g. ACCI_CHART_ANIMATION_DURATION.
func New() *viper.Viper {
	v := viper.New()
	d := chart.DefaultSettings()
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("selection_mode", d.SelectionMode.String())
	v.SetDefault("tooltip_timeout", d.TooltipTimeout)
	v.SetDefault("starting_rotation", d.StartingRotation)
	v.SetDefault("inner_radius", d.InnerRadius)
	v.SetDefault("marker_radius", d.MarkerRadius)
	v.SetDefault("padding.top", d.Padding.Top)
	v.SetDefault("padding.bottom", d.Padding.Bottom)
	v.SetDefault("padding.left", d.Padding.Left)
	v.SetDefault("padding.right", d.Padding.Right)
	v.SetDefault("animation.duration", d.AnimationDuration)
	v.SetDefault("animation.interval", d.AnimationInterval)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the settings, path may be empty in which case only defaults and the environment are used.
func Load(path string) (Settings, error) {
	return LoadFrom(New(), path)
}

func LoadFrom(v *viper.Viper, path string) (Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, errors.Wrapf(err, "reading config %q", path)
		}
	}
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, errors.Wrap(err, "decoding config")
	}
	return s, s.Validate()
}

func (s Settings) Validate() error {
	var errs []error
	if _, err := interaction.ParseSelectionMode(s.SelectionMode); err != nil {
		errs = append(errs, err)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, errors.Wrapf(err, "log_level %q", s.LogLevel))
	}
	if s.TooltipTimeout < 0 {
		errs = append(errs, errors.Errorf("tooltip_timeout must not be negative, got %s", s.TooltipTimeout))
	}
	if s.InnerRadius < 0 {
		errs = append(errs, errors.Errorf("inner_radius must not be negative, got %g", s.InnerRadius))
	}
	if s.MarkerRadius <= 0 {
		errs = append(errs, errors.Errorf("marker_radius must be positive, got %g", s.MarkerRadius))
	}
	if s.Animation.Duration < 0 || s.Animation.Interval < 0 {
		errs = append(errs, errors.New("animation timings must not be negative"))
	}
	return errors.Join(errs...)
}

// Chart converts to the model's settings, s must have been validated.
func (s Settings) Chart() chart.Settings {
	mode, _ := interaction.ParseSelectionMode(s.SelectionMode)
	return chart.Settings{
		Padding: chart.Padding{
			Top:    s.Padding.Top,
			Bottom: s.Padding.Bottom,
			Left:   s.Padding.Left,
			Right:  s.Padding.Right,
		},
		SelectionMode:     mode,
		TooltipTimeout:    s.TooltipTimeout,
		StartingRotation:  s.StartingRotation,
		InnerRadius:       s.InnerRadius,
		MarkerRadius:      s.MarkerRadius,
		AnimationDuration: s.Animation.Duration,
		AnimationInterval: s.Animation.Interval,
	}
}

func (s Settings) Level() log.Level {
	l, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return l
}
