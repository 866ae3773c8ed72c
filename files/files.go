// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package files

import (
	"bytes"
	"io"
	"os"

	"github.com/Lexer747/acci-chart/chart"
	"github.com/Lexer747/acci-chart/chart/series"
	"github.com/Lexer747/acci-chart/geom"
	"github.com/Lexer747/acci-chart/utils/errors"
	"gopkg.in/yaml.v3"
)

// ChartFile is the on disk description of a chart, e.g.
//
//	kind: pie
//	series:
//	  - name: cpu
//	    values: [1, 2, 3]
//	    labels: [user, system, idle]
type ChartFile struct {
	Kind   string       `yaml:"kind"`
	Series []SeriesFile `yaml:"series"`
}

type SeriesFile struct {
	Name   string       `yaml:"name"`
	Hidden bool         `yaml:"hidden,omitempty"`
	Labels []string     `yaml:"labels,omitempty"`
	Values []float64    `yaml:"values,omitempty"`
	Points [][2]float64 `yaml:"points,omitempty"`
}

// LoadFile will read a chart file from disk, any error includes the path.
func LoadFile(path string) (*ChartFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cf, err := Read(f)
	return cf, errors.Wrapf(err, "reading chart file %q", path)
}

// Read decodes a single chart document, unknown fields are an error.
func Read(r io.Reader) (*ChartFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	cf := &ChartFile{}
	if err := dec.Decode(cf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("chart file is empty")
		}
		return nil, err
	}
	return cf, cf.Validate()
}

func (cf *ChartFile) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cf); err != nil {
		return err
	}
	return enc.Close()
}

func (cf *ChartFile) String() string {
	var b bytes.Buffer
	if err := cf.Write(&b); err != nil {
		return err.Error()
	}
	return b.String()
}

func (cf *ChartFile) Validate() error {
	var errs []error
	if _, err := chart.ParseKind(cf.Kind); err != nil {
		errs = append(errs, err)
	}
	seen := map[string]struct{}{}
	for i, s := range cf.Series {
		if s.Name == "" {
			errs = append(errs, errors.Errorf("series %d has no name", i))
		}
		if _, ok := seen[s.Name]; ok {
			errs = append(errs, errors.Errorf("series %q is declared more than once", s.Name))
		}
		seen[s.Name] = struct{}{}
		if len(s.Values) > 0 && len(s.Points) > 0 {
			errs = append(errs, errors.Errorf("series %q has both values and points", s.Name))
		}
	}
	return errors.Join(errs...)
}

// Build creates the chart kind and a series per entry. A series with points is a line, anything else is a
// pie. Mixing the two is allowed here, the model reports the mismatch when it updates.
func (cf *ChartFile) Build() (chart.Kind, []chart.Series, error) {
	if err := cf.Validate(); err != nil {
		return nil, nil, err
	}
	kind, _ := chart.ParseKind(cf.Kind)
	ret := make([]chart.Series, 0, len(cf.Series))
	for _, s := range cf.Series {
		if len(s.Points) > 0 {
			points := make([]geom.Point, len(s.Points))
			for i, p := range s.Points {
				points[i] = geom.Point{X: p[0], Y: p[1]}
			}
			l := series.NewLine(s.Name, points...)
			l.SetLabels(s.Labels...)
			l.SetVisible(!s.Hidden)
			ret = append(ret, l)
			continue
		}
		p := series.NewPie(s.Name, s.Values...)
		p.SetLabels(s.Labels...)
		p.SetVisible(!s.Hidden)
		ret = append(ret, p)
	}
	return kind, ret, nil
}
