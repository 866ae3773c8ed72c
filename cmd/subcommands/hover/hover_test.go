// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package hover_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Lexer747/acci-chart/cmd/subcommands/common"
	"github.com/Lexer747/acci-chart/cmd/subcommands/hover"
	"github.com/Lexer747/acci-chart/geom"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const halves = `
kind: pie
series:
  - name: pie
    values: [1, 1]
`

func TestHover(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(halves), 0o600))

	// 24x80 lays the pie out centred on (40, 24) with a radius of 22.
	for name, tc := range map[string]struct {
		at   string
		want string
	}{
		"first half":  {at: "50,24", want: "pie[0]=1\ntooltip at (62.00, 24.00)\n"},
		"second half": {at: "30,24", want: "pie[1]=1\ntooltip at (18.00, 24.00)\n"},
		"outside":     {at: "0,0", want: "no points under pointer (Idle)\n"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cmd := &cobra.Command{}
			o := &common.Options{}
			o.Bind(cmd)
			c := hover.NewCmd(o)
			require.NoError(t, c.Flags().Set("at", tc.at))
			out := &bytes.Buffer{}
			c.SetOut(out)
			c.SetContext(context.Background())
			require.NoError(t, c.RunE(c, []string{path}))
			assert.Check(t, is.Equal(tc.want, out.String()))
		})
	}
}

func TestParsePoint(t *testing.T) {
	t.Parallel()
	p, err := hover.ParsePoint(" 1.5, -2")
	require.NoError(t, err)
	assert.Check(t, is.Equal(geom.Point{X: 1.5, Y: -2}, p))
	_, err = hover.ParsePoint("1")
	assert.Check(t, is.ErrorContains(err, "expected X,Y"))
	_, err = hover.ParsePoint("a,1")
	assert.Check(t, is.ErrorContains(err, "invalid x"))
}
