// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package eventloop

import "github.com/Lexer747/acci-chart/utils/errors"

var ErrStopped = errors.New("event loop is not running")
