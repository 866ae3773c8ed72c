// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// resources tracks the transient visual objects (shapes, tooltips parts) a chart allocates during an update, so
// that anything not referenced by the latest frame can be released.
package resources

import (
	"github.com/Lexer747/acci-chart/utils/check"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ID is the opaque handle returned by [Tracker.Allocate].
type ID = uuid.UUID

// Resource is anything the view holds on behalf of a chart, Release removes it from the view. Release is called
// at most once per allocation.
type Resource interface {
	Release()
}

// Set is a collection of resource handles, usually the resources referenced by one frame.
type Set map[ID]struct{}

func NewSet(ids ...ID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Add(ids ...ID) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

func (s Set) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// Tracker owns every live [Resource] of a chart. It is not safe for concurrent use, the chart model serialises
// all access on its event loop.
type Tracker struct {
	live   map[ID]Resource
	logger *log.Logger
}

func NewTracker(logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.Default().WithPrefix("resources")
	}
	return &Tracker{
		live:   map[ID]Resource{},
		logger: logger,
	}
}

// Allocate takes ownership of r and returns its handle.
func (t *Tracker) Allocate(r Resource) ID {
	check.Check(r != nil, "allocating a nil resource")
	id := uuid.New()
	t.live[id] = r
	return id
}

// Get returns the live resource for id, false if it was never allocated or has since been released.
func (t *Tracker) Get(id ID) (Resource, bool) {
	r, ok := t.live[id]
	return r, ok
}

func (t *Tracker) Len() int { return len(t.live) }

// Live is a snapshot of every handle currently held.
func (t *Tracker) Live() Set {
	s := make(Set, len(t.live))
	for id := range t.live {
		s[id] = struct{}{}
	}
	return s
}

// Collect releases every live resource which is not in referenced, returning how many were released.
func (t *Tracker) Collect(referenced Set) int {
	released := 0
	for id, r := range t.live {
		if referenced.Has(id) {
			continue
		}
		delete(t.live, id)
		r.Release()
		released++
	}
	if released > 0 {
		t.logger.Debug("collected resources", "released", released, "live", len(t.live))
	}
	return released
}

// CollectAll releases everything, used when the chart has nothing to draw.
func (t *Tracker) CollectAll() int {
	return t.Collect(nil)
}
