// Package table provides a declarative transition table that compiles to an
// fsmx.Mapper. A table is static configuration, not runtime state: it maps
// (state, event) pairs to next states by plain lookup, performs no graph
// validation, and can render itself to DOT, YAML, or JSON for inspection.
package table

import (
	"fmt"
	"sort"

	"github.com/comalice/fsmx"
)

// Table holds transition rules for comparable state and event types.
// Insertion order is preserved for deterministic export.
type Table[S comparable, E comparable] struct {
	rows       map[S]map[E]S
	stateOrder []S
	eventOrder map[S][]E
}

// New creates an empty table.
func New[S comparable, E comparable]() *Table[S, E] {
	return &Table[S, E]{
		rows:       make(map[S]map[E]S),
		eventOrder: make(map[S][]E),
	}
}

// FromMap creates a table from a nested map literal. Rows and edges are
// ordered by their formatted key strings so export output is deterministic;
// use the builder form when the declaration order matters.
func FromMap[S comparable, E comparable](rows map[S]map[E]S) *Table[S, E] {
	t := New[S, E]()

	states := make([]S, 0, len(rows))
	for s := range rows {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool {
		return fmt.Sprint(states[i]) < fmt.Sprint(states[j])
	})

	for _, s := range states {
		events := make([]E, 0, len(rows[s]))
		for e := range rows[s] {
			events = append(events, e)
		}
		sort.Slice(events, func(i, j int) bool {
			return fmt.Sprint(events[i]) < fmt.Sprint(events[j])
		})
		row := t.From(s)
		for _, e := range events {
			row.On(e, rows[s][e])
		}
	}

	return t
}

// Row is a fluent handle for adding edges out of one state.
type Row[S comparable, E comparable] struct {
	t    *Table[S, E]
	from S
}

// From creates or retrieves the row for state.
func (t *Table[S, E]) From(state S) Row[S, E] {
	if _, exists := t.rows[state]; !exists {
		t.rows[state] = make(map[E]S)
		t.stateOrder = append(t.stateOrder, state)
	}
	return Row[S, E]{t: t, from: state}
}

// On registers evt as moving this row's state to next, replacing any earlier
// rule for the same (state, event) pair. Returns the row for chaining.
func (r Row[S, E]) On(evt E, next S) Row[S, E] {
	row := r.t.rows[r.from]
	if _, exists := row[evt]; !exists {
		r.t.eventOrder[r.from] = append(r.t.eventOrder[r.from], evt)
	}
	row[evt] = next
	return r
}

// Lookup returns the next state for (state, evt), with ok=false when the
// table has no rule for the pair.
func (t *Table[S, E]) Lookup(state S, evt E) (S, bool) {
	next, ok := t.rows[state][evt]
	return next, ok
}

// Mapper compiles the table into a mapper. The returned function reads the
// table live; rules added afterwards are visible to machines already built
// on it, so finish declaring before wiring into a machine.
func (t *Table[S, E]) Mapper() fsmx.Mapper[S, E] {
	return func(state S, evt E) (S, bool) {
		return t.Lookup(state, evt)
	}
}

// Len reports the number of transition rules in the table.
func (t *Table[S, E]) Len() int {
	n := 0
	for _, row := range t.rows {
		n += len(row)
	}
	return n
}
