package table

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type exportEdge struct {
	Event string `yaml:"event" json:"event"`
	Next  string `yaml:"next" json:"next"`
}

type exportRow struct {
	State string       `yaml:"state" json:"state"`
	On    []exportEdge `yaml:"on" json:"on"`
}

type exportDoc struct {
	States []exportRow `yaml:"states" json:"states"`
}

// DOT generates Graphviz DOT source for the table, highlighting current.
func (t *Table[S, E]) DOT(current S) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Machine {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, fontsize=10, style=rounded];\n")
	buf.WriteString("  edge [fontsize=9];\n")

	for _, s := range t.nodeOrder() {
		style := ""
		if s == current {
			style = " style=filled fillcolor=lightgreen"
		}
		name := fmt.Sprint(s)
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", name, name, style)
	}

	for _, s := range t.stateOrder {
		for _, e := range t.eventOrder[s] {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n",
				fmt.Sprint(s), fmt.Sprint(t.rows[s][e]), fmt.Sprint(e))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// YAML serializes the table rules, states and edges in declaration order.
func (t *Table[S, E]) YAML() ([]byte, error) {
	data, err := yaml.Marshal(t.document())
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// JSON serializes the table rules as indented JSON.
func (t *Table[S, E]) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(t.document(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

func (t *Table[S, E]) document() exportDoc {
	var doc exportDoc
	for _, s := range t.stateOrder {
		row := exportRow{State: fmt.Sprint(s)}
		for _, e := range t.eventOrder[s] {
			row.On = append(row.On, exportEdge{
				Event: fmt.Sprint(e),
				Next:  fmt.Sprint(t.rows[s][e]),
			})
		}
		doc.States = append(doc.States, row)
	}
	return doc
}

// nodeOrder returns every state the table mentions: declared rows first in
// declaration order, then targets that never got a row of their own.
func (t *Table[S, E]) nodeOrder() []S {
	seen := make(map[S]bool, len(t.stateOrder))
	order := make([]S, 0, len(t.stateOrder))
	for _, s := range t.stateOrder {
		seen[s] = true
		order = append(order, s)
	}
	for _, s := range t.stateOrder {
		for _, e := range t.eventOrder[s] {
			target := t.rows[s][e]
			if !seen[target] {
				seen[target] = true
				order = append(order, target)
			}
		}
	}
	return order
}
