package variant

import (
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Definition describes a table before validation. Base classes apply
// unconditionally, ahead of every axis.
type Definition struct {
	Name   string
	Base   string
	Axes   []Axis  `validate:"dive"`
	Merger *Merger `validate:"-"`
}

// Table is a validated, immutable variant table. It is safe for concurrent use.
type Table struct {
	name   string
	base   []string
	axes   []Axis
	index  map[string]int
	merger *Merger
}

// NewTable validates def and builds a Table. Every violation found is reported
// in a single InvalidVariantTableError.
func NewTable(def Definition) (*Table, error) {
	if violations := validateDefinition(def); len(violations) > 0 {
		return nil, stylekiterrors.NewInvalidVariantTableError(def.Name, violations)
	}

	t := &Table{
		name:   def.Name,
		base:   Fields(def.Base),
		axes:   make([]Axis, len(def.Axes)),
		index:  make(map[string]int, len(def.Axes)),
		merger: def.Merger,
	}
	for i, axis := range def.Axes {
		t.axes[i] = cloneAxis(axis)
		t.index[axis.ID] = i
	}
	return t, nil
}

// MustTable is NewTable for package-level component declarations; it panics on
// an invalid definition.
func MustTable(def Definition) *Table {
	t, err := NewTable(def)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Base returns a copy of the base tokens.
func (t *Table) Base() []string {
	return append([]string(nil), t.base...)
}

// Axes returns copies of the axes in declared order.
func (t *Table) Axes() []Axis {
	out := make([]Axis, len(t.axes))
	for i, axis := range t.axes {
		out[i] = cloneAxis(axis)
	}
	return out
}

// Axis looks up an axis by id.
func (t *Table) Axis(id string) (Axis, bool) {
	i, ok := t.index[id]
	if !ok {
		return Axis{}, false
	}
	return cloneAxis(t.axes[i]), true
}

// Defaults returns the default option of every axis.
func (t *Table) Defaults() Selection {
	sel := make(Selection, len(t.axes))
	for _, axis := range t.axes {
		sel[axis.ID] = axis.Default
	}
	return sel
}

// Merging reports whether the table applies explicit conflict merging.
func (t *Table) Merging() bool {
	return t.merger != nil
}
