package collectors

import (
	"fmt"
	"iter"

	"github.com/kbukum/commons/errors"
	"github.com/kbukum/commons/util"
)

// Cell is one entry of a Table.
type Cell[R, C comparable, V any] struct {
	Row    R
	Column C
	Value  V
}

// CellOf creates a Cell.
func CellOf[R, C comparable, V any](row R, column C, value V) Cell[R, C, V] {
	return Cell[R, C, V]{Row: row, Column: column, Value: value}
}

// Debug returns "(row,column)=value".
func (c Cell[R, C, V]) Debug() string {
	return fmt.Sprintf("(%s,%s)=%s", util.Debug(c.Row), util.Debug(c.Column), util.Debug(c.Value))
}

// Table is an immutable map keyed by a (row, column) pair.
type Table[R, C comparable, V any] struct {
	cells []Cell[R, C, V]
	index map[util.Pair[R, C]]int
}

// Len returns the number of cells.
func (t Table[R, C, V]) Len() int { return len(t.cells) }

// Get returns the value in cell (row, column).
func (t Table[R, C, V]) Get(row R, column C) (V, bool) {
	i, ok := t.index[util.PairOf(row, column)]
	if !ok {
		var zero V
		return zero, false
	}
	return t.cells[i].Value, true
}

// Contains reports whether cell (row, column) is present.
func (t Table[R, C, V]) Contains(row R, column C) bool {
	_, ok := t.index[util.PairOf(row, column)]
	return ok
}

// Row returns the column-to-value map of one row.
func (t Table[R, C, V]) Row(row R) Map[C, V] {
	b := NewMapBuilder[C, V]()
	for _, c := range t.cells {
		if c.Row == row {
			errors.Check(b.Put(c.Column, c.Value))
		}
	}
	return b.Build()
}

// Column returns the row-to-value map of one column.
func (t Table[R, C, V]) Column(column C) Map[R, V] {
	b := NewMapBuilder[R, V]()
	for _, c := range t.cells {
		if c.Column == column {
			errors.Check(b.Put(c.Row, c.Value))
		}
	}
	return b.Build()
}

// RowKeys returns the distinct row keys in first-seen order.
func (t Table[R, C, V]) RowKeys() []R {
	b := NewSetBuilder[R]()
	for _, c := range t.cells {
		b.Add(c.Row)
	}
	return b.items
}

// ColumnKeys returns the distinct column keys in first-seen order.
func (t Table[R, C, V]) ColumnKeys() []C {
	b := NewSetBuilder[C]()
	for _, c := range t.cells {
		b.Add(c.Column)
	}
	return b.items
}

// Cells iterates over the cells in order.
func (t Table[R, C, V]) Cells() iter.Seq[Cell[R, C, V]] {
	return func(yield func(Cell[R, C, V]) bool) {
		for _, c := range t.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Debug returns "[(r,c)=v, ...]".
func (t Table[R, C, V]) Debug() string { return debugList(t.cells) }

// TableBuilder accumulates cells with unique (row, column) pairs.
type TableBuilder[R, C comparable, V any] struct {
	cells []Cell[R, C, V]
	index map[util.Pair[R, C]]int
}

// NewTableBuilder creates an empty builder.
func NewTableBuilder[R, C comparable, V any]() *TableBuilder[R, C, V] {
	return &TableBuilder[R, C, V]{index: make(map[util.Pair[R, C]]int)}
}

// Put adds a cell, failing with DUPLICATE_KEY if (row, column) is present.
func (b *TableBuilder[R, C, V]) Put(row R, column C, value V) error {
	key := util.PairOf(row, column)
	if _, dup := b.index[key]; dup {
		return errors.DuplicateKey(key).
			WithDetail("row", row).
			WithDetail("column", column)
	}
	b.index[key] = len(b.cells)
	b.cells = append(b.cells, CellOf(row, column, value))
	return nil
}

// PutAll adds every cell of other after the cells of b.
func (b *TableBuilder[R, C, V]) PutAll(other *TableBuilder[R, C, V]) error {
	for _, c := range other.cells {
		if err := b.Put(c.Row, c.Column, c.Value); err != nil {
			return err
		}
	}
	return nil
}

// Build returns an immutable snapshot of the builder.
func (b *TableBuilder[R, C, V]) Build() Table[R, C, V] {
	cells := make([]Cell[R, C, V], len(b.cells))
	copy(cells, b.cells)
	index := make(map[util.Pair[R, C]]int, len(b.index))
	for k, i := range b.index {
		index[k] = i
	}
	return Table[R, C, V]{cells: cells, index: index}
}

// ToTable collects into a Table, failing with DUPLICATE_KEY when two elements
// map to the same (row, column) pair.
func ToTable[E any, R, C comparable, V any](rowFn func(E) R, columnFn func(E) C, valueFn func(E) V) Collector[E, *TableBuilder[R, C, V], Table[R, C, V]] {
	return Of(
		NewTableBuilder[R, C, V],
		func(b *TableBuilder[R, C, V], e E) error { return b.Put(rowFn(e), columnFn(e), valueFn(e)) },
		func(left, right *TableBuilder[R, C, V]) (*TableBuilder[R, C, V], error) {
			if err := left.PutAll(right); err != nil {
				return nil, err
			}
			return left, nil
		},
		func(b *TableBuilder[R, C, V]) (Table[R, C, V], error) { return b.Build(), nil },
		Unordered,
	)
}

// CellsToTable is ToTable over cells.
func CellsToTable[R, C comparable, V any]() Collector[Cell[R, C, V], *TableBuilder[R, C, V], Table[R, C, V]] {
	return ToTable(
		func(c Cell[R, C, V]) R { return c.Row },
		func(c Cell[R, C, V]) C { return c.Column },
		func(c Cell[R, C, V]) V { return c.Value },
	)
}
