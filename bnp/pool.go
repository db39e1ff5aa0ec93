// SPDX-License-Identifier: MIT
// File: pool.go
// Role: Append-only store of generated columns.

package bnp

import (
	"slices"

	"github.com/pkg/errors"
)

// ColumnPool stores every column created during a solve. Column ids are
// their insertion index. Listeners registered with OnColumnAdded run
// synchronously inside Add, in registration order.
type ColumnPool struct {
	nodeNumber int
	columns    []Column
	listeners  []func(Column)
}

// NewColumnPool returns an empty pool for a graph of nodeNumber nodes.
func NewColumnPool(nodeNumber int) *ColumnPool {
	return &ColumnPool{nodeNumber: nodeNumber}
}

// OnColumnAdded registers fn to observe every subsequently added column.
func (p *ColumnPool) OnColumnAdded(fn func(Column)) {
	p.listeners = append(p.listeners, fn)
}

// Add stores a sorted, deduplicated copy of nodes and returns its id.
// Returns ErrEmptyColumn for an empty set and an error for ids outside
// 0..n-1.
func (p *ColumnPool) Add(nodes []int) (ColumnID, error) {
	if len(nodes) == 0 {
		return 0, ErrEmptyColumn
	}
	set := slices.Clone(nodes)
	slices.Sort(set)
	set = slices.Compact(set)
	if set[0] < 0 || set[len(set)-1] >= p.nodeNumber {
		return 0, errors.Errorf("bnp: column %v outside 0..%d", nodes, p.nodeNumber-1)
	}
	col := Column{ID: ColumnID(len(p.columns)), Nodes: set}
	p.columns = append(p.columns, col)
	for _, fn := range p.listeners {
		fn(col)
	}

	return col.ID, nil
}

// Len returns the number of columns.
func (p *ColumnPool) Len() int { return len(p.columns) }

// NodeNumber returns the node count of the underlying graph.
func (p *ColumnPool) NodeNumber() int { return p.nodeNumber }

// Column returns the column with the given id.
func (p *ColumnPool) Column(id ColumnID) (Column, error) {
	if id < 0 || int(id) >= len(p.columns) {
		return Column{}, ErrUnknownColumn
	}

	return p.columns[id], nil
}

// Since returns the columns with ids in [from, Len()).
func (p *ColumnPool) Since(from int) []Column {
	if from < 0 {
		from = 0
	}
	if from >= len(p.columns) {
		return nil
	}

	return p.columns[from:]
}
