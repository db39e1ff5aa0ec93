// SPDX-License-Identifier: MIT
// File: independent.go
// Role: Independent-set validation against a given graph.

package core

// IsIndependentSet reports whether no two nodes of set are adjacent in g.
// Every member must be active in g, otherwise ErrInactiveNode (or
// ErrNodeOutOfRange) is returned. Duplicate ids are tolerated.
// Complexity: O(k² log d) for k = len(set).
func IsIndependentSet(g *Graph, set []int) (bool, error) {
	for _, u := range set {
		if err := g.checkActive(u); err != nil {
			return false, err
		}
	}
	for i, u := range set {
		for _, v := range set[i+1:] {
			if u != v && g.adjacent(u, v) {
				return false, nil
			}
		}
	}

	return true, nil
}
